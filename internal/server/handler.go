package server

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gogpu/gg/text"

	coupon "github.com/gogpu/gg-coupon"
	"github.com/gogpu/gg-coupon/internal/config"
	"github.com/gogpu/gg-coupon/internal/logger"
)

// MaxDimension bounds the width and height a request may ask for.
const MaxDimension = 4096

// Query parameters that are not style attributes.
const (
	paramWidth   = "width"
	paramHeight  = "height"
	paramDensity = "density"
	paramFormat  = "format"
	paramQuality = "quality"
)

// request is a resolved render request.
type request struct {
	width, height float64
	format        string
	quality       int
	style         coupon.Style
}

// CouponHandler renders coupons over HTTP. Every request gets its own
// renderer; only the font source is shared.
type CouponHandler struct {
	density float64
	source  *text.FontSource
	log     *logger.Logger
}

// NewCouponHandler creates a CouponHandler. A nil source selects the
// built-in font and density <= 0 means 1.
func NewCouponHandler(density float64, source *text.FontSource, log *logger.Logger) *CouponHandler {
	if !(density > 0) {
		density = 1
	}
	return &CouponHandler{density: density, source: source, log: log}
}

// Image handles GET /coupon.png and GET /coupon: the query string holds
// the size and the style attributes.
func (h *CouponHandler) Image(c *fiber.Ctx) error {
	req, err := h.parseQuery(c)
	if err != nil {
		return badRequest(c, err)
	}
	return h.writeImage(c, req)
}

// Ops handles GET /coupon/ops, returning the drawing operations as JSON.
func (h *CouponHandler) Ops(c *fiber.Ctx) error {
	req, err := h.parseQuery(c)
	if err != nil {
		return badRequest(c, err)
	}

	r := h.renderer(req)
	ops := r.Render()
	lines := make([]string, len(ops))
	for i, op := range ops {
		lines[i] = coupon.FormatOp(op)
	}
	return c.JSON(fiber.Map{
		"width":      req.width,
		"height":     req.height,
		"generation": r.Generation(),
		"ops":        lines,
	})
}

// Document handles POST /coupon with a YAML coupon document as body.
func (h *CouponHandler) Document(c *fiber.Ctx) error {
	doc, err := config.ReadDocument("request", bytes.NewReader(c.Body()))
	if err != nil {
		return badRequest(c, err)
	}
	if doc.Width > MaxDimension || doc.Height > MaxDimension {
		return badRequest(c, errDimension())
	}
	return h.writeImage(c, request{
		width:   doc.Width,
		height:  doc.Height,
		format:  doc.Format,
		quality: doc.Quality,
		style:   doc.CouponStyle(),
	})
}

func (h *CouponHandler) renderer(req request) *coupon.Renderer {
	var opts []coupon.Option
	if h.source != nil {
		opts = append(opts, coupon.WithFontSource(h.source))
	}
	r := coupon.New(req.style, opts...)
	r.Layout(req.width, req.height)
	return r
}

func (h *CouponHandler) writeImage(c *fiber.Ctx, req request) error {
	r := h.renderer(req)

	var buf bytes.Buffer
	var err error
	if req.format == config.FormatJPEG {
		c.Type("jpg")
		err = r.EncodeJPEG(&buf, req.quality)
	} else {
		c.Type("png")
		err = r.EncodePNG(&buf)
	}
	if err != nil {
		h.log.With(map[string]any{"width": req.width, "height": req.height}).Error(err, "failed to render coupon")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "render failed"})
	}
	return c.Send(buf.Bytes())
}

func (h *CouponHandler) parseQuery(c *fiber.Ctx) (request, error) {
	attrs := make(map[string]string)
	for k, v := range c.Queries() {
		switch k {
		case paramWidth, paramHeight, paramDensity, paramFormat, paramQuality:
			continue
		}
		if !coupon.IsAttribute(k) {
			return request{}, fmt.Errorf("unknown attribute %q", k)
		}
		attrs[k] = v
	}

	width, err := dimension(c.Query(paramWidth), paramWidth)
	if err != nil {
		return request{}, err
	}
	height, err := dimension(c.Query(paramHeight), paramHeight)
	if err != nil {
		return request{}, err
	}

	density := h.density
	if v := c.Query(paramDensity); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil || !(d > 0) || d > 16 {
			return request{}, errors.New("density must be in (0, 16]")
		}
		density = d
	}

	req := request{width: width, height: height, format: config.FormatPNG}
	switch strings.ToLower(c.Query(paramFormat)) {
	case "", config.FormatPNG:
	case "jpg", config.FormatJPEG:
		req.format = config.FormatJPEG
		req.quality = config.DefaultJPEGQuality
	default:
		return request{}, errors.New("format must be png or jpeg")
	}
	if v := c.Query(paramQuality); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil || q < 1 || q > 100 {
			return request{}, errors.New("quality must be in [1, 100]")
		}
		req.quality = q
	}

	req.style = coupon.ParseAttributes(attrs, density)
	return req, nil
}

func dimension(v, name string) (float64, error) {
	if v == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || !(f > 0) || f > MaxDimension {
		return 0, errDimension()
	}
	return f, nil
}

func errDimension() error {
	return fmt.Errorf("width and height must be in (0, %d]", MaxDimension)
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request: " + err.Error()})
}
