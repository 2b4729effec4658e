package coupon

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"
)

// ErrEmptySurface is returned when a renderer without a valid layout is
// asked to produce an image.
var ErrEmptySurface = errors.New("coupon: surface has no area")

// Draw plays ops back onto dc in order.
//
// ClearCircleOp erases the covered destination pixels of dc, so the
// coupon must be drawn onto a transparent context (or one whose
// background may be punched through).
func Draw(dc *gg.Context, ops []Op) error {
	for i, op := range ops {
		if err := drawOp(dc, op); err != nil {
			return fmt.Errorf("coupon: op %d (%s): %w", i, op.Type(), err)
		}
	}
	return nil
}

func drawOp(dc *gg.Context, op Op) error {
	switch o := op.(type) {
	case FillRoundRectOp:
		dc.ClearPath()
		setColor(dc, o.Color)
		dc.DrawRoundedRectangle(o.Rect.X, o.Rect.Y, o.Rect.W, o.Rect.H, o.Radius)
		return dc.Fill()

	case ClearCircleOp:
		clearCircle(dc, o.X, o.Y, o.Radius)
		return nil

	case DashedPathOp:
		if o.Width <= 0 || len(o.Segments) == 0 {
			return nil
		}
		dc.ClearPath()
		setColor(dc, o.Color)
		dc.SetLineWidth(o.Width)
		if o.Dash > 0 {
			dc.SetDash(o.Dash, o.Dash)
		} else {
			dc.ClearDash()
		}
		for _, s := range o.Segments {
			dc.MoveTo(s.X1, s.Y1)
			dc.LineTo(s.X2, s.Y2)
		}
		err := dc.Stroke()
		dc.ClearDash()
		return err

	case DrawTextOp:
		b := o.Block
		if b.Empty() || b.face == nil {
			return nil
		}
		dc.SetFont(b.face)
		setColor(dc, o.Color)
		for _, line := range b.Lines {
			dc.DrawString(line.Text, o.X+line.X, o.Y+line.Baseline)
		}
		return nil

	default:
		return fmt.Errorf("unsupported op %T", op)
	}
}

func setColor(dc *gg.Context, c gg.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}

// clearCircle scales the alpha of every pixel under the circle by the
// inverse of its coverage. Fully covered pixels become transparent.
func clearCircle(dc *gg.Context, cx, cy, radius float64) {
	if radius <= 0 {
		return
	}
	dc.ClearPath()
	dc.DrawCircle(cx, cy, radius)
	mask := dc.AsMask()
	dc.ClearPath()

	pm := dc.ResizeTarget()
	x0 := max(0, int(math.Floor(cx-radius)))
	y0 := max(0, int(math.Floor(cy-radius)))
	x1 := min(pm.Width()-1, int(math.Ceil(cx+radius)))
	y1 := min(pm.Height()-1, int(math.Ceil(cy+radius)))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cov := mask.At(x, y)
			if cov == 0 {
				continue
			}
			p := pm.GetPixel(x, y)
			p.A *= 1 - float64(cov)/255
			if p.A <= 0 {
				p = gg.Transparent
			}
			pm.SetPixel(x, y, p)
		}
	}
}

// newContext creates a transparent context large enough for the surface.
func (r *Renderer) newContext() (*gg.Context, error) {
	if !r.laidOut || r.height <= 0 {
		return nil, ErrEmptySurface
	}
	w := int(math.Ceil(r.width))
	h := int(math.Ceil(r.height))
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(gg.Transparent)
	if err := Draw(dc, r.Render()); err != nil {
		_ = dc.Close()
		return nil, err
	}
	return dc, nil
}

// Pixmap rasterizes the coupon at its current size.
func (r *Renderer) Pixmap() (*gg.Pixmap, error) {
	dc, err := r.newContext()
	if err != nil {
		return nil, err
	}
	pm := dc.ResizeTarget()
	_ = dc.Close()
	return pm, nil
}

// EncodePNG rasterizes the coupon and writes it to w as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	dc, err := r.newContext()
	if err != nil {
		return err
	}
	defer func() {
		_ = dc.Close()
	}()
	return dc.EncodePNG(w)
}

// EncodeJPEG rasterizes the coupon and writes it to w as JPEG. Holes and
// rounded corners lose their transparency in JPEG output.
func (r *Renderer) EncodeJPEG(w io.Writer, quality int) error {
	dc, err := r.newContext()
	if err != nil {
		return err
	}
	defer func() {
		_ = dc.Close()
	}()
	return dc.EncodeJPEG(w, quality)
}
