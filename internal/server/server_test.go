package server

import (
	"bytes"
	"context"
	"encoding/json"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gg-coupon/internal/logger"
)

func setupTestApp(t *testing.T, access io.Writer) *fiber.App {
	t.Helper()
	log, err := logger.New(logger.Options{Level: "error", Writer: io.Discard})
	require.NoError(t, err)
	return New(Options{Density: 1, Log: log, AccessLog: access})
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func couponQuery(extra url.Values) string {
	q := url.Values{
		"width":         {"300"},
		"height":        {"120"},
		"couponTitle":   {"10 OFF"},
		"couponContent": {"Valid until the end of May"},
		"holeType":      {"both"},
	}
	for k, v := range extra {
		q[k] = v
	}
	return q.Encode()
}

func TestHealth(t *testing.T) {
	app := setupTestApp(t, nil)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"healthy"`)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestCouponPNG(t *testing.T) {
	app := setupTestApp(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/coupon.png?"+couponQuery(nil), nil)
	resp, body := do(t, app, req)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))

	img, err := png.Decode(bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 120, img.Bounds().Dy())

	// Corner pixel lies outside the rounded rectangle.
	_, _, _, a := img.At(0, 0).RGBA()
	assert.Zero(t, a)
	// The vertical hole at the split of the top edge is cleared.
	_, _, _, a = img.At(100, 2).RGBA()
	assert.Zero(t, a)
}

func TestCouponJPEG(t *testing.T) {
	app := setupTestApp(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/coupon?"+couponQuery(url.Values{"format": {"jpg"}, "quality": {"70"}}), nil)
	resp, body := do(t, app, req)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "image/jpeg", resp.Header.Get(fiber.HeaderContentType))

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 120, cfg.Height)
}

func TestCouponOps(t *testing.T) {
	app := setupTestApp(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/coupon/ops?"+couponQuery(nil), nil)
	resp, body := do(t, app, req)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))

	var payload struct {
		Width  float64  `json:"width"`
		Height float64  `json:"height"`
		Ops    []string `json:"ops"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, 300.0, payload.Width)
	require.Len(t, payload.Ops, 8)
	assert.True(t, strings.HasPrefix(payload.Ops[0], "FillRoundRect"))
	for _, op := range payload.Ops[1:5] {
		assert.True(t, strings.HasPrefix(op, "ClearCircle"), op)
	}
	assert.True(t, strings.HasPrefix(payload.Ops[5], "DashedPath"))
	assert.True(t, strings.HasPrefix(payload.Ops[6], "DrawText"))
	assert.Contains(t, payload.Ops[6], `"10 OFF"`)
	assert.Contains(t, payload.Ops[7], `"Valid until the end of May"`)
}

func TestCouponBadRequests(t *testing.T) {
	app := setupTestApp(t, nil)

	cases := []struct {
		name  string
		query string
		want  string
	}{
		{"missing width", "height=10", "width is required"},
		{"zero height", "width=10&height=0", "width and height must be in"},
		{"too large", "width=100000&height=10", "width and height must be in"},
		{"not a number", "width=wide&height=10", "width and height must be in"},
		{"unknown attribute", "width=10&height=10&couponTitel=x", `unknown attribute \"couponTitel\"`},
		{"bad format", "width=10&height=10&format=gif", "format must be png or jpeg"},
		{"bad quality", "width=10&height=10&format=jpeg&quality=0", "quality must be in"},
		{"bad density", "width=10&height=10&density=-1", "density must be in"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/coupon.png?"+tc.query, nil))
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Contains(t, string(body), tc.want)
		})
	}
}

func TestCouponDocument(t *testing.T) {
	app := setupTestApp(t, nil)

	body := `width: 200
height: 80
style:
  couponTitle: "2 FOR 1"
  holeType: leftRight
`
	req := httptest.NewRequest(http.MethodPost, "/coupon", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, "application/yaml")
	resp, out := do(t, app, req)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(out))

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())

	// Left edge hole at half height.
	_, _, _, a := img.At(1, 40).RGBA()
	assert.Zero(t, a)
}

func TestCouponDocumentInvalid(t *testing.T) {
	app := setupTestApp(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/coupon", strings.NewReader("width: 10\nstyle:\n  nope: x\n"))
	resp, body := do(t, app, req)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "validation error")
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	app := setupTestApp(t, &buf)

	resp, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, buf.String(), "200 GET /health")
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	app := setupTestApp(t, nil)
	log, err := logger.New(logger.Options{Level: "error", Writer: io.Discard})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- ListenAndServe(ctx, app, "127.0.0.1:0", time.Second, log)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
