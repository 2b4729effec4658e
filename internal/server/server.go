// Package server exposes coupon rendering over HTTP for previews.
package server

import (
	"context"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/gg-coupon/internal/logger"
)

// Options configures the preview server.
type Options struct {
	// Density applies to query requests that omit one.
	Density float64
	// Source replaces the built-in font when non-nil.
	Source *text.FontSource
	Log    *logger.Logger
	// AccessLog receives one line per request. Nil disables access logs.
	AccessLog io.Writer
}

// New builds the fiber application with all routes registered.
func New(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "coupongen",
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           60 * time.Second,
		BodyLimit:             64 * 1024,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	if opts.AccessLog != nil {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format:        "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
			Output:        opts.AccessLog,
			DisableColors: true,
		}))
	}

	coupons := NewCouponHandler(opts.Density, opts.Source, opts.Log)
	app.Get("/health", Health)
	app.Get("/coupon", coupons.Image)
	app.Get("/coupon.png", coupons.Image)
	app.Get("/coupon/ops", coupons.Ops)
	app.Post("/coupon", coupons.Document)
	return app
}

// Health handles GET /health.
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy"})
}

// ListenAndServe runs app on addr until ctx is done, then shuts it down,
// waiting up to timeout for in-flight requests.
func ListenAndServe(ctx context.Context, app *fiber.App, addr string, timeout time.Duration, log *logger.Logger) error {
	errc := make(chan error, 1)
	go func() {
		log.With(map[string]any{"addr": addr}).Info("starting server")
		errc <- app.Listen(addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.With(map[string]any{"timeout_seconds": timeout.Seconds()}).Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}
