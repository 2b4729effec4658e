package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/gg-coupon/internal/server"
)

func newServeCmd(app *appContext) *cobra.Command {
	var (
		addr      string
		font      string
		accessLog bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve coupon previews over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.env.Server.Addr
			}
			src, err := app.fontSource(font)
			if err != nil {
				return err
			}

			opts := server.Options{
				Density: app.env.Render.Density,
				Source:  src,
				Log:     app.log,
			}
			if accessLog {
				opts.AccessLog = os.Stdout
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			timeout := time.Duration(app.env.Server.ShutdownTimeout) * time.Second
			return server.ListenAndServe(ctx, server.New(opts), addr, timeout, app.log)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default $COUPON_ADDR)")
	cmd.Flags().StringVar(&font, "font", "", "TTF/OTF font file")
	cmd.Flags().BoolVar(&accessLog, "access-log", true, "Write one line per request to stdout")
	return cmd
}
