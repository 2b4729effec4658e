package main

import (
	"github.com/gogpu/gg/text"
	"github.com/spf13/cobra"

	coupon "github.com/gogpu/gg-coupon"
	"github.com/gogpu/gg-coupon/internal/config"
	"github.com/gogpu/gg-coupon/internal/logger"
)

type rootFlags struct {
	verbose bool
	envFile string
}

// appContext is what every subcommand receives once the root command
// has loaded the environment.
type appContext struct {
	env *config.Env
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{}

	cmd := &cobra.Command{
		Use:           "coupongen",
		Short:         "coupongen renders perforated coupon images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd, flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "Environment file to load if present")

	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newOpsCmd(app))
	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *appContext) init(cmd *cobra.Command, flags *rootFlags) error {
	env, err := config.LoadEnv(flags.envFile)
	if err != nil {
		return err
	}

	level := env.Log.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: env.Log.Pretty,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	if flags.verbose {
		coupon.SetLogger(log.Slog())
	}
	a.env = env
	a.log = log
	return nil
}

// fontSource opens path, falling back to the environment's font and then
// to the built-in face. It returns nil for the built-in face.
func (a *appContext) fontSource(path string) (*text.FontSource, error) {
	if path == "" {
		path = a.env.Render.Font
	}
	if path == "" {
		return nil, nil
	}
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, err
	}
	a.log.With(map[string]any{"font": path}).Debug("loaded font")
	return src, nil
}
