package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	coupon "github.com/gogpu/gg-coupon"
	"github.com/gogpu/gg-coupon/internal/config"
)

// documentFlags describe a coupon on the command line. A document file
// is loaded first and the flags override it.
type documentFlags struct {
	configPath string
	width      float64
	height     float64
	density    float64
	format     string
	quality    int
	font       string
	attrs      map[string]string
}

func (f *documentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Coupon document (YAML), - for stdin")
	cmd.Flags().Float64Var(&f.width, "width", 0, "Coupon width")
	cmd.Flags().Float64Var(&f.height, "height", 0, "Coupon height")
	cmd.Flags().Float64Var(&f.density, "density", 0, "Density applied to dp/sp sizes")
	cmd.Flags().StringVar(&f.format, "format", "", "Output format: png or jpeg")
	cmd.Flags().IntVar(&f.quality, "quality", 0, "JPEG quality (1-100)")
	cmd.Flags().StringVar(&f.font, "font", "", "TTF/OTF font file")
	cmd.Flags().StringToStringVarP(&f.attrs, "set", "s", nil, "Style attribute key=value (repeatable)")
}

// document resolves the flags into a validated document.
func (f *documentFlags) document(cmd *cobra.Command, app *appContext) (*config.Document, error) {
	doc := &config.Document{}
	switch f.configPath {
	case "":
	case "-":
		d, err := config.DecodeDocument("stdin", cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		doc = d
	default:
		file, err := os.Open(f.configPath)
		if err != nil {
			return nil, config.NewParseError(f.configPath, 0, err)
		}
		d, err := config.DecodeDocument(f.configPath, file)
		_ = file.Close()
		if err != nil {
			return nil, err
		}
		doc = d
	}

	if f.width != 0 {
		doc.Width = f.width
	}
	if f.height != 0 {
		doc.Height = f.height
	}
	switch {
	case f.density != 0:
		doc.Density = f.density
	case doc.Density == 0:
		doc.Density = app.env.Render.Density
	}
	if f.format != "" {
		doc.Format = f.format
	}
	if f.quality != 0 {
		doc.Quality = f.quality
	}
	if f.font != "" {
		doc.Font = f.font
	}
	if len(f.attrs) > 0 {
		if doc.Style == nil {
			doc.Style = make(map[string]string, len(f.attrs))
		}
		for k, v := range f.attrs {
			doc.Style[k] = v
		}
	}

	if err := doc.Complete(); err != nil {
		return nil, err
	}
	return doc, nil
}

func (f *documentFlags) renderer(cmd *cobra.Command, app *appContext) (*config.Document, *coupon.Renderer, error) {
	doc, err := f.document(cmd, app)
	if err != nil {
		return nil, nil, err
	}
	src, err := app.fontSource(doc.Font)
	if err != nil {
		return nil, nil, err
	}

	var opts []coupon.Option
	if src != nil {
		opts = append(opts, coupon.WithFontSource(src))
	}
	r := coupon.New(doc.CouponStyle(), opts...)
	r.Layout(doc.Width, doc.Height)
	return doc, r, nil
}

func newRenderCmd(app *appContext) *cobra.Command {
	flags := &documentFlags{}
	var output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a coupon to an image file",
		Example: `  coupongen render -c coupon.yaml -o coupon.png
  coupongen render --width 300 --height 120 -s couponTitle="10 OFF" -s holeType=both -o -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, r, err := flags.renderer(cmd, app)
			if err != nil {
				return err
			}
			if output == "" {
				output = doc.Output
			}
			if output == "" {
				return errors.New("no output: pass --output or set output in the document")
			}
			return writeImage(cmd, app, doc, r, output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, - for stdout")
	return cmd
}

func writeImage(cmd *cobra.Command, app *appContext, doc *config.Document, r *coupon.Renderer, output string) error {
	encode := r.EncodePNG
	if doc.Format == config.FormatJPEG {
		encode = func(w io.Writer) error { return r.EncodeJPEG(w, doc.Quality) }
	}

	var err error
	if output == "-" {
		err = encode(cmd.OutOrStdout())
	} else {
		err = writeFile(output, encode)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", output, err)
	}

	app.log.With(map[string]any{
		"output": output,
		"format": doc.Format,
		"width":  doc.Width,
		"height": doc.Height,
	}).Info("coupon rendered")
	return nil
}

// writeFile creates path and fills it with encode. The file is removed
// when encoding or closing fails.
func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = encode(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return err
	}
	return nil
}

func newOpsCmd(app *appContext) *cobra.Command {
	flags := &documentFlags{}

	cmd := &cobra.Command{
		Use:   "ops",
		Short: "Print the drawing operations of a coupon",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, r, err := flags.renderer(cmd, app)
			if err != nil {
				return err
			}
			var b strings.Builder
			for _, op := range r.Render() {
				b.WriteString(coupon.FormatOp(op))
				b.WriteByte('\n')
			}
			_, err = io.WriteString(cmd.OutOrStdout(), b.String())
			return err
		},
	}

	flags.register(cmd)
	return cmd
}
