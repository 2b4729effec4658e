package coupon

import "github.com/gogpu/gg/text"

// Option configures a Renderer during creation.
//
// Example:
//
//	src, _ := text.NewFontSourceFromFile("NotoSans-Regular.ttf")
//	r := coupon.New(style, coupon.WithFontSource(src))
type Option func(*options)

type options struct {
	source *text.FontSource
}

func defaultOptions() options {
	return options{
		source: nil, // resolved to DefaultFontSource in New
	}
}

// WithFontSource sets the font used to measure and draw coupon text.
// A nil source keeps the default Go Regular font.
func WithFontSource(src *text.FontSource) Option {
	return func(o *options) {
		if src != nil {
			o.source = src
		}
	}
}
