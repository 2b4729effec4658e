package coupon

import (
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	defaultSourceOnce sync.Once
	defaultSource     *text.FontSource
)

// DefaultFontSource returns the Go Regular font used when no font source
// is configured. The source is parsed once and shared.
//
// DefaultFontSource returns nil if the embedded font cannot be parsed, in
// which case every text block is empty.
func DefaultFontSource() *text.FontSource {
	defaultSourceOnce.Do(func() {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			Logger().Warn("coupon: default font unavailable", "err", err)
			return
		}
		defaultSource = src
	})
	return defaultSource
}
