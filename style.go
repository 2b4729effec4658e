package coupon

import (
	"math"

	"github.com/gogpu/gg"
)

// HoleType selects which perforation holes are punched into the coupon.
type HoleType uint8

const (
	// HoleNone punches no holes.
	HoleNone HoleType = iota
	// HoleHorizontal punches a hole in the left and right edges at the
	// title/content split and joins them with a horizontal divider.
	HoleHorizontal
	// HoleVertical punches a hole in the top and bottom edges at the
	// title/content split and joins them with a vertical divider.
	HoleVertical
	// HoleBoth punches the horizontal and the vertical pairs.
	HoleBoth
	// HoleLeftRight punches a hole in the left and right edges at
	// half height and joins them with a horizontal divider.
	HoleLeftRight
)

var holeTypeNames = [...]string{
	HoleNone:       "None",
	HoleHorizontal: "Horizontal",
	HoleVertical:   "Vertical",
	HoleBoth:       "Both",
	HoleLeftRight:  "LeftRight",
}

// String returns the string representation of the hole type.
func (h HoleType) String() string {
	if int(h) < len(holeTypeNames) {
		return holeTypeNames[h]
	}
	return unknownStr
}

// horizontal reports whether the left and right edges are punched.
func (h HoleType) horizontal() bool {
	return h == HoleHorizontal || h == HoleBoth || h == HoleLeftRight
}

// vertical reports whether the top and bottom edges are punched.
func (h HoleType) vertical() bool {
	return h == HoleVertical || h == HoleBoth
}

// TextOrientation controls how the title and content blocks are arranged.
type TextOrientation uint8

const (
	// OrientationHorizontal places title and content side by side.
	OrientationHorizontal TextOrientation = iota
	// OrientationVertical stacks the title above the content.
	OrientationVertical
)

// String returns the string representation of the orientation.
func (o TextOrientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "Horizontal"
	case OrientationVertical:
		return "Vertical"
	default:
		return unknownStr
	}
}

// SplitPolicy decides which fraction of the coupon belongs to the title.
type SplitPolicy uint8

const (
	// SplitThirds gives the title one third and the content two thirds.
	SplitThirds SplitPolicy = iota
	// SplitDivider gives the title Style.DividerPercent of the coupon.
	SplitDivider
)

// String returns the string representation of the split policy.
func (p SplitPolicy) String() string {
	switch p {
	case SplitThirds:
		return "Thirds"
	case SplitDivider:
		return "Divider"
	default:
		return unknownStr
	}
}

const unknownStr = "Unknown"

// Default style values.
const (
	DefaultTitleTextSize   = 48.0
	DefaultContentTextSize = 36.0
	DefaultCornerRadius    = 30.0
	DefaultHoleRadius      = 20.0
	DefaultDividerGap      = 20.0
	DefaultDividerPercent  = 0.35
	DefaultDividerWidth    = 2.0
)

// DefaultBackground is the coupon fill used when no color is configured.
var DefaultBackground = gg.Hex("#FF7043")

// Style is the complete configuration of a coupon.
//
// Style is a comparable value: two styles that compare equal render
// identically. Sizes are in device-independent pixels.
type Style struct {
	Title   string
	Content string

	Background   gg.RGBA
	TitleColor   gg.RGBA
	ContentColor gg.RGBA

	TitleTextSize   float64
	ContentTextSize float64

	CornerRadius float64
	HoleRadius   float64

	// DividerGap is both the dash length and the gap of the divider.
	// Zero draws a solid divider.
	DividerGap float64
	// DividerPercent is the title fraction used by SplitDivider, in [0, 1].
	DividerPercent float64
	DividerColor   gg.RGBA
	DividerWidth   float64

	HoleType    HoleType
	Orientation TextOrientation
	Split       SplitPolicy

	// Multiline wraps text at the allotted width. When false each block
	// is drawn as a single unwrapped line.
	Multiline bool

	// ShowDivider draws the divider at the split even when HoleType is
	// HoleNone.
	ShowDivider bool
}

// DefaultStyle returns the style a coupon has when nothing is configured.
func DefaultStyle() Style {
	return Style{
		Background:      DefaultBackground,
		TitleColor:      gg.White,
		ContentColor:    gg.White,
		TitleTextSize:   DefaultTitleTextSize,
		ContentTextSize: DefaultContentTextSize,
		CornerRadius:    DefaultCornerRadius,
		HoleRadius:      DefaultHoleRadius,
		DividerGap:      DefaultDividerGap,
		DividerPercent:  DefaultDividerPercent,
		DividerColor:    gg.White,
		DividerWidth:    DefaultDividerWidth,
		HoleType:        HoleNone,
		Orientation:     OrientationVertical,
		Split:           SplitThirds,
		Multiline:       true,
	}
}

// Sanitize returns a copy of s with every field clamped into its valid
// range. Unknown enum values fall back to their defaults.
func (s Style) Sanitize() Style {
	s.TitleTextSize = nonNegative(s.TitleTextSize)
	s.ContentTextSize = nonNegative(s.ContentTextSize)
	s.CornerRadius = nonNegative(s.CornerRadius)
	s.HoleRadius = nonNegative(s.HoleRadius)
	s.DividerGap = nonNegative(s.DividerGap)
	s.DividerWidth = nonNegative(s.DividerWidth)
	s.Background = clampColor(s.Background)
	s.TitleColor = clampColor(s.TitleColor)
	s.ContentColor = clampColor(s.ContentColor)
	s.DividerColor = clampColor(s.DividerColor)

	switch {
	case math.IsNaN(s.DividerPercent):
		s.DividerPercent = DefaultDividerPercent
	case s.DividerPercent < 0:
		s.DividerPercent = 0
	case s.DividerPercent > 1:
		s.DividerPercent = 1
	}

	if int(s.HoleType) >= len(holeTypeNames) {
		s.HoleType = HoleNone
	}
	if s.Orientation > OrientationVertical {
		s.Orientation = OrientationVertical
	}
	if s.Split > SplitDivider {
		s.Split = SplitThirds
	}
	return s
}

// splitAt returns the length of total that belongs to the title.
func (s Style) splitAt(total float64) float64 {
	if s.Split == SplitDivider {
		return total * s.DividerPercent
	}
	return total / 3
}

// clampColor keeps every channel in [0, 1]. NaN becomes 0 so that
// sanitized styles stay comparable with ==.
func clampColor(c gg.RGBA) gg.RGBA {
	return gg.RGBA{R: unit(c.R), G: unit(c.G), B: unit(c.B), A: unit(c.A)}
}

func unit(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// nonNegative maps negative, NaN and infinite values to zero.
func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
