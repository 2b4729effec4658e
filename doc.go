// Package coupon renders decorative coupon tickets with gg.
//
// # Overview
//
// A coupon is a rounded rectangle with a background color, optional
// punched holes simulating a ticket perforation, a dashed divider and two
// text blocks: a title and a content line. The title and content either
// stack vertically or sit side by side.
//
// The package does not draw directly. A Renderer turns a Style and a
// surface size into a sequence of typed operations ([Op]) that can be
// inspected, compared or played back onto a [gg.Context] with [Draw].
//
// # Quick Start
//
//	r := coupon.New(coupon.DefaultStyle())
//	r.SetTitle("10 OFF")
//	r.SetContent("Valid until May")
//	r.SetHoleType(coupon.HoleBoth)
//	r.Layout(300, 120)
//
//	f, _ := os.Create("coupon.png")
//	defer f.Close()
//	_ = r.EncodePNG(f)
//
// # Layout
//
// The title owns a fraction of the coupon and the content the rest. With
// [SplitThirds] the title gets one third; with [SplitDivider] it gets
// Style.DividerPercent. In [OrientationVertical] the fraction splits the
// height and both blocks span the full width. In [OrientationHorizontal]
// it splits the width into a title column and a content column.
//
// Holes sit on the split line: the left/right pair at the split height,
// the top/bottom pair at the split column. [HoleLeftRight] places the
// left/right pair at half height instead.
//
// # Caching
//
// Text is measured once per (text, size, width, multiline) combination.
// Configure and Layout rebuild only the blocks whose inputs changed, and
// Render never measures. Every change that needs a redraw increments
// [Renderer.Generation].
//
// # Host attributes
//
// [ParseAttributes] converts host key/value attributes (for example from
// a layout file) into a Style, applying defaults and a density scale.
package coupon
