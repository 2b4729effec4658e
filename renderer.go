package coupon

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Renderer turns a Style and a surface size into a sequence of drawing
// operations.
//
// A Renderer caches the measured title and content blocks. Configure and
// Layout rebuild only the blocks whose inputs changed; Render never
// measures text.
//
// Renderer is not safe for concurrent use. Hosts that draw from several
// goroutines must serialize calls.
type Renderer struct {
	style  Style
	source *text.FontSource

	width, height float64
	laidOut       bool

	title   *TextBlock
	content *TextBlock

	generation uint64
	builds     int
}

// New creates a renderer for style. The style is sanitized first.
func New(style Style, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = DefaultFontSource()
	}
	return &Renderer{
		style:  style.Sanitize(),
		source: o.source,
	}
}

// Style returns the current, sanitized style.
func (r *Renderer) Style() Style {
	return r.style
}

// Size returns the surface size of the last valid Layout call.
func (r *Renderer) Size() (width, height float64) {
	return r.width, r.height
}

// Generation returns a counter that increases every time the coupon
// needs to be redrawn. Hosts compare it with the generation they last
// drew instead of receiving invalidation callbacks.
func (r *Renderer) Generation() uint64 {
	return r.generation
}

// TitleBlock returns the measured title, or nil before the first layout.
func (r *Renderer) TitleBlock() *TextBlock {
	return r.title
}

// ContentBlock returns the measured content, or nil before the first layout.
func (r *Renderer) ContentBlock() *TextBlock {
	return r.content
}

// Configure replaces the style. An unchanged style is a no-op. Otherwise
// the text blocks whose inputs changed are rebuilt and a redraw is
// requested.
func (r *Renderer) Configure(style Style) {
	style = style.Sanitize()
	if style == r.style {
		return
	}
	r.style = style
	r.generation++
	if r.laidOut {
		r.measure()
	}
}

// Layout sets the surface size. A width of zero or less is ignored until
// a valid size arrives, keeping the previous surface and text blocks.
func (r *Renderer) Layout(width, height float64) {
	if !(width > 0) {
		Logger().Debug("coupon: layout deferred", "width", width, "height", height)
		return
	}
	height = nonNegative(height)
	if r.laidOut && width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	r.laidOut = true
	r.generation++
	r.measure()
}

// measure rebuilds the blocks whose key no longer matches.
func (r *Renderer) measure() {
	g := computeGeometry(r.style, r.width, r.height)

	titleKey := blockKey{
		text:      r.style.Title,
		size:      r.style.TitleTextSize,
		width:     g.titleWidth,
		multiline: r.style.Multiline,
		source:    r.source,
	}
	if r.title == nil || r.title.key != titleKey {
		r.title = layoutTextBlock(titleKey)
		r.builds++
		Logger().Debug("coupon: title measured", "width", titleKey.width, "lines", len(r.title.Lines))
	}

	contentKey := blockKey{
		text:      r.style.Content,
		size:      r.style.ContentTextSize,
		width:     g.contentWidth,
		multiline: r.style.Multiline,
		source:    r.source,
	}
	if r.content == nil || r.content.key != contentKey {
		r.content = layoutTextBlock(contentKey)
		r.builds++
		Logger().Debug("coupon: content measured", "width", contentKey.width, "lines", len(r.content.Lines))
	}
}

// Render returns the drawing operations for the current style and
// surface. It returns nil before the first valid Layout.
//
// Render has no side effects: calling it twice without an intervening
// Configure or Layout returns equal operations.
func (r *Renderer) Render() []Op {
	if !r.laidOut {
		return nil
	}
	s := r.style
	g := computeGeometry(s, r.width, r.height)
	circles, segments := g.holes(s)

	ops := make([]Op, 0, 4+len(circles))
	ops = append(ops, FillRoundRectOp{
		Rect:   Rect{X: 0, Y: 0, W: g.w, H: g.h},
		Radius: g.cornerRadius(s.CornerRadius),
		Color:  s.Background,
	})
	for _, c := range circles {
		ops = append(ops, c)
	}
	if len(segments) > 0 {
		ops = append(ops, DashedPathOp{
			Segments: segments,
			Dash:     s.DividerGap,
			Width:    s.DividerWidth,
			Color:    s.DividerColor,
		})
	}

	tx, ty := r.title.centerIn(g.titleRegion)
	ops = append(ops, DrawTextOp{Block: r.title, Region: g.titleRegion, X: tx, Y: ty, Color: s.TitleColor})
	cx, cy := r.content.centerIn(g.contentRegion)
	ops = append(ops, DrawTextOp{Block: r.content, Region: g.contentRegion, X: cx, Y: cy, Color: s.ContentColor})
	return ops
}

// SetTitle replaces the title text.
func (r *Renderer) SetTitle(s string) { r.update(func(st *Style) { st.Title = s }) }

// SetContent replaces the content text.
func (r *Renderer) SetContent(s string) { r.update(func(st *Style) { st.Content = s }) }

// SetBackgroundColor sets the coupon fill.
func (r *Renderer) SetBackgroundColor(c gg.RGBA) { r.update(func(st *Style) { st.Background = c }) }

// SetTitleColor sets the title text color.
func (r *Renderer) SetTitleColor(c gg.RGBA) { r.update(func(st *Style) { st.TitleColor = c }) }

// SetContentColor sets the content text color.
func (r *Renderer) SetContentColor(c gg.RGBA) { r.update(func(st *Style) { st.ContentColor = c }) }

// SetTitleTextSize sets the title font size.
func (r *Renderer) SetTitleTextSize(size float64) {
	r.update(func(st *Style) { st.TitleTextSize = size })
}

// SetContentTextSize sets the content font size.
func (r *Renderer) SetContentTextSize(size float64) {
	r.update(func(st *Style) { st.ContentTextSize = size })
}

// SetCornerRadius sets the background corner radius.
func (r *Renderer) SetCornerRadius(radius float64) {
	r.update(func(st *Style) { st.CornerRadius = radius })
}

// SetHoleRadius sets the radius of every hole.
func (r *Renderer) SetHoleRadius(radius float64) {
	r.update(func(st *Style) { st.HoleRadius = radius })
}

// SetDividerGap sets the dash and gap length of the divider.
func (r *Renderer) SetDividerGap(gap float64) { r.update(func(st *Style) { st.DividerGap = gap }) }

// SetDividerPercent sets the title fraction used by SplitDivider.
func (r *Renderer) SetDividerPercent(p float64) {
	r.update(func(st *Style) { st.DividerPercent = p })
}

// SetHoleType selects the holes to punch.
func (r *Renderer) SetHoleType(t HoleType) { r.update(func(st *Style) { st.HoleType = t }) }

// SetTextOrientation selects stacked or side-by-side text.
func (r *Renderer) SetTextOrientation(o TextOrientation) {
	r.update(func(st *Style) { st.Orientation = o })
}

// SetMultiline toggles text wrapping.
func (r *Renderer) SetMultiline(on bool) { r.update(func(st *Style) { st.Multiline = on }) }

// SetSplit selects the title/content split policy.
func (r *Renderer) SetSplit(p SplitPolicy) { r.update(func(st *Style) { st.Split = p }) }

func (r *Renderer) update(fn func(*Style)) {
	s := r.style
	fn(&s)
	r.Configure(s)
}
