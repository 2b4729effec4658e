package coupon

import "math"

// layoutGeometry is everything the render pass derives from the style and
// the surface size.
type layoutGeometry struct {
	w, h float64

	// splitX and splitY are the split column and the split row.
	splitX, splitY float64

	titleRegion   Rect
	contentRegion Rect

	titleWidth   float64
	contentWidth float64
}

func computeGeometry(s Style, w, h float64) layoutGeometry {
	g := layoutGeometry{w: w, h: h, splitX: s.splitAt(w), splitY: s.splitAt(h)}

	if s.Orientation == OrientationVertical {
		split := g.splitY
		g.titleRegion = Rect{X: 0, Y: 0, W: w, H: split}
		g.contentRegion = Rect{X: 0, Y: split, W: w, H: h - split}
		g.titleWidth = columnWidth(w)
		g.contentWidth = columnWidth(w)
		return g
	}

	split := g.splitX
	g.titleRegion = Rect{X: 0, Y: 0, W: split, H: h}
	g.contentRegion = Rect{X: split, Y: 0, W: w - split, H: h}
	g.titleWidth = columnWidth(split)
	g.contentWidth = columnWidth(w - split)
	return g
}

// holes returns the cut-outs and their connecting divider segments, the
// horizontal pair first.
func (g layoutGeometry) holes(s Style) ([]ClearCircleOp, []Segment) {
	var (
		circles  []ClearCircleOp
		segments []Segment
		r        = s.HoleRadius
	)

	if s.HoleType.horizontal() {
		y := g.splitY
		if s.HoleType == HoleLeftRight {
			y = g.h / 2
		}
		circles = append(circles,
			ClearCircleOp{X: 0, Y: y, Radius: r},
			ClearCircleOp{X: g.w, Y: y, Radius: r},
		)
		segments = append(segments, Segment{X1: r, Y1: y, X2: g.w - r, Y2: y})
	}

	if s.HoleType.vertical() {
		x := g.splitX
		circles = append(circles,
			ClearCircleOp{X: x, Y: 0, Radius: r},
			ClearCircleOp{X: x, Y: g.h, Radius: r},
		)
		segments = append(segments, Segment{X1: x, Y1: r, X2: x, Y2: g.h - r})
	}

	if s.HoleType == HoleNone && s.ShowDivider {
		if s.Orientation == OrientationVertical {
			y := g.splitY
			segments = append(segments, Segment{X1: 0, Y1: y, X2: g.w, Y2: y})
		} else {
			x := g.splitX
			segments = append(segments, Segment{X1: x, Y1: 0, X2: x, Y2: g.h})
		}
	}

	return circles, segments
}

// cornerRadius limits the configured radius to what fits the surface.
func (g layoutGeometry) cornerRadius(r float64) float64 {
	return math.Min(r, math.Min(g.w, g.h)/2)
}
