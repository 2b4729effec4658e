package coupon

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// OpType identifies the type of a drawing operation.
type OpType uint8

const (
	OpFillRoundRect OpType = iota // Fill a rounded rectangle
	OpClearCircle                 // Erase a circle from the destination
	OpDashedPath                  // Stroke a dashed path
	OpDrawText                    // Draw a text block
)

var opTypeNames = [...]string{
	OpFillRoundRect: "FillRoundRect",
	OpClearCircle:   "ClearCircle",
	OpDashedPath:    "DashedPath",
	OpDrawText:      "DrawText",
}

// String returns the string representation of an OpType.
func (t OpType) String() string {
	if int(t) < len(opTypeNames) {
		return opTypeNames[t]
	}
	return unknownStr
}

// Op is a single primitive drawing operation produced by Renderer.Render.
// Ops are plain values and can be inspected, compared or replayed with Draw.
type Op interface {
	// Type returns the OpType for this operation.
	Type() OpType
}

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y, W, H float64
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// String returns the rectangle as "(x0,y0)-(x1,y1)".
func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.X, r.Y, r.MaxX(), r.MaxY())
}

// Segment is a straight line from (X1, Y1) to (X2, Y2).
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// FillRoundRectOp fills a rounded rectangle with a solid color.
type FillRoundRectOp struct {
	Rect   Rect
	Radius float64
	Color  gg.RGBA
}

// Type implements Op.
func (FillRoundRectOp) Type() OpType { return OpFillRoundRect }

// ClearCircleOp erases every destination pixel covered by a circle,
// leaving it fully transparent.
type ClearCircleOp struct {
	X, Y   float64
	Radius float64
}

// Type implements Op.
func (ClearCircleOp) Type() OpType { return OpClearCircle }

// DashedPathOp strokes one or more segments with the dash pattern
// [Dash, Dash]. A zero Dash strokes solid lines.
type DashedPathOp struct {
	Segments []Segment
	Dash     float64
	Width    float64
	Color    gg.RGBA
}

// Type implements Op.
func (DashedPathOp) Type() OpType { return OpDashedPath }

// DrawTextOp draws a text block with its top-left corner at (X, Y).
// Region is the area the block was centered in.
type DrawTextOp struct {
	Block  *TextBlock
	Region Rect
	X, Y   float64
	Color  gg.RGBA
}

// Type implements Op.
func (DrawTextOp) Type() OpType { return OpDrawText }

// FormatOp returns a one-line human readable description of op.
func FormatOp(op Op) string {
	switch o := op.(type) {
	case FillRoundRectOp:
		return fmt.Sprintf("%s %s radius=%g color=%s", o.Type(), o.Rect, o.Radius, hexColor(o.Color))
	case ClearCircleOp:
		return fmt.Sprintf("%s center=(%g,%g) radius=%g", o.Type(), o.X, o.Y, o.Radius)
	case DashedPathOp:
		s := fmt.Sprintf("%s dash=%g width=%g color=%s", o.Type(), o.Dash, o.Width, hexColor(o.Color))
		for _, seg := range o.Segments {
			s += fmt.Sprintf(" (%g,%g)->(%g,%g)", seg.X1, seg.Y1, seg.X2, seg.Y2)
		}
		return s
	case DrawTextOp:
		var lines int
		var text string
		if o.Block != nil {
			lines = len(o.Block.Lines)
			text = o.Block.Text
		}
		return fmt.Sprintf("%s %q at=(%g,%g) region=%s lines=%d color=%s",
			o.Type(), text, o.X, o.Y, o.Region, lines, hexColor(o.Color))
	case nil:
		return "<nil>"
	default:
		return op.Type().String()
	}
}

// hexColor formats c as #RRGGBBAA.
func hexColor(c gg.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", channel8(c.R), channel8(c.G), channel8(c.B), channel8(c.A))
}

func channel8(v float64) uint8 {
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 1:
		return 255
	}
	return uint8(math.Round(v * 255))
}
