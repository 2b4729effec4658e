package coupon

import (
	"strings"
	"testing"

	"github.com/gogpu/gg"
)

func TestOpTypeString(t *testing.T) {
	tests := []struct {
		typ  OpType
		want string
	}{
		{OpFillRoundRect, "FillRoundRect"},
		{OpClearCircle, "ClearCircle"},
		{OpDashedPath, "DashedPath"},
		{OpDrawText, "DrawText"},
		{OpType(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("OpType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestOpTypes(t *testing.T) {
	ops := []struct {
		op   Op
		want OpType
	}{
		{FillRoundRectOp{}, OpFillRoundRect},
		{ClearCircleOp{}, OpClearCircle},
		{DashedPathOp{}, OpDashedPath},
		{DrawTextOp{}, OpDrawText},
	}
	for _, tt := range ops {
		if got := tt.op.Type(); got != tt.want {
			t.Errorf("%T.Type() = %s, want %s", tt.op, got, tt.want)
		}
	}
}

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 40}
	if r.MaxX() != 110 || r.MaxY() != 60 {
		t.Errorf("MaxX/MaxY = %g/%g, want 110/60", r.MaxX(), r.MaxY())
	}
	if got := r.String(); got != "(10,20)-(110,60)" {
		t.Errorf("String() = %q", got)
	}
}

func TestFormatOp(t *testing.T) {
	tests := []struct {
		op   Op
		want []string
	}{
		{
			FillRoundRectOp{Rect: Rect{W: 300, H: 120}, Radius: 30, Color: gg.Hex("#FF7043")},
			[]string{"FillRoundRect", "(0,0)-(300,120)", "radius=30", "#FF7043FF"},
		},
		{
			ClearCircleOp{X: 100, Y: 0, Radius: 20},
			[]string{"ClearCircle", "center=(100,0)", "radius=20"},
		},
		{
			DashedPathOp{Segments: []Segment{{X1: 20, Y1: 40, X2: 280, Y2: 40}}, Dash: 20, Width: 2, Color: gg.White},
			[]string{"DashedPath", "dash=20", "(20,40)->(280,40)", "#FFFFFFFF"},
		},
		{
			DrawTextOp{Block: &TextBlock{Text: "10 OFF", Lines: []TextLine{{Text: "10 OFF"}}}, X: 1, Y: 2},
			[]string{"DrawText", `"10 OFF"`, "at=(1,2)", "lines=1"},
		},
		{nil, []string{"<nil>"}},
	}
	for _, tt := range tests {
		got := FormatOp(tt.op)
		for _, w := range tt.want {
			if !strings.Contains(got, w) {
				t.Errorf("FormatOp() = %q, missing %q", got, w)
			}
		}
	}
}
