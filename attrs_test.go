package coupon

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestParseAttributesDefaults(t *testing.T) {
	got := ParseAttributes(nil, 1)
	if got != DefaultStyle() {
		t.Errorf("ParseAttributes(nil) = %+v, want DefaultStyle()", got)
	}
}

func TestParseAttributesDensity(t *testing.T) {
	s := ParseAttributes(map[string]string{
		AttrHoleRadius: "10px",
		AttrDividerGap: "4dp",
	}, 2)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"title size default scaled", s.TitleTextSize, 96},
		{"content size default scaled", s.ContentTextSize, 72},
		{"corner default scaled", s.CornerRadius, 60},
		{"hole px not scaled", s.HoleRadius, 10},
		{"gap dp scaled", s.DividerGap, 8},
		{"divider width default scaled", s.DividerWidth, 4},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %g, want %g", tt.name, tt.got, tt.want)
		}
	}
}

func TestParseAttributesFull(t *testing.T) {
	s := ParseAttributes(map[string]string{
		AttrTitle:           "10 OFF",
		AttrContent:         "Valid until May",
		AttrBgColor:         "#FF000000",
		AttrTitleColor:      "black",
		AttrContentColor:    "#80FFFFFF",
		AttrTitleTextSize:   "20sp",
		AttrContentTextSize: "12",
		AttrHoleType:        "both",
		AttrTextOrientation: "horizontal",
		AttrDividerPercent:  "50%",
		AttrCornerRadius:    "0",
		AttrDividerColor:    "#00F",
		AttrMultiline:       "false",
		AttrSplit:           "divider",
		AttrShowDivider:     "true",
	}, 1)

	if s.Title != "10 OFF" || s.Content != "Valid until May" {
		t.Errorf("text = %q/%q", s.Title, s.Content)
	}
	if s.Background != gg.Black {
		t.Errorf("background = %+v, want opaque black", s.Background)
	}
	if s.TitleColor != gg.Black {
		t.Errorf("title color = %+v, want black", s.TitleColor)
	}
	if math.Abs(s.ContentColor.A-128.0/255) > 1e-9 || s.ContentColor.R != 1 {
		t.Errorf("content color = %+v, want half transparent white", s.ContentColor)
	}
	if s.DividerColor != (gg.RGBA{R: 0, G: 0, B: 1, A: 1}) {
		t.Errorf("divider color = %+v, want blue", s.DividerColor)
	}
	if s.TitleTextSize != 20 || s.ContentTextSize != 12 || s.CornerRadius != 0 {
		t.Errorf("sizes = %g %g %g", s.TitleTextSize, s.ContentTextSize, s.CornerRadius)
	}
	if s.HoleType != HoleBoth || s.Orientation != OrientationHorizontal || s.Split != SplitDivider {
		t.Errorf("enums = %s %s %s", s.HoleType, s.Orientation, s.Split)
	}
	if s.DividerPercent != 0.5 {
		t.Errorf("divider percent = %g, want 0.5", s.DividerPercent)
	}
	if s.Multiline || !s.ShowDivider {
		t.Errorf("flags multiline=%v showDivider=%v", s.Multiline, s.ShowDivider)
	}
}

func TestParseAttributesMalformed(t *testing.T) {
	s := ParseAttributes(map[string]string{
		AttrBgColor:         "orange",
		AttrTitleColor:      "#12345",
		AttrHoleRadius:      "wide",
		AttrCornerRadius:    "-4dp",
		AttrHoleType:        "diagonal",
		AttrTextOrientation: "7",
		AttrDividerPercent:  "1.5",
		AttrMultiline:       "maybe",
	}, -3)

	def := DefaultStyle()
	if s.Background != def.Background || s.TitleColor != def.TitleColor {
		t.Error("malformed colors did not fall back to defaults")
	}
	if s.HoleRadius != def.HoleRadius {
		t.Errorf("hole radius = %g, want default %g", s.HoleRadius, def.HoleRadius)
	}
	if s.CornerRadius != 0 {
		t.Errorf("corner radius = %g, want negative clamped to 0", s.CornerRadius)
	}
	if s.HoleType != HoleNone || s.Orientation != OrientationVertical {
		t.Errorf("enums = %s %s, want defaults", s.HoleType, s.Orientation)
	}
	if s.DividerPercent != 1 {
		t.Errorf("divider percent = %g, want clamped 1", s.DividerPercent)
	}
	if !s.Multiline {
		t.Error("malformed multiline changed the default")
	}
}

func TestParseHoleType(t *testing.T) {
	tests := []struct {
		in   string
		want HoleType
		ok   bool
	}{
		{"none", HoleNone, true},
		{"Horizontal", HoleHorizontal, true},
		{" VERTICAL ", HoleVertical, true},
		{"both", HoleBoth, true},
		{"leftRight", HoleLeftRight, true},
		{"left_right", HoleLeftRight, true},
		{"3", HoleBoth, true},
		{"4", HoleLeftRight, true},
		{"5", HoleNone, false},
		{"", HoleNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseHoleType(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseHoleType(%q) = %s, %v; want %s, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseTextOrientation(t *testing.T) {
	tests := []struct {
		in   string
		want TextOrientation
		ok   bool
	}{
		{"horizontal", OrientationHorizontal, true},
		{"0", OrientationHorizontal, true},
		{"Vertical", OrientationVertical, true},
		{"1", OrientationVertical, true},
		{"sideways", OrientationVertical, false},
	}
	for _, tt := range tests {
		got, ok := ParseTextOrientation(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseTextOrientation(%q) = %s, %v; want %s, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want gg.RGBA
		ok   bool
	}{
		{"#FFF", gg.White, true},
		{"#0000", gg.Transparent, true},
		{"#FF0000", gg.RGBA{R: 1, A: 1}, true},
		{"#00FF0000", gg.RGBA{R: 1, A: 0}, true},
		{"White", gg.White, true},
		{"transparent", gg.Transparent, true},
		{"FF0000", gg.RGBA{}, false},
		{"#GG0000", gg.RGBA{}, false},
		{"#12345", gg.RGBA{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseColor(%q) = %+v, %v; want %+v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		density float64
		want    float64
		ok      bool
	}{
		{"20", 1.5, 30, true},
		{"20dp", 2, 40, true},
		{"20dip", 2, 40, true},
		{"14sp", 2, 28, true},
		{"3px", 2, 3, true},
		{" 3 PX ", 2, 3, true},
		{"1e400", 1, 0, false},
		{"dp", 1, 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseSize(tt.in, tt.density)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseSize(%q, %g) = %g, %v; want %g, %v", tt.in, tt.density, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIsAttribute(t *testing.T) {
	for _, key := range []string{AttrTitle, AttrHoleType, AttrShowDivider, AttrDividerPercent} {
		if !IsAttribute(key) {
			t.Errorf("IsAttribute(%q) = false", key)
		}
	}
	for _, key := range []string{"", "title", "CouponTitle"} {
		if IsAttribute(key) {
			t.Errorf("IsAttribute(%q) = true", key)
		}
	}
}
