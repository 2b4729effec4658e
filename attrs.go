package coupon

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// Attribute keys understood by ParseAttributes.
const (
	AttrTitle           = "couponTitle"
	AttrContent         = "couponContent"
	AttrBgColor         = "couponBgColor"
	AttrTitleColor      = "couponTitleColor"
	AttrContentColor    = "couponContentColor"
	AttrTitleTextSize   = "couponTitleTextSize"
	AttrContentTextSize = "couponContentTextSize"
	AttrHoleType        = "holeType"
	AttrTextOrientation = "textOrientation"
	AttrHoleRadius      = "holeRadius"
	AttrDividerGap      = "dividerGap"
	AttrDividerPercent  = "dividerPercent"
	AttrCornerRadius    = "cornerRadius"
	AttrDividerColor    = "dividerColor"
	AttrDividerWidth    = "dividerWidth"
	AttrMultiline       = "multiline"
	AttrSplit           = "split"
	AttrShowDivider     = "showDivider"
)

var attrKeys = map[string]struct{}{
	AttrTitle: {}, AttrContent: {}, AttrBgColor: {}, AttrTitleColor: {},
	AttrContentColor: {}, AttrTitleTextSize: {}, AttrContentTextSize: {},
	AttrHoleType: {}, AttrTextOrientation: {}, AttrHoleRadius: {},
	AttrDividerGap: {}, AttrDividerPercent: {}, AttrCornerRadius: {},
	AttrDividerColor: {}, AttrDividerWidth: {}, AttrMultiline: {},
	AttrSplit: {}, AttrShowDivider: {},
}

// IsAttribute reports whether key is an attribute ParseAttributes reads.
func IsAttribute(key string) bool {
	_, ok := attrKeys[key]
	return ok
}

// ParseAttributes builds a Style from host supplied key/value attributes.
//
// Missing or malformed values keep their defaults. Sizes may carry a
// px, dp, dip or sp suffix; everything except px is multiplied by
// density, as are the defaults. A density of zero or less means 1.
func ParseAttributes(attrs map[string]string, density float64) Style {
	if !(density > 0) || math.IsInf(density, 0) {
		density = 1
	}

	s := DefaultStyle()
	s.TitleTextSize *= density
	s.ContentTextSize *= density
	s.CornerRadius *= density
	s.HoleRadius *= density
	s.DividerGap *= density
	s.DividerWidth *= density

	if v, ok := attrs[AttrTitle]; ok {
		s.Title = v
	}
	if v, ok := attrs[AttrContent]; ok {
		s.Content = v
	}

	s.Background = colorAttr(attrs, AttrBgColor, s.Background)
	s.TitleColor = colorAttr(attrs, AttrTitleColor, s.TitleColor)
	s.ContentColor = colorAttr(attrs, AttrContentColor, s.ContentColor)
	s.DividerColor = colorAttr(attrs, AttrDividerColor, s.DividerColor)

	s.TitleTextSize = sizeAttr(attrs, AttrTitleTextSize, density, s.TitleTextSize)
	s.ContentTextSize = sizeAttr(attrs, AttrContentTextSize, density, s.ContentTextSize)
	s.HoleRadius = sizeAttr(attrs, AttrHoleRadius, density, s.HoleRadius)
	s.DividerGap = sizeAttr(attrs, AttrDividerGap, density, s.DividerGap)
	s.CornerRadius = sizeAttr(attrs, AttrCornerRadius, density, s.CornerRadius)
	s.DividerWidth = sizeAttr(attrs, AttrDividerWidth, density, s.DividerWidth)

	if v, ok := attrs[AttrDividerPercent]; ok {
		if f, ok := parseFraction(v); ok {
			s.DividerPercent = f
		}
	}
	if v, ok := attrs[AttrHoleType]; ok {
		if h, ok := ParseHoleType(v); ok {
			s.HoleType = h
		}
	}
	if v, ok := attrs[AttrTextOrientation]; ok {
		if o, ok := ParseTextOrientation(v); ok {
			s.Orientation = o
		}
	}
	if v, ok := attrs[AttrSplit]; ok {
		if p, ok := ParseSplitPolicy(v); ok {
			s.Split = p
		}
	}
	if v, ok := attrs[AttrMultiline]; ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			s.Multiline = b
		}
	}
	if v, ok := attrs[AttrShowDivider]; ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			s.ShowDivider = b
		}
	}

	return s.Sanitize()
}

// ParseHoleType accepts a hole type name (case-insensitive, "left_right"
// and "leftRight" alike) or its numeric code.
func ParseHoleType(v string) (HoleType, bool) {
	v = normalizeEnum(v)
	for i, name := range holeTypeNames {
		if v == strings.ToLower(name) || v == strconv.Itoa(i) {
			return HoleType(i), true
		}
	}
	return HoleNone, false
}

// ParseTextOrientation accepts "horizontal", "vertical" or the codes 0
// and 1.
func ParseTextOrientation(v string) (TextOrientation, bool) {
	switch normalizeEnum(v) {
	case "horizontal", "0":
		return OrientationHorizontal, true
	case "vertical", "1":
		return OrientationVertical, true
	}
	return OrientationVertical, false
}

// ParseSplitPolicy accepts "thirds", "divider" or the codes 0 and 1.
func ParseSplitPolicy(v string) (SplitPolicy, bool) {
	switch normalizeEnum(v) {
	case "thirds", "0":
		return SplitThirds, true
	case "divider", "1":
		return SplitDivider, true
	}
	return SplitThirds, false
}

func normalizeEnum(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	return strings.NewReplacer("_", "", "-", "").Replace(v)
}

// ParseColor parses #RGB, #ARGB, #RRGGBB, #AARRGGBB and the names white,
// black and transparent. Alpha comes first, as in host color resources.
func ParseColor(v string) (gg.RGBA, bool) {
	v = strings.TrimSpace(v)
	switch strings.ToLower(v) {
	case "white":
		return gg.White, true
	case "black":
		return gg.Black, true
	case "transparent":
		return gg.Transparent, true
	}
	if !strings.HasPrefix(v, "#") {
		return gg.RGBA{}, false
	}
	hex := v[1:]

	switch len(hex) {
	case 3, 4:
		// Expand each nibble: "F70" -> "FF7700".
		var b strings.Builder
		for _, c := range hex {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		hex = b.String()
	case 6, 8:
	default:
		return gg.RGBA{}, false
	}

	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return gg.RGBA{}, false
	}
	a := uint64(0xFF)
	if len(hex) == 8 {
		a = n >> 24
	}
	return gg.RGBA{
		R: float64(n>>16&0xFF) / 255,
		G: float64(n>>8&0xFF) / 255,
		B: float64(n&0xFF) / 255,
		A: float64(a&0xFF) / 255,
	}, true
}

// ParseSize parses a dimension such as "20", "20dp", "14sp" or "3px".
// Values without a px suffix are multiplied by density.
func ParseSize(v string, density float64) (float64, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	scale := density
	for _, unit := range []string{"dip", "dp", "sp", "px"} {
		if strings.HasSuffix(v, unit) {
			v = strings.TrimSpace(strings.TrimSuffix(v, unit))
			if unit == "px" {
				scale = 1
			}
			break
		}
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f * scale, true
}

// parseFraction parses "0.35" or "35%".
func parseFraction(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	div := 1.0
	if strings.HasSuffix(v, "%") {
		v = strings.TrimSuffix(v, "%")
		div = 100
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f / div, true
}

func colorAttr(attrs map[string]string, key string, def gg.RGBA) gg.RGBA {
	v, ok := attrs[key]
	if !ok {
		return def
	}
	if c, ok := ParseColor(v); ok {
		return c
	}
	Logger().Debug("coupon: malformed color attribute", "key", key, "value", v)
	return def
}

func sizeAttr(attrs map[string]string, key string, density, def float64) float64 {
	v, ok := attrs[key]
	if !ok {
		return def
	}
	if f, ok := ParseSize(v, density); ok {
		return f
	}
	Logger().Debug("coupon: malformed size attribute", "key", key, "value", v)
	return def
}
