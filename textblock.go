package coupon

import (
	"math"
	"strings"

	"github.com/gogpu/gg/text"
	"golang.org/x/text/unicode/norm"
)

// TextLine is one laid out line of a TextBlock.
type TextLine struct {
	// Text is the content of the line without trailing spaces.
	Text string
	// X is the horizontal offset of the line inside the block.
	X float64
	// Baseline is the baseline position of the line inside the block.
	Baseline float64
	// Width is the advance width of Text.
	Width float64
}

// TextBlock is measured text ready to be drawn at a fixed width.
//
// A TextBlock is immutable. The renderer replaces it whenever the text,
// the text size or the allotted width changes.
type TextBlock struct {
	Text      string
	Size      float64
	Multiline bool

	Lines  []TextLine
	Width  float64
	Height float64

	face text.Face
	key  blockKey
}

// Face returns the font face the block was measured with, or nil for an
// empty block.
func (b *TextBlock) Face() text.Face {
	if b == nil {
		return nil
	}
	return b.face
}

// Empty reports whether the block has nothing to draw.
func (b *TextBlock) Empty() bool {
	return b == nil || len(b.Lines) == 0
}

// blockKey holds every input a TextBlock depends on.
type blockKey struct {
	text      string
	size      float64
	width     float64
	multiline bool
	source    *text.FontSource
}

// layoutTextBlock measures k.text with a face of k.size from k.source.
//
// Multiline blocks wrap at k.width and center each line inside it.
// Single-line blocks keep the whole text on one line and are as wide as
// their advance.
func layoutTextBlock(k blockKey) *TextBlock {
	b := &TextBlock{
		Text:      k.text,
		Size:      k.size,
		Multiline: k.multiline,
		key:       k,
	}
	if k.text == "" || k.size <= 0 || k.source == nil {
		return b
	}

	face := k.source.Face(k.size)
	m := face.Metrics()
	lineHeight := m.Ascent + m.Descent
	b.face = face

	s := norm.NFC.String(k.text)
	if !k.multiline {
		s = strings.Join(strings.Fields(s), " ")
		w := face.Advance(s)
		b.Lines = []TextLine{{Text: s, Baseline: m.Ascent, Width: w}}
		b.Width = w
		b.Height = lineHeight
		return b
	}

	wrapped := text.WrapText(s, face, k.width, text.WrapWordChar)
	b.Lines = make([]TextLine, 0, len(wrapped))
	for i, r := range wrapped {
		line := strings.TrimRight(r.Text, " \t")
		w := face.Advance(line)
		b.Lines = append(b.Lines, TextLine{
			Text:     line,
			X:        (k.width - w) / 2,
			Baseline: float64(i)*lineHeight + m.Ascent,
			Width:    w,
		})
	}
	b.Width = k.width
	b.Height = float64(len(b.Lines)) * lineHeight
	return b
}

// centerIn returns the top-left corner that centers a block inside r.
func (b *TextBlock) centerIn(r Rect) (x, y float64) {
	var w, h float64
	if b != nil {
		w, h = b.Width, b.Height
	}
	return r.X + (r.W-w)/2, r.Y + (r.H-h)/2
}

// columnWidth truncates an allotted width to whole pixels.
func columnWidth(w float64) float64 {
	return math.Max(0, math.Floor(w))
}
