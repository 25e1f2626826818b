package codequest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// TextAlign controls horizontal text alignment within a text node's width.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)

// TextBlock holds text content, formatting, and cached wrapped lines.
type TextBlock struct {
	Content   string
	Face      text.Face
	Align     TextAlign
	WrapWidth float64 // 0 = no wrapping
	Color     Color
	// Scale enlarges the rendered text uniformly; 0 is treated as 1.
	Scale float64

	dirty   bool
	wrapped string
}

// SetContent replaces the text and invalidates the wrap cache.
func (tb *TextBlock) SetContent(s string) {
	if tb.Content == s {
		return
	}
	tb.Content = s
	tb.dirty = true
}

// lineSpacing returns the face's line height.
func (tb *TextBlock) lineSpacing() float64 {
	if tb.Face == nil {
		return 0
	}
	return LineHeight(tb.Face)
}

func (tb *TextBlock) scale() float64 {
	if tb.Scale <= 0 {
		return 1
	}
	return tb.Scale
}

// layout returns the content with wrap breaks applied.
func (tb *TextBlock) layout() string {
	if !tb.dirty {
		return tb.wrapped
	}
	tb.dirty = false
	if tb.Face == nil || tb.WrapWidth <= 0 {
		tb.wrapped = tb.Content
		return tb.wrapped
	}
	tb.wrapped = strings.Join(wrapLines(tb.Face, tb.Content, tb.WrapWidth/tb.scale()), "\n")
	return tb.wrapped
}

// Measure returns the rendered size of the block.
func (tb *TextBlock) Measure() (width, height float64) {
	if tb.Face == nil {
		return 0, 0
	}
	w, h := text.Measure(tb.layout(), tb.Face, tb.lineSpacing())
	s := tb.scale()
	return w * s, h * s
}

// draw renders the block with its top-left (or aligned anchor) at (x, y)
// inside a box of width w.
func (tb *TextBlock) draw(target *ebiten.Image, x, y, w, alpha float64) {
	if tb.Face == nil || tb.Content == "" {
		return
	}
	op := &text.DrawOptions{}
	op.LineSpacing = tb.lineSpacing()
	ax := 0.0
	switch tb.Align {
	case TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
		ax = w / 2
	case TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
		ax = w
	}
	s := tb.scale()
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(x+ax, y)
	op.ColorScale = tb.Color.scale(alpha)
	text.Draw(target, tb.layout(), tb.Face, op)
}

// wrapLines breaks s into lines no wider than width, splitting on spaces.
// Existing newlines are kept. A single word wider than width gets its own line.
func wrapLines(face text.Face, s string, width float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			candidate := cur + " " + w
			if cw, _ := text.Measure(candidate, face, 0); cw > width {
				lines = append(lines, cur)
				cur = w
				continue
			}
			cur = candidate
		}
		lines = append(lines, cur)
	}
	return lines
}

// --- Faces ---

// BitmapFace returns the built-in bitmap face used as the skin's default
// font when the skin does not name one.
func BitmapFace() text.Face {
	return text.NewGoXFace(bitmapfont.Face)
}

// LoadTTFFace parses TTF/OTF data and returns a face at the given pixel size.
func LoadTTFFace(ttfData []byte, size float64) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("load ttf font: %w", err)
	}
	if size <= 0 {
		size = 16
	}
	return &text.GoTextFace{Source: source, Size: size}, nil
}

// builtinFonts maps skin font sources to embedded TTF data.
var builtinFonts = map[string][]byte{
	"goregular": goregular.TTF,
	"gomono":    gomono.TTF,
}

// LineHeight returns the distance between baselines for face.
func LineHeight(face text.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// MeasureString returns the single-line size of s in face.
func MeasureString(face text.Face, s string) (width, height float64) {
	return text.Measure(s, face, LineHeight(face))
}
