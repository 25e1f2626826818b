package codequest

import (
	"iter"
	"math/rand/v2"
)

// glyphPool is the character pool streak content is sampled from: Java
// keywords run together, so streaks read like shredded source code.
const glyphPool = "publicstaticvoidclassintfloatdoublebooleanbytecharStringreturnifelseforwhiletrycatchnewextendsimplementsnulltruefalse"

// DefaultStreakCount is the pool size used by the menu and intro screens.
const DefaultStreakCount = 60

// Sampling ranges for glyph streaks.
var (
	streakSpeed  = Range{60, 120}
	streakLength = Range{6, 16}
	streakAlpha  = Range{0.08, 0.22}
)

// streakFloor is the y below which a streak is recycled.
const streakFloor = -20.0

// streak is one falling line of glyphs. Unexported; owned by GlyphRainField.
type streak struct {
	x, y    float64
	speed   float64
	length  int
	content string
	alpha   float64
}

// GlyphRainField drops a fixed pool of glyph streaks from above the top edge
// toward the bottom. Coordinates are y-up, so streaks fall with decreasing y.
// Content is generated only when a streak (re)spawns.
type GlyphRainField struct {
	width, height float64
	tint          Color
	streaks       []streak
	rng           *rand.Rand
	respawns      int
	buf           []byte
}

// NewGlyphRainField creates a field holding count freshly sampled streaks.
// A negative count is treated as zero.
func NewGlyphRainField(width, height float64, count int, tint Color, opts ...FieldOption) *GlyphRainField {
	o := applyFieldOptions(opts)
	f := &GlyphRainField{
		width:   width,
		height:  height,
		tint:    tint,
		streaks: make([]streak, max(count, 0)),
		rng:     o.rng,
	}
	for i := range f.streaks {
		f.streaks[i] = f.spawn()
	}
	return f
}

// spawn samples a streak above the visible area.
func (f *GlyphRainField) spawn() streak {
	s := streak{
		x:      Range{0, f.width}.Random(f.rng),
		y:      Range{f.height, f.height * 2}.Random(f.rng),
		speed:  streakSpeed.Random(f.rng),
		length: int(streakLength.Random(f.rng)),
		alpha:  streakAlpha.Random(f.rng),
	}
	s.content = f.snippet(s.length)
	return s
}

// snippet returns n random characters from glyphPool.
func (f *GlyphRainField) snippet(n int) string {
	f.buf = f.buf[:0]
	for range n {
		var i int
		if f.rng != nil {
			i = f.rng.IntN(len(glyphPool))
		} else {
			i = rand.IntN(len(glyphPool))
		}
		f.buf = append(f.buf, glyphPool[i])
	}
	return string(f.buf)
}

// Advance drops every streak by speed*dt and recycles those below the floor.
func (f *GlyphRainField) Advance(dt float64) {
	for i := range f.streaks {
		s := &f.streaks[i]
		s.y -= s.speed * dt
		if s.y < streakFloor {
			f.streaks[i] = f.spawn()
			f.respawns++
		}
	}
}

// Render yields one glyph run per streak with alpha scaled by parentAlpha.
// The sequence is rebuilt from live state on every call.
func (f *GlyphRainField) Render(parentAlpha float64) iter.Seq[GlyphRun] {
	return func(yield func(GlyphRun) bool) {
		for i := range f.streaks {
			s := &f.streaks[i]
			g := GlyphRun{
				Text:  s.content,
				X:     s.x,
				Y:     s.y,
				Color: f.tint.WithAlpha(s.alpha * parentAlpha),
			}
			if !yield(g) {
				return
			}
		}
	}
}

// Draw submits the field to b.
func (f *GlyphRainField) Draw(b Batch, parentAlpha float64) {
	for g := range f.Render(parentAlpha) {
		b.DrawText(g)
	}
}

// Len returns the pool size.
func (f *GlyphRainField) Len() int {
	return len(f.streaks)
}

// Respawns returns how many streaks have been recycled since construction.
func (f *GlyphRainField) Respawns() int {
	return f.respawns
}

// Size returns the field dimensions.
func (f *GlyphRainField) Size() (width, height float64) {
	return f.width, f.height
}
