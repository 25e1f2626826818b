package codequest

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Quad is a solid, tinted rectangle. X and Y locate the bottom-left corner in
// the y-up field space used by ParticleField.
type Quad struct {
	X, Y          float64
	Width, Height float64
	Color         Color
}

// GlyphRun is a tinted string. X and Y locate the top-left of the first line
// in the y-up field space used by GlyphRainField.
type GlyphRun struct {
	Text  string
	X, Y  float64
	Color Color
}

// Batch receives draw commands from the decorative fields. Implementations
// must consume each command immediately; fields reuse nothing between calls.
type Batch interface {
	DrawQuad(q Quad)
	DrawText(g GlyphRun)
}

// batchStats counts commands submitted through an imageBatch.
type batchStats struct {
	quads  int
	glyphs int
}

// imageBatch draws commands onto an Ebitengine image. Field space is y-up with
// its origin at (originX, originY+height) in screen space, so every command is
// flipped as it is submitted.
type imageBatch struct {
	target  *ebiten.Image
	face    text.Face
	originX float64
	originY float64
	height  float64
	stats   *batchStats

	quadOp ebiten.DrawImageOptions
	textOp text.DrawOptions
}

// newImageBatch returns a batch drawing into target. The field occupies the
// screen rectangle whose top-left is (x, y) and whose height is h.
func newImageBatch(target *ebiten.Image, face text.Face, x, y, h float64, stats *batchStats) *imageBatch {
	return &imageBatch{
		target:  target,
		face:    face,
		originX: x,
		originY: y,
		height:  h,
		stats:   stats,
	}
}

// DrawQuad stretches WhitePixel over the quad's rectangle.
func (b *imageBatch) DrawQuad(q Quad) {
	if q.Color.A <= 0 || q.Width <= 0 || q.Height <= 0 {
		return
	}
	op := &b.quadOp
	op.GeoM.Reset()
	op.GeoM.Scale(q.Width, q.Height)
	op.GeoM.Translate(b.originX+q.X, b.originY+b.height-q.Y-q.Height)
	op.ColorScale = q.Color.scale(1)
	b.target.DrawImage(WhitePixel, op)
	if b.stats != nil {
		b.stats.quads++
	}
}

// DrawText renders the run with the batch's face. Runs are skipped when the
// batch has no face.
func (b *imageBatch) DrawText(g GlyphRun) {
	if b.face == nil || g.Color.A <= 0 || g.Text == "" {
		return
	}
	op := &b.textOp
	op.GeoM.Reset()
	op.GeoM.Translate(b.originX+g.X, b.originY+b.height-g.Y)
	op.ColorScale = g.Color.scale(1)
	text.Draw(b.target, g.Text, b.face, op)
	if b.stats != nil {
		b.stats.glyphs++
	}
}
