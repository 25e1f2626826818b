package codequest

import (
	"iter"
	"math/rand/v2"
)

// Sampling ranges for glitch particles.
var (
	particleVX    = Range{-10, 10}
	particleVY    = Range{5, 20}
	particleAlpha = Range{0.06, 0.2}
	particleSize  = Range{1, 3}
)

// particleMargin is how far a particle may drift past the field edges before
// it is respawned.
const particleMargin = 5.0

// particle holds per-particle simulation state. Unexported; owned by ParticleField.
type particle struct {
	x, y   float64
	vx, vy float64
	alpha  float64
	size   float64
}

// FieldOption configures a ParticleField or GlyphRainField at construction.
type FieldOption func(*fieldOptions)

type fieldOptions struct {
	rng *rand.Rand
}

// WithRand makes the field draw every sample from rng. Fields built with the
// same seeded source evolve identically.
func WithRand(rng *rand.Rand) FieldOption {
	return func(o *fieldOptions) {
		o.rng = rng
	}
}

func applyFieldOptions(opts []FieldOption) fieldOptions {
	var o fieldOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ParticleField drifts a fixed pool of faint square "bits" across a
// width×height area. Coordinates are y-up: particles rise with positive vy.
// A particle leaving the envelope is replaced in its own slot, so the pool
// never grows or shrinks.
type ParticleField struct {
	width, height float64
	tint          Color
	particles     []particle
	rng           *rand.Rand
	respawns      int
}

// NewParticleField creates a field holding count freshly sampled particles.
// A negative count is treated as zero.
func NewParticleField(width, height float64, count int, tint Color, opts ...FieldOption) *ParticleField {
	o := applyFieldOptions(opts)
	f := &ParticleField{
		width:     width,
		height:    height,
		tint:      tint,
		particles: make([]particle, max(count, 0)),
		rng:       o.rng,
	}
	for i := range f.particles {
		f.particles[i] = f.spawn()
	}
	return f
}

// spawn samples a particle anywhere inside the field.
func (f *ParticleField) spawn() particle {
	return particle{
		x:     Range{0, f.width}.Random(f.rng),
		y:     Range{0, f.height}.Random(f.rng),
		vx:    particleVX.Random(f.rng),
		vy:    particleVY.Random(f.rng),
		alpha: particleAlpha.Random(f.rng),
		size:  particleSize.Random(f.rng),
	}
}

// outside reports whether p has left the respawn envelope.
func (f *ParticleField) outside(p *particle) bool {
	return p.y > f.height+particleMargin ||
		p.x < -particleMargin ||
		p.x > f.width+particleMargin
}

// Advance moves every particle by its velocity over dt seconds and respawns
// the ones that left the envelope.
func (f *ParticleField) Advance(dt float64) {
	for i := range f.particles {
		p := &f.particles[i]
		p.x += p.vx * dt
		p.y += p.vy * dt
		if f.outside(p) {
			f.particles[i] = f.spawn()
			f.respawns++
		}
	}
}

// Render yields one quad per particle with alpha scaled by parentAlpha.
// The sequence is rebuilt from live state on every call and must be consumed
// before the next Advance.
func (f *ParticleField) Render(parentAlpha float64) iter.Seq[Quad] {
	return func(yield func(Quad) bool) {
		for i := range f.particles {
			p := &f.particles[i]
			q := Quad{
				X:      p.x,
				Y:      p.y,
				Width:  p.size,
				Height: p.size,
				Color:  f.tint.WithAlpha(p.alpha * parentAlpha),
			}
			if !yield(q) {
				return
			}
		}
	}
}

// Draw submits the field to b.
func (f *ParticleField) Draw(b Batch, parentAlpha float64) {
	for q := range f.Render(parentAlpha) {
		b.DrawQuad(q)
	}
}

// Len returns the pool size.
func (f *ParticleField) Len() int {
	return len(f.particles)
}

// Respawns returns how many particles have been replaced since construction.
func (f *ParticleField) Respawns() int {
	return f.respawns
}

// Size returns the field dimensions.
func (f *ParticleField) Size() (width, height float64) {
	return f.width, f.height
}
