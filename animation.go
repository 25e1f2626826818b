package codequest

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animator is anything advanced once per frame until it finishes.
type Animator interface {
	Update(dt float32)
	Finished() bool
}

// nodeProp selects which node fields a tween drives.
type nodeProp uint8

const (
	propAlpha nodeProp = iota
	propScale
)

func propFields(n *Node, p nodeProp) []*float64 {
	switch p {
	case propScale:
		return []*float64{&n.ScaleX, &n.ScaleY}
	default:
		return []*float64{&n.Alpha}
	}
}

// TweenGroup animates one node property toward a target value. The start
// value is read on the first Update, so groups can be queued in a Chain
// behind other tweens of the same property. If the target node is disposed,
// the group stops immediately.
//
// Each screen updates its own animators.
type TweenGroup struct {
	target   *Node
	prop     nodeProp
	to       float64
	duration float32
	fn       ease.TweenFunc

	tweens []*gween.Tween
	fields []*float64
	Done   bool
}

func newTweenGroup(node *Node, p nodeProp, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	if fn == nil {
		fn = ease.Linear
	}
	return &TweenGroup{target: node, prop: p, to: to, duration: duration, fn: fn}
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value
// over the specified duration using the easing function.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, propAlpha, to, duration, fn)
}

// TweenScale creates a TweenGroup that animates node.ScaleX and node.ScaleY
// uniformly to the target value.
func TweenScale(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, propScale, to, duration, fn)
}

// Update advances the tween by dt seconds and writes the value to the node.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target == nil || g.target.IsDisposed() {
		g.Done = true
		return
	}
	if g.tweens == nil {
		g.fields = propFields(g.target, g.prop)
		if g.duration <= 0 {
			for _, f := range g.fields {
				*f = g.to
			}
			g.Done = true
			return
		}
		g.tweens = make([]*gween.Tween, len(g.fields))
		for i, f := range g.fields {
			g.tweens[i] = gween.New(float32(*f), float32(g.to), g.duration, g.fn)
		}
	}
	allDone := true
	for i, tw := range g.tweens {
		val, finished := tw.Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if allDone {
		// Snap exactly; gween works in float32.
		for _, f := range g.fields {
			*f = g.to
		}
	}
	g.Done = allDone
}

// Finished reports whether the tween reached its target.
func (g *TweenGroup) Finished() bool {
	return g.Done
}

// Chain runs animators one after another.
type Chain struct {
	steps []Animator
	cur   int
}

// NewChain returns a chain of the given steps.
func NewChain(steps ...Animator) *Chain {
	return &Chain{steps: steps}
}

// Update advances the current step, moving on when it finishes.
func (c *Chain) Update(dt float32) {
	if c.cur >= len(c.steps) {
		return
	}
	s := c.steps[c.cur]
	s.Update(dt)
	if s.Finished() {
		c.cur++
	}
}

// Finished reports whether every step has finished.
func (c *Chain) Finished() bool {
	return c.cur >= len(c.steps)
}

// Pulse swings a node property between two values forever, spending leg
// seconds on each direction.
type Pulse struct {
	target   *Node
	prop     nodeProp
	from, to float64
	leg      float32
	fn       ease.TweenFunc
	cur      *TweenGroup
	forward  bool
}

// PulseAlpha loops node.Alpha between from and to.
func PulseAlpha(node *Node, from, to float64, leg float32) *Pulse {
	return newPulse(node, propAlpha, from, to, leg)
}

// PulseScale loops node's uniform scale between from and to.
func PulseScale(node *Node, from, to float64, leg float32) *Pulse {
	return newPulse(node, propScale, from, to, leg)
}

func newPulse(node *Node, p nodeProp, from, to float64, leg float32) *Pulse {
	for _, f := range propFields(node, p) {
		*f = from
	}
	ps := &Pulse{target: node, prop: p, from: from, to: to, leg: leg, fn: ease.InOutSine, forward: true}
	ps.cur = newTweenGroup(node, p, to, leg, ps.fn)
	return ps
}

// Update advances the current leg and turns around at either end.
func (p *Pulse) Update(dt float32) {
	if p.target.IsDisposed() {
		return
	}
	p.cur.Update(dt)
	if !p.cur.Done {
		return
	}
	p.forward = !p.forward
	dest := p.from
	if p.forward {
		dest = p.to
	}
	p.cur = newTweenGroup(p.target, p.prop, dest, p.leg, p.fn)
}

// Finished reports true only once the target node is disposed.
func (p *Pulse) Finished() bool {
	return p.target.IsDisposed()
}

// AnimationSet owns the animators of one screen and drops them as they finish.
type AnimationSet struct {
	items []Animator
}

// Add schedules a to run from the next Update.
func (s *AnimationSet) Add(a Animator) {
	s.items = append(s.items, a)
}

// Update advances every animator by dt seconds.
func (s *AnimationSet) Update(dt float32) {
	live := s.items[:0]
	for _, a := range s.items {
		a.Update(dt)
		if !a.Finished() {
			live = append(live, a)
		}
	}
	for i := len(live); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = live
}

// Len returns the number of running animators.
func (s *AnimationSet) Len() int {
	return len(s.items)
}

// Clear drops every animator.
func (s *AnimationSet) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}
