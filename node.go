package codequest

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeSprite                    // renders an image, or a solid color when Image is nil
	NodeTypeText                      // renders a TextBlock
	NodeTypeField                     // renders a decorative Field through a Batch
)

// Field is an animated decoration that draws itself through a Batch.
// ParticleField and GlyphRainField implement it.
type Field interface {
	Advance(dt float64)
	Draw(b Batch, parentAlpha float64)
}

// Node is the widget tree element screens are built from. A single flat
// struct serves every node type. Positions are local to the parent in
// y-down screen space.
type Node struct {
	Name string
	Type NodeType

	Parent   *Node
	children []*Node

	X, Y          float64
	Width, Height float64
	// ScaleX and ScaleY scale the node's drawn size around its center.
	ScaleX, ScaleY float64

	Alpha   float64
	Visible bool
	Color   Color

	// Sprite
	Image *ebiten.Image

	// Text
	Text *TextBlock

	// Field layer. Face is used for any glyph runs the field emits.
	Field Field
	Face  text.Face

	// OnUpdate, when set, is called once per frame with the frame delta.
	OnUpdate func(dt float64)

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewSprite creates a sprite drawing img stretched to w×h.
func NewSprite(name string, img *ebiten.Image, w, h float64) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite, Image: img, Width: w, Height: h}
	nodeDefaults(n)
	return n
}

// NewSolid creates a solid-color w×h rectangle.
func NewSolid(name string, c Color, w, h float64) *Node {
	n := NewSprite(name, nil, w, h)
	n.Color = c
	return n
}

// NewText creates a text node with the given content and face.
func NewText(name, content string, face text.Face) *Node {
	n := &Node{
		Name: name,
		Type: NodeTypeText,
		Text: &TextBlock{Content: content, Face: face, Color: ColorWhite, dirty: true},
	}
	nodeDefaults(n)
	return n
}

// NewFieldLayer creates a node that advances and draws f over a w×h area.
// face is required when f emits glyph runs.
func NewFieldLayer(name string, f Field, face text.Face, w, h float64) *Node {
	n := &Node{Name: name, Type: NodeTypeField, Field: f, Face: face, Width: w, Height: h}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, disposed, or an ancestor of this node.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("codequest: cannot add nil child")
	}
	if child.disposed || n.disposed {
		panic("codequest: AddChild on disposed node")
	}
	if isAncestor(child, n) {
		panic("codequest: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("codequest: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Find returns the first descendant (depth-first, including n) with the
// given name, or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// WorldAlpha returns the node's alpha multiplied by every ancestor's alpha.
func (n *Node) WorldAlpha() float64 {
	a := 1.0
	for p := n; p != nil; p = p.Parent {
		a *= p.Alpha
	}
	return a
}

// WorldPosition returns the node's top-left corner in screen space.
func (n *Node) WorldPosition() (x, y float64) {
	for p := n; p != nil; p = p.Parent {
		x += p.X
		y += p.Y
	}
	return x, y
}

// Bounds returns the node's unscaled rectangle in screen space.
func (n *Node) Bounds() Rect {
	x, y := n.WorldPosition()
	return Rect{X: x, Y: y, Width: n.Width, Height: n.Height}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed, and
// recursively disposes all descendants. Images are not deallocated here;
// the screen that loaded them owns their release. Calling Dispose twice is
// a no-op.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.Image = nil
	n.Text = nil
	n.Field = nil
	n.Face = nil
	n.OnUpdate = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
