package codequest

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// updateTree advances every field and OnUpdate hook below n by dt seconds.
// Invisible subtrees still animate so they are current when shown again.
func updateTree(n *Node, dt float64) {
	if n.disposed {
		return
	}
	if n.Field != nil {
		n.Field.Advance(dt)
	}
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for _, c := range n.children {
		updateTree(c, dt)
	}
}

// drawTree renders n and its descendants onto target. ox and oy are the
// parent's screen position and parentAlpha its accumulated alpha.
func drawTree(target *ebiten.Image, n *Node, ox, oy, parentAlpha float64, stats *batchStats) {
	if !n.Visible || n.disposed {
		return
	}
	alpha := parentAlpha * n.Alpha
	if alpha <= 0 {
		return
	}
	x, y := ox+n.X, oy+n.Y

	switch n.Type {
	case NodeTypeSprite:
		drawSprite(target, n, x, y, alpha)
		if stats != nil {
			stats.quads++
		}
	case NodeTypeText:
		n.Text.draw(target, x, y, n.Width, alpha)
		if stats != nil {
			stats.glyphs++
		}
	case NodeTypeField:
		if n.Field != nil {
			n.Field.Draw(newImageBatch(target, n.Face, x, y, n.Height, stats), alpha)
		}
	}

	for _, c := range n.children {
		drawTree(target, c, x, y, alpha, stats)
	}
}

// drawSprite stretches the node's image (or WhitePixel) over its scaled
// rectangle, scaling around the rectangle's center.
func drawSprite(target *ebiten.Image, n *Node, x, y, alpha float64) {
	img := n.Image
	if img == nil {
		img = WhitePixel
	}
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 || n.Width <= 0 || n.Height <= 0 {
		return
	}
	w, h := n.Width*n.ScaleX, n.Height*n.ScaleY
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w/iw, h/ih)
	op.GeoM.Translate(x-(w-n.Width)/2, y-(h-n.Height)/2)
	op.ColorScale = n.Color.scale(alpha)
	op.Filter = ebiten.FilterLinear
	target.DrawImage(img, &op)
}
