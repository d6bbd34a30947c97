package arbor

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	overlayOutline = color.RGBA{R: 90, G: 160, B: 255, A: 255}
	overlayPending = color.RGBA{R: 255, G: 170, B: 40, A: 255}
	overlayHover   = color.RGBA{R: 255, G: 255, B: 255, A: 48}
)

// Draw renders the debug overlay: every active node's rect outlined in
// painter order, nodes with a queued rebuild in orange, the nodes the mouse
// hovers filled, and a status line in the top-left corner. arbor owns no
// visuals; games draw their UI and call Draw afterwards when they want the
// overlay.
func (s *Scene) Draw(screen *ebiten.Image) {
	var leaf string
	if ps, ok := s.router.Lookup(0); ok {
		if ps.EnteredLeaf != nil {
			leaf = ps.EnteredLeaf.Name
		}
		for _, n := range ps.Hovered {
			if n.disposed {
				continue
			}
			r := n.WorldRect()
			vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), overlayHover, false)
		}
	}
	s.drawOutlines(screen, s.root, 0, 0)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.1f  pending: %d  hover: %s",
		ebiten.ActualTPS(), s.layout.Len(), leaf), 4, 4)
}

func (s *Scene) drawOutlines(screen *ebiten.Image, n *Node, px, py float64) {
	if !n.active || n.disposed {
		return
	}
	x, y := px+n.Rect.X, py+n.Rect.Y
	if n.Rect.Width > 0 && n.Rect.Height > 0 {
		clr := overlayOutline
		if s.layout.IsPending(n) {
			clr = overlayPending
		}
		vector.StrokeRect(screen, float32(x), float32(y), float32(n.Rect.Width), float32(n.Rect.Height), 1, clr, false)
	}
	for _, c := range n.orderedChildren() {
		s.drawOutlines(screen, c, x, y)
	}
}
