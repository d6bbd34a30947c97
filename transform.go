package arbor

// UI nodes are translated, never rotated or scaled, so the world transform of
// a node is the sum of its ancestors' rect origins.

// WorldOrigin returns the world-space position of the node's local (0, 0).
func (n *Node) WorldOrigin() (float64, float64) {
	var x, y float64
	for p := n; p != nil; p = p.Parent {
		x += p.Rect.X
		y += p.Rect.Y
	}
	return x, y
}

// WorldRect returns the node's rect in world space.
func (n *Node) WorldRect() Rect {
	x, y := n.WorldOrigin()
	return Rect{X: x, Y: y, Width: n.Rect.Width, Height: n.Rect.Height}
}

// WorldToLocal converts a world-space point to the node's local space, where
// (0, 0) is the top-left of the node's rect.
func (n *Node) WorldToLocal(wx, wy float64) (float64, float64) {
	ox, oy := n.WorldOrigin()
	return wx - ox, wy - oy
}

// LocalToWorld converts a point in the node's local space to world space.
func (n *Node) LocalToWorld(lx, ly float64) (float64, float64) {
	ox, oy := n.WorldOrigin()
	return lx + ox, ly + oy
}

// containsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise the node's own rect. Zero-sized nodes
// without a HitShape are not hit-testable.
func containsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	w, h := n.Rect.Width, n.Rect.Height
	if w == 0 && h == 0 {
		return false
	}
	return lx >= 0 && lx <= w && ly >= 0 && ly <= h
}
