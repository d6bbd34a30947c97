package arbor

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 layout values at once. Create one via the
// convenience constructors (TweenSize, TweenPreferredSize, TweenRect) and
// call Update(dt) each frame. Every step writes through a setter that marks
// layout dirty, so the scheduler picks the change up on the next Update. If
// the target node is disposed, the group stops immediately.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	apply  [4]func(float64)
	count  int
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds and applies the values. If the
// target node has been disposed, Done is set to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.apply[i](float64(val))
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

func (g *TweenGroup) add(from, to float64, duration float32, fn ease.TweenFunc, apply func(float64)) {
	g.tweens[g.count] = gween.New(float32(from), float32(to), duration, fn)
	g.apply[g.count] = apply
	g.count++
}

// TweenSize animates box's preferred size along axis to the given value.
func TweenSize(box *LayoutBox, axis Axis, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: box.Node()}
	g.add(box.hints[axis].Preferred, to, duration, fn, func(v float64) { box.SetPreferred(axis, v) })
	return g
}

// TweenPreferredSize animates both preferred dimensions of box.
func TweenPreferredSize(box *LayoutBox, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: box.Node()}
	g.add(box.hints[AxisHorizontal].Preferred, toW, duration, fn, func(v float64) { box.SetPreferred(AxisHorizontal, v) })
	g.add(box.hints[AxisVertical].Preferred, toH, duration, fn, func(v float64) { box.SetPreferred(AxisVertical, v) })
	return g
}

// TweenRect animates a node's rect directly. Use it for nodes no layout
// group controls; a controlling group overwrites the rect on its next pass.
func TweenRect(node *Node, to Rect, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	from := node.Rect
	set := func(field *float64) func(float64) {
		return func(v float64) {
			if *field == v {
				return
			}
			*field = v
			node.MarkLayoutDirty()
		}
	}
	g.add(from.X, to.X, duration, fn, set(&node.Rect.X))
	g.add(from.Y, to.Y, duration, fn, set(&node.Rect.Y))
	g.add(from.Width, to.Width, duration, fn, set(&node.Rect.Width))
	g.add(from.Height, to.Height, duration, fn, set(&node.Rect.Height))
	return g
}
