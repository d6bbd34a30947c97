package arbor

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// CapturePointer routes all events for pointerID to node until the pointer
// is released or node leaves the scene.
func (s *Scene) CapturePointer(pointerID int, node *Node) {
	if node == nil {
		delete(s.captured, pointerID)
		return
	}
	s.captured[pointerID] = node
}

// ReleasePointer stops routing events for pointerID to a captured node.
func (s *Scene) ReleasePointer(pointerID int) {
	delete(s.captured, pointerID)
}

// Captured returns the node capturing pointerID, or nil.
func (s *Scene) Captured(pointerID int) *Node {
	return s.captured[pointerID]
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (s *Scene) SetDragDeadZone(pixels float64) {
	if pixels >= 0 {
		s.cfg.DragDeadZone = pixels
	}
}

// --- Input processing ---

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// SetPollInput turns reading of the real mouse and touch state on or off.
// Headless scenes (tests, command-line tools) turn it off and drive input
// with the Inject methods only.
func (s *Scene) SetPollInput(enabled bool) {
	s.noPoll = !enabled
}

// processInput is called from Scene.Update. An injected event, when one is
// queued, replaces real input for the frame.
func (s *Scene) processInput() {
	if s.processInjectedInput() || s.noPoll {
		return
	}
	mods := readModifiers()
	s.processMousePointer(mods)
	s.processTouchPointers(mods)
}

// processMousePointer handles mouse input (pointer 0).
func (s *Scene) processMousePointer(mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed, button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed, button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed, button = true, MouseButtonMiddle
	}

	s.processPointer(0, float64(mx), float64(my), pressed, button, mods)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers(mods KeyModifiers) {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft, mods)
	}

	// A lifted finger releases its slot and leaves everything it hovered.
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] || activeSlots[i] {
			continue
		}
		if ps, ok := s.router.Lookup(i); ok {
			if ps.down {
				s.processPointer(i, ps.X, ps.Y, false, MouseButtonLeft, mods)
			}
			s.router.Reset(i)
		}
		s.touchUsed[i] = false
		s.touchMap[i] = 0
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs one frame of the pointer state machine: hover
// transition first, then press, release, drag or move.
func (s *Scene) processPointer(pointerID int, wx, wy float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := s.router.State(pointerID)
	lastX, lastY := ps.X, ps.Y
	moved := wx != lastX || wy != lastY
	ps.X, ps.Y = wx, wy
	s.mods = mods
	if !ps.down {
		ps.button = button
	}

	target := s.captured[pointerID]
	if target == nil || target.disposed {
		target = s.HitTest(wx, wy)
	}
	s.router.Transition(ps, target)

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = wx, wy
		ps.pressed = target
		ps.dragging = false
		s.firePointer(EventPointerDown, target, ps)

	case !pressed && ps.down:
		if ps.dragging {
			s.fireDrag(EventDragEnd, ps.pressed, ps, wx-lastX, wy-lastY, MoveNone)
		} else if ps.pressed != nil && ps.pressed == target {
			s.firePointer(EventClick, target, ps)
		}
		s.firePointer(EventPointerUp, target, ps)

		delete(s.captured, pointerID)
		ps.down = false
		ps.pressed = nil
		ps.dragging = false

	case pressed && ps.down:
		if !moved {
			return
		}
		if !ps.dragging {
			dx, dy := wx-ps.startX, wy-ps.startY
			if math.Sqrt(dx*dx+dy*dy) > s.cfg.DragDeadZone {
				ps.dragging = true
				// Screen y grows downward; Classify expects y up.
				dir := Classify(dx, -dy, s.cfg.MoveDeadZone)
				s.fireDrag(EventDragStart, ps.pressed, ps, dx, dy, dir)
			}
		}
		if ps.dragging {
			s.fireDrag(EventDrag, ps.pressed, ps, wx-lastX, wy-lastY, MoveNone)
		}

	default:
		if moved {
			s.firePointer(EventPointerMove, target, ps)
		}
	}
}
