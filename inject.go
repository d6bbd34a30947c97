package arbor

// syntheticPointerEvent represents a single injected pointer event in world
// coordinates.
type syntheticPointerEvent struct {
	pointerID int
	x, y      float64
	pressed   bool
	button    MouseButton
	mods      KeyModifiers
	leave     bool // pointer left the surface entirely
}

// InjectPointer queues a raw event for pointerID. The event is consumed by
// the next Update, which skips real mouse and touch input for that frame.
func (s *Scene) InjectPointer(pointerID int, x, y float64, pressed bool, button MouseButton, mods KeyModifiers) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		pointerID: pointerID,
		x:         x, y: y,
		pressed: pressed,
		button:  button,
		mods:    mods,
	})
}

// InjectHover queues a mouse move at (x, y) with no button held.
func (s *Scene) InjectHover(x, y float64) {
	s.InjectPointer(0, x, y, false, MouseButtonLeft, 0)
}

// InjectPress queues a left-button press at (x, y).
func (s *Scene) InjectPress(x, y float64) {
	s.InjectPointer(0, x, y, true, MouseButtonLeft, 0)
}

// InjectMove queues a pointer move at (x, y) with the button held down. Use
// this between InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.InjectPointer(0, x, y, true, MouseButtonLeft, 0)
}

// InjectRelease queues a left-button release at (x, y).
func (s *Scene) InjectRelease(x, y float64) {
	s.InjectPointer(0, x, y, false, MouseButtonLeft, 0)
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// InjectLeave queues the pointer leaving the surface: every node it hovers
// gets an exit and its state is forgotten.
func (s *Scene) InjectLeave(pointerID int) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{pointerID: pointerID, leave: true})
}

// PendingInjected returns the number of queued synthetic events.
func (s *Scene) PendingInjected() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	if evt.leave {
		if ps, ok := s.router.Lookup(evt.pointerID); ok && ps.down {
			s.processPointer(evt.pointerID, ps.X, ps.Y, false, ps.button, evt.mods)
		}
		delete(s.captured, evt.pointerID)
		s.router.Reset(evt.pointerID)
		return true
	}
	s.processPointer(evt.pointerID, evt.x, evt.y, evt.pressed, evt.button, evt.mods)
	return true
}
