package arbor

import (
	"strings"
	"testing"
)

type mockStore struct {
	events []InteractionEvent
}

func (m *mockStore) EmitEvent(e InteractionEvent) {
	m.events = append(m.events, e)
}

// pointerScene returns a headless scene with one 100x100 node at the origin.
func pointerScene() (*Scene, *Node) {
	s := NewScene()
	s.SetPollInput(false)
	n := NewNodeRect("button", Rect{Width: 100, Height: 100})
	s.Root().AddChild(n)
	return s, n
}

// --- Dispatch ---

func TestPointerDownDispatchOrder(t *testing.T) {
	s, button := pointerScene()
	button.EntityID = 9
	var order []string
	button.AddBehavior(&PointerFuncs{Down: func(PointerContext) { order = append(order, "node") }})
	s.OnPointerDown(func(PointerContext) { order = append(order, "scene") })
	s.SetEntityStore(storeFunc(func(e InteractionEvent) {
		if e.Type == EventPointerDown {
			order = append(order, "store")
		}
	}))

	s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)

	if got := strings.Join(order, ","); got != "node,scene,store" {
		t.Errorf("order = %q, want %q", got, "node,scene,store")
	}
}

type storeFunc func(InteractionEvent)

func (f storeFunc) EmitEvent(e InteractionEvent) { f(e) }

func TestDisabledAndInactiveReceiversSkipped(t *testing.T) {
	s, button := pointerScene()
	var calls int
	pf := &PointerFuncs{Down: func(PointerContext) { calls++ }}
	button.AddBehavior(pf)

	pf.SetEnabled(false)
	s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)
	s.processPointer(0, 50, 50, false, MouseButtonLeft, 0)
	if calls != 0 {
		t.Errorf("disabled behavior called %d times", calls)
	}

	// An inactive node is not hit, but deliverPointer must also refuse it
	// when called directly.
	pf.SetEnabled(true)
	button.SetActive(false)
	deliverPointer(button, PointerContext{Type: EventPointerDown, Node: button})
	if calls != 0 {
		t.Errorf("inactive node's behavior called %d times", calls)
	}
}

func TestNodeWithoutReceiverIsSilent(t *testing.T) {
	s, button := pointerScene()
	button.AddBehavior(NewLayoutBox(1, 1))
	// Must not panic.
	s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)
	s.processPointer(0, 50, 50, false, MouseButtonLeft, 0)
}

func TestHoverEnterExitFromPointer(t *testing.T) {
	s, button := pointerScene()
	var events []string
	button.AddBehavior(&PointerFuncs{
		Enter: func(ctx PointerContext) { events = append(events, "enter") },
		Exit:  func(ctx PointerContext) { events = append(events, "exit") },
		Move:  func(ctx PointerContext) { events = append(events, "move") },
	})

	s.processPointer(0, 50, 50, false, MouseButtonLeft, 0)
	s.processPointer(0, 60, 50, false, MouseButtonLeft, 0)
	s.processPointer(0, 300, 300, false, MouseButtonLeft, 0)

	want := "enter,move,move,exit"
	if got := strings.Join(events, ","); got != want {
		t.Errorf("events = %q, want %q", got, want)
	}
}

func TestMoveNotFiredWithoutMovement(t *testing.T) {
	s, _ := pointerScene()
	var moves int
	s.OnPointerMove(func(PointerContext) { moves++ })

	s.processPointer(0, 10, 10, false, MouseButtonLeft, 0)
	s.processPointer(0, 10, 10, false, MouseButtonLeft, 0)
	if moves != 1 {
		t.Errorf("moves = %d, want 1", moves)
	}
}

// --- Click ---

func TestClickDetection(t *testing.T) {
	s, button := pointerScene()
	var events []string
	s.OnPointerDown(func(PointerContext) { events = append(events, "down") })
	s.OnPointerUp(func(PointerContext) { events = append(events, "up") })
	s.OnClick(func(ctx PointerContext) {
		events = append(events, "click")
		if ctx.Node != button {
			t.Error("click should target button")
		}
	})

	s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)
	s.processPointer(0, 50, 50, false, MouseButtonLeft, 0)

	if got := strings.Join(events, ","); got != "down,click,up" {
		t.Errorf("events = %q, want %q", got, "down,click,up")
	}
}

func TestClickNotFiredOnDifferentNode(t *testing.T) {
	s, _ := pointerScene()
	other := NewNodeRect("other", Rect{X: 200, Width: 100, Height: 100})
	s.Root().AddChild(other)
	var clicked bool
	s.OnClick(func(PointerContext) { clicked = true })

	s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)
	s.SetDragDeadZone(1000)
	s.processPointer(0, 250, 50, false, MouseButtonLeft, 0)
	if clicked {
		t.Error("click should not fire when released over another node")
	}
}

func TestClickNotFiredOnDrag(t *testing.T) {
	s, _ := pointerScene()
	var clicked bool
	s.OnClick(func(PointerContext) { clicked = true })

	s.processPointer(0, 10, 10, true, MouseButtonLeft, 0)
	s.processPointer(0, 40, 10, true, MouseButtonLeft, 0)
	s.processPointer(0, 40, 10, false, MouseButtonLeft, 0)
	if clicked {
		t.Error("click should not fire after a drag")
	}
}

// --- Drag ---

func TestDragDetection(t *testing.T) {
	s, button := pointerScene()
	var events []string
	var start DragContext
	s.OnDragStart(func(ctx DragContext) {
		events = append(events, "dragstart")
		start = ctx
	})
	s.OnDrag(func(ctx DragContext) { events = append(events, "drag") })
	s.OnDragEnd(func(ctx DragContext) { events = append(events, "dragend") })

	s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)

	// Within the dead zone.
	s.processPointer(0, 52, 52, true, MouseButtonLeft, 0)
	if len(events) != 0 {
		t.Fatalf("expected no events within dead zone, got %v", events)
	}

	s.processPointer(0, 60, 50, true, MouseButtonLeft, 0)
	if got := strings.Join(events, ","); got != "dragstart,drag" {
		t.Fatalf("events = %q, want %q", got, "dragstart,drag")
	}
	if start.Node != button || start.Direction != MoveRight {
		t.Errorf("dragstart node=%v dir=%v, want button/right", start.Node, start.Direction)
	}
	if start.StartX != 50 || start.StartY != 50 || start.DeltaX != 10 || start.DeltaY != 0 {
		t.Errorf("dragstart start=(%v,%v) delta=(%v,%v)", start.StartX, start.StartY, start.DeltaX, start.DeltaY)
	}

	events = events[:0]
	s.processPointer(0, 70, 50, true, MouseButtonLeft, 0)
	if got := strings.Join(events, ","); got != "drag" {
		t.Fatalf("events = %q, want %q", got, "drag")
	}

	events = events[:0]
	s.processPointer(0, 70, 50, false, MouseButtonLeft, 0)
	if got := strings.Join(events, ","); got != "dragend" {
		t.Fatalf("events = %q, want %q", got, "dragend")
	}
}

func TestDragStartDirection(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   MoveDirection
	}{
		{"right", 10, 0, MoveRight},
		{"left", -10, 0, MoveLeft},
		{"screen up", 0, -10, MoveUp},
		{"screen down", 0, 10, MoveDown},
		{"diagonal tie", 10, -10, MoveUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := pointerScene()
			var got MoveDirection
			s.OnDragStart(func(ctx DragContext) { got = ctx.Direction })
			s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)
			s.processPointer(0, 50+tt.dx, 50+tt.dy, true, MouseButtonLeft, 0)
			if got != tt.want {
				t.Errorf("Direction = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetDragDeadZone(t *testing.T) {
	s, _ := pointerScene()
	s.SetDragDeadZone(20)
	var started bool
	s.OnDragStart(func(DragContext) { started = true })

	s.processPointer(0, 10, 10, true, MouseButtonLeft, 0)
	s.processPointer(0, 25, 10, true, MouseButtonLeft, 0)
	if started {
		t.Error("15px move should stay inside a 20px dead zone")
	}
	s.processPointer(0, 35, 10, true, MouseButtonLeft, 0)
	if !started {
		t.Error("25px move should start a drag")
	}

	s.SetDragDeadZone(-1)
	if s.Config().DragDeadZone != 20 {
		t.Error("negative dead zone should be ignored")
	}
}

// --- Capture ---

func TestPointerCapture(t *testing.T) {
	s, a := pointerScene()
	b := NewNodeRect("b", Rect{X: 200, Width: 100, Height: 100})
	s.Root().AddChild(b)

	s.CapturePointer(0, b)
	if s.HitTest(50, 50) != a {
		t.Error("HitTest should still report a")
	}

	var received *Node
	s.OnPointerDown(func(ctx PointerContext) { received = ctx.Node })
	s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)
	if received != b {
		t.Errorf("down went to %v, want captured b", received)
	}

	s.processPointer(0, 50, 50, false, MouseButtonLeft, 0)
	if s.Captured(0) != nil {
		t.Error("release should clear the capture")
	}
}

func TestCaptureDroppedWhenNodeLeaves(t *testing.T) {
	s, a := pointerScene()
	s.CapturePointer(2, a)
	a.RemoveFromParent()
	if s.Captured(2) != nil {
		t.Error("capture should not outlive the node's membership in the scene")
	}

	s.CapturePointer(2, NewNode("x"))
	s.CapturePointer(2, nil)
	if s.Captured(2) != nil {
		t.Error("capturing nil should release")
	}
}

// --- Scene callbacks ---

func TestCallbackHandleRemove(t *testing.T) {
	s, _ := pointerScene()
	var first, second int
	h := s.OnPointerDown(func(PointerContext) { first++ })
	s.OnPointerDown(func(PointerContext) { second++ })
	dh := s.OnDragStart(func(DragContext) { first++ })

	h.Remove()
	h.Remove()
	dh.Remove()
	CallbackHandle{}.Remove()

	s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)
	s.processPointer(0, 80, 50, true, MouseButtonLeft, 0)
	if first != 0 {
		t.Errorf("removed callbacks fired %d times", first)
	}
	if second != 1 {
		t.Errorf("remaining callback fired %d times, want 1", second)
	}
}

func TestCallbackRemovesItselfWhileFiring(t *testing.T) {
	s, _ := pointerScene()
	var once, after int
	var h CallbackHandle
	h = s.OnPointerEnter(func(PointerContext) {
		once++
		h.Remove()
	})
	s.OnPointerEnter(func(PointerContext) { after++ })

	// Hovering enters button, then root.
	s.processPointer(0, 50, 50, false, MouseButtonLeft, 0)

	if once != 1 {
		t.Errorf("self-removing callback fired %d times, want 1", once)
	}
	if after != 2 {
		t.Errorf("later callback fired %d times, want 2", after)
	}
}

func TestDragCallbackRemovesItselfWhileFiring(t *testing.T) {
	s, _ := pointerScene()
	var order []string
	var h CallbackHandle
	h = s.OnDragStart(func(DragContext) {
		order = append(order, "first")
		h.Remove()
	})
	s.OnDragStart(func(DragContext) { order = append(order, "second") })

	s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)
	s.processPointer(0, 80, 50, true, MouseButtonLeft, 0)

	if got := strings.Join(order, ","); got != "first,second" {
		t.Errorf("order = %q, want %q", got, "first,second")
	}
}

func TestContextCoordinates(t *testing.T) {
	s := NewScene()
	s.SetPollInput(false)
	panel := NewNodeRect("panel", Rect{X: 100, Y: 50, Width: 200, Height: 200})
	button := NewNodeRect("button", Rect{X: 10, Y: 20, Width: 50, Height: 50})
	button.UserData = "ok"
	s.Root().AddChild(panel)
	panel.AddChild(button)

	var got PointerContext
	s.OnPointerDown(func(ctx PointerContext) { got = ctx })
	s.processPointer(0, 130, 90, true, MouseButtonRight, ModShift|ModAlt)

	if got.Node != button || got.UserData != "ok" {
		t.Fatalf("node=%v userdata=%v", got.Node, got.UserData)
	}
	if got.GlobalX != 130 || got.GlobalY != 90 {
		t.Errorf("global = (%v, %v), want (130, 90)", got.GlobalX, got.GlobalY)
	}
	if got.LocalX != 20 || got.LocalY != 20 {
		t.Errorf("local = (%v, %v), want (20, 20)", got.LocalX, got.LocalY)
	}
	if got.Button != MouseButtonRight || got.Modifiers != ModShift|ModAlt {
		t.Errorf("button=%v mods=%v", got.Button, got.Modifiers)
	}
}

// --- ECS bridge ---

func TestECSBridge(t *testing.T) {
	s, button := pointerScene()
	store := &mockStore{}
	s.SetEntityStore(store)
	button.EntityID = 42

	s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)

	// Enter then down; the root has no entity and is not forwarded.
	if len(store.events) != 2 {
		t.Fatalf("expected 2 events, got %+v", store.events)
	}
	if e := store.events[0]; e.Type != EventPointerEnter || e.EntityID != 42 {
		t.Errorf("event 0 = %+v", e)
	}
	if e := store.events[1]; e.Type != EventPointerDown || e.GlobalX != 50 {
		t.Errorf("event 1 = %+v", e)
	}
}

func TestECSBridgeNoEntity(t *testing.T) {
	s, _ := pointerScene()
	store := &mockStore{}
	s.SetEntityStore(store)

	s.processPointer(0, 50, 50, true, MouseButtonLeft, 0)
	if len(store.events) != 0 {
		t.Errorf("expected 0 events for node without EntityID, got %d", len(store.events))
	}
}

func TestECSBridgeDragFields(t *testing.T) {
	s, button := pointerScene()
	store := &mockStore{}
	s.SetEntityStore(store)
	button.EntityID = 7

	s.processPointer(0, 50, 50, true, MouseButtonLeft, ModShift)
	s.processPointer(0, 50, 30, true, MouseButtonLeft, ModShift)

	var start *InteractionEvent
	for i := range store.events {
		if store.events[i].Type == EventDragStart {
			start = &store.events[i]
		}
	}
	if start == nil {
		t.Fatalf("no dragstart in %+v", store.events)
	}
	if start.StartX != 50 || start.StartY != 50 {
		t.Errorf("start = (%v, %v), want (50, 50)", start.StartX, start.StartY)
	}
	if start.DeltaX != 0 || start.DeltaY != -20 {
		t.Errorf("delta = (%v, %v), want (0, -20)", start.DeltaX, start.DeltaY)
	}
	if start.Direction != MoveUp || start.Modifiers != ModShift {
		t.Errorf("direction=%v mods=%v, want up/shift", start.Direction, start.Modifiers)
	}
}

func TestIndependentPointers(t *testing.T) {
	s, _ := pointerScene()
	var clicks []int
	s.OnClick(func(ctx PointerContext) { clicks = append(clicks, ctx.PointerID) })

	s.processPointer(1, 10, 10, true, MouseButtonLeft, 0)
	s.processPointer(2, 20, 20, true, MouseButtonLeft, 0)
	s.processPointer(2, 20, 20, false, MouseButtonLeft, 0)
	s.processPointer(1, 10, 10, false, MouseButtonLeft, 0)

	if len(clicks) != 2 || clicks[0] != 2 || clicks[1] != 1 {
		t.Errorf("clicks = %v, want [2 1]", clicks)
	}
}
