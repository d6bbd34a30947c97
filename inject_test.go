package arbor

import (
	"strings"
	"testing"
)

func TestInjectClick(t *testing.T) {
	s, button := pointerScene()

	var clicked bool
	s.OnClick(func(ctx PointerContext) {
		clicked = true
		if ctx.Node != button {
			t.Error("expected button node")
		}
	})

	s.InjectClick(50, 50)
	if s.PendingInjected() != 2 {
		t.Fatalf("expected 2 queued events, got %d", s.PendingInjected())
	}

	// Frame 1: press
	s.Update()
	if s.PendingInjected() != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", s.PendingInjected())
	}
	if clicked {
		t.Error("click should not fire on press frame")
	}

	// Frame 2: release, click fires
	s.Update()
	if !clicked {
		t.Error("click should fire on release frame")
	}
}

func TestInjectDrag(t *testing.T) {
	s, _ := pointerScene()
	s.Root().ChildAt(0).Rect = Rect{Width: 400, Height: 400}

	var events []string
	var dir MoveDirection
	s.OnDragStart(func(ctx DragContext) {
		events = append(events, "dragstart")
		dir = ctx.Direction
	})
	s.OnDrag(func(ctx DragContext) { events = append(events, "drag") })
	s.OnDragEnd(func(ctx DragContext) { events = append(events, "dragend") })

	// frame 0: press at (10,10)
	// frames 1-3: moves toward (200,10)
	// frame 4: release at (200,10)
	s.InjectDrag(10, 10, 200, 10, 5)
	if s.PendingInjected() != 5 {
		t.Fatalf("expected 5 queued events, got %d", s.PendingInjected())
	}
	for range 5 {
		s.Update()
	}

	want := "dragstart,drag,drag,drag,dragend"
	if got := strings.Join(events, ","); got != want {
		t.Errorf("events = %q, want %q", got, want)
	}
	if dir != MoveRight {
		t.Errorf("Direction = %v, want right", dir)
	}
}

func TestInjectDragMinFrames(t *testing.T) {
	s := NewScene()
	s.InjectDrag(0, 0, 100, 100, 1)
	if s.PendingInjected() != 2 {
		t.Fatalf("expected 2 queued events (clamped), got %d", s.PendingInjected())
	}
}

func TestInjectQueueOrder(t *testing.T) {
	s := NewScene()
	s.InjectPress(10, 20)
	s.InjectMove(30, 40)
	s.InjectRelease(50, 60)

	if len(s.injectQueue) != 3 {
		t.Fatalf("expected 3 events, got %d", len(s.injectQueue))
	}
	if !s.injectQueue[0].pressed || s.injectQueue[0].x != 10 {
		t.Error("first event should be press at (10,20)")
	}
	if !s.injectQueue[1].pressed || s.injectQueue[1].x != 30 {
		t.Error("second event should be move at (30,40)")
	}
	if s.injectQueue[2].pressed || s.injectQueue[2].x != 50 {
		t.Error("third event should be release at (50,60)")
	}
}

func TestProcessInjectedInput(t *testing.T) {
	s, _ := pointerScene()
	var downFired bool
	s.OnPointerDown(func(ctx PointerContext) {
		downFired = true
		if ctx.GlobalX != 50 || ctx.GlobalY != 50 {
			t.Errorf("expected global (50,50), got (%v,%v)", ctx.GlobalX, ctx.GlobalY)
		}
	})

	s.InjectPress(50, 50)
	if !s.processInjectedInput() {
		t.Error("expected processInjectedInput to consume an event")
	}
	if !downFired {
		t.Error("pointer down should have fired")
	}
	if s.processInjectedInput() {
		t.Error("should not consume when queue is empty")
	}
}

func TestInjectLeave(t *testing.T) {
	s, button := pointerScene()
	var events []string
	button.AddBehavior(&PointerFuncs{
		Exit:    func(PointerContext) { events = append(events, "exit") },
		Up:      func(PointerContext) { events = append(events, "up") },
		DragEnd: func(DragContext) { events = append(events, "dragend") },
	})

	s.InjectPress(10, 10)
	s.InjectMove(60, 10)
	s.InjectLeave(0)
	for range 3 {
		s.Update()
	}

	// The held pointer is released where it was before it leaves.
	if got := strings.Join(events, ","); got != "dragend,up,exit" {
		t.Errorf("events = %q, want %q", got, "dragend,up,exit")
	}
	if _, ok := s.Router().Lookup(0); ok {
		t.Error("leave should forget the pointer")
	}
}

func TestInjectTouchPointer(t *testing.T) {
	s, button := pointerScene()
	var ids []int
	button.AddBehavior(&PointerFuncs{Down: func(ctx PointerContext) { ids = append(ids, ctx.PointerID) }})

	s.InjectPointer(3, 20, 20, true, MouseButtonLeft, ModCtrl)
	s.Update()
	if len(ids) != 1 || ids[0] != 3 {
		t.Errorf("pointer ids = %v, want [3]", ids)
	}
	if ps, ok := s.Router().Lookup(3); !ok || !ps.IsHovering(button) {
		t.Error("pointer 3 should hover the button")
	}
}
