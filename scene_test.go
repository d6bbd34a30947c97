package arbor

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.root == nil {
		t.Fatal("root should not be nil")
	}
	if s.root.Name != "root" {
		t.Errorf("root.Name = %q, want %q", s.root.Name, "root")
	}
	if s.root.owner != s {
		t.Error("root should be owned by its scene")
	}
	if s.Root() != s.root {
		t.Error("Root() should return the internal root node")
	}
	if s.Layout() == nil || s.Router() == nil || s.Resources() == nil {
		t.Error("scheduler, router and resource tracker should be created")
	}
	if s.Config() != DefaultConfig() {
		t.Errorf("Config() = %+v, want defaults", s.Config())
	}
}

func TestSceneSetEntityStore(t *testing.T) {
	s := NewScene()
	s.SetEntityStore(nil) // should not panic
	if s.store != nil {
		t.Error("store should be nil")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)
	if !s.debug || !globalDebug {
		t.Error("debug should be true")
	}
	s.SetDebugMode(false)
	if s.debug || globalDebug {
		t.Error("debug should be false")
	}
}

func TestSceneSetLogger(t *testing.T) {
	s := NewScene()
	orig := s.Logger()
	s.SetLogger(nil)
	if s.Logger() != orig {
		t.Error("SetLogger(nil) should keep the current logger")
	}

	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	s.SetLogger(l)
	if s.Logger() != l {
		t.Error("SetLogger should install the logger")
	}
}

func TestSceneSetViewport(t *testing.T) {
	s := NewScene()
	panel := NewNode("panel")
	panel.AddBehavior(NewSizeFitter(FitPreferred, FitPreferred))
	s.Root().AddChild(panel)
	s.Layout().Process()

	s.SetViewport(640, 480)
	if s.Root().Rect != (Rect{Width: 640, Height: 480}) {
		t.Errorf("root rect = %+v, want 640x480", s.Root().Rect)
	}

	// Same size is a no-op.
	s.Layout().Process()
	s.SetViewport(640, 480)
	if n := s.Layout().Len(); n != 0 {
		t.Errorf("pending = %d after unchanged viewport, want 0", n)
	}
}

func TestSceneForceRebuild(t *testing.T) {
	s := NewScene()
	menu := NewNodeRect("menu", Rect{Width: 100})
	menu.AddBehavior(NewStackGroup(AxisVertical, 0))
	menu.AddBehavior(NewSizeFitter(FitUnconstrained, FitPreferred))
	s.Root().AddChild(menu)
	item := NewNode("item")
	item.AddBehavior(NewLayoutBox(0, 30))
	menu.AddChild(item)

	s.ForceRebuild(menu)
	if menu.Rect.Height != 30 {
		t.Errorf("menu height = %v after ForceRebuild, want 30", menu.Rect.Height)
	}
	// The queued mark is untouched.
	if !s.Layout().IsPending(menu) {
		t.Error("ForceRebuild should not consume the queued rebuild")
	}
}

func TestSceneUpdateLaysOutBeforeInput(t *testing.T) {
	s := NewScene()
	s.SetPollInput(false)
	menu := NewNodeRect("menu", Rect{Width: 100, Height: 100})
	menu.AddBehavior(NewStackGroup(AxisVertical, 0))
	s.Root().AddChild(menu)
	item := NewNode("item")
	item.AddBehavior(NewLayoutBox(50, 20))
	menu.AddChild(item)

	var entered bool
	item.AddBehavior(&PointerFuncs{Enter: func(PointerContext) { entered = true }})

	// item has no size until its first layout pass.
	s.InjectHover(10, 10)
	s.Update()
	if !entered {
		t.Error("hover injected before the first layout should reach item in the same frame")
	}
}
