package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/phanxgames/arbor"
)

const menuScene = `
viewport = [320, 240]

[[node]]
name = "menu"
rect = [10, 10, 100, 0]
layout = "vertical"
spacing = 4
padding = [2, 2, 2, 2]
align = "stretch"
fit = ["unconstrained", "preferred"]

[[node]]
name = "play"
parent = "menu"
preferred = [0, 20]

[[node]]
name = "quit"
parent = "menu"
preferred = [0, 20]

[[step]]
action = "hover"
x = 20
y = 20

[[step]]
action = "hover"
x = 20
y = 45

[[step]]
action = "leave"
`

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write scene: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var logs bytes.Buffer
	c := New(&logs, log.WarnLevel)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	logger.Info("test message")
	if buf.Len() == 0 {
		t.Error("logger should have written output")
	}

	buf.Reset()
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug message written at info level: %q", buf.String())
	}
}

func TestLayoutCommand(t *testing.T) {
	path := writeScene(t, menuScene)
	out, err := execute(t, "layout", path)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	want := "menu 10 10 100 48\n" +
		"  play 2 2 96 20\n" +
		"  quit 2 26 96 20\n"
	if out != want {
		t.Errorf("layout output:\n%s\nwant:\n%s", out, want)
	}
}

func TestLayoutCommandWorld(t *testing.T) {
	path := writeScene(t, menuScene)
	out, err := execute(t, "layout", "--world", path)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if !strings.Contains(out, "  quit 12 36 96 20\n") {
		t.Errorf("world rect of quit missing from:\n%s", out)
	}
}

func TestHoverCommandTransition(t *testing.T) {
	path := writeScene(t, menuScene)
	out, err := execute(t, "hover", "--from", "play", "--to", "quit", path)
	if err != nil {
		t.Fatalf("hover: %v", err)
	}
	// menu and root are shared by both chains and hear nothing.
	want := "exit play\nenter quit\n"
	if out != want {
		t.Errorf("hover output = %q, want %q", out, want)
	}
}

func TestHoverCommandToNothing(t *testing.T) {
	path := writeScene(t, menuScene)
	out, err := execute(t, "hover", "--from", "play", "--to", "", path)
	if err != nil {
		t.Fatalf("hover: %v", err)
	}
	// Hovered order: play, menu, root.
	want := "exit play\nexit menu\nexit root\n"
	if out != want {
		t.Errorf("hover output = %q, want %q", out, want)
	}
}

func TestHoverCommandScript(t *testing.T) {
	path := writeScene(t, menuScene)
	out, err := execute(t, "hover", path)
	if err != nil {
		t.Fatalf("hover: %v", err)
	}
	// Leaving exits in hovered order, and quit joined the set last.
	want := "enter play\nenter menu\nenter root\n" +
		"exit play\nenter quit\n" +
		"exit menu\nexit root\nexit quit\n"
	if out != want {
		t.Errorf("hover output:\n%s\nwant:\n%s", out, want)
	}
}

func TestHoverCommandUnknownNode(t *testing.T) {
	path := writeScene(t, menuScene)
	_, err := execute(t, "hover", "--from", "nope", path)
	if !errors.Is(err, arbor.ErrUnknownNode) {
		t.Errorf("err = %v, want ErrUnknownNode", err)
	}
}

func TestLayoutCommandMissingFile(t *testing.T) {
	_, err := execute(t, "layout", filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for missing scene file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want wrapped os.ErrNotExist", err)
	}
}
