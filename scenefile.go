package arbor

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// SceneFile is a declarative scene tree, decoded from TOML:
//
//	[config]
//	drag_dead_zone = 6
//
//	[[node]]
//	name = "menu"
//	rect = [0, 0, 200, 0]
//	layout = "vertical"
//	spacing = 4
//	padding = [8, 8, 8, 8]
//	fit = ["unconstrained", "preferred"]
//
//	[[node]]
//	name = "play"
//	parent = "menu"
//	preferred = [0, 32]
//
// Nodes are created in file order; a parent must appear before its
// children. An empty parent means the scene root.
type SceneFile struct {
	Config   Config       `toml:"config"`
	Viewport [2]int       `toml:"viewport"`
	Nodes    []NodeSpec   `toml:"node"`
	Steps    []ScriptStep `toml:"step"`
}

// NodeSpec describes one node of a SceneFile.
type NodeSpec struct {
	Name      string      `toml:"name"`
	Parent    string      `toml:"parent"`
	Rect      [4]float64  `toml:"rect"` // x, y, width, height
	ZIndex    int         `toml:"z"`
	Inactive  bool        `toml:"inactive"`
	Layout    string      `toml:"layout"` // "", "horizontal" or "vertical"
	Spacing   float64     `toml:"spacing"`
	Padding   [4]float64  `toml:"padding"` // left, right, top, bottom
	Align     string      `toml:"align"`   // "start", "center", "end", "stretch"
	Preferred *[2]float64 `toml:"preferred"`
	Min       *[2]float64 `toml:"min"`
	Flexible  *[2]float64 `toml:"flexible"`
	Fit       [2]string   `toml:"fit"` // per axis: "", "unconstrained", "min", "preferred"
}

// DecodeSceneFile reads a SceneFile from r. Config keys the file leaves out
// keep their DefaultConfig values.
func DecodeSceneFile(r io.Reader) (*SceneFile, error) {
	sf := SceneFile{Config: DefaultConfig()}
	if _, err := toml.NewDecoder(r).Decode(&sf); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return &sf, nil
}

// LoadSceneFile reads a SceneFile from path.
func LoadSceneFile(path string) (*SceneFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()
	sf, err := DecodeSceneFile(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sf, nil
}

// Build creates a scene from the description and returns it with its nodes
// indexed by name. The layout is not yet processed; call Update or
// ForceRebuild(scene.Root()).
func (sf *SceneFile) Build() (*Scene, map[string]*Node, error) {
	if err := sf.Config.Validate(); err != nil {
		return nil, nil, err
	}
	s := NewSceneWithConfig(sf.Config)
	if sf.Viewport[0] > 0 && sf.Viewport[1] > 0 {
		s.SetViewport(sf.Viewport[0], sf.Viewport[1])
	}

	byName := make(map[string]*Node, len(sf.Nodes))
	for i, ns := range sf.Nodes {
		if ns.Name == "" {
			return nil, nil, fmt.Errorf("node %d: missing name", i)
		}
		if _, dup := byName[ns.Name]; dup {
			return nil, nil, fmt.Errorf("node %q: duplicate name", ns.Name)
		}
		parent := s.root
		if ns.Parent != "" {
			p, ok := byName[ns.Parent]
			if !ok {
				return nil, nil, fmt.Errorf("node %q: parent %q: %w", ns.Name, ns.Parent, ErrUnknownNode)
			}
			parent = p
		}
		n, err := ns.build()
		if err != nil {
			return nil, nil, fmt.Errorf("node %q: %w", ns.Name, err)
		}
		parent.AddChild(n)
		byName[ns.Name] = n
	}
	return s, byName, nil
}

func (ns NodeSpec) build() (*Node, error) {
	n := NewNodeRect(ns.Name, Rect{X: ns.Rect[0], Y: ns.Rect[1], Width: ns.Rect[2], Height: ns.Rect[3]})
	n.ZIndex = ns.ZIndex
	if ns.Inactive {
		n.SetActive(false)
	}

	switch ns.Layout {
	case "":
	case "horizontal", "vertical":
		dir := AxisHorizontal
		if ns.Layout == "vertical" {
			dir = AxisVertical
		}
		g := NewStackGroup(dir, ns.Spacing)
		g.Padding = Padding{Left: ns.Padding[0], Right: ns.Padding[1], Top: ns.Padding[2], Bottom: ns.Padding[3]}
		align, err := parseAlignment(ns.Align)
		if err != nil {
			return nil, err
		}
		g.Align = align
		n.AddBehavior(g)
	default:
		return nil, fmt.Errorf("unknown layout %q", ns.Layout)
	}

	if ns.Preferred != nil || ns.Min != nil || ns.Flexible != nil {
		box := &LayoutBox{}
		for _, axis := range [2]Axis{AxisHorizontal, AxisVertical} {
			var h SizeHints
			if ns.Preferred != nil {
				h.Preferred = ns.Preferred[axis]
			}
			if ns.Min != nil {
				h.Min = ns.Min[axis]
			}
			if ns.Flexible != nil {
				h.Flexible = ns.Flexible[axis]
			}
			box.hints[axis] = h
		}
		n.AddBehavior(box)
	}

	if ns.Fit[0] != "" || ns.Fit[1] != "" {
		var modes [2]FitMode
		for i, name := range ns.Fit {
			m, err := parseFitMode(name)
			if err != nil {
				return nil, err
			}
			modes[i] = m
		}
		n.AddBehavior(NewSizeFitter(modes[0], modes[1]))
	}
	return n, nil
}

func parseAlignment(s string) (Alignment, error) {
	switch s {
	case "", "start":
		return AlignStart, nil
	case "center":
		return AlignCenter, nil
	case "end":
		return AlignEnd, nil
	case "stretch":
		return AlignStretch, nil
	}
	return AlignStart, fmt.Errorf("unknown align %q", s)
}

func parseFitMode(s string) (FitMode, error) {
	switch s {
	case "", "unconstrained":
		return FitUnconstrained, nil
	case "min":
		return FitMin, nil
	case "preferred":
		return FitPreferred, nil
	}
	return FitUnconstrained, fmt.Errorf("unknown fit %q", s)
}

// Script returns a runner for the file's [[step]] entries, or nil when the
// file has none.
func (sf *SceneFile) Script() (*ScriptRunner, error) {
	if len(sf.Steps) == 0 {
		return nil, nil
	}
	return NewScriptRunner(sf.Steps)
}
