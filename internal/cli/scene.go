package cli

import (
	"fmt"

	"github.com/phanxgames/arbor"
)

// loadScene builds a headless scene from a scene file and settles its
// layout.
func (c *CLI) loadScene(path string) (*arbor.Scene, map[string]*arbor.Node, *arbor.SceneFile, error) {
	sf, err := arbor.LoadSceneFile(path)
	if err != nil {
		return nil, nil, nil, err
	}
	scene, nodes, err := sf.Build()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	scene.SetLogger(c.Logger)
	scene.SetPollInput(false)
	ran := scene.Layout().Process()
	c.Logger.Debug("scene loaded", "path", path, "nodes", len(nodes), "rebuilds", ran)
	return scene, nodes, sf, nil
}

func lookupNode(nodes map[string]*arbor.Node, name string) (*arbor.Node, error) {
	if name == "" {
		return nil, nil
	}
	n, ok := nodes[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, arbor.ErrUnknownNode)
	}
	return n, nil
}
