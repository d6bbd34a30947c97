package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/phanxgames/arbor"
	"github.com/spf13/cobra"
)

// layoutCommand creates the "layout" command.
func (c *CLI) layoutCommand() *cobra.Command {
	var world bool

	cmd := &cobra.Command{
		Use:   "layout <scene.toml>",
		Short: "Print the resolved rect of every node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, _, _, err := c.loadScene(args[0])
			if err != nil {
				return err
			}
			for _, child := range scene.Root().Children() {
				printTree(cmd.OutOrStdout(), child, 0, world)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&world, "world", false, "print world-space rects instead of parent-relative ones")
	return cmd
}

func printTree(w io.Writer, n *arbor.Node, depth int, world bool) {
	r := n.Rect
	if world {
		r = n.WorldRect()
	}
	state := ""
	if !n.ActiveSelf() {
		state = " (inactive)"
	}
	fmt.Fprintf(w, "%s%s %g %g %g %g%s\n", strings.Repeat("  ", depth), n.Name, r.X, r.Y, r.Width, r.Height, state)
	for _, child := range n.Children() {
		printTree(w, child, depth+1, world)
	}
}
