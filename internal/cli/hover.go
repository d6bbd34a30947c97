package cli

import (
	"fmt"
	"io"

	"github.com/phanxgames/arbor"
	"github.com/spf13/cobra"
)

// maxScriptFrames bounds how long a script may run before it is abandoned.
const maxScriptFrames = 10000

// hoverCommand creates the "hover" command.
func (c *CLI) hoverCommand() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "hover <scene.toml>",
		Short: "Print the enter and exit events of a hover change",
		Long: `Print the enter and exit events produced when the pointer moves.

With --from and/or --to the pointer is placed over --from silently, then
moved to --to (an empty name means "over nothing"). Without them the scene
file's [[step]] script is played back.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, nodes, sf, err := c.loadScene(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("from") || cmd.Flags().Changed("to") {
				return transition(out, scene, nodes, from, to)
			}
			return playScript(out, scene, sf)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "node the pointer starts over")
	cmd.Flags().StringVar(&to, "to", "", "node the pointer moves to")
	return cmd
}

func transition(w io.Writer, scene *arbor.Scene, nodes map[string]*arbor.Node, from, to string) error {
	src, err := lookupNode(nodes, from)
	if err != nil {
		return err
	}
	dst, err := lookupNode(nodes, to)
	if err != nil {
		return err
	}
	scene.Router().HandleTransition(0, src)
	printEvents(w, scene)
	scene.Router().HandleTransition(0, dst)
	return nil
}

func playScript(w io.Writer, scene *arbor.Scene, sf *arbor.SceneFile) error {
	runner, err := sf.Script()
	if err != nil {
		return err
	}
	if runner == nil {
		return fmt.Errorf("no --from/--to given and the scene has no [[step]] script")
	}
	printEvents(w, scene)
	scene.SetScript(runner)
	for frame := 0; !runner.Done(); frame++ {
		if frame >= maxScriptFrames {
			return fmt.Errorf("script did not finish within %d frames", maxScriptFrames)
		}
		scene.Update()
	}
	return nil
}

func printEvents(w io.Writer, scene *arbor.Scene) {
	emit := func(ctx arbor.PointerContext) {
		fmt.Fprintf(w, "%s %s\n", ctx.Type, ctx.Node.Name)
	}
	scene.OnPointerExit(emit)
	scene.OnPointerEnter(emit)
	scene.OnClick(emit)
}
