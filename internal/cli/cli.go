// Package cli implements the arbor command-line interface.
//
// The commands are headless: they build a scene from a TOML scene file,
// drive it for a few frames and print what happened.
//
//   - layout: print the resolved rect of every node
//   - hover: print the enter and exit events of a hover change or an input script
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "arbor"

// Log levels re-exported for main.
const (
	LogInfo  = log.InfoLevel
	LogDebug = log.DebugLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// newLogger creates a logger with timestamp formatting.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Inspect arbor scene files without opening a window",
		SilenceUsage: true,
	}

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.hoverCommand())

	return root
}
