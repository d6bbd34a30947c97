package arbor

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with the "arbor" prefix and short timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "arbor",
	})
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// debugLogger receives tree warnings from node operations. It follows the
// logger of the scene that last enabled debug mode.
var debugLogger = newLogger(os.Stderr, log.WarnLevel)

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("arbor debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := n.Depth() + 1
	if depth > debugMaxTreeDepth {
		debugLogger.Warn("tree depth exceeds threshold", "node", n.Name, "depth", depth, "max", debugMaxTreeDepth)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		debugLogger.Warn("child count exceeds threshold", "node", n.Name, "children", len(n.children), "max", debugMaxChildCount)
	}
}

// logLayoutStats reports the scheduler's work since the previous frame.
// Quiet frames are not logged.
func (s *Scene) logLayoutStats() {
	st := s.layout.resetStats()
	if st.marks == 0 && st.rebuilds == 0 && st.stale == 0 {
		return
	}
	s.logger.Debug("layout",
		"marks", st.marks,
		"absorbed", st.absorbed,
		"rebuilds", st.rebuilds,
		"stale", st.stale,
		"calls", st.calls,
		"elapsed", st.elapsed,
	)
}
