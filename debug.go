package codequest

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and draw metrics.
// Only populated when the game runs in debug mode.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	batch      batchStats
	nodes      int
}

// debugLogInterval is how many frames pass between stats lines.
const debugLogInterval = 60

// debugLog prints timing and draw stats to stderr.
func debugLog(screen string, stats debugStats) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[codequest] %s | update: %v | draw: %v | nodes: %d | quads: %d | glyph runs: %d\n",
		screen, stats.updateTime, stats.drawTime, stats.nodes, stats.batch.quads, stats.batch.glyphs)
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[codequest] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// countNodes returns the number of live nodes in the subtree rooted at n,
// warning about overly deep leaves on the way.
func countNodes(n *Node) int {
	if n == nil || n.disposed {
		return 0
	}
	if len(n.children) == 0 {
		debugCheckTreeDepth(n)
	}
	count := 1
	for _, c := range n.children {
		count += countNodes(c)
	}
	return count
}
