package sapling

import (
	"fmt"
	"os"
)

// debugEnabled mirrors the most recently set debug flag. Plain bool, no
// atomic; sapling is single-threaded.
var debugEnabled bool

// SetDebugMode enables or disables debug mode. When enabled, layout
// containment violations are reported to stderr after every layout pass.
func SetDebugMode(enabled bool) {
	debugEnabled = enabled
}

// Debug reports whether debug mode is on.
func Debug() bool {
	return debugEnabled
}

const maxDebugViolations = 16

// debugCheckContainment walks a layout tree and warns about children whose
// bounds escape their parent. Overflow is legal for widgets that document
// it (unclipped scrollable content), so this warns rather than panics.
func debugCheckContainment(root *Node, name string) {
	violations := 0
	var walk func(n *Node, path string)
	walk = func(n *Node, path string) {
		parent := Rect{Width: n.bounds.Width, Height: n.bounds.Height}
		for i := range n.children {
			child := n.children[i].bounds
			if violations < maxDebugViolations &&
				(child.X < 0 || child.Y < 0 ||
					child.X+child.Width > parent.Width+0.5 ||
					child.Y+child.Height > parent.Height+0.5) {
				fmt.Fprintf(os.Stderr,
					"sapling: layout %s/%d escapes parent: child %v, parent %v\n",
					path, i, child, parent)
				violations++
			}
			walk(&n.children[i], fmt.Sprintf("%s/%d", path, i))
		}
	}
	walk(root, name)
}
