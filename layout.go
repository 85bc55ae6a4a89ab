package sapling

// Node is one computed rectangle in a layout tree. Its position is relative
// to its parent's origin; absolute bounds are accumulated top-down during
// traversal via Layout. A Node is immutable once built: mutating methods
// return copies.
//
// A layout tree has the same shape as the widget tree that produced it, one
// Node per widget with children in order, and is valid only for the widget
// tree, state, and bounds it was computed from.
type Node struct {
	bounds   Rect
	children []Node
}

// NewNode creates a leaf node of the given size at the origin.
func NewNode(size Size) Node {
	return Node{bounds: Rect{Width: size.Width, Height: size.Height}}
}

// NewNodeWithChildren creates a node of the given size with already-positioned
// children.
func NewNodeWithChildren(size Size, children []Node) Node {
	return Node{
		bounds:   Rect{Width: size.Width, Height: size.Height},
		children: children,
	}
}

// Bounds returns the node's rectangle, positioned relative to its parent.
func (n Node) Bounds() Rect {
	return n.bounds
}

// Size returns the node's dimensions.
func (n Node) Size() Size {
	return n.bounds.Size()
}

// Children returns the child nodes. The returned slice MUST NOT be mutated
// by the caller.
func (n Node) Children() []Node {
	return n.children
}

// Move returns the node repositioned at the given parent-relative point.
func (n Node) Move(to Point) Node {
	n.bounds.X = to.X
	n.bounds.Y = to.Y
	return n
}

// Translate returns the node moved by a vector.
func (n Node) Translate(v Vec2) Node {
	n.bounds.X += v.X
	n.bounds.Y += v.Y
	return n
}

// Layout is a positioned view into a layout tree: a Node plus the
// accumulated offset of its ancestors. Widgets receive a Layout during
// event handling, drawing, and hit testing so that Bounds is always in
// absolute coordinates.
type Layout struct {
	position Point
	node     *Node
}

// NewLayout creates a root-level view of a layout node.
func NewLayout(n *Node) Layout {
	return layoutWithOffset(Vec2{}, n)
}

func layoutWithOffset(offset Vec2, n *Node) Layout {
	return Layout{
		position: Point{offset.X + n.bounds.X, offset.Y + n.bounds.Y},
		node:     n,
	}
}

// Position returns the absolute top-left corner of this layout.
func (l Layout) Position() Point {
	return l.position
}

// Bounds returns the node's rectangle in absolute coordinates.
func (l Layout) Bounds() Rect {
	return Rect{l.position.X, l.position.Y, l.node.bounds.Width, l.node.bounds.Height}
}

// ChildCount returns the number of child layouts.
func (l Layout) ChildCount() int {
	return len(l.node.children)
}

// ChildAt returns a view of the i-th child, offset by this layout's position.
func (l Layout) ChildAt(i int) Layout {
	return layoutWithOffset(Vec2{l.position.X, l.position.Y}, &l.node.children[i])
}

// Children returns views of all children in order.
func (l Layout) Children() []Layout {
	out := make([]Layout, len(l.node.children))
	for i := range l.node.children {
		out[i] = l.ChildAt(i)
	}
	return out
}
