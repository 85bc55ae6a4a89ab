package widget

import "github.com/phanxgames/sapling"

// Row lays its children out horizontally. By default it shrinks to its
// content on both axes.
type Row struct {
	flex
}

// NewRow creates a row with the given children.
func NewRow(children ...sapling.Widget) *Row {
	r := &Row{}
	r.axis = axisHorizontal
	r.width = sapling.Shrink
	r.height = sapling.Shrink
	r.children = children
	return r
}

// Push appends a child and returns the row for chaining.
func (r *Row) Push(child sapling.Widget) *Row {
	r.children = append(r.children, child)
	return r
}

// Spacing sets the gap between consecutive children, in pixels.
func (r *Row) Spacing(px float64) *Row {
	r.spacing = px
	return r
}

// Padding sets the inner padding.
func (r *Row) Padding(p sapling.Padding) *Row {
	r.padding = p
	return r
}

// Width sets the width sizing policy.
func (r *Row) Width(l sapling.Length) *Row {
	r.width = l
	return r
}

// Height sets the height sizing policy.
func (r *Row) Height(l sapling.Length) *Row {
	r.height = l
	return r
}

// AlignItems sets how children align on the vertical axis.
func (r *Row) AlignItems(a sapling.Alignment) *Row {
	r.align = a
	return r
}
