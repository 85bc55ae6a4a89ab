package widget

import "github.com/phanxgames/sapling"

// Column lays its children out vertically. By default it shrinks to its
// content on both axes.
type Column struct {
	flex
}

// NewColumn creates a column with the given children.
func NewColumn(children ...sapling.Widget) *Column {
	c := &Column{}
	c.axis = axisVertical
	c.width = sapling.Shrink
	c.height = sapling.Shrink
	c.children = children
	return c
}

// Push appends a child and returns the column for chaining.
func (c *Column) Push(child sapling.Widget) *Column {
	c.children = append(c.children, child)
	return c
}

// Spacing sets the gap between consecutive children, in pixels.
func (c *Column) Spacing(px float64) *Column {
	c.spacing = px
	return c
}

// Padding sets the inner padding.
func (c *Column) Padding(p sapling.Padding) *Column {
	c.padding = p
	return c
}

// Width sets the width sizing policy.
func (c *Column) Width(l sapling.Length) *Column {
	c.width = l
	return c
}

// Height sets the height sizing policy.
func (c *Column) Height(l sapling.Length) *Column {
	c.height = l
	return c
}

// AlignItems sets how children align on the horizontal axis.
func (c *Column) AlignItems(a sapling.Alignment) *Column {
	c.align = a
	return c
}
