package widget

import "github.com/phanxgames/sapling"

// Space is an empty widget used for gaps and flexible spacers. It draws
// nothing and ignores everything.
type Space struct {
	sapling.BaseWidget

	width  sapling.Length
	height sapling.Length
}

// NewSpace creates a space with the given sizing policy per axis.
func NewSpace(width, height sapling.Length) *Space {
	return &Space{width: width, height: height}
}

// HorizontalSpace fills the available width.
func HorizontalSpace() *Space {
	return NewSpace(sapling.Fill, sapling.Fixed(0))
}

// VerticalSpace fills the available height.
func VerticalSpace() *Space {
	return NewSpace(sapling.Fixed(0), sapling.Fill)
}

func (s *Space) SizeHint() sapling.SizeHint {
	return sapling.SizeHint{Width: s.width, Height: s.height}
}

func (s *Space) Layout(tree *sapling.Tree, renderer sapling.Renderer, limits sapling.Limits) sapling.Node {
	return sapling.NewNode(limits.Resolve(s.width, s.height, sapling.Size{}))
}

func (s *Space) Draw(tree *sapling.Tree, renderer sapling.Renderer, theme *sapling.Theme,
	style sapling.Style, layout sapling.Layout, cursor sapling.Cursor, viewport sapling.Rect) {
}
