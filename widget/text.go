package widget

import "github.com/phanxgames/sapling"

// Text displays a run of text. Size, color, wrapping, and alignment are all
// optional; unset values fall back to the renderer default and the inherited
// style.
type Text struct {
	sapling.BaseWidget

	content string
	size    float64
	color   *sapling.Color
	wrap    sapling.WrapMode
	alignX  sapling.Alignment
	alignY  sapling.Alignment
	width   sapling.Length
	height  sapling.Length
}

// NewText creates a text widget that shrinks to its content.
func NewText(content string) *Text {
	return &Text{
		content: content,
		width:   sapling.Shrink,
		height:  sapling.Shrink,
	}
}

// Size sets the font size in pixels.
func (t *Text) Size(px float64) *Text {
	t.size = px
	return t
}

// Color overrides the inherited text color.
func (t *Text) Color(c sapling.Color) *Text {
	t.color = &c
	return t
}

// Wrap sets the wrapping mode.
func (t *Text) Wrap(mode sapling.WrapMode) *Text {
	t.wrap = mode
	return t
}

// AlignX sets the horizontal alignment within the widget bounds.
func (t *Text) AlignX(a sapling.Alignment) *Text {
	t.alignX = a
	return t
}

// AlignY sets the vertical alignment within the widget bounds.
func (t *Text) AlignY(a sapling.Alignment) *Text {
	t.alignY = a
	return t
}

// Width sets the width sizing policy.
func (t *Text) Width(l sapling.Length) *Text {
	t.width = l
	return t
}

// Height sets the height sizing policy.
func (t *Text) Height(l sapling.Length) *Text {
	t.height = l
	return t
}

func (t *Text) SizeHint() sapling.SizeHint {
	return sapling.SizeHint{Width: t.width, Height: t.height}
}

func (t *Text) text(bounds sapling.Size) sapling.Text {
	return sapling.Text{
		Content: t.content,
		Bounds:  bounds,
		Size:    t.size,
		AlignX:  t.alignX,
		AlignY:  t.alignY,
		Wrap:    t.wrap,
	}
}

func (t *Text) Layout(tree *sapling.Tree, renderer sapling.Renderer, limits sapling.Limits) sapling.Node {
	intrinsic := renderer.MeasureText(t.text(limits.Max()))
	return sapling.NewNode(limits.Resolve(t.width, t.height, intrinsic))
}

func (t *Text) Draw(tree *sapling.Tree, renderer sapling.Renderer, theme *sapling.Theme,
	style sapling.Style, layout sapling.Layout, cursor sapling.Cursor, viewport sapling.Rect) {
	bounds := layout.Bounds()
	color := style.TextColor
	if t.color != nil {
		color = *t.color
	}
	renderer.FillText(t.text(bounds.Size()), bounds.Position(), color, bounds.Intersection(viewport))
}
