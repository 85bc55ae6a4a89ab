package widget

import "github.com/phanxgames/sapling"

// Checkbox is a toggle with a label. It is controlled: the checked value
// comes from the description, and toggling publishes onToggle(!checked)
// rather than flipping anything locally.
type Checkbox struct {
	sapling.BaseWidget

	label    string
	checked  bool
	onToggle func(bool) any
	size     float64
	spacing  float64
	textSize float64
}

// NewCheckbox creates a checkbox. onToggle maps the proposed new value to a
// message; nil renders the checkbox disabled.
func NewCheckbox(label string, checked bool, onToggle func(bool) any) *Checkbox {
	return &Checkbox{
		label:    label,
		checked:  checked,
		onToggle: onToggle,
		size:     16,
		spacing:  8,
	}
}

// TextSize sets the label font size in pixels.
func (c *Checkbox) TextSize(px float64) *Checkbox {
	c.textSize = px
	return c
}

func (c *Checkbox) SizeHint() sapling.SizeHint {
	return sapling.SizeHint{Width: sapling.Shrink, Height: sapling.Shrink}
}

func (c *Checkbox) labelText(bounds sapling.Size) sapling.Text {
	return sapling.Text{
		Content: c.label,
		Bounds:  bounds,
		Size:    c.textSize,
		AlignY:  sapling.AlignCenter,
	}
}

func (c *Checkbox) Layout(tree *sapling.Tree, renderer sapling.Renderer, limits sapling.Limits) sapling.Node {
	label := renderer.MeasureText(c.labelText(limits.Max()))
	intrinsic := sapling.Size{
		Width:  c.size + c.spacing + label.Width,
		Height: label.Height,
	}
	if c.size > intrinsic.Height {
		intrinsic.Height = c.size
	}
	return sapling.NewNode(limits.Resolve(sapling.Shrink, sapling.Shrink, intrinsic))
}

func (c *Checkbox) OnEvent(tree *sapling.Tree, event sapling.Event, layout sapling.Layout,
	cursor sapling.Cursor, renderer sapling.Renderer, clipboard sapling.Clipboard,
	shell *sapling.Shell, viewport sapling.Rect) sapling.Status {
	e, ok := event.(sapling.ButtonPressed)
	if !ok || e.Button != sapling.MouseButtonLeft || c.onToggle == nil {
		return sapling.StatusIgnored
	}
	if !cursor.IsOver(layout.Bounds()) {
		return sapling.StatusIgnored
	}
	shell.Publish(c.onToggle(!c.checked))
	return sapling.StatusCaptured
}

func (c *Checkbox) Draw(tree *sapling.Tree, renderer sapling.Renderer, theme *sapling.Theme,
	style sapling.Style, layout sapling.Layout, cursor sapling.Cursor, viewport sapling.Rect) {
	bounds := layout.Bounds()
	clip := bounds.Intersection(viewport)

	box := sapling.Rect{
		X:      bounds.X,
		Y:      bounds.Y + (bounds.Height-c.size)/2,
		Width:  c.size,
		Height: c.size,
	}
	background := theme.Palette.Surface
	border := theme.Palette.Outline
	if c.checked {
		background = theme.Palette.Primary
		border = theme.Palette.Primary
	}
	renderer.FillQuad(sapling.Quad{
		Bounds:       box,
		Background:   background,
		BorderColor:  border,
		BorderWidth:  1,
		BorderRadius: 3,
	})
	if c.checked {
		renderer.FillQuad(sapling.Quad{
			Bounds:     box.Shrink(sapling.UniformPadding(c.size / 4)),
			Background: theme.Palette.Surface,
		})
	}

	labelOrigin := sapling.Point{X: bounds.X + c.size + c.spacing, Y: bounds.Y}
	labelBounds := sapling.Size{Width: bounds.Width - c.size - c.spacing, Height: bounds.Height}
	renderer.FillText(c.labelText(labelBounds), labelOrigin, style.TextColor, clip)
}

func (c *Checkbox) MouseInteraction(tree *sapling.Tree, layout sapling.Layout,
	cursor sapling.Cursor, viewport sapling.Rect, renderer sapling.Renderer) sapling.Interaction {
	if c.onToggle != nil && cursor.IsOver(layout.Bounds()) {
		return sapling.InteractionPointer
	}
	return sapling.InteractionNone
}
