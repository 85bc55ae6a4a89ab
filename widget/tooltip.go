package widget

import "github.com/phanxgames/sapling"

// Tooltip wraps a content widget and floats a text bubble next to it while
// the pointer hovers. The bubble is display-only: it never takes events and
// the pointer is never considered "over" it, so hovering the bubble region
// still reaches the base tree.
type Tooltip struct {
	sapling.BaseWidget

	content sapling.Widget
	text    string
	size    float64
	padding sapling.Padding
}

type tooltipState struct {
	hovered bool
}

// NewTooltip wraps content with a hover tooltip showing text.
func NewTooltip(content sapling.Widget, text string) *Tooltip {
	return &Tooltip{
		content: content,
		text:    text,
		padding: sapling.UniformPadding(6),
	}
}

// TextSize sets the bubble font size in pixels.
func (t *Tooltip) TextSize(px float64) *Tooltip {
	t.size = px
	return t
}

func (t *Tooltip) Tag() sapling.Tag {
	return sapling.TagOf[tooltipState]()
}

func (t *Tooltip) State() any {
	return &tooltipState{}
}

func (t *Tooltip) Children() []sapling.Widget {
	return []sapling.Widget{t.content}
}

func (t *Tooltip) Diff(tree *sapling.Tree) {
	tree.DiffChildren(t.Children())
}

func (t *Tooltip) SizeHint() sapling.SizeHint {
	return t.content.SizeHint()
}

func (t *Tooltip) Layout(tree *sapling.Tree, renderer sapling.Renderer, limits sapling.Limits) sapling.Node {
	child := t.content.Layout(tree.Children[0], renderer, limits)
	return sapling.NewNodeWithChildren(child.Size(), []sapling.Node{child})
}

func (t *Tooltip) OnEvent(tree *sapling.Tree, event sapling.Event, layout sapling.Layout,
	cursor sapling.Cursor, renderer sapling.Renderer, clipboard sapling.Clipboard,
	shell *sapling.Shell, viewport sapling.Rect) sapling.Status {
	if _, ok := event.(sapling.PointerMoved); ok {
		state := sapling.StateOf[tooltipState](tree)
		hovered := cursor.IsOver(layout.Bounds())
		if hovered != state.hovered {
			state.hovered = hovered
			shell.RequestRedraw()
		}
	}
	return t.content.OnEvent(tree.Children[0], event, layout.ChildAt(0),
		cursor, renderer, clipboard, shell, viewport)
}

func (t *Tooltip) Draw(tree *sapling.Tree, renderer sapling.Renderer, theme *sapling.Theme,
	style sapling.Style, layout sapling.Layout, cursor sapling.Cursor, viewport sapling.Rect) {
	t.content.Draw(tree.Children[0], renderer, theme, style, layout.ChildAt(0), cursor, viewport)
}

func (t *Tooltip) MouseInteraction(tree *sapling.Tree, layout sapling.Layout,
	cursor sapling.Cursor, viewport sapling.Rect, renderer sapling.Renderer) sapling.Interaction {
	return t.content.MouseInteraction(tree.Children[0], layout.ChildAt(0), cursor, viewport, renderer)
}

func (t *Tooltip) Operate(tree *sapling.Tree, layout sapling.Layout,
	renderer sapling.Renderer, op sapling.Operation) {
	t.content.Operate(tree.Children[0], layout.ChildAt(0), renderer, op)
}

func (t *Tooltip) Overlay(tree *sapling.Tree, layout sapling.Layout,
	renderer sapling.Renderer, translation sapling.Vec2) sapling.Overlay {
	if nested := t.content.Overlay(tree.Children[0], layout.ChildAt(0),
		renderer, translation); nested != nil {
		return nested
	}
	state := sapling.StateOf[tooltipState](tree)
	if !state.hovered || t.text == "" {
		return nil
	}
	return &tooltipOverlay{
		text:    t.text,
		size:    t.size,
		padding: t.padding,
		anchor:  layout.Bounds().Translate(translation),
	}
}

// tooltipOverlay is the floating bubble. It ignores all events and reports
// IsOver false everywhere, so it never shadows the base tree.
type tooltipOverlay struct {
	text    string
	size    float64
	padding sapling.Padding
	anchor  sapling.Rect
}

const tooltipGap = 4

func (o *tooltipOverlay) Layout(renderer sapling.Renderer, bounds sapling.Size) sapling.Node {
	label := renderer.MeasureText(sapling.Text{Content: o.text, Size: o.size})
	size := label.Pad(o.padding)

	// Below the anchor, flipped above when there is no room, clamped to the
	// viewport horizontally.
	position := sapling.Point{X: o.anchor.X, Y: o.anchor.Y + o.anchor.Height + tooltipGap}
	if position.Y+size.Height > bounds.Height {
		position.Y = o.anchor.Y - size.Height - tooltipGap
	}
	if position.X+size.Width > bounds.Width {
		position.X = bounds.Width - size.Width
	}
	if position.X < 0 {
		position.X = 0
	}
	if position.Y < 0 {
		position.Y = 0
	}
	return sapling.NewNode(size).Move(position)
}

func (o *tooltipOverlay) OnEvent(event sapling.Event, layout sapling.Layout,
	cursor sapling.Cursor, renderer sapling.Renderer, clipboard sapling.Clipboard,
	shell *sapling.Shell) sapling.Status {
	return sapling.StatusIgnored
}

func (o *tooltipOverlay) Draw(renderer sapling.Renderer, theme *sapling.Theme,
	style sapling.Style, layout sapling.Layout, cursor sapling.Cursor) {
	bounds := layout.Bounds()
	renderer.FillQuad(sapling.Quad{
		Bounds:       bounds,
		Background:   theme.Palette.Text,
		BorderRadius: 3,
	})
	content := bounds.Shrink(o.padding)
	renderer.FillText(sapling.Text{
		Content: o.text,
		Bounds:  content.Size(),
		Size:    o.size,
		AlignY:  sapling.AlignCenter,
	}, content.Position(), theme.Palette.Background, bounds)
}

func (o *tooltipOverlay) MouseInteraction(layout sapling.Layout, cursor sapling.Cursor,
	viewport sapling.Rect, renderer sapling.Renderer) sapling.Interaction {
	return sapling.InteractionNone
}

func (o *tooltipOverlay) IsOver(layout sapling.Layout, renderer sapling.Renderer,
	position sapling.Point) bool {
	return false
}

func (o *tooltipOverlay) Operate(layout sapling.Layout, renderer sapling.Renderer, op sapling.Operation) {
}

func (o *tooltipOverlay) Overlay(layout sapling.Layout, renderer sapling.Renderer) sapling.Overlay {
	return nil
}
