package widget

import (
	"time"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/sapling"
)

// Button wraps a content widget and publishes a message when clicked: a
// press inside its bounds followed by a release inside its bounds. A press
// captures the pointer until release, so dragging off the button and
// releasing cancels the click without triggering anyone else.
type Button struct {
	sapling.BaseWidget

	content sapling.Widget
	onPress any
	padding sapling.Padding
	width   sapling.Length
	height  sapling.Length
}

type buttonState struct {
	pressed   bool
	hovered   bool
	highlight *sapling.Transition
}

const buttonFade = 120 * time.Millisecond

// NewButton creates a button around content that publishes onPress when
// clicked. A nil onPress renders the button disabled.
func NewButton(content sapling.Widget, onPress any) *Button {
	return &Button{
		content: content,
		onPress: onPress,
		padding: sapling.UniformPadding(8),
		width:   sapling.Shrink,
		height:  sapling.Shrink,
	}
}

// Padding sets the padding around the content.
func (b *Button) Padding(p sapling.Padding) *Button {
	b.padding = p
	return b
}

// Width sets the width sizing policy.
func (b *Button) Width(l sapling.Length) *Button {
	b.width = l
	return b
}

// Height sets the height sizing policy.
func (b *Button) Height(l sapling.Length) *Button {
	b.height = l
	return b
}

func (b *Button) Tag() sapling.Tag {
	return sapling.TagOf[buttonState]()
}

func (b *Button) State() any {
	return &buttonState{highlight: sapling.NewTransition(0)}
}

func (b *Button) Children() []sapling.Widget {
	return []sapling.Widget{b.content}
}

func (b *Button) Diff(tree *sapling.Tree) {
	tree.DiffChildren(b.Children())
}

func (b *Button) SizeHint() sapling.SizeHint {
	return sapling.SizeHint{Width: b.width, Height: b.height}
}

func (b *Button) Layout(tree *sapling.Tree, renderer sapling.Renderer, limits sapling.Limits) sapling.Node {
	outer := limits
	if b.width.Mode == sapling.SizeFixed {
		outer = outer.MaxWidth(b.width.Value)
	}
	if b.height.Mode == sapling.SizeFixed {
		outer = outer.MaxHeight(b.height.Value)
	}
	inner := outer.Loose().Shrink(b.padding)
	child := b.content.Layout(tree.Children[0], renderer, inner)
	intrinsic := child.Size().Pad(b.padding)
	size := limits.Resolve(b.width, b.height, intrinsic)
	return sapling.NewNodeWithChildren(size,
		[]sapling.Node{child.Move(sapling.Point{X: b.padding.Left, Y: b.padding.Top})})
}

func (b *Button) OnEvent(tree *sapling.Tree, event sapling.Event, layout sapling.Layout,
	cursor sapling.Cursor, renderer sapling.Renderer, clipboard sapling.Clipboard,
	shell *sapling.Shell, viewport sapling.Rect) sapling.Status {
	if status := b.content.OnEvent(tree.Children[0], event, layout.ChildAt(0),
		cursor, renderer, clipboard, shell, viewport); status == sapling.StatusCaptured {
		return status
	}

	state := sapling.StateOf[buttonState](tree)
	bounds := layout.Bounds()

	switch e := event.(type) {
	case sapling.PointerMoved:
		hovered := cursor.IsOver(bounds)
		if hovered != state.hovered {
			state.hovered = hovered
			target := 0.0
			if hovered {
				target = 1
			}
			state.highlight.Go(target, buttonFade, ease.OutQuad)
			shell.RequestRedraw()
		}

	case sapling.ButtonPressed:
		if e.Button == sapling.MouseButtonLeft && b.onPress != nil && cursor.IsOver(bounds) {
			state.pressed = true
			shell.RequestRedraw()
			return sapling.StatusCaptured
		}

	case sapling.ButtonReleased:
		if e.Button == sapling.MouseButtonLeft && state.pressed {
			state.pressed = false
			shell.RequestRedraw()
			if b.onPress != nil && cursor.IsOver(bounds) {
				shell.Publish(b.onPress)
			}
			return sapling.StatusCaptured
		}

	case sapling.RedrawRequested:
		if state.highlight.Tick(e.At) {
			shell.RequestRedraw()
		}

	case sapling.PointerLeft:
		if state.hovered {
			state.hovered = false
			state.highlight.Go(0, buttonFade, ease.OutQuad)
			shell.RequestRedraw()
		}
	}

	return sapling.StatusIgnored
}

func (b *Button) Draw(tree *sapling.Tree, renderer sapling.Renderer, theme *sapling.Theme,
	style sapling.Style, layout sapling.Layout, cursor sapling.Cursor, viewport sapling.Rect) {
	state := sapling.StateOf[buttonState](tree)
	bounds := layout.Bounds()

	background := theme.Palette.Primary
	if b.onPress == nil {
		background = theme.Palette.Outline
	} else if state.pressed {
		background = background.Mix(theme.Palette.Text, 0.25)
	} else {
		background = background.Mix(theme.Palette.Text, 0.1*state.highlight.Value())
	}

	renderer.FillQuad(sapling.Quad{
		Bounds:       bounds,
		Background:   background,
		BorderRadius: 4,
	})

	contentStyle := style
	contentStyle.TextColor = theme.Palette.Surface
	b.content.Draw(tree.Children[0], renderer, theme, contentStyle,
		layout.ChildAt(0), cursor, viewport)
}

func (b *Button) MouseInteraction(tree *sapling.Tree, layout sapling.Layout,
	cursor sapling.Cursor, viewport sapling.Rect, renderer sapling.Renderer) sapling.Interaction {
	if b.onPress != nil && cursor.IsOver(layout.Bounds()) {
		return sapling.InteractionPointer
	}
	return sapling.InteractionNone
}

func (b *Button) Operate(tree *sapling.Tree, layout sapling.Layout,
	renderer sapling.Renderer, op sapling.Operation) {
	b.content.Operate(tree.Children[0], layout.ChildAt(0), renderer, op)
}

func (b *Button) Overlay(tree *sapling.Tree, layout sapling.Layout,
	renderer sapling.Renderer, translation sapling.Vec2) sapling.Overlay {
	return b.content.Overlay(tree.Children[0], layout.ChildAt(0), renderer, translation)
}
