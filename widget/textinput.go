package widget

import (
	"github.com/rivo/uniseg"

	"github.com/phanxgames/sapling"
)

// TextInput is a single-line text field. It is controlled: the value comes
// from the description and every edit publishes onInput with the proposed
// new value. Cursor movement operates on grapheme clusters, so multi-rune
// characters are never split.
type TextInput struct {
	sapling.BaseWidget

	id          sapling.ID
	value       string
	placeholder string
	onInput     func(string) any
	onSubmit    any
	size        float64
	padding     sapling.Padding
	width       sapling.Length
}

type textInputState struct {
	text    string
	cursor  int // byte offset into text, always on a grapheme boundary
	focused bool
}

func (s *textInputState) IsFocused() bool { return s.focused }
func (s *textInputState) Focus()          { s.focused = true }
func (s *textInputState) Unfocus()        { s.focused = false }

func (s *textInputState) Text() string { return s.text }

// MoveCursorTo clamps position into the text and snaps it to the nearest
// grapheme boundary, so external operations cannot park the caret inside a
// cluster.
func (s *textInputState) MoveCursorTo(position int) {
	if position <= 0 {
		s.cursor = 0
		return
	}
	if position >= len(s.text) {
		s.cursor = len(s.text)
		return
	}
	start := prevGraphemeBoundary(s.text, position)
	end := nextGraphemeBoundary(s.text, start)
	if position-start < end-position {
		s.cursor = start
	} else {
		s.cursor = end
	}
}

func (s *textInputState) MoveCursorToEnd() {
	s.cursor = len(s.text)
}

// NewTextInput creates a text input showing value, with a placeholder for
// when it is empty. onInput maps each edited value to a message; nil renders
// the input read-only.
func NewTextInput(placeholder, value string, onInput func(string) any) *TextInput {
	return &TextInput{
		value:       value,
		placeholder: placeholder,
		onInput:     onInput,
		padding:     sapling.UniformPadding(6),
		width:       sapling.Fill,
	}
}

// ID sets the input's address for targeted operations.
func (t *TextInput) ID(id sapling.ID) *TextInput {
	t.id = id
	return t
}

// OnSubmit sets the message published when enter is pressed while focused.
func (t *TextInput) OnSubmit(message any) *TextInput {
	t.onSubmit = message
	return t
}

// TextSize sets the font size in pixels.
func (t *TextInput) TextSize(px float64) *TextInput {
	t.size = px
	return t
}

// Width sets the width sizing policy.
func (t *TextInput) Width(l sapling.Length) *TextInput {
	t.width = l
	return t
}

func (t *TextInput) Tag() sapling.Tag {
	return sapling.TagOf[textInputState]()
}

func (t *TextInput) State() any {
	return &textInputState{text: t.value, cursor: len(t.value)}
}

// Diff syncs the controlled value into the state: the description is the
// source of truth after every rebuild, and the cursor is clamped to it.
func (t *TextInput) Diff(tree *sapling.Tree) {
	state := sapling.StateOf[textInputState](tree)
	if state.text != t.value {
		state.text = t.value
		state.MoveCursorTo(state.cursor)
	}
}

func (t *TextInput) SizeHint() sapling.SizeHint {
	return sapling.SizeHint{Width: t.width, Height: sapling.Shrink}
}

func (t *TextInput) text(content string, bounds sapling.Size) sapling.Text {
	return sapling.Text{
		Content: content,
		Bounds:  bounds,
		Size:    t.size,
		AlignY:  sapling.AlignCenter,
	}
}

func (t *TextInput) Layout(tree *sapling.Tree, renderer sapling.Renderer, limits sapling.Limits) sapling.Node {
	// The line height comes from a sample glyph run, so an empty input is as
	// tall as a filled one.
	line := renderer.MeasureText(t.text("Mg", sapling.Size{}))
	intrinsic := sapling.Size{Width: 120, Height: line.Height}.Pad(t.padding)
	return sapling.NewNode(limits.Resolve(t.width, sapling.Shrink, intrinsic))
}

// prefixWidth measures the rendered width of text up to the given byte
// offset.
func (t *TextInput) prefixWidth(renderer sapling.Renderer, text string, offset int) float64 {
	if offset <= 0 {
		return 0
	}
	return renderer.MeasureText(t.text(text[:offset], sapling.Size{})).Width
}

// cursorIndexAt maps a horizontal offset inside the content box to the
// nearest grapheme boundary.
func (t *TextInput) cursorIndexAt(renderer sapling.Renderer, text string, x float64) int {
	best, bestDist := 0, x
	if bestDist < 0 {
		bestDist = -bestDist
	}
	for i := 0; i < len(text); {
		i = nextGraphemeBoundary(text, i)
		dist := t.prefixWidth(renderer, text, i) - x
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}

func (t *TextInput) edit(state *textInputState, newText string, newCursor int, shell *sapling.Shell) {
	state.text = newText
	state.cursor = newCursor
	if t.onInput != nil {
		shell.Publish(t.onInput(newText))
	}
}

func (t *TextInput) OnEvent(tree *sapling.Tree, event sapling.Event, layout sapling.Layout,
	cursor sapling.Cursor, renderer sapling.Renderer, clipboard sapling.Clipboard,
	shell *sapling.Shell, viewport sapling.Rect) sapling.Status {
	state := sapling.StateOf[textInputState](tree)
	bounds := layout.Bounds()

	switch e := event.(type) {
	case sapling.ButtonPressed:
		if e.Button != sapling.MouseButtonLeft {
			return sapling.StatusIgnored
		}
		if pos, ok := cursor.Position(); ok && bounds.Contains(pos) {
			state.focused = true
			state.cursor = t.cursorIndexAt(renderer, state.text, pos.X-bounds.X-t.padding.Left)
			return sapling.StatusCaptured
		}
		// A press elsewhere blurs the input but stays uncaptured, so the
		// widget actually under the pointer still sees it.
		state.focused = false
		return sapling.StatusIgnored

	case sapling.TextEntered:
		if !state.focused || t.onInput == nil {
			return sapling.StatusIgnored
		}
		text := state.text[:state.cursor] + e.Text + state.text[state.cursor:]
		t.edit(state, text, state.cursor+len(e.Text), shell)
		return sapling.StatusCaptured

	case sapling.KeyPressed:
		if !state.focused {
			return sapling.StatusIgnored
		}
		return t.onKey(state, e, clipboard, shell)
	}

	return sapling.StatusIgnored
}

func (t *TextInput) onKey(state *textInputState, e sapling.KeyPressed,
	clipboard sapling.Clipboard, shell *sapling.Shell) sapling.Status {
	switch e.Key {
	case sapling.KeyLeft:
		state.cursor = prevGraphemeBoundary(state.text, state.cursor)
	case sapling.KeyRight:
		state.cursor = nextGraphemeBoundary(state.text, state.cursor)
	case sapling.KeyHome:
		state.cursor = 0
	case sapling.KeyEnd:
		state.cursor = len(state.text)
	case sapling.KeyBackspace:
		if state.cursor == 0 || t.onInput == nil {
			return sapling.StatusCaptured
		}
		from := prevGraphemeBoundary(state.text, state.cursor)
		t.edit(state, state.text[:from]+state.text[state.cursor:], from, shell)
	case sapling.KeyDelete:
		if state.cursor >= len(state.text) || t.onInput == nil {
			return sapling.StatusCaptured
		}
		to := nextGraphemeBoundary(state.text, state.cursor)
		t.edit(state, state.text[:state.cursor]+state.text[to:], state.cursor, shell)
	case sapling.KeyEnter:
		if t.onSubmit != nil {
			shell.Publish(t.onSubmit)
		}
	case sapling.KeyEscape:
		state.focused = false
	default:
		if e.Modifiers.Ctrl() || e.Modifiers.Meta() {
			return t.onShortcut(state, e, clipboard, shell)
		}
		return sapling.StatusIgnored
	}
	return sapling.StatusCaptured
}

func (t *TextInput) onShortcut(state *textInputState, e sapling.KeyPressed,
	clipboard sapling.Clipboard, shell *sapling.Shell) sapling.Status {
	// No selection model yet, so copy and cut act on the whole value.
	// TODO: selection with shift+arrows, then clipboard acts on it.
	switch e.Key {
	case sapling.KeyC:
		clipboard.Write(state.text)
	case sapling.KeyX:
		clipboard.Write(state.text)
		if t.onInput != nil {
			t.edit(state, "", 0, shell)
		}
	case sapling.KeyV:
		if pasted, ok := clipboard.Read(); ok && t.onInput != nil {
			text := state.text[:state.cursor] + pasted + state.text[state.cursor:]
			t.edit(state, text, state.cursor+len(pasted), shell)
		}
	default:
		return sapling.StatusIgnored
	}
	return sapling.StatusCaptured
}

func (t *TextInput) Draw(tree *sapling.Tree, renderer sapling.Renderer, theme *sapling.Theme,
	style sapling.Style, layout sapling.Layout, cursor sapling.Cursor, viewport sapling.Rect) {
	state := sapling.StateOf[textInputState](tree)
	bounds := layout.Bounds()
	clip := bounds.Intersection(viewport)

	border := theme.Palette.Outline
	if state.focused {
		border = theme.Palette.Primary
	}
	renderer.FillQuad(sapling.Quad{
		Bounds:       bounds,
		Background:   theme.Palette.Surface,
		BorderColor:  border,
		BorderWidth:  1,
		BorderRadius: 3,
	})

	content := bounds.Shrink(t.padding)
	innerClip := content.Intersection(clip)
	if state.text == "" {
		renderer.FillText(t.text(t.placeholder, content.Size()), content.Position(),
			theme.Palette.Placeholder, innerClip)
	} else {
		renderer.FillText(t.text(state.text, content.Size()), content.Position(),
			style.TextColor, innerClip)
	}

	if state.focused {
		caretX := content.X + t.prefixWidth(renderer, state.text, state.cursor)
		renderer.FillQuad(sapling.Quad{
			Bounds: sapling.Rect{
				X: caretX, Y: content.Y,
				Width: 1, Height: content.Height,
			},
			Background: theme.Palette.Primary,
		})
	}
}

func (t *TextInput) MouseInteraction(tree *sapling.Tree, layout sapling.Layout,
	cursor sapling.Cursor, viewport sapling.Rect, renderer sapling.Renderer) sapling.Interaction {
	if cursor.IsOver(layout.Bounds()) {
		return sapling.InteractionText
	}
	return sapling.InteractionNone
}

func (t *TextInput) Operate(tree *sapling.Tree, layout sapling.Layout,
	renderer sapling.Renderer, op sapling.Operation) {
	state := sapling.StateOf[textInputState](tree)
	op.Focusable(t.id, layout.Bounds(), state)
	op.TextEditable(t.id, layout.Bounds(), state)
}

// --- Grapheme boundaries ---

// nextGraphemeBoundary returns the byte offset just past the grapheme
// cluster starting at i.
func nextGraphemeBoundary(s string, i int) int {
	if i >= len(s) {
		return len(s)
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
	return i + len(cluster)
}

// prevGraphemeBoundary returns the byte offset of the grapheme cluster
// ending at i.
func prevGraphemeBoundary(s string, i int) int {
	prev, at := 0, 0
	for at < i && at < len(s) {
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[at:], -1)
		prev = at
		at += len(cluster)
	}
	return prev
}
