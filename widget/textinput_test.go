package widget

import (
	"testing"

	"github.com/phanxgames/sapling"
	"github.com/phanxgames/sapling/software"
)

// --- Grapheme boundaries ---

func TestGraphemeBoundariesASCII(t *testing.T) {
	s := "abc"
	if got := nextGraphemeBoundary(s, 0); got != 1 {
		t.Errorf("next(0) = %d, want 1", got)
	}
	if got := prevGraphemeBoundary(s, 3); got != 2 {
		t.Errorf("prev(3) = %d, want 2", got)
	}
	if got := prevGraphemeBoundary(s, 0); got != 0 {
		t.Errorf("prev(0) = %d, want 0", got)
	}
	if got := nextGraphemeBoundary(s, 3); got != 3 {
		t.Errorf("next(3) = %d, want 3", got)
	}
}

func TestGraphemeBoundariesCombining(t *testing.T) {
	// "e" + combining acute is one grapheme cluster of three bytes.
	s := "éx"
	if got := nextGraphemeBoundary(s, 0); got != 3 {
		t.Errorf("next(0) = %d, want 3 (whole cluster)", got)
	}
	if got := prevGraphemeBoundary(s, len(s)); got != 3 {
		t.Errorf("prev(end) = %d, want 3", got)
	}
	if got := prevGraphemeBoundary(s, 3); got != 0 {
		t.Errorf("prev(3) = %d, want 0 (whole cluster)", got)
	}
}

func TestGraphemeBoundariesEmoji(t *testing.T) {
	s := "a\U0001F44D" // thumbs up is 4 bytes
	if got := nextGraphemeBoundary(s, 1); got != len(s) {
		t.Errorf("next(1) = %d, want %d", got, len(s))
	}
}

func TestMoveCursorToSnapsToGraphemeBoundary(t *testing.T) {
	// "a" + (e + combining acute) + "b": boundaries at 0, 1, 4, 5.
	state := &textInputState{text: "ae\u0301b"}

	cases := []struct {
		position int
		want     int
	}{
		{-1, 0},
		{0, 0},
		{1, 1},
		{2, 1}, // inside the cluster, nearer its start
		{3, 4}, // inside the cluster, nearer its end
		{4, 4},
		{99, 5},
	}
	for _, c := range cases {
		state.MoveCursorTo(c.position)
		if state.cursor != c.want {
			t.Errorf("MoveCursorTo(%d) put cursor at %d, want %d",
				c.position, state.cursor, c.want)
		}
	}
}

// --- Editing ---

type inputFixture struct {
	input  *TextInput
	tree   *sapling.Tree
	layout sapling.Layout
	r      *software.Renderer
}

func newInputFixture(t *testing.T, value string) *inputFixture {
	t.Helper()
	input := NewTextInput("type here", value, func(s string) any { return s }).
		Width(sapling.Fixed(200))
	tree := sapling.NewTree(input)
	r := software.New(400, 400)
	node := input.Layout(tree, r, sapling.NewLimits(sapling.Size{}, sapling.Size{Width: 400, Height: 400}))
	return &inputFixture{input: input, tree: tree, layout: sapling.NewLayout(&node), r: r}
}

func (f *inputFixture) send(event sapling.Event, cursor sapling.Cursor) (*sapling.Shell, sapling.Status) {
	shell := sapling.NewShell()
	status := f.input.OnEvent(f.tree, event, f.layout, cursor, f.r,
		sapling.NullClipboard{}, shell, sapling.Rect{Width: 400, Height: 400})
	return shell, status
}

func (f *inputFixture) focus(t *testing.T) {
	t.Helper()
	_, status := f.send(sapling.ButtonPressed{Button: sapling.MouseButtonLeft},
		sapling.AvailableCursor(f.layout.Bounds().Center()))
	if status != sapling.StatusCaptured {
		t.Fatal("click inside should focus and capture")
	}
}

func (f *inputFixture) state() *textInputState {
	return sapling.StateOf[textInputState](f.tree)
}

func TestTextInputTypingPublishes(t *testing.T) {
	f := newInputFixture(t, "")
	f.focus(t)

	shell, status := f.send(sapling.TextEntered{Text: "hi"}, sapling.UnavailableCursor())
	if status != sapling.StatusCaptured {
		t.Fatal("typing while focused should capture")
	}
	messages := shell.Messages()
	if len(messages) != 1 || messages[0] != "hi" {
		t.Errorf("messages = %v, want [hi]", messages)
	}
	if f.state().cursor != 2 {
		t.Errorf("cursor = %d, want 2", f.state().cursor)
	}
}

func TestTextInputIgnoresTypingWhenBlurred(t *testing.T) {
	f := newInputFixture(t, "")
	_, status := f.send(sapling.TextEntered{Text: "hi"}, sapling.UnavailableCursor())
	if status != sapling.StatusIgnored {
		t.Error("typing while blurred should be ignored")
	}
}

func TestTextInputBackspaceRemovesCluster(t *testing.T) {
	f := newInputFixture(t, "aé") // "a" + accented "e"
	f.focus(t)
	f.state().MoveCursorToEnd()

	shell, _ := f.send(sapling.KeyPressed{Key: sapling.KeyBackspace}, sapling.UnavailableCursor())
	messages := shell.Messages()
	if len(messages) != 1 || messages[0] != "a" {
		t.Errorf("messages = %v, want [a] (whole cluster deleted)", messages)
	}
	if f.state().cursor != 1 {
		t.Errorf("cursor = %d, want 1", f.state().cursor)
	}
}

func TestTextInputArrowsMoveByCluster(t *testing.T) {
	f := newInputFixture(t, "éx")
	f.focus(t)
	f.state().MoveCursorTo(0)

	f.send(sapling.KeyPressed{Key: sapling.KeyRight}, sapling.UnavailableCursor())
	if f.state().cursor != 3 {
		t.Errorf("cursor after right = %d, want 3", f.state().cursor)
	}
	f.send(sapling.KeyPressed{Key: sapling.KeyLeft}, sapling.UnavailableCursor())
	if f.state().cursor != 0 {
		t.Errorf("cursor after left = %d, want 0", f.state().cursor)
	}
}

func TestTextInputBlurOnOutsidePressIsIgnored(t *testing.T) {
	f := newInputFixture(t, "")
	f.focus(t)

	_, status := f.send(sapling.ButtonPressed{Button: sapling.MouseButtonLeft},
		sapling.AvailableCursor(sapling.Point{X: 399, Y: 399}))
	if status != sapling.StatusIgnored {
		t.Error("outside press should stay ignored so others can use it")
	}
	if f.state().focused {
		t.Error("outside press should blur")
	}
}

func TestTextInputEscapeBlurs(t *testing.T) {
	f := newInputFixture(t, "")
	f.focus(t)
	_, status := f.send(sapling.KeyPressed{Key: sapling.KeyEscape}, sapling.UnavailableCursor())
	if status != sapling.StatusCaptured {
		t.Error("escape while focused should capture")
	}
	if f.state().focused {
		t.Error("escape should blur")
	}
}

func TestTextInputSubmit(t *testing.T) {
	f := newInputFixture(t, "done")
	f.input.OnSubmit("submit")
	f.focus(t)
	shell, _ := f.send(sapling.KeyPressed{Key: sapling.KeyEnter}, sapling.UnavailableCursor())
	messages := shell.Messages()
	if len(messages) != 1 || messages[0] != "submit" {
		t.Errorf("messages = %v, want [submit]", messages)
	}
}

func TestTextInputDiffSyncsControlledValue(t *testing.T) {
	f := newInputFixture(t, "old value")
	f.state().MoveCursorToEnd()

	next := NewTextInput("type here", "new", func(s string) any { return s })
	f.tree.Diff(next)
	if f.state().text != "new" {
		t.Errorf("state.text = %q, want %q", f.state().text, "new")
	}
	if f.state().cursor > len("new") {
		t.Errorf("cursor = %d, should be clamped to the new value", f.state().cursor)
	}
}

// --- Clipboard ---

type fakeClipboard struct {
	content string
	has     bool
}

func (c *fakeClipboard) Read() (string, bool) { return c.content, c.has }
func (c *fakeClipboard) Write(text string)    { c.content, c.has = text, true }

func TestTextInputPaste(t *testing.T) {
	f := newInputFixture(t, "ab")
	f.focus(t)
	f.state().MoveCursorTo(1)

	clip := &fakeClipboard{content: "XY", has: true}
	shell := sapling.NewShell()
	status := f.input.OnEvent(f.tree,
		sapling.KeyPressed{Key: sapling.KeyV, Modifiers: sapling.ModCtrl},
		f.layout, sapling.UnavailableCursor(), f.r, clip, shell,
		sapling.Rect{Width: 400, Height: 400})
	if status != sapling.StatusCaptured {
		t.Fatal("paste should capture")
	}
	messages := shell.Messages()
	if len(messages) != 1 || messages[0] != "aXYb" {
		t.Errorf("messages = %v, want [aXYb]", messages)
	}
}

func TestTextInputCopy(t *testing.T) {
	f := newInputFixture(t, "secret")
	f.focus(t)

	clip := &fakeClipboard{}
	shell := sapling.NewShell()
	f.input.OnEvent(f.tree,
		sapling.KeyPressed{Key: sapling.KeyC, Modifiers: sapling.ModCtrl},
		f.layout, sapling.UnavailableCursor(), f.r, clip, shell,
		sapling.Rect{Width: 400, Height: 400})
	if clip.content != "secret" {
		t.Errorf("clipboard = %q, want %q", clip.content, "secret")
	}
}
