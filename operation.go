package sapling

// ID addresses a specific widget for targeted operations. The empty ID
// means "unaddressed".
type ID string

// Focusable is implemented by widget state that can hold keyboard focus.
type Focusable interface {
	IsFocused() bool
	Focus()
	Unfocus()
}

// Scrollable is implemented by widget state that scrolls its content.
type Scrollable interface {
	Offset() Vec2
	ScrollTo(offset Vec2)
}

// TextEditable is implemented by widget state that edits text.
type TextEditable interface {
	Text() string
	MoveCursorTo(position int)
	MoveCursorToEnd()
}

// Operation is a generic tree-walking visitor. The runtime walks the widget
// tree calling the hook matching each widget's capability; the operation
// accumulates whatever it needs and applies its effect in Finish, which the
// runtime calls exactly once after the full walk (base tree, then overlay).
//
// Operations let external code focus, scroll, or introspect text state
// without the runtime growing a case per capability.
type Operation interface {
	// Container is called for widgets that contain others; the operation
	// recurses by invoking operate.
	Container(id ID, bounds Rect, operate func(Operation))

	// Focusable is called for focusable widget state.
	Focusable(id ID, bounds Rect, state Focusable)

	// Scrollable is called for scrollable widget state.
	Scrollable(id ID, bounds Rect, content Rect, translation Vec2, state Scrollable)

	// TextEditable is called for text-editing widget state.
	TextEditable(id ID, bounds Rect, state TextEditable)

	// Finish applies the operation's effect after the walk completes.
	Finish()
}

// NopOperation implements every Operation hook as a no-op, except Container,
// which it deliberately leaves out: an embedded method cannot see the
// operation embedding it, so a default Container could only ever recurse with
// a bare NopOperation and drop the embedder's overrides. Implement Container
// on the operation itself; recursing is one line:
//
//	func (o *myOp) Container(id ID, bounds Rect, operate func(Operation)) {
//		operate(o)
//	}
//
// Embed it, write Container, and override the other hooks you need.
type NopOperation struct{}

// Focusable does nothing.
func (NopOperation) Focusable(id ID, bounds Rect, state Focusable) {}

// Scrollable does nothing.
func (NopOperation) Scrollable(id ID, bounds Rect, content Rect, translation Vec2, state Scrollable) {
}

// TextEditable does nothing.
func (NopOperation) TextEditable(id ID, bounds Rect, state TextEditable) {}

// Finish does nothing.
func (NopOperation) Finish() {}

// --- Focus operations ---

type focusDirection int8

const (
	focusForward  focusDirection = 1
	focusBackward focusDirection = -1
)

type focusShift struct {
	direction  focusDirection
	focusables []Focusable
	focused    int
}

// FocusNext returns an operation that moves keyboard focus to the focusable
// widget after the currently focused one, in tree order. With no current
// focus, the first focusable widget is focused.
func FocusNext() Operation {
	return &focusShift{direction: focusForward, focused: -1}
}

// FocusPrevious returns an operation that moves keyboard focus to the
// focusable widget before the currently focused one, in tree order. With no
// current focus, the last focusable widget is focused.
func FocusPrevious() Operation {
	return &focusShift{direction: focusBackward, focused: -1}
}

func (f *focusShift) Container(id ID, bounds Rect, operate func(Operation)) {
	operate(f)
}

func (f *focusShift) Focusable(id ID, bounds Rect, state Focusable) {
	if state.IsFocused() {
		f.focused = len(f.focusables)
	}
	f.focusables = append(f.focusables, state)
}

func (f *focusShift) Scrollable(id ID, bounds Rect, content Rect, translation Vec2, state Scrollable) {
}

func (f *focusShift) TextEditable(id ID, bounds Rect, state TextEditable) {}

func (f *focusShift) Finish() {
	n := len(f.focusables)
	if n == 0 {
		return
	}
	target := 0
	if f.direction == focusBackward {
		target = n - 1
	}
	if f.focused >= 0 {
		f.focusables[f.focused].Unfocus()
		target = (f.focused + int(f.direction) + n) % n
	}
	f.focusables[target].Focus()
}

type unfocus struct {
	NopOperation
}

// Unfocus returns an operation that clears keyboard focus everywhere.
func Unfocus() Operation {
	return &unfocus{}
}

func (u *unfocus) Container(id ID, bounds Rect, operate func(Operation)) {
	operate(u)
}

func (u *unfocus) Focusable(id ID, bounds Rect, state Focusable) {
	if state.IsFocused() {
		state.Unfocus()
	}
}

// FindFocused returns an operation that records the ID of the focused
// widget. Query the result after UserInterface.Operate.
func FindFocused() *FocusQuery {
	return &FocusQuery{}
}

// FocusQuery is the FindFocused operation; it records which widget holds
// focus during the walk.
type FocusQuery struct {
	NopOperation
	id    ID
	found bool
}

// Result returns the ID of the focused widget and whether one was found.
func (q *FocusQuery) Result() (ID, bool) {
	return q.id, q.found
}

func (q *FocusQuery) Container(id ID, bounds Rect, operate func(Operation)) {
	operate(q)
}

func (q *FocusQuery) Focusable(id ID, bounds Rect, state Focusable) {
	if state.IsFocused() {
		q.id = id
		q.found = true
	}
}
