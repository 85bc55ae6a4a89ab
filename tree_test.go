package sapling

import "testing"

// fakeWidget is a minimal stateful widget for tree tests.
type fakeWidget struct {
	BaseWidget
	children []Widget
}

type fakeState struct{ n int }

func (w *fakeWidget) Tag() Tag           { return TagOf[fakeState]() }
func (w *fakeWidget) State() any         { return &fakeState{} }
func (w *fakeWidget) Children() []Widget { return w.children }
func (w *fakeWidget) Diff(tree *Tree)    { tree.DiffChildren(w.children) }
func (w *fakeWidget) SizeHint() SizeHint { return SizeHint{} }
func (w *fakeWidget) Layout(tree *Tree, renderer Renderer, limits Limits) Node {
	return NewNode(Size{})
}
func (w *fakeWidget) Draw(tree *Tree, renderer Renderer, theme *Theme, style Style,
	layout Layout, cursor Cursor, viewport Rect) {
}

// otherWidget has a different state type, so diffing against it resets.
type otherWidget struct {
	fakeWidget
}

type otherState struct{}

func (w *otherWidget) Tag() Tag   { return TagOf[otherState]() }
func (w *otherWidget) State() any { return &otherState{} }

func TestNewTreeBuildsChildren(t *testing.T) {
	w := &fakeWidget{children: []Widget{&fakeWidget{}, &fakeWidget{}}}
	tree := NewTree(w)
	if len(tree.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(tree.Children))
	}
	if tree.Tag != TagOf[fakeState]() {
		t.Error("Tag mismatch")
	}
}

func TestDiffPreservesStateOnSameTag(t *testing.T) {
	tree := NewTree(&fakeWidget{})
	state := StateOf[fakeState](tree)
	state.n = 42

	tree.Diff(&fakeWidget{})
	if got := StateOf[fakeState](tree); got.n != 42 {
		t.Errorf("state.n = %d, want 42 (state should survive)", got.n)
	}
	if got := StateOf[fakeState](tree); got != state {
		t.Error("state pointer changed across diff")
	}
}

func TestDiffResetsStateOnTagChange(t *testing.T) {
	tree := NewTree(&fakeWidget{})
	StateOf[fakeState](tree).n = 42

	tree.Diff(&otherWidget{})
	if tree.Tag != TagOf[otherState]() {
		t.Error("Tag should be the new widget's")
	}
	if _, ok := tree.State.(*otherState); !ok {
		t.Errorf("State = %T, want *otherState", tree.State)
	}
}

func TestDiffChildrenTruncates(t *testing.T) {
	tree := NewTree(&fakeWidget{children: []Widget{&fakeWidget{}, &fakeWidget{}, &fakeWidget{}}})
	tree.Diff(&fakeWidget{children: []Widget{&fakeWidget{}}})
	if len(tree.Children) != 1 {
		t.Errorf("len(Children) = %d, want 1", len(tree.Children))
	}
}

func TestDiffChildrenAppends(t *testing.T) {
	tree := NewTree(&fakeWidget{children: []Widget{&fakeWidget{}}})
	keep := tree.Children[0]
	StateOf[fakeState](keep).n = 7

	tree.Diff(&fakeWidget{children: []Widget{&fakeWidget{}, &fakeWidget{}}})
	if len(tree.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(tree.Children))
	}
	if StateOf[fakeState](tree.Children[0]).n != 7 {
		t.Error("existing child state should survive an append")
	}
}

// Positional diffing: removing the first child shifts state to the new
// occupant of the slot.
func TestDiffChildrenIsPositional(t *testing.T) {
	tree := NewTree(&fakeWidget{children: []Widget{&fakeWidget{}, &fakeWidget{}}})
	StateOf[fakeState](tree.Children[1]).n = 99

	tree.Diff(&fakeWidget{children: []Widget{&fakeWidget{}}})
	if StateOf[fakeState](tree.Children[0]).n != 0 {
		t.Error("position 0 should keep position 0's state, not position 1's")
	}
}

func TestStateOfPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	tree := NewTree(&fakeWidget{})
	StateOf[otherState](tree)
}
