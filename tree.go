package sapling

import "reflect"

// Tag identifies the concrete type of a widget's state for structural
// identity checks during diffing. Stateless widgets share the zero Tag.
type Tag struct {
	t reflect.Type
}

// TagOf returns the Tag for a state type T.
func TagOf[T any]() Tag {
	return Tag{t: reflect.TypeOf((*T)(nil)).Elem()}
}

// TagNone is the Tag shared by stateless widgets.
var TagNone = Tag{}

// Tree holds the mutable per-widget state parallel to an immutable widget
// tree: a type tag, a type-erased state blob private to one widget instance,
// and children in widget order.
//
// A Tree survives across widget tree rebuilds only by being diffed forward.
// If the widget type at a position changes between rebuilds, the old state
// is discarded and fresh default state is created; that is the only
// state-destruction trigger.
type Tree struct {
	Tag      Tag
	State    any
	Children []*Tree
}

// NewTree creates the state tree for a widget, including children.
func NewTree(w Widget) *Tree {
	t := &Tree{Tag: w.Tag(), State: w.State()}
	w.Diff(t)
	return t
}

// Diff reconciles this tree against a new widget description. If the tags
// match, the widget's own Diff merges children in place and existing state
// is preserved; otherwise the node is rebuilt from scratch with the widget's
// default state.
func (t *Tree) Diff(w Widget) {
	if t.Tag == w.Tag() {
		w.Diff(t)
	} else {
		*t = *NewTree(w)
	}
}

// DiffChildren reconciles child trees against child widgets by positional
// index. Extra trees are dropped, missing ones are created fresh.
//
// There is no keyed matching: a container that reorders, inserts, or removes
// children is responsible for moving its own state, or accepting the reset.
func (t *Tree) DiffChildren(children []Widget) {
	if len(t.Children) > len(children) {
		for i := len(children); i < len(t.Children); i++ {
			t.Children[i] = nil
		}
		t.Children = t.Children[:len(children)]
	}
	for i, child := range children {
		if i < len(t.Children) {
			t.Children[i].Diff(child)
		} else {
			t.Children = append(t.Children, NewTree(child))
		}
	}
}

// StateOf returns the tree's state as *T.
// Panics if the state is not of type *T; a widget only ever sees a Tree it
// has diffed into, so a mismatch is a programming error.
func StateOf[T any](t *Tree) *T {
	s, ok := t.State.(*T)
	if !ok {
		panic("sapling: widget state type mismatch")
	}
	return s
}
