package sapling

// Widget is the contract every UI element implements: an immutable
// description of one piece of interface plus its behavior hooks. Widget
// descriptions are cheap, rebuilt whenever application state changes, and
// carry no mutable state of their own; interactive state lives in the
// parallel Tree and survives rebuilds through diffing.
//
// None of the methods have a fallible path. A widget that cannot lay out
// within its limits must clamp rather than fail.
type Widget interface {
	// Tag identifies the widget's state type for diffing. Widgets without
	// state return TagNone.
	Tag() Tag

	// State returns fresh default state for a new Tree node, or nil for
	// stateless widgets.
	State() any

	// Children returns the child widget descriptions, in order.
	Children() []Widget

	// Diff reconciles an existing state tree with this description.
	// Containers call tree.DiffChildren(w.Children()); leaves do nothing.
	Diff(tree *Tree)

	// SizeHint reports the widget's sizing policy per axis, used by parent
	// containers to partition available space.
	SizeHint() SizeHint

	// Layout computes the widget's node, with children already positioned,
	// within the given limits. It must be a pure function of the
	// description, the state tree, and the limits.
	Layout(tree *Tree, renderer Renderer, limits Limits) Node

	// OnEvent offers one event to the widget. Containers offer the event to
	// children first; a captured event must not propagate to siblings.
	// State mutation belongs here and nowhere else.
	OnEvent(tree *Tree, event Event, layout Layout, cursor Cursor,
		renderer Renderer, clipboard Clipboard, shell *Shell, viewport Rect) Status

	// Draw emits primitives for the widget. It must not mutate state;
	// animation clocks may be read but not advanced.
	Draw(tree *Tree, renderer Renderer, theme *Theme, style Style,
		layout Layout, cursor Cursor, viewport Rect)

	// MouseInteraction is a pure query for the cursor icon the widget wants
	// at the current pointer position.
	MouseInteraction(tree *Tree, layout Layout, cursor Cursor,
		viewport Rect, renderer Renderer) Interaction

	// Operate applies a generic tree-walking visitor; see Operation.
	Operate(tree *Tree, layout Layout, renderer Renderer, op Operation)

	// Overlay returns floating content anchored at this widget, or nil.
	// The translation is the accumulated offset the overlay must add to
	// position itself in absolute coordinates.
	Overlay(tree *Tree, layout Layout, renderer Renderer, translation Vec2) Overlay
}

// BaseWidget provides default implementations for the optional parts of the
// Widget contract. Embed it and implement SizeHint, Layout, and Draw.
// Stateful widgets override Tag and State; containers override Children,
// Diff, and usually everything else.
type BaseWidget struct{}

// Tag returns TagNone.
func (BaseWidget) Tag() Tag { return TagNone }

// State returns nil.
func (BaseWidget) State() any { return nil }

// Children returns nil.
func (BaseWidget) Children() []Widget { return nil }

// Diff does nothing.
func (BaseWidget) Diff(tree *Tree) {}

// OnEvent ignores the event.
func (BaseWidget) OnEvent(tree *Tree, event Event, layout Layout, cursor Cursor,
	renderer Renderer, clipboard Clipboard, shell *Shell, viewport Rect) Status {
	return StatusIgnored
}

// MouseInteraction reports no interaction.
func (BaseWidget) MouseInteraction(tree *Tree, layout Layout, cursor Cursor,
	viewport Rect, renderer Renderer) Interaction {
	return InteractionNone
}

// Operate does nothing.
func (BaseWidget) Operate(tree *Tree, layout Layout, renderer Renderer, op Operation) {}

// Overlay returns nil.
func (BaseWidget) Overlay(tree *Tree, layout Layout, renderer Renderer, translation Vec2) Overlay {
	return nil
}
