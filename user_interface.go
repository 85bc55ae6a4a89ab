package sapling

import "time"

// UserInterface ties one widget tree to its state tree and computed layout,
// and runs the update/draw cycle over them. It is a single-generation
// object: built from a Cache, used for any number of updates and draws, and
// turned back into a Cache when the widget tree or viewport changes.
//
// A UserInterface is strictly single-threaded: Build, Update, Draw, and
// Operate run to completion on the calling thread and must never be
// invoked reentrantly.
type UserInterface struct {
	root    Widget
	tree    *Tree
	base    Node
	overlay *Node // cached overlay layout; nil when stale or absent
	bounds  Size
}

// Cache carries a state tree between UserInterface generations. Extract it
// from a finished interface with IntoCache and feed it to the next Build so
// interactive state survives the rebuild.
type Cache struct {
	tree *Tree
}

// NewCache creates an empty cache for a first Build.
func NewCache() Cache {
	return Cache{}
}

// Build diffs the cached state tree against a new root widget, computes the
// root layout for the given bounds, and returns a fresh UserInterface.
func Build(root Widget, bounds Size, cache Cache, renderer Renderer) *UserInterface {
	tree := cache.tree
	if tree == nil {
		tree = NewTree(root)
	} else {
		tree.Diff(root)
	}

	base := root.Layout(tree, renderer, NewLimits(Size{}, bounds))
	if debugEnabled {
		debugCheckContainment(&base, "root")
	}

	return &UserInterface{
		root:   root,
		tree:   tree,
		base:   base,
		bounds: bounds,
	}
}

// State is the outcome of an Update call: whether the interface is still
// valid and the earliest redraw any widget asked for.
type State struct {
	outdated bool
	redrawAt *time.Time
}

// IsOutdated reports whether the interface must be discarded and rebuilt
// from fresh application state before further use.
func (s State) IsOutdated() bool {
	return s.outdated
}

// RedrawRequest returns the earliest requested redraw time across the whole
// batch. A zero time means "next frame".
func (s State) RedrawRequest() (time.Time, bool) {
	if s.redrawAt == nil {
		return time.Time{}, false
	}
	return *s.redrawAt, true
}

// Update dispatches a batch of events through the interface, in order, and
// appends any published messages to messages.
//
// Each event is offered to the live overlay first; only events the overlay
// does not capture reach the base tree, and while the raw cursor is over the
// overlay the base tree sees it as unavailable. An event captured by the
// base tree dismisses the overlay. Layout invalidations are honored
// mid-batch, so later events always hit fresh geometry.
func (ui *UserInterface) Update(events []Event, cursor Cursor, renderer Renderer,
	clipboard Clipboard, messages *[]any) (State, []Status) {
	statuses := make([]Status, 0, len(events))
	state := State{}
	viewport := Rect{Width: ui.bounds.Width, Height: ui.bounds.Height}

	overlay := ui.acquireOverlay(renderer)
	if overlay == nil {
		ui.overlay = nil
	}

	for _, event := range events {
		baseCursor := cursor

		if overlay != nil {
			if ui.overlay == nil {
				node := overlay.Layout(renderer, ui.bounds)
				ui.overlay = &node
			}

			shell := NewShell()
			status := overlay.OnEvent(event, NewLayout(ui.overlay), cursor, renderer, clipboard, shell)
			status = status.Merge(shellStatus(shell))
			ui.absorb(shell, messages, &state)

			if shell.IsLayoutInvalid() {
				// The overlay resized something underneath itself: recompute
				// the base layout and re-acquire the overlay against it. The
				// cached overlay layout is stale either way; an overlay opened
				// later in the batch must not inherit it.
				ui.relayoutBase(renderer)
				ui.overlay = nil
				overlay = ui.acquireOverlay(renderer)
				if overlay != nil {
					node := overlay.Layout(renderer, ui.bounds)
					ui.overlay = &node
				}
			}

			if overlay != nil {
				if pos, available := cursor.Position(); available &&
					overlay.IsOver(NewLayout(ui.overlay), renderer, pos) {
					baseCursor = UnavailableCursor()
				}
			}

			if status == StatusCaptured {
				statuses = append(statuses, StatusCaptured)
				continue
			}
		}

		shell := NewShell()
		status := ui.root.OnEvent(ui.tree, event, NewLayout(&ui.base), baseCursor,
			renderer, clipboard, shell, viewport)
		status = status.Merge(shellStatus(shell))
		ui.absorb(shell, messages, &state)

		if status == StatusCaptured && overlay != nil {
			// A captured interaction with the base content dismisses
			// floating content (clicking the page closes a menu).
			overlay = nil
			ui.overlay = nil
		}

		if shell.IsLayoutInvalid() {
			ui.relayoutBase(renderer)
			// The cached overlay layout is stale at the new geometry; it is
			// recomputed lazily on the next dispatch or draw.
			ui.overlay = nil
		}

		statuses = append(statuses, status)
	}

	return state, statuses
}

// absorb merges one drained shell into the update's aggregate bookkeeping.
func (ui *UserInterface) absorb(shell *Shell, messages *[]any, state *State) {
	*messages = append(*messages, shell.Messages()...)
	if at, ok := shell.RedrawRequest(); ok {
		if state.redrawAt == nil || at.Before(*state.redrawAt) {
			t := at
			state.redrawAt = &t
		}
	}
	state.outdated = state.outdated || shell.AreWidgetsInvalid()
}

func shellStatus(shell *Shell) Status {
	if shell.IsEventCaptured() {
		return StatusCaptured
	}
	return StatusIgnored
}

// acquireOverlay asks the root for its current overlay, flattened.
func (ui *UserInterface) acquireOverlay(renderer Renderer) *Nested {
	if o := ui.root.Overlay(ui.tree, NewLayout(&ui.base), renderer, Vec2{}); o != nil {
		return NewNested(o)
	}
	return nil
}

func (ui *UserInterface) relayoutBase(renderer Renderer) {
	ui.base = ui.root.Layout(ui.tree, renderer, NewLimits(Size{}, ui.bounds))
	if debugEnabled {
		debugCheckContainment(&ui.base, "root")
	}
}

// Draw clears the target, paints the base tree and then the overlay on top,
// and returns the cursor interaction of the topmost layer under the pointer.
// While the cursor is over the overlay, the base tree draws as if the
// cursor were unavailable.
func (ui *UserInterface) Draw(renderer Renderer, theme *Theme, style Style, cursor Cursor) Interaction {
	renderer.Clear(theme.Palette.Background)
	viewport := Rect{Width: ui.bounds.Width, Height: ui.bounds.Height}

	baseCursor := cursor
	overlay := ui.acquireOverlay(renderer)
	if overlay != nil {
		if ui.overlay == nil {
			node := overlay.Layout(renderer, ui.bounds)
			ui.overlay = &node
		}
		if pos, available := cursor.Position(); available &&
			overlay.IsOver(NewLayout(ui.overlay), renderer, pos) {
			baseCursor = UnavailableCursor()
		}
	} else {
		ui.overlay = nil
	}

	ui.root.Draw(ui.tree, renderer, theme, style, NewLayout(&ui.base), baseCursor, viewport)
	interaction := ui.root.MouseInteraction(ui.tree, NewLayout(&ui.base), baseCursor, viewport, renderer)

	if overlay != nil {
		renderer.StartLayer(viewport)
		overlay.Draw(renderer, theme, style, NewLayout(ui.overlay), cursor)
		renderer.EndLayer()

		if pos, available := cursor.Position(); available &&
			overlay.IsOver(NewLayout(ui.overlay), renderer, pos) {
			interaction = overlay.MouseInteraction(NewLayout(ui.overlay), cursor, viewport, renderer)
		}
	}
	return interaction
}

// Operate applies a visitor to the base tree and then to the overlay, and
// finishes it. Unlike event dispatch, the base tree comes first: operations
// are traversals whose order defines priority, not input to intercept.
func (ui *UserInterface) Operate(renderer Renderer, op Operation) {
	ui.root.Operate(ui.tree, NewLayout(&ui.base), renderer, op)

	if overlay := ui.acquireOverlay(renderer); overlay != nil {
		if ui.overlay == nil {
			node := overlay.Layout(renderer, ui.bounds)
			ui.overlay = &node
		}
		overlay.Operate(NewLayout(ui.overlay), renderer, op)
	}

	op.Finish()
}

// Relayout recomputes the root layout for new bounds and clears the cached
// overlay layout. Call it when the viewport resizes.
func (ui *UserInterface) Relayout(bounds Size, renderer Renderer) {
	ui.bounds = bounds
	ui.overlay = nil
	ui.relayoutBase(renderer)
}

// Bounds returns the viewport size the interface was laid out for.
func (ui *UserInterface) Bounds() Size {
	return ui.bounds
}

// BaseLayout returns a view of the computed base layout.
func (ui *UserInterface) BaseLayout() Layout {
	return NewLayout(&ui.base)
}

// IntoCache terminates this generation and hands its state tree to the
// next Build. The UserInterface must not be used afterwards.
func (ui *UserInterface) IntoCache() Cache {
	return Cache{tree: ui.tree}
}
