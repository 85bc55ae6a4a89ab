package sapling

// Nested flattens a chain of overlays (an overlay that produces its own
// overlay, recursively) behind the single-overlay interface the runtime
// works with. Deeper overlays are painted later and get first chance at
// events; IsOver is the union of every depth.
//
// The layout node produced by Nested wraps each level: child 0 is the
// level's own node, child 1 (when present) is the next depth's wrapper.
type Nested struct {
	overlay Overlay
}

// NewNested wraps an overlay chain.
func NewNested(overlay Overlay) *Nested {
	return &Nested{overlay: overlay}
}

// Layout computes the layout of the whole chain.
func (n *Nested) Layout(renderer Renderer, bounds Size) Node {
	var recurse func(o Overlay, bounds Size) Node
	recurse = func(o Overlay, bounds Size) Node {
		node := o.Layout(renderer, bounds)
		children := []Node{node}
		if next := o.Overlay(NewLayout(&children[0]), renderer); next != nil {
			children = append(children, recurse(next, bounds))
		}
		return NewNodeWithChildren(bounds, children)
	}
	return recurse(n.overlay, bounds)
}

// ownAndNext splits a wrapper layout into the level's own layout and the
// next depth's wrapper layout, if present.
func ownAndNext(layout Layout) (Layout, Layout, bool) {
	own := layout.ChildAt(0)
	if layout.ChildCount() > 1 {
		return own, layout.ChildAt(1), true
	}
	return own, Layout{}, false
}

// IsOver reports whether the point lies on any depth of the chain.
func (n *Nested) IsOver(layout Layout, renderer Renderer, position Point) bool {
	var recurse func(o Overlay, layout Layout) bool
	recurse = func(o Overlay, layout Layout) bool {
		own, nextLayout, ok := ownAndNext(layout)
		if o.IsOver(own, renderer, position) {
			return true
		}
		if next := o.Overlay(own, renderer); next != nil && ok {
			return recurse(next, nextLayout)
		}
		return false
	}
	return recurse(n.overlay, layout)
}

// OnEvent offers the event to the deepest overlay first, falling back
// outward while nothing captures. An outer level sees the cursor as
// unavailable when it hovers a deeper level.
func (n *Nested) OnEvent(event Event, layout Layout, cursor Cursor,
	renderer Renderer, clipboard Clipboard, shell *Shell) Status {
	var recurse func(o Overlay, layout Layout, cursor Cursor) Status
	recurse = func(o Overlay, layout Layout, cursor Cursor) Status {
		own, nextLayout, ok := ownAndNext(layout)
		if next := o.Overlay(own, renderer); next != nil && ok {
			if recurse(next, nextLayout, cursor) == StatusCaptured {
				return StatusCaptured
			}
			if pos, available := cursor.Position(); available {
				if deepIsOver(next, nextLayout, renderer, pos) {
					cursor = UnavailableCursor()
				}
			}
		}
		return o.OnEvent(event, own, cursor, renderer, clipboard, shell)
	}
	return recurse(n.overlay, layout, cursor)
}

func deepIsOver(o Overlay, layout Layout, renderer Renderer, position Point) bool {
	own, nextLayout, ok := ownAndNext(layout)
	if o.IsOver(own, renderer, position) {
		return true
	}
	if next := o.Overlay(own, renderer); next != nil && ok {
		return deepIsOver(next, nextLayout, renderer, position)
	}
	return false
}

// Draw paints the chain outside-in, so the deepest overlay ends up on top.
func (n *Nested) Draw(renderer Renderer, theme *Theme, style Style, layout Layout, cursor Cursor) {
	var recurse func(o Overlay, layout Layout, cursor Cursor)
	recurse = func(o Overlay, layout Layout, cursor Cursor) {
		own, nextLayout, ok := ownAndNext(layout)
		next := o.Overlay(own, renderer)

		ownCursor := cursor
		if next != nil && ok {
			if pos, available := cursor.Position(); available && deepIsOver(next, nextLayout, renderer, pos) {
				ownCursor = UnavailableCursor()
			}
		}
		o.Draw(renderer, theme, style, own, ownCursor)
		if next != nil && ok {
			recurse(next, nextLayout, cursor)
		}
	}
	recurse(n.overlay, layout, cursor)
}

// MouseInteraction returns the interaction of the deepest overlay under the
// cursor; the topmost hit wins.
func (n *Nested) MouseInteraction(layout Layout, cursor Cursor,
	viewport Rect, renderer Renderer) Interaction {
	var recurse func(o Overlay, layout Layout) Interaction
	recurse = func(o Overlay, layout Layout) Interaction {
		own, nextLayout, ok := ownAndNext(layout)
		if next := o.Overlay(own, renderer); next != nil && ok {
			if pos, available := cursor.Position(); available && deepIsOver(next, nextLayout, renderer, pos) {
				return recurse(next, nextLayout)
			}
		}
		return o.MouseInteraction(own, cursor, viewport, renderer)
	}
	return recurse(n.overlay, layout)
}

// Operate applies the visitor outside-in.
func (n *Nested) Operate(layout Layout, renderer Renderer, op Operation) {
	var recurse func(o Overlay, layout Layout)
	recurse = func(o Overlay, layout Layout) {
		own, nextLayout, ok := ownAndNext(layout)
		o.Operate(own, renderer, op)
		if next := o.Overlay(own, renderer); next != nil && ok {
			recurse(next, nextLayout)
		}
	}
	recurse(n.overlay, layout)
}
