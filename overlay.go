package sapling

// Overlay is floating content produced on demand by a widget: menus,
// tooltips, dropdowns. Overlays are composited after and on top of the base
// tree, receive events before it, and may recursively produce overlays of
// their own.
//
// An Overlay is an ephemeral view over the producing widget's live state:
// it is valid only for the runtime call that acquired it. Acquiring an
// overlay twice without mutation in between must yield equivalent content.
type Overlay interface {
	// Layout computes the overlay's node in absolute coordinates within
	// the viewport bounds. Overlays position themselves: the runtime does
	// not translate the result.
	Layout(renderer Renderer, bounds Size) Node

	// OnEvent offers one event to the overlay, before the base tree
	// sees it.
	OnEvent(event Event, layout Layout, cursor Cursor,
		renderer Renderer, clipboard Clipboard, shell *Shell) Status

	// Draw paints the overlay above the base tree.
	Draw(renderer Renderer, theme *Theme, style Style, layout Layout, cursor Cursor)

	// MouseInteraction reports the cursor icon for the pointer position.
	MouseInteraction(layout Layout, cursor Cursor, viewport Rect, renderer Renderer) Interaction

	// IsOver reports whether the point lies on the overlay. While true for
	// the raw cursor, the base tree sees the cursor as unavailable.
	IsOver(layout Layout, renderer Renderer, position Point) bool

	// Operate applies a visitor to the overlay's content.
	Operate(layout Layout, renderer Renderer, op Operation)

	// Overlay returns this overlay's own nested overlay, or nil.
	Overlay(layout Layout, renderer Renderer) Overlay
}
