package sapling

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonBack
	MouseButtonForward
)

// Cursor is the pointer position offered to a widget during dispatch. It is
// either available at a point, or unavailable: obscured by floating content
// or outside the window.
type Cursor struct {
	position  Point
	available bool
}

// AvailableCursor returns a cursor at the given position.
func AvailableCursor(p Point) Cursor {
	return Cursor{position: p, available: true}
}

// UnavailableCursor returns a cursor with no usable position.
func UnavailableCursor() Cursor {
	return Cursor{}
}

// Position returns the cursor position and whether it is available.
func (c Cursor) Position() (Point, bool) {
	return c.position, c.available
}

// IsOver reports whether the cursor is available and inside the rectangle.
func (c Cursor) IsOver(r Rect) bool {
	return c.available && r.Contains(c.position)
}

// Interaction is the suggested platform cursor icon for the pointer's
// current position. When composited layers overlap, the topmost layer's
// interaction wins.
type Interaction uint8

const (
	InteractionNone Interaction = iota
	InteractionPointer
	InteractionText
	InteractionCrosshair
	InteractionGrab
	InteractionGrabbing
	InteractionResizeHorizontal
	InteractionResizeVertical
	InteractionNotAllowed
)
