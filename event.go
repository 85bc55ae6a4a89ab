package sapling

import "time"

// Event is an immutable description of one input occurrence. Events are
// plain values; the embedding application translates platform input into
// them and passes an ordered batch to UserInterface.Update.
type Event interface {
	isEvent()
}

// PointerMoved reports the pointer at a new absolute position.
type PointerMoved struct {
	Position Point
}

// PointerEntered reports the pointer entering the window.
type PointerEntered struct{}

// PointerLeft reports the pointer leaving the window.
type PointerLeft struct{}

// ButtonPressed reports a mouse button going down.
type ButtonPressed struct {
	Button MouseButton
}

// ButtonReleased reports a mouse button going up.
type ButtonReleased struct {
	Button MouseButton
}

// WheelScrolled reports scroll wheel movement in logical pixels.
type WheelScrolled struct {
	Delta Vec2
}

// KeyPressed reports a keyboard key going down.
type KeyPressed struct {
	Key       Key
	Modifiers Modifiers
}

// KeyReleased reports a keyboard key going up.
type KeyReleased struct {
	Key       Key
	Modifiers Modifiers
}

// ModifiersChanged reports a change in the held modifier keys.
type ModifiersChanged struct {
	Modifiers Modifiers
}

// TextEntered reports text produced by the keyboard, after any platform
// composition. Control characters are never delivered here.
type TextEntered struct {
	Text string
}

// Resized reports a new viewport size.
type Resized struct {
	Size Size
}

// RedrawRequested is the redraw tick: it fires when a frame is about to be
// drawn, carrying the frame's timestamp. Widgets advance animations on it.
type RedrawRequested struct {
	At time.Time
}

// FocusGained reports the window gaining input focus.
type FocusGained struct{}

// FocusLost reports the window losing input focus.
type FocusLost struct{}

func (PointerMoved) isEvent()     {}
func (PointerEntered) isEvent()   {}
func (PointerLeft) isEvent()      {}
func (ButtonPressed) isEvent()    {}
func (ButtonReleased) isEvent()   {}
func (WheelScrolled) isEvent()    {}
func (KeyPressed) isEvent()       {}
func (KeyReleased) isEvent()      {}
func (ModifiersChanged) isEvent() {}
func (TextEntered) isEvent()      {}
func (Resized) isEvent()          {}
func (RedrawRequested) isEvent()  {}
func (FocusGained) isEvent()      {}
func (FocusLost) isEvent()        {}

// Status is the outcome of offering an event to a widget.
type Status uint8

const (
	// StatusIgnored means the event was not handled and should keep
	// propagating.
	StatusIgnored Status = iota
	// StatusCaptured means the event was handled; siblings must not
	// receive it.
	StatusCaptured
)

// Merge combines two statuses: captured wins.
func (s Status) Merge(other Status) Status {
	if s == StatusCaptured || other == StatusCaptured {
		return StatusCaptured
	}
	return StatusIgnored
}
