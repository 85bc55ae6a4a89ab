package sapling

import "time"

// Shell is the per-event output channel handed to widgets during dispatch:
// published messages, a capture flag, the earliest requested redraw time,
// and two invalidation flags. A Shell is created fresh for each event and
// fully drained by the runtime before the next event in the batch.
type Shell struct {
	messages       []any
	captured       bool
	redrawAt       *time.Time
	layoutInvalid  bool
	widgetsInvalid bool
}

// NewShell creates an empty shell for one event dispatch.
func NewShell() *Shell {
	return &Shell{}
}

// Publish appends an application message to be delivered to the caller
// after the update. Messages are opaque to the runtime.
func (s *Shell) Publish(message any) {
	s.messages = append(s.messages, message)
}

// Messages returns the messages published so far.
func (s *Shell) Messages() []any {
	return s.messages
}

// Capture marks the event as captured, in addition to the Status returned
// by the widget. Either signal stops propagation.
func (s *Shell) Capture() {
	s.captured = true
}

// IsEventCaptured reports whether Capture was called during this dispatch.
func (s *Shell) IsEventCaptured() bool {
	return s.captured
}

// RequestRedraw asks for a redraw as soon as possible.
func (s *Shell) RequestRedraw() {
	s.RequestRedrawAt(time.Time{})
}

// RequestRedrawAt asks for a redraw at the given time. Multiple requests
// aggregate to the earliest.
func (s *Shell) RequestRedrawAt(at time.Time) {
	if s.redrawAt == nil || at.Before(*s.redrawAt) {
		t := at
		s.redrawAt = &t
	}
}

// RedrawRequest returns the earliest requested redraw time, if any.
// A zero time means "next frame".
func (s *Shell) RedrawRequest() (time.Time, bool) {
	if s.redrawAt == nil {
		return time.Time{}, false
	}
	return *s.redrawAt, true
}

// InvalidateLayout marks the current layout as stale: some widget's size may
// have changed and the layout must be recomputed before the next draw or
// hit test.
func (s *Shell) InvalidateLayout() {
	s.layoutInvalid = true
}

// IsLayoutInvalid reports whether a layout recomputation was requested.
func (s *Shell) IsLayoutInvalid() bool {
	return s.layoutInvalid
}

// RevalidateLayout runs f if the layout was invalidated, then clears the
// flag.
func (s *Shell) RevalidateLayout(f func()) {
	if s.layoutInvalid {
		f()
		s.layoutInvalid = false
	}
}

// InvalidateWidgets signals that the widget tree itself is stale relative to
// the application state and the whole UserInterface must be rebuilt by the
// caller.
func (s *Shell) InvalidateWidgets() {
	s.widgetsInvalid = true
}

// AreWidgetsInvalid reports whether a full rebuild was requested.
func (s *Shell) AreWidgetsInvalid() bool {
	return s.widgetsInvalid
}

// Merge folds another shell's outputs into this one: messages append in
// order, redraw requests aggregate to the earliest, flags accumulate.
func (s *Shell) Merge(other *Shell) {
	s.messages = append(s.messages, other.messages...)
	s.captured = s.captured || other.captured
	if other.redrawAt != nil {
		s.RequestRedrawAt(*other.redrawAt)
	}
	s.layoutInvalid = s.layoutInvalid || other.layoutInvalid
	s.widgetsInvalid = s.widgetsInvalid || other.widgetsInvalid
}
