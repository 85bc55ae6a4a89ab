package sapling

import "testing"

// nopRenderer satisfies Renderer for tests that never draw meaningfully.
type nopRenderer struct{}

func (nopRenderer) Clear(Color)                       {}
func (nopRenderer) FillQuad(Quad)                     {}
func (nopRenderer) FillText(Text, Point, Color, Rect) {}
func (nopRenderer) DefaultFontSize() float64          { return 13 }
func (nopRenderer) StartLayer(Rect)                   {}
func (nopRenderer) EndLayer()                         {}
func (nopRenderer) StartTranslation(Vec2)             {}
func (nopRenderer) EndTranslation()                   {}

func (nopRenderer) MeasureText(t Text) Size {
	return Size{Width: float64(len(t.Content)) * 7, Height: 13}
}

// stubOverlay is a scriptable overlay for Nested tests.
type stubOverlay struct {
	name    string
	bounds  Rect
	next    *stubOverlay
	capture bool

	log         *[]string
	sawCursor   *[]bool // availability of the cursor at each OnEvent
	interaction Interaction
}

func (o *stubOverlay) Layout(renderer Renderer, bounds Size) Node {
	return NewNode(o.bounds.Size()).Move(o.bounds.Position())
}

func (o *stubOverlay) OnEvent(event Event, layout Layout, cursor Cursor,
	renderer Renderer, clipboard Clipboard, shell *Shell) Status {
	*o.log = append(*o.log, o.name)
	if o.sawCursor != nil {
		_, available := cursor.Position()
		*o.sawCursor = append(*o.sawCursor, available)
	}
	if o.capture {
		return StatusCaptured
	}
	return StatusIgnored
}

func (o *stubOverlay) Draw(renderer Renderer, theme *Theme, style Style, layout Layout, cursor Cursor) {
	*o.log = append(*o.log, o.name)
}

func (o *stubOverlay) MouseInteraction(layout Layout, cursor Cursor,
	viewport Rect, renderer Renderer) Interaction {
	return o.interaction
}

func (o *stubOverlay) IsOver(layout Layout, renderer Renderer, position Point) bool {
	return layout.Bounds().Contains(position)
}

func (o *stubOverlay) Operate(layout Layout, renderer Renderer, op Operation) {
	*o.log = append(*o.log, o.name)
}

func (o *stubOverlay) Overlay(layout Layout, renderer Renderer) Overlay {
	if o.next == nil {
		return nil
	}
	return o.next
}

func chain(log *[]string) (*stubOverlay, *stubOverlay) {
	deep := &stubOverlay{
		name:   "deep",
		bounds: Rect{X: 10, Y: 10, Width: 30, Height: 30},
		log:    log,
	}
	outer := &stubOverlay{
		name:   "outer",
		bounds: Rect{X: 0, Y: 0, Width: 100, Height: 100},
		next:   deep,
		log:    log,
	}
	return outer, deep
}

func TestNestedEventOrderIsDeepestFirst(t *testing.T) {
	var log []string
	outer, _ := chain(&log)
	n := NewNested(outer)
	node := n.Layout(nopRenderer{}, Size{Width: 200, Height: 200})

	n.OnEvent(PointerMoved{}, NewLayout(&node), UnavailableCursor(),
		nopRenderer{}, NullClipboard{}, NewShell())

	if len(log) != 2 || log[0] != "deep" || log[1] != "outer" {
		t.Errorf("event order = %v, want [deep outer]", log)
	}
}

func TestNestedCaptureStopsAtDeepest(t *testing.T) {
	var log []string
	outer, deep := chain(&log)
	deep.capture = true
	n := NewNested(outer)
	node := n.Layout(nopRenderer{}, Size{Width: 200, Height: 200})

	status := n.OnEvent(PointerMoved{}, NewLayout(&node), UnavailableCursor(),
		nopRenderer{}, NullClipboard{}, NewShell())

	if status != StatusCaptured {
		t.Errorf("status = %v, want captured", status)
	}
	if len(log) != 1 || log[0] != "deep" {
		t.Errorf("log = %v, want [deep] only", log)
	}
}

func TestNestedOuterCursorSuppressedOverDeep(t *testing.T) {
	var log []string
	var saw []bool
	outer, deep := chain(&log)
	outer.sawCursor = &saw
	deep.sawCursor = &saw
	n := NewNested(outer)
	node := n.Layout(nopRenderer{}, Size{Width: 200, Height: 200})

	// Inside the deep overlay's bounds.
	cursor := AvailableCursor(Point{X: 20, Y: 20})
	n.OnEvent(PointerMoved{}, NewLayout(&node), cursor,
		nopRenderer{}, NullClipboard{}, NewShell())

	// deep sees the real cursor, outer sees it unavailable.
	if len(saw) != 2 || saw[0] != true || saw[1] != false {
		t.Errorf("cursor availability = %v, want [true false]", saw)
	}
}

func TestNestedIsOverIsUnion(t *testing.T) {
	var log []string
	outer, deep := chain(&log)
	outer.bounds = Rect{X: 0, Y: 0, Width: 5, Height: 5}
	deep.bounds = Rect{X: 50, Y: 50, Width: 5, Height: 5}
	n := NewNested(outer)
	node := n.Layout(nopRenderer{}, Size{Width: 200, Height: 200})
	layout := NewLayout(&node)

	if !n.IsOver(layout, nopRenderer{}, Point{X: 2, Y: 2}) {
		t.Error("point on outer should be over")
	}
	if !n.IsOver(layout, nopRenderer{}, Point{X: 52, Y: 52}) {
		t.Error("point on deep should be over")
	}
	if n.IsOver(layout, nopRenderer{}, Point{X: 20, Y: 20}) {
		t.Error("point on neither should not be over")
	}
}

func TestNestedDrawOrderIsOutsideIn(t *testing.T) {
	var log []string
	outer, _ := chain(&log)
	n := NewNested(outer)
	node := n.Layout(nopRenderer{}, Size{Width: 200, Height: 200})

	n.Draw(nopRenderer{}, DefaultTheme(), Style{}, NewLayout(&node), UnavailableCursor())

	if len(log) != 2 || log[0] != "outer" || log[1] != "deep" {
		t.Errorf("draw order = %v, want [outer deep] (deepest on top)", log)
	}
}

func TestNestedInteractionPrefersTopmost(t *testing.T) {
	var log []string
	outer, deep := chain(&log)
	outer.interaction = InteractionPointer
	deep.interaction = InteractionText
	n := NewNested(outer)
	node := n.Layout(nopRenderer{}, Size{Width: 200, Height: 200})
	layout := NewLayout(&node)

	got := n.MouseInteraction(layout, AvailableCursor(Point{X: 20, Y: 20}),
		Rect{Width: 200, Height: 200}, nopRenderer{})
	if got != InteractionText {
		t.Errorf("interaction over deep = %v, want text", got)
	}

	got = n.MouseInteraction(layout, AvailableCursor(Point{X: 80, Y: 80}),
		Rect{Width: 200, Height: 200}, nopRenderer{})
	if got != InteractionPointer {
		t.Errorf("interaction off deep = %v, want pointer", got)
	}
}
