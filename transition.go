package sapling

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Transition animates a float64 toward a target over a fixed duration,
// driven by the RedrawRequested timestamps a widget receives. Widgets use
// it for hover and press fades: start it with Go, call Tick from the redraw
// event, and keep requesting redraws while it reports activity.
//
// There is no global animation manager. Each widget ticks its own
// transitions from its event handler.
type Transition struct {
	tween *gween.Tween
	value float64
	last  time.Time
}

// NewTransition creates a transition resting at the given value.
func NewTransition(value float64) *Transition {
	return &Transition{value: value}
}

// Value returns the current value.
func (t *Transition) Value() float64 {
	return t.value
}

// Active reports whether the transition is still animating.
func (t *Transition) Active() bool {
	return t.tween != nil
}

// Go retargets the transition: it animates from the current value to target
// over the given duration with the easing function.
func (t *Transition) Go(target float64, duration time.Duration, fn ease.TweenFunc) {
	if duration <= 0 {
		t.value = target
		t.tween = nil
		return
	}
	t.tween = gween.New(float32(t.value), float32(target), float32(duration.Seconds()), fn)
	t.last = time.Time{}
}

// Tick advances the transition to the given frame time and reports whether
// another redraw is needed. The first Tick after Go only records the
// baseline time.
func (t *Transition) Tick(now time.Time) bool {
	if t.tween == nil {
		return false
	}
	var dt float32
	if !t.last.IsZero() {
		dt = float32(now.Sub(t.last).Seconds())
	}
	t.last = now
	value, finished := t.tween.Update(dt)
	t.value = float64(value)
	if finished {
		t.tween = nil
	}
	return !finished
}
