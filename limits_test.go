package sapling

import (
	"math"
	"testing"
)

// --- Construction ---

func TestNewLimitsSanitizes(t *testing.T) {
	l := NewLimits(Size{Width: -5, Height: math.NaN()}, Size{Width: -1, Height: 10})
	if l.Min() != (Size{}) {
		t.Errorf("Min() = %v, want zero", l.Min())
	}
	if l.Max() != (Size{Width: 0, Height: 10}) {
		t.Errorf("Max() = %v, want {0 10}", l.Max())
	}
}

func TestNewLimitsMaxAtLeastMin(t *testing.T) {
	l := NewLimits(Size{Width: 100, Height: 50}, Size{Width: 20, Height: 10})
	if l.Max() != (Size{Width: 100, Height: 50}) {
		t.Errorf("Max() = %v, want raised to min", l.Max())
	}
}

func TestLimitsLoose(t *testing.T) {
	l := NewLimits(Size{Width: 10, Height: 10}, Size{Width: 50, Height: 50}).Loose()
	if l.Min() != (Size{}) {
		t.Errorf("Min() = %v, want zero", l.Min())
	}
	if l.Max() != (Size{Width: 50, Height: 50}) {
		t.Errorf("Max() = %v, want unchanged", l.Max())
	}
}

func TestLimitsShrink(t *testing.T) {
	l := NewLimits(Size{}, Size{Width: 100, Height: 80}).Shrink(UniformPadding(10))
	if l.Max() != (Size{Width: 80, Height: 60}) {
		t.Errorf("Max() = %v, want {80 60}", l.Max())
	}
}

func TestLimitsShrinkBelowZeroClamps(t *testing.T) {
	l := NewLimits(Size{}, Size{Width: 5, Height: 5}).Shrink(UniformPadding(10))
	if l.Max() != (Size{}) {
		t.Errorf("Max() = %v, want zero", l.Max())
	}
}

// --- Resolve ---

func TestResolveShrinkUsesIntrinsic(t *testing.T) {
	l := NewLimits(Size{}, Size{Width: 100, Height: 100})
	got := l.Resolve(Shrink, Shrink, Size{Width: 30, Height: 20})
	if got != (Size{Width: 30, Height: 20}) {
		t.Errorf("Resolve = %v, want intrinsic", got)
	}
}

func TestResolveShrinkClampsToMax(t *testing.T) {
	l := NewLimits(Size{}, Size{Width: 25, Height: 100})
	got := l.Resolve(Shrink, Shrink, Size{Width: 30, Height: 20})
	if got.Width != 25 {
		t.Errorf("Width = %v, want 25", got.Width)
	}
}

func TestResolveFixedClamps(t *testing.T) {
	l := NewLimits(Size{Width: 10, Height: 10}, Size{Width: 50, Height: 50})
	got := l.Resolve(Fixed(200), Fixed(5), Size{})
	if got != (Size{Width: 50, Height: 10}) {
		t.Errorf("Resolve = %v, want clamped {50 10}", got)
	}
}

func TestResolveFillTakesMax(t *testing.T) {
	l := NewLimits(Size{}, Size{Width: 50, Height: 40})
	got := l.Resolve(Fill, Fill, Size{Width: 5, Height: 5})
	if got != (Size{Width: 50, Height: 40}) {
		t.Errorf("Resolve = %v, want max", got)
	}
}

func TestResolveFillUnboundedFallsBackToIntrinsic(t *testing.T) {
	l := NewLimits(Size{}, Size{Width: math.Inf(1), Height: 40})
	got := l.Resolve(Fill, Shrink, Size{Width: 30, Height: 20})
	if got.Width != 30 {
		t.Errorf("Width = %v, want intrinsic 30", got.Width)
	}
}

// --- FillWeight ---

func TestFillWeightDefaultsToOne(t *testing.T) {
	if w := (Length{Mode: SizeFill}).FillWeight(); w != 1 {
		t.Errorf("FillWeight = %v, want 1", w)
	}
	if w := FillWeighted(3).FillWeight(); w != 3 {
		t.Errorf("FillWeight = %v, want 3", w)
	}
	if w := Fixed(10).FillWeight(); w != 0 {
		t.Errorf("FillWeight = %v, want 0 for fixed", w)
	}
}
