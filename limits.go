package sapling

import "math"

// SizeMode selects how a widget resolves its size along one axis.
type SizeMode uint8

const (
	// SizeShrink fits the widget to its content.
	SizeShrink SizeMode = iota
	// SizeFixed uses an exact pixel value.
	SizeFixed
	// SizeFill expands to the available space, shared by weight with
	// sibling fill widgets.
	SizeFill
)

// Length is a sizing policy for one axis: shrink to content, a fixed pixel
// amount, or fill the available space with a relative weight.
type Length struct {
	Mode  SizeMode
	Value float64 // pixels for SizeFixed, weight for SizeFill
}

// Shrink sizes a widget to its content.
var Shrink = Length{Mode: SizeShrink}

// Fill expands a widget to the available space with weight 1.
var Fill = Length{Mode: SizeFill, Value: 1}

// Fixed returns a Length of an exact pixel amount.
func Fixed(px float64) Length {
	return Length{Mode: SizeFixed, Value: px}
}

// FillWeighted returns a fill Length with the given relative weight.
// Two siblings with weights 2 and 1 split leftover space 2:1.
func FillWeighted(weight float64) Length {
	return Length{Mode: SizeFill, Value: weight}
}

// FillWeight returns the fill weight, or 0 if the Length does not fill.
func (l Length) FillWeight() float64 {
	if l.Mode != SizeFill {
		return 0
	}
	if l.Value <= 0 {
		return 1
	}
	return l.Value
}

// SizeHint is a widget's sizing policy per axis, consumed by parent
// containers when partitioning available space.
type SizeHint struct {
	Width, Height Length
}

// Limits are the minimum and maximum bounds available during a layout pass.
type Limits struct {
	min, max Size
}

// NewLimits creates a set of layout limits. Degenerate inputs (negative, NaN)
// are clamped so layout never has a fallible path.
func NewLimits(min, max Size) Limits {
	min.Width = sanitize(min.Width)
	min.Height = sanitize(min.Height)
	max.Width = math.Max(sanitize(max.Width), min.Width)
	max.Height = math.Max(sanitize(max.Height), min.Height)
	return Limits{min: min, max: max}
}

// sanitize maps NaN and negative values to 0. Positive infinity is allowed:
// it means "unbounded" on that axis.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// Min returns the minimum size.
func (l Limits) Min() Size {
	return l.min
}

// Max returns the maximum size.
func (l Limits) Max() Size {
	return l.max
}

// Shrink returns the limits reduced by the given padding.
func (l Limits) Shrink(p Padding) Limits {
	return NewLimits(
		Size{l.min.Width - p.Horizontal(), l.min.Height - p.Vertical()},
		Size{l.max.Width - p.Horizontal(), l.max.Height - p.Vertical()},
	)
}

// Loose returns the limits with the minimum zeroed out.
func (l Limits) Loose() Limits {
	return Limits{max: l.max}
}

// MaxWidth returns the limits with the maximum width replaced.
func (l Limits) MaxWidth(w float64) Limits {
	return NewLimits(l.min, Size{w, l.max.Height})
}

// MaxHeight returns the limits with the maximum height replaced.
func (l Limits) MaxHeight(h float64) Limits {
	return NewLimits(l.min, Size{l.max.Width, h})
}

// Resolve computes the final size of a widget from its per-axis policies and
// its intrinsic (content) size, clamped to the limits.
func (l Limits) Resolve(width, height Length, intrinsic Size) Size {
	return Size{
		Width:  l.resolveAxis(width, intrinsic.Width, l.min.Width, l.max.Width),
		Height: l.resolveAxis(height, intrinsic.Height, l.min.Height, l.max.Height),
	}
}

func (l Limits) resolveAxis(policy Length, intrinsic, min, max float64) float64 {
	switch policy.Mode {
	case SizeFixed:
		return clampAxis(policy.Value, min, max)
	case SizeFill:
		if math.IsInf(max, 1) {
			// Filling unbounded space is undefined; fall back to content.
			return clampAxis(intrinsic, min, max)
		}
		return max
	default:
		return clampAxis(intrinsic, min, max)
	}
}

func clampAxis(v, min, max float64) float64 {
	if math.IsNaN(v) || v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
