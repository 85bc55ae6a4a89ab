// Package widget provides the built-in widgets: containers, text, buttons,
// inputs, and overlay producers. Every widget here implements the
// sapling.Widget contract and nothing else. The runtime does not know
// about any of them.
package widget

import (
	"math"

	"github.com/phanxgames/sapling"
)

type axis uint8

const (
	axisHorizontal axis = iota
	axisVertical
)

func (a axis) main(s sapling.Size) float64 {
	if a == axisHorizontal {
		return s.Width
	}
	return s.Height
}

func (a axis) cross(s sapling.Size) float64 {
	if a == axisHorizontal {
		return s.Height
	}
	return s.Width
}

func (a axis) pack(main, cross float64) sapling.Size {
	if a == axisHorizontal {
		return sapling.Size{Width: main, Height: cross}
	}
	return sapling.Size{Width: cross, Height: main}
}

func (a axis) point(main, cross float64) sapling.Point {
	if a == axisHorizontal {
		return sapling.Point{X: main, Y: cross}
	}
	return sapling.Point{X: cross, Y: main}
}

// flex is the shared core of Row and Column: it distributes space along one
// axis, giving non-fill children their content size first and splitting the
// leftover between fill children by weight.
//
// Events are offered to children first, in order; a captured event stops
// propagating to later siblings. The container itself never consumes
// events.
type flex struct {
	sapling.BaseWidget

	axis     axis
	children []sapling.Widget
	spacing  float64
	padding  sapling.Padding
	width    sapling.Length
	height   sapling.Length
	align    sapling.Alignment
}

func (f *flex) mainLength(hint sapling.SizeHint) sapling.Length {
	if f.axis == axisHorizontal {
		return hint.Width
	}
	return hint.Height
}

func (f *flex) Children() []sapling.Widget {
	return f.children
}

func (f *flex) Diff(tree *sapling.Tree) {
	tree.DiffChildren(f.children)
}

func (f *flex) SizeHint() sapling.SizeHint {
	return sapling.SizeHint{Width: f.width, Height: f.height}
}

func (f *flex) Layout(tree *sapling.Tree, renderer sapling.Renderer, limits sapling.Limits) sapling.Node {
	// A fixed own size caps what the children may use before the final
	// Resolve clamps the container itself.
	outer := limits
	if f.width.Mode == sapling.SizeFixed {
		outer = outer.MaxWidth(f.width.Value)
	}
	if f.height.Mode == sapling.SizeFixed {
		outer = outer.MaxHeight(f.height.Value)
	}
	inner := outer.Loose().Shrink(f.padding)

	n := len(f.children)
	totalSpacing := 0.0
	if n > 1 {
		totalSpacing = f.spacing * float64(n-1)
	}
	availMain := math.Max(f.axis.main(inner.Max())-totalSpacing, 0)
	crossMax := f.axis.cross(inner.Max())

	nodes := make([]sapling.Node, n)

	// First pass: content-sized children, tracking what they consume.
	var fillSum, usedMain, maxCross float64
	for i, child := range f.children {
		if f.mainLength(child.SizeHint()).Mode == sapling.SizeFill {
			fillSum += f.mainLength(child.SizeHint()).FillWeight()
			continue
		}
		childLimits := sapling.NewLimits(sapling.Size{},
			f.axis.pack(math.Max(availMain-usedMain, 0), crossMax))
		nodes[i] = child.Layout(tree.Children[i], renderer, childLimits)
		usedMain += f.axis.main(nodes[i].Size())
		maxCross = math.Max(maxCross, f.axis.cross(nodes[i].Size()))
	}

	// Second pass: fill children split the leftover by weight.
	remaining := math.Max(availMain-usedMain, 0)
	for i, child := range f.children {
		policy := f.mainLength(child.SizeHint())
		if policy.Mode != sapling.SizeFill {
			continue
		}
		portion := 0.0
		if fillSum > 0 {
			portion = remaining * policy.FillWeight() / fillSum
		}
		childLimits := sapling.NewLimits(f.axis.pack(portion, 0), f.axis.pack(portion, crossMax))
		nodes[i] = child.Layout(tree.Children[i], renderer, childLimits)
		maxCross = math.Max(maxCross, f.axis.cross(nodes[i].Size()))
	}

	mainContent := totalSpacing
	for i := range nodes {
		mainContent += f.axis.main(nodes[i].Size())
	}
	intrinsic := f.axis.pack(mainContent, maxCross).Pad(f.padding)
	size := limits.Resolve(f.width, f.height, intrinsic)

	// Position children along the main axis, aligned on the cross axis.
	crossAvail := math.Max(f.axis.cross(size)-f.axis.cross(sapling.Size{
		Width:  f.padding.Horizontal(),
		Height: f.padding.Vertical(),
	}), 0)
	mainStart, crossStart := f.padding.Top, f.padding.Left
	if f.axis == axisHorizontal {
		mainStart, crossStart = f.padding.Left, f.padding.Top
	}
	cursor := mainStart
	for i := range nodes {
		crossOffset := 0.0
		switch f.align {
		case sapling.AlignCenter:
			crossOffset = (crossAvail - f.axis.cross(nodes[i].Size())) / 2
		case sapling.AlignEnd:
			crossOffset = crossAvail - f.axis.cross(nodes[i].Size())
		}
		nodes[i] = nodes[i].Move(f.axis.point(cursor, crossStart+math.Max(crossOffset, 0)))
		cursor += f.axis.main(nodes[i].Size()) + f.spacing
	}

	return sapling.NewNodeWithChildren(size, nodes)
}

func (f *flex) OnEvent(tree *sapling.Tree, event sapling.Event, layout sapling.Layout,
	cursor sapling.Cursor, renderer sapling.Renderer, clipboard sapling.Clipboard,
	shell *sapling.Shell, viewport sapling.Rect) sapling.Status {
	for i, child := range f.children {
		status := child.OnEvent(tree.Children[i], event, layout.ChildAt(i),
			cursor, renderer, clipboard, shell, viewport)
		if status == sapling.StatusCaptured {
			return sapling.StatusCaptured
		}
	}
	return sapling.StatusIgnored
}

func (f *flex) Draw(tree *sapling.Tree, renderer sapling.Renderer, theme *sapling.Theme,
	style sapling.Style, layout sapling.Layout, cursor sapling.Cursor, viewport sapling.Rect) {
	for i, child := range f.children {
		childLayout := layout.ChildAt(i)
		if !childLayout.Bounds().Intersects(viewport) {
			continue
		}
		child.Draw(tree.Children[i], renderer, theme, style, childLayout, cursor, viewport)
	}
}

func (f *flex) MouseInteraction(tree *sapling.Tree, layout sapling.Layout,
	cursor sapling.Cursor, viewport sapling.Rect, renderer sapling.Renderer) sapling.Interaction {
	// Topmost child under the cursor wins: iterate in reverse paint order.
	for i := len(f.children) - 1; i >= 0; i-- {
		childLayout := layout.ChildAt(i)
		if !cursor.IsOver(childLayout.Bounds()) {
			continue
		}
		if interaction := f.children[i].MouseInteraction(tree.Children[i], childLayout,
			cursor, viewport, renderer); interaction != sapling.InteractionNone {
			return interaction
		}
	}
	return sapling.InteractionNone
}

func (f *flex) Operate(tree *sapling.Tree, layout sapling.Layout,
	renderer sapling.Renderer, op sapling.Operation) {
	op.Container("", layout.Bounds(), func(op sapling.Operation) {
		for i, child := range f.children {
			child.Operate(tree.Children[i], layout.ChildAt(i), renderer, op)
		}
	})
}

func (f *flex) Overlay(tree *sapling.Tree, layout sapling.Layout,
	renderer sapling.Renderer, translation sapling.Vec2) sapling.Overlay {
	// One overlay chain per subtree: the first child offering one wins.
	for i, child := range f.children {
		if overlay := child.Overlay(tree.Children[i], layout.ChildAt(i),
			renderer, translation); overlay != nil {
			return overlay
		}
	}
	return nil
}
