package sapling

import "testing"

// --- Node ---

func TestNodeMoveReturnsCopy(t *testing.T) {
	n := NewNode(Size{Width: 10, Height: 10})
	moved := n.Move(Point{X: 5, Y: 7})
	if n.Bounds().X != 0 || n.Bounds().Y != 0 {
		t.Error("Move mutated the original node")
	}
	if moved.Bounds() != (Rect{X: 5, Y: 7, Width: 10, Height: 10}) {
		t.Errorf("moved.Bounds() = %v", moved.Bounds())
	}
}

func TestNodeTranslate(t *testing.T) {
	n := NewNode(Size{Width: 4, Height: 4}).Move(Point{X: 1, Y: 2})
	got := n.Translate(Vec2{X: 10, Y: 20}).Bounds()
	if got != (Rect{X: 11, Y: 22, Width: 4, Height: 4}) {
		t.Errorf("Translate bounds = %v", got)
	}
}

// --- Layout offsets ---

func TestLayoutAccumulatesOffsets(t *testing.T) {
	grandchild := NewNode(Size{Width: 10, Height: 10}).Move(Point{X: 5, Y: 5})
	child := NewNodeWithChildren(Size{Width: 50, Height: 50}, []Node{grandchild}).
		Move(Point{X: 20, Y: 30})
	root := NewNodeWithChildren(Size{Width: 100, Height: 100}, []Node{child})

	layout := NewLayout(&root)
	if layout.Bounds() != (Rect{Width: 100, Height: 100}) {
		t.Errorf("root bounds = %v", layout.Bounds())
	}

	childLayout := layout.ChildAt(0)
	if childLayout.Bounds() != (Rect{X: 20, Y: 30, Width: 50, Height: 50}) {
		t.Errorf("child bounds = %v", childLayout.Bounds())
	}

	deep := childLayout.ChildAt(0)
	if deep.Bounds() != (Rect{X: 25, Y: 35, Width: 10, Height: 10}) {
		t.Errorf("grandchild bounds = %v", deep.Bounds())
	}
}

func TestLayoutChildren(t *testing.T) {
	a := NewNode(Size{Width: 1, Height: 1})
	b := NewNode(Size{Width: 2, Height: 2}).Move(Point{X: 1, Y: 0})
	root := NewNodeWithChildren(Size{Width: 10, Height: 10}, []Node{a, b})

	children := NewLayout(&root).Children()
	if len(children) != 2 {
		t.Fatalf("len(Children()) = %d, want 2", len(children))
	}
	if children[1].Bounds().X != 1 {
		t.Errorf("second child X = %v, want 1", children[1].Bounds().X)
	}
}

// --- Rect ---

func TestRectIntersection(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	got := a.Intersection(b)
	if got != (Rect{X: 5, Y: 5, Width: 5, Height: 5}) {
		t.Errorf("Intersection = %v", got)
	}
	if a.Intersection(Rect{X: 20, Y: 20, Width: 1, Height: 1}) != (Rect{}) {
		t.Error("disjoint intersection should be zero")
	}
}

func TestRectShrink(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}.Shrink(UniformPadding(5))
	if r != (Rect{X: 15, Y: 15, Width: 10, Height: 10}) {
		t.Errorf("Shrink = %v", r)
	}
}
