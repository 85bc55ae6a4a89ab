package widget

import (
	"testing"

	"github.com/phanxgames/sapling"
	"github.com/phanxgames/sapling/software"
)

func layoutRoot(t *testing.T, w sapling.Widget, bounds sapling.Size) (*sapling.Tree, sapling.Node) {
	t.Helper()
	tree := sapling.NewTree(w)
	r := software.New(int(bounds.Width), int(bounds.Height))
	node := w.Layout(tree, r, sapling.NewLimits(sapling.Size{}, bounds))
	return tree, node
}

// --- Column ---

func TestColumnStacksWithSpacingAndPadding(t *testing.T) {
	col := NewColumn(
		NewSpace(sapling.Fixed(10), sapling.Fixed(10)),
		NewSpace(sapling.Fixed(20), sapling.Fixed(20)),
	).Spacing(5).Padding(sapling.UniformPadding(4))

	_, node := layoutRoot(t, col, sapling.Size{Width: 400, Height: 400})
	if node.Size() != (sapling.Size{Width: 28, Height: 43}) {
		t.Errorf("column size = %v, want {28 43}", node.Size())
	}

	layout := sapling.NewLayout(&node)
	first := layout.ChildAt(0).Bounds()
	second := layout.ChildAt(1).Bounds()
	if first.X != 4 || first.Y != 4 {
		t.Errorf("first child at (%v, %v), want (4, 4)", first.X, first.Y)
	}
	if second.Y != 19 {
		t.Errorf("second child Y = %v, want 19 (10 + 5 spacing + 4 padding)", second.Y)
	}
}

func TestColumnAlignCenter(t *testing.T) {
	col := NewColumn(
		NewSpace(sapling.Fixed(10), sapling.Fixed(10)),
		NewSpace(sapling.Fixed(30), sapling.Fixed(10)),
	).AlignItems(sapling.AlignCenter)

	_, node := layoutRoot(t, col, sapling.Size{Width: 400, Height: 400})
	layout := sapling.NewLayout(&node)
	if x := layout.ChildAt(0).Bounds().X; x != 10 {
		t.Errorf("narrow child X = %v, want 10 (centered in 30)", x)
	}
}

func TestColumnChildrenStayInsideBounds(t *testing.T) {
	col := NewColumn(
		NewSpace(sapling.Fixed(50), sapling.Fixed(50)),
		NewSpace(sapling.Fixed(50), sapling.Fill),
	).Height(sapling.Fixed(120))

	_, node := layoutRoot(t, col, sapling.Size{Width: 400, Height: 400})
	if node.Size().Height != 120 {
		t.Fatalf("column height = %v, want 120", node.Size().Height)
	}
	layout := sapling.NewLayout(&node)
	for i := 0; i < layout.ChildCount(); i++ {
		child := layout.ChildAt(i).Bounds()
		if child.Y+child.Height > 120.5 {
			t.Errorf("child %d escapes: %v", i, child)
		}
	}
}

// --- Row fill distribution ---

func TestRowFillSplitsLeftoverByWeight(t *testing.T) {
	row := NewRow(
		NewSpace(sapling.Fixed(20), sapling.Fixed(10)),
		NewSpace(sapling.Fill, sapling.Fixed(10)),
		NewSpace(sapling.FillWeighted(3), sapling.Fixed(10)),
	).Width(sapling.Fixed(100))

	_, node := layoutRoot(t, row, sapling.Size{Width: 400, Height: 400})
	layout := sapling.NewLayout(&node)

	fill1 := layout.ChildAt(1).Bounds()
	fill3 := layout.ChildAt(2).Bounds()
	if fill1.Width != 20 {
		t.Errorf("weight-1 width = %v, want 20 (a quarter of 80)", fill1.Width)
	}
	if fill3.Width != 60 {
		t.Errorf("weight-3 width = %v, want 60 (three quarters of 80)", fill3.Width)
	}
	if fill3.X != 40 {
		t.Errorf("weight-3 X = %v, want 40", fill3.X)
	}
}

func TestRowFillShrinksToNothingWhenFull(t *testing.T) {
	row := NewRow(
		NewSpace(sapling.Fixed(100), sapling.Fixed(10)),
		NewSpace(sapling.Fill, sapling.Fixed(10)),
	).Width(sapling.Fixed(100))

	_, node := layoutRoot(t, row, sapling.Size{Width: 400, Height: 400})
	layout := sapling.NewLayout(&node)
	if w := layout.ChildAt(1).Bounds().Width; w != 0 {
		t.Errorf("fill child width = %v, want 0 when nothing is left", w)
	}
}

// --- Event propagation ---

func TestRowStopsEventAtFirstCapture(t *testing.T) {
	first := NewButton(NewText("a"), "a")
	second := NewButton(NewText("b"), "b")
	row := NewRow(first, second)

	tree, node := layoutRoot(t, row, sapling.Size{Width: 400, Height: 400})
	layout := sapling.NewLayout(&node)
	r := software.New(400, 400)

	// Press over the first button.
	at := layout.ChildAt(0).Bounds().Center()
	shell := sapling.NewShell()
	status := row.OnEvent(tree, sapling.ButtonPressed{Button: sapling.MouseButtonLeft},
		layout, sapling.AvailableCursor(at), r, sapling.NullClipboard{}, shell,
		sapling.Rect{Width: 400, Height: 400})
	if status != sapling.StatusCaptured {
		t.Fatal("press over first button should be captured")
	}

	// Release over the first button publishes only its message.
	shell = sapling.NewShell()
	row.OnEvent(tree, sapling.ButtonReleased{Button: sapling.MouseButtonLeft},
		layout, sapling.AvailableCursor(at), r, sapling.NullClipboard{}, shell,
		sapling.Rect{Width: 400, Height: 400})
	messages := shell.Messages()
	if len(messages) != 1 || messages[0] != "a" {
		t.Errorf("messages = %v, want [a]", messages)
	}
}
