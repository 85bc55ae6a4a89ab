package ebitengine

import (
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sapling"
)

// wheelSpeed converts Ebitengine wheel ticks to logical pixels.
const wheelSpeed = 20.0

type buttonMapping struct {
	theirs ebiten.MouseButton
	ours   sapling.MouseButton
}

var buttonMappings = []buttonMapping{
	{ebiten.MouseButtonLeft, sapling.MouseButtonLeft},
	{ebiten.MouseButtonRight, sapling.MouseButtonRight},
	{ebiten.MouseButtonMiddle, sapling.MouseButtonMiddle},
	{ebiten.MouseButton3, sapling.MouseButtonBack},
	{ebiten.MouseButton4, sapling.MouseButtonForward},
}

type keyMapping struct {
	theirs ebiten.Key
	ours   sapling.Key
}

var keyMappings = []keyMapping{
	{ebiten.KeyEnter, sapling.KeyEnter},
	{ebiten.KeyNumpadEnter, sapling.KeyEnter},
	{ebiten.KeyEscape, sapling.KeyEscape},
	{ebiten.KeyTab, sapling.KeyTab},
	{ebiten.KeyBackspace, sapling.KeyBackspace},
	{ebiten.KeyDelete, sapling.KeyDelete},
	{ebiten.KeySpace, sapling.KeySpace},
	{ebiten.KeyArrowLeft, sapling.KeyLeft},
	{ebiten.KeyArrowRight, sapling.KeyRight},
	{ebiten.KeyArrowUp, sapling.KeyUp},
	{ebiten.KeyArrowDown, sapling.KeyDown},
	{ebiten.KeyHome, sapling.KeyHome},
	{ebiten.KeyEnd, sapling.KeyEnd},
	{ebiten.KeyPageUp, sapling.KeyPageUp},
	{ebiten.KeyPageDown, sapling.KeyPageDown},
}

func init() {
	// ebiten.KeyA..KeyZ are contiguous, as are sapling.KeyA..KeyZ.
	for i := 0; i < 26; i++ {
		keyMappings = append(keyMappings, keyMapping{
			theirs: ebiten.KeyA + ebiten.Key(i),
			ours:   sapling.KeyA + sapling.Key(i),
		})
	}
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() sapling.Modifiers {
	var mods sapling.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= sapling.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= sapling.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= sapling.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= sapling.ModMeta
	}
	return mods
}

// input polls Ebitengine once per frame and turns state changes into
// sapling events by diffing against the previous frame.
type input struct {
	cursorX, cursorY float64
	inside           bool
	buttons          [5]bool // indexed like buttonMappings
	keys             [64]bool // indexed like keyMappings
	mods             sapling.Modifiers
	runes            []rune
	started          bool
}

// cursor returns the pointer as sapling sees it.
func (in *input) cursor() sapling.Cursor {
	if !in.inside {
		return sapling.UnavailableCursor()
	}
	return sapling.AvailableCursor(sapling.Point{X: in.cursorX, Y: in.cursorY})
}

// poll appends one frame's worth of events, in a stable order: pointer
// motion first, then buttons, wheel, modifiers, keys, and text.
func (in *input) poll(events []sapling.Event, bounds sapling.Size) []sapling.Event {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	inside := x >= 0 && y >= 0 && x <= bounds.Width && y <= bounds.Height

	if inside != in.inside && in.started {
		if inside {
			events = append(events, sapling.PointerEntered{})
		} else {
			events = append(events, sapling.PointerLeft{})
		}
	}
	if inside && (x != in.cursorX || y != in.cursorY) {
		events = append(events, sapling.PointerMoved{Position: sapling.Point{X: x, Y: y}})
	}
	in.cursorX, in.cursorY = x, y
	in.inside = inside
	in.started = true

	for i, m := range buttonMappings {
		down := ebiten.IsMouseButtonPressed(m.theirs)
		if down == in.buttons[i] {
			continue
		}
		in.buttons[i] = down
		if down {
			events = append(events, sapling.ButtonPressed{Button: m.ours})
		} else {
			events = append(events, sapling.ButtonReleased{Button: m.ours})
		}
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		events = append(events, sapling.WheelScrolled{
			Delta: sapling.Vec2{X: wx * wheelSpeed, Y: wy * wheelSpeed},
		})
	}

	mods := readModifiers()
	if mods != in.mods {
		in.mods = mods
		events = append(events, sapling.ModifiersChanged{Modifiers: mods})
	}

	for i, m := range keyMappings {
		down := ebiten.IsKeyPressed(m.theirs)
		if down == in.keys[i] {
			continue
		}
		in.keys[i] = down
		if down {
			events = append(events, sapling.KeyPressed{Key: m.ours, Modifiers: mods})
		} else {
			events = append(events, sapling.KeyReleased{Key: m.ours, Modifiers: mods})
		}
	}

	in.runes = ebiten.AppendInputChars(in.runes[:0])
	if text := printable(in.runes); text != "" {
		events = append(events, sapling.TextEntered{Text: text})
	}

	return events
}

// printable filters control characters out of raw input runes.
func printable(runes []rune) string {
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		if unicode.IsControl(r) {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
