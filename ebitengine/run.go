package ebitengine

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sapling"
)

// Program is the application half of the update loop: View describes the
// interface from current state, Update applies one published message to it.
type Program interface {
	View() sapling.Widget
	Update(message any)
}

// RunConfig configures Run. The zero value is usable.
type RunConfig struct {
	Title  string
	Width  int // window width in logical pixels; 0 means 800
	Height int // window height in logical pixels; 0 means 600

	Theme     *sapling.Theme    // nil means sapling.DefaultTheme()
	FontData  []byte            // TTF/OTF data; nil uses the built-in bitmap font
	FontSize  float64           // only used with FontData; 0 means 14
	Clipboard sapling.Clipboard // nil means sapling.NullClipboard
}

// Run opens a window and drives the full cycle for a Program: poll input,
// update the interface, apply published messages, rebuild, draw. It blocks
// until the window closes.
func Run(program Program, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.Theme == nil {
		cfg.Theme = sapling.DefaultTheme()
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = sapling.NullClipboard{}
	}

	var renderer *Renderer
	if cfg.FontData != nil {
		var err error
		renderer, err = NewRendererWithFont(cfg.FontData, cfg.FontSize)
		if err != nil {
			return err
		}
	} else {
		renderer = NewRenderer()
	}

	bounds := sapling.Size{Width: float64(cfg.Width), Height: float64(cfg.Height)}
	g := &game{
		program:   program,
		renderer:  renderer,
		theme:     cfg.Theme,
		clipboard: cfg.Clipboard,
		bounds:    bounds,
	}
	g.ui = sapling.Build(program.View(), bounds, sapling.NewCache(), renderer)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("sapling: run: %w", err)
	}
	return nil
}

// game adapts the sapling cycle to ebiten.Game.
type game struct {
	program   Program
	ui        *sapling.UserInterface
	renderer  *Renderer
	theme     *sapling.Theme
	clipboard sapling.Clipboard

	input    input
	bounds   sapling.Size
	resized  bool
	redrawAt *time.Time
	events   []sapling.Event
	messages []any
}

func (g *game) Update() error {
	g.events = g.events[:0]

	if g.resized {
		g.resized = false
		g.ui.Relayout(g.bounds, g.renderer)
		g.events = append(g.events, sapling.Resized{Size: g.bounds})
	}

	if g.redrawAt != nil && !time.Now().Before(*g.redrawAt) {
		g.redrawAt = nil
		g.events = append(g.events, sapling.RedrawRequested{At: time.Now()})
	}

	g.events = g.input.poll(g.events, g.bounds)
	if len(g.events) == 0 {
		return nil
	}

	g.messages = g.messages[:0]
	state, _ := g.ui.Update(g.events, g.input.cursor(), g.renderer, g.clipboard, &g.messages)

	if at, ok := state.RedrawRequest(); ok {
		if g.redrawAt == nil || at.Before(*g.redrawAt) {
			t := at
			g.redrawAt = &t
		}
	}

	if len(g.messages) > 0 || state.IsOutdated() {
		for _, message := range g.messages {
			g.program.Update(message)
		}
		g.rebuild()
	}
	return nil
}

// rebuild discards the current interface generation, carrying its state tree
// into the next one.
func (g *game) rebuild() {
	cache := g.ui.IntoCache()
	g.ui = sapling.Build(g.program.View(), g.bounds, cache, g.renderer)
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	style := sapling.DefaultStyle(g.theme)
	interaction := g.ui.Draw(g.renderer, g.theme, style, g.input.cursor())
	ebiten.SetCursorShape(cursorShape(interaction))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	bounds := sapling.Size{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	if bounds != g.bounds {
		g.bounds = bounds
		g.resized = true
	}
	return outsideWidth, outsideHeight
}

// cursorShape maps a sapling interaction to the closest Ebitengine cursor.
func cursorShape(interaction sapling.Interaction) ebiten.CursorShapeType {
	switch interaction {
	case sapling.InteractionPointer:
		return ebiten.CursorShapePointer
	case sapling.InteractionText:
		return ebiten.CursorShapeText
	case sapling.InteractionCrosshair:
		return ebiten.CursorShapeCrosshair
	case sapling.InteractionGrab, sapling.InteractionGrabbing:
		return ebiten.CursorShapeMove
	case sapling.InteractionResizeHorizontal:
		return ebiten.CursorShapeEWResize
	case sapling.InteractionResizeVertical:
		return ebiten.CursorShapeNSResize
	case sapling.InteractionNotAllowed:
		return ebiten.CursorShapeNotAllowed
	default:
		return ebiten.CursorShapeDefault
	}
}
