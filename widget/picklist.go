package widget

import "github.com/phanxgames/sapling"

// PickList is a dropdown: a field showing the current selection that opens a
// floating option menu when clicked. Selection is controlled: picking an
// option publishes onSelect with the option index and closes the menu.
type PickList struct {
	sapling.BaseWidget

	options     []string
	selected    int // index into options, -1 for none
	placeholder string
	onSelect    func(int) any
	size        float64
	padding     sapling.Padding
	width       sapling.Length
}

type pickListState struct {
	open    bool
	hovered int // option index under the pointer, -1 for none
}

// NewPickList creates a pick list over options. selected is the index of the
// current choice, or -1 for none; onSelect maps a picked index to a message.
func NewPickList(options []string, selected int, onSelect func(int) any) *PickList {
	return &PickList{
		options:     options,
		selected:    selected,
		placeholder: "Pick one...",
		onSelect:    onSelect,
		padding:     sapling.Padding{Top: 6, Right: 10, Bottom: 6, Left: 10},
		width:       sapling.Shrink,
	}
}

// Placeholder sets the text shown when nothing is selected.
func (p *PickList) Placeholder(text string) *PickList {
	p.placeholder = text
	return p
}

// TextSize sets the font size in pixels.
func (p *PickList) TextSize(px float64) *PickList {
	p.size = px
	return p
}

// Width sets the width sizing policy.
func (p *PickList) Width(l sapling.Length) *PickList {
	p.width = l
	return p
}

func (p *PickList) Tag() sapling.Tag {
	return sapling.TagOf[pickListState]()
}

func (p *PickList) State() any {
	return &pickListState{hovered: -1}
}

func (p *PickList) SizeHint() sapling.SizeHint {
	return sapling.SizeHint{Width: p.width, Height: sapling.Shrink}
}

func (p *PickList) label() string {
	if p.selected >= 0 && p.selected < len(p.options) {
		return p.options[p.selected]
	}
	return p.placeholder
}

func (p *PickList) text(content string, bounds sapling.Size) sapling.Text {
	return sapling.Text{
		Content: content,
		Bounds:  bounds,
		Size:    p.size,
		AlignY:  sapling.AlignCenter,
	}
}

func (p *PickList) Layout(tree *sapling.Tree, renderer sapling.Renderer, limits sapling.Limits) sapling.Node {
	// The field is wide enough for the longest option so opening the menu
	// never resizes it.
	widest := renderer.MeasureText(p.text(p.placeholder, sapling.Size{}))
	for _, option := range p.options {
		measured := renderer.MeasureText(p.text(option, sapling.Size{}))
		if measured.Width > widest.Width {
			widest.Width = measured.Width
		}
		if measured.Height > widest.Height {
			widest.Height = measured.Height
		}
	}
	intrinsic := widest.Pad(p.padding)
	intrinsic.Width += widest.Height // room for the arrow
	return sapling.NewNode(limits.Resolve(p.width, sapling.Shrink, intrinsic))
}

func (p *PickList) OnEvent(tree *sapling.Tree, event sapling.Event, layout sapling.Layout,
	cursor sapling.Cursor, renderer sapling.Renderer, clipboard sapling.Clipboard,
	shell *sapling.Shell, viewport sapling.Rect) sapling.Status {
	e, ok := event.(sapling.ButtonPressed)
	if !ok || e.Button != sapling.MouseButtonLeft {
		return sapling.StatusIgnored
	}
	if !cursor.IsOver(layout.Bounds()) {
		return sapling.StatusIgnored
	}
	state := sapling.StateOf[pickListState](tree)
	state.open = !state.open
	state.hovered = -1
	return sapling.StatusCaptured
}

func (p *PickList) Draw(tree *sapling.Tree, renderer sapling.Renderer, theme *sapling.Theme,
	style sapling.Style, layout sapling.Layout, cursor sapling.Cursor, viewport sapling.Rect) {
	bounds := layout.Bounds()
	clip := bounds.Intersection(viewport)

	renderer.FillQuad(sapling.Quad{
		Bounds:       bounds,
		Background:   theme.Palette.Surface,
		BorderColor:  theme.Palette.Outline,
		BorderWidth:  1,
		BorderRadius: 3,
	})

	content := bounds.Shrink(p.padding)
	color := style.TextColor
	if p.selected < 0 {
		color = theme.Palette.Placeholder
	}
	renderer.FillText(p.text(p.label(), content.Size()), content.Position(), color, clip)

	arrow := sapling.Text{
		Content: "v",
		Bounds:  content.Size(),
		Size:    p.size,
		AlignX:  sapling.AlignEnd,
		AlignY:  sapling.AlignCenter,
	}
	renderer.FillText(arrow, content.Position(), theme.Palette.Placeholder, clip)
}

func (p *PickList) MouseInteraction(tree *sapling.Tree, layout sapling.Layout,
	cursor sapling.Cursor, viewport sapling.Rect, renderer sapling.Renderer) sapling.Interaction {
	if cursor.IsOver(layout.Bounds()) {
		return sapling.InteractionPointer
	}
	return sapling.InteractionNone
}

func (p *PickList) Overlay(tree *sapling.Tree, layout sapling.Layout,
	renderer sapling.Renderer, translation sapling.Vec2) sapling.Overlay {
	state := sapling.StateOf[pickListState](tree)
	if !state.open || len(p.options) == 0 {
		return nil
	}
	return &pickListMenu{
		list:   p,
		state:  state,
		anchor: layout.Bounds().Translate(translation),
	}
}

// pickListMenu is the floating option menu. It lives as long as the state
// says open; clicking an option or pressing escape closes it, and a press
// outside closes it while letting the press through to the base tree.
type pickListMenu struct {
	list   *PickList
	state  *pickListState
	anchor sapling.Rect
}

func (m *pickListMenu) Layout(renderer sapling.Renderer, bounds sapling.Size) sapling.Node {
	rowHeight := m.anchor.Height
	size := sapling.Size{
		Width:  m.anchor.Width,
		Height: rowHeight * float64(len(m.list.options)),
	}

	position := sapling.Point{X: m.anchor.X, Y: m.anchor.Y + m.anchor.Height}
	if position.Y+size.Height > bounds.Height {
		flipped := m.anchor.Y - size.Height
		if flipped >= 0 {
			position.Y = flipped
		}
	}
	return sapling.NewNode(size).Move(position)
}

// optionAt maps a point to an option index, or -1.
func (m *pickListMenu) optionAt(bounds sapling.Rect, position sapling.Point) int {
	if !bounds.Contains(position) {
		return -1
	}
	i := int((position.Y - bounds.Y) / (bounds.Height / float64(len(m.list.options))))
	if i < 0 || i >= len(m.list.options) {
		return -1
	}
	return i
}

func (m *pickListMenu) OnEvent(event sapling.Event, layout sapling.Layout,
	cursor sapling.Cursor, renderer sapling.Renderer, clipboard sapling.Clipboard,
	shell *sapling.Shell) sapling.Status {
	bounds := layout.Bounds()

	switch e := event.(type) {
	case sapling.PointerMoved:
		hovered := -1
		if pos, ok := cursor.Position(); ok {
			hovered = m.optionAt(bounds, pos)
		}
		if hovered != m.state.hovered {
			m.state.hovered = hovered
			shell.RequestRedraw()
		}

	case sapling.ButtonPressed:
		if e.Button != sapling.MouseButtonLeft {
			return sapling.StatusIgnored
		}
		pos, ok := cursor.Position()
		if !ok || !bounds.Contains(pos) {
			// Press outside: close, but let the base tree see the press.
			m.state.open = false
			return sapling.StatusIgnored
		}
		if i := m.optionAt(bounds, pos); i >= 0 && m.list.onSelect != nil {
			shell.Publish(m.list.onSelect(i))
		}
		m.state.open = false
		return sapling.StatusCaptured

	case sapling.KeyPressed:
		if e.Key == sapling.KeyEscape {
			m.state.open = false
			return sapling.StatusCaptured
		}
	}
	return sapling.StatusIgnored
}

func (m *pickListMenu) Draw(renderer sapling.Renderer, theme *sapling.Theme,
	style sapling.Style, layout sapling.Layout, cursor sapling.Cursor) {
	bounds := layout.Bounds()
	renderer.FillQuad(sapling.Quad{
		Bounds:      bounds,
		Background:  theme.Palette.Surface,
		BorderColor: theme.Palette.Outline,
		BorderWidth: 1,
	})

	rowHeight := bounds.Height / float64(len(m.list.options))
	for i, option := range m.list.options {
		row := sapling.Rect{
			X:      bounds.X,
			Y:      bounds.Y + rowHeight*float64(i),
			Width:  bounds.Width,
			Height: rowHeight,
		}
		if i == m.state.hovered {
			renderer.FillQuad(sapling.Quad{Bounds: row, Background: theme.Palette.Primary})
		}
		color := style.TextColor
		if i == m.state.hovered {
			color = theme.Palette.Surface
		}
		content := row.Shrink(m.list.padding)
		renderer.FillText(m.list.text(option, content.Size()), content.Position(), color, row)
	}
}

func (m *pickListMenu) MouseInteraction(layout sapling.Layout, cursor sapling.Cursor,
	viewport sapling.Rect, renderer sapling.Renderer) sapling.Interaction {
	if cursor.IsOver(layout.Bounds()) {
		return sapling.InteractionPointer
	}
	return sapling.InteractionNone
}

func (m *pickListMenu) IsOver(layout sapling.Layout, renderer sapling.Renderer,
	position sapling.Point) bool {
	return layout.Bounds().Contains(position)
}

func (m *pickListMenu) Operate(layout sapling.Layout, renderer sapling.Renderer, op sapling.Operation) {
}

func (m *pickListMenu) Overlay(layout sapling.Layout, renderer sapling.Renderer) sapling.Overlay {
	return nil
}
