package sapling

// Palette is the set of colors a theme provides to widget drawing code.
type Palette struct {
	Background  Color
	Surface     Color
	Text        Color
	Placeholder Color
	Primary     Color
	Success     Color
	Danger      Color
	Outline     Color
}

// Theme carries the palette used during drawing. The runtime passes it
// through Draw untouched.
type Theme struct {
	Palette Palette
}

// LightTheme returns a light palette.
func LightTheme() *Theme {
	return &Theme{Palette: Palette{
		Background:  Color{0.98, 0.98, 0.98, 1},
		Surface:     Color{1, 1, 1, 1},
		Text:        Color{0.12, 0.12, 0.12, 1},
		Placeholder: Color{0.55, 0.55, 0.55, 1},
		Primary:     Color{0.23, 0.51, 0.96, 1},
		Success:     Color{0.07, 0.64, 0.29, 1},
		Danger:      Color{0.86, 0.15, 0.15, 1},
		Outline:     Color{0.75, 0.75, 0.75, 1},
	}}
}

// DarkTheme returns a dark palette.
func DarkTheme() *Theme {
	return &Theme{Palette: Palette{
		Background:  Color{0.11, 0.11, 0.12, 1},
		Surface:     Color{0.16, 0.16, 0.18, 1},
		Text:        Color{0.92, 0.92, 0.92, 1},
		Placeholder: Color{0.5, 0.5, 0.5, 1},
		Primary:     Color{0.38, 0.62, 0.98, 1},
		Success:     Color{0.2, 0.73, 0.41, 1},
		Danger:      Color{0.94, 0.33, 0.33, 1},
		Outline:     Color{0.35, 0.35, 0.38, 1},
	}}
}

// DefaultTheme returns the default (light) theme.
func DefaultTheme() *Theme {
	return LightTheme()
}

// Style is the renderer-independent appearance passed alongside the theme:
// the inherited defaults a widget falls back to when its description does
// not override them.
type Style struct {
	TextColor Color
}

// DefaultStyle derives a Style from a theme.
func DefaultStyle(theme *Theme) Style {
	return Style{TextColor: theme.Palette.Text}
}
