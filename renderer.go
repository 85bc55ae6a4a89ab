package sapling

// Renderer is the capability surface the runtime requires from a rendering
// backend: clear a target, fill quads and text, and group primitives under
// clipping and translation. Concrete backends translate these calls into
// their own draw pipeline.
//
// The renderer is passed by reference through one full traversal at a time
// (layout, event dispatch, or draw) and must never be used reentrantly.
type Renderer interface {
	// Clear fills the entire target with a color, discarding prior content.
	Clear(color Color)

	// FillQuad fills an axis-aligned quad.
	FillQuad(quad Quad)

	// FillText shapes and fills text at the given position. The position is
	// the anchor that the text's alignment is resolved against. Glyphs are
	// clipped to clip.
	FillText(text Text, position Point, color Color, clip Rect)

	// MeasureText returns the size the text occupies when laid out within
	// text.Bounds.
	MeasureText(text Text) Size

	// DefaultFontSize returns the backend's default font size in pixels.
	DefaultFontSize() float64

	// StartLayer redirects subsequent primitives into a new layer clipped
	// to the given bounds, composited over the current one on EndLayer.
	StartLayer(clip Rect)

	// EndLayer composites the most recent layer.
	EndLayer()

	// StartTranslation offsets all subsequent primitives.
	StartTranslation(translation Vec2)

	// EndTranslation removes the most recent translation.
	EndTranslation()
}

// Quad is a filled axis-aligned rectangle with an optional rounded border
// and shadow.
type Quad struct {
	Bounds       Rect
	Background   Color
	BorderColor  Color
	BorderWidth  float64
	BorderRadius float64
	ShadowColor  Color
	ShadowOffset Vec2
}

// WrapMode selects how text breaks across lines.
type WrapMode uint8

const (
	// WrapNone renders text as a single line per explicit newline.
	WrapNone WrapMode = iota
	// WrapWord breaks lines at word boundaries to fit the bounds.
	WrapWord
)

// Text is a run of text to shape and fill within bounds.
type Text struct {
	Content    string
	Bounds     Size    // available space; zero width means unbounded
	Size       float64 // font size in pixels; 0 uses the renderer default
	LineHeight float64 // line height in pixels; 0 uses the font default
	AlignX     Alignment
	AlignY     Alignment
	Wrap       WrapMode
}
