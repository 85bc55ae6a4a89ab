// Package ebitengine is the GPU backend: it renders a sapling interface
// into an Ebitengine window and translates Ebitengine input into sapling
// events. Most applications only need [Run].
package ebitengine

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/phanxgames/sapling"
)

// whiteImage is the 1x1 white source for solid triangles, padded to 3x3 to
// avoid bleeding from texture filtering at the edges.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(image.White)
}

// Renderer draws sapling primitives onto an ebiten.Image. Layers are
// sub-images of the target, so clipping is handled by Ebitengine itself;
// translations accumulate into an offset applied to every primitive.
type Renderer struct {
	target *ebiten.Image
	layers []*ebiten.Image
	stack  []sapling.Vec2
	offset sapling.Vec2

	source *text.GoTextFaceSource // nil when using the bitmap fallback
	gox    text.Face
	size   float64

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderer creates a renderer using the built-in bitmap font.
func NewRenderer() *Renderer {
	return &Renderer{
		gox:  text.NewGoXFace(basicfont.Face7x13),
		size: 13,
	}
}

// NewRendererWithFont creates a renderer using a TrueType or OpenType font.
func NewRendererWithFont(fontData []byte, size float64) (*Renderer, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("sapling: failed to parse font data: %w", err)
	}
	if size <= 0 {
		size = 14
	}
	return &Renderer{source: source, size: size}, nil
}

// SetTarget points the renderer at the image to draw into. Call it at the
// start of every frame with the screen.
func (r *Renderer) SetTarget(target *ebiten.Image) {
	r.target = target
	r.layers = r.layers[:0]
	r.stack = r.stack[:0]
	r.offset = sapling.Vec2{}
}

func (r *Renderer) face(size float64) text.Face {
	if r.source == nil {
		return r.gox
	}
	if size <= 0 {
		size = r.size
	}
	return &text.GoTextFace{Source: r.source, Size: size}
}

func (r *Renderer) lineHeight(t sapling.Text, face text.Face) float64 {
	if t.LineHeight > 0 {
		return t.LineHeight
	}
	m := face.Metrics()
	return m.HAscent + m.HDescent
}

// Clear fills the whole target.
func (r *Renderer) Clear(c sapling.Color) {
	r.target.Fill(c.NRGBA())
}

// DefaultFontSize returns the configured font size.
func (r *Renderer) DefaultFontSize() float64 {
	return r.size
}

// StartLayer redirects drawing into a clipped region of the target.
func (r *Renderer) StartLayer(clip sapling.Rect) {
	r.layers = append(r.layers, r.target)
	rect := image.Rect(int(clip.X), int(clip.Y), int(clip.X+clip.Width), int(clip.Y+clip.Height))
	r.target = r.target.SubImage(rect).(*ebiten.Image)
}

// EndLayer restores the previous target.
func (r *Renderer) EndLayer() {
	if len(r.layers) == 0 {
		panic("sapling: EndLayer without StartLayer")
	}
	r.target = r.layers[len(r.layers)-1]
	r.layers = r.layers[:len(r.layers)-1]
}

// StartTranslation offsets subsequent primitives.
func (r *Renderer) StartTranslation(translation sapling.Vec2) {
	r.stack = append(r.stack, r.offset)
	r.offset = r.offset.Add(translation)
}

// EndTranslation removes the most recent translation.
func (r *Renderer) EndTranslation() {
	if len(r.stack) == 0 {
		panic("sapling: EndTranslation without StartTranslation")
	}
	r.offset = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

// FillQuad fills a quad with its shadow, background, and border.
func (r *Renderer) FillQuad(quad sapling.Quad) {
	bounds := quad.Bounds.Translate(r.offset)
	radius := quad.BorderRadius
	if limit := min(bounds.Width, bounds.Height) / 2; radius > limit {
		radius = limit
	}

	if quad.ShadowColor.A > 0 {
		r.fillPath(roundedRectPath(bounds.Translate(quad.ShadowOffset), radius), quad.ShadowColor)
	}
	if quad.Background.A > 0 {
		r.fillPath(roundedRectPath(bounds, radius), quad.Background)
	}
	if quad.BorderWidth > 0 && quad.BorderColor.A > 0 {
		r.strokePath(roundedRectPath(bounds, radius), quad.BorderColor, quad.BorderWidth)
	}
}

// roundedRectPath traces a rectangle with rounded corners. A zero radius
// yields a plain rectangle.
func roundedRectPath(b sapling.Rect, radius float64) *vector.Path {
	x0, y0 := float32(b.X), float32(b.Y)
	x1, y1 := float32(b.X+b.Width), float32(b.Y+b.Height)
	var path vector.Path
	if radius <= 0 {
		path.MoveTo(x0, y0)
		path.LineTo(x1, y0)
		path.LineTo(x1, y1)
		path.LineTo(x0, y1)
		path.Close()
		return &path
	}
	rad := float32(radius)
	path.MoveTo(x0+rad, y0)
	path.ArcTo(x1, y0, x1, y1, rad)
	path.ArcTo(x1, y1, x0, y1, rad)
	path.ArcTo(x0, y1, x0, y0, rad)
	path.ArcTo(x0, y0, x1, y0, rad)
	path.Close()
	return &path
}

func (r *Renderer) fillPath(path *vector.Path, c sapling.Color) {
	r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	r.drawTriangles(c)
}

func (r *Renderer) strokePath(path *vector.Path, c sapling.Color, width float64) {
	op := &vector.StrokeOptions{Width: float32(width)}
	r.vertices, r.indices = path.AppendVerticesAndIndicesForStroke(r.vertices[:0], r.indices[:0], op)
	r.drawTriangles(c)
}

func (r *Renderer) drawTriangles(c sapling.Color) {
	for i := range r.vertices {
		r.vertices[i].SrcX = 1
		r.vertices[i].SrcY = 1
		r.vertices[i].ColorR = float32(c.R)
		r.vertices[i].ColorG = float32(c.G)
		r.vertices[i].ColorB = float32(c.B)
		r.vertices[i].ColorA = float32(c.A)
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	}
	r.target.DrawTriangles(r.vertices, r.indices, whiteSubImage, op)
}

// FillText lays the text out within its bounds and draws it clipped.
func (r *Renderer) FillText(t sapling.Text, position sapling.Point, c sapling.Color, clip sapling.Rect) {
	if t.Content == "" || clip.Width <= 0 || clip.Height <= 0 {
		return
	}
	position = position.Add(r.offset)
	clip = clip.Translate(r.offset)

	face := r.face(t.Size)
	lineHeight := r.lineHeight(t, face)
	content := t.Content
	if t.Wrap == sapling.WrapWord && t.Bounds.Width > 0 {
		content = strings.Join(wrapLines(content, face, t.Bounds.Width), "\n")
	}
	_, height := text.Measure(content, face, lineHeight)

	op := &text.DrawOptions{}
	op.LineSpacing = lineHeight
	op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), float32(c.A))

	x := position.X
	switch t.AlignX {
	case sapling.AlignCenter:
		op.PrimaryAlign = text.AlignCenter
		x += t.Bounds.Width / 2
	case sapling.AlignEnd:
		op.PrimaryAlign = text.AlignEnd
		x += t.Bounds.Width
	}
	y := position.Y
	switch t.AlignY {
	case sapling.AlignCenter:
		y += (t.Bounds.Height - height) / 2
	case sapling.AlignEnd:
		y += t.Bounds.Height - height
	}
	op.GeoM.Translate(x, y)

	rect := image.Rect(int(clip.X), int(clip.Y), int(clip.X+clip.Width), int(clip.Y+clip.Height))
	target := r.target.SubImage(rect).(*ebiten.Image)
	text.Draw(target, content, face, op)
}

// MeasureText returns the size the text occupies when laid out within its
// bounds.
func (r *Renderer) MeasureText(t sapling.Text) sapling.Size {
	if t.Content == "" {
		return sapling.Size{}
	}
	face := r.face(t.Size)
	lineHeight := r.lineHeight(t, face)
	content := t.Content
	if t.Wrap == sapling.WrapWord && t.Bounds.Width > 0 {
		content = strings.Join(wrapLines(content, face, t.Bounds.Width), "\n")
	}
	w, h := text.Measure(content, face, lineHeight)
	return sapling.Size{Width: w, Height: h}
}

// wrapLines breaks content at word boundaries so no line measures wider than
// width. A single word wider than width gets a line of its own.
func wrapLines(content string, face text.Face, width float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(content, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if w, _ := text.Measure(candidate, face, 0); w > width {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
