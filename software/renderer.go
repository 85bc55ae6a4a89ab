// Package software is the CPU backend: it renders a sapling interface into
// an image.RGBA using the built-in bitmap font. It has no windowing or GPU
// dependencies, which makes it the backend of choice for headless rendering
// and tests.
package software

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/phanxgames/sapling"
)

// Renderer draws sapling primitives into an in-memory image. Layers clip by
// drawing into sub-images of the target, and translations accumulate into an
// offset applied to every primitive.
type Renderer struct {
	image  *image.RGBA
	target draw.Image
	face   font.Face

	layers []draw.Image
	stack  []sapling.Vec2
	offset sapling.Vec2
}

// New creates a renderer with a target of the given size in pixels.
func New(width, height int) *Renderer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Renderer{
		image:  img,
		target: img,
		face:   basicfont.Face7x13,
	}
}

// Image returns the target image. Valid until the next Clear.
func (r *Renderer) Image() *image.RGBA {
	return r.image
}

// Clear fills the whole target, resetting any leftover layer or translation
// state from an aborted traversal.
func (r *Renderer) Clear(c sapling.Color) {
	r.target = r.image
	r.layers = r.layers[:0]
	r.stack = r.stack[:0]
	r.offset = sapling.Vec2{}
	draw.Draw(r.image, r.image.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// DefaultFontSize returns the bitmap font's size.
func (r *Renderer) DefaultFontSize() float64 {
	return 13
}

// StartLayer redirects drawing into a clipped region of the target.
func (r *Renderer) StartLayer(clip sapling.Rect) {
	r.layers = append(r.layers, r.target)
	r.target = subImage(r.target, toImageRect(clip.Translate(r.offset)))
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

func toImageRect(b sapling.Rect) image.Rectangle {
	return image.Rect(int(b.X), int(b.Y), int(b.X+b.Width+0.5), int(b.Y+b.Height+0.5))
}

// subImage clips a drawing target to a rectangle, preserving coordinates.
func subImage(target draw.Image, rect image.Rectangle) draw.Image {
	type subImager interface {
		SubImage(image.Rectangle) image.Image
	}
	if s, ok := target.(subImager); ok {
		if sub, ok := s.SubImage(rect).(draw.Image); ok {
			return sub
		}
	}
	return target
}

// FillQuad fills a quad with its shadow, background, and border.
func (r *Renderer) FillQuad(quad sapling.Quad) {
	bounds := quad.Bounds.Translate(r.offset)
	radius := quad.BorderRadius
	if limit := min(bounds.Width, bounds.Height) / 2; radius > limit {
		radius = limit
	}

	if quad.ShadowColor.A > 0 {
		r.fillRounded(bounds.Translate(quad.ShadowOffset), radius, quad.ShadowColor)
	}
	if quad.Background.A > 0 {
		r.fillRounded(bounds, radius, quad.Background)
	}
	if quad.BorderWidth > 0 && quad.BorderColor.A > 0 {
		r.strokeRect(bounds, quad.BorderWidth, quad.BorderColor)
	}
}

// fillRounded fills a rectangle, masking out the corners beyond the radius.
func (r *Renderer) fillRounded(bounds sapling.Rect, radius float64, c sapling.Color) {
	rect := toImageRect(bounds)
	uniform := image.NewUniform(c.NRGBA())
	if radius <= 0 {
		draw.Draw(r.target, rect, uniform, image.Point{}, draw.Over)
		return
	}
	mask := roundedMask(rect, radius)
	draw.DrawMask(r.target, rect, uniform, image.Point{}, mask, rect.Min, draw.Over)
}

// roundedMask builds an alpha mask for a rounded rectangle, hard-edged: a
// pixel is opaque when its center lies inside the shape.
func roundedMask(rect image.Rectangle, radius float64) *image.Alpha {
	mask := image.NewAlpha(rect)
	w, h := float64(rect.Dx()), float64(rect.Dy())
	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		for px := rect.Min.X; px < rect.Max.X; px++ {
			x := float64(px-rect.Min.X) + 0.5
			y := float64(py-rect.Min.Y) + 0.5

			cx, cy := x, y
			switch {
			case x < radius && y < radius:
				cx, cy = radius, radius
			case x > w-radius && y < radius:
				cx, cy = w-radius, radius
			case x < radius && y > h-radius:
				cx, cy = radius, h-radius
			case x > w-radius && y > h-radius:
				cx, cy = w-radius, h-radius
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius {
				mask.SetAlpha(px, py, color.Alpha{A: 0xff})
			}
		}
	}
	return mask
}

// strokeRect draws a rectangular border as four edge strips. Corner rounding
// is not honored by the software backend.
func (r *Renderer) strokeRect(bounds sapling.Rect, width float64, c sapling.Color) {
	uniform := image.NewUniform(c.NRGBA())
	edges := []sapling.Rect{
		{X: bounds.X, Y: bounds.Y, Width: bounds.Width, Height: width},
		{X: bounds.X, Y: bounds.Y + bounds.Height - width, Width: bounds.Width, Height: width},
		{X: bounds.X, Y: bounds.Y, Width: width, Height: bounds.Height},
		{X: bounds.X + bounds.Width - width, Y: bounds.Y, Width: width, Height: bounds.Height},
	}
	for _, edge := range edges {
		draw.Draw(r.target, toImageRect(edge), uniform, image.Point{}, draw.Over)
	}
}

func (r *Renderer) lineHeight(t sapling.Text) float64 {
	if t.LineHeight > 0 {
		return t.LineHeight
	}
	m := r.face.Metrics()
	return float64((m.Ascent + m.Descent).Round())
}

func (r *Renderer) lineWidth(line string) float64 {
	return float64(font.MeasureString(r.face, line).Round())
}

// lines splits and wraps content for the given bounds.
func (r *Renderer) lines(t sapling.Text) []string {
	if t.Wrap == sapling.WrapWord && t.Bounds.Width > 0 {
		return r.wrapLines(t.Content, t.Bounds.Width)
	}
	return strings.Split(t.Content, "\n")
}

func (r *Renderer) wrapLines(content string, width float64) []string {
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
			if r.lineWidth(candidate) > width {
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

// MeasureText returns the size the text occupies when laid out within its
// bounds. The bitmap face has a single size; Text.Size is ignored.
func (r *Renderer) MeasureText(t sapling.Text) sapling.Size {
	if t.Content == "" {
		return sapling.Size{}
	}
	lines := r.lines(t)
	var width float64
	for _, line := range lines {
		if w := r.lineWidth(line); w > width {
			width = w
		}
	}
	return sapling.Size{Width: width, Height: r.lineHeight(t) * float64(len(lines))}
}

// FillText lays the text out within its bounds and draws it clipped.
func (r *Renderer) FillText(t sapling.Text, position sapling.Point, c sapling.Color, clip sapling.Rect) {
	if t.Content == "" || clip.Width <= 0 || clip.Height <= 0 {
		return
	}
	position = position.Add(r.offset)
	clip = clip.Translate(r.offset)

	lines := r.lines(t)
	lineHeight := r.lineHeight(t)
	height := lineHeight * float64(len(lines))
	ascent := float64(r.face.Metrics().Ascent.Round())

	y := position.Y
	switch t.AlignY {
	case sapling.AlignCenter:
		y += (t.Bounds.Height - height) / 2
	case sapling.AlignEnd:
		y += t.Bounds.Height - height
	}

	target := subImage(r.target, toImageRect(clip))
	drawer := font.Drawer{
		Dst:  target,
		Src:  image.NewUniform(c.NRGBA()),
		Face: r.face,
	}
	for _, line := range lines {
		x := position.X
		switch t.AlignX {
		case sapling.AlignCenter:
			x += (t.Bounds.Width - r.lineWidth(line)) / 2
		case sapling.AlignEnd:
			x += t.Bounds.Width - r.lineWidth(line)
		}
		drawer.Dot = fixed.P(int(x+0.5), int(y+ascent+0.5))
		drawer.DrawString(line)
		y += lineHeight
	}
}
