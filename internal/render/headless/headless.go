// Package headless provides in-memory implementations of the render
// interfaces so the game can run and be inspected without a window.
package headless

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"chosenoffset.com/pawnboard/internal/render"
)

func init() {
	if render.NewGeoM == nil {
		render.NewGeoM = func() render.GeoM { return &GeoM{SX: 1, SY: 1} }
	}
}

// Input is a scriptable render.InputManager.
type Input struct {
	X, Y      float64
	HasCursor bool
	Buttons   map[render.MouseButton]bool
	Keys      map[render.Key]bool
	JustKeys  map[render.Key]bool
}

// NewInput returns an input with the cursor available at (x, y).
func NewInput(x, y float64) *Input {
	return &Input{
		X:         x,
		Y:         y,
		HasCursor: true,
		Buttons:   make(map[render.MouseButton]bool),
		Keys:      make(map[render.Key]bool),
		JustKeys:  make(map[render.Key]bool),
	}
}

// Press holds the left button with the cursor at (x, y).
func (in *Input) Press(x, y float64) {
	in.MoveTo(x, y)
	in.Buttons[render.MouseButtonLeft] = true
}

// Release lets go of the left button.
func (in *Input) Release() {
	in.Buttons[render.MouseButtonLeft] = false
}

// MoveTo places the cursor inside the window.
func (in *Input) MoveTo(x, y float64) {
	in.X, in.Y = x, y
	in.HasCursor = true
}

// Leave makes the cursor unavailable.
func (in *Input) Leave() {
	in.HasCursor = false
}

// IsKeyPressed implements render.InputManager.
func (in *Input) IsKeyPressed(key render.Key) bool { return in.Keys[key] }

// IsKeyJustPressed implements render.InputManager.
func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.JustKeys[key] }

// CursorPosition implements render.InputManager.
func (in *Input) CursorPosition() (float64, float64, bool) {
	return in.X, in.Y, in.HasCursor
}

// IsMouseButtonPressed implements render.InputManager.
func (in *Input) IsMouseButtonPressed(button render.MouseButton) bool {
	return in.Buttons[button]
}

// Clock returns a fixed delta on every call.
type Clock struct {
	Step time.Duration
}

// DeltaTime implements render.Clock.
func (c Clock) DeltaTime() time.Duration { return c.Step }

// GeoM records translation and scale.
type GeoM struct {
	TX, TY float64
	SX, SY float64
}

// Translate implements render.GeoM.
func (g *GeoM) Translate(tx, ty float64) {
	g.TX += tx
	g.TY += ty
}

// Scale implements render.GeoM.
func (g *GeoM) Scale(sx, sy float64) {
	g.SX *= sx
	g.SY *= sy
	g.TX *= sx
	g.TY *= sy
}

// Reset implements render.GeoM.
func (g *GeoM) Reset() {
	*g = GeoM{SX: 1, SY: 1}
}

// DrawCall is one DrawImage call on an Image.
type DrawCall struct {
	Src  *Image
	GeoM GeoM
}

// Image is a render.Image that records what was drawn onto it.
type Image struct {
	Name  string
	W, H  int
	Fills []color.Color
	Draws []DrawCall
}

// NewImage creates a named image of the given size.
func NewImage(name string, w, h int) *Image {
	return &Image{Name: name, W: w, H: h}
}

func (i *Image) Bounds() image.Rectangle { return image.Rect(0, 0, i.W, i.H) }
func (i *Image) Size() (int, int)        { return i.W, i.H }
func (i *Image) Fill(clr color.Color)    { i.Fills = append(i.Fills, clr) }
func (i *Image) Clear()                  { i.Fills = append(i.Fills, color.Transparent) }
func (i *Image) Dispose()                {}

// SubImage implements render.Image.
func (i *Image) SubImage(r image.Rectangle) render.Image {
	return &Image{Name: fmt.Sprintf("%s%v", i.Name, r), W: r.Dx(), H: r.Dy()}
}

// DrawImage implements render.Image.
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	call := DrawCall{GeoM: GeoM{SX: 1, SY: 1}}
	call.Src, _ = src.(*Image)
	if opts != nil {
		if g, ok := opts.GeoM.(*GeoM); ok {
			call.GeoM = *g
		}
	}
	i.Draws = append(i.Draws, call)
}

// TextCall is one DrawText call.
type TextCall struct {
	Text string
	X, Y int
}

// Renderer is a render.Renderer that records text and outlines.
type Renderer struct {
	Texts []TextCall
	Rects int
}

// NewImage implements render.Renderer.
func (r *Renderer) NewImage(width, height int) render.Image {
	return NewImage("blank", width, height)
}

// NewImageFromImage implements render.Renderer.
func (r *Renderer) NewImageFromImage(src image.Image) render.Image {
	b := src.Bounds()
	return NewImage("uploaded", b.Dx(), b.Dy())
}

// StrokeRect implements render.Renderer.
func (r *Renderer) StrokeRect(dst render.Image, x, y, width, height, strokeWidth float32, clr color.Color) {
	r.Rects++
}

// DrawText implements render.Renderer.
func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.Texts = append(r.Texts, TextCall{Text: text, X: x, Y: y})
}

// MeasureText implements render.Renderer with the 7x13 bitmap font metrics.
func (r *Renderer) MeasureText(text string, scale float64) (int, int) {
	return int(float64(len(text)*7) * scale), int(13 * scale)
}

// Loader serves images by path from a map.
type Loader struct {
	Images map[string]*Image
}

// LoadImage implements render.ResourceLoader.
func (l *Loader) LoadImage(path string) (render.Image, error) {
	img, ok := l.Images[path]
	if !ok {
		return nil, fmt.Errorf("open %s: no such file", path)
	}
	return img, nil
}
