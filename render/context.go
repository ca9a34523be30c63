// Package render is the rectangle pipeline behind the widgets. A Context
// ties a display to the program that turns pixel-space quads into fills,
// and a Frame collects the fills of one pass and paints them in z order.
package render

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rjkroege/aegis/draw"
)

// RGB is a colour with channels in [0,1].
type RGB [3]float32

// Vertex is a corner in pixel coordinates, origin top left.
type Vertex struct {
	X, Y int
}

// QuadIndices splits a quad given as top-right, bottom-right,
// bottom-left, top-left into two triangles.
var QuadIndices = []uint8{0, 1, 3, 1, 2, 3}

// Uniforms are the per-draw inputs of the program.
type Uniforms struct {
	Proj     mgl32.Mat4
	ZIndex   int32
	UsrColor RGB
}

// Context is the drawing context for a frame: the surface, the program
// and the viewport. It is not modified while drawing.
type Context struct {
	Display draw.Display
	Program *Program
	Size    image.Point
}

// NewContext returns a Context drawing on d with a viewport of size.
func NewContext(d draw.Display, size image.Point) *Context {
	return &Context{
		Display: d,
		Program: new(Program),
		Size:    size,
	}
}

// Viewport is the pixel rectangle covered by the context.
func (ctx *Context) Viewport() image.Rectangle {
	return image.Rectangle{Max: ctx.Size}
}

// Projection maps pixel coordinates of a viewport of the given size into
// clip space. Depth is not used: column 2 is overwritten so that z
// ordering comes from the z_index uniform instead.
func Projection(size image.Point) mgl32.Mat4 {
	proj := mgl32.Ortho(0, float32(size.X), float32(size.Y), 0, 0, 0)
	proj.Set(2, 2, 1)
	proj.Set(3, 2, 1)
	return proj
}

// Program is the compiled rectangle program. The vertex stage applies
// proj and replaces depth with z_index; the fragment stage is a flat
// usr_color.
type Program struct{}

// Vertex runs the vertex stage on v.
func (p *Program) Vertex(v Vertex, u Uniforms) mgl32.Vec4 {
	res := u.Proj.Mul4x1(mgl32.Vec4{float32(v.X), float32(v.Y), 0, 1})
	return mgl32.Vec4{res.X(), res.Y(), float32(u.ZIndex), 1}
}

// Fragment runs the fragment stage.
func (p *Program) Fragment(u Uniforms) draw.Color {
	return draw.RGBA(channel(u.UsrColor[0]), channel(u.UsrColor[1]), channel(u.UsrColor[2]), 0xff)
}

func channel(c float32) uint8 {
	switch {
	case c <= 0 || c != c:
		return 0
	case c >= 1:
		return 0xff
	}
	return uint8(math.Round(float64(c) * 255))
}

// toViewport maps a clip space position back onto the pixel grid of a
// viewport of the given size.
func toViewport(clip mgl32.Vec4, size image.Point) image.Point {
	x := (float64(clip.X()) + 1) / 2 * float64(size.X)
	y := (1 - float64(clip.Y())) / 2 * float64(size.Y)
	return image.Pt(int(math.Round(x)), int(math.Round(y)))
}
