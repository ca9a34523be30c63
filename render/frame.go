package render

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"github.com/rjkroege/aegis/draw"
)

var (
	ErrBadIndices = errors.New("render: bad index buffer")
	ErrFinished   = errors.New("render: frame already finished")
)

// Op is a fill composed into a frame.
type Op struct {
	Z     int32
	R     image.Rectangle
	Color draw.Color
}

// Frame is one pass of drawing. Draw queues fills; Finish paints them,
// lowest z first, and flushes the display.
type Frame struct {
	ctx      *Context
	clear    draw.Color
	hasclear bool
	ops      []Op
	done     bool
}

// NewFrame starts a frame on ctx.
func (ctx *Context) NewFrame() *Frame {
	return &Frame{ctx: ctx}
}

// Clear sets the colour painted over the whole viewport before any fill.
func (f *Frame) Clear(c RGB) {
	f.clear = f.ctx.Program.Fragment(Uniforms{UsrColor: c})
	f.hasclear = true
}

// Draw runs vertices through the program and queues the covered area.
// indices are taken three at a time as triangles. The pipeline only
// rasterises axis-aligned coverage: the fill is the bounding box of the
// referenced vertices, clipped to the viewport.
func (f *Frame) Draw(vertices []Vertex, indices []uint8, u Uniforms) error {
	if f.done {
		return ErrFinished
	}
	if len(indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a whole number of triangles", ErrBadIndices, len(indices))
	}
	for _, i := range indices {
		if int(i) >= len(vertices) {
			return fmt.Errorf("%w: index %d out of range for %d vertices", ErrBadIndices, i, len(vertices))
		}
	}

	vp := f.ctx.Viewport()
	if vp.Empty() || len(indices) == 0 {
		return nil
	}

	p := f.ctx.Program
	var r image.Rectangle
	for n, i := range indices {
		pt := toViewport(p.Vertex(vertices[i], u), f.ctx.Size)
		if n == 0 {
			r = image.Rectangle{Min: pt, Max: pt}
			continue
		}
		r.Min.X = min(r.Min.X, pt.X)
		r.Min.Y = min(r.Min.Y, pt.Y)
		r.Max.X = max(r.Max.X, pt.X)
		r.Max.Y = max(r.Max.Y, pt.Y)
	}
	r = r.Intersect(vp)
	if r.Empty() {
		return nil
	}

	f.ops = append(f.ops, Op{
		Z:     u.ZIndex,
		R:     r,
		Color: p.Fragment(u),
	})
	return nil
}

// Ops returns the queued fills in paint order.
func (f *Frame) Ops() []Op {
	ops := append([]Op(nil), f.ops...)
	sort.SliceStable(ops, func(i, j int) bool {
		return ops[i].Z < ops[j].Z
	})
	return ops
}

// Finish paints the frame onto the screen image, with the viewport at
// the image's origin, and flushes. Equal z keeps submission order.
func (f *Frame) Finish() error {
	if f.done {
		return ErrFinished
	}
	f.done = true

	d := f.ctx.Display
	screen := d.ScreenImage()
	org := screen.R().Min

	srcs := make(map[draw.Color]draw.Image)
	defer func() {
		for _, src := range srcs {
			src.Free()
		}
	}()
	paint := func(r image.Rectangle, c draw.Color) error {
		src, ok := srcs[c]
		if !ok {
			var err error
			src, err = d.AllocImage(image.Rect(0, 0, 1, 1), screen.Pix(), true, c)
			if err != nil {
				return fmt.Errorf("render: can't allocate colour %#08x: %w", uint32(c), err)
			}
			srcs[c] = src
		}
		screen.Draw(r.Add(org), src, nil, image.Point{})
		return nil
	}

	if f.hasclear {
		if err := paint(f.ctx.Viewport(), f.clear); err != nil {
			return err
		}
	}
	for _, op := range f.Ops() {
		if err := paint(op.R, op.Color); err != nil {
			return err
		}
	}
	if err := d.Flush(); err != nil {
		return fmt.Errorf("render: flush: %w", err)
	}
	return nil
}
