package widget

import (
	"fmt"

	"github.com/rjkroege/aegis/render"
)

// Rect is a filled box. It anchors itself at the top left of the region
// it is offered and lays its own children out inside the box.
type Rect struct {
	opts   BaseOptions
	parent Drawable
	children
}

var (
	_ Drawable  = (*Rect)(nil)
	_ Container = (*Rect)(nil)
)

// NewRect returns a box configured by opts. parent may be nil.
func NewRect(opts BaseOptions, parent Drawable) *Rect {
	return &Rect{
		opts:   opts,
		parent: parent,
	}
}

// Options returns the box configuration.
func (r *Rect) Options() BaseOptions { return r.opts }

// Parent returns the recorded parent, or nil.
func (r *Rect) Parent() Drawable { return r.parent }

func (r *Rect) SetParent(p Drawable) error {
	r.parent = p
	return nil
}

// Draw emits the box as one rectangle and then draws the children inside
// it. The taken region is the box itself, whatever the size of offered.
func (r *Rect) Draw(offered Region, ctx *render.Context, f *render.Frame) (Region, error) {
	o := r.opts
	topleft := offered.P1
	topright := Point{offered.P1.X + o.Width, offered.P1.Y}
	bottomleft := Point{offered.P1.X, offered.P1.Y + o.Height}
	bottomright := Point{offered.P1.X + o.Width, offered.P1.Y + o.Height}

	taken := Region{P1: topleft, P2: bottomright}

	spec := o.Color
	if spec == "" {
		spec = DefaultColor
	}
	color, err := ParseColor(spec)
	if err != nil {
		return taken, err
	}

	shape := []render.Vertex{
		vertex(topright),
		vertex(bottomright),
		vertex(bottomleft),
		vertex(topleft),
	}
	if err := f.Draw(shape, render.QuadIndices, render.Uniforms{
		Proj:     render.Projection(ctx.Size),
		ZIndex:   int32(o.ZIndex),
		UsrColor: color,
	}); err != nil {
		return taken, fmt.Errorf("widget: drawing box at %v: %w", taken, err)
	}

	return drawChildren(r.children, taken, ctx, f)
}

func vertex(p Point) render.Vertex {
	return render.Vertex{X: p.X, Y: p.Y}
}
