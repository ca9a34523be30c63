package widget

import (
	"github.com/rjkroege/aegis/render"
)

// drawChildren lays children out top down inside offered and draws them.
// Each child is offered what is left below the children before it; the
// x range and the bottom edge stay those of offered. It returns offered:
// what the children took is not folded into the container's footprint.
//
// The top edge advances by the absolute bottom of each taken region, not
// by its height. That stacks correctly only when offered starts at y = 0.
func drawChildren(children []Drawable, offered Region, ctx *render.Context, f *render.Frame) (Region, error) {
	available := offered
	for _, c := range children {
		taken, err := c.Draw(available, ctx, f)
		if err != nil {
			return offered, err
		}
		available.P1.Y += taken.P2.Y
	}
	return offered, nil
}

// children is the child list shared by the containers.
type children []Drawable

func (c *children) Put(child Drawable) {
	*c = append(*c, child)
}
