package widget

import (
	"github.com/rjkroege/aegis/render"
)

// Screen is the root of a widget tree. It has no box of its own and
// always reports the whole offered region as taken.
type Screen struct {
	children
}

var (
	_ Drawable  = (*Screen)(nil)
	_ Container = (*Screen)(nil)
)

// NewScreen returns an empty Screen.
func NewScreen() *Screen {
	return &Screen{}
}

// SetParent always fails: a Screen is the root.
func (s *Screen) SetParent(p Drawable) error {
	return ErrRootParent
}

func (s *Screen) Draw(offered Region, ctx *render.Context, f *render.Frame) (Region, error) {
	return drawChildren(s.children, offered, ctx, f)
}
