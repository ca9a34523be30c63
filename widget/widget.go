// Package widget is a retained-mode box layout. Widgets form a tree
// rooted at a Screen; each frame the tree is walked top down, every box
// emits one rectangle and siblings are stacked vertically.
package widget

import (
	"errors"

	"github.com/rjkroege/aegis/render"
)

// ErrRootParent is returned when something tries to give a Screen a
// parent. The root of a tree has none.
var ErrRootParent = errors.New("widget: cannot set a parent for the Screen")

// Drawable is a node of the widget tree.
type Drawable interface {
	// SetParent records p as the parent. The reference is informational:
	// p is not owned and nothing in layout or drawing reads it.
	SetParent(p Drawable) error

	// Draw renders the node into f within offered and returns the region
	// it took.
	Draw(offered Region, ctx *render.Context, f *render.Frame) (Region, error)
}

// Container is a node that owns children. Put appends child; children
// are laid out and drawn in the order they were put.
type Container interface {
	Put(child Drawable)
}

// BaseOptions configures a box.
type BaseOptions struct {
	Width  int
	Height int
	ZIndex uint8

	// Color is a specifier for ParseColor. Empty means DefaultColor.
	Color string

	// Overflow is reserved for clipping and does not affect layout.
	Overflow bool
}
