package main

import (
	"github.com/rjkroege/aegis/draw"
	"github.com/rjkroege/aegis/layoutfs"
	"github.com/rjkroege/aegis/render"
	"github.com/rjkroege/aegis/theme"
	"github.com/rjkroege/aegis/widget"
)

// viewer draws a widget tree over the whole window.
type viewer struct {
	display draw.Display
	root    widget.Drawable
	srv     *layoutfs.Server // may be nil
}

func newViewer(d draw.Display, root widget.Drawable, srv *layoutfs.Server) *viewer {
	return &viewer{display: d, root: root, srv: srv}
}

// redraw lays out and paints one frame at the current window size.
func (v *viewer) redraw() error {
	size := v.display.ScreenImage().R().Size()
	ctx := render.NewContext(v.display, size)
	f := ctx.NewFrame()
	f.Clear(theme.Current().Background)

	offered := widget.Region{P2: widget.Point{X: size.X, Y: size.Y}}
	if _, err := v.root.Draw(offered, ctx, f); err != nil {
		return err
	}
	if err := f.Finish(); err != nil {
		return err
	}
	if v.srv != nil {
		v.srv.Publish(size, f.Ops())
	}
	return nil
}
