// Package aegistest contains utility functions that help with testing aegis.
package aegistest

import (
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/rjkroege/aegis/draw"
)

var _ = draw.Display((*mockDisplay)(nil))

// GettableDrawOps display implementations can provide a list of the
// executed draw ops.
type GettableDrawOps interface {
	DrawOps() []string
	Clear()

	// LiveImages is the number of allocated images not yet freed.
	LiveImages() int

	// SVGDrawOps writes the fills made on the screen image to w as an
	// SVG document framed around the rectangle of interest.
	SVGDrawOps(w io.Writer) error
}

// Option configures a mock display.
type Option func(*mockDisplay)

// WithAllocError makes every AllocImage call fail with err.
func WithAllocError(err error) Option {
	return func(d *mockDisplay) {
		d.allocerr = err
	}
}

// WithFlushError makes every Flush call fail with err.
func WithFlushError(err error) Option {
	return func(d *mockDisplay) {
		d.flusherr = err
	}
}

// mockDisplay implements draw.Display.
type mockDisplay struct {
	mu      sync.Mutex
	drawops []string
	live    int

	// fills on the screen image, kept for the SVG rendering.
	fills []fill

	screenimage draw.Image
	allocerr    error
	flusherr    error

	// rectofi is the rectangle of interest.
	rectofi image.Rectangle
}

type fill struct {
	r image.Rectangle
	c draw.Color
}

// NewDisplay returns a mock draw.Display with an 800x600 screen.
// Visualisations of the output are framed by rectofi.
func NewDisplay(rectofi image.Rectangle, opts ...Option) draw.Display {
	md := &mockDisplay{
		rectofi: rectofi,
	}
	md.screenimage = newimageimpl(md, "screen-800x600", draw.Notacolor, image.Rect(0, 0, 800, 600))
	for _, o := range opts {
		o(md)
	}
	return md
}

func (d *mockDisplay) ScreenImage() draw.Image {
	return d.screenimage
}

func (d *mockDisplay) InitKeyboard() *draw.Keyboardctl { return &draw.Keyboardctl{} }
func (d *mockDisplay) InitMouse() *draw.Mousectl       { return &draw.Mousectl{} }

func (d *mockDisplay) AllocImage(r image.Rectangle, pix draw.Pix, repl bool, val draw.Color) (draw.Image, error) {
	if d.allocerr != nil {
		return nil, d.allocerr
	}
	d.mu.Lock()
	d.live++
	d.mu.Unlock()
	return &mockImage{
		d:    d,
		r:    r,
		c:    val,
		repl: repl,
	}, nil
}

func (d *mockDisplay) Attach(ref int) error { return nil }
func (d *mockDisplay) Flush() error         { return d.flusherr }

func (d *mockDisplay) DrawOps() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.drawops...)
}

func (d *mockDisplay) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.drawops = nil
	d.fills = nil
}

func (d *mockDisplay) LiveImages() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.live
}

func (d *mockDisplay) SVGDrawOps(w io.Writer) error {
	d.mu.Lock()
	fills := append([]fill(nil), d.fills...)
	d.mu.Unlock()
	return svgfile(w, fills, d.rectofi)
}

var _ = draw.Image((*mockImage)(nil))

// mockImage implements draw.Image.
type mockImage struct {
	r    image.Rectangle
	d    *mockDisplay
	n    string
	c    draw.Color
	repl bool
}

// newimageimpl creates a new mockImage. Use Notacolor for the situation
// where the name of the image takes precedence.
func newimageimpl(d *mockDisplay, name string, c draw.Color, r image.Rectangle) draw.Image {
	return &mockImage{
		r: r,
		d: d,
		c: c,
		n: name,
	}
}

func (i *mockImage) Display() draw.Display { return i.d }
func (i *mockImage) Pix() draw.Pix         { return draw.RGB24 }
func (i *mockImage) R() image.Rectangle    { return i.r }

// Draw records the op. A replicated single colour source is a fill;
// anything else is recorded as a plain draw.
func (i *mockImage) Draw(r image.Rectangle, src, mask draw.Image, p1 image.Point) {
	msrc, _ := src.(*mockImage)

	var op string
	switch {
	case msrc != nil && msrc.repl && msrc.c != draw.Notacolor:
		op = fmt.Sprintf("fill %v %s", r, NiceColourName(msrc.c))
	case msrc != nil:
		op = fmt.Sprintf("%s <- draw r: %v src: %s p1: %v", i.N(), r, msrc.N(), p1)
	default:
		op = fmt.Sprintf("%s <- draw r: %v src: nil p1: %v", i.N(), r, p1)
	}

	i.d.mu.Lock()
	defer i.d.mu.Unlock()
	if i == i.d.screenimage && msrc != nil && msrc.c != draw.Notacolor {
		i.d.fills = append(i.d.fills, fill{r: r, c: msrc.c})
	}
	i.d.drawops = append(i.d.drawops, op)
}

func (i *mockImage) Free() error {
	i.d.mu.Lock()
	defer i.d.mu.Unlock()
	i.d.live--
	return nil
}

// N returns a nicename for the image colour.
func (i *mockImage) N() string {
	name := i.n
	if i.c != draw.Notacolor {
		name = fmt.Sprintf("%s-%v", NiceColourName(i.c), i.r)
	}

	if i.repl {
		name += ",tiled"
	}
	return name
}
