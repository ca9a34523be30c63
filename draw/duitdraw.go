//go:build duitdraw
// +build duitdraw

package draw

import (
	draw "github.com/ktye/duitdraw"
)

const (
	Refnone = draw.Refnone

	Black       = draw.Black
	Blue        = draw.Blue
	Notacolor   = draw.Notacolor
	Red         = draw.Red
	Transparent = draw.Transparent
	White       = draw.White
)

// RGB24 is a 24-bit pixel format.
var RGB24 = draw.RGB24

type (
	Color       = draw.Color
	drawDisplay = draw.Display
	drawImage   = draw.Image
	Keyboardctl = draw.Keyboardctl
	Mousectl    = draw.Mousectl
	Pix         = draw.Pix
)

var Init = draw.Init

// Main runs f on duitdraw's main thread. The window system needs to own
// the initial goroutine on some platforms.
func Main(f func(*Device)) {
	draw.Main(func(dev *draw.Device) {
		f(&Device{dev})
	})
}

type Device struct {
	dev *draw.Device
}

func (d *Device) NewDisplay(errch chan<- error, fontname, label, winsize string) (Display, error) {
	disp, err := d.dev.NewDisplay(errch, fontname, label, winsize)
	if err != nil {
		return nil, err
	}
	return &displayImpl{disp}, nil
}
