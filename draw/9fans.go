//go:build !duitdraw
// +build !duitdraw

package draw

import (
	draw "9fans.net/go/draw"
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

func Main(f func(*Device)) {
	f(new(Device))
}

type Device struct{}

func (dev *Device) NewDisplay(errch chan<- error, fontname, label, winsize string) (Display, error) {
	d, err := Init(errch, fontname, label, winsize)
	if err != nil {
		return nil, err
	}
	return &displayImpl{d}, nil
}
