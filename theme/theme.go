// Package theme holds the colours the viewer paints behind the widget tree.
package theme

import (
	"github.com/rjkroege/aegis/render"
)

// Palette is the set of colours drawn outside the widget tree.
type Palette struct {
	// Background clears the viewport before each frame.
	Background render.RGB
}

var current = lightPalette

var lightPalette = Palette{
	Background: render.RGB{0, 0, 1},
}

var darkPalette = Palette{
	Background: render.RGB{0x22 / 255., 0x22 / 255., 0x22 / 255.},
}

// SetDarkMode selects between the light and dark palettes.
func SetDarkMode(enabled bool) {
	if enabled {
		current = darkPalette
	} else {
		current = lightPalette
	}
}

// Current returns the active colour palette.
func Current() Palette { return current }
