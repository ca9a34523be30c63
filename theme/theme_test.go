package theme

import (
	"testing"

	"github.com/rjkroege/aegis/render"
)

func TestSetDarkMode(t *testing.T) {
	defer SetDarkMode(false)

	if Current() != lightPalette {
		t.Fatalf("Current() = %v, want the light palette by default", Current())
	}
	if got, want := Current().Background, (render.RGB{0, 0, 1}); got != want {
		t.Errorf("light background = %v, want %v", got, want)
	}

	SetDarkMode(true)
	if Current() != darkPalette {
		t.Errorf("Current() = %v, want the dark palette", Current())
	}

	SetDarkMode(false)
	if Current() != lightPalette {
		t.Errorf("Current() = %v, want the light palette", Current())
	}
}
