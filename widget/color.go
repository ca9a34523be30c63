package widget

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rjkroege/aegis/render"
)

// ErrBadColor is wrapped by every colour parse failure.
var ErrBadColor = errors.New("bad colour")

// ColorError reports a colour specifier that could not be parsed.
type ColorError struct {
	Spec string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("widget: %v %q: want red, black or #RRGGBB", ErrBadColor, e.Spec)
}

func (e *ColorError) Unwrap() error { return ErrBadColor }

// DefaultColor is used by boxes that do not set a colour.
const DefaultColor = "black"

// ParseColor resolves a colour specifier: "red", "black" or "#RRGGBB".
func ParseColor(spec string) (render.RGB, error) {
	switch spec {
	case "red":
		return render.RGB{1, 0, 0}, nil
	case "black":
		return render.RGB{0, 0, 0}, nil
	}
	if len(spec) != 7 || spec[0] != '#' {
		return render.RGB{}, &ColorError{Spec: spec}
	}

	var rgb render.RGB
	for i := range rgb {
		pair := spec[1+2*i : 3+2*i]
		// ParseUint takes no sign or base prefix in base 16.
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return render.RGB{}, &ColorError{Spec: spec}
		}
		rgb[i] = float32(v) / 255
	}
	return rgb, nil
}
