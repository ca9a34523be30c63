package aegistest

import (
	"fmt"

	"github.com/rjkroege/aegis/draw"
)

func NiceColourName(num draw.Color) string {
	lookuptable := make(map[draw.Color]string)

	lookuptable[draw.Black] = "Black"
	lookuptable[draw.Blue] = "Blue"
	lookuptable[draw.Notacolor] = "Notacolor"
	lookuptable[draw.Red] = "Red"
	lookuptable[draw.Transparent] = "Transparent"
	lookuptable[draw.White] = "White"

	if s, ok := lookuptable[num]; ok {
		return s
	}
	return fmt.Sprintf("#%08x", uint32(num))
}
