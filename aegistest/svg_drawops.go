package aegistest

import (
	"fmt"
	"html/template"
	"image"
	"io"

	"github.com/rjkroege/aegis/draw"
)

var tmpl = template.Must(template.New("svgout").Parse(finalfiletemplate))

const finalfiletemplate = `<svg viewBox="{{.ViewBox.Min.X}} {{.ViewBox.Min.Y}} {{.ViewBox.Dx}} {{.ViewBox.Dy}}" xmlns="http://www.w3.org/2000/svg">
<rect x="{{.Box.Min.X}}" y="{{.Box.Min.Y}}" width="{{.Box.Dx}}" height="{{.Box.Dy}}" fill="none" stroke="black"/>
{{- range .Fills}}
<rect x="{{.R.Min.X}}" y="{{.R.Min.Y}}" width="{{.R.Dx}}" height="{{.R.Dy}}" fill="{{.Fill}}" fill-opacity="{{.Opacity}}"><title>{{.Title}}</title></rect>
{{- end}}
</svg>
`

type Fillargs struct {
	R       image.Rectangle
	Fill    string
	Opacity string
	Title   string
}

type Finalfileargs struct {
	// Becomes the viewBox property of the generated SVG.
	ViewBox image.Rectangle

	// The rectangle of interest, outlined.
	Box image.Rectangle

	Fills []Fillargs
}

const padding = 40 // edge padding

// svgfile writes the fills to w in paint order so that later fills
// cover earlier ones, as they do on screen.
func svgfile(w io.Writer, fills []fill, rectofi image.Rectangle) error {
	args := Finalfileargs{
		ViewBox: rectofi.Inset(-padding),
		Box:     rectofi,
		Fills:   make([]Fillargs, 0, len(fills)),
	}
	for _, f := range fills {
		args.Fills = append(args.Fills, Fillargs{
			R:       f.r,
			Fill:    HtmlColour(f.c),
			Opacity: fmt.Sprintf("%.3f", float64(uint32(f.c)&0xff)/255),
			Title:   fmt.Sprintf("fill %v %s", f.r, NiceColourName(f.c)),
		})
	}
	return tmpl.Execute(w, args)
}

// HtmlColour returns the CSS form of c without its alpha.
func HtmlColour(c draw.Color) string {
	return fmt.Sprintf("#%06x", uint32(c)>>8)
}
