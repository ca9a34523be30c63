// Package scene builds widget trees from TOML descriptions.
//
// A scene is a list of boxes stacked on the screen; each box may hold
// boxes of its own:
//
//	[[rect]]
//	width = 200
//	height = 200
//
//	[[rect]]
//	width = 300
//	height = 300
//	color = "red"
//
//	  [[rect.rect]]
//	  width = 100
//	  height = 100
//	  color = "#32a852"
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/rjkroege/aegis/widget"
)

var ErrBadScene = errors.New("scene: invalid scene")

// Scene is the decoded form of a scene file.
type Scene struct {
	Rects []Node `toml:"rect"`
}

// Node describes one box and its children.
type Node struct {
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	ZIndex   uint8  `toml:"z_index"`
	Color    string `toml:"color"`
	Overflow bool   `toml:"overflow"`
	Rects    []Node `toml:"rect"`
}

// Decode reads a scene. Unknown keys are an error.
func Decode(r io.Reader) (*Scene, error) {
	var s Scene
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	if err := d.Decode(&s); err != nil {
		var sme *toml.StrictMissingError
		if errors.As(err, &sme) {
			return nil, fmt.Errorf("%w: %s", ErrBadScene, sme.String())
		}
		return nil, fmt.Errorf("scene: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads the scene file at path.
func Load(path string) (*Scene, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *Scene) validate() error {
	for i := range s.Rects {
		if err := s.Rects[i].validate(fmt.Sprintf("rect[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) validate(path string) error {
	if n.Width < 0 || n.Height < 0 {
		return fmt.Errorf("%w: %s: negative size %dx%d", ErrBadScene, path, n.Width, n.Height)
	}
	if n.Color != "" {
		if _, err := widget.ParseColor(n.Color); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrBadScene, path, err)
		}
	}
	for i := range n.Rects {
		if err := n.Rects[i].validate(fmt.Sprintf("%s.rect[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

// Build makes the widget tree for s. Every box records its container,
// the screen for top level boxes, as parent.
func (s *Scene) Build() *widget.Screen {
	screen := widget.NewScreen()
	for _, n := range s.Rects {
		screen.Put(n.build(screen))
	}
	return screen
}

func (n Node) build(parent widget.Drawable) *widget.Rect {
	r := widget.NewRect(widget.BaseOptions{
		Width:    n.Width,
		Height:   n.Height,
		ZIndex:   n.ZIndex,
		Color:    n.Color,
		Overflow: n.Overflow,
	}, parent)
	for _, c := range n.Rects {
		r.Put(c.build(r))
	}
	return r
}

// Default is the scene shown when no file is given: one purple box.
func Default() *Scene {
	return &Scene{
		Rects: []Node{{Width: 250, Height: 250, Color: "#5400c2"}},
	}
}
