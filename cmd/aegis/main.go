// Aegis shows a tree of boxes laid out top to bottom in a window.
//
// Usage:
//
//	aegis [-W WxH] [-f font] [-dark] [-scene file.toml] [-srv name]
//
// Without -scene a single purple box is shown. Typing q or Delete exits.
// With -srv the last drawn frame is served over 9P under name.
package main

import (
	"flag"
	"log"

	"github.com/rjkroege/aegis/draw"
	"github.com/rjkroege/aegis/layoutfs"
	"github.com/rjkroege/aegis/scene"
	"github.com/rjkroege/aegis/theme"
)

const defaultFont = "/lib/font/bit/lucsans/euro.8.font"

var (
	winsize   = flag.String("W", "1024x768", "Window Size (WidthxHeight)")
	fontflag  = flag.String("f", defaultFont, "Font")
	darkflag  = flag.Bool("dark", false, "Dark background")
	scenefile = flag.String("scene", "", "Scene file (TOML)")
	srvname   = flag.String("srv", "", "Serve the layout over 9P under this name")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("aegis: ")

	theme.SetDarkMode(*darkflag)

	s := scene.Default()
	if *scenefile != "" {
		var err error
		if s, err = scene.Load(*scenefile); err != nil {
			log.Fatalf("can't load scene: %v", err)
		}
	}

	var srv *layoutfs.Server
	if *srvname != "" {
		srv = layoutfs.New()
		if err := srv.Post(*srvname); err != nil {
			log.Fatalf("can't post %q: %v", *srvname, err)
		}
	}

	draw.Main(func(dev *draw.Device) {
		display, err := dev.NewDisplay(nil, *fontflag, "aegis", *winsize)
		if err != nil {
			log.Fatalf("can't open display: %v", err)
		}
		if err := display.Attach(draw.Refnone); err != nil {
			log.Fatalf("failed to attach to window: %v", err)
		}

		v := newViewer(display, s.Build(), srv)
		if err := v.redraw(); err != nil {
			log.Fatalf("can't draw: %v", err)
		}

		mousectl := display.InitMouse()
		keyboardctl := display.InitKeyboard()
		for {
			select {
			case <-mousectl.Resize:
				if err := display.Attach(draw.Refnone); err != nil {
					log.Fatalf("failed to attach to window: %v", err)
				}
				if err := v.redraw(); err != nil {
					log.Fatalf("can't draw: %v", err)
				}
			case <-mousectl.C:
			case r := <-keyboardctl.C:
				if quits(r) {
					return
				}
			}
		}
	})
}

// quits reports whether typing r closes the window.
func quits(r rune) bool {
	return r == 'q' || r == 0x7F
}
