package widget

import (
	"errors"
	"regexp"
	"testing"

	"github.com/rjkroege/aegis/render"
)

func TestParseColor(t *testing.T) {
	for _, tc := range []struct {
		spec string
		want render.RGB
	}{
		{"red", render.RGB{1, 0, 0}},
		{"black", render.RGB{0, 0, 0}},
		{"#4287f5", render.RGB{0x42 / 255., 0x87 / 255., 0xf5 / 255.}},
		{"#32a852", render.RGB{0x32 / 255., 0xa8 / 255., 0x52 / 255.}},
		{"#5400C2", render.RGB{0x54 / 255., 0x00 / 255., 0xc2 / 255.}},
		{"#ffffff", render.RGB{1, 1, 1}},
		{"#000000", render.RGB{0, 0, 0}},
	} {
		t.Run(tc.spec, func(t *testing.T) {
			got, err := ParseColor(tc.spec)
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tc.spec, err)
			}
			if got != tc.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tc.spec, got, tc.want)
			}
		})
	}
}

func TestParseColorRejects(t *testing.T) {
	for _, spec := range []string{
		"",
		"Red",
		"BLACK",
		"blue",
		" red",
		"#",
		"#4287f",
		"#4287f5a",
		"4287f5",
		"#4287g5",
		"#+12345",
		"#-12345",
		"# 12345",
		"#0x1234",
		"#1_2345",
		"#12_345",
		"#ééé",
	} {
		t.Run(spec, func(t *testing.T) {
			_, err := ParseColor(spec)
			if !errors.Is(err, ErrBadColor) {
				t.Fatalf("ParseColor(%q) error = %v, want ErrBadColor", spec, err)
			}
			var ce *ColorError
			if !errors.As(err, &ce) || ce.Spec != spec {
				t.Errorf("ParseColor(%q) error %v does not carry the specifier", spec, err)
			}
		})
	}
}

var validColor = regexp.MustCompile(`^(red|black|#[0-9a-fA-F]{6})$`)

func FuzzParseColor(f *testing.F) {
	for _, s := range []string{"red", "black", "#4287f5", "#+12345", "#4287f", "", "#ZZZZZZ"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, spec string) {
		rgb, err := ParseColor(spec)
		if !validColor.MatchString(spec) {
			if err == nil {
				t.Fatalf("ParseColor(%q) = %v, want an error", spec, rgb)
			}
			return
		}
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", spec, err)
		}
		for _, c := range rgb {
			if c < 0 || c > 1 {
				t.Fatalf("ParseColor(%q) = %v, channel out of [0,1]", spec, rgb)
			}
		}
		again, _ := ParseColor(spec)
		if again != rgb {
			t.Fatalf("ParseColor(%q) is not deterministic: %v then %v", spec, rgb, again)
		}
	})
}
