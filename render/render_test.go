package render

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rjkroege/aegis/aegistest"
	"github.com/rjkroege/aegis/draw"
)

func quad(r image.Rectangle) []Vertex {
	return []Vertex{
		{r.Max.X, r.Min.Y},
		{r.Max.X, r.Max.Y},
		{r.Min.X, r.Max.Y},
		{r.Min.X, r.Min.Y},
	}
}

func TestProjectionRoundTrip(t *testing.T) {
	p := new(Program)
	for _, size := range []image.Point{{800, 600}, {1024, 768}, {250, 250}, {1, 1}} {
		u := Uniforms{Proj: Projection(size)}
		for _, v := range []Vertex{{0, 0}, {size.X, size.Y}, {size.X / 3, size.Y / 7}, {size.X, 0}} {
			got := toViewport(p.Vertex(v, u), size)
			if want := image.Pt(v.X, v.Y); got != want {
				t.Errorf("size %v: vertex %v maps to %v, want %v", size, v, got, want)
			}
		}
	}
}

func TestProjectionColumnTwo(t *testing.T) {
	proj := Projection(image.Pt(800, 600))
	if got := proj.At(2, 2); got != 1 {
		t.Errorf("proj[2][2] = %v, want 1", got)
	}
	if got := proj.At(3, 2); got != 1 {
		t.Errorf("proj[2][3] = %v, want 1", got)
	}
}

func TestVertexStageDepth(t *testing.T) {
	clip := new(Program).Vertex(Vertex{10, 10}, Uniforms{Proj: Projection(image.Pt(100, 100)), ZIndex: 3})
	if clip.Z() != 3 || clip.W() != 1 {
		t.Errorf("vertex stage gave z=%v w=%v, want z=3 w=1", clip.Z(), clip.W())
	}
}

func TestFragment(t *testing.T) {
	p := new(Program)
	for _, tc := range []struct {
		in   RGB
		want draw.Color
	}{
		{RGB{0, 0, 0}, draw.Black},
		{RGB{1, 0, 0}, draw.Red},
		{RGB{0x42 / 255., 0x87 / 255., 0xf5 / 255.}, 0x4287f5ff},
		{RGB{-1, 2, 0.5}, 0x00ff80ff},
	} {
		if got := p.Fragment(Uniforms{UsrColor: tc.in}); got != tc.want {
			t.Errorf("Fragment(%v) = %#08x, want %#08x", tc.in, uint32(got), uint32(tc.want))
		}
	}
}

func TestFrameFinishPaintsInZOrder(t *testing.T) {
	display := aegistest.NewDisplay(image.Rect(0, 0, 800, 600))
	ctx := NewContext(display, image.Pt(800, 600))
	proj := Projection(ctx.Size)

	f := ctx.NewFrame()
	f.Clear(RGB{0, 0, 1})
	for _, d := range []struct {
		r image.Rectangle
		z int32
		c RGB
	}{
		{image.Rect(0, 0, 200, 200), 2, RGB{1, 0, 0}},
		{image.Rect(0, 200, 300, 500), 0, RGB{0, 0, 0}},
		{image.Rect(10, 10, 50, 50), 2, RGB{0, 0, 0}},
		{image.Rect(700, 500, 900, 700), 1, RGB{1, 0, 0}},
	} {
		if err := f.Draw(quad(d.r), QuadIndices, Uniforms{Proj: proj, ZIndex: d.z, UsrColor: d.c}); err != nil {
			t.Fatalf("Draw(%v): %v", d.r, err)
		}
	}
	if err := f.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	want := []string{
		"fill (0,0)-(800,600) Blue",
		"fill (0,200)-(300,500) Black",
		"fill (700,500)-(800,600) Red",
		"fill (0,0)-(200,200) Red",
		"fill (10,10)-(50,50) Black",
	}
	gdo := display.(aegistest.GettableDrawOps)
	if diff := cmp.Diff(want, gdo.DrawOps()); diff != "" {
		t.Errorf("draw ops mismatch (-want +got):\n%s", diff)
	}
	if got := gdo.LiveImages(); got != 0 {
		t.Errorf("%d colour images left allocated after Finish", got)
	}

	if err := f.Finish(); !errors.Is(err, ErrFinished) {
		t.Errorf("second Finish error = %v, want ErrFinished", err)
	}
	if err := f.Draw(quad(image.Rect(0, 0, 1, 1)), QuadIndices, Uniforms{Proj: proj}); !errors.Is(err, ErrFinished) {
		t.Errorf("Draw after Finish error = %v, want ErrFinished", err)
	}
}

func TestFrameDrawSkipsInvisible(t *testing.T) {
	display := aegistest.NewDisplay(image.Rect(0, 0, 800, 600))
	for _, tc := range []struct {
		name string
		size image.Point
		r    image.Rectangle
	}{
		{"zero size quad", image.Pt(800, 600), image.Rect(20, 20, 20, 20)},
		{"outside viewport", image.Pt(800, 600), image.Rect(900, 0, 1000, 100)},
		{"empty viewport", image.Point{}, image.Rect(0, 0, 100, 100)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctx := NewContext(display, tc.size)
			f := ctx.NewFrame()
			if err := f.Draw(quad(tc.r), QuadIndices, Uniforms{Proj: Projection(tc.size)}); err != nil {
				t.Fatalf("Draw: %v", err)
			}
			if ops := f.Ops(); len(ops) != 0 {
				t.Errorf("Ops() = %v, want none", ops)
			}
		})
	}
}

func TestFrameDrawBadIndices(t *testing.T) {
	ctx := NewContext(aegistest.NewDisplay(image.Rect(0, 0, 800, 600)), image.Pt(800, 600))
	for _, tc := range []struct {
		name    string
		indices []uint8
	}{
		{"partial triangle", []uint8{0, 1, 3, 1}},
		{"out of range", []uint8{0, 1, 4}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := ctx.NewFrame()
			err := f.Draw(quad(image.Rect(0, 0, 10, 10)), tc.indices, Uniforms{Proj: Projection(ctx.Size)})
			if !errors.Is(err, ErrBadIndices) {
				t.Errorf("Draw error = %v, want ErrBadIndices", err)
			}
		})
	}
}

func TestFrameFinishBackendErrors(t *testing.T) {
	allocerr := errors.New("image allocation failed")
	flusherr := errors.New("display hung up")
	for _, tc := range []struct {
		name string
		opt  aegistest.Option
		want error
	}{
		{"alloc", aegistest.WithAllocError(allocerr), allocerr},
		{"flush", aegistest.WithFlushError(flusherr), flusherr},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctx := NewContext(aegistest.NewDisplay(image.Rect(0, 0, 800, 600), tc.opt), image.Pt(800, 600))
			f := ctx.NewFrame()
			if err := f.Draw(quad(image.Rect(0, 0, 10, 10)), QuadIndices, Uniforms{Proj: Projection(ctx.Size)}); err != nil {
				t.Fatalf("Draw: %v", err)
			}
			if err := f.Finish(); !errors.Is(err, tc.want) {
				t.Errorf("Finish error = %v, want %v", err, tc.want)
			}
		})
	}
}
