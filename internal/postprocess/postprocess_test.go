package postprocess

import (
	"image"
	"image/color"
	"testing"
)

var (
	red  = color.NRGBA{R: 0xff, A: 0xff}
	blue = color.NRGBA{B: 0xff, A: 0xff}
)

// marked returns a w x h transparent image with red at the top-left pixel
// and blue at the bottom-left one.
func marked(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(0, h-1, blue)
	return img
}

func TestRotateClockwise(t *testing.T) {
	out := RotateClockwise(marked(3, 5))
	if out.Bounds().Dx() != 5 || out.Bounds().Dy() != 3 {
		t.Fatalf("bounds = %v", out.Bounds())
	}
	// top-left goes to top-right, bottom-left to top-left
	if out.NRGBAAt(4, 0) != red {
		t.Errorf("red at %v", out.NRGBAAt(4, 0))
	}
	if out.NRGBAAt(0, 0) != blue {
		t.Errorf("blue at %v", out.NRGBAAt(0, 0))
	}
}

func TestRotate180AndFlip(t *testing.T) {
	img := marked(4, 6)
	r := Rotate180(img)
	if r.NRGBAAt(3, 5) != red || r.NRGBAAt(3, 0) != blue {
		t.Errorf("rotate180 corners = %v %v", r.NRGBAAt(3, 5), r.NRGBAAt(3, 0))
	}
	f := FlipHorizontal(img)
	if f.NRGBAAt(3, 0) != red || f.NRGBAAt(3, 5) != blue {
		t.Errorf("flip corners = %v %v", f.NRGBAAt(3, 0), f.NRGBAAt(3, 5))
	}
	if back := FlipHorizontal(f); back.NRGBAAt(0, 0) != red {
		t.Error("double flip is not the identity")
	}
}

func TestOrientation(t *testing.T) {
	img := marked(4, 6)
	tests := []struct {
		name      string
		w, h      int
		redX      int
		redY      int
		identical bool
	}{
		{"", 4, 6, 0, 0, true},
		{"portrait", 4, 6, 0, 0, true},
		{"portrait-foot", 4, 6, 3, 5, false},
		{"landscape", 6, 4, 5, 0, false},
		{"mirrored", 4, 6, 3, 0, false},
	}
	for _, tt := range tests {
		o, err := ParseOrientation(tt.name)
		if err != nil {
			t.Fatalf("%q: %v", tt.name, err)
		}
		out := o.Apply(img)
		if (out == img) != tt.identical {
			t.Errorf("%q: returned input = %v", tt.name, out == img)
		}
		if out.Bounds().Dx() != tt.w || out.Bounds().Dy() != tt.h {
			t.Errorf("%q: bounds = %v", tt.name, out.Bounds())
		}
		if out.NRGBAAt(tt.redX, tt.redY) != red {
			t.Errorf("%q: red corner not at (%d, %d)", tt.name, tt.redX, tt.redY)
		}
		if tt.name != "" && o.String() != tt.name {
			t.Errorf("String = %q, want %q", o, tt.name)
		}
	}
	if _, err := ParseOrientation("sideways"); err == nil {
		t.Error("expected error")
	}
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

// near allows for rounding in the resampling filter.
func near(a, b color.NRGBA) bool {
	d := func(x, y uint8) bool { return x-y <= 1 || y-x <= 1 }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestDownsample(t *testing.T) {
	green := color.NRGBA{G: 0xc0, A: 0xff}
	out := Downsample(solid(40, 80, green), 10, 20)
	if out.Bounds().Dx() != 10 || out.Bounds().Dy() != 20 {
		t.Fatalf("bounds = %v", out.Bounds())
	}
	if got := out.NRGBAAt(5, 10); !near(got, green) {
		t.Errorf("center = %v, want %v", got, green)
	}

	small := solid(4, 4, green)
	if Downsample(small, 8, 8) != small {
		t.Error("upscale request should return the input")
	}
}

func TestDownsampleKeepsEdgeColor(t *testing.T) {
	green := color.NRGBA{G: 0xc0, A: 0xff}
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 20; x < 40; x++ {
			img.SetNRGBA(x, y, green)
		}
	}
	out := Downsample(img, 10, 10)
	for x := 0; x < 10; x++ {
		c := out.NRGBAAt(x, 5)
		if c.A < 128 {
			continue
		}
		if c.R > 2 || c.B > 2 || c.G < 0xc0-3 {
			t.Errorf("column %d = %v, want green without a dark fringe", x, c)
		}
	}
}

func TestFit(t *testing.T) {
	green := color.NRGBA{G: 0xc0, A: 0xff}
	out := Fit(solid(50, 100, green), 40)
	if out.Bounds().Dx() != 40 || out.Bounds().Dy() != 40 {
		t.Fatalf("bounds = %v", out.Bounds())
	}
	// 20 x 40 centered: columns 10..29 are filled
	if !near(out.NRGBAAt(20, 20), green) {
		t.Errorf("center = %v", out.NRGBAAt(20, 20))
	}
	if out.NRGBAAt(2, 20).A != 0 || out.NRGBAAt(37, 20).A != 0 {
		t.Error("margins should be transparent")
	}

	out = Fit(solid(10, 6, green), 20)
	if out.NRGBAAt(5, 7) != green || out.NRGBAAt(4, 7).A != 0 {
		t.Errorf("small image not centered unscaled: %v %v", out.NRGBAAt(5, 7), out.NRGBAAt(4, 7))
	}
}
