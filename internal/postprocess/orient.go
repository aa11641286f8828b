package postprocess

import (
	"fmt"
	"image"
	"math"
)

// Orientation is how a finished portrait diagram is turned for output.
type Orientation int

const (
	Portrait     Orientation = iota // head rail at the bottom
	PortraitFoot                    // foot rail at the bottom
	Landscape                       // head rail on the left
	Mirrored                        // portrait, left and right rails swapped
)

var orientationNames = [...]string{"portrait", "portrait-foot", "landscape", "mirrored"}

func (o Orientation) String() string {
	if o < 0 || int(o) >= len(orientationNames) {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return orientationNames[o]
}

// ParseOrientation accepts an orientation name. Empty means Portrait.
func ParseOrientation(s string) (Orientation, error) {
	if s == "" {
		return Portrait, nil
	}
	for i, n := range orientationNames {
		if s == n {
			return Orientation(i), nil
		}
	}
	return Portrait, fmt.Errorf("postprocess: unknown orientation %q", s)
}

// Apply turns img from portrait into o. Portrait returns img itself.
func (o Orientation) Apply(img *image.NRGBA) *image.NRGBA {
	switch o {
	case PortraitFoot:
		return Rotate180(img)
	case Landscape:
		return RotateClockwise(img)
	case Mirrored:
		return FlipHorizontal(img)
	default:
		return img
	}
}

// RotateClockwise turns an image a quarter turn clockwise. A portrait
// diagram with the head rail at the bottom comes out landscape with the
// head rail on the left.
func RotateClockwise(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			di := dst.PixOffset(h-1-y, x)
			copy(dst.Pix[di:di+4], img.Pix[si:si+4])
		}
	}
	return dst
}

// Rotate180 turns an image upside down, putting the foot rail at the bottom.
func Rotate180(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			di := dst.PixOffset(w-1-x, h-1-y)
			copy(dst.Pix[di:di+4], img.Pix[si:si+4])
		}
	}
	return dst
}

// FlipHorizontal mirrors an image left-to-right.
func FlipHorizontal(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := img.PixOffset(b.Max.X-1-x, b.Min.Y+y)
			di := out.PixOffset(x, y)
			copy(out.Pix[di:di+4], img.Pix[si:si+4])
		}
	}
	return out
}

// Fit scales img to fit inside a size x size canvas, keeping its aspect
// ratio, and centers it on a transparent background. Images that already
// fit are centered without scaling.
func Fit(img *image.NRGBA, size int) *image.NRGBA {
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	canvas := image.NewNRGBA(image.Rect(0, 0, max(size, 0), max(size, 0)))
	if srcW == 0 || srcH == 0 || size <= 0 {
		return canvas
	}

	newW, newH := srcW, srcH
	scaled := img
	if scaleF := float64(size) / math.Max(float64(srcW), float64(srcH)); scaleF < 1 {
		newW = max(1, int(float64(srcW)*scaleF+0.5))
		newH = max(1, int(float64(srcH)*scaleF+0.5))
		scaled = Downsample(img, newW, newH)
	}

	// Center on canvas
	offX := (size - newW) / 2
	offY := (size - newH) / 2
	for y := 0; y < newH && offY+y < size; y++ {
		srcOff := scaled.PixOffset(scaled.Rect.Min.X, scaled.Rect.Min.Y+y)
		dstOff := canvas.PixOffset(offX, offY+y)
		n := min(newW, size-offX) * 4
		copy(canvas.Pix[dstOff:dstOff+n], scaled.Pix[srcOff:srcOff+n])
	}
	return canvas
}
