package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces a supersampled diagram to w x h with CatmullRom
// filtering. Requests that would not shrink img return it unchanged.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	if b := img.Bounds(); b.Dx() <= w && b.Dy() <= h {
		return img
	}
	// x/image/draw premultiplies NRGBA sources, so transparent margins
	// do not darken the rail edges.
	acc := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(acc, acc.Bounds(), img, img.Bounds(), draw.Src, nil)
	return unpremultiply(acc)
}

// unpremultiply converts an origin-anchored RGBA image to NRGBA. Filter
// overshoot that leaves a channel above alpha is clamped.
func unpremultiply(src *image.RGBA) *image.NRGBA {
	out := image.NewNRGBA(src.Rect)
	for i := 0; i+3 < len(src.Pix); i += 4 {
		a := src.Pix[i+3]
		out.Pix[i+3] = a
		if a == 0 {
			continue
		}
		k := 255 / float64(a)
		for c := 0; c < 3; c++ {
			out.Pix[i+c] = clamp8(float64(src.Pix[i+c]) * k)
		}
	}
	return out
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
