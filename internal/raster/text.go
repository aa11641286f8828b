package raster

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawLabel draws s centered on (cx, cy) with the given cap height in pixels.
// Glyphs come from the fixed 7x13 bitmap face and are scaled with a
// bilinear filter, so output is identical run to run.
func DrawLabel(fb *FrameBuffer, cx, cy, height float64, s string, c color.NRGBA) {
	if s == "" || height < 1 {
		return
	}
	face := basicfont.Face7x13
	w := face.Advance * len(s)
	h := face.Ascent + face.Descent

	glyphs := image.NewNRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(s)

	scale := height / float64(h)
	dw := float64(w) * scale
	dst := image.Rect(
		int(cx-dw/2+0.5),
		int(cy-height/2+0.5),
		int(cx+dw/2+0.5),
		int(cy+height/2+0.5),
	)
	xdraw.BiLinear.Scale(fb.Image(), dst, glyphs, glyphs.Bounds(), xdraw.Over, nil)
}

func nrgba(r, g, b, a uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
