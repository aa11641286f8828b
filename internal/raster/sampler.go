package raster

import (
	"image"
	"math"
)

// SampleTexture performs bilinear filtering with UV wrapping. u and v are
// in tile units: 1.0 is one full texture width or height. Texel centers sit
// at half-texel offsets and neighbors wrap around the edges, so tiles join
// without a seam.
func SampleTexture(tex *image.NRGBA, u, v float64) (r, g, b, a uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()

	fx := wrap(u)*float64(w) - 0.5
	fy := wrap(v)*float64(h) - 0.5
	x0f := math.Floor(fx)
	y0f := math.Floor(fy)
	dx := fx - x0f
	dy := fy - y0f

	x0 := mod(int(x0f), w)
	y0 := mod(int(y0f), h)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h

	i00 := tex.PixOffset(tex.Rect.Min.X+x0, tex.Rect.Min.Y+y0)
	i10 := tex.PixOffset(tex.Rect.Min.X+x1, tex.Rect.Min.Y+y0)
	i01 := tex.PixOffset(tex.Rect.Min.X+x0, tex.Rect.Min.Y+y1)
	i11 := tex.PixOffset(tex.Rect.Min.X+x1, tex.Rect.Min.Y+y1)

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	var out [4]uint8
	for c := 0; c < 4; c++ {
		f := float64(tex.Pix[i00+c])*w00 + float64(tex.Pix[i10+c])*w10 +
			float64(tex.Pix[i01+c])*w01 + float64(tex.Pix[i11+c])*w11
		out[c] = clamp255(f)
	}
	return out[0], out[1], out[2], out[3]
}

func wrap(t float64) float64 { return t - math.Floor(t) }

func mod(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// TileTexture covers the pixel rectangle r with tex, repeating it every
// tileSize pixels. Texels are composited over what is already there.
func TileTexture(fb *FrameBuffer, r image.Rectangle, tex *image.NRGBA, tileSize float64) {
	if tex == nil || tex.Rect.Dx() == 0 || tex.Rect.Dy() == 0 || tileSize <= 0 {
		return
	}
	r = r.Intersect(image.Rect(0, 0, fb.Width, fb.Height))
	inv := 1 / tileSize
	for y := r.Min.Y; y < r.Max.Y; y++ {
		v := (float64(y-r.Min.Y) + 0.5) * inv
		row := y * fb.Width
		for x := r.Min.X; x < r.Max.X; x++ {
			u := (float64(x-r.Min.X) + 0.5) * inv
			cr, cg, cb, ca := SampleTexture(tex, u, v)
			if ca == 0 {
				continue
			}
			fb.blend((row+x)*4, nrgba(cr, cg, cb, ca), 1)
		}
	}
}
