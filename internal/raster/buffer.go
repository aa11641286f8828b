package raster

import (
	"image"
	"image/color"
)

// FrameBuffer holds the rendering target as a flat slice for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8 // NRGBA interleaved, len = W*H*4
}

// NewFrameBuffer allocates a transparent buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
	}
}

// Fill overwrites every pixel with c.
func (fb *FrameBuffer) Fill(c color.NRGBA) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = c.R
		fb.Color[i+1] = c.G
		fb.Color[i+2] = c.B
		fb.Color[i+3] = c.A
	}
}

// Image wraps the buffer without copying. Drawing through it writes into fb.
func (fb *FrameBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    fb.Color,
		Stride: fb.Width * 4,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
}

// At returns the pixel at (x, y).
func (fb *FrameBuffer) At(x, y int) color.NRGBA {
	i := (y*fb.Width + x) * 4
	return color.NRGBA{R: fb.Color[i], G: fb.Color[i+1], B: fb.Color[i+2], A: fb.Color[i+3]}
}

// blend composites c over the pixel at index i with the given coverage (0..1).
func (fb *FrameBuffer) blend(i int, c color.NRGBA, coverage float64) {
	if coverage <= 0 {
		return
	}
	a := float64(c.A) / 255 * coverage
	if a >= 1 {
		fb.Color[i] = c.R
		fb.Color[i+1] = c.G
		fb.Color[i+2] = c.B
		fb.Color[i+3] = 255
		return
	}
	da := float64(fb.Color[i+3]) / 255
	outA := a + da*(1-a)
	if outA <= 0 {
		return
	}
	wd := da * (1 - a)
	fb.Color[i] = clamp255((float64(c.R)*a + float64(fb.Color[i])*wd) / outA)
	fb.Color[i+1] = clamp255((float64(c.G)*a + float64(fb.Color[i+1])*wd) / outA)
	fb.Color[i+2] = clamp255((float64(c.B)*a + float64(fb.Color[i+2])*wd) / outA)
	fb.Color[i+3] = clamp255(outA * 255)
}

// clip converts a float bounding box into inclusive pixel bounds inside fb.
func (fb *FrameBuffer) clip(minX, minY, maxX, maxY float64) (x0, y0, x1, y1 int, ok bool) {
	x0 = int(minX) - 1
	y0 = int(minY) - 1
	x1 = int(maxX) + 1
	y1 = int(maxY) + 1
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= fb.Width {
		x1 = fb.Width - 1
	}
	if y1 >= fb.Height {
		y1 = fb.Height - 1
	}
	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
