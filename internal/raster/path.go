package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// FillPolygon fills a closed polygon with anti-aliased edges.
func FillPolygon(fb *FrameBuffer, pts [][2]float64, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	z := vector.NewRasterizer(fb.Width, fb.Height)
	z.DrawOp = draw.Over
	z.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		z.LineTo(float32(p[0]), float32(p[1]))
	}
	z.ClosePath()
	z.Draw(fb.Image(), z.Bounds(), image.NewUniform(c), image.Point{})
}

// DashedLine draws a thick dashed segment from (x0, y0) to (x1, y1).
// Each dash is a quad offset by half the width along the segment normal.
func DashedLine(fb *FrameBuffer, x0, y0, x1, y1, dash, gap, width float64, c color.NRGBA) {
	dx := x1 - x0
	dy := y1 - y0
	length := math.Hypot(dx, dy)
	if length == 0 || dash <= 0 || width <= 0 {
		return
	}
	if gap <= 0 {
		dash = length
	}
	ux, uy := dx/length, dy/length
	nx, ny := uy, -ux
	hw := width / 2

	for s := 0.0; s < length; s += dash + gap {
		e := math.Min(s+dash, length)
		ax, ay := x0+ux*s, y0+uy*s
		bx, by := x0+ux*e, y0+uy*e
		FillPolygon(fb, [][2]float64{
			{ax + nx*hw, ay + ny*hw},
			{bx + nx*hw, by + ny*hw},
			{bx - nx*hw, by - ny*hw},
			{ax - nx*hw, ay - ny*hw},
		}, c)
	}
}
