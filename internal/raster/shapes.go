package raster

import (
	"image/color"
	"math"
)

// All shapes take continuous pixel coordinates: pixel (x, y) covers
// [x, x+1) x [y, y+1) and its center is (x+0.5, y+0.5).
// Edges are anti-aliased with a one pixel coverage ramp centered on the
// true boundary, so a shape's centroid and extent are preserved to well
// under half a pixel.

// FillRect fills the axis-aligned rectangle [x0, x1) x [y0, y1) using exact
// area coverage at the edges.
func FillRect(fb *FrameBuffer, x0, y0, x1, y1 float64, c color.NRGBA) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	px0, py0, px1, py1, ok := fb.clip(x0, y0, x1, y1)
	if !ok {
		return
	}
	for py := py0; py <= py1; py++ {
		cy := overlap(float64(py), float64(py)+1, y0, y1)
		if cy <= 0 {
			continue
		}
		row := py * fb.Width
		for px := px0; px <= px1; px++ {
			cx := overlap(float64(px), float64(px)+1, x0, x1)
			fb.blend((row+px)*4, c, cx*cy)
		}
	}
}

// FillCircle fills a disc of radius r centered at (cx, cy).
func FillCircle(fb *FrameBuffer, cx, cy, r float64, c color.NRGBA) {
	FillCircleBand(fb, cx, cy, r, math.Inf(1), c)
}

// FillCircleBand fills the part of the disc within halfBand pixels of the
// horizontal line through its center. This is the stripe of a striped ball.
func FillCircleBand(fb *FrameBuffer, cx, cy, r, halfBand float64, c color.NRGBA) {
	if r <= 0 || halfBand <= 0 {
		return
	}
	px0, py0, px1, py1, ok := fb.clip(cx-r, cy-r, cx+r, cy+r)
	if !ok {
		return
	}
	for py := py0; py <= py1; py++ {
		dy := float64(py) + 0.5 - cy
		band := clamp01(halfBand - math.Abs(dy) + 0.5)
		if band <= 0 {
			continue
		}
		row := py * fb.Width
		for px := px0; px <= px1; px++ {
			dx := float64(px) + 0.5 - cx
			d := math.Sqrt(dx*dx + dy*dy)
			cov := clamp01(r - d + 0.5)
			if cov <= 0 {
				continue
			}
			fb.blend((row+px)*4, c, cov*band)
		}
	}
}

// FillRhombus fills a diamond-shaped glyph with half-diagonals hw and hh.
func FillRhombus(fb *FrameBuffer, cx, cy, hw, hh float64, c color.NRGBA) {
	if hw <= 0 || hh <= 0 {
		return
	}
	px0, py0, px1, py1, ok := fb.clip(cx-hw, cy-hh, cx+hw, cy+hh)
	if !ok {
		return
	}
	// distance from the center to an edge, used to turn the normalized
	// L1 norm into an approximate signed distance in pixels
	k := hw * hh / math.Hypot(hw, hh)
	for py := py0; py <= py1; py++ {
		dy := math.Abs(float64(py)+0.5-cy) / hh
		row := py * fb.Width
		for px := px0; px <= px1; px++ {
			dx := math.Abs(float64(px)+0.5-cx) / hw
			cov := clamp01((1-(dx+dy))*k + 0.5)
			fb.blend((row+px)*4, c, cov)
		}
	}
}

func overlap(a0, a1, b0, b1 float64) float64 {
	lo := math.Max(a0, b0)
	hi := math.Min(a1, b1)
	if hi <= lo {
		return 0
	}
	return hi - lo
}
