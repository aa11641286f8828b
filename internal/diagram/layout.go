package diagram

import (
	"math"

	"pool-diagram/internal/table"
	"pool-diagram/internal/units"
)

// StandardPixelsPerInch renders a 9ft table at 630x1130.
const StandardPixelsPerInch = 10.0

// Layout maps table positions to pixel coordinates.
//
// The image spans the outer edge of the rails. The playing surface starts
// RailWidth in from the top-left corner; y is flipped so the head rail is
// at the bottom of the image and the foot rail at the top.
type Layout struct {
	Spec          *table.Spec
	PixelsPerInch float64
	Width         int
	Height        int
}

// NewLayout sizes the image to the table at the given resolution.
func NewLayout(t *table.Spec, pixelsPerInch float64) Layout {
	rail := 2 * t.RailWidth().Float64()
	w := (t.Width().Float64() + rail) * pixelsPerInch
	h := (t.Length().Float64() + rail) * pixelsPerInch
	return Layout{
		Spec:          t,
		PixelsPerInch: pixelsPerInch,
		Width:         int(math.Ceil(w - 1e-9)),
		Height:        int(math.Ceil(h - 1e-9)),
	}
}

// Scaled returns the same layout k times larger, keeping the pixel grid aligned.
func (l Layout) Scaled(k int) Layout {
	return Layout{
		Spec:          l.Spec,
		PixelsPerInch: l.PixelsPerInch * float64(k),
		Width:         l.Width * k,
		Height:        l.Height * k,
	}
}

// Border is the rail width in pixels, i.e. the offset of the nose lines.
func (l Layout) Border() float64 {
	return l.Spec.RailWidth().Float64() * l.PixelsPerInch
}

// Inches converts a physical length to pixels.
func (l Layout) Inches(in units.Inches) float64 {
	return in.Float64() * l.PixelsPerInch
}

// Diamonds converts a diamond span to pixels.
func (l Layout) Diamonds(d units.Diamond) float64 {
	return units.ToPixels(d, l.Spec, l.PixelsPerInch)
}

// Point maps a position to continuous pixel coordinates.
func (l Layout) Point(p units.Position) (x, y float64) {
	b := l.Border()
	x = b + l.Diamonds(p.X)
	y = b + l.Diamonds(l.Spec.DiamondsLong().Sub(p.Y))
	return x, y
}

// PointF maps fractional diamond coordinates, for offsets that need floats
// such as the diagonal behind a corner pocket.
func (l Layout) PointF(x, y float64) (px, py float64) {
	dl := l.Spec.DiamondLength().Float64() * l.PixelsPerInch
	b := l.Border()
	return b + x*dl, b + (l.Spec.DiamondsLong().Float64()-y)*dl
}

// Surface returns the playing surface rectangle in pixels.
func (l Layout) Surface() (x0, y0, x1, y1 float64) {
	b := l.Border()
	return b, b, b + l.Inches(l.Spec.Width()), b + l.Inches(l.Spec.Length())
}
