package diagram

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"pool-diagram/internal/ball"
	"pool-diagram/internal/postprocess"
	"pool-diagram/internal/raster"
	"pool-diagram/internal/table"
	"pool-diagram/internal/units"
)

// Guide is a dashed aiming line between two table positions.
type Guide struct {
	From  units.Position
	To    units.Position
	Color *color.NRGBA // nil uses Style.Guide
}

// Options control the output raster.
type Options struct {
	PixelsPerInch float64 // zero means StandardPixelsPerInch, capped at MaxPixelsPerInch
	Supersample   int     // render at k times the size and downsample; <=1 disables
	Style         Style
}

// DefaultOptions renders at the standard resolution with the default style.
func DefaultOptions() Options {
	return Options{
		PixelsPerInch: StandardPixelsPerInch,
		Supersample:   1,
		Style:         DefaultStyle(),
	}
}

const (
	sightHalfInches   = 0.45
	dashInches        = 1.0
	gapInches         = 0.75
	guideWidthInches  = 0.2
	stripeHalfBand    = 0.55 // of the ball radius
	numberDiscRatio   = 0.5
	numberHeightRatio = 0.62
	outlineRatio      = 0.07
	minNumberRadiusPx = 6.0
)

// Resolution limits. MaxPixelsPerInch bounds the working resolution, that is
// PixelsPerInch times Supersample; on a 9ft table it gives a 5040x9040
// buffer. MaxRenderPixels bounds the buffer for oversized custom tables.
const (
	MaxPixelsPerInch = 80.0
	MaxSupersample   = 8
	MaxRenderPixels  = 1 << 26
)

// resolution returns the pixels per inch and supersampling factor Render
// uses for t. Out of range requests are clamped so the working buffer
// never exceeds MaxRenderPixels.
func (o Options) resolution(t *table.Spec) (ppi float64, ss int) {
	ppi = o.PixelsPerInch
	if !(ppi > 0) {
		ppi = StandardPixelsPerInch
	}
	ppi = math.Min(ppi, MaxPixelsPerInch)
	if n := bufferPixels(t, ppi); n > MaxRenderPixels {
		ppi *= math.Sqrt(MaxRenderPixels / n)
		for bufferPixels(t, ppi) > MaxRenderPixels {
			ppi *= 0.99
		}
	}

	base := NewLayout(t, ppi)
	ss = min(max(o.Supersample, 1), MaxSupersample)
	for ss > 1 {
		k := float64(ss)
		if ppi*k <= MaxPixelsPerInch && float64(base.Width)*k*float64(base.Height)*k <= MaxRenderPixels {
			break
		}
		ss--
	}
	return ppi, ss
}

// bufferPixels is an upper bound on the pixel count of a layout at ppi,
// computed in floating point so huge tables cannot overflow an int.
func bufferPixels(t *table.Spec, ppi float64) float64 {
	rail := 2 * t.RailWidth().Float64()
	w := (t.Width().Float64()+rail)*ppi + 1
	h := (t.Length().Float64()+rail)*ppi + 1
	return w * h
}

// Render draws the table and balls, back to front:
// frame and felt, pockets, diamond sights, guide lines, then balls in slice
// order so later balls cover earlier ones. The output depends only on its
// inputs. Resolution requests beyond MaxPixelsPerInch or MaxRenderPixels
// are clamped, so Render never fails.
func Render(t *table.Spec, balls []ball.Ball, guides []Guide, opts Options) *image.NRGBA {
	ppi, ss := opts.resolution(t)
	base := NewLayout(t, ppi)
	l := base
	if ss > 1 {
		l = base.Scaled(ss)
	}

	fb := raster.NewFrameBuffer(l.Width, l.Height)
	st := opts.Style

	drawFrame(fb, l, st)
	drawPockets(fb, l, st)
	drawSights(fb, l, st)
	for _, g := range guides {
		drawGuide(fb, l, st, g)
	}
	for _, b := range balls {
		drawBall(fb, l, st, b)
	}

	img := fb.Image()
	if ss > 1 {
		img = postprocess.Downsample(img, base.Width, base.Height)
	}
	return img
}

func drawFrame(fb *raster.FrameBuffer, l Layout, st Style) {
	fb.Fill(st.Background)
	raster.FillRect(fb, 0, 0, float64(l.Width), float64(l.Height), st.Rail)

	x0, y0, x1, y1 := l.Surface()
	cw := l.Inches(l.Spec.CushionWidth())
	raster.FillRect(fb, x0-cw, y0-cw, x1+cw, y1+cw, st.Cushion)
	raster.FillRect(fb, x0, y0, x1, y1, st.Felt)

	if st.FeltTexture != nil && st.FeltTileInches > 0 {
		r := image.Rect(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)))
		raster.TileTexture(fb, r, st.FeltTexture, st.FeltTileInches*l.PixelsPerInch)
	}

	a, b := l.Spec.HeadString()
	ax, ay := l.Point(a)
	bx, _ := l.Point(b)
	raster.FillRect(fb, ax, ay-0.5, bx, ay+0.5, st.HeadString)
}

func drawPockets(fb *raster.FrameBuffer, l Layout, st Style) {
	for _, p := range l.Spec.Pockets() {
		ox, oy := p.Outward()
		depth := p.Depth.Float64()
		cx, cy := l.PointF(p.Location.X.Float64()+ox*depth, p.Location.Y.Float64()+oy*depth)
		r := l.Diamonds(p.Width) / 2
		raster.FillCircle(fb, cx, cy, r, st.Pocket)
	}
}

// drawSights puts a glyph at every whole diamond that is not a pocket.
func drawSights(fb *raster.FrameBuffer, l Layout, st Style) {
	hw := sightHalfInches * l.PixelsPerInch
	off := l.Diamonds(l.Spec.SightOffset())
	for _, r := range table.Rails() {
		limit := l.Spec.RailRange(r)
		n := limit.Decimal().IntPart()
		for k := int64(1); k < n; k++ {
			mark := units.DiamondFromInt(k)
			nose := l.Spec.PointOnRail(r, mark)
			if isPocket(l.Spec, nose) {
				continue
			}
			x, y := l.Point(nose)
			dx, dy := r.Inward()
			// pixel y runs opposite to diamond y
			x -= float64(dx) * off
			y += float64(dy) * off
			raster.FillRhombus(fb, x, y, hw, hw, st.Sight)
		}
	}
}

func isPocket(t *table.Spec, p units.Position) bool {
	for _, pk := range t.Pockets() {
		if pk.Location.Equal(p) {
			return true
		}
	}
	return false
}

func drawGuide(fb *raster.FrameBuffer, l Layout, st Style, g Guide) {
	c := st.Guide
	if g.Color != nil {
		c = *g.Color
	}
	x0, y0 := l.Point(g.From)
	x1, y1 := l.Point(g.To)
	ppi := l.PixelsPerInch
	raster.DashedLine(fb, x0, y0, x1, y1, dashInches*ppi, gapInches*ppi, guideWidthInches*ppi, c)
}

func drawBall(fb *raster.FrameBuffer, l Layout, st Style, b ball.Ball) {
	cx, cy := l.Point(b.Position)
	r := l.Inches(b.Radius())
	inner := r
	if st.BallOutline.A > 0 {
		raster.FillCircle(fb, cx, cy, r, st.BallOutline)
		inner = r - math.Max(1, r*outlineRatio)
	}

	if b.Type.IsStripe() {
		raster.FillCircle(fb, cx, cy, inner, ball.Cue.Color())
		raster.FillCircleBand(fb, cx, cy, inner, r*stripeHalfBand, b.Color())
	} else {
		raster.FillCircle(fb, cx, cy, inner, b.Color())
	}

	if st.HideNumbers || b.Type == ball.Cue || r < minNumberRadiusPx {
		return
	}
	raster.FillCircle(fb, cx, cy, r*numberDiscRatio, st.NumberDisc)
	label := strconv.Itoa(b.Type.Number())
	raster.DrawLabel(fb, cx, cy, r*numberHeightRatio, label, st.NumberText)
}
