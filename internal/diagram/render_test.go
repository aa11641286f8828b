package diagram

import (
	"bytes"
	"image/color"
	"math"
	"testing"

	"pool-diagram/internal/ball"
	"pool-diagram/internal/table"
	"pool-diagram/internal/units"
)

var (
	black = color.NRGBA{A: 0xff}
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func TestLayoutStandardTable(t *testing.T) {
	l := NewLayout(table.BrunswickGC4_9ft(), StandardPixelsPerInch)
	if l.Width != 630 || l.Height != 1130 {
		t.Fatalf("size = %dx%d, want 630x1130", l.Width, l.Height)
	}
	x, y := l.Point(l.Spec.CenterSpot())
	if x != 315 || y != 565 {
		t.Errorf("center spot at (%v, %v), want (315, 565)", x, y)
	}
	x, y = l.Point(units.Pos("0", "0"))
	if x != 65 || y != 1065 {
		t.Errorf("head-left corner at (%v, %v), want (65, 1065)", x, y)
	}
	x, y = l.Point(units.Pos("4", "8"))
	if x != 565 || y != 65 {
		t.Errorf("foot-right corner at (%v, %v), want (565, 65)", x, y)
	}

	s := l.Scaled(4)
	if s.Width != 2520 || s.Height != 4520 {
		t.Errorf("scaled size = %dx%d", s.Width, s.Height)
	}
	x, y = s.Point(l.Spec.CenterSpot())
	if x != 1260 || y != 2260 {
		t.Errorf("scaled center at (%v, %v)", x, y)
	}
}

func TestRenderSize(t *testing.T) {
	for _, name := range table.PresetNames() {
		spec, _ := table.Preset(name)
		img := Render(spec, nil, nil, DefaultOptions())
		l := NewLayout(spec, StandardPixelsPerInch)
		if img.Bounds().Dx() != l.Width || img.Bounds().Dy() != l.Height {
			t.Errorf("%s: image %v, layout %dx%d", name, img.Bounds(), l.Width, l.Height)
		}
	}
}

// plainStyle draws only a black felt so white ball coverage can be read
// straight from the red channel.
func plainStyle() Style {
	return Style{Felt: black, HideNumbers: true}
}

func TestBallCentroidAndRadius(t *testing.T) {
	spec := table.BrunswickGC4_9ft()
	positions := []units.Position{
		spec.CenterSpot(),
		units.Pos("1.3", "2.7"),
		units.Pos("0.5", "7.25"),
	}
	for _, p := range positions {
		b := ball.New(ball.One, p)
		b.Spec.Color = &white
		opts := Options{PixelsPerInch: StandardPixelsPerInch, Style: plainStyle()}
		img := Render(spec, []ball.Ball{b}, nil, opts)

		l := NewLayout(spec, StandardPixelsPerInch)
		wantX, wantY := l.Point(p)
		wantR := l.Inches(b.Radius())

		var sum, sx, sy float64
		for y := int(wantY) - 20; y <= int(wantY)+20; y++ {
			for x := int(wantX) - 20; x <= int(wantX)+20; x++ {
				cov := float64(img.NRGBAAt(x, y).R) / 255
				sum += cov
				sx += cov * (float64(x) + 0.5)
				sy += cov * (float64(y) + 0.5)
			}
		}
		if sum == 0 {
			t.Fatalf("%s: ball not drawn", p)
		}
		gotX, gotY := sx/sum, sy/sum
		gotR := math.Sqrt(sum / math.Pi)
		if math.Abs(gotX-wantX) > 0.5 || math.Abs(gotY-wantY) > 0.5 {
			t.Errorf("%s: centroid (%.3f, %.3f), want (%.3f, %.3f)", p, gotX, gotY, wantX, wantY)
		}
		if math.Abs(gotR-wantR) > 0.5 {
			t.Errorf("%s: radius %.3f, want %.3f", p, gotR, wantR)
		}
	}
}

func TestLaterBallsDrawOnTop(t *testing.T) {
	spec := table.BrunswickGC4_9ft()
	first := ball.New(ball.Two, units.Pos("2", "4"))
	second := ball.New(ball.Three, units.Pos("2.05", "4"))
	opts := DefaultOptions()
	opts.Style.HideNumbers = true
	img := Render(spec, []ball.Ball{first, second}, nil, opts)

	l := NewLayout(spec, StandardPixelsPerInch)
	x, y := l.Point(second.Position)
	got := img.NRGBAAt(int(x), int(y))
	if got != ball.Three.Color() {
		t.Errorf("pixel at second ball = %v, want %v", got, ball.Three.Color())
	}

	x, y = l.Point(first.Position)
	got = img.NRGBAAt(int(x)-8, int(y))
	if got != ball.Two.Color() {
		t.Errorf("uncovered part of first ball = %v, want %v", got, ball.Two.Color())
	}

	img = Render(spec, []ball.Ball{second, first}, nil, opts)
	x, y = l.Point(second.Position)
	if got := img.NRGBAAt(int(x), int(y)); got != ball.Two.Color() {
		t.Errorf("reversed order: pixel = %v, want %v", got, ball.Two.Color())
	}
}

func TestLaterBallWinsEveryOverlappingPixel(t *testing.T) {
	spec := table.BrunswickGC4_9ft()
	first := ball.New(ball.Two, units.Pos("2", "4"))
	second := ball.New(ball.Three, units.Pos("2.1", "4.05"))
	opts := DefaultOptions()
	opts.Supersample = 1

	both := Render(spec, []ball.Ball{first, second}, nil, opts)
	onlyFirst := Render(spec, []ball.Ball{first}, nil, opts)
	onlySecond := Render(spec, []ball.Ball{second}, nil, opts)

	l := NewLayout(spec, StandardPixelsPerInch)
	r := l.Inches(ball.StandardRadius)
	x1, y1 := l.Point(first.Position)
	x2, y2 := l.Point(second.Position)

	shared, covered := 0, 0
	for y := int(y1 - 2*r); y <= int(y1+2*r); y++ {
		for x := int(x1 - 2*r); x <= int(x2+2*r); x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			d1 := math.Hypot(px-x1, py-y1)
			d2 := math.Hypot(px-x2, py-y2)
			switch {
			case d2 <= r-1:
				if d1 <= r {
					shared++
				}
				if got, want := both.NRGBAAt(x, y), onlySecond.NRGBAAt(x, y); got != want {
					t.Fatalf("pixel (%d, %d) = %v, want the later ball's %v", x, y, got, want)
				}
			case d1 <= r-1 && d2 >= r+1:
				covered++
				if got, want := both.NRGBAAt(x, y), onlyFirst.NRGBAAt(x, y); got != want {
					t.Fatalf("pixel (%d, %d) = %v, want the first ball's %v", x, y, got, want)
				}
			}
		}
	}
	if shared == 0 || covered == 0 {
		t.Fatalf("balls do not overlap as intended: shared %d, uncovered %d", shared, covered)
	}
}

func TestResolutionLimits(t *testing.T) {
	spec := table.BrunswickGC4_9ft()
	huge, err := table.New(table.Params{
		Name:          "stadium",
		DiamondLength: units.MustInches("1200"),
		DiamondsWide:  4,
		DiamondsLong:  8,
		CushionWidth:  units.MustInches("2"),
		RailWidth:     units.MustInches("6.5"),
		SightOffset:   units.MustInches("3.6875"),
		CornerMouth:   units.MustInches("4.5"),
		SideMouth:     units.MustInches("5"),
		PocketDepth:   units.MustInches("2"),
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		spec    *table.Spec
		opts    Options
		wantPPI float64
		wantSS  int
	}{
		{"default", spec, Options{}, StandardPixelsPerInch, 1},
		{"nan", spec, Options{PixelsPerInch: math.NaN()}, StandardPixelsPerInch, 1},
		{"huge ppi", spec, Options{PixelsPerInch: 1e5}, MaxPixelsPerInch, 1},
		{"inf ppi", spec, Options{PixelsPerInch: math.Inf(1), Supersample: 4}, MaxPixelsPerInch, 1},
		{"product", spec, Options{PixelsPerInch: 30, Supersample: 4}, 30, 2},
		{"huge supersample", spec, Options{PixelsPerInch: 5, Supersample: 1000}, 5, MaxSupersample},
	}
	for _, tt := range tests {
		ppi, ss := tt.opts.resolution(tt.spec)
		if ppi != tt.wantPPI || ss != tt.wantSS {
			t.Errorf("%s: resolution = %v x%d, want %v x%d", tt.name, ppi, ss, tt.wantPPI, tt.wantSS)
		}
	}

	ppi, ss := Options{PixelsPerInch: 10, Supersample: 4}.resolution(huge)
	l := NewLayout(huge, ppi).Scaled(ss)
	if n := float64(l.Width) * float64(l.Height); n > MaxRenderPixels || ppi <= 0 {
		t.Errorf("oversized table: %v ppi x%d gives %dx%d", ppi, ss, l.Width, l.Height)
	}
}

func TestRenderClampsResolution(t *testing.T) {
	spec := table.BarBox7ft()
	img := Render(spec, nil, nil, Options{PixelsPerInch: 1e5, Supersample: 3, Style: DefaultStyle()})
	l := NewLayout(spec, MaxPixelsPerInch)
	if img.Bounds().Dx() != l.Width || img.Bounds().Dy() != l.Height {
		t.Errorf("image %v, want %dx%d", img.Bounds(), l.Width, l.Height)
	}
}

func TestStripeKeepsWhiteCaps(t *testing.T) {
	spec := table.BrunswickGC4_9ft()
	b := ball.New(ball.Eleven, spec.CenterSpot())
	opts := DefaultOptions()
	opts.Style.HideNumbers = true
	img := Render(spec, []ball.Ball{b}, nil, opts)

	l := NewLayout(spec, StandardPixelsPerInch)
	x, y := l.Point(b.Position)
	if got := img.NRGBAAt(int(x), int(y)); got != ball.Eleven.Color() {
		t.Errorf("band = %v, want %v", got, ball.Eleven.Color())
	}
	// 9 px above center is outside the band but inside the ball
	if got := img.NRGBAAt(int(x), int(y)-9); got != ball.Cue.Color() {
		t.Errorf("cap = %v, want %v", got, ball.Cue.Color())
	}
}

func TestNumbersDrawn(t *testing.T) {
	spec := table.BrunswickGC4_9ft()
	b := ball.New(ball.Eight, spec.CenterSpot())
	with := Render(spec, []ball.Ball{b}, nil, DefaultOptions())
	opts := DefaultOptions()
	opts.Style.HideNumbers = true
	without := Render(spec, []ball.Ball{b}, nil, opts)
	if bytes.Equal(with.Pix, without.Pix) {
		t.Fatal("number disc and label not drawn")
	}
}

func TestRenderDeterministic(t *testing.T) {
	spec := table.BrunswickGC4_9ft()
	balls := []ball.Ball{
		ball.New(ball.Cue, spec.HeadSpot()),
		ball.New(ball.Nine, spec.FootSpot()),
		ball.New(ball.Six, spec.Hanger(table.TopRight, ball.StandardRadius)),
	}
	guides := []Guide{{From: spec.HeadSpot(), To: spec.FootSpot()}}
	for _, ss := range []int{1, 3} {
		opts := DefaultOptions()
		opts.Supersample = ss
		a := Render(spec, balls, guides, opts)
		b := Render(spec, balls, guides, opts)
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Errorf("supersample %d: renders differ", ss)
		}
		if a.Bounds().Dx() != 630 || a.Bounds().Dy() != 1130 {
			t.Errorf("supersample %d: bounds %v", ss, a.Bounds())
		}
	}
}

func TestFeltAndSights(t *testing.T) {
	spec := table.BrunswickGC4_9ft()
	st := DefaultStyle()
	img := Render(spec, nil, nil, Options{Style: st})

	if got := img.NRGBAAt(200, 300); got != st.Felt {
		t.Errorf("felt = %v, want %v", got, st.Felt)
	}
	if got := img.NRGBAAt(2, 2); got != st.Rail {
		t.Errorf("rail = %v, want %v", got, st.Rail)
	}

	// first sight on the head rail, left of the side pocket line
	l := NewLayout(spec, StandardPixelsPerInch)
	x, y := l.Point(units.Pos("1", "0"))
	y += l.Diamonds(spec.SightOffset())
	if got := img.NRGBAAt(int(x), int(y)); got != st.Sight {
		t.Errorf("sight = %v, want %v", got, st.Sight)
	}

	// no sight where the side pocket sits
	x, y = l.Point(units.Pos("0", "4"))
	x -= l.Diamonds(spec.SightOffset())
	if got := img.NRGBAAt(int(x), int(y)); got == st.Sight {
		t.Error("sight drawn over the side pocket")
	}
}

func TestGuideDrawn(t *testing.T) {
	spec := table.BrunswickGC4_9ft()
	st := plainStyle()
	st.Guide = white
	g := Guide{From: units.Pos("2", "1"), To: units.Pos("2", "7")}
	img := Render(spec, nil, []Guide{g}, Options{Style: st})

	l := NewLayout(spec, StandardPixelsPerInch)
	x, y := l.Point(g.From)
	// the first dash starts at From and runs a full inch
	if got := img.NRGBAAt(int(x), int(y)-5); got.R == 0 {
		t.Errorf("guide missing at dash: %v", got)
	}
	// the gap after the first dash
	if got := img.NRGBAAt(int(x), int(y)-14); got.R != 0 {
		t.Errorf("guide drawn in gap: %v", got)
	}
}

func TestStyleOverride(t *testing.T) {
	st := DefaultStyle()
	err := st.Override(map[string]string{
		"felt":  "#336699",
		"guide": "ff000080",
	})
	if err != nil {
		t.Fatal(err)
	}
	if st.Felt != (color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff}) {
		t.Errorf("felt = %v", st.Felt)
	}
	if st.Guide != (color.NRGBA{R: 0xff, A: 0x80}) {
		t.Errorf("guide = %v", st.Guide)
	}

	if err := st.Override(map[string]string{"chalk": "#ffffff"}); err == nil {
		t.Error("expected unknown key error")
	}
	if err := st.Override(map[string]string{"felt": "#12345"}); err == nil {
		t.Error("expected bad hex error")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#000000", color.NRGBA{A: 0xff}, false},
		{"FFFFFF", white, false},
		{" #0a0b0c0d ", color.NRGBA{R: 0x0a, G: 0x0b, B: 0x0c, A: 0x0d}, false},
		{"#zzzzzz", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
