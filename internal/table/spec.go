package table

import (
	"fmt"
	"math"
	"sort"

	"pool-diagram/internal/units"
)

// Params are the physical measurements a Spec is built from.
type Params struct {
	Name          string
	DiamondLength units.Inches // distance between adjacent sights
	DiamondsWide  int          // sights spans across the short axis, 4 on standard tables
	DiamondsLong  int          // spans along the long axis, 8 on standard tables
	CushionWidth  units.Inches // nose to cushion back
	RailWidth     units.Inches // nose to outer edge of the wood
	SightOffset   units.Inches // nose to the center of a diamond sight
	CornerMouth   units.Inches
	SideMouth     units.Inches
	PocketDepth   units.Inches
}

// Spec is an immutable table profile. Share it by pointer.
type Spec struct {
	name          string
	diamondLength units.Inches
	wide, long    units.Diamond
	cushionWidth  units.Inches
	railWidth     units.Inches
	sightOffset   units.Diamond
	pockets       [6]Pocket
}

// New validates p and builds a Spec.
func New(p Params) (*Spec, error) {
	if !p.DiamondLength.IsPositive() {
		return nil, fmt.Errorf("table: %s: diamond length %s: %w", p.Name, p.DiamondLength, units.ErrInvalidMeasurement)
	}
	if p.DiamondsWide <= 0 || p.DiamondsLong <= 0 {
		return nil, fmt.Errorf("table: %s: diamond counts %dx%d: %w", p.Name, p.DiamondsWide, p.DiamondsLong, units.ErrInvalidMeasurement)
	}
	for _, m := range []struct {
		name string
		v    units.Inches
	}{
		{"cushion width", p.CushionWidth},
		{"rail width", p.RailWidth},
		{"corner mouth", p.CornerMouth},
		{"side mouth", p.SideMouth},
		{"pocket depth", p.PocketDepth},
	} {
		if !m.v.IsPositive() {
			return nil, fmt.Errorf("table: %s: %s %s: %w", p.Name, m.name, m.v, units.ErrInvalidMeasurement)
		}
	}
	if p.CushionWidth.Cmp(p.RailWidth) >= 0 {
		return nil, fmt.Errorf("table: %s: cushion %s wider than rail %s: %w", p.Name, p.CushionWidth, p.RailWidth, units.ErrInvalidMeasurement)
	}

	s := &Spec{
		name:          p.Name,
		diamondLength: p.DiamondLength,
		wide:          units.DiamondFromInt(int64(p.DiamondsWide)),
		long:          units.DiamondFromInt(int64(p.DiamondsLong)),
		cushionWidth:  p.CushionWidth,
		railWidth:     p.RailWidth,
	}
	s.sightOffset = units.FromPhysical(p.SightOffset, s)

	corner := units.FromPhysical(p.CornerMouth, s)
	side := units.FromPhysical(p.SideMouth, s)
	depth := units.FromPhysical(p.PocketDepth, s)
	mid := s.long.Scale(half)

	s.pockets = [6]Pocket{
		{ID: BottomLeft, Kind: Corner, Location: units.Position{X: units.Zero(), Y: units.Zero()}, Width: corner, Depth: depth},
		{ID: BottomRight, Kind: Corner, Location: units.Position{X: s.wide, Y: units.Zero()}, Width: corner, Depth: depth},
		{ID: RightSide, Kind: Side, Location: units.Position{X: s.wide, Y: mid}, Width: side, Depth: depth},
		{ID: TopRight, Kind: Corner, Location: units.Position{X: s.wide, Y: s.long}, Width: corner, Depth: depth},
		{ID: TopLeft, Kind: Corner, Location: units.Position{X: units.Zero(), Y: s.long}, Width: corner, Depth: depth},
		{ID: LeftSide, Kind: Side, Location: units.Position{X: units.Zero(), Y: mid}, Width: side, Depth: depth},
	}
	return s, nil
}

func (s *Spec) Name() string { return s.name }

// DiamondLength implements units.Scale.
func (s *Spec) DiamondLength() units.Inches { return s.diamondLength }

// DiamondsWide is the extent of the playing surface along x.
func (s *Spec) DiamondsWide() units.Diamond { return s.wide }

// DiamondsLong is the extent of the playing surface along y.
func (s *Spec) DiamondsLong() units.Diamond { return s.long }

// Width is the playing surface width between cushion noses.
func (s *Spec) Width() units.Inches { return units.ToPhysical(s.wide, s) }

// Length is the playing surface length between cushion noses.
func (s *Spec) Length() units.Inches { return units.ToPhysical(s.long, s) }

func (s *Spec) CushionWidth() units.Inches { return s.cushionWidth }
func (s *Spec) RailWidth() units.Inches { return s.railWidth }

// SightOffset is how far behind the nose line the diamond sights sit.
func (s *Spec) SightOffset() units.Diamond { return s.sightOffset }

// Pockets returns a copy of the six pockets in PocketID order.
func (s *Spec) Pockets() []Pocket {
	out := make([]Pocket, len(s.pockets))
	copy(out, s.pockets[:])
	return out
}

func (s *Spec) Pocket(id PocketID) Pocket {
	return s.pockets[id]
}

// RailRange is the largest diamond value along r; valid marks are [0, RailRange].
func (s *Spec) RailRange(r Rail) units.Diamond {
	if r.Long() {
		return s.long
	}
	return s.wide
}

// RailSegment returns the nose line of r as two end points.
func (s *Spec) RailSegment(r Rail) (units.Position, units.Position) {
	zero := units.Zero()
	switch r {
	case Left:
		return units.Position{X: zero, Y: zero}, units.Position{X: zero, Y: s.long}
	case Right:
		return units.Position{X: s.wide, Y: zero}, units.Position{X: s.wide, Y: s.long}
	case Top:
		return units.Position{X: zero, Y: s.long}, units.Position{X: s.wide, Y: s.long}
	default:
		return units.Position{X: zero, Y: zero}, units.Position{X: s.wide, Y: zero}
	}
}

// PointOnRail returns the nose-line point at the given mark along r.
// Long rails are measured from the head, short rails from the left.
func (s *Spec) PointOnRail(r Rail, along units.Diamond) units.Position {
	switch r {
	case Left:
		return units.Position{X: units.Zero(), Y: along}
	case Right:
		return units.Position{X: s.wide, Y: along}
	case Top:
		return units.Position{X: along, Y: s.long}
	default:
		return units.Position{X: along, Y: units.Zero()}
	}
}

// Contains reports whether p lies on the playing surface (nose lines included).
func (s *Spec) Contains(p units.Position) bool {
	return !p.X.IsNegative() && !p.Y.IsNegative() &&
		p.X.Cmp(s.wide) <= 0 && p.Y.Cmp(s.long) <= 0
}

// AngleToPocket returns the direction from p to the pocket location in
// degrees, counter-clockwise from the +x axis, in (-180, 180].
func (s *Spec) AngleToPocket(p units.Position, id PocketID) float64 {
	d := s.pockets[id].Location.Sub(p)
	dx := units.ToPhysical(d.X, s).Float64()
	dy := units.ToPhysical(d.Y, s).Float64()
	return math.Atan2(dy, dx) * 180 / math.Pi
}

var presets = map[string]func() *Spec{
	"gc4-9ft":    BrunswickGC4_9ft,
	"pro-8ft":    Pro8ft,
	"barbox-7ft": BarBox7ft,
}

// Preset looks up a named preset.
func Preset(name string) (*Spec, error) {
	f, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("table: unknown preset %q", name)
	}
	return f(), nil
}

// PresetNames lists the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
