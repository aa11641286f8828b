package table

import (
	"pool-diagram/internal/units"

	"github.com/shopspring/decimal"
)

var (
	quarter       = decimal.NewFromFloat(0.25)
	half          = decimal.NewFromFloat(0.5)
	threeQuarters = decimal.NewFromFloat(0.75)
)

// CenterSpot is the middle of the playing surface, (2, 4) on a standard table.
func (s *Spec) CenterSpot() units.Position {
	return units.Position{X: s.wide.Scale(half), Y: s.long.Scale(half)}
}

// HeadSpot sits on the head string, (2, 2) on a standard table.
func (s *Spec) HeadSpot() units.Position {
	return units.Position{X: s.wide.Scale(half), Y: s.long.Scale(quarter)}
}

// FootSpot is the rack spot, (2, 6) on a standard table.
func (s *Spec) FootSpot() units.Position {
	return units.Position{X: s.wide.Scale(half), Y: s.long.Scale(threeQuarters)}
}

// HeadString returns the end points of the head string.
func (s *Spec) HeadString() (units.Position, units.Position) {
	y := s.long.Scale(quarter)
	return units.Position{X: units.Zero(), Y: y}, units.Position{X: s.wide, Y: y}
}

// InKitchen reports whether p lies behind the head string.
func (s *Spec) InKitchen(p units.Position) bool {
	return s.Contains(p) && p.Y.Cmp(s.long.Scale(quarter)) <= 0
}

// CornerDiamond is the grid point of a pocket, e.g. (4, 8) for TopRight.
func (s *Spec) CornerDiamond(id PocketID) units.Position {
	return s.pockets[id].Location
}

// SideDiamond is the middle mark of a long rail. Short rails return their middle too.
func (s *Spec) SideDiamond(r Rail) units.Position {
	return s.PointOnRail(r, s.RailRange(r).Scale(half))
}

// Hanger returns where a ball of the given radius sits in the jaws of a
// pocket: frozen to both rails of a corner, or frozen to the long rail
// square in front of a side pocket. With a 1.125" ball on a 9ft table the
// top-right hanger is (3.91, 7.91).
func (s *Spec) Hanger(id PocketID, radius units.Inches) units.Position {
	r := units.FromPhysical(radius, s)
	p := s.pockets[id]
	var dx, dy units.Diamond
	switch id {
	case BottomLeft:
		dx, dy = r, r
	case BottomRight:
		dx, dy = r.Neg(), r
	case TopRight:
		dx, dy = r.Neg(), r.Neg()
	case TopLeft:
		dx, dy = r, r.Neg()
	case RightSide:
		dx, dy = r.Neg(), units.Zero()
	default:
		dx, dy = r, units.Zero()
	}
	return p.Location.Offset(dx, dy)
}
