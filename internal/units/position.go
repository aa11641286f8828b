package units

import (
	"fmt"
	"math"
)

// Position is a point on the playing surface in diamond coordinates.
//
// Top-down view with the head string at the bottom and the rack at the top.
// The bottom-left cushion corner is (0, 0); on a standard table the top-right
// one is (4, 8), the head string runs (0, 2)-(4, 2) and the center spot is (2, 4).
type Position struct {
	X Diamond `json:"x" yaml:"x"`
	Y Diamond `json:"y" yaml:"y"`
}

// Pos builds a position from two decimal literals. It panics on bad input and
// is meant for authoring fixed positions in code.
func Pos(x, y string) Position {
	return Position{X: MustDiamond(x), Y: MustDiamond(y)}
}

// ParsePosition parses two literals, returning ErrInvalidMeasurement on failure.
func ParsePosition(x, y string) (Position, error) {
	dx, err := ParseDiamond(x)
	if err != nil {
		return Position{}, err
	}
	dy, err := ParseDiamond(y)
	if err != nil {
		return Position{}, err
	}
	return Position{X: dx, Y: dy}, nil
}

// Offset moves p by (dx, dy).
func (p Position) Offset(dx, dy Diamond) Position {
	return Position{X: p.X.Add(dx), Y: p.Y.Add(dy)}
}

// Sub returns the displacement from q to p.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X.Sub(q.X), Y: p.Y.Sub(q.Y)}
}

func (p Position) Equal(q Position) bool {
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// Distance is the Euclidean distance between a and b in physical units.
func Distance(a, b Position, s Scale) Inches {
	return InchesFromFloat(DistanceFloat(a, b, s))
}

// DistanceFloat is Distance without the decimal round trip, for hot loops.
func DistanceFloat(a, b Position, s Scale) float64 {
	d := b.Sub(a)
	dx := ToPhysical(d.X, s).Float64()
	dy := ToPhysical(d.Y, s).Float64()
	return math.Hypot(dx, dy)
}
