package placement

import (
	"errors"
	"fmt"
	"strings"

	"pool-diagram/internal/ball"
	"pool-diagram/internal/table"
	"pool-diagram/internal/units"
)

// ErrOverlapDetected reports interpenetrating balls. It is advisory: nothing
// is moved.
var ErrOverlapDetected = errors.New("overlap detected")

// contactTolerance absorbs float error so frozen or touching balls pass.
const contactTolerance = 1e-9

// Overlap is one pair of interpenetrating balls, by index into the input.
type Overlap struct {
	A, B  int
	Depth units.Inches // sum of radii minus center distance
}

// Overlaps compares every pair of centers against the sum of their radii.
// Pairs are reported in index order.
func Overlaps(balls []ball.Ball, s units.Scale) []Overlap {
	var out []Overlap
	for i := 0; i < len(balls); i++ {
		for j := i + 1; j < len(balls); j++ {
			dist := units.DistanceFloat(balls[i].Position, balls[j].Position, s)
			reach := balls[i].Radius().Float64() + balls[j].Radius().Float64()
			if dist < reach-contactTolerance {
				out = append(out, Overlap{A: i, B: j, Depth: units.InchesFromFloat(reach - dist)})
			}
		}
	}
	return out
}

// CheckOverlaps returns an error wrapping ErrOverlapDetected listing every pair.
func CheckOverlaps(balls []ball.Ball, s units.Scale) error {
	ov := Overlaps(balls, s)
	if len(ov) == 0 {
		return nil
	}
	parts := make([]string, len(ov))
	for i, o := range ov {
		parts[i] = fmt.Sprintf("%s/%s by %s", balls[o.A].Type, balls[o.B].Type, o.Depth)
	}
	return fmt.Errorf("placement: %s: %w", strings.Join(parts, ", "), ErrOverlapDetected)
}

// OffTable returns the indices of balls whose circle crosses any nose line.
func OffTable(t *table.Spec, balls []ball.Ball) []int {
	var out []int
	for i, b := range balls {
		for _, r := range table.Rails() {
			if ClipsRail(t, r, b.Position, b.Radius()) {
				out = append(out, i)
				break
			}
		}
	}
	return out
}
