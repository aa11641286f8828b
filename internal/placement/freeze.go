package placement

import (
	"errors"
	"fmt"

	"pool-diagram/internal/table"
	"pool-diagram/internal/units"
)

// ErrConstraintUnsatisfiable means no ball position satisfies the request.
var ErrConstraintUnsatisfiable = errors.New("constraint unsatisfiable")

// FreezeToRail returns the center of a ball of the given radius whose edge
// touches rail r at the mark along. The center is offset from the nose line
// by exactly one radius along the rail's inward normal.
//
// along must lie in [0, RailRange(r)], and the ball must fit between the
// perpendicular cushions and across the table.
func FreezeToRail(t *table.Spec, r table.Rail, along units.Diamond, radius units.Inches) (units.Position, error) {
	if !radius.IsPositive() {
		return units.Position{}, fmt.Errorf("placement: radius %s: %w", radius, units.ErrInvalidMeasurement)
	}
	limit := t.RailRange(r)
	if along.IsNegative() || along.GreaterThan(limit) {
		return units.Position{}, fmt.Errorf("placement: %s rail mark %s outside [0, %s]: %w", r, along, limit, ErrConstraintUnsatisfiable)
	}

	rd := units.FromPhysical(radius, t)

	// the ball has to fit across the table
	var across units.Diamond
	if r.Long() {
		across = t.DiamondsWide()
	} else {
		across = t.DiamondsLong()
	}
	if rd.Add(rd).GreaterThan(across) {
		return units.Position{}, fmt.Errorf("placement: ball radius %s wider than the table: %w", radius, ErrConstraintUnsatisfiable)
	}

	// and must not run into the perpendicular cushions at either end
	if along.LessThan(rd) || along.GreaterThan(limit.Sub(rd)) {
		return units.Position{}, fmt.Errorf("placement: %s rail mark %s leaves no room for radius %s: %w", r, along, radius, ErrConstraintUnsatisfiable)
	}

	nose := t.PointOnRail(r, along)
	dx, dy := r.Inward()
	return nose.Offset(scaleUnit(rd, dx), scaleUnit(rd, dy)), nil
}

// DistanceToRail is the perpendicular distance from p to the nose line of r
// in physical units. It is negative when p is behind the nose.
func DistanceToRail(t *table.Spec, r table.Rail, p units.Position) units.Inches {
	nose := t.PointOnRail(r, units.Zero())
	d := p.Sub(nose)
	dx, dy := r.Inward()
	n := scaleUnit(d.X, dx).Add(scaleUnit(d.Y, dy))
	return units.ToPhysical(n, t)
}

// ClipsRail reports whether a circle at p with the given radius crosses the
// nose line of r.
func ClipsRail(t *table.Spec, r table.Rail, p units.Position, radius units.Inches) bool {
	return DistanceToRail(t, r, p).Float64() < radius.Float64()-contactTolerance
}

func scaleUnit(d units.Diamond, u int) units.Diamond {
	switch u {
	case 1:
		return d
	case -1:
		return d.Neg()
	}
	return units.Zero()
}
