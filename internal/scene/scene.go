// Package scene holds a diagram's table, balls and guide lines.
//
// A GameState is a plain mutable aggregate owned by one caller. Nothing is
// validated automatically: FreezeToRail enforces its constraint by
// construction, and Validate and IllegalBalls are there to be asked.
package scene

import (
	"errors"
	"fmt"
	"image"

	"pool-diagram/internal/ball"
	"pool-diagram/internal/diagram"
	"pool-diagram/internal/placement"
	"pool-diagram/internal/table"
	"pool-diagram/internal/units"
)

// GameState is everything drawn in one diagram. Balls are drawn in slice
// order, so later balls cover earlier ones.
type GameState struct {
	Table   *table.Spec
	Type    GameType
	Cueball CueballModifier
	Balls   []ball.Ball
	Guides  []diagram.Guide
}

// New starts an empty scene on t.
func New(t *table.Spec, g GameType, m CueballModifier) *GameState {
	return &GameState{Table: t, Type: g, Cueball: m}
}

// Add appends balls as given.
func (g *GameState) Add(balls ...ball.Ball) {
	g.Balls = append(g.Balls, balls...)
}

// FreezeToRail places b against rail r at the along mark and appends it.
// A zero radius freezes a regulation ball. On error the scene is unchanged.
func (g *GameState) FreezeToRail(r table.Rail, along units.Diamond, b ball.Ball) (ball.Ball, error) {
	if err := b.Spec.Validate(); err != nil {
		return ball.Ball{}, fmt.Errorf("scene: freeze %s: %w", b.Type, err)
	}
	p, err := placement.FreezeToRail(g.Table, r, along, b.Radius())
	if err != nil {
		return ball.Ball{}, fmt.Errorf("scene: freeze %s: %w", b.Type, err)
	}
	b.Position = p
	g.Balls = append(g.Balls, b)
	return b, nil
}

// SelectBall returns the first ball of type t.
func (g *GameState) SelectBall(t ball.Type) (ball.Ball, bool) {
	for _, b := range g.Balls {
		if b.Type == t {
			return b, true
		}
	}
	return ball.Ball{}, false
}

// AddGuide appends a dashed aiming line in the style's guide color.
func (g *GameState) AddGuide(from, to units.Position) {
	g.Guides = append(g.Guides, diagram.Guide{From: from, To: to})
}

func (g *GameState) Overlaps() []placement.Overlap {
	return placement.Overlaps(g.Balls, g.Table)
}

// Validate reports balls with a negative radius, interpenetrating balls and
// balls crossing a cushion nose, all together.
func (g *GameState) Validate() error {
	var errs []error
	for _, b := range g.Balls {
		if err := b.Spec.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("scene: %s: %w", b, err))
		}
	}
	if err := placement.CheckOverlaps(g.Balls, g.Table); err != nil {
		errs = append(errs, err)
	}
	for _, i := range placement.OffTable(g.Table, g.Balls) {
		errs = append(errs, fmt.Errorf("scene: %s crosses a rail: %w", g.Balls[i], placement.ErrConstraintUnsatisfiable))
	}
	return errors.Join(errs...)
}

// IllegalBalls returns the indices of balls that do not belong in the game:
// numbers outside its rack, duplicates, and a cue ball outside the kitchen
// when the modifier requires it. The result is advisory.
func (g *GameState) IllegalBalls() []int {
	var out []int
	seen := make(map[ball.Type]bool)
	for i, b := range g.Balls {
		switch {
		case seen[b.Type]:
			out = append(out, i)
		case b.Type == ball.Cue:
			if g.Cueball == KitchenPlacement && !g.Table.InKitchen(b.Position) {
				out = append(out, i)
			}
		case !g.Type.Allows(b.Type):
			out = append(out, i)
		}
		seen[b.Type] = true
	}
	return out
}

// Draw2DDiagram renders the scene. It does not modify g.
func (g *GameState) Draw2DDiagram(opts diagram.Options) *image.NRGBA {
	return diagram.Render(g.Table, g.Balls, g.Guides, opts)
}
