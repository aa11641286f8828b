package ball

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"pool-diagram/internal/units"
)

// Type is one of the sixteen balls of a standard set.
type Type int

const (
	Cue Type = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Eleven
	Twelve
	Thirteen
	Fourteen
	Fifteen
)

// Types lists every ball type, cue first.
func Types() []Type {
	out := make([]Type, 0, 16)
	for t := Cue; t <= Fifteen; t++ {
		out = append(out, t)
	}
	return out
}

func (t Type) Valid() bool { return t >= Cue && t <= Fifteen }

// Number is the printed number, 0 for the cue ball.
func (t Type) Number() int { return int(t) }

// IsStripe reports whether the ball is drawn with a band (9 through 15).
func (t Type) IsStripe() bool { return t >= Nine && t <= Fifteen }

func (t Type) String() string {
	if t == Cue {
		return "cue"
	}
	if !t.Valid() {
		return fmt.Sprintf("ball(%d)", int(t))
	}
	return strconv.Itoa(int(t))
}

// ParseType accepts "cue" or a number from 1 to 15.
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "cue" || s == "0" {
		return Cue, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 15 {
		return 0, fmt.Errorf("ball: unknown ball %q", s)
	}
	return Type(n), nil
}

func (t Type) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// baseColors follow the usual set: 1 yellow, 2 blue, 3 red, 4 purple,
// 5 orange, 6 green, 7 maroon, 8 black. Stripes reuse number-8.
var baseColors = [9]color.NRGBA{
	{R: 0xf7, G: 0xf3, B: 0xe6, A: 0xff},
	{R: 0xf2, G: 0xc4, B: 0x1b, A: 0xff},
	{R: 0x1d, G: 0x4e, B: 0xb8, A: 0xff},
	{R: 0xd6, G: 0x28, B: 0x28, A: 0xff},
	{R: 0x5b, G: 0x2a, B: 0x86, A: 0xff},
	{R: 0xf0, G: 0x75, B: 0x1e, A: 0xff},
	{R: 0x1b, G: 0x7f, B: 0x3b, A: 0xff},
	{R: 0x80, G: 0x1f, B: 0x24, A: 0xff},
	{R: 0x14, G: 0x14, B: 0x14, A: 0xff},
}

// Color is the dominant color of the ball; for stripes it is the band color.
func (t Type) Color() color.NRGBA {
	switch {
	case t == Cue:
		return baseColors[0]
	case t.IsStripe():
		return baseColors[t-8]
	case t.Valid():
		return baseColors[t]
	}
	return baseColors[0]
}

// StandardRadius is the radius of a 2 1/4" regulation ball.
var StandardRadius = units.MustInches("1.125")

// Spec holds the physical and visual attributes of a ball.
// A zero Radius means StandardRadius.
type Spec struct {
	Radius units.Inches
	// Color overrides Type.Color when non-nil.
	Color *color.NRGBA
}

// DefaultSpec is a regulation ball with the standard colors.
func DefaultSpec() Spec {
	return Spec{Radius: StandardRadius}
}

// Validate rejects a negative radius. Zero is allowed and means StandardRadius.
func (s Spec) Validate() error {
	if s.Radius.Decimal().IsNegative() {
		return fmt.Errorf("ball: radius %s: %w", s.Radius, units.ErrInvalidMeasurement)
	}
	return nil
}

// Ball is a ball placed on the table.
type Ball struct {
	Type     Type
	Position units.Position
	Spec     Spec
}

// New places a regulation ball of type t at p.
func New(t Type, p units.Position) Ball {
	return Ball{Type: t, Position: p, Spec: DefaultSpec()}
}

// Color resolves the override against the type's color.
func (b Ball) Color() color.NRGBA {
	if b.Spec.Color != nil {
		return *b.Spec.Color
	}
	return b.Type.Color()
}

// Radius returns the spec radius, or StandardRadius when it is zero.
// A negative radius is returned as is; Spec.Validate reports it.
func (b Ball) Radius() units.Inches {
	if b.Spec.Radius.Decimal().IsZero() {
		return StandardRadius
	}
	return b.Spec.Radius
}

// Displacement is the diamond vector from b to other.
func (b Ball) Displacement(other Ball) units.Position {
	return other.Position.Sub(b.Position)
}

// Distance between the two centers in physical units.
func (b Ball) Distance(other Ball, s units.Scale) units.Inches {
	return units.Distance(b.Position, other.Position, s)
}

func (b Ball) String() string {
	return fmt.Sprintf("%s@%s", b.Type, b.Position)
}
