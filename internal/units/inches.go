package units

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Inches is a physical distance on the table surface.
type Inches struct {
	d decimal.Decimal
}

func ParseInches(s string) (Inches, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return Inches{}, fmt.Errorf("units: inches %q: %w", s, err)
	}
	return Inches{d: d}, nil
}

func MustInches(s string) Inches {
	in, err := ParseInches(s)
	if err != nil {
		panic(err)
	}
	return in
}

// InchesFromFloat rounds to 1e-9 inch so results from math.Sqrt stay printable.
func InchesFromFloat(f float64) Inches {
	return Inches{d: decimal.NewFromFloat(f).Round(9)}
}

func InchesFromDecimal(d decimal.Decimal) Inches {
	return Inches{d: d}
}

func (a Inches) Add(b Inches) Inches { return Inches{d: a.d.Add(b.d)} }
func (a Inches) Sub(b Inches) Inches { return Inches{d: a.d.Sub(b.d)} }
func (a Inches) Mul(f decimal.Decimal) Inches { return Inches{d: a.d.Mul(f)} }
func (a Inches) Cmp(b Inches) int { return a.d.Cmp(b.d) }
func (a Inches) Equal(b Inches) bool { return a.d.Equal(b.d) }
func (a Inches) IsPositive() bool { return a.d.IsPositive() }
func (a Inches) Decimal() decimal.Decimal { return a.d }
func (a Inches) Float64() float64 { return a.d.InexactFloat64() }
func (a Inches) String() string { return a.d.String() + "in" }

func (a Inches) MarshalText() ([]byte, error) {
	return []byte(a.d.String()), nil
}

func (a *Inches) UnmarshalText(text []byte) error {
	in, err := ParseInches(string(text))
	if err != nil {
		return err
	}
	*a = in
	return nil
}
