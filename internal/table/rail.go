package table

import (
	"fmt"
	"strings"
)

// Rail identifies one cushion of the playing surface.
type Rail int

const (
	Left Rail = iota
	Right
	Top    // foot rail, behind the rack
	Bottom // head rail, behind the kitchen
)

var railNames = [...]string{"left", "right", "top", "bottom"}

func (r Rail) String() string {
	if r < Left || r > Bottom {
		return fmt.Sprintf("rail(%d)", int(r))
	}
	return railNames[r]
}

// ParseRail accepts the rail names plus "foot" and "head" as aliases.
func ParseRail(s string) (Rail, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "top", "foot":
		return Top, nil
	case "bottom", "head":
		return Bottom, nil
	}
	return 0, fmt.Errorf("table: unknown rail %q", s)
}

func (r Rail) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *Rail) UnmarshalText(text []byte) error {
	v, err := ParseRail(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Rails lists every rail in a fixed order.
func Rails() []Rail {
	return []Rail{Left, Right, Top, Bottom}
}

// Inward returns the unit normal pointing from the rail into the playing surface.
func (r Rail) Inward() (dx, dy int) {
	switch r {
	case Left:
		return 1, 0
	case Right:
		return -1, 0
	case Top:
		return 0, -1
	default:
		return 0, 1
	}
}

// Long reports whether the rail runs along the length of the table.
func (r Rail) Long() bool {
	return r == Left || r == Right
}
