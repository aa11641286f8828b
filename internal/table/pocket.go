package table

import (
	"fmt"
	"strings"

	"pool-diagram/internal/units"
)

// PocketKind distinguishes corner from side pockets.
type PocketKind int

const (
	Corner PocketKind = iota
	Side
)

func (k PocketKind) String() string {
	if k == Side {
		return "side"
	}
	return "corner"
}

// PocketID names one of the six pockets, counter-clockwise from the head.
type PocketID int

const (
	BottomLeft PocketID = iota
	BottomRight
	RightSide
	TopRight
	TopLeft
	LeftSide
)

var pocketNames = [...]string{"bottom-left", "bottom-right", "right-side", "top-right", "top-left", "left-side"}

func (id PocketID) String() string {
	if id < BottomLeft || id > LeftSide {
		return fmt.Sprintf("pocket(%d)", int(id))
	}
	return pocketNames[id]
}

func ParsePocket(s string) (PocketID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range pocketNames {
		if s == n || s == strings.ReplaceAll(n, "-", "") {
			return PocketID(i), nil
		}
	}
	return 0, fmt.Errorf("table: unknown pocket %q", s)
}

func (id PocketID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *PocketID) UnmarshalText(text []byte) error {
	v, err := ParsePocket(string(text))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// Pocket describes one pocket opening.
// Location is where the cushion nose lines meet (corner) or where the
// side rail is interrupted (side); it is also where the diamond grid puts
// the would-be sight at 0, 4 or 8.
type Pocket struct {
	ID       PocketID
	Kind     PocketKind
	Location units.Position
	Width    units.Diamond // mouth width
	Depth    units.Diamond // shelf depth behind the nose line
}

// Outward is the unit direction from Location toward the back of the pocket.
func (p Pocket) Outward() (dx, dy float64) {
	const diag = 0.7071067811865476
	switch p.ID {
	case BottomLeft:
		return -diag, -diag
	case BottomRight:
		return diag, -diag
	case TopRight:
		return diag, diag
	case TopLeft:
		return -diag, diag
	case RightSide:
		return 1, 0
	default:
		return -1, 0
	}
}
