package scene

import (
	"fmt"
	"strings"

	"pool-diagram/internal/ball"
)

// GameType selects the rack a diagram is drawn for. It only drives the
// advisory IllegalBalls check.
type GameType int

const (
	NineBall GameType = iota
	EightBall
	TenBall
	OnePocket
	Banks
	StraightPool
)

var gameNames = [...]string{
	NineBall:     "nine-ball",
	EightBall:    "eight-ball",
	TenBall:      "ten-ball",
	OnePocket:    "one-pocket",
	Banks:        "banks",
	StraightPool: "straight-pool",
}

func (g GameType) String() string {
	if g < 0 || int(g) >= len(gameNames) {
		return fmt.Sprintf("GameType(%d)", int(g))
	}
	return gameNames[g]
}

// ParseGameType accepts the names printed by String, case-insensitively.
func ParseGameType(s string) (GameType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range gameNames {
		if n == s {
			return GameType(i), nil
		}
	}
	return 0, fmt.Errorf("scene: unknown game type %q", s)
}

func (g GameType) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

func (g *GameType) UnmarshalText(text []byte) error {
	v, err := ParseGameType(string(text))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// highest object ball in play for each game
func (g GameType) highest() ball.Type {
	switch g {
	case NineBall:
		return ball.Nine
	case TenBall:
		return ball.Ten
	}
	return ball.Fifteen
}

// Allows reports whether t belongs to the game's ball set.
func (g GameType) Allows(t ball.Type) bool {
	return t.Valid() && t <= g.highest()
}

// CueballModifier describes how the cue ball came to be where it is.
type CueballModifier int

const (
	AsItLays CueballModifier = iota
	BreakPlacement
	BallInHand
	KitchenPlacement
)

var modifierNames = [...]string{
	AsItLays:         "as-it-lays",
	BreakPlacement:   "break",
	BallInHand:       "ball-in-hand",
	KitchenPlacement: "kitchen",
}

func (m CueballModifier) String() string {
	if m < 0 || int(m) >= len(modifierNames) {
		return fmt.Sprintf("CueballModifier(%d)", int(m))
	}
	return modifierNames[m]
}

func ParseCueballModifier(s string) (CueballModifier, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range modifierNames {
		if n == s {
			return CueballModifier(i), nil
		}
	}
	return 0, fmt.Errorf("scene: unknown cue ball modifier %q", s)
}

func (m CueballModifier) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *CueballModifier) UnmarshalText(text []byte) error {
	v, err := ParseCueballModifier(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
