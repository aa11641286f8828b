package diagram

import (
	"fmt"
	"image"
	"image/color"
	"sort"
	"strings"
)

// Style holds every color the renderer uses. Zero-alpha colors are skipped.
type Style struct {
	Background  color.NRGBA // behind the rails; transparent by default
	Rail        color.NRGBA
	Cushion     color.NRGBA
	Felt        color.NRGBA
	HeadString  color.NRGBA
	Pocket      color.NRGBA
	Sight       color.NRGBA
	Guide       color.NRGBA
	BallOutline color.NRGBA
	NumberDisc  color.NRGBA
	NumberText  color.NRGBA

	// FeltTexture, when set, is tiled over the felt every FeltTileInches.
	FeltTexture    *image.NRGBA
	FeltTileInches float64

	HideNumbers bool
}

// DefaultStyle is a tournament-blue cloth on a dark wood frame.
func DefaultStyle() Style {
	return Style{
		Rail:           color.NRGBA{R: 0x4a, G: 0x2c, B: 0x17, A: 0xff},
		Cushion:        color.NRGBA{R: 0x12, G: 0x4e, B: 0x78, A: 0xff},
		Felt:           color.NRGBA{R: 0x1b, G: 0x6c, B: 0xa8, A: 0xff},
		HeadString:     color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x50},
		Pocket:         color.NRGBA{R: 0x0c, G: 0x0c, B: 0x0c, A: 0xff},
		Sight:          color.NRGBA{R: 0xf0, G: 0xea, B: 0xd6, A: 0xff},
		Guide:          color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xc8},
		BallOutline:    color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff},
		NumberDisc:     color.NRGBA{R: 0xf7, G: 0xf3, B: 0xe6, A: 0xff},
		NumberText:     color.NRGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff},
		FeltTileInches: 12,
	}
}

// slots maps override names to style fields, for config files.
func (s *Style) slots() map[string]*color.NRGBA {
	return map[string]*color.NRGBA{
		"background":   &s.Background,
		"rail":         &s.Rail,
		"cushion":      &s.Cushion,
		"felt":         &s.Felt,
		"head_string":  &s.HeadString,
		"pocket":       &s.Pocket,
		"sight":        &s.Sight,
		"guide":        &s.Guide,
		"ball_outline": &s.BallOutline,
		"number_disc":  &s.NumberDisc,
		"number_text":  &s.NumberText,
	}
}

// Override sets named colors from hex strings ("#rrggbb" or "#rrggbbaa").
// Keys are applied in sorted order so errors are reported deterministically.
func (s *Style) Override(colors map[string]string) error {
	slots := s.slots()
	keys := make([]string, 0, len(colors))
	for k := range colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		dst, ok := slots[k]
		if !ok {
			return fmt.Errorf("diagram: unknown style color %q", k)
		}
		c, err := ParseHexColor(colors[k])
		if err != nil {
			return fmt.Errorf("diagram: style %s: %w", k, err)
		}
		*dst = c
	}
	return nil
}

// ParseHexColor parses "#rrggbb", "#rrggbbaa" or the same without '#'.
func ParseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	c := color.NRGBA{A: 0xff}
	var err error
	switch len(s) {
	case 6:
		_, err = fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 8:
		_, err = fmt.Sscanf(s, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		return color.NRGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad hex color %q: %v", s, err)
	}
	return c, nil
}
