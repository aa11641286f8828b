// Package scenefile reads diagram scenes from YAML.
//
//	table: gc4-9ft
//	game: nine-ball
//	cueball: ball-in-hand
//	balls:
//	  - {type: cue, at: head}
//	  - {type: 9, at: "hanger:top-right"}
//	  - {type: 1, x: 3.65, y: 7.625}
//	  - {type: 2, freeze: {rail: left, diamond: 6}}
//	guides:
//	  - {from: "ball:cue", to: "ball:9"}
//
// Balls are placed in file order, so freezes and "ball:" references see
// every ball listed above them.
package scenefile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"pool-diagram/internal/ball"
	"pool-diagram/internal/diagram"
	"pool-diagram/internal/scene"
	"pool-diagram/internal/table"
	"pool-diagram/internal/units"
)

// DefaultTable is used when a file names no table.
const DefaultTable = "gc4-9ft"

// File is the YAML document as written.
type File struct {
	Title   string                `yaml:"title"`
	Table   string                `yaml:"table"`
	Game    scene.GameType        `yaml:"game"`
	Cueball scene.CueballModifier `yaml:"cueball"`
	Felt    string                `yaml:"felt"`
	Colors  map[string]string     `yaml:"colors"`
	Balls   []BallEntry           `yaml:"balls"`
	Guides  []GuideEntry          `yaml:"guides"`
}

// BallEntry places one ball. Exactly one of At, X/Y or Freeze is set.
type BallEntry struct {
	Type   ball.Type      `yaml:"type"`
	At     string         `yaml:"at"`
	X      *units.Diamond `yaml:"x"`
	Y      *units.Diamond `yaml:"y"`
	Freeze *Freeze        `yaml:"freeze"`
	Radius *units.Inches  `yaml:"radius"`
	Color  string         `yaml:"color"`
}

type Freeze struct {
	Rail    table.Rail    `yaml:"rail"`
	Diamond units.Diamond `yaml:"diamond"`
}

// GuideEntry is a dashed line between two points (see ResolvePoint).
type GuideEntry struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Color string `yaml:"color"`
}

// Scene is a decoded file ready to render.
type Scene struct {
	Name   string // file stem, used for output names
	Title  string
	Felt   string
	Colors map[string]string
	State  *scene.GameState
}

// Load reads and builds the scene at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenefile: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenefile: %s: %w", path, err)
	}
	s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return s, nil
}

// Parse decodes a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return f.Build()
}

// Build resolves every placement against the named table.
func (f *File) Build() (*Scene, error) {
	name := f.Table
	if name == "" {
		name = DefaultTable
	}
	t, err := table.Preset(name)
	if err != nil {
		return nil, err
	}

	g := scene.New(t, f.Game, f.Cueball)
	for i, e := range f.Balls {
		if err := addBall(g, e); err != nil {
			return nil, fmt.Errorf("ball %d (%s): %w", i+1, e.Type, err)
		}
	}
	for i, e := range f.Guides {
		gd, err := buildGuide(g, e)
		if err != nil {
			return nil, fmt.Errorf("guide %d: %w", i+1, err)
		}
		g.Guides = append(g.Guides, gd)
	}

	return &Scene{
		Title:  f.Title,
		Felt:   f.Felt,
		Colors: f.Colors,
		State:  g,
	}, nil
}

func addBall(g *scene.GameState, e BallEntry) error {
	b := ball.New(e.Type, units.Position{})
	if e.Radius != nil {
		if !e.Radius.IsPositive() {
			return fmt.Errorf("radius %s: %w", *e.Radius, units.ErrInvalidMeasurement)
		}
		b.Spec.Radius = *e.Radius
	}
	if e.Color != "" {
		c, err := diagram.ParseHexColor(e.Color)
		if err != nil {
			return err
		}
		b.Spec.Color = &c
	}
	if err := b.Spec.Validate(); err != nil {
		return err
	}

	set := 0
	if e.At != "" {
		set++
	}
	if e.X != nil || e.Y != nil {
		set++
	}
	if e.Freeze != nil {
		set++
	}
	if set != 1 {
		return errors.New("need exactly one of at, x/y or freeze")
	}

	switch {
	case e.Freeze != nil:
		_, err := g.FreezeToRail(e.Freeze.Rail, e.Freeze.Diamond, b)
		return err
	case e.At != "":
		p, err := resolvePoint(g, e.At, b.Radius())
		if err != nil {
			return err
		}
		b.Position = p
	default:
		if e.X == nil || e.Y == nil {
			return errors.New("x and y must both be set")
		}
		b.Position = units.Position{X: *e.X, Y: *e.Y}
	}
	g.Add(b)
	return nil
}

func buildGuide(g *scene.GameState, e GuideEntry) (diagram.Guide, error) {
	from, err := ResolvePoint(g, e.From)
	if err != nil {
		return diagram.Guide{}, err
	}
	to, err := ResolvePoint(g, e.To)
	if err != nil {
		return diagram.Guide{}, err
	}
	gd := diagram.Guide{From: from, To: to}
	if e.Color != "" {
		c, err := diagram.ParseHexColor(e.Color)
		if err != nil {
			return diagram.Guide{}, err
		}
		gd.Color = &c
	}
	return gd, nil
}

// ResolvePoint turns a point reference into a position on g's table:
//
//	center, head, foot     named spots
//	top-right, left-side   pocket grid points
//	hanger:<pocket>        a regulation ball in the jaws of a pocket
//	ball:<type>            the first ball of that type already placed
//	<x>,<y>                diamond coordinates
func ResolvePoint(g *scene.GameState, ref string) (units.Position, error) {
	return resolvePoint(g, ref, ball.StandardRadius)
}

// resolvePoint is ResolvePoint with hangers sized for a ball of the given radius.
func resolvePoint(g *scene.GameState, ref string, radius units.Inches) (units.Position, error) {
	t := g.Table
	ref = strings.ToLower(strings.TrimSpace(ref))
	switch ref {
	case "center":
		return t.CenterSpot(), nil
	case "head":
		return t.HeadSpot(), nil
	case "foot":
		return t.FootSpot(), nil
	}

	if kind, arg, ok := strings.Cut(ref, ":"); ok {
		switch kind {
		case "hanger":
			id, err := table.ParsePocket(arg)
			if err != nil {
				return units.Position{}, err
			}
			return t.Hanger(id, radius), nil
		case "ball":
			bt, err := ball.ParseType(arg)
			if err != nil {
				return units.Position{}, err
			}
			b, ok := g.SelectBall(bt)
			if !ok {
				return units.Position{}, fmt.Errorf("no %s ball placed yet", bt)
			}
			return b.Position, nil
		}
		return units.Position{}, fmt.Errorf("unknown point %q", ref)
	}

	if x, y, ok := strings.Cut(ref, ","); ok {
		return units.ParsePosition(strings.TrimSpace(x), strings.TrimSpace(y))
	}

	if id, err := table.ParsePocket(ref); err == nil {
		return t.CornerDiamond(id), nil
	}
	return units.Position{}, fmt.Errorf("unknown point %q", ref)
}
