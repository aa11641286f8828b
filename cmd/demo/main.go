// Command demo builds a few scenes in code and writes their diagrams.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"pool-diagram/internal/ball"
	"pool-diagram/internal/diagram"
	"pool-diagram/internal/export"
	"pool-diagram/internal/scene"
	"pool-diagram/internal/table"
	"pool-diagram/internal/units"
)

var scenarios = map[string]func(*table.Spec) (*scene.GameState, error){
	"hanger":  hanger,
	"aiming":  aiming,
	"pockets": pockets,
}

func main() {
	name := flag.String("scenario", "hanger", "Scene to build: aiming, hanger or pockets")
	out := flag.String("out", "", "Output file (default: <scenario>.<format>)")
	format := flag.String("format", "png", "Output format: png, webp or tga")
	preset := flag.String("table", "gc4-9ft", "Table preset")
	supersample := flag.Int("supersample", 1, "Supersampling factor")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	build, ok := scenarios[*name]
	if !ok {
		names := make([]string, 0, len(scenarios))
		for n := range scenarios {
			names = append(names, n)
		}
		sort.Strings(names)
		log.Error("unknown scenario", "scenario", *name, "have", names)
		os.Exit(2)
	}
	f, err := export.ParseFormat(*format)
	if err != nil {
		log.Error("bad format", "err", err)
		os.Exit(2)
	}
	t, err := table.Preset(*preset)
	if err != nil {
		log.Error("bad table", "err", err)
		os.Exit(2)
	}

	g, err := build(t)
	if err != nil {
		log.Error("building scene", "scenario", *name, "err", err)
		os.Exit(1)
	}
	if err := g.Validate(); err != nil {
		log.Warn("scene is not physically possible", "err", err)
	}

	for _, b := range g.Balls {
		fmt.Printf("%-10s angle to top-right pocket %7.2f°\n", b, t.AngleToPocket(b.Position, table.TopRight))
	}

	opts := diagram.DefaultOptions()
	opts.Supersample = *supersample
	img := g.Draw2DDiagram(opts)

	path := *out
	if path == "" {
		path = *name + f.Ext()
	}
	if err := export.WriteFile(path, img, f); err != nil {
		log.Error("writing diagram", "err", err)
		os.Exit(1)
	}
	log.Info("wrote diagram", "path", path, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
}

// hanger puts the cue on the center spot, the nine in the top-right jaws
// and freezes the eight to the left rail at the sixth diamond.
func hanger(t *table.Spec) (*scene.GameState, error) {
	g := scene.New(t, scene.NineBall, scene.AsItLays)
	g.Add(
		ball.New(ball.Cue, t.CenterSpot()),
		ball.New(ball.Nine, t.Hanger(table.TopRight, ball.StandardRadius)),
	)
	if _, err := g.FreezeToRail(table.Left, units.Six(), ball.New(ball.Eight, units.Position{})); err != nil {
		return nil, err
	}

	cue, _ := g.SelectBall(ball.Cue)
	nine, _ := g.SelectBall(ball.Nine)
	fmt.Printf("displacement = %s\n", cue.Displacement(nine))
	fmt.Printf("distance = %s\n", cue.Distance(nine, t))

	g.AddGuide(cue.Position, nine.Position)
	return g, nil
}

// aiming freezes object balls to two rails and prints their angles.
func aiming(t *table.Spec) (*scene.GameState, error) {
	g := scene.New(t, scene.NineBall, scene.AsItLays)
	g.Add(
		ball.New(ball.Cue, t.CenterSpot()),
		ball.New(ball.Eight, t.FootSpot()),
	)
	if _, err := g.FreezeToRail(table.Bottom, units.One(), ball.New(ball.One, units.Position{})); err != nil {
		return nil, err
	}
	if _, err := g.FreezeToRail(table.Right, units.Six(), ball.New(ball.Six, units.Position{})); err != nil {
		return nil, err
	}
	for _, b := range g.Balls {
		g.AddGuide(b.Position, t.CornerDiamond(table.TopRight))
	}
	return g, nil
}

// pockets marks every pocket with a cue ball and scatters a few object
// balls. The pocket balls hang over the rails on purpose.
func pockets(t *table.Spec) (*scene.GameState, error) {
	g := scene.New(t, scene.NineBall, scene.BallInHand)
	for _, p := range t.Pockets() {
		g.Add(ball.New(ball.Cue, p.Location))
	}
	g.Add(
		ball.New(ball.Nine, t.CenterSpot()),
		ball.New(ball.Eight, units.Pos("0", "2")),
		ball.New(ball.Five, units.Pos("3", "5")),
		ball.New(ball.Fourteen, units.Pos("1.5", "6.5")),
	)
	return g, nil
}
