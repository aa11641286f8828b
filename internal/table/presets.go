package table

import "pool-diagram/internal/units"

// Brunswick Gold Crown IV measurements shared by the presets.
var (
	gc4SightOffset  = units.MustInches("3.6875")
	gc4PocketDepth  = units.MustInches("1.4")
	gc4CornerMouth  = units.MustInches("4.5")
	gc4SideMouth    = units.MustInches("5")
	gc4CushionWidth = units.MustInches("2")
	gc4RailWidth    = units.MustInches("6.5")
)

// BrunswickGC4_9ft is a 9ft Brunswick Gold Crown IV: 50" x 100" playing
// surface, one diamond every 12.5 inches.
func BrunswickGC4_9ft() *Spec {
	return mustPreset("gc4-9ft", "12.5")
}

// Pro8ft is an 8ft "pro" table: 44" x 88", 11 inch diamonds.
func Pro8ft() *Spec {
	return mustPreset("pro-8ft", "11")
}

// BarBox7ft is a 7ft bar table: 39" x 78", 9.75 inch diamonds.
func BarBox7ft() *Spec {
	return mustPreset("barbox-7ft", "9.75")
}

func mustPreset(name, diamond string) *Spec {
	s, err := New(Params{
		Name:          name,
		DiamondLength: units.MustInches(diamond),
		DiamondsWide:  4,
		DiamondsLong:  8,
		CushionWidth:  gc4CushionWidth,
		RailWidth:     gc4RailWidth,
		SightOffset:   gc4SightOffset,
		CornerMouth:   gc4CornerMouth,
		SideMouth:     gc4SideMouth,
		PocketDepth:   gc4PocketDepth,
	})
	if err != nil {
		panic(err)
	}
	return s
}
