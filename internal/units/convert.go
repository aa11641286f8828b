package units

// Scale supplies the physical length of one diamond. *table.Spec implements it.
type Scale interface {
	DiamondLength() Inches
}

// ToPhysical converts a diamond distance into inches.
// On a 9ft table one diamond is 12.5 inches.
func ToPhysical(d Diamond, s Scale) Inches {
	return Inches{d: d.d.Mul(s.DiamondLength().d)}
}

// FromPhysical converts inches into diamonds, rounding the quotient to
// decimal.DivisionPrecision digits when it does not terminate (1" on an 11"
// diamond). FromPhysical(ToPhysical(d, s), s) is still exactly d for any d
// with fewer digits than that, because the product divides back evenly.
func FromPhysical(in Inches, s Scale) Diamond {
	return Diamond{d: in.d.Div(s.DiamondLength().d)}
}

// ToPixels maps a diamond distance to a pixel offset at the given output scale.
// It is ToPhysical followed by a fixed inches-to-pixels factor.
func ToPixels(d Diamond, s Scale, pixelsPerInch float64) float64 {
	return ToPhysical(d, s).Float64() * pixelsPerInch
}
