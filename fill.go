package cardkit

// FillStyle is the paint applied to a shape's interior: a solid color, a
// linear or radial gradient, or a repeating pattern. It is a tagged union;
// the concrete type is the discriminator.
type FillStyle interface {
	fillStyle()
}

// Discriminator values used by scene loaders for FillStyle variants.
const (
	FillTypeSolid          = "solid"
	FillTypeLinearGradient = "linear_gradient"
	FillTypeRadialGradient = "radial_gradient"
	FillTypePattern        = "pattern"
)

// SolidFill paints the interior with a single color.
type SolidFill struct {
	Color string // hex string, #RRGGBB
}

func (SolidFill) fillStyle() {}

// NewSolidFill validates the hex color and returns a SolidFill.
func NewSolidFill(hex string) (SolidFill, error) {
	if err := validateHexField("fill.color", hex); err != nil {
		return SolidFill{}, err
	}
	if hex == "" {
		return SolidFill{}, validationf("fill.color", "color is required")
	}
	return SolidFill{Color: hex}, nil
}

// ColorStop defines a color at a specific position along a gradient.
type ColorStop struct {
	Position float64 // 0.0 = start, 1.0 = end
	Color    string  // hex string, #RRGGBB
}

// gradient stop count bounds shared by both gradient variants.
const (
	minGradientStops = 2
	maxGradientStops = 20
)

// validateStops checks stop count bounds, hex colors, position range, and
// non-decreasing position order.
func validateStops(field string, stops []ColorStop) error {
	if len(stops) < minGradientStops || len(stops) > maxGradientStops {
		return validationf(field, "gradient needs %d..%d stops, got %d",
			minGradientStops, maxGradientStops, len(stops))
	}
	prev := -1.0
	for i, s := range stops {
		if s.Position < 0 || s.Position > 1 {
			return validationf(field, "stop %d position %v outside [0,1]", i, s.Position)
		}
		if s.Position < prev {
			return validationf(field, "stops must be in ascending position order")
		}
		prev = s.Position
		if err := validateHexField(field, s.Color); err != nil {
			return err
		}
		if s.Color == "" {
			return validationf(field, "stop %d has no color", i)
		}
	}
	return nil
}

// LinearGradientFill transitions smoothly between color stops along a line
// at the given angle (degrees; 0 = horizontal right, 90 = vertical up).
type LinearGradientFill struct {
	Angle float64 // [0, 360)
	Stops []ColorStop
}

func (LinearGradientFill) fillStyle() {}

// NewLinearGradientFill validates the angle and stops.
func NewLinearGradientFill(angle float64, stops []ColorStop) (LinearGradientFill, error) {
	if angle < 0 || angle >= 360 {
		return LinearGradientFill{}, validationf("linear_gradient.angle", "%v outside [0,360)", angle)
	}
	if err := validateStops("linear_gradient.stops", stops); err != nil {
		return LinearGradientFill{}, err
	}
	return LinearGradientFill{Angle: angle, Stops: stops}, nil
}

// RadialGradientFill radiates from a center point outward through the stops.
// Center coordinates are fractions of the shape's bounding box; Radius is a
// fraction of the bounding box diagonal.
type RadialGradientFill struct {
	CenterX float64 // [0, 1]
	CenterY float64 // [0, 1]
	Radius  float64 // (0, 1]
	Stops   []ColorStop
}

func (RadialGradientFill) fillStyle() {}

// NewRadialGradientFill validates the center, radius, and stops.
func NewRadialGradientFill(cx, cy, radius float64, stops []ColorStop) (RadialGradientFill, error) {
	if cx < 0 || cx > 1 {
		return RadialGradientFill{}, validationf("radial_gradient.center_x", "%v outside [0,1]", cx)
	}
	if cy < 0 || cy > 1 {
		return RadialGradientFill{}, validationf("radial_gradient.center_y", "%v outside [0,1]", cy)
	}
	if radius <= 0 || radius > 1 {
		return RadialGradientFill{}, validationf("radial_gradient.radius", "%v outside (0,1]", radius)
	}
	if err := validateStops("radial_gradient.stops", stops); err != nil {
		return RadialGradientFill{}, err
	}
	return RadialGradientFill{CenterX: cx, CenterY: cy, Radius: radius, Stops: stops}, nil
}

// PatternKind selects the repeating tile drawn by a PatternFill.
type PatternKind string

const (
	PatternStripes      PatternKind = "stripes"
	PatternDots         PatternKind = "dots"
	PatternGrid         PatternKind = "grid"
	PatternCheckerboard PatternKind = "checkerboard"
)

// knownPattern reports whether k is one of the supported pattern kinds.
func knownPattern(k PatternKind) bool {
	switch k {
	case PatternStripes, PatternDots, PatternGrid, PatternCheckerboard:
		return true
	}
	return false
}

// PatternFill tiles the interior with a repeating decorative pattern.
type PatternFill struct {
	Kind     PatternKind
	Colors   []string // 1..4 hex strings
	Spacing  float64  // tile spacing in inches, (0, 2]
	Scale    float64  // tile scale multiplier, (0, 5]
	Rotation float64  // tiling grid rotation in degrees, [0, 360)
}

func (PatternFill) fillStyle() {}

// NewPatternFill validates every pattern parameter. Boundary values
// (spacing=2, scale=5, four colors) are accepted.
func NewPatternFill(kind PatternKind, colors []string, spacing, scale, rotation float64) (PatternFill, error) {
	if !knownPattern(kind) {
		return PatternFill{}, validationf("pattern.kind", "unknown pattern kind %q", kind)
	}
	if len(colors) < 1 || len(colors) > 4 {
		return PatternFill{}, validationf("pattern.colors", "need 1..4 colors, got %d", len(colors))
	}
	for i, c := range colors {
		if err := validateHexField("pattern.colors", c); err != nil {
			return PatternFill{}, err
		}
		if c == "" {
			return PatternFill{}, validationf("pattern.colors", "color %d is empty", i)
		}
	}
	if spacing <= 0 || spacing > 2 {
		return PatternFill{}, validationf("pattern.spacing", "%v outside (0,2]", spacing)
	}
	if scale <= 0 || scale > 5 {
		return PatternFill{}, validationf("pattern.scale", "%v outside (0,5]", scale)
	}
	if rotation < 0 || rotation >= 360 {
		return PatternFill{}, validationf("pattern.rotation", "%v outside [0,360)", rotation)
	}
	return PatternFill{Kind: kind, Colors: colors, Spacing: spacing, Scale: scale, Rotation: rotation}, nil
}
