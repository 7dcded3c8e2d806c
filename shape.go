package cardkit

import "strings"

// Shape is a vector graphics primitive placed on a panel. It is a tagged
// union: the concrete type is the discriminator. All coordinates are in
// inches relative to the panel origin; stroke widths are in points.
type Shape interface {
	shape()
	// Layer returns the rendering layer. Higher layers draw on top.
	Layer() int
	// Validate reports whether the shape's fields are within bounds.
	Validate() error
}

// Discriminator values used by scene loaders for Shape variants.
const (
	ShapeTypeRectangle  = "rectangle"
	ShapeTypeCircle     = "circle"
	ShapeTypeTriangle   = "triangle"
	ShapeTypeStar       = "star"
	ShapeTypeLine       = "line"
	ShapeTypePath       = "svg_path"
	ShapeTypeDecorative = "decorative_element"
)

// ShapeBase holds the properties common to all concrete shapes: layering,
// styling, and rotation. FillColor is the legacy single-color fill; Fill
// takes precedence when both are set.
type ShapeBase struct {
	ID          string
	ZIndex      int
	FillColor   string // legacy hex fill, "" = none
	StrokeColor string // hex, "" = no stroke
	StrokeWidth float64
	Opacity     float64 // [0, 1]
	Rotation    float64 // degrees, [0, 360)
	Fill        FillStyle
}

// DefaultBase returns a ShapeBase with opacity 1 and no styling, the
// starting point for building shapes in code.
func DefaultBase() ShapeBase { return ShapeBase{Opacity: 1} }

// Layer implements Shape.
func (b ShapeBase) Layer() int { return b.ZIndex }

// validate checks the common fields.
func (b ShapeBase) validate() error {
	if err := validateHexField("shape.fill_color", b.FillColor); err != nil {
		return err
	}
	if err := validateHexField("shape.stroke_color", b.StrokeColor); err != nil {
		return err
	}
	if b.StrokeWidth < 0 {
		return validationf("shape.stroke_width", "%v must be >= 0", b.StrokeWidth)
	}
	if b.Opacity < 0 || b.Opacity > 1 {
		return validationf("shape.opacity", "%v outside [0,1]", b.Opacity)
	}
	if b.Rotation < 0 || b.Rotation >= 360 {
		return validationf("shape.rotation", "%v outside [0,360)", b.Rotation)
	}
	return nil
}

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
type Rect struct {
	ShapeBase
	X, Y          float64
	Width, Height float64
}

func (Rect) shape() {}

// Validate checks the rectangle's dimensions and common fields.
func (r Rect) Validate() error {
	if err := r.ShapeBase.validate(); err != nil {
		return err
	}
	if r.Width <= 0 {
		return validationf("rectangle.width", "%v must be > 0", r.Width)
	}
	if r.Height <= 0 {
		return validationf("rectangle.height", "%v must be > 0", r.Height)
	}
	return nil
}

// Circle is defined by its center and radius.
type Circle struct {
	ShapeBase
	CenterX, CenterY float64
	Radius           float64
}

func (Circle) shape() {}

// Validate checks the radius and common fields.
func (c Circle) Validate() error {
	if err := c.ShapeBase.validate(); err != nil {
		return err
	}
	if c.Radius <= 0 {
		return validationf("circle.radius", "%v must be > 0", c.Radius)
	}
	return nil
}

// Triangle is defined by its three vertices.
type Triangle struct {
	ShapeBase
	X1, Y1 float64
	X2, Y2 float64
	X3, Y3 float64
}

func (Triangle) shape() {}

// Validate checks the common fields.
func (t Triangle) Validate() error {
	return t.ShapeBase.validate()
}

// Star is a star polygon with vertices alternating between the outer and
// inner radius. The inner radius must be strictly smaller than the outer.
type Star struct {
	ShapeBase
	CenterX, CenterY float64
	OuterRadius      float64
	InnerRadius      float64
	Points           int
}

func (Star) shape() {}

// Validate checks the radii ordering, point count, and common fields.
func (s Star) Validate() error {
	if err := s.ShapeBase.validate(); err != nil {
		return err
	}
	if s.OuterRadius <= 0 {
		return validationf("star.outer_radius", "%v must be > 0", s.OuterRadius)
	}
	if s.InnerRadius <= 0 {
		return validationf("star.inner_radius", "%v must be > 0", s.InnerRadius)
	}
	if s.InnerRadius >= s.OuterRadius {
		return validationf("star.inner_radius",
			"inner radius %v must be less than outer radius %v", s.InnerRadius, s.OuterRadius)
	}
	if s.Points < 3 || s.Points > 20 {
		return validationf("star.points", "%d outside [3,20]", s.Points)
	}
	return nil
}

// Line is a straight segment between two points. Lines have no fill.
type Line struct {
	ShapeBase
	StartX, StartY float64
	EndX, EndY     float64
}

func (Line) shape() {}

// Validate checks the common fields.
func (l Line) Validate() error {
	return l.ShapeBase.validate()
}

// PathShape is a complex vector outline expressed in the path mini-language.
// Path coordinates are in inches, multiplied by Scale before the panel
// offset is applied.
type PathShape struct {
	ShapeBase
	PathData string
	Scale    float64
}

func (PathShape) shape() {}

// pathCommandLetters are the command letters of the path mini-language.
const pathCommandLetters = "MmLlHhVvCcSsQqTtAaZz"

// Validate checks the path data contains at least one command letter and
// that the scale is in range.
func (p PathShape) Validate() error {
	if err := p.ShapeBase.validate(); err != nil {
		return err
	}
	data := strings.TrimSpace(p.PathData)
	if data == "" {
		return validationf("svg_path.path_data", "path data cannot be empty")
	}
	if !strings.ContainsAny(data, pathCommandLetters) {
		return validationf("svg_path.path_data", "path must contain at least one command letter")
	}
	if p.Scale <= 0 || p.Scale > 10 {
		return validationf("svg_path.scale", "%v outside (0,10]", p.Scale)
	}
	return nil
}

// DecorativeRef places a named decorative composite from a library. The
// expansion step (decor package) replaces it with primitive shapes before
// drawing.
type DecorativeRef struct {
	ID           string
	Name         string
	X, Y         float64 // anchor position in inches
	Scale        float64
	Rotation     float64 // degrees, added to each child's rotation
	ColorPalette map[string]string
	ZIndex       int
}

func (DecorativeRef) shape() {}

// Layer implements Shape.
func (d DecorativeRef) Layer() int { return d.ZIndex }

// Validate checks the name, scale, rotation, and palette colors.
func (d DecorativeRef) Validate() error {
	if d.Name == "" {
		return validationf("decorative.name", "name is required")
	}
	if d.Scale <= 0 {
		return validationf("decorative.scale", "%v must be > 0", d.Scale)
	}
	if d.Rotation < 0 || d.Rotation >= 360 {
		return validationf("decorative.rotation", "%v outside [0,360)", d.Rotation)
	}
	for role, hex := range d.ColorPalette {
		if err := validateHexField("decorative.color_palette."+role, hex); err != nil {
			return err
		}
	}
	return nil
}
