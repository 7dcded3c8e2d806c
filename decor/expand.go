package decor

import (
	"fmt"
	"math"
	"strings"

	"github.com/printfold/cardkit"
)

// Expand resolves a decorative reference into primitive shapes ready for
// drawing: palette roles are substituted into colors, child geometry is
// scaled and moved to the instance anchor, the instance rotation is added to
// each child's own, and children without an explicit layer inherit the
// instance's.
func (l *Library) Expand(ref cardkit.DecorativeRef) ([]cardkit.Shape, error) {
	def, err := l.Definition(ref.Name)
	if err != nil {
		return nil, err
	}

	palette := make(map[string]string, len(def.ColorRoles)+len(ref.ColorPalette))
	for role, hex := range def.ColorRoles {
		palette[role] = hex
	}
	for role, hex := range ref.ColorPalette {
		palette[role] = hex
	}

	shapes := make([]cardkit.Shape, 0, len(def.Shapes))
	for i, child := range def.Shapes {
		shape, err := buildShape(child, ref, palette)
		if err != nil {
			return nil, fmt.Errorf("decor: %s shape %d: %w", ref.Name, i, err)
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}

// resolveColor substitutes a "{role}" placeholder from the palette. Colors
// that are not placeholders, and roles missing from the palette, pass
// through unchanged.
func resolveColor(color string, palette map[string]string) string {
	if !strings.HasPrefix(color, "{") || !strings.HasSuffix(color, "}") {
		return color
	}
	role := strings.Trim(color, "{}")
	if hex, ok := palette[role]; ok {
		return hex
	}
	return color
}

func buildShape(def ShapeDef, ref cardkit.DecorativeRef, palette map[string]string) (cardkit.Shape, error) {
	base := cardkit.ShapeBase{
		FillColor:   resolveColor(def.FillColor, palette),
		StrokeColor: resolveColor(def.StrokeColor, palette),
		StrokeWidth: def.StrokeWidth,
		Opacity:     1,
		Rotation:    math.Mod(def.Rotation+ref.Rotation, 360),
		ZIndex:      ref.ZIndex,
	}
	if def.Opacity != nil {
		base.Opacity = *def.Opacity
	}
	if def.ZIndex != nil {
		base.ZIndex = *def.ZIndex
	}

	s := ref.Scale
	var shape cardkit.Shape
	switch def.Type {
	case cardkit.ShapeTypeRectangle:
		shape = cardkit.Rect{
			ShapeBase: base,
			X:         def.X*s + ref.X,
			Y:         def.Y*s + ref.Y,
			Width:     def.Width * s,
			Height:    def.Height * s,
		}
	case cardkit.ShapeTypeCircle:
		shape = cardkit.Circle{
			ShapeBase: base,
			CenterX:   def.CenterX*s + ref.X,
			CenterY:   def.CenterY*s + ref.Y,
			Radius:    def.Radius * s,
		}
	case cardkit.ShapeTypeTriangle:
		shape = cardkit.Triangle{
			ShapeBase: base,
			X1:        def.X1*s + ref.X,
			Y1:        def.Y1*s + ref.Y,
			X2:        def.X2*s + ref.X,
			Y2:        def.Y2*s + ref.Y,
			X3:        def.X3*s + ref.X,
			Y3:        def.Y3*s + ref.Y,
		}
	case cardkit.ShapeTypeStar:
		shape = cardkit.Star{
			ShapeBase:   base,
			CenterX:     def.CenterX*s + ref.X,
			CenterY:     def.CenterY*s + ref.Y,
			OuterRadius: def.OuterRadius * s,
			InnerRadius: def.InnerRadius * s,
			Points:      def.Points,
		}
	case cardkit.ShapeTypeLine:
		shape = cardkit.Line{
			ShapeBase: base,
			StartX:    def.StartX*s + ref.X,
			StartY:    def.StartY*s + ref.Y,
			EndX:      def.EndX*s + ref.X,
			EndY:      def.EndY*s + ref.Y,
		}
	default:
		return nil, fmt.Errorf("unsupported child shape type %q", def.Type)
	}

	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}
