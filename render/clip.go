package render

import (
	"fmt"
	"math"

	"github.com/printfold/cardkit"
	"github.com/printfold/cardkit/surface"
	"github.com/printfold/cardkit/svgpath"
)

// clipSegments is the polygon resolution used when a circular or
// elliptical mask is flattened.
const clipSegments = 48

// clipPolygon converts a mask into clip polygon points. Mask coordinates
// are inches relative to (ox, oy), the image anchor in points.
func clipPolygon(mask cardkit.ClipMask, ox, oy float64) ([]surface.Point, error) {
	switch m := mask.(type) {
	case cardkit.CircleClip:
		return ellipsePolygon(
			ox+cardkit.InchesToPoints(m.CenterX),
			oy+cardkit.InchesToPoints(m.CenterY),
			cardkit.InchesToPoints(m.Radius),
			cardkit.InchesToPoints(m.Radius)), nil

	case cardkit.EllipseClip:
		return ellipsePolygon(
			ox+cardkit.InchesToPoints(m.CenterX),
			oy+cardkit.InchesToPoints(m.CenterY),
			cardkit.InchesToPoints(m.RadiusX),
			cardkit.InchesToPoints(m.RadiusY)), nil

	case cardkit.RectangleClip:
		x := ox + cardkit.InchesToPoints(m.X)
		y := oy + cardkit.InchesToPoints(m.Y)
		w := cardkit.InchesToPoints(m.Width)
		h := cardkit.InchesToPoints(m.Height)
		return []surface.Point{
			{X: x, Y: y},
			{X: x + w, Y: y},
			{X: x + w, Y: y + h},
			{X: x, Y: y + h},
		}, nil

	case cardkit.StarClip:
		return starVertices(
			ox+cardkit.InchesToPoints(m.CenterX),
			oy+cardkit.InchesToPoints(m.CenterY),
			cardkit.InchesToPoints(m.OuterRadius),
			cardkit.InchesToPoints(m.InnerRadius),
			m.Points), nil

	case cardkit.PathClip:
		if junk := svgpath.UnknownLetters(m.PathData); len(junk) > 0 {
			cardkit.Logger().Warn("ignoring unknown clip path commands",
				"letters", string(junk))
		}
		cmds, err := svgpath.Parse(m.PathData)
		if err != nil {
			return nil, err
		}
		scale := m.Scale
		if scale <= 0 {
			scale = 1
		}
		k := cardkit.InchesToPoints(scale)
		pts := polygon(func(sink pathSink) {
			emitPathCommands(sink, cmds, ox, oy, k)
		})
		if len(pts) < 3 {
			return nil, fmt.Errorf("clip path yields no area")
		}
		return pts, nil

	default:
		return nil, fmt.Errorf("unsupported clip mask type %T", mask)
	}
}

// ellipsePolygon samples an axis-aligned ellipse at clipSegments points.
func ellipsePolygon(cx, cy, rx, ry float64) []surface.Point {
	pts := make([]surface.Point, clipSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / clipSegments
		pts[i] = surface.Point{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)}
	}
	return pts
}
