package render

import (
	"fmt"
	"math"

	"github.com/printfold/cardkit"
	"github.com/printfold/cardkit/surface"
)

// drawShape renders one shape and logs instead of failing when it cannot
// be drawn.
func (r *Renderer) drawShape(s cardkit.Shape, panel *cardkit.Panel) {
	if err := r.renderShape(s, panel); err != nil {
		rerr := &cardkit.RenderError{Element: shapeLabel(s), Cause: err}
		cardkit.Logger().Warn("shape skipped", "panel", panel.Role, "err", rerr)
	}
}

func shapeLabel(s cardkit.Shape) string {
	id := ""
	switch sh := s.(type) {
	case cardkit.Rect:
		id = sh.ID
	case cardkit.Circle:
		id = sh.ID
	case cardkit.Triangle:
		id = sh.ID
	case cardkit.Star:
		id = sh.ID
	case cardkit.Line:
		id = sh.ID
	case cardkit.PathShape:
		id = sh.ID
	case cardkit.DecorativeRef:
		id = sh.ID
		if id == "" {
			id = sh.Name
		}
	}
	if id != "" {
		return fmt.Sprintf("shape %q (%T)", id, s)
	}
	return fmt.Sprintf("shape (%T)", s)
}

func (r *Renderer) renderShape(s cardkit.Shape, panel *cardkit.Panel) error {
	px := cardkit.InchesToPoints(panel.X)
	py := cardkit.InchesToPoints(panel.Y)

	switch sh := s.(type) {
	case cardkit.Rect:
		x := px + cardkit.InchesToPoints(sh.X)
		y := py + cardkit.InchesToPoints(sh.Y)
		w := cardkit.InchesToPoints(sh.Width)
		h := cardkit.InchesToPoints(sh.Height)
		return r.paintShape(sh.ShapeBase,
			func(sink pathSink) { rectPath(sink, x, y, w, h) },
			rectPts{x, y, w, h},
			surface.Point{X: x + w/2, Y: y + h/2})

	case cardkit.Circle:
		cx := px + cardkit.InchesToPoints(sh.CenterX)
		cy := py + cardkit.InchesToPoints(sh.CenterY)
		rad := cardkit.InchesToPoints(sh.Radius)
		return r.paintShape(sh.ShapeBase,
			func(sink pathSink) { circlePath(sink, cx, cy, rad) },
			rectPts{cx - rad, cy - rad, 2 * rad, 2 * rad},
			surface.Point{X: cx, Y: cy})

	case cardkit.Triangle:
		x1 := px + cardkit.InchesToPoints(sh.X1)
		y1 := py + cardkit.InchesToPoints(sh.Y1)
		x2 := px + cardkit.InchesToPoints(sh.X2)
		y2 := py + cardkit.InchesToPoints(sh.Y2)
		x3 := px + cardkit.InchesToPoints(sh.X3)
		y3 := py + cardkit.InchesToPoints(sh.Y3)
		return r.paintShape(sh.ShapeBase,
			func(sink pathSink) {
				sink.MoveTo(x1, y1)
				sink.LineTo(x2, y2)
				sink.LineTo(x3, y3)
				sink.ClosePath()
			},
			triangleBounds(x1, y1, x2, y2, x3, y3),
			surface.Point{X: (x1 + x2 + x3) / 3, Y: (y1 + y2 + y3) / 3})

	case cardkit.Star:
		cx := px + cardkit.InchesToPoints(sh.CenterX)
		cy := py + cardkit.InchesToPoints(sh.CenterY)
		outer := cardkit.InchesToPoints(sh.OuterRadius)
		inner := cardkit.InchesToPoints(sh.InnerRadius)
		pts := starVertices(cx, cy, outer, inner, sh.Points)
		return r.paintShape(sh.ShapeBase,
			func(sink pathSink) { polygonPath(sink, pts) },
			rectPts{cx - outer, cy - outer, 2 * outer, 2 * outer},
			surface.Point{X: cx, Y: cy})

	case cardkit.Line:
		return r.renderLine(sh, px, py)

	case cardkit.PathShape:
		return r.renderPath(sh, px, py)

	case cardkit.DecorativeRef:
		children, err := r.lib.Expand(sh)
		if err != nil {
			return err
		}
		// Children are drawn with the same per-element isolation as
		// top-level shapes.
		for _, child := range children {
			r.drawShape(child, panel)
		}
		return nil

	default:
		return fmt.Errorf("unsupported shape type %T", s)
	}
}

// paintShape rotates, applies opacity, resolves the fill, and draws the
// outline. Gradient and pattern fills paint themselves clipped to the
// outline; the remaining DrawPath then only needs to fill solids and
// stroke.
func (r *Renderer) paintShape(base cardkit.ShapeBase, emit func(pathSink), bbox rectPts, pivot surface.Point) error {
	r.surf.PushState()
	defer r.surf.PopState()

	if base.Rotation != 0 {
		r.surf.RotateAbout(base.Rotation, pivot.X, pivot.Y)
	}
	if base.Opacity < 1 {
		r.surf.SetOpacity(base.Opacity)
	}

	hasFill, err := r.resolveFill(base, bbox, emit)
	if err != nil {
		return err
	}

	hasStroke := base.StrokeColor != "" && base.StrokeWidth > 0
	if hasStroke {
		stroke, err := cardkit.ParseHex(base.StrokeColor)
		if err != nil {
			return err
		}
		r.surf.SetStrokeColor(stroke)
		r.surf.SetLineWidth(base.StrokeWidth)
	}

	if !hasFill && !hasStroke {
		return nil
	}
	emit(r.surf)
	mode := surface.PaintFill
	switch {
	case hasFill && hasStroke:
		mode = surface.PaintFillStroke
	case hasStroke:
		mode = surface.PaintStroke
	}
	return r.surf.DrawPath(mode)
}

// resolveFill prepares the shape interior paint. For solid fills it sets
// the surface fill color and reports true so DrawPath fills the outline.
// Gradients and patterns are painted immediately, clipped to the outline,
// and report false.
func (r *Renderer) resolveFill(base cardkit.ShapeBase, bbox rectPts, emit func(pathSink)) (bool, error) {
	switch f := base.Fill.(type) {
	case nil:
		if base.FillColor == "" {
			return false, nil
		}
		c, err := cardkit.ParseHex(base.FillColor)
		if err != nil {
			return false, err
		}
		r.surf.SetFillColor(c)
		return true, nil

	case cardkit.SolidFill:
		c, err := cardkit.ParseHex(f.Color)
		if err != nil {
			return false, err
		}
		r.surf.SetFillColor(c)
		return true, nil

	case cardkit.LinearGradientFill:
		return false, r.paintClipped(emit, func() error {
			return r.drawLinearGradient(f, bbox)
		})

	case cardkit.RadialGradientFill:
		return false, r.paintClipped(emit, func() error {
			return r.drawRadialGradient(f, bbox)
		})

	case cardkit.PatternFill:
		return false, r.paintClipped(emit, func() error {
			return r.drawPattern(f, bbox)
		})

	default:
		return false, fmt.Errorf("unsupported fill type %T", f)
	}
}

// paintClipped flattens the outline into a clip polygon and runs the
// painter inside it.
func (r *Renderer) paintClipped(emit func(pathSink), paint func() error) error {
	r.surf.BeginClip(polygon(emit))
	defer r.surf.EndClip()
	return paint()
}

// renderLine strokes a segment. Lines have no interior; a missing stroke
// color defaults to black and a zero width to one point. Explicit sub-point
// widths pass through unchanged, as they do for shape strokes.
func (r *Renderer) renderLine(l cardkit.Line, px, py float64) error {
	x1 := px + cardkit.InchesToPoints(l.StartX)
	y1 := py + cardkit.InchesToPoints(l.StartY)
	x2 := px + cardkit.InchesToPoints(l.EndX)
	y2 := py + cardkit.InchesToPoints(l.EndY)

	stroke := cardkit.Black
	if l.StrokeColor != "" {
		c, err := cardkit.ParseHex(l.StrokeColor)
		if err != nil {
			return err
		}
		stroke = c
	}

	r.surf.PushState()
	defer r.surf.PopState()

	if l.Rotation != 0 {
		r.surf.RotateAbout(l.Rotation, (x1+x2)/2, (y1+y2)/2)
	}
	if l.Opacity < 1 {
		r.surf.SetOpacity(l.Opacity)
	}
	width := l.StrokeWidth
	if width == 0 {
		width = 1
	}
	r.surf.SetStrokeColor(stroke)
	r.surf.SetLineWidth(width)
	r.surf.MoveTo(x1, y1)
	r.surf.LineTo(x2, y2)
	return r.surf.DrawPath(surface.PaintStroke)
}

// starVertices returns the 2n outline points of a star polygon,
// alternating outer and inner radius, starting on the vertical axis.
func starVertices(cx, cy, outer, inner float64, points int) []surface.Point {
	step := 360.0 / float64(2*points)
	pts := make([]surface.Point, 0, 2*points)
	for i := 0; i < 2*points; i++ {
		rad := outer
		if i%2 == 1 {
			rad = inner
		}
		angle := (float64(i)*step - 90) * math.Pi / 180
		pts = append(pts, surface.Point{
			X: cx + rad*math.Cos(angle),
			Y: cy + rad*math.Sin(angle),
		})
	}
	return pts
}

func polygonPath(sink pathSink, pts []surface.Point) {
	if len(pts) == 0 {
		return
	}
	sink.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		sink.LineTo(p.X, p.Y)
	}
	sink.ClosePath()
}

func triangleBounds(x1, y1, x2, y2, x3, y3 float64) rectPts {
	minX := math.Min(x1, math.Min(x2, x3))
	maxX := math.Max(x1, math.Max(x2, x3))
	minY := math.Min(y1, math.Min(y2, y3))
	maxY := math.Max(y1, math.Max(y2, y3))
	return rectPts{minX, minY, maxX - minX, maxY - minY}
}
