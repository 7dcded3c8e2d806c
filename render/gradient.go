package render

import (
	"math"

	"github.com/printfold/cardkit"
	"github.com/printfold/cardkit/surface"
)

// gradientBands is the number of color bands synthesized when the surface
// has no native gradient support. Enough for smooth output at print
// resolution without bloating the page.
const gradientBands = 48

// stop is a parsed gradient stop.
type stop struct {
	pos   float64
	color cardkit.Color
}

func parseStops(in []cardkit.ColorStop) ([]stop, error) {
	out := make([]stop, len(in))
	for i, s := range in {
		c, err := cardkit.ParseHex(s.Color)
		if err != nil {
			return nil, err
		}
		out[i] = stop{pos: s.Position, color: c}
	}
	return out, nil
}

// colorAt interpolates the gradient color at position t in [0, 1].
// Positions outside the first and last stop clamp to the end colors.
func colorAt(stops []stop, t float64) cardkit.Color {
	if t <= stops[0].pos {
		return stops[0].color
	}
	last := stops[len(stops)-1]
	if t >= last.pos {
		return last.color
	}
	for i := 0; i < len(stops)-1; i++ {
		a, b := stops[i], stops[i+1]
		if t > b.pos {
			continue
		}
		span := b.pos - a.pos
		if span <= 0 {
			return b.color
		}
		return a.color.Lerp(b.color, (t-a.pos)/span)
	}
	return last.color
}

// fullSpan reports whether a two-stop gradient runs from position 0 to 1.
// Native surface gradients always paint a full-span ramp, so stops at
// interior positions must go through band synthesis instead.
func fullSpan(stops []stop) bool {
	return len(stops) == 2 && stops[0].pos == 0 && stops[1].pos == 1
}

// linearEndpoints returns the gradient axis endpoints for the bounding
// box: the center offset by half the diagonal in each direction along the
// angle.
func linearEndpoints(angleDeg float64, bbox rectPts) (sx, sy, ex, ey float64) {
	cx := bbox.X + bbox.W/2
	cy := bbox.Y + bbox.H/2
	diag := math.Hypot(bbox.W, bbox.H)
	rad := angleDeg * math.Pi / 180
	dx := math.Cos(rad) * diag / 2
	dy := math.Sin(rad) * diag / 2
	return cx - dx, cy - dy, cx + dx, cy + dy
}

// drawLinearGradient paints a linear gradient over bbox. The caller has
// already clipped to the shape outline. The surface's native gradient is
// used for full-span two-stop gradients when available; everything else
// falls back to band synthesis, and a band failure degrades to a solid
// fill of the first stop color.
func (r *Renderer) drawLinearGradient(f cardkit.LinearGradientFill, bbox rectPts) error {
	stops, err := parseStops(f.Stops)
	if err != nil {
		return err
	}

	if gs, ok := r.surf.(surface.GradientSurface); ok && fullSpan(stops) && bbox.W > 0 && bbox.H > 0 {
		sx, sy, ex, ey := linearEndpoints(f.Angle, bbox)
		err := gs.LinearGradient(bbox.X, bbox.Y, bbox.W, bbox.H,
			stops[0].color, stops[1].color,
			(sx-bbox.X)/bbox.W, (sy-bbox.Y)/bbox.H,
			(ex-bbox.X)/bbox.W, (ey-bbox.Y)/bbox.H)
		if err == nil {
			return nil
		}
		cardkit.Logger().Debug("native linear gradient refused, synthesizing bands", "err", err)
	}

	if err := r.linearBands(f.Angle, stops, bbox); err != nil {
		cardkit.Logger().Warn("gradient bands failed, using solid fill", "err", err)
		return r.solidRect(stops[0].color, bbox)
	}
	return nil
}

// linearBands paints the gradient as strips perpendicular to its axis.
// The coordinate system is rotated so the axis runs along +x, then strips
// covering the bbox diagonal are filled with interpolated colors.
func (r *Renderer) linearBands(angleDeg float64, stops []stop, bbox rectPts) error {
	cx := bbox.X + bbox.W/2
	cy := bbox.Y + bbox.H/2
	diag := math.Hypot(bbox.W, bbox.H)

	r.surf.PushState()
	defer r.surf.PopState()
	if angleDeg != 0 {
		r.surf.RotateAbout(angleDeg, cx, cy)
	}

	bw := diag / gradientBands
	for i := 0; i < gradientBands; i++ {
		t := float64(i) / (gradientBands - 1)
		r.surf.SetFillColor(colorAt(stops, t))
		// Bands overlap slightly so rounding cannot open seams.
		rectPath(r.surf, cx-diag/2+float64(i)*bw, cy-diag/2, bw+0.5, diag)
		if err := r.surf.DrawPath(surface.PaintFill); err != nil {
			return err
		}
	}
	return nil
}

// drawRadialGradient paints a radial gradient over bbox, center and radius
// given as fractions of the box and its diagonal.
func (r *Renderer) drawRadialGradient(f cardkit.RadialGradientFill, bbox rectPts) error {
	stops, err := parseStops(f.Stops)
	if err != nil {
		return err
	}

	if gs, ok := r.surf.(surface.GradientSurface); ok && fullSpan(stops) {
		err := gs.RadialGradient(bbox.X, bbox.Y, bbox.W, bbox.H,
			stops[0].color, stops[1].color,
			f.CenterX, f.CenterY, f.Radius)
		if err == nil {
			return nil
		}
		cardkit.Logger().Debug("native radial gradient refused, synthesizing bands", "err", err)
	}

	if err := r.radialBands(f, stops, bbox); err != nil {
		cardkit.Logger().Warn("gradient bands failed, using solid fill", "err", err)
		return r.solidRect(stops[0].color, bbox)
	}
	return nil
}

// radialBands paints concentric circles from the outside in. The area
// beyond the outer radius takes the last stop color.
func (r *Renderer) radialBands(f cardkit.RadialGradientFill, stops []stop, bbox rectPts) error {
	cx := bbox.X + f.CenterX*bbox.W
	cy := bbox.Y + f.CenterY*bbox.H
	radius := f.Radius * math.Hypot(bbox.W, bbox.H)

	if err := r.solidRect(stops[len(stops)-1].color, bbox); err != nil {
		return err
	}
	for i := gradientBands; i >= 1; i-- {
		frac := float64(i) / gradientBands
		r.surf.SetFillColor(colorAt(stops, frac))
		circlePath(r.surf, cx, cy, radius*frac)
		if err := r.surf.DrawPath(surface.PaintFill); err != nil {
			return err
		}
	}
	return nil
}

// solidRect fills bbox with a single color, the terminal fallback of the
// gradient and pattern chains.
func (r *Renderer) solidRect(c cardkit.Color, bbox rectPts) error {
	r.surf.SetFillColor(c)
	rectPath(r.surf, bbox.X, bbox.Y, bbox.W, bbox.H)
	return r.surf.DrawPath(surface.PaintFill)
}
