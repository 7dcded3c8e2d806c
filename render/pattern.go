package render

import (
	"fmt"
	"math"

	"github.com/printfold/cardkit"
	"github.com/printfold/cardkit/surface"
)

// minTileSize is the smallest pattern tile in points. Tiny spacing values
// would otherwise stamp an absurd number of tiles.
const minTileSize = 2.0

// drawPattern tiles bbox with the repeating pattern. The caller has
// clipped to the shape outline; a stamping failure degrades to a solid
// fill of the first pattern color.
func (r *Renderer) drawPattern(f cardkit.PatternFill, bbox rectPts) error {
	colors := make([]cardkit.Color, len(f.Colors))
	for i, hex := range f.Colors {
		c, err := cardkit.ParseHex(hex)
		if err != nil {
			return err
		}
		colors[i] = c
	}

	tile := f.Spacing * cardkit.PointsPerInch * f.Scale
	if tile < minTileSize {
		tile = minTileSize
	}

	if err := r.stampPattern(f, colors, tile, bbox); err != nil {
		cardkit.Logger().Warn("pattern stamping failed, using solid fill",
			"kind", f.Kind, "err", err)
		return r.solidRect(colors[0], bbox)
	}
	return nil
}

// stampPattern fills bbox with a grid of tiles, one extra row and column
// so a rotated grid still covers the corners. The bbox is clipped so the
// overhang never paints outside it.
func (r *Renderer) stampPattern(f cardkit.PatternFill, colors []cardkit.Color, tile float64, bbox rectPts) error {
	r.surf.PushState()
	defer r.surf.PopState()

	r.surf.BeginClip([]surface.Point{
		{X: bbox.X, Y: bbox.Y},
		{X: bbox.X + bbox.W, Y: bbox.Y},
		{X: bbox.X + bbox.W, Y: bbox.Y + bbox.H},
		{X: bbox.X, Y: bbox.Y + bbox.H},
	})
	defer r.surf.EndClip()

	if f.Rotation != 0 {
		r.surf.RotateAbout(f.Rotation, bbox.X+bbox.W/2, bbox.Y+bbox.H/2)
	}

	cols := int(math.Ceil(bbox.W/tile)) + 1
	rows := int(math.Ceil(bbox.H/tile)) + 1
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := bbox.X + float64(col)*tile
			y := bbox.Y + float64(row)*tile
			if err := r.drawTile(f.Kind, colors, x, y, tile); err != nil {
				return err
			}
		}
	}
	return nil
}

// drawTile draws one pattern tile with its bottom-left corner at (x, y).
func (r *Renderer) drawTile(kind cardkit.PatternKind, colors []cardkit.Color, x, y, tile float64) error {
	switch kind {
	case cardkit.PatternStripes:
		// Vertical bands, one per color.
		band := tile / float64(len(colors))
		for i, c := range colors {
			r.surf.SetFillColor(c)
			rectPath(r.surf, x+float64(i)*band, y, band, tile)
			if err := r.surf.DrawPath(surface.PaintFill); err != nil {
				return err
			}
		}
		return nil

	case cardkit.PatternDots:
		if len(colors) > 1 {
			r.surf.SetFillColor(colors[1])
			rectPath(r.surf, x, y, tile, tile)
			if err := r.surf.DrawPath(surface.PaintFill); err != nil {
				return err
			}
		}
		r.surf.SetFillColor(colors[0])
		circlePath(r.surf, x+tile/2, y+tile/2, tile*0.3)
		return r.surf.DrawPath(surface.PaintFill)

	case cardkit.PatternGrid:
		if len(colors) > 1 {
			r.surf.SetFillColor(colors[1])
			rectPath(r.surf, x, y, tile, tile)
			if err := r.surf.DrawPath(surface.PaintFill); err != nil {
				return err
			}
		}
		// Bottom and left edges; adjacent tiles supply the other two.
		r.surf.SetStrokeColor(colors[0])
		r.surf.SetLineWidth(math.Max(1, tile*0.05))
		r.surf.MoveTo(x, y)
		r.surf.LineTo(x+tile, y)
		r.surf.MoveTo(x, y)
		r.surf.LineTo(x, y+tile)
		return r.surf.DrawPath(surface.PaintStroke)

	case cardkit.PatternCheckerboard:
		second := cardkit.White
		if len(colors) > 1 {
			second = colors[1]
		}
		half := tile / 2
		quads := []struct {
			dx, dy float64
			c      cardkit.Color
		}{
			{0, 0, colors[0]},
			{half, 0, second},
			{0, half, second},
			{half, half, colors[0]},
		}
		for _, q := range quads {
			r.surf.SetFillColor(q.c)
			rectPath(r.surf, x+q.dx, y+q.dy, half, half)
			if err := r.surf.DrawPath(surface.PaintFill); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown pattern kind %q", kind)
	}
}
