package render

import (
	"math"

	"github.com/printfold/cardkit"
	"github.com/printfold/cardkit/surface"
	"github.com/printfold/cardkit/svgpath"
)

// renderPath draws a PathShape. Path coordinates are interpreted in user
// space (inches, scaled), then mapped onto the page with the panel offset.
// Gradient and pattern fills on paths use the whole page as their bounds
// because a path's extent is not known without evaluating it.
func (r *Renderer) renderPath(sh cardkit.PathShape, px, py float64) error {
	if junk := svgpath.UnknownLetters(sh.PathData); len(junk) > 0 {
		cardkit.Logger().Warn("ignoring unknown path commands",
			"letters", string(junk), "shape", sh.ID)
	}
	cmds, err := svgpath.Parse(sh.PathData)
	if err != nil {
		return err
	}

	scale := sh.Scale
	if scale <= 0 {
		scale = 1
	}
	k := cardkit.InchesToPoints(scale)

	bbox := rectPts{
		W: cardkit.InchesToPoints(cardkit.PageWidth),
		H: cardkit.InchesToPoints(cardkit.PageHeight),
	}
	emit := func(sink pathSink) { emitPathCommands(sink, cmds, px, py, k) }
	return r.paintShape(sh.ShapeBase, emit, bbox, pathPivot(emit, px, py))
}

// pathPivot approximates the rotation pivot as the center of the bounding
// box of the flattened path points. An empty path pivots on its origin.
func pathPivot(emit func(pathSink), ox, oy float64) surface.Point {
	pts := polygon(emit)
	if len(pts) == 0 {
		return surface.Point{X: ox, Y: oy}
	}
	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return surface.Point{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}
}

// emitPathCommands replays parsed path commands onto sink. The current
// point, subpath start, and smooth-curve reflections are tracked in user
// space; each emitted coordinate is ox + v*k.
//
// Quadratic curves are raised to cubics. Elliptical arcs are approximated
// by a straight line to the arc endpoint, which keeps paths using A for
// small decorative arcs usable without a full arc evaluator.
func emitPathCommands(sink pathSink, cmds []svgpath.Command, ox, oy, k float64) {
	var curX, curY float64
	var startX, startY float64
	var ctlX, ctlY float64 // last cubic control point
	var quadX, quadY float64
	var last byte

	tx := func(x float64) float64 { return ox + x*k }
	ty := func(y float64) float64 { return oy + y*k }
	curve := func(x1, y1, x2, y2, x3, y3 float64) {
		sink.CurveTo(tx(x1), ty(y1), tx(x2), ty(y2), tx(x3), ty(y3))
	}

	for _, cmd := range cmds {
		p := cmd.Params
		rel := cmd.Relative()

		switch cmd.Letter {
		case 'M', 'm':
			x, y := p[0], p[1]
			if rel {
				x += curX
				y += curY
			}
			curX, curY = x, y
			startX, startY = x, y
			sink.MoveTo(tx(x), ty(y))

		case 'L', 'l':
			x, y := p[0], p[1]
			if rel {
				x += curX
				y += curY
			}
			curX, curY = x, y
			sink.LineTo(tx(x), ty(y))

		case 'H', 'h':
			x := p[0]
			if rel {
				x += curX
			}
			curX = x
			sink.LineTo(tx(x), ty(curY))

		case 'V', 'v':
			y := p[0]
			if rel {
				y += curY
			}
			curY = y
			sink.LineTo(tx(curX), ty(y))

		case 'C', 'c':
			x1, y1, x2, y2, x, y := p[0], p[1], p[2], p[3], p[4], p[5]
			if rel {
				x1 += curX
				y1 += curY
				x2 += curX
				y2 += curY
				x += curX
				y += curY
			}
			curve(x1, y1, x2, y2, x, y)
			ctlX, ctlY = x2, y2
			curX, curY = x, y

		case 'S', 's':
			x2, y2, x, y := p[0], p[1], p[2], p[3]
			if rel {
				x2 += curX
				y2 += curY
				x += curX
				y += curY
			}
			x1, y1 := curX, curY
			if last == 'C' || last == 'c' || last == 'S' || last == 's' {
				x1 = 2*curX - ctlX
				y1 = 2*curY - ctlY
			}
			curve(x1, y1, x2, y2, x, y)
			ctlX, ctlY = x2, y2
			curX, curY = x, y

		case 'Q', 'q':
			qx, qy, x, y := p[0], p[1], p[2], p[3]
			if rel {
				qx += curX
				qy += curY
				x += curX
				y += curY
			}
			emitQuadratic(curve, curX, curY, qx, qy, x, y)
			quadX, quadY = qx, qy
			curX, curY = x, y

		case 'T', 't':
			x, y := p[0], p[1]
			if rel {
				x += curX
				y += curY
			}
			qx, qy := curX, curY
			if last == 'Q' || last == 'q' || last == 'T' || last == 't' {
				qx = 2*curX - quadX
				qy = 2*curY - quadY
			}
			emitQuadratic(curve, curX, curY, qx, qy, x, y)
			quadX, quadY = qx, qy
			curX, curY = x, y

		case 'A', 'a':
			x, y := p[5], p[6]
			if rel {
				x += curX
				y += curY
			}
			curX, curY = x, y
			sink.LineTo(tx(x), ty(y))

		case 'Z', 'z':
			sink.ClosePath()
			curX, curY = startX, startY
		}
		last = cmd.Letter
	}
}

// emitQuadratic raises a quadratic bezier to the equivalent cubic. The
// cubic control points sit two thirds of the way from each endpoint to the
// quadratic control point.
func emitQuadratic(curve func(x1, y1, x2, y2, x3, y3 float64), x0, y0, qx, qy, x, y float64) {
	c1x := x0 + 2.0/3.0*(qx-x0)
	c1y := y0 + 2.0/3.0*(qy-y0)
	c2x := x + 2.0/3.0*(qx-x)
	c2y := y + 2.0/3.0*(qy-y)
	curve(c1x, c1y, c2x, c2y, x, y)
}
