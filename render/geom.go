package render

import "github.com/printfold/cardkit/surface"

// rectPts is an axis-aligned rectangle in page points, the bounding box
// unit passed to fill painters.
type rectPts struct {
	X, Y, W, H float64
}

// pathSink receives path construction calls. surface.Surface satisfies it
// directly; polyBuilder satisfies it by flattening curves, so the same
// shape outline code serves both drawing and clipping.
type pathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

var _ pathSink = (surface.Surface)(nil)

// curveFlattenSteps is the number of line segments used per cubic bezier
// when a curved outline is reduced to a clip polygon.
const curveFlattenSteps = 16

// polyBuilder collects an outline as a flat polygon.
type polyBuilder struct {
	pts   []surface.Point
	cur   surface.Point
	valid bool
}

func (b *polyBuilder) MoveTo(x, y float64) {
	b.cur = surface.Point{X: x, Y: y}
	b.valid = true
	b.pts = append(b.pts, b.cur)
}

func (b *polyBuilder) LineTo(x, y float64) {
	b.cur = surface.Point{X: x, Y: y}
	b.valid = true
	b.pts = append(b.pts, b.cur)
}

func (b *polyBuilder) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if !b.valid {
		b.MoveTo(x1, y1)
	}
	x0, y0 := b.cur.X, b.cur.Y
	for i := 1; i <= curveFlattenSteps; i++ {
		t := float64(i) / curveFlattenSteps
		u := 1 - t
		x := u*u*u*x0 + 3*u*u*t*x1 + 3*u*t*t*x2 + t*t*t*x3
		y := u*u*u*y0 + 3*u*u*t*y1 + 3*u*t*t*y2 + t*t*t*y3
		b.pts = append(b.pts, surface.Point{X: x, Y: y})
	}
	b.cur = surface.Point{X: x3, Y: y3}
}

func (b *polyBuilder) ClosePath() {}

// polygon flattens an outline emitter into clip polygon points.
func polygon(emit func(pathSink)) []surface.Point {
	var b polyBuilder
	emit(&b)
	return b.pts
}

// circlePath emits a circle as four cubic bezier quarters.
func circlePath(s pathSink, cx, cy, r float64) {
	ellipsePath(s, cx, cy, r, r)
}

// ellipsePath emits an axis-aligned ellipse with radii rx and ry.
func ellipsePath(s pathSink, cx, cy, rx, ry float64) {
	kx := rx * bezierCircleK
	ky := ry * bezierCircleK
	s.MoveTo(cx+rx, cy)
	s.CurveTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	s.CurveTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	s.CurveTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	s.CurveTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	s.ClosePath()
}
