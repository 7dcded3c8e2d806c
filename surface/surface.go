// Package surface defines the drawing abstraction the renderer targets.
//
// A Surface is a stateful page-oriented drawing device working in points
// with a bottom-left origin. The renderer drives it with path construction,
// state push/pop, and draw calls; concrete backends translate those into an
// output format. The Recorder in this package captures the calls as typed
// operations for inspection in tests.
//
// Optional backend abilities (native gradients) are expressed as capability
// interfaces. Callers type-assert and fall back when the assertion fails.
package surface

import "github.com/printfold/cardkit"

// Point is a coordinate pair in page points.
type Point struct {
	X, Y float64
}

// PaintMode selects how DrawPath renders the current path.
type PaintMode uint8

const (
	// PaintFill fills the path with the current fill color.
	PaintFill PaintMode = iota
	// PaintStroke strokes the path outline with the current stroke color.
	PaintStroke
	// PaintFillStroke fills then strokes.
	PaintFillStroke
)

func (m PaintMode) String() string {
	switch m {
	case PaintFill:
		return "Fill"
	case PaintStroke:
		return "Stroke"
	case PaintFillStroke:
		return "FillStroke"
	default:
		return "Unknown"
	}
}

// Surface is a page-oriented drawing device. All coordinates are in points
// with the origin at the bottom-left of the page.
//
// Graphics state (colors, line width, opacity, dash, transform, clip) is
// saved by PushState and restored by the matching PopState. Callers must
// pair them strictly.
//
// Surfaces are not safe for concurrent use.
type Surface interface {
	// BeginPage starts a new page of the given size in points. The first
	// call creates the first page.
	BeginPage(width, height float64)

	// PushState saves the full graphics state.
	PushState()
	// PopState restores the most recently pushed state.
	PopState()
	// Translate shifts the coordinate origin.
	Translate(dx, dy float64)
	// RotateAbout rotates the coordinate system by deg degrees
	// counterclockwise around the point (x, y).
	RotateAbout(deg, x, y float64)

	SetFillColor(c cardkit.Color)
	SetStrokeColor(c cardkit.Color)
	SetLineWidth(w float64)
	// SetOpacity sets the alpha for subsequent fills and strokes, [0, 1].
	SetOpacity(alpha float64)
	// SetDash sets the stroke dash pattern in points. An empty or nil
	// pattern restores a solid stroke.
	SetDash(pattern []float64)

	// Path construction. A path is built with MoveTo/LineTo/CurveTo/
	// ClosePath and consumed by the next DrawPath call.
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// CurveTo appends a cubic bezier from the current point through the
	// control points (x1, y1) and (x2, y2) to (x3, y3).
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
	// DrawPath renders and clears the current path.
	DrawPath(mode PaintMode) error

	// BeginClip intersects the clip region with the polygon. Curved clip
	// regions are flattened to polygons by the caller. Every BeginClip
	// must be balanced by EndClip.
	BeginClip(pts []Point)
	EndClip()

	// DrawImage places the image file into the rectangle (x, y, w, h).
	DrawImage(path string, x, y, w, h float64) error

	// DrawText draws s with its baseline starting at (x, y) using the
	// current fill color.
	DrawText(s string, x, y float64, font cardkit.FontSpec) error
	// MeasureTextWidth returns the advance width of s in points.
	MeasureTextWidth(s string, font cardkit.FontSpec) float64
}

// GradientSurface is implemented by surfaces with native gradient fills.
// Both methods paint the rectangle (x, y, w, h); the gradient geometry
// arguments are fractions of that rectangle. Backends that cannot honor a
// request return an error and the caller falls back to band synthesis.
type GradientSurface interface {
	// LinearGradient fills the rect with a linear blend from 'from' at
	// (x1, y1) to 'to' at (x2, y2).
	LinearGradient(x, y, w, h float64, from, to cardkit.Color, x1, y1, x2, y2 float64) error
	// RadialGradient fills the rect with a radial blend centered at
	// (cx, cy) with radius r.
	RadialGradient(x, y, w, h float64, from, to cardkit.Color, cx, cy, r float64) error
}
