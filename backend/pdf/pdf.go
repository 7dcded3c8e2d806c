// Package pdf implements the drawing surface on top of a PDF document.
//
// The surface model uses points with a bottom-left origin; fpdf works
// top-left, so every y coordinate is flipped against the page height.
// Fonts map onto the PDF core-14 set, which needs no embedding and keeps
// output files small.
package pdf

import (
	"io"

	"codeberg.org/go-pdf/fpdf"

	"github.com/printfold/cardkit"
	"github.com/printfold/cardkit/surface"
)

// gstate is the part of the graphics state fpdf does not save across
// TransformBegin/TransformEnd.
type gstate struct {
	fill, stroke cardkit.Color
	lineWidth    float64
	alpha        float64
	dash         []float64
}

// Surface draws onto a PDF document. Create one with New, render into it,
// then call WriteTo or Save.
type Surface struct {
	doc   *fpdf.Fpdf
	pageH float64
	cur   gstate
	stack []gstate
}

var (
	_ surface.Surface         = (*Surface)(nil)
	_ surface.GradientSurface = (*Surface)(nil)
)

// New returns an empty PDF surface. Pages are added by BeginPage.
func New() *Surface {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: 612, Ht: 792},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)
	return &Surface{
		doc: doc,
		cur: gstate{lineWidth: 1, alpha: 1},
	}
}

// Err returns the first error the underlying document accumulated, if any.
func (s *Surface) Err() error { return s.doc.Error() }

// WriteTo writes the finished document.
func (s *Surface) WriteTo(w io.Writer) error { return s.doc.Output(w) }

// Save writes the finished document to a file and closes it.
func (s *Surface) Save(path string) error { return s.doc.OutputFileAndClose(path) }

// flipY converts a bottom-left y coordinate to fpdf's top-left frame.
func (s *Surface) flipY(y float64) float64 { return s.pageH - y }

func (s *Surface) BeginPage(width, height float64) {
	s.pageH = height
	s.doc.AddPageFormat("P", fpdf.SizeType{Wd: width, Ht: height})
}

func (s *Surface) PushState() {
	saved := s.cur
	saved.dash = append([]float64(nil), s.cur.dash...)
	s.stack = append(s.stack, saved)
	s.doc.TransformBegin()
}

func (s *Surface) PopState() {
	s.doc.TransformEnd()
	if len(s.stack) == 0 {
		return
	}
	saved := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]

	// Re-apply everything fpdf's transform stack does not restore.
	s.SetFillColor(saved.fill)
	s.SetStrokeColor(saved.stroke)
	s.SetLineWidth(saved.lineWidth)
	s.SetOpacity(saved.alpha)
	s.SetDash(saved.dash)
}

func (s *Surface) Translate(dx, dy float64) {
	s.doc.TransformTranslate(dx, -dy)
}

func (s *Surface) RotateAbout(deg, x, y float64) {
	// fpdf rotates counterclockwise as seen on the page, matching the
	// bottom-left frame; only the pivot needs flipping.
	s.doc.TransformRotate(deg, x, s.flipY(y))
}

func rgb255(c cardkit.Color) (int, int, int) {
	return int(c.R*255 + 0.5), int(c.G*255 + 0.5), int(c.B*255 + 0.5)
}

func (s *Surface) SetFillColor(c cardkit.Color) {
	s.cur.fill = c
	r, g, b := rgb255(c)
	s.doc.SetFillColor(r, g, b)
	s.doc.SetTextColor(r, g, b)
}

func (s *Surface) SetStrokeColor(c cardkit.Color) {
	s.cur.stroke = c
	r, g, b := rgb255(c)
	s.doc.SetDrawColor(r, g, b)
}

func (s *Surface) SetLineWidth(w float64) {
	s.cur.lineWidth = w
	s.doc.SetLineWidth(w)
}

func (s *Surface) SetOpacity(alpha float64) {
	s.cur.alpha = alpha
	s.doc.SetAlpha(alpha, "Normal")
}

func (s *Surface) SetDash(pattern []float64) {
	s.cur.dash = append([]float64(nil), pattern...)
	s.doc.SetDashPattern(append([]float64(nil), pattern...), 0)
}

func (s *Surface) MoveTo(x, y float64) {
	s.doc.MoveTo(x, s.flipY(y))
}

func (s *Surface) LineTo(x, y float64) {
	s.doc.LineTo(x, s.flipY(y))
}

func (s *Surface) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	s.doc.CurveBezierCubicTo(x1, s.flipY(y1), x2, s.flipY(y2), x3, s.flipY(y3))
}

func (s *Surface) ClosePath() {
	s.doc.ClosePath()
}

func (s *Surface) DrawPath(mode surface.PaintMode) error {
	switch mode {
	case surface.PaintFill:
		s.doc.DrawPath("F")
	case surface.PaintStroke:
		s.doc.DrawPath("D")
	default:
		s.doc.DrawPath("FD")
	}
	return s.doc.Error()
}

func (s *Surface) BeginClip(pts []surface.Point) {
	poly := make([]fpdf.PointType, len(pts))
	for i, p := range pts {
		poly[i] = fpdf.PointType{X: p.X, Y: s.flipY(p.Y)}
	}
	s.doc.ClipPolygon(poly, false)
}

func (s *Surface) EndClip() {
	s.doc.ClipEnd()
}

func (s *Surface) DrawImage(path string, x, y, w, h float64) error {
	opts := fpdf.ImageOptions{ReadDpi: false}
	s.doc.ImageOptions(path, x, s.flipY(y+h), w, h, false, opts, 0, "")
	return s.doc.Error()
}

func (s *Surface) DrawText(text string, x, y float64, font cardkit.FontSpec) error {
	family, style := coreFont(font)
	s.doc.SetFont(family, style, font.Size)
	s.doc.Text(x, s.flipY(y), text)
	return s.doc.Error()
}

func (s *Surface) MeasureTextWidth(text string, font cardkit.FontSpec) float64 {
	family, style := coreFont(font)
	s.doc.SetFont(family, style, font.Size)
	return s.doc.GetStringWidth(text)
}

// LinearGradient implements surface.GradientSurface with fpdf's two-color
// axial shading.
func (s *Surface) LinearGradient(x, y, w, h float64, from, to cardkit.Color, x1, y1, x2, y2 float64) error {
	r1, g1, b1 := rgb255(from)
	r2, g2, b2 := rgb255(to)
	// Gradient geometry is in fractions of the rect; flipping the rect to
	// top-left inverts the fractional y axis too.
	s.doc.LinearGradient(x, s.flipY(y+h), w, h, r1, g1, b1, r2, g2, b2, x1, 1-y1, x2, 1-y2)
	return s.doc.Error()
}

// RadialGradient implements surface.GradientSurface with fpdf's two-color
// radial shading, using a single center for both circles.
func (s *Surface) RadialGradient(x, y, w, h float64, from, to cardkit.Color, cx, cy, r float64) error {
	r1, g1, b1 := rgb255(from)
	r2, g2, b2 := rgb255(to)
	s.doc.RadialGradient(x, s.flipY(y+h), w, h, r1, g1, b1, r2, g2, b2, cx, 1-cy, cx, 1-cy, r)
	return s.doc.Error()
}

// coreFont maps a font spec onto the PDF core-14 faces.
func coreFont(font cardkit.FontSpec) (family, style string) {
	switch font.Family {
	case "times", "times-roman", "serif", "roman", "georgia":
		family = "Times"
	case "courier", "mono", "monospace":
		family = "Courier"
	default:
		family = "Helvetica"
	}
	switch font.Style {
	case cardkit.StyleBold:
		style = "B"
	case cardkit.StyleItalic:
		style = "I"
	case cardkit.StyleBoldItalic:
		style = "BI"
	}
	return family, style
}
