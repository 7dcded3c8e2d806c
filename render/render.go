// Package render turns a card scene into drawing operations on a surface.
//
// The renderer walks the card panel by panel, sorts each panel's elements
// into z order, and draws shapes, text, and images through the
// surface.Surface abstraction. All scene coordinates are inches; the
// renderer converts to points and adds the owning panel's offset.
//
// Failures are two-tier: scene validation fails the whole render up front,
// while per-element failures (a missing image, a malformed sub-path, an
// unknown pattern kind) are logged and skipped so one bad element degrades
// the card instead of aborting it.
package render

import (
	"sort"

	"github.com/printfold/cardkit"
	"github.com/printfold/cardkit/decor"
	"github.com/printfold/cardkit/surface"
	"github.com/printfold/cardkit/textfit"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithDecorLibrary sets the library used to expand decorative references.
// The default is the builtin set.
func WithDecorLibrary(lib *decor.Library) Option {
	return func(r *Renderer) { r.lib = lib }
}

// WithMeasurer overrides the text measurer. By default the renderer
// measures through the surface so fitting agrees with the output device.
func WithMeasurer(m textfit.Measurer) Option {
	return func(r *Renderer) { r.measurer = m }
}

// WithFoldLines controls whether fold guides are drawn. On by default.
func WithFoldLines(on bool) Option {
	return func(r *Renderer) { r.foldLines = on }
}

// WithAdjustmentObserver registers a callback invoked with every text-fit
// decision, for diagnostics and tests.
func WithAdjustmentObserver(fn func(el cardkit.TextElement, adj cardkit.AdjustmentResult)) Option {
	return func(r *Renderer) { r.observe = fn }
}

// Renderer draws cards onto a surface. A Renderer is stateless between
// RenderCard calls and may be reused, but is not safe for concurrent use
// because the underlying surface is not.
type Renderer struct {
	surf      surface.Surface
	lib       *decor.Library
	measurer  textfit.Measurer
	foldLines bool
	observe   func(cardkit.TextElement, cardkit.AdjustmentResult)
}

// New returns a Renderer targeting surf.
func New(surf surface.Surface, opts ...Option) *Renderer {
	r := &Renderer{
		surf:      surf,
		lib:       decor.NewLibrary(),
		foldLines: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.measurer == nil {
		r.measurer = surfaceMeasurer{surf}
	}
	return r
}

// surfaceMeasurer adapts the output surface's text metrics to the textfit
// interface, so fitting decisions match what the device will draw.
type surfaceMeasurer struct {
	surf surface.Surface
}

func (m surfaceMeasurer) TextWidth(s string, spec cardkit.FontSpec) float64 {
	return m.surf.MeasureTextWidth(s, spec)
}

// RenderCard validates the card and draws it as one page. Validation errors
// abort before anything is drawn; element-level failures are logged and
// skipped.
func (r *Renderer) RenderCard(card *cardkit.Card) error {
	if err := card.Validate(); err != nil {
		return err
	}

	pageW := cardkit.InchesToPoints(cardkit.PageWidth)
	pageH := cardkit.InchesToPoints(cardkit.PageHeight)
	r.surf.BeginPage(pageW, pageH)

	for i := range card.Panels {
		r.renderPanel(&card.Panels[i], card.Theme)
	}

	if r.foldLines {
		r.drawFoldLines(card.Fold)
	}
	return nil
}

// drawable pairs an element with its sort keys: layer first, then the
// declaration order within the panel for stable stacking.
type drawable struct {
	layer int
	order int
	draw  func()
}

func (r *Renderer) renderPanel(panel *cardkit.Panel, theme *cardkit.Theme) {
	x := cardkit.InchesToPoints(panel.X)
	y := cardkit.InchesToPoints(panel.Y)
	w := cardkit.InchesToPoints(panel.Width)
	h := cardkit.InchesToPoints(panel.Height)

	r.surf.PushState()
	defer r.surf.PopState()

	// Quarter-fold top panels print upside down so they read correctly
	// after folding.
	if panel.Rotation != 0 {
		r.surf.RotateAbout(panel.Rotation, x+w/2, y+h/2)
	}

	if panel.BackgroundColor != "" {
		if bg, err := cardkit.ParseHex(panel.BackgroundColor); err == nil {
			r.surf.SetFillColor(bg)
			rectPath(r.surf, x, y, w, h)
			if err := r.surf.DrawPath(surface.PaintFill); err != nil {
				cardkit.Logger().Warn("panel background failed", "panel", panel.Role, "err", err)
			}
		}
	}

	if panel.Border != nil {
		r.drawBorder(panel.Border, x, y, w, h)
	}

	var items []drawable
	order := 0
	add := func(layer int, draw func()) {
		items = append(items, drawable{layer: layer, order: order, draw: draw})
		order++
	}
	for _, s := range panel.Shapes {
		shape := s
		add(shape.Layer(), func() { r.drawShape(shape, panel) })
	}
	for _, img := range panel.Images {
		img := img
		add(img.Layer(), func() { r.drawImage(img, panel) })
	}
	for _, txt := range panel.Texts {
		txt := txt
		add(txt.Layer(), func() { r.drawText(txt, panel, theme) })
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return items[i].order < items[j].order
	})
	for _, item := range items {
		item.draw()
	}
}

// drawBorder strokes a frame inset from the panel edges, with the dash
// pattern of the border style.
func (r *Renderer) drawBorder(border *cardkit.Border, x, y, w, h float64) {
	color, err := cardkit.ParseHex(border.Color)
	if err != nil {
		cardkit.Logger().Warn("invalid border color", "color", border.Color, "err", err)
		return
	}

	inset := cardkit.InchesToPoints(border.Inset)
	bx, by := x+inset, y+inset
	bw, bh := w-2*inset, h-2*inset
	if bw <= 0 || bh <= 0 {
		cardkit.Logger().Warn("border inset larger than panel", "inset", border.Inset)
		return
	}

	r.surf.PushState()
	defer r.surf.PopState()

	r.surf.SetStrokeColor(color)
	r.surf.SetLineWidth(border.Width)
	if dash := border.Style.DashPattern(); dash != nil {
		r.surf.SetDash(dash)
		defer r.surf.SetDash(nil)
	}

	if border.Corner > 0 {
		roundedRectPath(r.surf, bx, by, bw, bh, cardkit.InchesToPoints(border.Corner))
	} else {
		rectPath(r.surf, bx, by, bw, bh)
	}
	if err := r.surf.DrawPath(surface.PaintStroke); err != nil {
		cardkit.Logger().Warn("border stroke failed", "err", err)
	}
}

// drawFoldLines draws light gray dashed guides where the sheet folds.
func (r *Renderer) drawFoldLines(fold cardkit.FoldType) {
	pageW := cardkit.InchesToPoints(cardkit.PageWidth)
	pageH := cardkit.InchesToPoints(cardkit.PageHeight)

	r.surf.PushState()
	defer r.surf.PopState()

	r.surf.SetStrokeColor(cardkit.RGB(0.7, 0.7, 0.7))
	r.surf.SetLineWidth(cardkit.FoldLineWidth)
	r.surf.SetDash([]float64{3, 3})
	defer r.surf.SetDash(nil)

	xs, ys := fold.FoldLines()
	for _, fx := range xs {
		px := cardkit.InchesToPoints(fx)
		r.surf.MoveTo(px, 0)
		r.surf.LineTo(px, pageH)
	}
	for _, fy := range ys {
		py := cardkit.InchesToPoints(fy)
		r.surf.MoveTo(0, py)
		r.surf.LineTo(pageW, py)
	}
	if err := r.surf.DrawPath(surface.PaintStroke); err != nil {
		cardkit.Logger().Warn("fold lines failed", "err", err)
	}
}

// rectPath builds an axis-aligned rectangle as the current path.
func rectPath(s pathSink, x, y, w, h float64) {
	s.MoveTo(x, y)
	s.LineTo(x+w, y)
	s.LineTo(x+w, y+h)
	s.LineTo(x, y+h)
	s.ClosePath()
}

// bezierCircleK is the control point offset ratio for approximating a
// quarter circle with one cubic bezier.
const bezierCircleK = 0.5522847498307936

// roundedRectPath builds a rectangle with circular corner arcs of radius
// rad, clamped to half the shorter side.
func roundedRectPath(s pathSink, x, y, w, h, rad float64) {
	if max := minf(w, h) / 2; rad > max {
		rad = max
	}
	k := rad * bezierCircleK

	s.MoveTo(x+rad, y)
	s.LineTo(x+w-rad, y)
	s.CurveTo(x+w-rad+k, y, x+w, y+rad-k, x+w, y+rad)
	s.LineTo(x+w, y+h-rad)
	s.CurveTo(x+w, y+h-rad+k, x+w-rad+k, y+h, x+w-rad, y+h)
	s.LineTo(x+rad, y+h)
	s.CurveTo(x+rad-k, y+h, x, y+h-rad+k, x, y+h-rad)
	s.LineTo(x, y+rad)
	s.CurveTo(x, y+rad-k, x+rad-k, y, x+rad, y)
	s.ClosePath()
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
