package surface

import "github.com/printfold/cardkit"

// OpKind identifies a recorded operation.
type OpKind uint8

const (
	OpBeginPage OpKind = iota
	OpPushState
	OpPopState
	OpTranslate
	OpRotateAbout
	OpSetFillColor
	OpSetStrokeColor
	OpSetLineWidth
	OpSetOpacity
	OpSetDash
	OpMoveTo
	OpLineTo
	OpCurveTo
	OpClosePath
	OpDrawPath
	OpBeginClip
	OpEndClip
	OpDrawImage
	OpDrawText
)

var opKindNames = [...]string{
	OpBeginPage:      "BeginPage",
	OpPushState:      "PushState",
	OpPopState:       "PopState",
	OpTranslate:      "Translate",
	OpRotateAbout:    "RotateAbout",
	OpSetFillColor:   "SetFillColor",
	OpSetStrokeColor: "SetStrokeColor",
	OpSetLineWidth:   "SetLineWidth",
	OpSetOpacity:     "SetOpacity",
	OpSetDash:        "SetDash",
	OpMoveTo:         "MoveTo",
	OpLineTo:         "LineTo",
	OpCurveTo:        "CurveTo",
	OpClosePath:      "ClosePath",
	OpDrawPath:       "DrawPath",
	OpBeginClip:      "BeginClip",
	OpEndClip:        "EndClip",
	OpDrawImage:      "DrawImage",
	OpDrawText:       "DrawText",
}

func (k OpKind) String() string {
	switch k {
	case OpLinearGradient:
		return "LinearGradient"
	case OpRadialGradient:
		return "RadialGradient"
	}
	if int(k) < len(opKindNames) {
		return opKindNames[k]
	}
	return "Unknown"
}

// Op is one recorded surface call. Only the fields relevant to the Kind are
// populated.
type Op struct {
	Kind   OpKind
	Coords []float64 // positional arguments in call order
	Color  cardkit.Color
	Mode   PaintMode
	Dash   []float64
	Points []Point // BeginClip polygon
	Text   string  // DrawText string or DrawImage path
	Font   cardkit.FontSpec
}

// Recorder is a Surface that captures calls as Ops instead of drawing.
// Tests use it to assert on the operation stream the renderer emits.
//
// Text measurement uses a simple width model: CharWidth times the font size
// per rune. Tests that need exact widths set CharWidth accordingly.
type Recorder struct {
	ops []Op

	// CharWidth is the advance of one rune as a fraction of the font
	// size. The default 0.6 approximates Helvetica.
	CharWidth float64

	// Fail, when non-nil, is consulted before DrawPath, DrawImage and
	// DrawText; a non-nil return is propagated. Tests use it to exercise
	// error paths.
	Fail func(kind OpKind) error

	depth     int // PushState minus PopState
	clipDepth int // BeginClip minus EndClip
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{CharWidth: 0.6}
}

// Ops returns the recorded operations in call order.
func (r *Recorder) Ops() []Op { return r.ops }

// Count returns how many recorded operations have the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// First returns the first operation of the given kind, or nil.
func (r *Recorder) First(kind OpKind) *Op {
	for i := range r.ops {
		if r.ops[i].Kind == kind {
			return &r.ops[i]
		}
	}
	return nil
}

// Last returns the last operation of the given kind, or nil.
func (r *Recorder) Last(kind OpKind) *Op {
	for i := len(r.ops) - 1; i >= 0; i-- {
		if r.ops[i].Kind == kind {
			return &r.ops[i]
		}
	}
	return nil
}

// Balanced reports whether every PushState has a matching PopState and
// every BeginClip a matching EndClip.
func (r *Recorder) Balanced() bool { return r.depth == 0 && r.clipDepth == 0 }

func (r *Recorder) record(op Op) { r.ops = append(r.ops, op) }

func (r *Recorder) fail(kind OpKind) error {
	if r.Fail == nil {
		return nil
	}
	return r.Fail(kind)
}

func (r *Recorder) BeginPage(width, height float64) {
	r.record(Op{Kind: OpBeginPage, Coords: []float64{width, height}})
}

func (r *Recorder) PushState() {
	r.depth++
	r.record(Op{Kind: OpPushState})
}

func (r *Recorder) PopState() {
	r.depth--
	r.record(Op{Kind: OpPopState})
}

func (r *Recorder) Translate(dx, dy float64) {
	r.record(Op{Kind: OpTranslate, Coords: []float64{dx, dy}})
}

func (r *Recorder) RotateAbout(deg, x, y float64) {
	r.record(Op{Kind: OpRotateAbout, Coords: []float64{deg, x, y}})
}

func (r *Recorder) SetFillColor(c cardkit.Color) {
	r.record(Op{Kind: OpSetFillColor, Color: c})
}

func (r *Recorder) SetStrokeColor(c cardkit.Color) {
	r.record(Op{Kind: OpSetStrokeColor, Color: c})
}

func (r *Recorder) SetLineWidth(w float64) {
	r.record(Op{Kind: OpSetLineWidth, Coords: []float64{w}})
}

func (r *Recorder) SetOpacity(alpha float64) {
	r.record(Op{Kind: OpSetOpacity, Coords: []float64{alpha}})
}

func (r *Recorder) SetDash(pattern []float64) {
	dash := make([]float64, len(pattern))
	copy(dash, pattern)
	r.record(Op{Kind: OpSetDash, Dash: dash})
}

func (r *Recorder) MoveTo(x, y float64) {
	r.record(Op{Kind: OpMoveTo, Coords: []float64{x, y}})
}

func (r *Recorder) LineTo(x, y float64) {
	r.record(Op{Kind: OpLineTo, Coords: []float64{x, y}})
}

func (r *Recorder) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	r.record(Op{Kind: OpCurveTo, Coords: []float64{x1, y1, x2, y2, x3, y3}})
}

func (r *Recorder) ClosePath() {
	r.record(Op{Kind: OpClosePath})
}

func (r *Recorder) DrawPath(mode PaintMode) error {
	if err := r.fail(OpDrawPath); err != nil {
		return err
	}
	r.record(Op{Kind: OpDrawPath, Mode: mode})
	return nil
}

func (r *Recorder) BeginClip(pts []Point) {
	r.clipDepth++
	poly := make([]Point, len(pts))
	copy(poly, pts)
	r.record(Op{Kind: OpBeginClip, Points: poly})
}

func (r *Recorder) EndClip() {
	r.clipDepth--
	r.record(Op{Kind: OpEndClip})
}

func (r *Recorder) DrawImage(path string, x, y, w, h float64) error {
	if err := r.fail(OpDrawImage); err != nil {
		return err
	}
	r.record(Op{Kind: OpDrawImage, Text: path, Coords: []float64{x, y, w, h}})
	return nil
}

func (r *Recorder) DrawText(s string, x, y float64, font cardkit.FontSpec) error {
	if err := r.fail(OpDrawText); err != nil {
		return err
	}
	r.record(Op{Kind: OpDrawText, Text: s, Coords: []float64{x, y}, Font: font})
	return nil
}

func (r *Recorder) MeasureTextWidth(s string, font cardkit.FontSpec) float64 {
	n := 0
	for range s {
		n++
	}
	return float64(n) * r.CharWidth * font.Size
}

var _ Surface = (*Recorder)(nil)
