package surface

import "github.com/printfold/cardkit"

// Gradient op kinds recorded only by GradientRecorder.
const (
	OpLinearGradient OpKind = iota + 100
	OpRadialGradient
)

// GradientRecorder is a Recorder that also satisfies GradientSurface. The
// plain Recorder deliberately does not, so tests can cover both the native
// gradient path and the band-synthesis fallback.
type GradientRecorder struct {
	Recorder

	// GradErr, when non-nil, is returned from both gradient methods so
	// tests can force the fallback path.
	GradErr error
}

// NewGradientRecorder returns an empty GradientRecorder.
func NewGradientRecorder() *GradientRecorder {
	return &GradientRecorder{Recorder: Recorder{CharWidth: 0.6}}
}

func (r *GradientRecorder) LinearGradient(x, y, w, h float64, from, to cardkit.Color, x1, y1, x2, y2 float64) error {
	if r.GradErr != nil {
		return r.GradErr
	}
	r.record(Op{
		Kind:   OpLinearGradient,
		Coords: []float64{x, y, w, h, x1, y1, x2, y2},
		Color:  from,
	})
	return nil
}

func (r *GradientRecorder) RadialGradient(x, y, w, h float64, from, to cardkit.Color, cx, cy, rad float64) error {
	if r.GradErr != nil {
		return r.GradErr
	}
	r.record(Op{
		Kind:   OpRadialGradient,
		Coords: []float64{x, y, w, h, cx, cy, rad},
		Color:  from,
	})
	return nil
}

var _ GradientSurface = (*GradientRecorder)(nil)
var _ Surface = (*GradientRecorder)(nil)
