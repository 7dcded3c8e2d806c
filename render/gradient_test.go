package render

import (
	"errors"
	"testing"

	"github.com/printfold/cardkit"
	"github.com/printfold/cardkit/surface"
)

func twoStop(t *testing.T) cardkit.LinearGradientFill {
	t.Helper()
	g, err := cardkit.NewLinearGradientFill(0, []cardkit.ColorStop{
		{Position: 0, Color: "#000000"},
		{Position: 1, Color: "#ffffff"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func gradientRect(fill cardkit.FillStyle) *cardkit.Card {
	return frontCard(cardkit.Rect{
		ShapeBase: cardkit.ShapeBase{Fill: fill, Opacity: 1},
		X:         1, Y: 1, Width: 2, Height: 1,
	})
}

func TestGradientUsesNativeSurface(t *testing.T) {
	rec := surface.NewGradientRecorder()
	r := New(rec, WithFoldLines(false))

	if err := r.RenderCard(gradientRect(twoStop(t))); err != nil {
		t.Fatal(err)
	}
	if n := rec.Count(surface.OpLinearGradient); n != 1 {
		t.Fatalf("native gradient ops = %d, want 1", n)
	}
	if n := rec.Count(surface.OpDrawPath); n != 0 {
		t.Errorf("band draws alongside native gradient: %d", n)
	}
	grad := rec.First(surface.OpLinearGradient)
	// Gradient covers the shape bounding box: (108, 108) 144x72.
	if !coordsApprox(grad.Coords[:4], []float64{108, 108, 144, 72}) {
		t.Errorf("gradient bbox = %v", grad.Coords[:4])
	}
	if rec.Count(surface.OpBeginClip) != 1 {
		t.Error("gradient not clipped to shape outline")
	}
}

func TestGradientFallsBackToBands(t *testing.T) {
	// A surface without gradient support gets band synthesis.
	rec := surface.NewRecorder()
	r := New(rec, WithFoldLines(false))

	if err := r.RenderCard(gradientRect(twoStop(t))); err != nil {
		t.Fatal(err)
	}
	if n := rec.Count(surface.OpDrawPath); n != gradientBands {
		t.Errorf("band draws = %d, want %d", n, gradientBands)
	}
	if !rec.Balanced() {
		t.Error("unbalanced after band synthesis")
	}

	first := rec.First(surface.OpSetFillColor)
	last := rec.Last(surface.OpSetFillColor)
	if !approx(first.Color.R, 0) || !approx(last.Color.R, 1) {
		t.Errorf("band colors run %v..%v, want black..white", first.Color, last.Color)
	}
}

func TestGradientNativeErrorFallsBack(t *testing.T) {
	rec := surface.NewGradientRecorder()
	rec.GradErr = errors.New("shading refused")
	r := New(rec, WithFoldLines(false))

	if err := r.RenderCard(gradientRect(twoStop(t))); err != nil {
		t.Fatal(err)
	}
	if n := rec.Count(surface.OpLinearGradient); n != 0 {
		t.Errorf("failed native gradient recorded %d ops", n)
	}
	if n := rec.Count(surface.OpDrawPath); n != gradientBands {
		t.Errorf("band draws = %d, want %d after native failure", n, gradientBands)
	}
}

func TestMultiStopGradientUsesBands(t *testing.T) {
	rec := surface.NewGradientRecorder()
	r := New(rec, WithFoldLines(false))

	g, err := cardkit.NewLinearGradientFill(90, []cardkit.ColorStop{
		{Position: 0, Color: "#ff0000"},
		{Position: 0.5, Color: "#00ff00"},
		{Position: 1, Color: "#0000ff"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := r.RenderCard(gradientRect(g)); err != nil {
		t.Fatal(err)
	}
	if n := rec.Count(surface.OpLinearGradient); n != 0 {
		t.Errorf("three-stop gradient used the two-color native path")
	}
	if n := rec.Count(surface.OpDrawPath); n != gradientBands {
		t.Errorf("band draws = %d, want %d", n, gradientBands)
	}
}

func TestInteriorStopPositionsUseBands(t *testing.T) {
	// Stops at (0.3, 0.8) cannot be expressed as a native full-span ramp;
	// the bands honor the positions by clamping outside them.
	rec := surface.NewGradientRecorder()
	r := New(rec, WithFoldLines(false))

	g, err := cardkit.NewLinearGradientFill(0, []cardkit.ColorStop{
		{Position: 0.3, Color: "#000000"},
		{Position: 0.8, Color: "#ffffff"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := r.RenderCard(gradientRect(g)); err != nil {
		t.Fatal(err)
	}
	if n := rec.Count(surface.OpLinearGradient); n != 0 {
		t.Errorf("interior-stop gradient used the native full-span path")
	}
	if n := rec.Count(surface.OpDrawPath); n != gradientBands {
		t.Errorf("band draws = %d, want %d", n, gradientBands)
	}

	first := rec.First(surface.OpSetFillColor)
	last := rec.Last(surface.OpSetFillColor)
	if !approx(first.Color.R, 0) || !approx(last.Color.R, 1) {
		t.Errorf("band colors run %v..%v, want clamped black..white", first.Color, last.Color)
	}
}

func TestRadialInteriorStopPositionsUseBands(t *testing.T) {
	rec := surface.NewGradientRecorder()
	r := New(rec, WithFoldLines(false))

	g, err := cardkit.NewRadialGradientFill(0.5, 0.5, 0.5, []cardkit.ColorStop{
		{Position: 0.2, Color: "#ffffff"},
		{Position: 0.9, Color: "#000000"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := r.RenderCard(gradientRect(g)); err != nil {
		t.Fatal(err)
	}
	if n := rec.Count(surface.OpRadialGradient); n != 0 {
		t.Errorf("interior-stop radial gradient used the native path")
	}
	if n := rec.Count(surface.OpDrawPath); n != gradientBands+1 {
		t.Errorf("draws = %d, want %d", n, gradientBands+1)
	}
}

func TestRadialGradientBands(t *testing.T) {
	rec := surface.NewRecorder()
	r := New(rec, WithFoldLines(false))

	g, err := cardkit.NewRadialGradientFill(0.5, 0.5, 0.5, []cardkit.ColorStop{
		{Position: 0, Color: "#ffffff"},
		{Position: 1, Color: "#000000"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := r.RenderCard(gradientRect(g)); err != nil {
		t.Fatal(err)
	}
	// Background rect plus one circle per band.
	if n := rec.Count(surface.OpDrawPath); n != gradientBands+1 {
		t.Errorf("draws = %d, want %d", n, gradientBands+1)
	}
	if n := rec.Count(surface.OpCurveTo); n != gradientBands*4 {
		t.Errorf("curve ops = %d, want %d", n, gradientBands*4)
	}
}

func TestRadialGradientNative(t *testing.T) {
	rec := surface.NewGradientRecorder()
	r := New(rec, WithFoldLines(false))

	g, err := cardkit.NewRadialGradientFill(0.3, 0.7, 0.4, []cardkit.ColorStop{
		{Position: 0, Color: "#ffffff"},
		{Position: 1, Color: "#000000"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := r.RenderCard(gradientRect(g)); err != nil {
		t.Fatal(err)
	}
	if n := rec.Count(surface.OpRadialGradient); n != 1 {
		t.Fatalf("native radial ops = %d, want 1", n)
	}
	grad := rec.First(surface.OpRadialGradient)
	if !coordsApprox(grad.Coords[4:], []float64{0.3, 0.7, 0.4}) {
		t.Errorf("radial geometry = %v, want fractions passed through", grad.Coords[4:])
	}
}

func TestColorAt(t *testing.T) {
	stops := []stop{
		{pos: 0, color: cardkit.RGB(0, 0, 0)},
		{pos: 0.5, color: cardkit.RGB(1, 0, 0)},
		{pos: 1, color: cardkit.RGB(1, 1, 1)},
	}
	tests := []struct {
		t    float64
		want cardkit.Color
	}{
		{-0.5, cardkit.RGB(0, 0, 0)},
		{0, cardkit.RGB(0, 0, 0)},
		{0.25, cardkit.RGB(0.5, 0, 0)},
		{0.5, cardkit.RGB(1, 0, 0)},
		{0.75, cardkit.RGB(1, 0.5, 0.5)},
		{1, cardkit.RGB(1, 1, 1)},
		{1.5, cardkit.RGB(1, 1, 1)},
	}
	for _, tt := range tests {
		got := colorAt(stops, tt.t)
		if !approx(got.R, tt.want.R) || !approx(got.G, tt.want.G) || !approx(got.B, tt.want.B) {
			t.Errorf("colorAt(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestLinearEndpoints(t *testing.T) {
	// Horizontal gradient across a 3-4-5 box: the axis spans the diagonal
	// through the center.
	bbox := rectPts{X: 0, Y: 0, W: 4, H: 3}
	sx, sy, ex, ey := linearEndpoints(0, bbox)
	if !approx(sx, 2-2.5) || !approx(sy, 1.5) || !approx(ex, 2+2.5) || !approx(ey, 1.5) {
		t.Errorf("endpoints = (%v,%v)..(%v,%v)", sx, sy, ex, ey)
	}

	sx, sy, ex, ey = linearEndpoints(90, bbox)
	if !approx(sx, 2) || !approx(sy, 1.5-2.5) || !approx(ex, 2) || !approx(ey, 1.5+2.5) {
		t.Errorf("vertical endpoints = (%v,%v)..(%v,%v)", sx, sy, ex, ey)
	}
}
