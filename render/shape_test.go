package render

import (
	"math"
	"testing"

	"github.com/printfold/cardkit"
	"github.com/printfold/cardkit/surface"
)

func TestStarVertices(t *testing.T) {
	pts := starVertices(0, 0, 1, 0.5, 5)
	if len(pts) != 10 {
		t.Fatalf("got %d vertices, want 10", len(pts))
	}
	if !approx(pts[0].X, 0) || !approx(pts[0].Y, -1) {
		t.Errorf("first vertex = %v, want (0, -1)", pts[0])
	}
	for i, p := range pts {
		want := 1.0
		if i%2 == 1 {
			want = 0.5
		}
		if got := math.Hypot(p.X, p.Y); !approx(got, want) {
			t.Errorf("vertex %d radius = %v, want %v", i, got, want)
		}
	}
}

func TestShapeOpacity(t *testing.T) {
	rec := surface.NewRecorder()
	r := New(rec, WithFoldLines(false))

	card := frontCard(
		cardkit.Rect{
			ShapeBase: cardkit.ShapeBase{FillColor: "#ff0000", Opacity: 0.5},
			X:         0, Y: 0, Width: 1, Height: 1,
		},
		cardkit.Rect{
			ShapeBase: cardkit.ShapeBase{FillColor: "#ff0000", Opacity: 1},
			X:         1, Y: 1, Width: 1, Height: 1,
		},
	)
	if err := r.RenderCard(card); err != nil {
		t.Fatal(err)
	}
	// Only the translucent shape sets opacity; full opacity is the
	// surface default and is never touched.
	if n := rec.Count(surface.OpSetOpacity); n != 1 {
		t.Fatalf("opacity ops = %d, want 1", n)
	}
	op := rec.First(surface.OpSetOpacity)
	if !approx(op.Coords[0], 0.5) {
		t.Errorf("opacity = %v, want 0.5", op.Coords[0])
	}
}

func TestShapeRotationPivots(t *testing.T) {
	tests := []struct {
		name  string
		shape cardkit.Shape
		pivot []float64
	}{
		{
			"rect about center",
			cardkit.Rect{
				ShapeBase: cardkit.ShapeBase{FillColor: "#ff0000", Opacity: 1, Rotation: 45},
				X:         1, Y: 1, Width: 2, Height: 1,
			},
			[]float64{45, 144, 108},
		},
		{
			"circle about center",
			cardkit.Circle{
				ShapeBase: cardkit.ShapeBase{FillColor: "#ff0000", Opacity: 1, Rotation: 90},
				CenterX:   2, CenterY: 2, Radius: 1,
			},
			[]float64{90, 144, 144},
		},
		{
			"triangle about centroid",
			cardkit.Triangle{
				ShapeBase: cardkit.ShapeBase{FillColor: "#ff0000", Opacity: 1, Rotation: 30},
				X1:        0, Y1: 0, X2: 3, Y2: 0, X3: 0, Y3: 3,
			},
			[]float64{30, 72, 72},
		},
		{
			"line about midpoint",
			cardkit.Line{
				ShapeBase: cardkit.ShapeBase{Opacity: 1, Rotation: 10},
				StartX:    0, StartY: 0, EndX: 2, EndY: 2,
			},
			[]float64{10, 72, 72},
		},
	}
	for _, tt := range tests {
		rec := surface.NewRecorder()
		r := New(rec, WithFoldLines(false))
		if err := r.RenderCard(frontCard(tt.shape)); err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		rot := rec.First(surface.OpRotateAbout)
		if rot == nil || !coordsApprox(rot.Coords, tt.pivot) {
			t.Errorf("%s: rotation = %v, want %v", tt.name, rot, tt.pivot)
		}
	}
}

func TestFillPrecedence(t *testing.T) {
	rec := surface.NewRecorder()
	r := New(rec, WithFoldLines(false))

	// Fill wins over the legacy FillColor when both are present.
	solid, err := cardkit.NewSolidFill("#0000ff")
	if err != nil {
		t.Fatal(err)
	}
	card := frontCard(cardkit.Rect{
		ShapeBase: cardkit.ShapeBase{Fill: solid, FillColor: "#ff0000", Opacity: 1},
		X:         0, Y: 0, Width: 1, Height: 1,
	})
	if err := r.RenderCard(card); err != nil {
		t.Fatal(err)
	}
	fill := rec.First(surface.OpSetFillColor)
	if fill == nil || !approx(fill.Color.B, 1) || !approx(fill.Color.R, 0) {
		t.Errorf("fill = %v, want blue from Fill, not legacy red", fill)
	}
}

func TestStrokeOnlyShape(t *testing.T) {
	rec := surface.NewRecorder()
	r := New(rec, WithFoldLines(false))

	card := frontCard(cardkit.Circle{
		ShapeBase: cardkit.ShapeBase{StrokeColor: "#000000", StrokeWidth: 2, Opacity: 1},
		CenterX:   1, CenterY: 1, Radius: 0.5,
	})
	if err := r.RenderCard(card); err != nil {
		t.Fatal(err)
	}
	op := rec.First(surface.OpDrawPath)
	if op == nil || op.Mode != surface.PaintStroke {
		t.Errorf("DrawPath = %v, want stroke only", op)
	}
	if rec.Count(surface.OpSetFillColor) != 0 {
		t.Error("stroke-only shape set a fill color")
	}
}

func TestInvisibleShapeDrawsNothing(t *testing.T) {
	rec := surface.NewRecorder()
	r := New(rec, WithFoldLines(false))

	// No fill, no stroke: the shape contributes no operations beyond
	// state bookkeeping.
	card := frontCard(cardkit.Rect{
		ShapeBase: cardkit.ShapeBase{Opacity: 1},
		X:         0, Y: 0, Width: 1, Height: 1,
	})
	if err := r.RenderCard(card); err != nil {
		t.Fatal(err)
	}
	if n := rec.Count(surface.OpDrawPath); n != 0 {
		t.Errorf("invisible shape drew %d paths", n)
	}
}

func TestRoundedBorderUsesCurves(t *testing.T) {
	rec := surface.NewRecorder()
	r := New(rec, WithFoldLines(false))

	card := cardkit.NewHalfFoldCard("rounded")
	card.Panels[0].Border = &cardkit.Border{
		Color: "#000000", Width: 1, Inset: 0.25, Corner: 0.1, Style: cardkit.BorderSolid,
	}
	if err := r.RenderCard(card); err != nil {
		t.Fatal(err)
	}
	if n := rec.Count(surface.OpCurveTo); n != 4 {
		t.Errorf("rounded border curves = %d, want 4", n)
	}
	if rec.Count(surface.OpSetDash) != 0 {
		t.Error("solid border set a dash pattern")
	}
}
