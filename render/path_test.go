package render

import (
	"testing"

	"github.com/printfold/cardkit"
	"github.com/printfold/cardkit/surface"
	"github.com/printfold/cardkit/svgpath"
)

// emit parses data and replays it onto a fresh recorder at unit scale.
func emit(t *testing.T, data string, ox, oy, k float64) []surface.Op {
	t.Helper()
	cmds, err := svgpath.Parse(data)
	if err != nil {
		t.Fatalf("Parse(%q): %v", data, err)
	}
	rec := surface.NewRecorder()
	emitPathCommands(rec, cmds, ox, oy, k)
	return rec.Ops()
}

func opsMatch(t *testing.T, got []surface.Op, want []surface.Op) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d ops, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].Kind != want[i].Kind {
			t.Fatalf("op %d kind = %v, want %v", i, got[i].Kind, want[i].Kind)
		}
		if !coordsApprox(got[i].Coords, want[i].Coords) {
			t.Errorf("op %d coords = %v, want %v", i, got[i].Coords, want[i].Coords)
		}
	}
}

func TestEmitPathLines(t *testing.T) {
	got := emit(t, "M 0 0 L 1 0 l 0 1 H 0 v -0.5 Z", 0, 0, 72)
	opsMatch(t, got, []surface.Op{
		{Kind: surface.OpMoveTo, Coords: []float64{0, 0}},
		{Kind: surface.OpLineTo, Coords: []float64{72, 0}},
		{Kind: surface.OpLineTo, Coords: []float64{72, 72}},
		{Kind: surface.OpLineTo, Coords: []float64{0, 72}},
		{Kind: surface.OpLineTo, Coords: []float64{0, 36}},
		{Kind: surface.OpClosePath},
	})
}

func TestEmitPathOffset(t *testing.T) {
	got := emit(t, "M 1 1 L 2 1", 100, 200, 72)
	opsMatch(t, got, []surface.Op{
		{Kind: surface.OpMoveTo, Coords: []float64{172, 272}},
		{Kind: surface.OpLineTo, Coords: []float64{244, 272}},
	})
}

func TestEmitPathImplicitLineto(t *testing.T) {
	// Extra moveto pairs continue as linetos.
	got := emit(t, "M 0 0 1 0 1 1", 0, 0, 1)
	opsMatch(t, got, []surface.Op{
		{Kind: surface.OpMoveTo, Coords: []float64{0, 0}},
		{Kind: surface.OpLineTo, Coords: []float64{1, 0}},
		{Kind: surface.OpLineTo, Coords: []float64{1, 1}},
	})
}

func TestEmitPathCubic(t *testing.T) {
	got := emit(t, "M 0 0 C 0 1 1 1 1 0 c 0 -1 1 -1 1 0", 0, 0, 1)
	opsMatch(t, got, []surface.Op{
		{Kind: surface.OpMoveTo, Coords: []float64{0, 0}},
		{Kind: surface.OpCurveTo, Coords: []float64{0, 1, 1, 1, 1, 0}},
		{Kind: surface.OpCurveTo, Coords: []float64{1, -1, 2, -1, 2, 0}},
	})
}

func TestEmitPathSmoothCubicReflects(t *testing.T) {
	got := emit(t, "M 0 0 C 0 1 1 1 1 0 S 2 -1 2 0", 0, 0, 1)
	// The first control point mirrors (1,1) about the current point (1,0).
	opsMatch(t, got, []surface.Op{
		{Kind: surface.OpMoveTo, Coords: []float64{0, 0}},
		{Kind: surface.OpCurveTo, Coords: []float64{0, 1, 1, 1, 1, 0}},
		{Kind: surface.OpCurveTo, Coords: []float64{1, -1, 2, -1, 2, 0}},
	})
}

func TestEmitPathSmoothCubicWithoutPredecessor(t *testing.T) {
	// S with no preceding curve uses the current point as first control.
	got := emit(t, "M 1 1 S 2 2 3 1", 0, 0, 1)
	opsMatch(t, got, []surface.Op{
		{Kind: surface.OpMoveTo, Coords: []float64{1, 1}},
		{Kind: surface.OpCurveTo, Coords: []float64{1, 1, 2, 2, 3, 1}},
	})
}

func TestEmitPathQuadraticElevation(t *testing.T) {
	got := emit(t, "M 0 0 Q 1 0 1 1", 0, 0, 1)
	opsMatch(t, got, []surface.Op{
		{Kind: surface.OpMoveTo, Coords: []float64{0, 0}},
		{Kind: surface.OpCurveTo, Coords: []float64{2.0 / 3, 0, 1, 1.0 / 3, 1, 1}},
	})
}

func TestEmitPathSmoothQuadraticReflects(t *testing.T) {
	got := emit(t, "M 0 0 Q 1 1 2 0 T 4 0", 0, 0, 1)
	// The reflected quadratic control is (3,-1); elevated control points
	// sit two thirds toward it from each endpoint.
	opsMatch(t, got, []surface.Op{
		{Kind: surface.OpMoveTo, Coords: []float64{0, 0}},
		{Kind: surface.OpCurveTo, Coords: []float64{2.0 / 3, 2.0 / 3, 4.0 / 3, 2.0 / 3, 2, 0}},
		{Kind: surface.OpCurveTo, Coords: []float64{8.0 / 3, -2.0 / 3, 10.0 / 3, -2.0 / 3, 4, 0}},
	})
}

func TestEmitPathArcBecomesLine(t *testing.T) {
	got := emit(t, "M 0 0 A 1 1 0 0 1 2 0", 0, 0, 1)
	opsMatch(t, got, []surface.Op{
		{Kind: surface.OpMoveTo, Coords: []float64{0, 0}},
		{Kind: surface.OpLineTo, Coords: []float64{2, 0}},
	})
}

func TestEmitPathCloseResetsCurrentPoint(t *testing.T) {
	got := emit(t, "M 1 1 L 2 1 Z l 1 0", 0, 0, 1)
	opsMatch(t, got, []surface.Op{
		{Kind: surface.OpMoveTo, Coords: []float64{1, 1}},
		{Kind: surface.OpLineTo, Coords: []float64{2, 1}},
		{Kind: surface.OpClosePath},
		{Kind: surface.OpLineTo, Coords: []float64{2, 1}},
	})
}

func TestRenderPathShape(t *testing.T) {
	rec := surface.NewRecorder()
	r := New(rec, WithFoldLines(false))

	card := frontCard(cardkit.PathShape{
		ShapeBase: cardkit.ShapeBase{FillColor: "#00aa00", Opacity: 1},
		PathData:  "M 1 1 L 2 1 L 1.5 2 Z",
		Scale:     1,
	})
	if err := r.RenderCard(card); err != nil {
		t.Fatal(err)
	}
	move := rec.First(surface.OpMoveTo)
	if move == nil || !coordsApprox(move.Coords, []float64{72, 72}) {
		t.Errorf("path start = %v, want (72, 72)", move)
	}
	if rec.Count(surface.OpDrawPath) != 1 {
		t.Error("path not drawn")
	}
}

func TestRenderPathShapeScale(t *testing.T) {
	rec := surface.NewRecorder()
	r := New(rec, WithFoldLines(false))

	card := frontCard(cardkit.PathShape{
		ShapeBase: cardkit.ShapeBase{FillColor: "#00aa00", Opacity: 1},
		PathData:  "M 1 0 L 2 0",
		Scale:     2,
	})
	if err := r.RenderCard(card); err != nil {
		t.Fatal(err)
	}
	move := rec.First(surface.OpMoveTo)
	if move == nil || !coordsApprox(move.Coords, []float64{144, 0}) {
		t.Errorf("scaled path start = %v, want (144, 0)", move)
	}
}

func TestRenderPathGradientUsesPageBounds(t *testing.T) {
	rec := surface.NewGradientRecorder()
	r := New(rec, WithFoldLines(false))

	card := frontCard(cardkit.PathShape{
		ShapeBase: cardkit.ShapeBase{Fill: twoStop(t), Opacity: 1},
		PathData:  "M 1 1 L 2 1 L 1.5 2 Z",
		Scale:     1,
	})
	if err := r.RenderCard(card); err != nil {
		t.Fatal(err)
	}
	grad := rec.First(surface.OpLinearGradient)
	if grad == nil {
		t.Fatal("no native gradient op")
	}
	if !coordsApprox(grad.Coords[:4], []float64{0, 0, 612, 792}) {
		t.Errorf("path gradient bounds = %v, want the full page", grad.Coords[:4])
	}
}

func TestRenderPathRotatesAboutBoundsCenter(t *testing.T) {
	rec := surface.NewRecorder()
	r := New(rec, WithFoldLines(false))

	card := frontCard(cardkit.PathShape{
		ShapeBase: cardkit.ShapeBase{FillColor: "#00aa00", Opacity: 1, Rotation: 90},
		PathData:  "M 1 1 L 3 1 L 3 2 L 1 2 Z",
		Scale:     1,
	})
	if err := r.RenderCard(card); err != nil {
		t.Fatal(err)
	}
	rot := rec.First(surface.OpRotateAbout)
	if rot == nil || !coordsApprox(rot.Coords, []float64{90, 144, 108}) {
		t.Errorf("path rotation = %v, want 90 about (144, 108)", rot)
	}
}

func TestRenderMalformedPathIsSkipped(t *testing.T) {
	rec := surface.NewRecorder()
	r := New(rec, WithFoldLines(false))

	card := frontCard(cardkit.PathShape{
		ShapeBase: cardkit.ShapeBase{FillColor: "#00aa00", Opacity: 1},
		PathData:  "M 1 1 L 2", // odd parameter count
		Scale:     1,
	})
	if err := r.RenderCard(card); err != nil {
		t.Fatalf("RenderCard = %v, want nil with path skipped", err)
	}
	if n := rec.Count(surface.OpDrawPath); n != 0 {
		t.Errorf("malformed path drew %d times", n)
	}
	if !rec.Balanced() {
		t.Error("unbalanced after skipped path")
	}
}
