package decor

import (
	"math"
	"testing"

	"github.com/printfold/cardkit"
)

func ref(name string) cardkit.DecorativeRef {
	return cardkit.DecorativeRef{Name: name, Scale: 1, ZIndex: 5}
}

func TestExpandUnknownElement(t *testing.T) {
	lib := NewLibrary()
	_, err := lib.Expand(ref("no_such_thing"))
	if err == nil {
		t.Fatal("expected error for unknown element")
	}
}

func TestExpandScaleDoublesLinearDimensions(t *testing.T) {
	lib := NewLibrary()

	one, err := lib.Expand(cardkit.DecorativeRef{Name: "ornament", Scale: 1})
	if err != nil {
		t.Fatal(err)
	}
	two, err := lib.Expand(cardkit.DecorativeRef{Name: "ornament", Scale: 2})
	if err != nil {
		t.Fatal(err)
	}

	c1 := one[0].(cardkit.Circle)
	c2 := two[0].(cardkit.Circle)
	if math.Abs(c2.Radius-2*c1.Radius) > 1e-9 {
		t.Errorf("radius %v should double to %v, got %v", c1.Radius, 2*c1.Radius, c2.Radius)
	}
	if math.Abs(c2.CenterX-2*c1.CenterX) > 1e-9 {
		t.Errorf("center x should scale: %v vs %v", c1.CenterX, c2.CenterX)
	}
	// Colors are unaffected by scale.
	if c1.FillColor != c2.FillColor {
		t.Errorf("scale changed fill color: %q vs %q", c1.FillColor, c2.FillColor)
	}
}

func TestExpandAnchorOffset(t *testing.T) {
	lib := NewLibrary()
	shapes, err := lib.Expand(cardkit.DecorativeRef{Name: "ornament", X: 2, Y: 3, Scale: 1})
	if err != nil {
		t.Fatal(err)
	}
	ball := shapes[0].(cardkit.Circle)
	if math.Abs(ball.CenterX-2.25) > 1e-9 || math.Abs(ball.CenterY-3.25) > 1e-9 {
		t.Errorf("anchored center = (%v, %v), want (2.25, 3.25)", ball.CenterX, ball.CenterY)
	}
}

func TestExpandPaletteOverride(t *testing.T) {
	lib := NewLibrary()
	shapes, err := lib.Expand(cardkit.DecorativeRef{
		Name:         "ornament",
		Scale:        1,
		ColorPalette: map[string]string{"ball": "#0000ff"},
	})
	if err != nil {
		t.Fatal(err)
	}
	ball := shapes[0].(cardkit.Circle)
	if ball.FillColor != "#0000ff" {
		t.Errorf("palette override not applied: %q", ball.FillColor)
	}
	capRect := shapes[1].(cardkit.Rect)
	if capRect.FillColor != "#c0c0c0" {
		t.Errorf("unoverridden role changed: %q", capRect.FillColor)
	}
}

func TestExpandRotationAndLayer(t *testing.T) {
	lib := NewLibrary()
	shapes, err := lib.Expand(cardkit.DecorativeRef{Name: "christmas_tree", Scale: 1, Rotation: 45, ZIndex: 7})
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range shapes {
		if s.Layer() != 7 {
			t.Errorf("child did not inherit layer: %d", s.Layer())
		}
	}
	trunk := shapes[0].(cardkit.Rect)
	if trunk.Rotation != 45 {
		t.Errorf("rotation = %v, want 45", trunk.Rotation)
	}
}

func TestExpandRotationWraps(t *testing.T) {
	lib := NewLibrary()
	if err := lib.Register(Definition{
		Name:       "spinner",
		ColorRoles: map[string]string{"c": "#112233"},
		Shapes: []ShapeDef{
			{Type: "rectangle", X: 0, Y: 0, Width: 1, Height: 1, FillColor: "{c}", Rotation: 300},
		},
	}); err != nil {
		t.Fatal(err)
	}
	shapes, err := lib.Expand(cardkit.DecorativeRef{Name: "spinner", Scale: 1, Rotation: 120})
	if err != nil {
		t.Fatal(err)
	}
	r := shapes[0].(cardkit.Rect)
	if math.Abs(r.Rotation-60) > 1e-9 {
		t.Errorf("rotation = %v, want 60 (wrapped)", r.Rotation)
	}
}

func TestResolveColorPassthrough(t *testing.T) {
	palette := map[string]string{"a": "#111111"}
	tests := []struct {
		in, want string
	}{
		{"{a}", "#111111"},
		{"{missing}", "{missing}"},
		{"#abcdef", "#abcdef"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := resolveColor(tt.in, palette); got != tt.want {
			t.Errorf("resolveColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuiltinNames(t *testing.T) {
	lib := NewLibrary()
	for _, name := range []string{
		"christmas_tree", "ornament", "gift_box", "snowflake", "candy_cane",
		"holly", "candle", "menorah", "balloon", "banner", "sun",
	} {
		if _, err := lib.Definition(name); err != nil {
			t.Errorf("builtin %s missing: %v", name, err)
		}
	}
}

func TestBuiltinDefinitionsExpand(t *testing.T) {
	lib := NewLibrary()
	for _, name := range lib.Names() {
		shapes, err := lib.Expand(cardkit.DecorativeRef{Name: name, Scale: 1.5})
		if err != nil {
			t.Errorf("builtin %s failed to expand: %v", name, err)
			continue
		}
		if len(shapes) == 0 {
			t.Errorf("builtin %s expanded to nothing", name)
		}
	}
}
