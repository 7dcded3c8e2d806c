package pdf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/printfold/cardkit"
	"github.com/printfold/cardkit/render"
)

func TestRenderCardProducesPDF(t *testing.T) {
	surf := New()
	r := render.New(surf)

	grad, err := cardkit.NewLinearGradientFill(90, []cardkit.ColorStop{
		{Position: 0, Color: "#1a3a6b"},
		{Position: 1, Color: "#b0c8e8"},
	})
	if err != nil {
		t.Fatal(err)
	}

	card := cardkit.NewHalfFoldCard("winter wishes")
	front := card.Panel(cardkit.PanelFront)
	front.BackgroundColor = "#fefefe"
	front.Border = &cardkit.Border{Color: "#1a3a6b", Width: 1.5, Inset: 0.3, Style: cardkit.BorderDashed}
	front.Shapes = []cardkit.Shape{
		cardkit.Rect{
			ShapeBase: cardkit.ShapeBase{Fill: grad, Opacity: 1},
			X:         0.5, Y: 0.5, Width: 7.5, Height: 4.5,
		},
		cardkit.Star{
			ShapeBase: cardkit.ShapeBase{FillColor: "#ffd700", Opacity: 0.9, Rotation: 12},
			CenterX:   4.25, CenterY: 3, OuterRadius: 0.8, InnerRadius: 0.35, Points: 5,
		},
	}
	front.Texts = []cardkit.TextElement{cardkit.NewTextElement("Season's Greetings", 4.25, 1)}

	if err := r.RenderCard(card); err != nil {
		t.Fatalf("RenderCard: %v", err)
	}
	if err := surf.Err(); err != nil {
		t.Fatalf("document error: %v", err)
	}

	var buf bytes.Buffer
	if err := surf.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF, got %q", out[:min(8, len(out))])
	}
	if len(out) < 1000 {
		t.Errorf("suspiciously small document: %d bytes", len(out))
	}
}

func TestFlipY(t *testing.T) {
	s := New()
	s.BeginPage(612, 792)
	if got := s.flipY(0); got != 792 {
		t.Errorf("flipY(0) = %v, want 792", got)
	}
	if got := s.flipY(792); got != 0 {
		t.Errorf("flipY(792) = %v, want 0", got)
	}
}

func TestMeasureTextWidthScalesWithSize(t *testing.T) {
	s := New()
	s.BeginPage(612, 792)

	small := s.MeasureTextWidth("Hello", cardkit.FontSpec{Family: "helvetica", Size: 12})
	large := s.MeasureTextWidth("Hello", cardkit.FontSpec{Family: "helvetica", Size: 24})
	if small <= 0 {
		t.Fatalf("width = %v, want positive", small)
	}
	if ratio := large / small; ratio < 1.9 || ratio > 2.1 {
		t.Errorf("doubling the size scaled width by %v, want ~2", ratio)
	}
}

func TestCoreFont(t *testing.T) {
	tests := []struct {
		family     string
		style      cardkit.FontStyle
		wantFamily string
		wantStyle  string
	}{
		{"helvetica", cardkit.StyleNormal, "Helvetica", ""},
		{"arial", cardkit.StyleBold, "Helvetica", "B"},
		{"times", cardkit.StyleItalic, "Times", "I"},
		{"georgia", cardkit.StyleBoldItalic, "Times", "BI"},
		{"courier", cardkit.StyleNormal, "Courier", ""},
		{"", cardkit.StyleNormal, "Helvetica", ""},
	}
	for _, tt := range tests {
		family, style := coreFont(cardkit.FontSpec{Family: tt.family, Style: tt.style})
		if family != tt.wantFamily || style != tt.wantStyle {
			t.Errorf("coreFont(%q, %s) = (%q, %q), want (%q, %q)",
				tt.family, tt.style, family, style, tt.wantFamily, tt.wantStyle)
		}
	}
}

func TestPushPopRestoresState(t *testing.T) {
	s := New()
	s.BeginPage(612, 792)

	s.SetLineWidth(3)
	s.SetDash([]float64{4, 2})
	s.PushState()
	s.SetLineWidth(1)
	s.SetDash(nil)
	s.PopState()

	if s.cur.lineWidth != 3 {
		t.Errorf("line width = %v after pop, want 3", s.cur.lineWidth)
	}
	if len(s.cur.dash) != 2 || s.cur.dash[0] != 4 {
		t.Errorf("dash = %v after pop, want [4 2]", s.cur.dash)
	}
	if err := s.Err(); err != nil {
		t.Fatalf("document error: %v", err)
	}
}

func TestDrawTextUsesBaseline(t *testing.T) {
	s := New()
	s.BeginPage(612, 792)
	err := s.DrawText("hello", 100, 100, cardkit.FontSpec{Family: "times", Style: cardkit.StyleBold, Size: 14})
	if err != nil {
		t.Fatalf("DrawText: %v", err)
	}

	var buf bytes.Buffer
	if err := s.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Times-Bold") {
		t.Error("Times-Bold face not referenced in output")
	}
}
