package cardkit

import (
	"errors"
	"strings"
	"testing"
)

func TestNewTextElementDefaults(t *testing.T) {
	el := NewTextElement("Happy Birthday", 4.25, 2.75)
	if err := el.Validate(); err != nil {
		t.Fatalf("default element invalid: %v", err)
	}
	if el.FontFamily != "helvetica" || el.FontSize != 12 || el.FontStyle != StyleNormal {
		t.Errorf("font defaults = %s/%s/%d", el.FontFamily, el.FontStyle, el.FontSize)
	}
	if el.Alignment != AlignCenter || el.Overflow != OverflowAuto {
		t.Errorf("behavior defaults = %s/%s", el.Alignment, el.Overflow)
	}
	if el.ZIndex != DefaultElementLayer {
		t.Errorf("z-index = %d, want %d", el.ZIndex, DefaultElementLayer)
	}
}

func TestTextElementValidate(t *testing.T) {
	base := NewTextElement("hi", 1, 1)

	long := base
	long.Content = strings.Repeat("x", 1001)
	empty := base
	empty.Content = ""
	tiny := base
	tiny.FontSize = 5
	huge := base
	huge.FontSize = 145
	floor := base
	floor.MinFontSize = 73
	negWidth := base
	negWidth.Width = -1
	negLines := base
	negLines.MaxLines = -1

	for _, tt := range []struct {
		name string
		el   TextElement
	}{
		{"content too long", long},
		{"empty content", empty},
		{"font too small", tiny},
		{"font too large", huge},
		{"shrink floor too high", floor},
		{"negative width", negWidth},
		{"negative max lines", negLines},
	} {
		if err := tt.el.Validate(); !errors.Is(err, ErrValidation) {
			t.Errorf("%s: err = %v, want validation error", tt.name, err)
		}
	}
}

func TestTextContentLengthCountsRunes(t *testing.T) {
	// 1000 two-byte runes are within the cap even though the byte length
	// is double it.
	el := NewTextElement(strings.Repeat("é", 1000), 1, 1)
	if err := el.Validate(); err != nil {
		t.Errorf("1000-rune multibyte content rejected: %v", err)
	}
	el.Content = strings.Repeat("é", 1001)
	if err := el.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("1001-rune content accepted: %v", err)
	}
}

func TestShrinkFloor(t *testing.T) {
	el := NewTextElement("hi", 0, 0)
	if got := el.ShrinkFloor(); got != DefaultMinFontSize {
		t.Errorf("default floor = %d, want %d", got, DefaultMinFontSize)
	}
	el.MinFontSize = 10
	if got := el.ShrinkFloor(); got != 10 {
		t.Errorf("explicit floor = %d", got)
	}
}

func TestTextElementFont(t *testing.T) {
	el := NewTextElement("hi", 0, 0)
	el.FontFamily = "times"
	el.FontStyle = StyleBoldItalic
	spec := el.Font(9.5)
	if spec.Family != "times" || spec.Style != StyleBoldItalic || spec.Size != 9.5 {
		t.Errorf("spec = %+v", spec)
	}
}

func TestNewImageElementDefaults(t *testing.T) {
	img := NewImageElement("art/robin.png", 1, 2)
	if err := img.Validate(); err != nil {
		t.Fatalf("default image invalid: %v", err)
	}
	if !img.PreserveAspect || img.Opacity != 1 || img.ZIndex != DefaultElementLayer {
		t.Errorf("defaults = %+v", img)
	}
}

func TestImageElementValidate(t *testing.T) {
	for _, tt := range []struct {
		name string
		img  ImageElement
	}{
		{"no source", ImageElement{Opacity: 1}},
		{"negative width", ImageElement{SourcePath: "a.png", Width: -1, Opacity: 1}},
		{"opacity above 1", ImageElement{SourcePath: "a.png", Opacity: 1.5}},
	} {
		if err := tt.img.Validate(); !errors.Is(err, ErrValidation) {
			t.Errorf("%s: err = %v, want validation error", tt.name, err)
		}
	}
}
