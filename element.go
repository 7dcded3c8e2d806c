package cardkit

import "unicode/utf8"

// TextAlignment controls horizontal placement of text about its anchor.
type TextAlignment string

const (
	AlignLeft   TextAlignment = "left"
	AlignCenter TextAlignment = "center"
	AlignRight  TextAlignment = "right"
)

// FontStyle selects the face variant within a family.
type FontStyle string

const (
	StyleNormal     FontStyle = "normal"
	StyleBold       FontStyle = "bold"
	StyleItalic     FontStyle = "italic"
	StyleBoldItalic FontStyle = "bold_italic"
)

// FontSpec fully describes a font for measurement and drawing.
type FontSpec struct {
	Family string
	Style  FontStyle
	Size   float64 // points
}

// OverflowPolicy is the strategy for keeping text inside its box.
type OverflowPolicy string

const (
	// OverflowAuto picks shrink for short text and wrap for long text.
	OverflowAuto OverflowPolicy = "auto"
	// OverflowShrink reduces the font size until the text fits.
	OverflowShrink OverflowPolicy = "shrink"
	// OverflowWrap breaks the text into multiple lines.
	OverflowWrap OverflowPolicy = "wrap"
	// OverflowTruncate cuts the text off with an ellipsis.
	OverflowTruncate OverflowPolicy = "truncate"
)

// Font size bounds in points.
const (
	MinFontSize        = 6
	MaxFontSize        = 144
	MaxMinFontSize     = 72 // upper bound for the shrink floor
	DefaultMinFontSize = 8
)

// DefaultElementLayer is the z-index given to text and image elements when
// none is set, so they draw above shapes (which default to layer 0).
const DefaultElementLayer = 100

// TextElement is text content positioned on a panel. Position is in inches
// from the panel origin; Width, when set, is the maximum rendered width.
type TextElement struct {
	ID         string
	Content    string
	X, Y       float64
	Width      float64 // inches; 0 = unconstrained
	FontFamily string
	FontSize   int // points, [6, 144]
	FontStyle  FontStyle
	Color      *Color // nil = theme/default color
	Alignment  TextAlignment
	Rotation   float64
	ZIndex     int

	Overflow    OverflowPolicy
	MaxLines    int // wrap line cap; 0 = unlimited
	MinFontSize int // shrink floor in points, [6, 72]
}

// Layer returns the rendering layer.
func (t TextElement) Layer() int { return t.ZIndex }

// Font returns the FontSpec for this element at the given size.
func (t TextElement) Font(size float64) FontSpec {
	return FontSpec{Family: t.FontFamily, Style: t.FontStyle, Size: size}
}

// Validate checks content length and font bounds.
func (t TextElement) Validate() error {
	if n := utf8.RuneCountInString(t.Content); n < 1 || n > 1000 {
		return validationf("text.content", "length %d outside [1,1000]", n)
	}
	if t.FontSize < MinFontSize || t.FontSize > MaxFontSize {
		return validationf("text.font_size", "%d outside [%d,%d]", t.FontSize, MinFontSize, MaxFontSize)
	}
	if t.MinFontSize != 0 && (t.MinFontSize < MinFontSize || t.MinFontSize > MaxMinFontSize) {
		return validationf("text.min_font_size", "%d outside [%d,%d]", t.MinFontSize, MinFontSize, MaxMinFontSize)
	}
	if t.Width < 0 {
		return validationf("text.width", "%v must be >= 0", t.Width)
	}
	if t.MaxLines < 0 {
		return validationf("text.max_lines", "%d must be >= 0", t.MaxLines)
	}
	return nil
}

// ShrinkFloor returns the effective minimum font size for shrinking.
func (t TextElement) ShrinkFloor() int {
	if t.MinFontSize == 0 {
		return DefaultMinFontSize
	}
	return t.MinFontSize
}

// NewTextElement returns a TextElement with the usual defaults: helvetica 12pt,
// centered, auto overflow, drawn above shapes.
func NewTextElement(content string, x, y float64) TextElement {
	return TextElement{
		Content:    content,
		X:          x,
		Y:          y,
		FontFamily: "helvetica",
		FontSize:   12,
		FontStyle:  StyleNormal,
		Alignment:  AlignCenter,
		ZIndex:     DefaultElementLayer,
		Overflow:   OverflowAuto,
	}
}

// NewImageElement returns an ImageElement with aspect preservation on, full
// opacity, drawn above shapes.
func NewImageElement(path string, x, y float64) ImageElement {
	return ImageElement{
		SourcePath:     path,
		X:              x,
		Y:              y,
		PreserveAspect: true,
		Opacity:        1,
		ZIndex:         DefaultElementLayer,
	}
}

// AdjustmentResult records a text-fit decision: what policy ran and how the
// text was changed to fit. It is produced fresh per render call and never
// stored on the TextElement; it feeds logging and diagnostics only.
type AdjustmentResult struct {
	WasAdjusted      bool
	PolicyApplied    OverflowPolicy
	OriginalFontSize int
	FinalFontSize    int
	LinesUsed        int
	ContentTruncated bool
}

// ImageElement is an image placed on a panel. Position is in inches from the
// panel origin; Width/Height of 0 mean "derive from the image's natural size".
type ImageElement struct {
	ID             string
	SourcePath     string
	X, Y           float64
	Width, Height  float64 // inches; 0 = auto
	PreserveAspect bool
	Rotation       float64
	Opacity        float64
	ZIndex         int
	ClipMask       ClipMask // optional
}

// Layer returns the rendering layer.
func (i ImageElement) Layer() int { return i.ZIndex }

// Validate checks the source path and numeric bounds.
func (i ImageElement) Validate() error {
	if i.SourcePath == "" {
		return validationf("image.source_path", "source path is required")
	}
	if i.Width < 0 || i.Height < 0 {
		return validationf("image.size", "width/height must be >= 0")
	}
	if i.Opacity < 0 || i.Opacity > 1 {
		return validationf("image.opacity", "%v outside [0,1]", i.Opacity)
	}
	return nil
}
