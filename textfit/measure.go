package textfit

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/printfold/cardkit"
)

// Measurer reports the advance width of a string in points for a font.
// Implementations must be safe for concurrent use.
type Measurer interface {
	TextWidth(s string, spec cardkit.FontSpec) float64
}

// FontMeasurer measures text using glyph advances from embedded OpenType
// fonts. It is the default Measurer; parsed fonts are cached per face.
type FontMeasurer struct {
	mu    sync.Mutex
	cache map[faceKey]*opentype.Font
}

// NewFontMeasurer returns a FontMeasurer with an empty font cache.
func NewFontMeasurer() *FontMeasurer {
	return &FontMeasurer{cache: make(map[faceKey]*opentype.Font)}
}

// TextWidth implements Measurer. Runes the face lacks a glyph for are
// measured with the face's notdef glyph.
func (m *FontMeasurer) TextWidth(s string, spec cardkit.FontSpec) float64 {
	if s == "" {
		return 0
	}
	f, err := m.face(spec)
	if err != nil {
		// A bundled face failing to parse means a broken build; fall
		// back to a crude approximation rather than panicking.
		n := 0
		for range s {
			n++
		}
		return float64(n) * 0.6 * spec.Size
	}

	var buf sfnt.Buffer
	ppem := fixed.Int26_6(spec.Size * 64)
	total := fixed.Int26_6(0)
	for _, r := range s {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil {
			continue
		}
		adv, err := f.GlyphAdvance(&buf, idx, ppem, font.HintingNone)
		if err != nil {
			continue
		}
		total += adv
	}
	return fixedToFloat64(total)
}

func (m *FontMeasurer) face(spec cardkit.FontSpec) (*opentype.Font, error) {
	key := faceKey{serif: isSerif(spec.Family), style: spec.Style}
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.cache[key]; ok {
		return f, nil
	}
	f, err := opentype.Parse(faceData(spec))
	if err != nil {
		return nil, err
	}
	m.cache[key] = f
	return f, nil
}

// fixedToFloat64 converts a 26.6 fixed-point value to float64.
func fixedToFloat64(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

var defaultMeasurer = NewFontMeasurer()

// Default returns the shared FontMeasurer.
func Default() Measurer { return defaultMeasurer }
