package textfit

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/printfold/cardkit"
)

// ShapedMeasurer measures text through HarfBuzz shaping, so kerning and
// ligatures are reflected in the width. It is an opt-in replacement for
// FontMeasurer when the extra accuracy is worth the shaping cost.
//
// ShapedMeasurer is safe for concurrent use: parsed font.Font objects are
// cached (they are read-only), a font.Face is created per call, and
// HarfbuzzShaper instances are pooled since they carry mutable state.
type ShapedMeasurer struct {
	shaperPool sync.Pool

	mu    sync.RWMutex
	fonts map[faceKey]*font.Font
}

// NewShapedMeasurer returns a ShapedMeasurer with an empty font cache.
func NewShapedMeasurer() *ShapedMeasurer {
	return &ShapedMeasurer{
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		fonts: make(map[faceKey]*font.Font),
	}
}

// TextWidth implements Measurer.
func (m *ShapedMeasurer) TextWidth(s string, spec cardkit.FontSpec) float64 {
	if s == "" {
		return 0
	}
	f, err := m.font(spec)
	if err != nil {
		return defaultMeasurer.TextWidth(s, spec)
	}

	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f),
		Size:      fixed.Int26_6(spec.Size * 64),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	}

	shaper := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	m.shaperPool.Put(shaper)

	return fixedToFloat64(output.Advance)
}

func (m *ShapedMeasurer) font(spec cardkit.FontSpec) (*font.Font, error) {
	key := faceKey{serif: isSerif(spec.Family), style: spec.Style}

	m.mu.RLock()
	if f, ok := m.fonts[key]; ok {
		m.mu.RUnlock()
		return f, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.fonts[key]; ok {
		return f, nil
	}
	face, err := font.ParseTTF(bytes.NewReader(faceData(spec)))
	if err != nil {
		return nil, err
	}
	m.fonts[key] = face.Font
	return face.Font, nil
}
