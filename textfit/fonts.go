package textfit

import (
	"strings"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10oblique"
	"github.com/go-fonts/latin-modern/lmsans10regular"

	"github.com/printfold/cardkit"
)

// faceKey identifies one embedded face.
type faceKey struct {
	serif bool
	style cardkit.FontStyle
}

// faceData returns the embedded TTF bytes for the font spec. Sans families
// map to Latin Modern Sans, serif families to Latin Modern Roman. The sans
// family has no bold italic cut, so that style falls back to bold.
func faceData(spec cardkit.FontSpec) []byte {
	key := faceKey{serif: isSerif(spec.Family), style: spec.Style}
	if data, ok := faces[key]; ok {
		return data
	}
	if key.serif {
		return lmroman10regular.TTF
	}
	return lmsans10regular.TTF
}

var faces = map[faceKey][]byte{
	{false, cardkit.StyleNormal}:     lmsans10regular.TTF,
	{false, cardkit.StyleBold}:       lmsans10bold.TTF,
	{false, cardkit.StyleItalic}:     lmsans10oblique.TTF,
	{false, cardkit.StyleBoldItalic}: lmsans10bold.TTF,
	{true, cardkit.StyleNormal}:      lmroman10regular.TTF,
	{true, cardkit.StyleBold}:        lmroman10bold.TTF,
	{true, cardkit.StyleItalic}:      lmroman10italic.TTF,
	{true, cardkit.StyleBoldItalic}:  lmroman10bolditalic.TTF,
}

// isSerif classifies a font family name. Unknown families are treated as
// sans serif.
func isSerif(family string) bool {
	switch strings.ToLower(family) {
	case "times", "times-roman", "serif", "roman", "georgia":
		return true
	default:
		return false
	}
}
