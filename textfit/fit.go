// Package textfit sizes and reflows text to fit inside a box.
//
// Fit is the entry point: given a text element and a box in points, it
// applies the element's overflow policy (shrink, wrap or truncate, with auto
// selecting between them) and returns the final font size, the resulting
// lines, and an AdjustmentResult describing what changed. Fit never mutates
// its input.
//
// Widths come from a Measurer. FontMeasurer (the default) sums glyph
// advances from embedded Latin Modern fonts; ShapedMeasurer runs full
// HarfBuzz shaping for kerned widths.
package textfit

import (
	"strings"

	"github.com/printfold/cardkit"
)

// Ellipsis is appended when content is cut to fit.
const Ellipsis = "..."

// autoShrinkLimit is the content length below which the auto policy prefers
// shrinking over wrapping.
const autoShrinkLimit = 30

// LineHeight returns the vertical advance for a font size.
func LineHeight(fontSize float64) float64 { return fontSize * 1.2 }

// Result is the outcome of a Fit call.
type Result struct {
	FontSize   float64
	Lines      []string
	Adjustment cardkit.AdjustmentResult
}

// Fit lays out el.Content inside a box of maxWidth by maxHeight points
// according to the element's overflow policy. A maxWidth of zero or less
// means the width is unconstrained and the text passes through untouched;
// a maxHeight of zero or less leaves the height unconstrained.
//
// The element is read, never written. A nil measurer uses the default.
func Fit(el cardkit.TextElement, maxWidth, maxHeight float64, m Measurer) Result {
	if m == nil {
		m = Default()
	}
	size := float64(el.FontSize)
	if maxWidth <= 0 {
		return Result{
			FontSize: size,
			Lines:    []string{el.Content},
			Adjustment: cardkit.AdjustmentResult{
				OriginalFontSize: el.FontSize,
				FinalFontSize:    el.FontSize,
				LinesUsed:        1,
			},
		}
	}

	policy := el.Overflow
	if policy == "" || policy == cardkit.OverflowAuto {
		policy = resolveAuto(el)
	}

	switch policy {
	case cardkit.OverflowWrap:
		return wrap(el, maxWidth, maxHeight, m)
	case cardkit.OverflowTruncate:
		return truncate(el, maxWidth, m)
	default:
		return shrink(el, maxWidth, m)
	}
}

// resolveAuto picks the concrete policy for auto: short text shrinks, long
// text wraps when it has a width to wrap against.
func resolveAuto(el cardkit.TextElement) cardkit.OverflowPolicy {
	if len(el.Content) < autoShrinkLimit {
		return cardkit.OverflowShrink
	}
	if el.Width > 0 {
		return cardkit.OverflowWrap
	}
	return cardkit.OverflowShrink
}

// shrink binary-searches the largest integer font size in [floor, original]
// whose single-line width fits. If even the floor size overflows, the
// content is truncated at the floor size.
func shrink(el cardkit.TextElement, maxWidth float64, m Measurer) Result {
	original := el.FontSize
	floor := el.ShrinkFloor()

	width := func(size int) float64 {
		return m.TextWidth(el.Content, el.Font(float64(size)))
	}

	if width(original) <= maxWidth {
		return Result{
			FontSize: float64(original),
			Lines:    []string{el.Content},
			Adjustment: cardkit.AdjustmentResult{
				PolicyApplied:    cardkit.OverflowShrink,
				OriginalFontSize: original,
				FinalFontSize:    original,
				LinesUsed:        1,
			},
		}
	}

	lo, hi := floor, original
	best := floor
	for lo <= hi {
		mid := (lo + hi) / 2
		if width(mid) <= maxWidth {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	line := el.Content
	truncated := false
	if width(best) > maxWidth {
		line = truncateLine(el.Content, maxWidth, el.Font(float64(best)), m)
		truncated = true
	}
	return Result{
		FontSize: float64(best),
		Lines:    []string{line},
		Adjustment: cardkit.AdjustmentResult{
			WasAdjusted:      true,
			PolicyApplied:    cardkit.OverflowShrink,
			OriginalFontSize: original,
			FinalFontSize:    best,
			LinesUsed:        1,
			ContentTruncated: truncated,
		},
	}
}

// wrap greedily packs words into lines at the element's font size, then
// binary-searches a smaller size when the block is taller than maxHeight.
func wrap(el cardkit.TextElement, maxWidth, maxHeight float64, m Measurer) Result {
	original := el.FontSize
	floor := el.ShrinkFloor()

	lines := wrapWords(el.Content, maxWidth, el.Font(float64(original)), m, el.MaxLines)
	size := original

	if maxHeight > 0 && blockHeight(len(lines), float64(size)) > maxHeight {
		lo, hi := floor, original
		best := floor
		bestLines := wrapWords(el.Content, maxWidth, el.Font(float64(floor)), m, el.MaxLines)
		for lo <= hi {
			mid := (lo + hi) / 2
			candidate := wrapWords(el.Content, maxWidth, el.Font(float64(mid)), m, el.MaxLines)
			if blockHeight(len(candidate), float64(mid)) <= maxHeight {
				best, bestLines = mid, candidate
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
		size, lines = best, bestLines
	}

	return Result{
		FontSize: float64(size),
		Lines:    lines,
		Adjustment: cardkit.AdjustmentResult{
			WasAdjusted:      len(lines) > 1 || size != original,
			PolicyApplied:    cardkit.OverflowWrap,
			OriginalFontSize: original,
			FinalFontSize:    size,
			LinesUsed:        len(lines),
		},
	}
}

// wrapWords splits content into lines no wider than maxWidth. A single word
// wider than maxWidth gets its own line rather than being split. maxLines of
// zero means unlimited; words past the cap are dropped.
func wrapWords(content string, maxWidth float64, font cardkit.FontSpec, m Measurer, maxLines int) []string {
	words := strings.Fields(content)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var current []string
	for _, word := range words {
		candidate := strings.Join(append(current, word), " ")
		if m.TextWidth(candidate, font) <= maxWidth {
			current = append(current, word)
		} else if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
			current = []string{word}
		} else {
			// Lone overwide word goes on its own line unsplit.
			lines = append(lines, word)
		}
		if maxLines > 0 && len(lines) >= maxLines {
			break
		}
	}
	if len(current) > 0 && (maxLines == 0 || len(lines) < maxLines) {
		lines = append(lines, strings.Join(current, " "))
	}
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// truncate keeps the font size and trims trailing characters, reserving
// room for the ellipsis.
func truncate(el cardkit.TextElement, maxWidth float64, m Measurer) Result {
	font := el.Font(float64(el.FontSize))
	adj := cardkit.AdjustmentResult{
		PolicyApplied:    cardkit.OverflowTruncate,
		OriginalFontSize: el.FontSize,
		FinalFontSize:    el.FontSize,
		LinesUsed:        1,
	}
	if m.TextWidth(el.Content, font) <= maxWidth {
		return Result{FontSize: font.Size, Lines: []string{el.Content}, Adjustment: adj}
	}

	line := truncateLine(el.Content, maxWidth, font, m)
	adj.WasAdjusted = true
	adj.ContentTruncated = true
	return Result{FontSize: font.Size, Lines: []string{line}, Adjustment: adj}
}

// truncateLine drops trailing runes until content plus the ellipsis fits in
// maxWidth. When nothing fits, the bare ellipsis is returned.
func truncateLine(content string, maxWidth float64, font cardkit.FontSpec, m Measurer) string {
	ellipsisWidth := m.TextWidth(Ellipsis, font)
	runes := []rune(content)
	for n := len(runes); n > 0; n-- {
		if m.TextWidth(string(runes[:n]), font)+ellipsisWidth <= maxWidth {
			return string(runes[:n]) + Ellipsis
		}
	}
	return Ellipsis
}

// blockHeight is the rendered height of n lines at the given font size.
func blockHeight(n int, fontSize float64) float64 {
	return float64(n) * LineHeight(fontSize)
}
