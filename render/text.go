package render

import (
	"fmt"

	"github.com/printfold/cardkit"
	"github.com/printfold/cardkit/textfit"
)

// drawText renders one text element, logging and skipping on failure.
func (r *Renderer) drawText(el cardkit.TextElement, panel *cardkit.Panel, theme *cardkit.Theme) {
	if err := r.renderText(el, panel, theme); err != nil {
		rerr := &cardkit.RenderError{Element: fmt.Sprintf("text %q", el.ID), Cause: err}
		cardkit.Logger().Warn("text skipped", "panel", panel.Role, "err", rerr)
	}
}

func (r *Renderer) renderText(el cardkit.TextElement, panel *cardkit.Panel, theme *cardkit.Theme) error {
	maxWidth := 0.0
	if el.Width > 0 {
		maxWidth = cardkit.InchesToPoints(el.Width)
	}
	maxHeight := cardkit.InchesToPoints(panel.Height)

	res := textfit.Fit(el, maxWidth, maxHeight, r.measurer)
	if r.observe != nil {
		r.observe(el, res.Adjustment)
	}
	if res.Adjustment.WasAdjusted {
		cardkit.Logger().Debug("text adjusted to fit",
			"id", el.ID,
			"policy", res.Adjustment.PolicyApplied,
			"size", res.Adjustment.FinalFontSize,
			"lines", res.Adjustment.LinesUsed,
			"truncated", res.Adjustment.ContentTruncated)
	}

	// Element color wins, then the theme text color, then black. A theme's
	// zero text color is already black, so the theme branch needs no guard.
	color := cardkit.Black
	switch {
	case el.Color != nil:
		color = *el.Color
	case theme != nil:
		color = theme.Text
	}

	x := cardkit.InchesToPoints(panel.X + el.X)
	y := cardkit.InchesToPoints(panel.Y + el.Y)
	font := el.Font(res.FontSize)
	lh := textfit.LineHeight(res.FontSize)

	r.surf.PushState()
	defer r.surf.PopState()

	if el.Rotation != 0 {
		r.surf.RotateAbout(el.Rotation, x, y)
	}
	r.surf.SetFillColor(color)

	// Lines stack downward from the anchor; the anchor is the first
	// baseline.
	for i, line := range res.Lines {
		lx := x
		switch el.Alignment {
		case cardkit.AlignCenter:
			lx = x - r.surf.MeasureTextWidth(line, font)/2
		case cardkit.AlignRight:
			lx = x - r.surf.MeasureTextWidth(line, font)
		}
		if err := r.surf.DrawText(line, lx, y-float64(i)*lh, font); err != nil {
			return err
		}
	}
	return nil
}
