package cardkit

import "fmt"

// FoldType determines how the printed sheet folds and therefore how many
// panels the card has and where they sit on the page.
type FoldType string

const (
	// FoldHalf folds the sheet once: two panels, each half the page height.
	FoldHalf FoldType = "half"
	// FoldQuarter folds twice: four quarter-page panels.
	FoldQuarter FoldType = "quarter"
	// FoldTri folds in thirds: three panels across the page height.
	FoldTri FoldType = "tri"
)

// PanelCount returns how many panels the fold produces.
func (f FoldType) PanelCount() int {
	switch f {
	case FoldQuarter:
		return 4
	case FoldTri:
		return 3
	default:
		return 2
	}
}

// PanelSize returns the width and height in inches of each panel.
func (f FoldType) PanelSize() (w, h float64) {
	switch f {
	case FoldQuarter:
		return PageWidth / 2, PageHeight / 2
	case FoldTri:
		return PageWidth / 3, PageHeight
	default:
		return PageWidth, PageHeight / 2
	}
}

// PanelOrigin returns the page-space origin in inches of panel i, counted
// from zero in declaration order. Half-fold panels stack bottom to top,
// quarter-fold panels go left to right within each row, and tri-fold panels
// run left to right.
func (f FoldType) PanelOrigin(i int) (x, y float64) {
	w, h := f.PanelSize()
	switch f {
	case FoldQuarter:
		return float64(i%2) * w, float64(i/2) * h
	case FoldTri:
		return float64(i) * w, 0
	default:
		return 0, float64(i) * h
	}
}

// FoldLines returns the vertical (x) and horizontal (y) guide coordinates
// in inches: one horizontal fold for half, one of each for quarter, two
// vertical folds for tri.
func (f FoldType) FoldLines() (xs, ys []float64) {
	switch f {
	case FoldQuarter:
		return []float64{PageWidth / 2}, []float64{PageHeight / 2}
	case FoldTri:
		return []float64{PageWidth / 3, 2 * PageWidth / 3}, nil
	default:
		return nil, []float64{PageHeight / 2}
	}
}

// Card is a complete greeting card scene: a fold layout plus the panels that
// fill it. Theme is optional and supplies fallback colors and fonts.
type Card struct {
	Title  string
	Fold   FoldType
	Panels []Panel
	Theme  *Theme
}

// NewPanel returns a panel for slot i of the fold, with its coordinate
// frame filled in from the fold layout.
func (f FoldType) NewPanel(i int, role PanelRole) Panel {
	w, h := f.PanelSize()
	x, y := f.PanelOrigin(i)
	return Panel{Role: role, X: x, Y: y, Width: w, Height: h}
}

// NewHalfFoldCard returns a half-fold card with empty front and inside
// panels, the most common layout. The front panel is the bottom half of the
// sheet so it faces out after folding.
func NewHalfFoldCard(title string) *Card {
	return &Card{
		Title: title,
		Fold:  FoldHalf,
		Panels: []Panel{
			FoldHalf.NewPanel(0, PanelFront),
			FoldHalf.NewPanel(1, PanelInside),
		},
	}
}

// Validate checks the card structure and every panel on it.
func (c *Card) Validate() error {
	switch c.Fold {
	case FoldHalf, FoldQuarter, FoldTri:
	default:
		return validationf("card.fold", "unknown fold type %q", c.Fold)
	}
	if n := len(c.Panels); n == 0 || n > c.Fold.PanelCount() {
		return validationf("card.panels",
			"panel count %d outside [1,%d] for %s fold", n, c.Fold.PanelCount(), c.Fold)
	}
	for i, p := range c.Panels {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("panel %d (%s): %w", i, p.Role, err)
		}
	}
	return nil
}

// Panel returns the first panel with the given role, or nil.
func (c *Card) Panel(role PanelRole) *Panel {
	for i := range c.Panels {
		if c.Panels[i].Role == role {
			return &c.Panels[i]
		}
	}
	return nil
}
