package cardkit

// All model measurements use inches as the primary unit, converted to page
// points (72 per inch) only at render time so printed dimensions stay exact.

// Page dimensions (US Letter), in inches.
const (
	PageWidth  = 8.5
	PageHeight = 11.0
)

// SafeMargin is the minimum distance from every page edge, in inches.
const SafeMargin = 0.25

// PointsPerInch is the page-point conversion factor.
const PointsPerInch = 72.0

// Guide line widths, in points.
const (
	FoldLineWidth = 0.5
	CutLineWidth  = 1.0
)

// Folded panel dimensions per fold type, in inches.
const (
	HalfFoldWidth  = PageHeight / 2
	HalfFoldHeight = PageWidth

	QuarterFoldWidth  = PageWidth / 2
	QuarterFoldHeight = PageHeight / 2

	TriFoldPanelWidth = PageWidth / 3
	TriFoldHeight     = PageHeight
)

// InchesToPoints converts inches to page points.
func InchesToPoints(in float64) float64 { return in * PointsPerInch }

// PointsToInches converts page points to inches.
func PointsToInches(pt float64) float64 { return pt / PointsPerInch }

// WithinPage reports whether a rectangle fits on the page inside the safe
// margins. Positions and sizes are in inches from the bottom-left corner.
func WithinPage(x, y, width, height float64) bool {
	if x < SafeMargin || y < SafeMargin {
		return false
	}
	if x+width > PageWidth-SafeMargin {
		return false
	}
	if y+height > PageHeight-SafeMargin {
		return false
	}
	return true
}

// WithinPanel reports whether a rectangle fits inside a panel's safe area.
// All values are in inches; x and y are relative to the panel origin.
func WithinPanel(x, y, width, height, panelWidth, panelHeight float64) bool {
	if x < SafeMargin || y < SafeMargin {
		return false
	}
	if x+width > panelWidth-SafeMargin {
		return false
	}
	if y+height > panelHeight-SafeMargin {
		return false
	}
	return true
}
