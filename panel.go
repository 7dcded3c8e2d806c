package cardkit

// PanelRole identifies where a panel lands on the folded card.
type PanelRole string

const (
	PanelFront      PanelRole = "front"
	PanelInsideLeft PanelRole = "inside_left"
	PanelInside     PanelRole = "inside"
	PanelBack       PanelRole = "back"
)

// BorderStyle selects the stroke pattern of a panel border.
type BorderStyle string

const (
	BorderSolid      BorderStyle = "solid"
	BorderDashed     BorderStyle = "dashed"
	BorderDotted     BorderStyle = "dotted"
	BorderDecorative BorderStyle = "decorative"
)

// DashPattern returns the on/off point lengths for the style, or nil for a
// solid stroke. Decorative borders use a long-dash pattern with short gaps.
func (s BorderStyle) DashPattern() []float64 {
	switch s {
	case BorderDashed:
		return []float64{6, 3}
	case BorderDotted:
		return []float64{1, 2}
	case BorderDecorative:
		return []float64{8, 2, 2, 2}
	default:
		return nil
	}
}

// Border is an optional frame drawn inset from the panel edges.
type Border struct {
	Color  string  // hex
	Width  float64 // points
	Inset  float64 // inches from each edge
	Style  BorderStyle
	Corner float64 // corner radius in inches; 0 = square
}

// Validate checks border bounds.
func (b Border) Validate() error {
	if err := validateHexField("border.color", b.Color); err != nil {
		return err
	}
	if b.Width <= 0 {
		return validationf("border.width", "%v must be > 0", b.Width)
	}
	if b.Inset < 0 {
		return validationf("border.inset", "%v must be >= 0", b.Inset)
	}
	if b.Corner < 0 {
		return validationf("border.corner", "%v must be >= 0", b.Corner)
	}
	return nil
}

// Panel is one face of the folded card. It owns a coordinate frame: X/Y are
// the panel's page-space origin and Width/Height its extent, all in inches.
// Elements are positioned in inches relative to the panel origin
// (bottom-left corner).
type Panel struct {
	Role            PanelRole
	X, Y            float64 // page-space origin, inches
	Width, Height   float64 // inches
	Rotation        float64 // degrees, for upside-down fold panels
	BackgroundColor string  // hex; "" = no fill
	Border          *Border
	Shapes          []Shape
	Texts           []TextElement
	Images          []ImageElement
}

// Validate checks the panel's own fields and every element on it.
func (p Panel) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return validationf("panel.size", "width/height must be > 0")
	}
	if err := validateHexField("panel.background_color", p.BackgroundColor); err != nil {
		return err
	}
	if p.Border != nil {
		if err := p.Border.Validate(); err != nil {
			return err
		}
	}
	for _, s := range p.Shapes {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	for _, t := range p.Texts {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	for _, img := range p.Images {
		if err := img.Validate(); err != nil {
			return err
		}
	}
	return nil
}
