package cardkit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseCard decodes a YAML card template into a validated Card. Panels that
// omit their geometry get it from the fold layout by position; element
// variants are selected by their "type" discriminator.
func ParseCard(data []byte) (*Card, error) {
	var doc cardDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("card template: %w", err)
	}
	card, err := doc.toCard()
	if err != nil {
		return nil, err
	}
	if err := card.Validate(); err != nil {
		return nil, err
	}
	return card, nil
}

// LoadCard reads and parses a YAML card template file.
func LoadCard(path string) (*Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCard(data)
}

type cardDoc struct {
	Title  string     `yaml:"title"`
	Fold   FoldType   `yaml:"fold"`
	Theme  string     `yaml:"theme"`
	Panels []panelDoc `yaml:"panels"`
}

type panelDoc struct {
	Role            PanelRole  `yaml:"role"`
	X               *float64   `yaml:"x"`
	Y               *float64   `yaml:"y"`
	Width           *float64   `yaml:"width"`
	Height          *float64   `yaml:"height"`
	Rotation        float64    `yaml:"rotation"`
	BackgroundColor string     `yaml:"background_color"`
	Border          *borderDoc `yaml:"border"`
	Shapes          []shapeDoc `yaml:"shapes"`
	Texts           []textDoc  `yaml:"texts"`
	Images          []imageDoc `yaml:"images"`
}

type borderDoc struct {
	Color  string      `yaml:"color"`
	Width  float64     `yaml:"width"`
	Inset  float64     `yaml:"inset"`
	Style  BorderStyle `yaml:"style"`
	Corner float64     `yaml:"corner"`
}

type shapeDoc struct {
	Type        string   `yaml:"type"`
	ID          string   `yaml:"id"`
	ZIndex      int      `yaml:"z_index"`
	FillColor   string   `yaml:"fill_color"`
	StrokeColor string   `yaml:"stroke_color"`
	StrokeWidth float64  `yaml:"stroke_width"`
	Opacity     *float64 `yaml:"opacity"`
	Rotation    float64  `yaml:"rotation"`
	Fill        *fillDoc `yaml:"fill"`

	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
	Radius  float64 `yaml:"radius"`

	X1 float64 `yaml:"x1"`
	Y1 float64 `yaml:"y1"`
	X2 float64 `yaml:"x2"`
	Y2 float64 `yaml:"y2"`
	X3 float64 `yaml:"x3"`
	Y3 float64 `yaml:"y3"`

	OuterRadius float64 `yaml:"outer_radius"`
	InnerRadius float64 `yaml:"inner_radius"`
	Points      int     `yaml:"points"`

	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	EndX   float64 `yaml:"end_x"`
	EndY   float64 `yaml:"end_y"`

	PathData string   `yaml:"path_data"`
	Scale    *float64 `yaml:"scale"`

	Name         string            `yaml:"name"`
	ColorPalette map[string]string `yaml:"color_palette"`
}

type fillDoc struct {
	Type  string `yaml:"type"`
	Color string `yaml:"color"`

	Angle float64   `yaml:"angle"`
	Stops []stopDoc `yaml:"stops"`

	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
	Radius  float64 `yaml:"radius"`

	Kind     PatternKind `yaml:"kind"`
	Colors   []string    `yaml:"colors"`
	Spacing  float64     `yaml:"spacing"`
	Scale    float64     `yaml:"scale"`
	Rotation float64     `yaml:"rotation"`
}

type stopDoc struct {
	Position float64 `yaml:"position"`
	Color    string  `yaml:"color"`
}

type textDoc struct {
	ID         string         `yaml:"id"`
	Content    string         `yaml:"content"`
	X          float64        `yaml:"x"`
	Y          float64        `yaml:"y"`
	Width      float64        `yaml:"width"`
	FontFamily string         `yaml:"font_family"`
	FontSize   int            `yaml:"font_size"`
	FontStyle  FontStyle      `yaml:"font_style"`
	Color      string         `yaml:"color"`
	Alignment  TextAlignment  `yaml:"alignment"`
	Rotation   float64        `yaml:"rotation"`
	ZIndex     *int           `yaml:"z_index"`
	Overflow   OverflowPolicy `yaml:"overflow"`
	MaxLines   int            `yaml:"max_lines"`
	MinSize    int            `yaml:"min_font_size"`
}

type imageDoc struct {
	ID             string   `yaml:"id"`
	Source         string   `yaml:"source"`
	X              float64  `yaml:"x"`
	Y              float64  `yaml:"y"`
	Width          float64  `yaml:"width"`
	Height         float64  `yaml:"height"`
	PreserveAspect *bool    `yaml:"preserve_aspect"`
	Rotation       float64  `yaml:"rotation"`
	Opacity        *float64 `yaml:"opacity"`
	ZIndex         *int     `yaml:"z_index"`
	Clip           *clipDoc `yaml:"clip"`
}

type clipDoc struct {
	Type string `yaml:"type"`

	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
	Radius  float64 `yaml:"radius"`
	RadiusX float64 `yaml:"radius_x"`
	RadiusY float64 `yaml:"radius_y"`

	OuterRadius float64 `yaml:"outer_radius"`
	InnerRadius float64 `yaml:"inner_radius"`
	Points      int     `yaml:"points"`

	PathData string   `yaml:"path_data"`
	Scale    *float64 `yaml:"scale"`
}

func (d cardDoc) toCard() (*Card, error) {
	fold := d.Fold
	if fold == "" {
		fold = FoldHalf
	}
	card := &Card{Title: d.Title, Fold: fold}

	if d.Theme != "" {
		theme, err := LoadTheme(d.Theme, "")
		if err != nil {
			return nil, err
		}
		card.Theme = &theme
	}

	for i, pd := range d.Panels {
		panel, err := pd.toPanel(fold, i)
		if err != nil {
			return nil, fmt.Errorf("panel %d: %w", i, err)
		}
		card.Panels = append(card.Panels, panel)
	}
	return card, nil
}

func (d panelDoc) toPanel(fold FoldType, i int) (Panel, error) {
	panel := fold.NewPanel(i, d.Role)
	if d.X != nil {
		panel.X = *d.X
	}
	if d.Y != nil {
		panel.Y = *d.Y
	}
	if d.Width != nil {
		panel.Width = *d.Width
	}
	if d.Height != nil {
		panel.Height = *d.Height
	}
	panel.Rotation = d.Rotation
	panel.BackgroundColor = d.BackgroundColor
	if d.Border != nil {
		panel.Border = &Border{
			Color:  d.Border.Color,
			Width:  d.Border.Width,
			Inset:  d.Border.Inset,
			Style:  d.Border.Style,
			Corner: d.Border.Corner,
		}
	}

	for j, sd := range d.Shapes {
		shape, err := sd.toShape()
		if err != nil {
			return Panel{}, fmt.Errorf("shape %d: %w", j, err)
		}
		panel.Shapes = append(panel.Shapes, shape)
	}
	for j, td := range d.Texts {
		text, err := td.toText()
		if err != nil {
			return Panel{}, fmt.Errorf("text %d: %w", j, err)
		}
		panel.Texts = append(panel.Texts, text)
	}
	for j, id := range d.Images {
		img, err := id.toImage()
		if err != nil {
			return Panel{}, fmt.Errorf("image %d: %w", j, err)
		}
		panel.Images = append(panel.Images, img)
	}
	return panel, nil
}

func (d shapeDoc) base() (ShapeBase, error) {
	base := ShapeBase{
		ID:          d.ID,
		ZIndex:      d.ZIndex,
		FillColor:   d.FillColor,
		StrokeColor: d.StrokeColor,
		StrokeWidth: d.StrokeWidth,
		Opacity:     1,
		Rotation:    d.Rotation,
	}
	if d.Opacity != nil {
		base.Opacity = *d.Opacity
	}
	if d.Fill != nil {
		fill, err := d.Fill.toFill()
		if err != nil {
			return ShapeBase{}, err
		}
		base.Fill = fill
	}
	return base, nil
}

func (d shapeDoc) toShape() (Shape, error) {
	if d.Type == ShapeTypeDecorative {
		scale := 1.0
		if d.Scale != nil {
			scale = *d.Scale
		}
		return DecorativeRef{
			ID:           d.ID,
			Name:         d.Name,
			X:            d.X,
			Y:            d.Y,
			Scale:        scale,
			Rotation:     d.Rotation,
			ColorPalette: d.ColorPalette,
			ZIndex:       d.ZIndex,
		}, nil
	}

	base, err := d.base()
	if err != nil {
		return nil, err
	}
	switch d.Type {
	case ShapeTypeRectangle:
		return Rect{ShapeBase: base, X: d.X, Y: d.Y, Width: d.Width, Height: d.Height}, nil
	case ShapeTypeCircle:
		return Circle{ShapeBase: base, CenterX: d.CenterX, CenterY: d.CenterY, Radius: d.Radius}, nil
	case ShapeTypeTriangle:
		return Triangle{ShapeBase: base, X1: d.X1, Y1: d.Y1, X2: d.X2, Y2: d.Y2, X3: d.X3, Y3: d.Y3}, nil
	case ShapeTypeStar:
		return Star{
			ShapeBase: base,
			CenterX:   d.CenterX, CenterY: d.CenterY,
			OuterRadius: d.OuterRadius, InnerRadius: d.InnerRadius,
			Points: d.Points,
		}, nil
	case ShapeTypeLine:
		return Line{ShapeBase: base, StartX: d.StartX, StartY: d.StartY, EndX: d.EndX, EndY: d.EndY}, nil
	case ShapeTypePath:
		scale := 1.0
		if d.Scale != nil {
			scale = *d.Scale
		}
		return PathShape{ShapeBase: base, PathData: d.PathData, Scale: scale}, nil
	default:
		return nil, validationf("shape.type", "unknown shape type %q", d.Type)
	}
}

func (d fillDoc) toFill() (FillStyle, error) {
	switch d.Type {
	case FillTypeSolid:
		return NewSolidFill(d.Color)
	case FillTypeLinearGradient:
		return NewLinearGradientFill(d.Angle, d.toStops())
	case FillTypeRadialGradient:
		return NewRadialGradientFill(d.CenterX, d.CenterY, d.Radius, d.toStops())
	case FillTypePattern:
		scale := d.Scale
		if scale == 0 {
			scale = 1
		}
		return NewPatternFill(d.Kind, d.Colors, d.Spacing, scale, d.Rotation)
	default:
		return nil, validationf("fill.type", "unknown fill type %q", d.Type)
	}
}

func (d fillDoc) toStops() []ColorStop {
	stops := make([]ColorStop, len(d.Stops))
	for i, s := range d.Stops {
		stops[i] = ColorStop{Position: s.Position, Color: s.Color}
	}
	return stops
}

func (d textDoc) toText() (TextElement, error) {
	el := NewTextElement(d.Content, d.X, d.Y)
	el.ID = d.ID
	el.Width = d.Width
	el.Rotation = d.Rotation
	el.MaxLines = d.MaxLines
	el.MinFontSize = d.MinSize
	if d.FontFamily != "" {
		el.FontFamily = d.FontFamily
	}
	if d.FontSize != 0 {
		el.FontSize = d.FontSize
	}
	if d.FontStyle != "" {
		el.FontStyle = d.FontStyle
	}
	if d.Alignment != "" {
		el.Alignment = d.Alignment
	}
	if d.Overflow != "" {
		el.Overflow = d.Overflow
	}
	if d.ZIndex != nil {
		el.ZIndex = *d.ZIndex
	}
	if d.Color != "" {
		c, err := ParseHex(d.Color)
		if err != nil {
			return TextElement{}, err
		}
		el.Color = &c
	}
	return el, nil
}

func (d imageDoc) toImage() (ImageElement, error) {
	el := NewImageElement(d.Source, d.X, d.Y)
	el.ID = d.ID
	el.Width = d.Width
	el.Height = d.Height
	el.Rotation = d.Rotation
	if d.PreserveAspect != nil {
		el.PreserveAspect = *d.PreserveAspect
	}
	if d.Opacity != nil {
		el.Opacity = *d.Opacity
	}
	if d.ZIndex != nil {
		el.ZIndex = *d.ZIndex
	}
	if d.Clip != nil {
		clip, err := d.Clip.toClip()
		if err != nil {
			return ImageElement{}, err
		}
		el.ClipMask = clip
	}
	return el, nil
}

func (d clipDoc) toClip() (ClipMask, error) {
	switch d.Type {
	case ClipTypeCircle:
		return NewCircleClip(d.CenterX, d.CenterY, d.Radius)
	case ClipTypeRectangle:
		return NewRectangleClip(d.X, d.Y, d.Width, d.Height)
	case ClipTypeEllipse:
		return NewEllipseClip(d.CenterX, d.CenterY, d.RadiusX, d.RadiusY)
	case ClipTypeStar:
		return NewStarClip(d.CenterX, d.CenterY, d.OuterRadius, d.InnerRadius, d.Points)
	case ClipTypePath:
		scale := 1.0
		if d.Scale != nil {
			scale = *d.Scale
		}
		return NewPathClip(d.PathData, scale)
	default:
		return nil, validationf("clip.type", "unknown clip type %q", d.Type)
	}
}
