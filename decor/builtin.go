package decor

func float(v float64) *float64 { return &v }

// builtinDefinitions are the composites available without any library files.
// All geometry is in inches with the composite's anchor at its bottom-left.
func builtinDefinitions() []Definition {
	return []Definition{
		{
			Name:          "christmas_tree",
			Description:   "Three-tier tree with trunk and star topper",
			DefaultWidth:  1.0,
			DefaultHeight: 1.4,
			ColorRoles: map[string]string{
				"foliage": "#2d6a2d",
				"trunk":   "#6b4226",
				"topper":  "#ffd700",
			},
			Shapes: []ShapeDef{
				{Type: "rectangle", X: 0.42, Y: 0.0, Width: 0.16, Height: 0.2, FillColor: "{trunk}"},
				{Type: "triangle", X1: 0.1, Y1: 0.2, X2: 0.9, Y2: 0.2, X3: 0.5, Y3: 0.65, FillColor: "{foliage}"},
				{Type: "triangle", X1: 0.18, Y1: 0.5, X2: 0.82, Y2: 0.5, X3: 0.5, Y3: 0.9, FillColor: "{foliage}"},
				{Type: "triangle", X1: 0.26, Y1: 0.78, X2: 0.74, Y2: 0.78, X3: 0.5, Y3: 1.12, FillColor: "{foliage}"},
				{Type: "star", CenterX: 0.5, CenterY: 1.24, OuterRadius: 0.14, InnerRadius: 0.06, Points: 5, FillColor: "{topper}"},
			},
		},
		{
			Name:          "ornament",
			Description:   "Round ornament with cap and hanger",
			DefaultWidth:  0.5,
			DefaultHeight: 0.65,
			ColorRoles: map[string]string{
				"ball": "#cc1f1f",
				"cap":  "#c0c0c0",
			},
			Shapes: []ShapeDef{
				{Type: "circle", CenterX: 0.25, CenterY: 0.25, Radius: 0.25, FillColor: "{ball}"},
				{Type: "rectangle", X: 0.19, Y: 0.5, Width: 0.12, Height: 0.08, FillColor: "{cap}"},
				{Type: "line", StartX: 0.25, StartY: 0.58, EndX: 0.25, EndY: 0.65, StrokeColor: "{cap}", StrokeWidth: 1},
			},
		},
		{
			Name:          "gift_box",
			Description:   "Wrapped box with ribbon and bow",
			DefaultWidth:  0.8,
			DefaultHeight: 0.9,
			ColorRoles: map[string]string{
				"paper":  "#cc1f1f",
				"ribbon": "#ffd700",
			},
			Shapes: []ShapeDef{
				{Type: "rectangle", X: 0.0, Y: 0.0, Width: 0.8, Height: 0.6, FillColor: "{paper}"},
				{Type: "rectangle", X: 0.34, Y: 0.0, Width: 0.12, Height: 0.6, FillColor: "{ribbon}"},
				{Type: "rectangle", X: 0.0, Y: 0.26, Width: 0.8, Height: 0.1, FillColor: "{ribbon}"},
				{Type: "circle", CenterX: 0.3, CenterY: 0.72, Radius: 0.1, FillColor: "{ribbon}"},
				{Type: "circle", CenterX: 0.5, CenterY: 0.72, Radius: 0.1, FillColor: "{ribbon}"},
			},
		},
		{
			Name:          "snowflake",
			Description:   "Six-armed snowflake built from crossed lines",
			DefaultWidth:  0.6,
			DefaultHeight: 0.6,
			ColorRoles: map[string]string{
				"ice": "#a8d3e8",
			},
			Shapes: []ShapeDef{
				{Type: "line", StartX: 0.3, StartY: 0.0, EndX: 0.3, EndY: 0.6, StrokeColor: "{ice}", StrokeWidth: 2},
				{Type: "line", StartX: 0.04, StartY: 0.15, EndX: 0.56, EndY: 0.45, StrokeColor: "{ice}", StrokeWidth: 2},
				{Type: "line", StartX: 0.04, StartY: 0.45, EndX: 0.56, EndY: 0.15, StrokeColor: "{ice}", StrokeWidth: 2},
				{Type: "circle", CenterX: 0.3, CenterY: 0.3, Radius: 0.05, FillColor: "{ice}"},
			},
		},
		{
			Name:          "candy_cane",
			Description:   "Striped cane from stacked rectangles",
			DefaultWidth:  0.3,
			DefaultHeight: 0.9,
			ColorRoles: map[string]string{
				"stripe": "#cc1f1f",
				"body":   "#ffffff",
			},
			Shapes: []ShapeDef{
				{Type: "rectangle", X: 0.0, Y: 0.0, Width: 0.12, Height: 0.9, FillColor: "{body}", StrokeColor: "#d0d0d0", StrokeWidth: 0.5},
				{Type: "rectangle", X: 0.0, Y: 0.1, Width: 0.12, Height: 0.1, FillColor: "{stripe}"},
				{Type: "rectangle", X: 0.0, Y: 0.3, Width: 0.12, Height: 0.1, FillColor: "{stripe}"},
				{Type: "rectangle", X: 0.0, Y: 0.5, Width: 0.12, Height: 0.1, FillColor: "{stripe}"},
				{Type: "rectangle", X: 0.0, Y: 0.7, Width: 0.12, Height: 0.1, FillColor: "{stripe}"},
			},
		},
		{
			Name:          "candle",
			Description:   "Pillar candle with flame",
			DefaultWidth:  0.3,
			DefaultHeight: 0.8,
			ColorRoles: map[string]string{
				"wax":   "#f5f0e0",
				"flame": "#ffa500",
				"wick":  "#333333",
			},
			Shapes: []ShapeDef{
				{Type: "rectangle", X: 0.05, Y: 0.0, Width: 0.2, Height: 0.55, FillColor: "{wax}", StrokeColor: "#d8d0b8", StrokeWidth: 0.5},
				{Type: "line", StartX: 0.15, StartY: 0.55, EndX: 0.15, EndY: 0.62, StrokeColor: "{wick}", StrokeWidth: 1},
				{Type: "circle", CenterX: 0.15, CenterY: 0.68, Radius: 0.08, FillColor: "{flame}"},
				{Type: "circle", CenterX: 0.15, CenterY: 0.66, Radius: 0.04, FillColor: "#ffe066"},
			},
		},
		{
			Name:          "menorah",
			Description:   "Nine-branch menorah with lit candles",
			DefaultWidth:  1.2,
			DefaultHeight: 0.9,
			ColorRoles: map[string]string{
				"metal": "#c9a227",
				"flame": "#ffa500",
			},
			Shapes: menorahShapes(),
		},
		{
			Name:          "balloon",
			Description:   "Round balloon with knot and string",
			DefaultWidth:  0.45,
			DefaultHeight: 0.95,
			ColorRoles: map[string]string{
				"skin":   "#cc1f1f",
				"string": "#555555",
			},
			Shapes: []ShapeDef{
				{Type: "line", StartX: 0.225, StartY: 0.0, EndX: 0.225, EndY: 0.42, StrokeColor: "{string}", StrokeWidth: 0.75},
				{Type: "triangle", X1: 0.17, Y1: 0.42, X2: 0.28, Y2: 0.42, X3: 0.225, Y3: 0.5, FillColor: "{skin}"},
				{Type: "circle", CenterX: 0.225, CenterY: 0.72, Radius: 0.22, FillColor: "{skin}"},
				{Type: "circle", CenterX: 0.15, CenterY: 0.8, Radius: 0.05, FillColor: "#ffffff", Opacity: float(0.5)},
			},
		},
		{
			Name:          "banner",
			Description:   "Pennant banner strung between two points",
			DefaultWidth:  1.2,
			DefaultHeight: 0.35,
			ColorRoles: map[string]string{
				"cord":    "#555555",
				"pennant": "#cc1f1f",
				"alt":     "#1a3a6b",
			},
			Shapes: []ShapeDef{
				{Type: "line", StartX: 0.0, StartY: 0.3, EndX: 1.2, EndY: 0.3, StrokeColor: "{cord}", StrokeWidth: 1},
				{Type: "triangle", X1: 0.05, Y1: 0.3, X2: 0.27, Y2: 0.3, X3: 0.16, Y3: 0.05, FillColor: "{pennant}"},
				{Type: "triangle", X1: 0.33, Y1: 0.3, X2: 0.55, Y2: 0.3, X3: 0.44, Y3: 0.05, FillColor: "{alt}"},
				{Type: "triangle", X1: 0.61, Y1: 0.3, X2: 0.83, Y2: 0.3, X3: 0.72, Y3: 0.05, FillColor: "{pennant}"},
				{Type: "triangle", X1: 0.89, Y1: 0.3, X2: 1.11, Y2: 0.3, X3: 1.0, Y3: 0.05, FillColor: "{alt}"},
			},
		},
		{
			Name:          "sun",
			Description:   "Sun disc with triangular rays",
			DefaultWidth:  0.8,
			DefaultHeight: 0.8,
			ColorRoles: map[string]string{
				"disc": "#ffd700",
				"ray":  "#ffa500",
			},
			Shapes: []ShapeDef{
				{Type: "star", CenterX: 0.4, CenterY: 0.4, OuterRadius: 0.4, InnerRadius: 0.24, Points: 8, FillColor: "{ray}"},
				{Type: "circle", CenterX: 0.4, CenterY: 0.4, Radius: 0.22, FillColor: "{disc}"},
			},
		},
		{
			Name:          "holly",
			Description:   "Holly leaves with berries",
			DefaultWidth:  0.7,
			DefaultHeight: 0.4,
			ColorRoles: map[string]string{
				"leaf":  "#2d6a2d",
				"berry": "#cc1f1f",
			},
			Shapes: []ShapeDef{
				{Type: "triangle", X1: 0.0, Y1: 0.2, X2: 0.3, Y2: 0.35, X3: 0.3, Y3: 0.05, FillColor: "{leaf}"},
				{Type: "triangle", X1: 0.7, Y1: 0.2, X2: 0.4, Y2: 0.35, X3: 0.4, Y3: 0.05, FillColor: "{leaf}"},
				{Type: "circle", CenterX: 0.3, CenterY: 0.2, Radius: 0.06, FillColor: "{berry}"},
				{Type: "circle", CenterX: 0.38, CenterY: 0.26, Radius: 0.06, FillColor: "{berry}"},
				{Type: "circle", CenterX: 0.38, CenterY: 0.14, Radius: 0.06, FillColor: "{berry}", Opacity: float(0.95)},
			},
		},
	}
}

func menorahShapes() []ShapeDef {
	shapes := []ShapeDef{
		{Type: "rectangle", X: 0.3, Y: 0.0, Width: 0.6, Height: 0.06, FillColor: "{metal}"},
		{Type: "rectangle", X: 0.57, Y: 0.06, Width: 0.06, Height: 0.24, FillColor: "{metal}"},
		{Type: "rectangle", X: 0.06, Y: 0.3, Width: 1.08, Height: 0.05, FillColor: "{metal}"},
	}
	for i := 0; i < 9; i++ {
		x := 0.06 + float64(i)*0.13
		// The shamash sits higher than the other eight.
		top := 0.65
		if i == 4 {
			top = 0.75
		}
		shapes = append(shapes,
			ShapeDef{Type: "rectangle", X: x, Y: 0.35, Width: 0.04, Height: top - 0.35, FillColor: "{metal}"},
			ShapeDef{Type: "circle", CenterX: x + 0.02, CenterY: top + 0.05, Radius: 0.035, FillColor: "{flame}"},
		)
	}
	return shapes
}
