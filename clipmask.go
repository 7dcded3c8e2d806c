package cardkit

import "strings"

// ClipMask restricts where an image draw is visible. It is a tagged union:
// the concrete type is the discriminator. Mask coordinates are in inches,
// relative to the image's anchor position.
type ClipMask interface {
	clipMask()
}

// Discriminator values used by scene loaders for ClipMask variants.
const (
	ClipTypeCircle    = "circle"
	ClipTypeRectangle = "rectangle"
	ClipTypeEllipse   = "ellipse"
	ClipTypeStar      = "star"
	ClipTypePath      = "svg_path"
)

// CircleClip is a circular clipping mask.
type CircleClip struct {
	CenterX, CenterY float64
	Radius           float64
}

func (CircleClip) clipMask() {}

// NewCircleClip validates the radius.
func NewCircleClip(cx, cy, r float64) (CircleClip, error) {
	if r <= 0 {
		return CircleClip{}, validationf("clip.circle.radius", "%v must be > 0", r)
	}
	return CircleClip{CenterX: cx, CenterY: cy, Radius: r}, nil
}

// RectangleClip is a rectangular clipping mask.
type RectangleClip struct {
	X, Y          float64
	Width, Height float64
}

func (RectangleClip) clipMask() {}

// NewRectangleClip validates the dimensions.
func NewRectangleClip(x, y, w, h float64) (RectangleClip, error) {
	if w <= 0 {
		return RectangleClip{}, validationf("clip.rectangle.width", "%v must be > 0", w)
	}
	if h <= 0 {
		return RectangleClip{}, validationf("clip.rectangle.height", "%v must be > 0", h)
	}
	return RectangleClip{X: x, Y: y, Width: w, Height: h}, nil
}

// EllipseClip is an elliptical clipping mask.
type EllipseClip struct {
	CenterX, CenterY float64
	RadiusX, RadiusY float64
}

func (EllipseClip) clipMask() {}

// NewEllipseClip validates both radii.
func NewEllipseClip(cx, cy, rx, ry float64) (EllipseClip, error) {
	if rx <= 0 {
		return EllipseClip{}, validationf("clip.ellipse.radius_x", "%v must be > 0", rx)
	}
	if ry <= 0 {
		return EllipseClip{}, validationf("clip.ellipse.radius_y", "%v must be > 0", ry)
	}
	return EllipseClip{CenterX: cx, CenterY: cy, RadiusX: rx, RadiusY: ry}, nil
}

// StarClip is a star-shaped clipping mask.
type StarClip struct {
	CenterX, CenterY float64
	OuterRadius      float64
	InnerRadius      float64
	Points           int
}

func (StarClip) clipMask() {}

// NewStarClip validates the radii ordering and point count.
func NewStarClip(cx, cy, outer, inner float64, points int) (StarClip, error) {
	if outer <= 0 {
		return StarClip{}, validationf("clip.star.outer_radius", "%v must be > 0", outer)
	}
	if inner <= 0 {
		return StarClip{}, validationf("clip.star.inner_radius", "%v must be > 0", inner)
	}
	if inner >= outer {
		return StarClip{}, validationf("clip.star.inner_radius",
			"inner radius %v must be less than outer radius %v", inner, outer)
	}
	if points < 3 || points > 20 {
		return StarClip{}, validationf("clip.star.points", "%d outside [3,20]", points)
	}
	return StarClip{CenterX: cx, CenterY: cy, OuterRadius: outer, InnerRadius: inner, Points: points}, nil
}

// PathClip clips to a closed vector path expressed in the path mini-language.
// The path data must end with a close command (Z or z).
type PathClip struct {
	PathData string
	Scale    float64
}

func (PathClip) clipMask() {}

// NewPathClip validates that the path data is non-empty, closed, and the
// scale is positive.
func NewPathClip(pathData string, scale float64) (PathClip, error) {
	pathData = strings.TrimSpace(pathData)
	if pathData == "" {
		return PathClip{}, validationf("clip.path.path_data", "path data cannot be empty")
	}
	if !strings.HasSuffix(pathData, "Z") && !strings.HasSuffix(pathData, "z") {
		return PathClip{}, validationf("clip.path.path_data",
			"clip path must be closed (end with Z or z)")
	}
	if scale <= 0 || scale > 10 {
		return PathClip{}, validationf("clip.path.scale", "%v outside (0,10]", scale)
	}
	return PathClip{PathData: pathData, Scale: scale}, nil
}
