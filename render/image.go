package render

import (
	"fmt"
	"image"
	"math"
	"os"

	"github.com/printfold/cardkit"

	// Image formats accepted by DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// imageDPI is the pixel density assumed when converting image pixels to
// physical size. Cards are print artifacts, so a 72 dpi assumption keeps
// one image pixel equal to one point.
const imageDPI = 72.0

// drawImage renders one image element, logging and skipping on failure so
// a missing file leaves a blank spot instead of killing the card.
func (r *Renderer) drawImage(el cardkit.ImageElement, panel *cardkit.Panel) {
	if err := r.renderImage(el, panel); err != nil {
		rerr := &cardkit.RenderError{Element: fmt.Sprintf("image %q (%s)", el.ID, el.SourcePath), Cause: err}
		cardkit.Logger().Warn("image skipped", "panel", panel.Role, "err", rerr)
	}
}

func (r *Renderer) renderImage(el cardkit.ImageElement, panel *cardkit.Panel) error {
	natW, natH, err := imageNaturalSize(el.SourcePath)
	if err != nil {
		return err
	}

	w, h := imageDrawSize(el, natW, natH)
	x, y, w, h := clampToSafeArea(el.X, el.Y, w, h, panel.Width, panel.Height)

	px := cardkit.InchesToPoints(panel.X + x)
	py := cardkit.InchesToPoints(panel.Y + y)
	pw := cardkit.InchesToPoints(w)
	ph := cardkit.InchesToPoints(h)

	r.surf.PushState()
	defer r.surf.PopState()

	if el.Rotation != 0 {
		r.surf.RotateAbout(el.Rotation, px+pw/2, py+ph/2)
	}
	if el.Opacity < 1 {
		r.surf.SetOpacity(el.Opacity)
	}
	if el.ClipMask != nil {
		pts, err := clipPolygon(el.ClipMask, px, py)
		if err != nil {
			return err
		}
		r.surf.BeginClip(pts)
		defer r.surf.EndClip()
	}
	return r.surf.DrawImage(el.SourcePath, px, py, pw, ph)
}

// imageNaturalSize reads the pixel dimensions of the image file and
// converts them to inches at the assumed density.
func imageNaturalSize(path string) (w, h float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, fmt.Errorf("image %s has no pixels", path)
	}
	return float64(cfg.Width) / imageDPI, float64(cfg.Height) / imageDPI, nil
}

// imageDrawSize resolves the draw size in inches from the element's
// explicit dimensions and the image's natural size.
func imageDrawSize(el cardkit.ImageElement, natW, natH float64) (w, h float64) {
	aspect := natW / natH

	switch {
	case el.Width > 0 && el.Height > 0:
		if !el.PreserveAspect {
			return el.Width, el.Height
		}
		// Fit inside the requested box.
		scale := math.Min(el.Width/natW, el.Height/natH)
		return natW * scale, natH * scale
	case el.Width > 0:
		return el.Width, el.Width / aspect
	case el.Height > 0:
		return el.Height * aspect, el.Height
	default:
		return natW, natH
	}
}

// clampToSafeArea shrinks and shifts the image rectangle so it stays
// within the panel's printable area.
func clampToSafeArea(x, y, w, h, panelW, panelH float64) (float64, float64, float64, float64) {
	availW := panelW - 2*cardkit.SafeMargin
	availH := panelH - 2*cardkit.SafeMargin

	if availW > 0 && availH > 0 {
		scale := 1.0
		if w > availW {
			scale = availW / w
		}
		if h*scale > availH {
			scale = availH / h
		}
		w *= scale
		h *= scale

		x = math.Min(math.Max(x, cardkit.SafeMargin), panelW-cardkit.SafeMargin-w)
		y = math.Min(math.Max(y, cardkit.SafeMargin), panelH-cardkit.SafeMargin-h)
	}
	return x, y, w, h
}
