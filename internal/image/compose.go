package imagepkg

import (
	"bytes"
	"image"
	"image/color"
	"reflect"

	"github.com/disintegration/imaging"

	"github.com/youruser/sgmapp/internal/domain"
	"github.com/youruser/sgmapp/internal/util"
)

// OverlayBuildSpec describes one controller overlay: Foreground is resized to
// BuildResolution, placed at Offset on a Resolution-sized transparent canvas,
// and the Template is laid over the top.
type OverlayBuildSpec struct {
	Template        string
	Foreground      image.Image
	Destination     string
	Resolution      domain.Resolution
	BuildResolution domain.Resolution
	Offset          domain.Offset
}

// Validate checks geometry and inputs without touching the filesystem.
func (s OverlayBuildSpec) Validate() error {
	if !s.Resolution.Valid() {
		return invalidSpec("overlay resolution %s must be at least 1x1", s.Resolution)
	}
	if !s.BuildResolution.Valid() {
		return invalidSpec("build resolution %s must be at least 1x1", s.BuildResolution)
	}
	if !s.BuildResolution.Fits(s.Resolution) {
		return invalidSpec("build resolution %s exceeds overlay resolution %s", s.BuildResolution, s.Resolution)
	}
	if isNilImage(s.Foreground) {
		return invalidSpec("no foreground image")
	}
	if s.Foreground.Bounds().Empty() {
		return invalidSpec("foreground image is empty")
	}
	if s.Template == "" {
		return invalidSpec("no template")
	}
	return nil
}

// isNilImage also catches typed nils such as (*image.NRGBA)(nil), whose
// Bounds method would panic.
func isNilImage(img image.Image) bool {
	if img == nil {
		return true
	}
	v := reflect.ValueOf(img)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return v.IsNil()
	}
	return false
}

// Preview runs the compositing pipeline and returns the canvas without
// writing anything. BuildOverlay writes exactly these pixels.
func Preview(spec OverlayBuildSpec) (*image.NRGBA, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if !util.IsRegularFile(spec.Template) {
		return nil, invalidSpec("template %q not found", spec.Template)
	}
	tmpl, err := LoadImage(spec.Template)
	if err != nil {
		return nil, err
	}
	return compose(tmpl, spec), nil
}

// BuildOverlay composes spec and writes the PNG to spec.Destination. Nothing
// is written unless the whole pipeline succeeds.
func BuildOverlay(spec OverlayBuildSpec) error {
	if spec.Destination == "" {
		return invalidSpec("no destination")
	}
	b, err := EncodeOverlay(spec)
	if err != nil {
		return err
	}
	if err := util.WriteFileAtomic(spec.Destination, b); err != nil {
		return &IOError{Path: spec.Destination, Err: err}
	}
	return nil
}

// EncodeOverlay returns the PNG bytes BuildOverlay would write.
func EncodeOverlay(spec OverlayBuildSpec) ([]byte, error) {
	canvas, err := Preview(spec)
	if err != nil {
		return nil, err
	}
	return EncodePNG(canvas)
}

func EncodePNG(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// compose layers foreground then template; the template must stay on top so
// its transparent window shows the foreground through.
func compose(tmpl image.Image, spec OverlayBuildSpec) *image.NRGBA {
	w, h := spec.Resolution.Width, spec.Resolution.Height

	top := imaging.Clone(tmpl)
	if b := top.Bounds(); b.Dx() != w || b.Dy() != h {
		top = imaging.Resize(top, w, h, imaging.Lanczos)
	}

	canvas := imaging.New(w, h, color.NRGBA{})
	fg := imaging.Resize(spec.Foreground, spec.BuildResolution.Width, spec.BuildResolution.Height, imaging.Lanczos)
	canvas = imaging.Overlay(canvas, fg, image.Pt(spec.Offset.X, spec.Offset.Y), 1.0)
	return imaging.Overlay(canvas, top, image.Pt(0, 0), 1.0)
}
