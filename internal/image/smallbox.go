package imagepkg

import (
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/youruser/sgmapp/internal/assets"
	"github.com/youruser/sgmapp/internal/domain"
	"github.com/youruser/sgmapp/internal/util"
)

// BoxSmallPath is where a game's small box image lives.
func BoxSmallPath(folder, basename string) string {
	return filepath.Join(folder, basename+assets.Suffix(assets.KindBoxSmall)+".png")
}

// SmallBox scales box down to fit inside bounds, keeping its aspect ratio.
// Images already inside bounds are copied unscaled.
func SmallBox(box image.Image, bounds domain.Resolution) (*image.NRGBA, error) {
	if !bounds.Valid() {
		return nil, invalidSpec("small box resolution %s must be at least 1x1", bounds)
	}
	if isNilImage(box) || box.Bounds().Empty() {
		return nil, invalidSpec("box image is empty")
	}
	return imaging.Fit(box, bounds.Width, bounds.Height, imaging.Lanczos), nil
}

// AutoBuildSmallBoxes writes <basename>_small.png from the box image for
// every bundle that has a box and no small box. Failures are collected per
// bundle like AutoBuildOverlays.
func AutoBuildSmallBoxes(res assets.ScanResult, bounds domain.Resolution) AutoBuildReport {
	rep := AutoBuildReport{Built: []string{}, Failed: []AutoBuildFailure{}}
	for _, g := range res.Games {
		box, ok := g.Path(assets.KindBox)
		if !ok || g.Has(assets.KindBoxSmall) {
			continue
		}
		dst, err := buildSmallBox(g, box, bounds)
		if err != nil {
			rep.Failed = append(rep.Failed, AutoBuildFailure{Basename: g.Basename, Error: err.Error()})
			continue
		}
		rep.Built = append(rep.Built, dst)
	}
	return rep
}

func buildSmallBox(g *assets.GameAssets, box string, bounds domain.Resolution) (string, error) {
	img, err := LoadImage(box)
	if err != nil {
		return "", err
	}
	small, err := SmallBox(img, bounds)
	if err != nil {
		return "", err
	}
	b, err := EncodePNG(small)
	if err != nil {
		return "", err
	}
	dst := BoxSmallPath(g.Folder, g.Basename)
	if err := util.WriteFileAtomic(dst, b); err != nil {
		return "", &IOError{Path: dst, Err: err}
	}
	return dst, nil
}
