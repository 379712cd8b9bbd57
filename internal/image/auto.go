package imagepkg

import (
	"path/filepath"

	"github.com/youruser/sgmapp/internal/assets"
	"github.com/youruser/sgmapp/internal/domain"
)

// OverlayParams is the stored geometry used when overlays are built without
// user interaction.
type OverlayParams struct {
	Template        string
	Resolution      domain.Resolution
	BuildResolution domain.Resolution
	Offset          domain.Offset
}

type AutoBuildFailure struct {
	Basename string `json:"basename"`
	Error    string `json:"error"`
}

type AutoBuildReport struct {
	Built  []string           `json:"built"`
	Failed []AutoBuildFailure `json:"failed"`
}

// Overlay1Path is where a game's first overlay lives.
func Overlay1Path(folder, basename string) string {
	return filepath.Join(folder, basename+assets.Suffix(assets.KindOverlay1)+".png")
}

// AutoBuildOverlays builds <basename>_overlay1.png from the big overlay for
// every bundle that has one and lacks overlay1. A failing bundle is recorded
// and the rest still run.
func AutoBuildOverlays(res assets.ScanResult, p OverlayParams) AutoBuildReport {
	rep := AutoBuildReport{Built: []string{}, Failed: []AutoBuildFailure{}}
	for _, g := range res.Games {
		big, ok := g.Path(assets.KindBigOverlay)
		if !ok || g.Has(assets.KindOverlay1) {
			continue
		}
		dst, err := autoBuildOne(g, big, p)
		if err != nil {
			rep.Failed = append(rep.Failed, AutoBuildFailure{Basename: g.Basename, Error: err.Error()})
			continue
		}
		rep.Built = append(rep.Built, dst)
	}
	return rep
}

func autoBuildOne(g *assets.GameAssets, big string, p OverlayParams) (string, error) {
	fg, err := LoadImage(big)
	if err != nil {
		return "", err
	}
	dst := Overlay1Path(g.Folder, g.Basename)
	err = BuildOverlay(OverlayBuildSpec{
		Template:        p.Template,
		Foreground:      fg,
		Destination:     dst,
		Resolution:      p.Resolution,
		BuildResolution: p.BuildResolution,
		Offset:          p.Offset,
	})
	if err != nil {
		return "", err
	}
	return dst, nil
}
