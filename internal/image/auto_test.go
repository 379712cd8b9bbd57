package imagepkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/youruser/sgmapp/internal/assets"
	"github.com/youruser/sgmapp/internal/domain"
)

func TestAutoBuildOverlays(t *testing.T) {
	dir := t.TempDir()
	tmplDir := t.TempDir()
	tmpl := transparentTemplate(t, tmplDir)

	writePNG(t, filepath.Join(dir, "Astro_big_overlay.png"), imaging.New(300, 400, red))
	writePNG(t, filepath.Join(dir, "Beam_big_overlay.png"), imaging.New(300, 400, red))
	writePNG(t, filepath.Join(dir, "Beam_overlay1.png"), imaging.New(175, 279, blue))
	if err := os.WriteFile(filepath.Join(dir, "Crash_big_overlay.png"), []byte("garbage"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Dune.int"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	rep := AutoBuildOverlays(assets.Scan(dir), OverlayParams{
		Template:        tmpl,
		Resolution:      canvasRes,
		BuildResolution: domain.Resolution{Width: 100, Height: 100},
		Offset:          domain.Offset{X: 10, Y: 10},
	})

	want := filepath.Join(dir, "Astro_overlay1.png")
	if len(rep.Built) != 1 || rep.Built[0] != want {
		t.Fatalf("built=%v, want [%s]", rep.Built, want)
	}
	if len(rep.Failed) != 1 || rep.Failed[0].Basename != "Crash" {
		t.Fatalf("failed=%+v", rep.Failed)
	}

	out, err := LoadImage(want)
	if err != nil {
		t.Fatalf("decode built overlay: %v", err)
	}
	if c := at(out, 15, 15); c != red {
		t.Fatalf("pixel=%v, want red", c)
	}

	g, ok := assets.Scan(dir).Lookup("astro")
	if !ok || !g.Has(assets.KindOverlay1) {
		t.Fatalf("rescan should see overlay1")
	}
	// existing overlay1 untouched
	beam, err := LoadImage(filepath.Join(dir, "Beam_overlay1.png"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c := at(beam, 15, 15); c != blue {
		t.Fatalf("Beam overlay1 was overwritten")
	}
}
