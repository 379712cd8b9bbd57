package assets

import (
	"path/filepath"
	"strings"
)

// ExportText renders a scan as a plain-text listing, one bundle per block.
func ExportText(res ScanResult) string {
	lines := []string{"# " + res.Folder}
	for _, g := range res.Games {
		lines = append(lines, g.Basename)
		for _, k := range Kinds {
			if p, ok := g.Slots[k]; ok {
				lines = append(lines, "  "+k.String()+": "+filepath.Base(p))
			}
		}
		for _, p := range g.Other {
			lines = append(lines, "  other: "+filepath.Base(p))
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
