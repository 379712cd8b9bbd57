package assets

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

var romPriority = map[string]int{
	".int": 0,
	".bin": 1,
	".rom": 2,
}

// lowest priority for ROM extensions outside romPriority
const unknownROMPriority = 99

const (
	configExt   = ".cfg"
	metadataExt = ".json"
	imageExt    = ".png"
)

// imageSuffixes is checked in order; the first matching suffix wins, so
// longer tokens that end in a shorter one must come first.
var imageSuffixes = []struct {
	token string
	kind  AssetKind
}{
	{"_big_overlay", KindBigOverlay},
	{"_overlay1", KindOverlay1},
	{"_overlay2", KindOverlay2},
	{"_overlay3", KindOverlay3},
	{"_overlay", KindOverlay},
	{"_qrcode", KindQRCode},
	{"_small", KindBoxSmall},
	{"_snap1", KindSnap1},
	{"_snap2", KindSnap2},
	{"_snap3", KindSnap3},
}

// Suffix returns the filename token for an image kind ("" for box art and
// non-image kinds).
func Suffix(kind AssetKind) string {
	for _, s := range imageSuffixes {
		if s.kind == kind {
			return s.token
		}
	}
	return ""
}

// Scan classifies the regular files directly inside folder into per-game
// bundles. A missing or unreadable folder yields an empty result.
func Scan(folder string) ScanResult {
	fold := cases.Fold()
	res := ScanResult{Folder: folder, Games: []*GameAssets{}, index: map[string]int{}}

	// ReadDir returns what it managed to read alongside an error; keep it.
	entries, err := os.ReadDir(folder)
	if err != nil && len(entries) == 0 {
		return res
	}

	byKey := make(map[string]*GameAssets, len(entries))
	for _, e := range entries {
		name := e.Name()
		path := filepath.Join(folder, name)
		if !isRegular(path, e) {
			continue
		}
		base, kind, ok := Classify(name)
		if !ok {
			continue
		}

		key := fold.String(base) // same folding as foldKey
		g, ok := byKey[key]
		if !ok {
			g = newGameAssets(base, folder)
			byKey[key] = g
		}
		if kind == KindROM {
			g.Slots[KindROM] = chooseROM(g.Slots[KindROM], path)
			continue
		}
		g.Slots[kind] = path
	}

	sortKeys := make(map[*GameAssets]string, len(byKey))
	for k, g := range byKey {
		sortKeys[g] = k
		res.Games = append(res.Games, g)
	}
	sort.Slice(res.Games, func(i, j int) bool {
		return sortKeys[res.Games[i]] < sortKeys[res.Games[j]]
	})
	for i, g := range res.Games {
		res.index[sortKeys[g]] = i
	}
	return res
}

// isRegular follows symlinks; entries whose stat fails are skipped.
func isRegular(path string, e os.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Classify maps a filename to its bundle key and slot kind. ok is false for
// extensions the scanner does not recognize.
func Classify(name string) (base string, kind AssetKind, ok bool) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	// ".json" and friends are dotfiles, not a metadata file for an unnamed game
	if stem == "" {
		return "", 0, false
	}
	ext = strings.ToLower(ext)

	if _, isROM := romPriority[ext]; isROM {
		return stem, KindROM, true
	}
	switch ext {
	case configExt:
		return stem, KindConfig, true
	case metadataExt:
		return stem, KindMetadata, true
	case imageExt:
	default:
		return "", 0, false
	}

	for _, s := range imageSuffixes {
		if n := len(stem) - len(s.token); n >= 0 && strings.EqualFold(stem[n:], s.token) {
			return stem[:n], s.kind, true
		}
	}
	return stem, KindBox, true
}

// chooseROM keeps current unless candidate has a strictly better extension.
func chooseROM(current, candidate string) string {
	if current == "" {
		return candidate
	}
	if romRank(candidate) < romRank(current) {
		return candidate
	}
	return current
}

func romRank(path string) int {
	if p, ok := romPriority[strings.ToLower(filepath.Ext(path))]; ok {
		return p
	}
	return unknownROMPriority
}

// foldKey uses full Unicode case folding, so "Straße" and "STRASSE" share a
// bundle. Suffix tokens are ASCII and compare with strings.EqualFold.
func foldKey(s string) string {
	return cases.Fold().String(s)
}
