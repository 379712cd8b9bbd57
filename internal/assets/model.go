package assets

import (
	"fmt"
	"strings"
)

// AssetKind names one single-valued slot of a game's bundle.
type AssetKind int

const (
	KindROM AssetKind = iota
	KindConfig
	KindMetadata
	KindBox
	KindBoxSmall
	KindOverlay
	KindOverlay1
	KindOverlay2
	KindOverlay3
	KindBigOverlay
	KindQRCode
	KindSnap1
	KindSnap2
	KindSnap3
)

// Kinds lists every slot in presentation order.
var Kinds = []AssetKind{
	KindROM, KindConfig, KindMetadata,
	KindBox, KindBoxSmall,
	KindOverlay, KindOverlay1, KindOverlay2, KindOverlay3, KindBigOverlay,
	KindQRCode,
	KindSnap1, KindSnap2, KindSnap3,
}

var kindNames = map[AssetKind]string{
	KindROM:        "rom",
	KindConfig:     "config",
	KindMetadata:   "metadata",
	KindBox:        "box",
	KindBoxSmall:   "box_small",
	KindOverlay:    "overlay",
	KindOverlay1:   "overlay1",
	KindOverlay2:   "overlay2",
	KindOverlay3:   "overlay3",
	KindBigOverlay: "overlay_big",
	KindQRCode:     "qrcode",
	KindSnap1:      "snap1",
	KindSnap2:      "snap2",
	KindSnap3:      "snap3",
}

func (k AssetKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("AssetKind(%d)", int(k))
}

// MarshalText lets AssetKind serve as a JSON object key.
func (k AssetKind) MarshalText() ([]byte, error) {
	s, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown asset kind %d", int(k))
	}
	return []byte(s), nil
}

func (k *AssetKind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// ParseKind maps a name such as "overlay1" back to its kind.
func ParseKind(s string) (AssetKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown asset kind %q", s)
}

// GameAssets is the bundle of classified files sharing one basename.
// Every path held in Slots has a stem that case-insensitively derives Basename.
type GameAssets struct {
	Basename string               `json:"basename"`
	Folder   string               `json:"folder"`
	Slots    map[AssetKind]string `json:"slots"`
	Other    []string             `json:"other"`
}

func newGameAssets(basename, folder string) *GameAssets {
	return &GameAssets{
		Basename: basename,
		Folder:   folder,
		Slots:    make(map[AssetKind]string, len(Kinds)),
		Other:    []string{},
	}
}

// Path returns the file held in the slot for kind.
func (g *GameAssets) Path(kind AssetKind) (string, bool) {
	p, ok := g.Slots[kind]
	return p, ok
}

func (g *GameAssets) Has(kind AssetKind) bool {
	_, ok := g.Slots[kind]
	return ok
}

// AllPaths returns every slot path in Kinds order followed by Other.
func (g *GameAssets) AllPaths() []string {
	out := make([]string, 0, len(g.Slots)+len(g.Other))
	for _, k := range Kinds {
		if p, ok := g.Slots[k]; ok {
			out = append(out, p)
		}
	}
	return append(out, g.Other...)
}

// ScanResult pairs a folder with its bundles sorted by case-insensitive
// basename. It is built once per scan and not mutated afterwards.
type ScanResult struct {
	Folder string        `json:"folder"`
	Games  []*GameAssets `json:"games"`

	index map[string]int
}

// Lookup finds a bundle by basename, ignoring case.
func (r ScanResult) Lookup(basename string) (*GameAssets, bool) {
	i, ok := r.index[foldKey(basename)]
	if !ok {
		return nil, false
	}
	return r.Games[i], true
}

func (r ScanResult) Len() int { return len(r.Games) }
