package assets

import (
	"fmt"
	"unicode/utf8"
)

// Warning codes reported by Check.
const (
	WarnMissingROM     = "missing_rom"
	WarnMissingBox     = "missing_box"
	WarnMissingOverlay = "missing_overlay"
	WarnNameTooLong    = "name_too_long"
	WarnMissingSnap    = "missing_snap"
)

const maxSnaps = 3

type CheckOptions struct {
	// MaxBaseLength is the longest recommended basename in runes; 0 disables the check.
	MaxBaseLength int `json:"max_base_length"`
	// ExpectedSnaps is how many of snap1..snap3 each game should have.
	ExpectedSnaps int `json:"expected_snaps"`
}

type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type GameWarnings struct {
	Basename string    `json:"basename"`
	Warnings []Warning `json:"warnings"`
}

var snapKinds = [maxSnaps]AssetKind{KindSnap1, KindSnap2, KindSnap3}

// Check lists what a bundle is missing under opts.
func Check(g *GameAssets, opts CheckOptions) []Warning {
	var out []Warning
	if !g.Has(KindROM) {
		out = append(out, Warning{Code: WarnMissingROM, Message: "no ROM file"})
	}
	if !g.Has(KindBox) {
		out = append(out, Warning{Code: WarnMissingBox, Message: "no box art"})
	}
	if !g.Has(KindOverlay) && !g.Has(KindOverlay1) {
		out = append(out, Warning{Code: WarnMissingOverlay, Message: "no overlay"})
	}
	if opts.MaxBaseLength > 0 {
		if n := utf8.RuneCountInString(g.Basename); n > opts.MaxBaseLength {
			out = append(out, Warning{
				Code:    WarnNameTooLong,
				Message: fmt.Sprintf("basename is %d characters, limit %d", n, opts.MaxBaseLength),
			})
		}
	}
	want := min(max(opts.ExpectedSnaps, 0), maxSnaps)
	for i := 0; i < want; i++ {
		if !g.Has(snapKinds[i]) {
			out = append(out, Warning{
				Code:    WarnMissingSnap,
				Message: fmt.Sprintf("missing %s", snapKinds[i]),
			})
		}
	}
	return out
}

// CheckAll returns the bundles with at least one warning, in scan order.
func CheckAll(res ScanResult, opts CheckOptions) []GameWarnings {
	out := []GameWarnings{}
	for _, g := range res.Games {
		if w := Check(g, opts); len(w) > 0 {
			out = append(out, GameWarnings{Basename: g.Basename, Warnings: w})
		}
	}
	return out
}
