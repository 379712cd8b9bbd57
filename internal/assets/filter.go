package assets

import "strings"

type FilterOptions struct {
	FreeWords    string       `json:"free_words"`
	Kinds        []AssetKind  `json:"kinds"`
	MissingKinds []AssetKind  `json:"missing_kinds"`
	WarningsOnly bool         `json:"warnings_only"`
	Check        CheckOptions `json:"check"`
}

func Filter(games []*GameAssets, opt FilterOptions) []*GameAssets {
	kw := strings.Fields(strings.ToLower(opt.FreeWords))
	out := []*GameAssets{}
	for _, g := range games {
		name := strings.ToLower(g.Basename)
		ok := true
		for _, k := range kw {
			if !strings.Contains(name, k) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		if !hasAll(g, opt.Kinds) {
			continue
		}
		if !missingAll(g, opt.MissingKinds) {
			continue
		}
		if opt.WarningsOnly && len(Check(g, opt.Check)) == 0 {
			continue
		}
		out = append(out, g)
	}
	return out
}

func hasAll(g *GameAssets, kinds []AssetKind) bool {
	for _, k := range kinds {
		if !g.Has(k) {
			return false
		}
	}
	return true
}

func missingAll(g *GameAssets, kinds []AssetKind) bool {
	for _, k := range kinds {
		if g.Has(k) {
			return false
		}
	}
	return true
}
