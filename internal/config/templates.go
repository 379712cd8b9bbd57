package config

import (
	"encoding/json"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/text/cases"

	"github.com/youruser/sgmapp/internal/util"
)

// TemplateChoice is one entry of the template picker.
type TemplateChoice struct {
	Label   string `json:"label"`
	Path    string `json:"path"`
	Exists  bool   `json:"exists"`
	Default bool   `json:"default"`
}

// TemplateList decodes from a JSON array or from a single "a|b|c" string.
type TemplateList []string

func (l *TemplateList) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err == nil {
		*l = ParseTemplateList(raw)
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	*l = list
	return nil
}

// ParseTemplateList splits a "|" separated list (or "," when no "|" is
// present), dropping blanks and exact duplicates.
func ParseTemplateList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	sep := ","
	if strings.Contains(raw, "|") {
		sep = "|"
	}
	out := []string{}
	seen := map[string]bool{}
	for _, p := range strings.Split(raw, sep) {
		s := strings.TrimSpace(p)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// Templates returns the configured templates, first is the default.
func (c Config) Templates() []string {
	return dedupePaths(c.OverlayTemplates)
}

// DefaultTemplate is the first configured template, or "".
func (c Config) DefaultTemplate() string {
	ts := c.Templates()
	if len(ts) == 0 {
		return ""
	}
	return ts[0]
}

// SetDefaultTemplate moves path to the front, adding it when absent.
func (c *Config) SetDefaultTemplate(path string) {
	key := PathKey(path)
	out := []string{path}
	for _, p := range c.OverlayTemplates {
		if PathKey(p) == key {
			continue
		}
		out = append(out, p)
	}
	c.OverlayTemplates = TemplateList(out)
}

func (c *Config) RemoveTemplate(path string) {
	key := PathKey(path)
	out := []string{}
	for _, p := range c.OverlayTemplates {
		if PathKey(p) != key {
			out = append(out, p)
		}
	}
	c.OverlayTemplates = TemplateList(out)
}

func (c Config) TemplateChoices() []TemplateChoice {
	out := []TemplateChoice{}
	for i, p := range c.Templates() {
		label := filepath.Base(p)
		if label == "." || label == string(filepath.Separator) {
			label = p
		}
		out = append(out, TemplateChoice{
			Label:   label,
			Path:    p,
			Exists:  util.IsRegularFile(util.ExpandHome(p)),
			Default: i == 0,
		})
	}
	return out
}

// PathKey normalizes a path for duplicate detection: "~" expanded, cleaned,
// and case-folded on case-insensitive platforms.
func PathKey(p string) string {
	k := filepath.Clean(util.ExpandHome(strings.TrimSpace(p)))
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		k = cases.Fold().String(k)
	}
	return k
}

// ResolveTemplate expands "~" so the path can be opened.
func ResolveTemplate(p string) string {
	return util.ExpandHome(p)
}

func dedupePaths(paths []string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		k := PathKey(p)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return out
}
