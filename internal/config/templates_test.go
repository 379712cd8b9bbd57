package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestParseTemplateList(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  ", ""},
		{"a.png", "a.png"},
		{"a.png|b.png| a.png |", "a.png,b.png"},
		{"a.png, b.png,,c.png", "a.png,b.png,c.png"},
		// "|" wins over "," when both appear
		{"a,1.png|b.png", "a,1.png,b.png"},
	}
	for _, c := range cases {
		if got := strings.Join(ParseTemplateList(c.in), ","); got != c.want {
			t.Fatalf("ParseTemplateList(%q)=%q, want %q", c.in, got, c.want)
		}
	}
}

func TestSetDefaultAndRemoveTemplate(t *testing.T) {
	c := Default()
	c.OverlayTemplates = TemplateList{"/t/a.png", "/t/b.png", "/t/c.png"}

	c.SetDefaultTemplate("/t/./c.png")
	if got := strings.Join(c.Templates(), ","); got != "/t/./c.png,/t/a.png,/t/b.png" {
		t.Fatalf("after SetDefaultTemplate: %q", got)
	}

	c.SetDefaultTemplate("/t/new.png")
	if c.DefaultTemplate() != "/t/new.png" || len(c.Templates()) != 4 {
		t.Fatalf("new template not prepended: %v", c.Templates())
	}

	c.RemoveTemplate("/t/a.png")
	if got := strings.Join(c.Templates(), ","); got != "/t/new.png,/t/./c.png,/t/b.png" {
		t.Fatalf("after RemoveTemplate: %q", got)
	}
}

func TestTemplateChoices(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "blue.png")
	writeFile(t, present, []byte("x"))
	missing := filepath.Join(dir, "gone.png")

	c := Default()
	c.OverlayTemplates = TemplateList{present, missing}
	got := c.TemplateChoices()
	if len(got) != 2 {
		t.Fatalf("choices=%+v", got)
	}
	if got[0].Label != "blue.png" || !got[0].Exists || !got[0].Default {
		t.Fatalf("first choice=%+v", got[0])
	}
	if got[1].Exists || got[1].Default {
		t.Fatalf("second choice=%+v", got[1])
	}
}

func TestPathKey(t *testing.T) {
	if PathKey("/a/b/../c.png") != PathKey("/a/c.png") {
		t.Fatalf("PathKey should clean paths")
	}
}
