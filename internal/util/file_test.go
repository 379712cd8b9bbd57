package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic_CreatesAndReplaces(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "nested", "out.png")

	if err := WriteFileAtomic(dst, []byte("one")); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteFileAtomic(dst, []byte("two")); err != nil {
		t.Fatalf("second write: %v", err)
	}
	b, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "two" {
		t.Fatalf("content=%q, want %q", b, "two")
	}

	entries, err := os.ReadDir(filepath.Dir(dst))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %d entries", len(entries))
	}
}

func TestWriteFileAtomic_DestinationIsDir(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "taken")
	if err := os.Mkdir(dst, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := WriteFileAtomic(dst, []byte("x")); err == nil {
		t.Fatalf("expected error when destination is a directory")
	}
}

func TestIsRegularFileAndIsDir(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !IsRegularFile(f) || IsRegularFile(dir) {
		t.Fatalf("IsRegularFile mismatch")
	}
	if !IsDir(dir) || IsDir(f) || IsDir(filepath.Join(dir, "missing")) {
		t.Fatalf("IsDir mismatch")
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	cases := map[string]string{
		"~":             home,
		"~/games":       filepath.Join(home, "games"),
		"/abs/~/x":      "/abs/~/x",
		"~other/games":  "~other/games",
		"relative/path": "relative/path",
		"":              "",
	}
	for in, want := range cases {
		if got := ExpandHome(in); got != want {
			t.Fatalf("ExpandHome(%q) = %q, want %q", in, got, want)
		}
	}
}
