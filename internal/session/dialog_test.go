package session

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestDialogState(t *testing.T) {
	root := t.TempDir()
	games := filepath.Join(root, "games")
	if err := os.Mkdir(games, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	rom := filepath.Join(games, "Astro.int")
	if err := os.WriteFile(rom, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var s DialogState
	if got := s.StartDir(""); got != "" {
		t.Fatalf("empty fallback: %q", got)
	}
	if got := s.StartDir(rom); got != games {
		t.Fatalf("file fallback: got %q, want %q", got, games)
	}
	if got := s.StartDir("/no/such/dir"); got != "/no/such/dir" {
		t.Fatalf("missing fallback returned verbatim, got %q", got)
	}

	s.Remember(filepath.Join(root, "missing.png"))
	if s.LastDir() != "" {
		t.Fatalf("missing path remembered: %q", s.LastDir())
	}

	s.Remember(rom)
	if s.LastDir() != games {
		t.Fatalf("LastDir=%q, want %q", s.LastDir(), games)
	}
	if got := s.StartDir(root); got != games {
		t.Fatalf("StartDir should prefer remembered dir, got %q", got)
	}

	s.Remember(root)
	if s.LastDir() != root {
		t.Fatalf("directory pick not remembered: %q", s.LastDir())
	}
}

func TestDialogState_Concurrent(t *testing.T) {
	dir := t.TempDir()
	var s DialogState
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Remember(dir)
			_ = s.StartDir("")
		}()
	}
	wg.Wait()
	if s.LastDir() != dir {
		t.Fatalf("LastDir=%q", s.LastDir())
	}
}

func TestDialogState_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	games := filepath.Join(home, "games")
	if err := os.Mkdir(games, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(games, "Astro.int"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var s DialogState
	if got := s.StartDir("~/games"); got != games {
		t.Fatalf("StartDir(~/games) = %q, want %q", got, games)
	}
	s.Remember("~/games/Astro.int")
	if s.LastDir() != games {
		t.Fatalf("LastDir=%q, want %q", s.LastDir(), games)
	}
}
