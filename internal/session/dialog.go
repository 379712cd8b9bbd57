package session

import (
	"path/filepath"
	"sync"

	"github.com/youruser/sgmapp/internal/util"
)

// DialogState remembers the directory of the last successful file or folder
// pick so the next picker can open there. One value lives per UI session.
type DialogState struct {
	mu      sync.Mutex
	lastDir string
}

// StartDir returns the directory the next picker should open in: the last
// remembered directory, else fallback (a file's parent directory when
// fallback is a file), else fallback as given. Both fallback and remembered
// paths may start with "~".
func (s *DialogState) StartDir(fallback string) string {
	s.mu.Lock()
	last := s.lastDir
	s.mu.Unlock()
	if last != "" {
		return last
	}
	if fallback == "" {
		return ""
	}
	if dir, ok := existingDir(fallback); ok {
		return dir
	}
	return fallback
}

// Remember records the directory of chosen. Paths that do not exist are
// ignored.
func (s *DialogState) Remember(chosen string) {
	if chosen == "" {
		return
	}
	dir, ok := existingDir(chosen)
	if !ok {
		return
	}
	s.mu.Lock()
	s.lastDir = dir
	s.mu.Unlock()
}

// LastDir is "" until something has been remembered.
func (s *DialogState) LastDir() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastDir
}

func existingDir(p string) (string, bool) {
	p = filepath.Clean(util.ExpandHome(p))
	if util.IsRegularFile(p) {
		p = filepath.Dir(p)
	}
	if util.IsDir(p) {
		return p, true
	}
	return "", false
}
