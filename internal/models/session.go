package models

import (
	"path/filepath"
	"sync"
)

// Session holds the directory chosen by the user. It is passed explicitly
// into every action; an empty Dir means nothing has been selected yet.
type Session struct {
	mu  sync.RWMutex
	dir string
}

// NewSession creates a session, optionally preselecting a directory
func NewSession(dir string) *Session {
	s := &Session{}
	if dir != "" {
		s.SetDir(dir)
	}
	return s
}

// SetDir replaces the selected directory
func (s *Session) SetDir(dir string) {
	if dir != "" {
		dir = filepath.Clean(dir)
	}
	s.mu.Lock()
	s.dir = dir
	s.mu.Unlock()
}

// Dir returns the selected directory, or "" if none
func (s *Session) Dir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir
}

// HasDir reports whether a directory has been selected
func (s *Session) HasDir() bool {
	return s.Dir() != ""
}
