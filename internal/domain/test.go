package domain

import "path/filepath"

// TestFile represents a discovered test file
type TestFile struct {
	Path   string // Path as discovered (bare filename for listed suites, relative path for walked ones)
	Source string // Path handed to the compile command
}

// Base returns the rightmost path segment, the unit the blacklist matches on.
func (t TestFile) Base() string {
	return filepath.Base(t.Path)
}

// Stem returns the basename without its extension, used to name compiled artifacts.
func (t TestFile) Stem() string {
	base := t.Base()
	return base[:len(base)-len(filepath.Ext(base))]
}

// CommandPair holds the compile argv and the optional run argv for one test.
// An empty Run means the compile step already executed the test.
type CommandPair struct {
	Compile []string
	Run     []string
}
