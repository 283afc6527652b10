package discovery

import "path/filepath"

// Blacklist is a set of basenames excluded from execution
type Blacklist map[string]struct{}

// NewBlacklist creates a Blacklist from a list of filenames
func NewBlacklist(names []string) Blacklist {
	b := make(Blacklist, len(names))
	for _, name := range names {
		b[name] = struct{}{}
	}
	return b
}

// Skip reports whether the rightmost segment of path is blacklisted.
// Matching is exact: an entry that is only a substring of the basename
// does not skip the file.
func (b Blacklist) Skip(path string) bool {
	_, ok := b[filepath.Base(path)]
	return ok
}
