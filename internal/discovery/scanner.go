package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ListBySuffix returns the immediate children of dir whose names end with
// suffix. It never recurses into subdirectories. Results are basenames in
// directory order.
func ListBySuffix(dir, suffix string) ([]string, error) {
	entries, err := readDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), suffix) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// ListByPrefix returns the immediate children of dir whose names start with
// prefix. It never recurses into subdirectories. Results are basenames in
// directory order.
func ListByPrefix(dir, prefix string) ([]string, error) {
	entries, err := readDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), prefix) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// WalkBySuffix finds every file under root whose name ends with suffix,
// recursing into every subdirectory, hidden ones included.
func WalkBySuffix(root, suffix string) ([]string, error) {
	root = filepath.Clean(root)
	if err := validateDir(root); err != nil {
		return nil, err
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if strings.HasSuffix(d.Name(), suffix) {
			paths = append(paths, path)
		}
		return nil
	})

	return paths, err
}

func readDir(dir string) ([]os.DirEntry, error) {
	dir = filepath.Clean(dir)
	if err := validateDir(dir); err != nil {
		return nil, err
	}
	return os.ReadDir(dir)
}

func validateDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("test path does not exist: %s", dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("test path is not a directory: %s", dir)
	}
	return nil
}
