package language

import (
	"path/filepath"

	"mtr/internal/config"
	"mtr/internal/discovery"
	"mtr/internal/domain"
)

// pySpec hands each test file to the pytest CLI, which discovers and runs
// the test cases itself.
type pySpec struct{}

func (pySpec) ID() ID { return Python }

// Discover lists the immediate children of the py suite directory whose
// names start with "test". Subdirectories are not searched.
func (pySpec) Discover(cfg *config.Config) ([]domain.TestFile, error) {
	dir := cfg.SuiteDir(Python.String())
	names, err := discovery.ListByPrefix(dir, "test")
	if err != nil {
		return nil, err
	}

	files := make([]domain.TestFile, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		files = append(files, domain.TestFile{Path: path, Source: path})
	}
	return files, nil
}

func (pySpec) CompileCommand(cfg *config.Config, test domain.TestFile, outBinary string) []string {
	return []string{cfg.Toolchain.Pytest, "-v", test.Source}
}

// RunCommand returns nil: pytest already executed the test.
func (pySpec) RunCommand(cfg *config.Config, outBinary string) []string {
	return nil
}
