package language

import (
	"mtr/internal/config"
	"mtr/internal/discovery"
	"mtr/internal/domain"
)

// goSpec hands each _test.go file to the go toolchain's own test subcommand,
// which compiles and runs it in one step.
type goSpec struct{}

func (goSpec) ID() ID { return Go }

// Discover walks the process working directory, not the configured test
// root, collecting every file ending in _test.go. Callers rely on repo-wide
// pickup, so --test-directory intentionally has no effect here.
func (goSpec) Discover(cfg *config.Config) ([]domain.TestFile, error) {
	paths, err := discovery.WalkBySuffix(".", "_test.go")
	if err != nil {
		return nil, err
	}

	files := make([]domain.TestFile, 0, len(paths))
	for _, path := range paths {
		files = append(files, domain.TestFile{Path: path, Source: path})
	}
	return files, nil
}

func (goSpec) CompileCommand(cfg *config.Config, test domain.TestFile, outBinary string) []string {
	return []string{cfg.Toolchain.GoBin, "test", "-v", test.Source}
}

// RunCommand returns nil: go test already executed the test.
func (goSpec) RunCommand(cfg *config.Config, outBinary string) []string {
	return nil
}
