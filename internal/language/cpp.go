package language

import (
	"path/filepath"

	"mtr/internal/config"
	"mtr/internal/discovery"
	"mtr/internal/domain"
)

// cppSpec compiles each test source with the configured C++ compiler and
// googletest, then runs the produced binary.
type cppSpec struct{}

func (cppSpec) ID() ID { return Cpp }

// Discover lists the immediate children of the cpp suite directory ending in
// .cpp. Subdirectories are not searched.
func (cppSpec) Discover(cfg *config.Config) ([]domain.TestFile, error) {
	dir := cfg.SuiteDir(Cpp.String())
	names, err := discovery.ListBySuffix(dir, ".cpp")
	if err != nil {
		return nil, err
	}

	files := make([]domain.TestFile, 0, len(names))
	for _, name := range names {
		files = append(files, domain.TestFile{
			Path:   name,
			Source: filepath.Join(dir, name),
		})
	}
	return files, nil
}

func (cppSpec) CompileCommand(cfg *config.Config, test domain.TestFile, outBinary string) []string {
	return []string{
		cfg.Toolchain.CXX,
		"-fdiagnostics-color=always",
		"-g",
		"-std=c++17",
		test.Source,
		"-o", outBinary,
		"-lgtest", "-lgtest_main", "-pthread",
		"-I", cfg.Toolchain.GTestInclude,
		"-L", cfg.Toolchain.GTestLib,
	}
}

// RunCommand executes the compiled test binary directly.
func (cppSpec) RunCommand(cfg *config.Config, outBinary string) []string {
	return []string{outBinary}
}
