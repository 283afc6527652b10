package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestDirectory is the root under which per-language suites live
	DefaultTestDirectory = "tests"
	// DefaultOutputDirectory is the root under which compiled artifacts land
	DefaultOutputDirectory = "bin"

	// DefaultCXX is the C++ compiler binary
	DefaultCXX = "g++"
	// DefaultGoBin is the go toolchain binary
	DefaultGoBin = "go"
	// DefaultPytest is the pytest CLI binary
	DefaultPytest = "pytest-3"
	// DefaultGTestInclude is the googletest header search path
	DefaultGTestInclude = "cget/include"
	// DefaultGTestLib is the googletest library search path
	DefaultGTestLib = "cget/lib"
)
