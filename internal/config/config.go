package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath     string
	TestDirectory   string
	OutputDirectory string

	// Filenames excluded from execution, matched against basenames only
	Blacklist []string

	// External tool settings
	Toolchain Toolchain

	// Command flags
	Flags Flags
}

// Toolchain holds the external binaries and search paths used to build and run tests
type Toolchain struct {
	CXX          string
	GoBin        string
	Pytest       string
	GTestInclude string
	GTestLib     string
}

// Flags holds command-line flags
type Flags struct {
	Language        string
	TestDirectory   string
	OutputDirectory string
	Blacklist       []string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:     DefaultProjectPath,
		TestDirectory:   DefaultTestDirectory,
		OutputDirectory: DefaultOutputDirectory,
		Toolchain: Toolchain{
			CXX:          DefaultCXX,
			GoBin:        DefaultGoBin,
			Pytest:       DefaultPytest,
			GTestInclude: DefaultGTestInclude,
			GTestLib:     DefaultGTestLib,
		},
	}
}

// ApplyFlags copies parsed command-line flags into the config
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.TestDirectory != "" {
		c.TestDirectory = flags.TestDirectory
	}
	if flags.OutputDirectory != "" {
		c.OutputDirectory = flags.OutputDirectory
	}
	c.Blacklist = flags.Blacklist
}

// LoadEnv loads toolchain overrides from a .env file in the project directory
// and from the process environment. The .env file is optional.
func (c *Config) LoadEnv() {
	envPath := filepath.Join(c.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	c.Toolchain.CXX = envOr("MTR_CXX", c.Toolchain.CXX)
	c.Toolchain.GoBin = envOr("MTR_GO", c.Toolchain.GoBin)
	c.Toolchain.Pytest = envOr("MTR_PYTEST", c.Toolchain.Pytest)
	c.Toolchain.GTestInclude = envOr("MTR_GTEST_INCLUDE", c.Toolchain.GTestInclude)
	c.Toolchain.GTestLib = envOr("MTR_GTEST_LIB", c.Toolchain.GTestLib)
}

// SuiteDir returns the directory holding one language's test files
func (c *Config) SuiteDir(lang string) string {
	return filepath.Join(c.TestDirectory, lang)
}

// ArtifactDir returns the directory receiving one language's compiled binaries
func (c *Config) ArtifactDir(lang string) string {
	return filepath.Join(c.OutputDirectory, lang)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
