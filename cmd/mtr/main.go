package main

import (
	"fmt"
	"os"

	"mtr/internal/cli"
	"mtr/internal/cli/commands"
	"mtr/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "mtr",
		Short:   "Multi-language test runner",
		Long:    `A test runner for mixed-language repositories. Discovers test files for C++, Go and Python suites, builds and executes each one through the language's toolchain, and fails fast on the first non-zero exit.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
