package commands

import (
	"mtr/internal/cli"
	"mtr/internal/config"
	"mtr/internal/execution"
	"mtr/internal/language"
	"mtr/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	printer := ui.NewPrinter()
	runner := execution.NewExecRunner()

	return &Commands{
		Run:  NewRunCommand(cfg, runner, printer),
		List: NewListCommand(cfg, printer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Discover and run test suites",
		Long:  "Discover test files for the selected language(s) and execute each one, stopping at the first failure",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Reject unknown languages before any discovery or execution
			if _, err := language.ParseSelection(flags.Language); err != nil {
				return err
			}
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	registerSuiteFlags(runCmd, flags)
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered tests",
		Long:  "Discover and list test files for the selected language(s) without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := language.ParseSelection(flags.Language); err != nil {
				return err
			}
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	registerSuiteFlags(listCmd, flags)
	rootCmd.AddCommand(listCmd)
}

// registerSuiteFlags binds the flags shared by run and list
func registerSuiteFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().StringVarP(&flags.Language, "language", "l", "", "Language suite to process: cpp, go, py or all")
	cmd.Flags().StringVarP(&flags.TestDirectory, "test-directory", "t", config.DefaultTestDirectory, "Root directory containing per-language test suites")
	cmd.Flags().StringVarP(&flags.OutputDirectory, "output-directory", "o", config.DefaultOutputDirectory, "Root directory receiving compiled test binaries")
	cmd.Flags().StringSliceVarP(&flags.Blacklist, "blacklist", "b", nil, "Test filenames (basenames) to skip")
	cobra.CheckErr(cmd.MarkFlagRequired("language"))
}
