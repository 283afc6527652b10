package commands

import (
	"mtr/internal/config"
	"mtr/internal/discovery"
	"mtr/internal/execution"
	"mtr/internal/language"
	"mtr/internal/ui"

	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config  *config.Config
	runner  execution.Runner
	printer *ui.Printer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, runner execution.Runner, printer *ui.Printer) *RunCommand {
	return &RunCommand{
		config:  cfg,
		runner:  runner,
		printer: printer,
	}
}

// Execute runs the command. Each language gets a fresh orchestrator; the
// first compile or run failure aborts the whole invocation with a non-zero
// exit decided by main.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	rc.config.LoadEnv()

	languages, err := language.ParseSelection(rc.config.Flags.Language)
	if err != nil {
		return err
	}

	blacklist := discovery.NewBlacklist(rc.config.Blacklist)

	for _, id := range languages {
		rc.printer.LanguageHeader(id.String())

		orchestrator := execution.NewOrchestrator(rc.config, language.ForID(id), rc.runner, blacklist, rc.printer)
		orchestrator.EnableProgress()
		if err := orchestrator.Run(); err != nil {
			return err
		}
	}

	rc.printer.AllPassed()
	return nil
}
