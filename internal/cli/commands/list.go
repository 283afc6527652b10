package commands

import (
	"mtr/internal/config"
	"mtr/internal/discovery"
	"mtr/internal/language"
	"mtr/internal/ui"

	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config  *config.Config
	printer *ui.Printer
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, printer *ui.Printer) *ListCommand {
	return &ListCommand{
		config:  cfg,
		printer: printer,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	languages, err := language.ParseSelection(lc.config.Flags.Language)
	if err != nil {
		return err
	}

	blacklist := discovery.NewBlacklist(lc.config.Blacklist)

	for _, id := range languages {
		tests, err := language.ForID(id).Discover(lc.config)
		if err != nil {
			return err
		}
		lc.printer.TestList(id.String(), tests, blacklist.Skip)
	}

	return nil
}
