package commands

import (
	"github.com/spf13/cobra"

	"dtr/internal/cli"
	"dtr/internal/config"
	"dtr/internal/storage"
	"dtr/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	flags *cli.Flags
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(flags *cli.Flags) *FailuresCommand {
	return &FailuresCommand{flags: flags}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(fc.flags.ToConfigFlags())
	if err != nil {
		return err
	}

	st := storage.NewJSONStorage(cfg)
	results, err := st.Load()
	if err != nil {
		return err
	}

	return ui.NewFailureViewer(st).View(results)
}
