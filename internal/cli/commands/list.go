package commands

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dtr/internal/cli"
	"dtr/internal/config"
	"dtr/internal/discovery"
)

// ListCommand handles the list command
type ListCommand struct {
	flags *cli.Flags
}

// NewListCommand creates a new ListCommand
func NewListCommand(flags *cli.Flags) *ListCommand {
	return &ListCommand{flags: flags}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(lc.flags.ToConfigFlags())
	if err != nil {
		return err
	}

	filter := discovery.NewFilter(cfg.Paths.AllowedFileExtensions)
	scanner := discovery.NewScanner(filter, cfg.General.ExcludeHiddenDirectories, config.HiddenPrefix)
	resolver := discovery.NewResolver(cfg.Paths.ExpectedDir, config.ExpectedPrefix)

	total := 0
	err = scanner.Walk(cfg.Paths.InputDir, func(dir string, files []string) error {
		for _, name := range files {
			total++
			path := filepath.Join(dir, name)
			if _, found := resolver.FindExpected(path); found {
				fmt.Printf("%s %s\n", color.HiBlueString("%s", path), color.GreenString("[fixture found]"))
			} else {
				fmt.Printf("%s %s\n", color.HiBlueString("%s", path), color.YellowString("[no fixture]"))
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if total == 0 {
		color.Yellow("No test cases found")
		return nil
	}
	fmt.Printf("\n%d case(s)\n", total)
	return nil
}
