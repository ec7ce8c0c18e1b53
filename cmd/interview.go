package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/tradeassess/internal/console"
	"github.com/abhisek/tradeassess/internal/pdfdoc"
)

// runInterview runs one full assessment on the terminal.
func runInterview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	c, err := build(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = c.logger.Sync() }()

	ui := console.New(os.Stdin, os.Stdout, colorOutput())
	ui.Title("Welcome to the Career Counseling Assessment")

	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		if name, err = ui.Ask("Enter your name: "); err != nil {
			return err
		}
	}
	language := cfg.Assessment.Language
	if language == "" {
		if language, err = ui.Ask("Preferred language (e.g., Hindi, English): "); err != nil {
			return err
		}
	}

	s, err := c.machine.Start(ctx, language)
	if err != nil {
		return err
	}
	out, err := ui.Run(ctx, c.machine, s)
	if err != nil {
		return err
	}

	ui.ShowReport(out.Report.Text)

	path := filepath.Join(cfg.Document.OutputDir, pdfdoc.SafeFilename(name))
	if err := c.renderer.Write(path, out.Pages); err != nil {
		return err
	}
	ui.Notice("Final Report saved as: %s", path)

	fmt.Fprintln(os.Stderr)
	printUsage(os.Stderr, c.usage)
	return nil
}
