package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tradeassess/internal/config"
	"github.com/abhisek/tradeassess/internal/paginate"
	"github.com/abhisek/tradeassess/internal/pdfdoc"
)

var renderCmd = &cobra.Command{
	Use:   "render <text-file>",
	Short: "Paginate a text file into a PDF report",
	Long: `Lay out an arbitrary text file with the report's page geometry and
write it as a PDF. No LLM is contacted.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "Output PDF path (default: <text-file> with .pdf)")
	renderCmd.Flags().String("title", "", "Title for page 1 (default: the configured report title)")
}

func runRender(cmd *cobra.Command, args []string) error {
	body, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	// The LLM section is irrelevant here; only document settings are used.
	cfg := config.Default()
	if path := stringFlag(cmd, "config"); path != "" {
		loaded, err := config.LoadWithOverrides(path, func(c *config.Config) { c.LLM.Provider = "mock" })
		if err != nil {
			return err
		}
		cfg = loaded
	}

	title, _ := cmd.Flags().GetString("title")
	if title == "" {
		title = cfg.Document.Title
	}
	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".pdf"
	}

	r := pdfdoc.NewRenderer(cfg.Document.Layout)
	pages := paginate.Paginate(title, string(body), cfg.Document.Layout, r.Measurer())
	if err := r.Write(out, pages); err != nil {
		return err
	}
	fmt.Printf("Wrote %d page(s) to %s\n", len(pages), out)
	return nil
}
