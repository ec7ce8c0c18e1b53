package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tradeassess",
	Short: "Adaptive trade-skills career assessment",
	Long: `tradeassess runs a 15-question interview in three phases (skill
determination, numeracy, literacy), generating each question with an LLM,
then writes the final career report to a PDF.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInterview,
}

// Execute runs the root command. Interrupts cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file")
	pf.String("provider", "", "LLM provider: groq, openai, openrouter, anthropic, gemini, mock")
	pf.String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.Flags().String("language", "", "Interview language (asked when empty)")
	rootCmd.Flags().String("name", "", "Candidate name (asked when empty)")
	rootCmd.Flags().String("out", "", "Directory for the PDF report")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)
}
