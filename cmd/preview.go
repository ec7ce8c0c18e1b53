package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/tradeassess/internal/questiongen"
	"github.com/abhisek/tradeassess/internal/session"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated questions for one phase (no session)",
	Long: `Generate questions for a single phase without running an interview.

This is a stateless developer tool: no transcript, no skill analysis, no
report. Useful for evaluating question quality for a trade.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("phase", "numeracy", "Phase: skill_determination, numeracy or literacy")
	previewCmd.Flags().String("trade", "", "Trade context (defaults to the configured default trade)")
	previewCmd.Flags().String("language", "", "Question language (defaults to the configured language, then English)")
	previewCmd.Flags().Int("count", 3, "Number of questions to generate")
}

func runPreview(cmd *cobra.Command, args []string) error {
	phaseVal, _ := cmd.Flags().GetString("phase")
	trade, _ := cmd.Flags().GetString("trade")
	count, _ := cmd.Flags().GetInt("count")

	phase, err := questiongen.ParsePhase(phaseVal)
	if err != nil {
		return err
	}
	if phase == questiongen.Complete {
		return fmt.Errorf("invalid phase %q: complete has no questions", phaseVal)
	}

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

	language := cfg.Assessment.Language
	if language == "" {
		language = "English"
	}

	first := map[questiongen.Phase]int{
		questiongen.SkillDetermination: 2,
		questiongen.Numeracy:           6,
		questiongen.Literacy:           11,
	}[phase]

	fmt.Printf("Phase: %s  Trade: %s  Language: %s\n", phase, orDefault(trade, cfg.Assessment.DefaultTrade), language)
	fmt.Printf("Generating %d questions...\n\n", count)

	var failed int
	for i := 0; i < count; i++ {
		number := first + i
		if last := phase.LastQuestion(); number > last {
			number = last
		}

		q, err := c.gen.Generate(ctx, questiongen.Input{
			Phase:    phase,
			Number:   number,
			Language: language,
			Trade:    trade,
		})
		if err != nil {
			failed++
			fmt.Printf("Question %d: generation failed: %v\n\n", number, err)
			continue
		}

		fmt.Printf("── Question %d/%d ──\n", number, phase.LastQuestion())
		d := &session.Displayed{Number: number, Text: q.Text, Question: q}
		for _, line := range d.Lines() {
			fmt.Println(line)
		}
		fmt.Println()
	}

	fmt.Printf("%d/%d questions passed the contract\n\n", count-failed, count)
	printUsage(os.Stdout, c.usage)
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
