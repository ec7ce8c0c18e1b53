package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/tradeassess/internal/config"
	"github.com/abhisek/tradeassess/internal/llm"
	"github.com/abhisek/tradeassess/internal/logging"
	"github.com/abhisek/tradeassess/internal/pdfdoc"
	"github.com/abhisek/tradeassess/internal/questiongen"
	"github.com/abhisek/tradeassess/internal/report"
	"github.com/abhisek/tradeassess/internal/session"
	"github.com/abhisek/tradeassess/internal/skillanalysis"
)

// loadConfig loads the config file and environment, then applies any flags
// the command defines and the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	return config.LoadWithOverrides(path, func(c *config.Config) {
		if v := stringFlag(cmd, "provider"); v != "" {
			c.LLM.Provider = v
		}
		if v := stringFlag(cmd, "log-level"); v != "" {
			c.Log.Level = v
		}
		if v := stringFlag(cmd, "language"); v != "" {
			c.Assessment.Language = v
		}
		if v := stringFlag(cmd, "out"); v != "" {
			c.Document.OutputDir = v
		}
	})
}

// stringFlag returns the flag's value, or "" when cmd has no such flag.
func stringFlag(cmd *cobra.Command, name string) string {
	if cmd.Flags().Lookup(name) == nil {
		return ""
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}

// components is everything a command needs, built from one config.
type components struct {
	cfg      *config.Config
	logger   *zap.Logger
	usage    *llm.UsageTracker
	gen      *questiongen.LLMGenerator
	machine  *session.Machine
	renderer *pdfdoc.Renderer
}

func build(ctx context.Context, cfg *config.Config) (*components, error) {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	provider, usage, err := llm.NewProvider(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("LLM provider: %w", err)
	}

	a := cfg.Assessment
	gen := questiongen.New(provider, questiongen.Config{
		MaxTokens:    a.QuestionMaxTokens,
		Attempts:     a.Attempts,
		Temperature:  a.Temperature,
		Trades:       a.Trades,
		DefaultTrade: a.DefaultTrade,
		Repair:       questiongen.DefaultRepair,
	}, logger)

	renderer := pdfdoc.NewRenderer(cfg.Document.Layout)
	machine := session.NewMachine(session.Deps{
		Generator:  gen,
		Translator: questiongen.NewTranslator(provider, a.QuestionMaxTokens),
		Analyzer: skillanalysis.New(provider, skillanalysis.Config{
			Trades:      a.Trades,
			MaxTokens:   a.AnalysisMaxTokens,
			Temperature: a.Temperature,
		}, logger),
		Compiler: report.NewCompiler(provider, report.Config{
			MaxTokens:   a.ReportMaxTokens,
			Temperature: a.Temperature,
		}, logger),
	}, session.Config{
		DefaultTrade: a.DefaultTrade,
		ReportTitle:  cfg.Document.Title,
		Layout:       cfg.Document.Layout,
		Measurer:     renderer.Measurer(),
	}, logger)

	return &components{
		cfg:      cfg,
		logger:   logger,
		usage:    usage,
		gen:      gen,
		machine:  machine,
		renderer: renderer,
	}, nil
}

// colorOutput reports whether stdout styling is wanted.
func colorOutput() bool {
	return os.Getenv("NO_COLOR") == ""
}
