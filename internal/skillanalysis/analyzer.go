// Package skillanalysis classifies the skill-determination transcript into
// one of the configured trades.
package skillanalysis

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/tradeassess/internal/contract"
	"github.com/abhisek/tradeassess/internal/llm"
)

// Config holds configuration for the Analyzer.
type Config struct {
	// Trades is the closed set of labels the model may choose from.
	Trades []string

	MaxTokens   int
	Temperature float64
}

// Result is the outcome of an analysis. When Determined is false the other
// fields are zero and callers use their default trade.
type Result struct {
	Trade      string
	Confidence float64
	Determined bool
}

// Analyzer performs the single-shot skill classification.
type Analyzer struct {
	provider llm.Provider
	cfg      Config
	logger   *zap.Logger
}

// New creates an Analyzer. A nil logger discards output.
func New(provider llm.Provider, cfg Config, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{provider: provider, cfg: cfg, logger: logger.Named("skillanalysis")}
}

// Schema is the shape of the analysis reply.
var Schema = &contract.Schema{
	Name: "skill-analysis",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"determined_skill": map[string]any{"type": "string"},
			"confidence":       map[string]any{"type": "number"},
		},
		"required": []any{"determined_skill"},
	},
}

type analysisOutput struct {
	DeterminedSkill string  `json:"determined_skill"`
	Confidence      float64 `json:"confidence"`
}

// Analyze classifies transcript. It never fails: a call error, a reply that
// does not parse, or a trade outside the configured set all produce an
// undetermined Result and a warning.
func (a *Analyzer) Analyze(ctx context.Context, transcript string) Result {
	ctx = llm.WithPurpose(ctx, llm.PurposeSkillAnalysis)

	req := llm.UserPrompt(buildPrompt(a.cfg.Trades, transcript), a.cfg.MaxTokens)
	req.Temperature = a.cfg.Temperature

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		a.logger.Warn("skill analysis call failed; using default trade", zap.Error(err))
		return Result{}
	}

	var out analysisOutput
	if err := contract.Decode(resp.Text, Schema, &out); err != nil {
		a.logger.Warn("skill analysis reply unparsable; using default trade", zap.Error(err))
		return Result{}
	}

	// The model may only pick from the configured trades.
	trade, ok := a.canonical(out.DeterminedSkill)
	if !ok {
		a.logger.Warn("skill analysis chose an unknown trade; using default trade",
			zap.String("determined_skill", out.DeterminedSkill))
		return Result{}
	}

	confidence := clamp(out.Confidence)
	a.logger.Info("skill determined", zap.String("trade", trade), zap.Float64("confidence", confidence))
	return Result{Trade: trade, Confidence: confidence, Determined: true}
}

func (a *Analyzer) canonical(label string) (string, bool) {
	label = strings.TrimSpace(label)
	for _, t := range a.cfg.Trades {
		if strings.EqualFold(t, label) {
			return t, true
		}
	}
	return "", false
}

func clamp(c float64) float64 {
	switch {
	case c < 0:
		return 0
	case c > 1:
		return 1
	}
	return c
}

func buildPrompt(trades []string, transcript string) string {
	return "Analyze the first 5 questions and answers to identify the most suitable trade from " +
		strings.Join(trades, ", ") + ".\n" +
		`Reply ONLY JSON: {"determined_skill": "<trade>", "confidence": 0.0-1.0}` + "\n" +
		"No extra text.\n\n" + transcript
}
