// Package report compiles the final assessment report.
//
// The model is asked for a JSON summary, but the reply is never rejected:
// Report.Text is what gets rendered, and Structured is filled in only when
// the reply happens to parse.
package report

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/tradeassess/internal/contract"
	"github.com/abhisek/tradeassess/internal/llm"
)

// Config holds configuration for the Compiler.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig leaves room for the longer report reply.
func DefaultConfig() Config {
	return Config{MaxTokens: 700}
}

// Scores are the per-phase and overall scores the model assigns.
type Scores struct {
	Skill    float64 `json:"skill"`
	Numeracy float64 `json:"numeracy"`
	Literacy float64 `json:"literacy"`
	Overall  float64 `json:"overall"`
}

// Summary is the structured form of a report.
type Summary struct {
	Scores           Scores   `json:"scores"`
	Strengths        []string `json:"strengths"`
	RecommendedTrade string   `json:"recommended_trade"`
	IsFinalReport    bool     `json:"is_final_report"`
	Rationale        string   `json:"rationale"`
}

// Report is a compiled report.
type Report struct {
	// Text is the model's reply, unmodified.
	Text string

	// Structured is nil when Text does not carry a valid summary.
	Structured *Summary
}

// Schema is the requested summary shape.
var Schema = &contract.Schema{
	Name: "assessment-report",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"scores": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"skill":    map[string]any{"type": "number"},
					"numeracy": map[string]any{"type": "number"},
					"literacy": map[string]any{"type": "number"},
					"overall":  map[string]any{"type": "number"},
				},
				"required": []any{"skill", "numeracy", "literacy", "overall"},
			},
			"strengths": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"recommended_trade": map[string]any{"type": "string"},
			"is_final_report":   map[string]any{"type": "boolean"},
			"rationale":         map[string]any{"type": "string"},
		},
		"required": []any{"scores", "strengths", "recommended_trade", "rationale"},
	},
}

// Compiler produces the final report from the full transcript.
type Compiler struct {
	provider llm.Provider
	cfg      Config
	logger   *zap.Logger
}

// NewCompiler creates a Compiler. A nil logger discards output.
func NewCompiler(provider llm.Provider, cfg Config, logger *zap.Logger) *Compiler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Compiler{provider: provider, cfg: cfg, logger: logger.Named("report")}
}

// Compile makes one call. Only the call itself can fail.
func (c *Compiler) Compile(ctx context.Context, transcript string) (*Report, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeReport)

	req := llm.UserPrompt(buildPrompt(transcript), c.cfg.MaxTokens)
	req.Temperature = c.cfg.Temperature

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("compile report: %w", err)
	}

	r := &Report{Text: resp.Text}

	var s Summary
	if err := contract.Decode(resp.Text, Schema, &s); err != nil {
		c.logger.Debug("report reply is not a structured summary", zap.Error(err))
		return r, nil
	}
	r.Structured = &s
	return r, nil
}

const promptHeader = `You are a master career analyst.

Analyze the full 15-question conversation transcript below and calculate scores for:
- skill (Q1-5),
- numeracy (Q6-10),
- literacy (Q11-15).

Identify strengths and recommend the most suitable trade.
Return ONLY JSON with keys:
- scores: {"skill": number, "numeracy": number, "literacy": number, "overall": number}
- strengths: [string, ...]
- recommended_trade: string
- is_final_report: true
- rationale: string

Transcript:
`

func buildPrompt(transcript string) string {
	return promptHeader + transcript
}
