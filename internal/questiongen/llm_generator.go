package questiongen

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/tradeassess/internal/llm"
	"github.com/abhisek/tradeassess/internal/question"
)

// LLMGenerator implements Generator using the LLM provider. Each call makes
// up to Config.Attempts requests; a response that fails the question
// contract is retried with a repaired prompt.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	logger   *zap.Logger
}

// New creates a new LLMGenerator with the given provider and config.
// A nil logger discards output.
func New(provider llm.Provider, cfg Config, logger *zap.Logger) *LLMGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMGenerator{provider: provider, config: cfg, logger: logger.Named("questiongen")}
}

// Generate produces a single question for the given input.
func (g *LLMGenerator) Generate(ctx context.Context, input Input) (*question.Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestion)

	prompt, err := buildPrompt(input, g.config)
	if err != nil {
		return nil, fmt.Errorf("build %s prompt: %w", input.Phase, err)
	}

	attempts := g.config.attempts()
	repair := g.config.repair()

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		req := llm.UserPrompt(prompt, g.config.MaxTokens)
		req.Temperature = g.config.Temperature

		resp, err := g.provider.Generate(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("generate %s question %d: %w", input.Phase, input.Number, err)
		}

		q, err := question.Parse(resp.Text)
		if err == nil {
			return q, nil
		}
		lastErr = err

		g.logger.Warn("response failed question contract",
			zap.Stringer("phase", input.Phase),
			zap.Int("question", input.Number),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt < attempts {
			prompt = repair.Repair(prompt, err)
		}
	}

	return nil, &ErrContractViolation{
		Phase:    input.Phase,
		Number:   input.Number,
		Attempts: attempts,
		Err:      lastErr,
	}
}
