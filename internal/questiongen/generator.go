package questiongen

import (
	"context"

	"github.com/abhisek/tradeassess/internal/question"
)

// Generator produces assessment questions using an LLM provider.
type Generator interface {
	// Generate produces a single contract-valid question for the given
	// input. Returns *ErrContractViolation when the attempt budget runs out.
	Generate(ctx context.Context, input Input) (*question.Question, error)
}

// Input is everything a question prompt is built from.
type Input struct {
	Phase Phase

	// Number is the 1-based question number being generated.
	Number int

	// Transcript is the serialized interview so far.
	Transcript string

	Language string

	// Trade is the determined skill context. Empty falls back to the
	// configured default trade. Unused in SkillDetermination.
	Trade string
}
