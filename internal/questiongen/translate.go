package questiongen

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/abhisek/tradeassess/internal/llm"
	"github.com/abhisek/tradeassess/internal/question"
)

// FirstQuestion returns the fixed opening question. Each call returns a
// fresh copy.
func FirstQuestion() *question.Question {
	return &question.Question{
		Text: "You're working on a construction site and need to repair a faulty circuit that controls the lights " +
			"in a large hall. You're given a choice of tools and materials. What would you prefer to use to " +
			"diagnose and fix the issue?",
		Options: map[string]string{
			"A": "A multimeter to measure voltage and a wire stripper to access the wires",
			"B": "A hammer to tap on the walls and a level to ensure the circuit box is straight",
			"C": "A pipe wrench to grip the circuit box and a hacksaw to cut new wires",
			"D": "A paintbrush to inspect the circuit box and a putty knife to clean out old paint",
		},
	}
}

var translationTemplate = template.Must(template.New("translation").Parse(`Translate this question and options into {{.Language}}.
Return ONLY a readable multiple-choice question in plain text.

Question: {{.Q.Text}}
Options:
A) {{index .Q.Options "A"}}
B) {{index .Q.Options "B"}}
C) {{index .Q.Options "C"}}
D) {{index .Q.Options "D"}}`))

// Translator renders a question as plain text in the candidate's language.
// The result is shown and recorded as-is; it is not held to the question
// contract.
type Translator struct {
	provider  llm.Provider
	maxTokens int
}

// NewTranslator creates a Translator.
func NewTranslator(provider llm.Provider, maxTokens int) *Translator {
	return &Translator{provider: provider, maxTokens: maxTokens}
}

// Translate makes one call. A blank reply falls back to the untranslated
// rendering of q.
func (t *Translator) Translate(ctx context.Context, language string, q *question.Question) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeTranslation)

	var buf bytes.Buffer
	if err := translationTemplate.Execute(&buf, struct {
		Language string
		Q        *question.Question
	}{language, q}); err != nil {
		return "", fmt.Errorf("build translation prompt: %w", err)
	}

	resp, err := t.provider.Generate(ctx, llm.UserPrompt(buf.String(), t.maxTokens))
	if err != nil {
		return "", fmt.Errorf("translate question: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return q.String(), nil
	}
	return text, nil
}
