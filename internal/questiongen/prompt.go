package questiongen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

const questionShape = `{"question_text": "...", "options": {"A": "...", "B": "...", "C": "...", "D": "..."}}`

var skillTemplate = template.Must(template.New("skill_determination").Parse(`You are an expert career counselor specializing in trade skills assessment.
Phase: SKILL DETERMINATION (Questions 1-5).

Instructions:
- Persona: friendly and encouraging counselor.
- Language: {{.Language}}.
- Based on the conversation history, ask one scenario-based multiple-choice question that reveals trade aptitude.
- Consider these trades: {{.Trades}}.
- Output ONLY JSON: {{.Shape}}
- No extra text, no backticks.

Conversation History:
{{.Transcript}}

Current Question: {{.Number}}/{{.Last}}`))

var numeracyTemplate = template.Must(template.New("numeracy").Parse(`You are conducting the NUMERACY ASSESSMENT phase (Questions 6-10) for {{.Trade}}.
Language: {{.Language}}.
Ask one math-related multiple-choice question relevant to the work of a {{.Trade}}.
Output ONLY JSON: {{.Shape}}
No extra text, no backticks.

Conversation History:
{{.Transcript}}

Current Question: {{.Number}}/{{.Last}}`))

var literacyTemplate = template.Must(template.New("literacy").Parse(`You are conducting the LITERACY ASSESSMENT phase (Questions 11-15) for {{.Trade}}.
Language: {{.Language}}.
Ask one reading-comprehension multiple-choice question relevant to the work of a {{.Trade}}.
Output ONLY JSON: {{.Shape}}
No extra text, no backticks.

Conversation History:
{{.Transcript}}

Current Question: {{.Number}}/{{.Last}}`))

type promptData struct {
	Language   string
	Trades     string
	Trade      string
	Transcript string
	Number     int
	Last       int
	Shape      string
}

// buildPrompt renders the phase template for input.
func buildPrompt(input Input, cfg Config) (string, error) {
	var tmpl *template.Template
	switch input.Phase {
	case SkillDetermination:
		tmpl = skillTemplate
	case Numeracy:
		tmpl = numeracyTemplate
	case Literacy:
		tmpl = literacyTemplate
	default:
		return "", fmt.Errorf("%w: %s", ErrNoQuestion, input.Phase)
	}

	transcript := input.Transcript
	if strings.TrimSpace(transcript) == "" {
		transcript = "None"
	}

	data := promptData{
		Language:   input.Language,
		Trades:     strings.Join(cfg.Trades, ", "),
		Trade:      cfg.tradeFor(input.Trade),
		Transcript: transcript,
		Number:     input.Number,
		Last:       input.Phase.LastQuestion(),
		Shape:      questionShape,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
