package question

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/tradeassess/internal/contract"
)

// Letters are the option keys every question must carry, in display order.
var Letters = []Answer{"A", "B", "C", "D"}

// Question is a generated multiple-choice question ready for display.
type Question struct {
	// Text is the question prompt shown to the candidate.
	Text string `json:"question_text"`

	// Options maps an option letter to its text. A-D are always present;
	// any extra keys the model adds are kept but never displayed.
	Options map[string]string `json:"options"`
}

// Option returns the text for letter a.
func (q *Question) Option(a Answer) string {
	return q.Options[string(a)]
}

// Lines renders the question for display: the prompt followed by one
// "X) text" line per letter.
func (q *Question) Lines() []string {
	lines := []string{q.Text}
	for _, l := range Letters {
		lines = append(lines, fmt.Sprintf("%s) %s", l, q.Option(l)))
	}
	return lines
}

// String joins Lines with newlines.
func (q *Question) String() string {
	return strings.Join(q.Lines(), "\n")
}

// UnmarshalJSON keeps string-valued options only, so extra keys of any
// type do not fail the decode. A-D are guaranteed strings by Schema.
func (q *Question) UnmarshalJSON(data []byte) error {
	var raw struct {
		Text    string         `json:"question_text"`
		Options map[string]any `json:"options"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	q.Text = raw.Text
	q.Options = make(map[string]string, len(raw.Options))
	for k, v := range raw.Options {
		if s, ok := v.(string); ok {
			q.Options[k] = s
		}
	}
	return nil
}

// Schema is the contract a generated question must satisfy.
var Schema = &contract.Schema{
	Name: "assessment-question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"options": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"A": map[string]any{"type": "string", "minLength": 1},
					"B": map[string]any{"type": "string", "minLength": 1},
					"C": map[string]any{"type": "string", "minLength": 1},
					"D": map[string]any{"type": "string", "minLength": 1},
				},
				"required": []any{"A", "B", "C", "D"},
			},
		},
		"required": []any{"question_text", "options"},
	},
}

// Parse applies the question contract to raw model output.
func Parse(raw string) (*Question, error) {
	var q Question
	if err := contract.Decode(raw, Schema, &q); err != nil {
		return nil, err
	}
	return &q, nil
}
