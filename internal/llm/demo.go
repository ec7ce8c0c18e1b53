package llm

import (
	"context"
	"fmt"
	"sync"
)

// DemoProvider answers every purpose with a fixed, well-formed response so
// the whole interview can run offline. It picks the response by the purpose
// label on the context.
type DemoProvider struct {
	mu    sync.Mutex
	count int
}

// NewDemoProvider creates a DemoProvider.
func NewDemoProvider() *DemoProvider {
	return &DemoProvider{}
}

func (d *DemoProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	d.mu.Lock()
	d.count++
	n := d.count
	d.mu.Unlock()

	var text string
	switch PurposeFrom(ctx) {
	case PurposeTranslation:
		text = "You need to repair a faulty lighting circuit in a large hall. What would you use?\n" +
			"A) A multimeter and a wire stripper\n" +
			"B) A hammer and a level\n" +
			"C) A pipe wrench and a hacksaw\n" +
			"D) A paintbrush and a putty knife"
	case PurposeSkillAnalysis:
		text = `{"determined_skill": "Electrician", "confidence": 0.8}`
	case PurposeReport:
		text = `{"scores": {"skill": 80, "numeracy": 70, "literacy": 75, "overall": 75},` +
			` "strengths": ["Tool selection", "Safety awareness"],` +
			` "recommended_trade": "Electrician", "is_final_report": true,` +
			` "rationale": "Consistent preference for diagnostic electrical work."}`
	default:
		text = fmt.Sprintf(`{"question_text": "Demo question %d: which option fits best?",`+
			` "options": {"A": "First", "B": "Second", "C": "Third", "D": "Fourth"}}`, n)
	}

	return &Response{
		Text:       text,
		Model:      "demo",
		StopReason: "end",
		Usage:      Usage{InputTokens: promptChars(req) / 4, OutputTokens: len(text) / 4, TotalTokens: (promptChars(req) + len(text)) / 4},
	}, nil
}

// ModelID returns "demo".
func (d *DemoProvider) ModelID() string {
	return "demo"
}
