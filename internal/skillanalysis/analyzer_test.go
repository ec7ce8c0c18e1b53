package skillanalysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/tradeassess/internal/llm"
)

var trades = []string{"Electrician", "Carpenter", "Plumber", "Mason", "Painter"}

const transcript = "Q1: circuit\nA1: A\nQ2: wiring\nA2: A"

func newAnalyzer(mock *llm.MockProvider) (*Analyzer, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return New(mock, Config{Trades: trades, MaxTokens: 300}, zap.New(core)), logs
}

func TestAnalyze_Determined(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: `{"determined_skill": "Plumber", "confidence": 0.85}`})
	a, _ := newAnalyzer(mock)

	got := a.Analyze(context.Background(), transcript)
	assert.Equal(t, Result{Trade: "Plumber", Confidence: 0.85, Determined: true}, got)

	prompt := mock.LastPrompt()
	assert.Contains(t, prompt, "Electrician, Carpenter, Plumber, Mason, Painter")
	assert.True(t, strings.HasSuffix(prompt, "\n\n"+transcript))
	assert.Equal(t, 300, mock.Calls[0].MaxTokens)
}

func TestAnalyze_CanonicalSpellingAndClamp(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: `Result: {"determined_skill": " mason ", "confidence": 1.7}`})
	a, _ := newAnalyzer(mock)

	got := a.Analyze(context.Background(), transcript)
	assert.Equal(t, "Mason", got.Trade)
	assert.Equal(t, 1.0, got.Confidence)
	assert.True(t, got.Determined)
}

func TestAnalyze_MissingConfidenceIsZero(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: `{"determined_skill": "Painter"}`})
	a, _ := newAnalyzer(mock)

	got := a.Analyze(context.Background(), transcript)
	assert.True(t, got.Determined)
	assert.Zero(t, got.Confidence)
}

func TestAnalyze_Degrades(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
		msg  string
	}{
		{"unparsable", llm.MockResponse{Text: "The candidate is clearly an electrician."}, "skill analysis reply unparsable; using default trade"},
		{"wrong type", llm.MockResponse{Text: `{"determined_skill": 3}`}, "skill analysis reply unparsable; using default trade"},
		{"unknown trade", llm.MockResponse{Text: `{"determined_skill": "Astronaut", "confidence": 0.9}`}, "skill analysis chose an unknown trade; using default trade"},
		{"call failure", llm.MockResponse{Err: errors.New("timeout")}, "skill analysis call failed; using default trade"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, logs := newAnalyzer(llm.NewMockProvider(tt.resp))

			got := a.Analyze(context.Background(), transcript)
			assert.Equal(t, Result{}, got)

			warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
			require.Len(t, warns, 1)
			assert.Equal(t, tt.msg, warns[0].Message)
		})
	}
}
