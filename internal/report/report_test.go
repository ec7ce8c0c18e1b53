package report

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tradeassess/internal/llm"
)

const summaryJSON = `{"scores": {"skill": 80, "numeracy": 65.5, "literacy": 70, "overall": 72},
 "strengths": ["Diagnosis", "Safety"], "recommended_trade": "Electrician",
 "is_final_report": true, "rationale": "Chose diagnostic tools throughout."}`

func TestCompile_Structured(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Here is the report:\n" + summaryJSON})
	c := NewCompiler(mock, DefaultConfig(), nil)

	r, err := c.Compile(context.Background(), "Q1: x\nA1: A")
	require.NoError(t, err)
	assert.Equal(t, "Here is the report:\n"+summaryJSON, r.Text)
	require.NotNil(t, r.Structured)
	assert.Equal(t, "Electrician", r.Structured.RecommendedTrade)
	assert.Equal(t, 65.5, r.Structured.Scores.Numeracy)
	assert.Equal(t, []string{"Diagnosis", "Safety"}, r.Structured.Strengths)
	assert.True(t, r.Structured.IsFinalReport)

	require.Len(t, mock.Calls, 1)
	assert.Equal(t, 700, mock.Calls[0].MaxTokens)
	assert.True(t, strings.HasSuffix(mock.LastPrompt(), "Transcript:\nQ1: x\nA1: A"))
}

func TestCompile_UnstructuredPassesThrough(t *testing.T) {
	for _, text := range []string{
		"The candidate shows strong aptitude for electrical work.",
		"\n\nSummary\n  body  \n\n",
		`{"scores": "high", "recommended_trade": "Mason"}`,
	} {
		mock := llm.NewMockProvider(llm.MockResponse{Text: text})
		r, err := NewCompiler(mock, DefaultConfig(), nil).Compile(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, text, r.Text)
		assert.Nil(t, r.Structured)
	}
}

func TestCompile_CallFailureIsFatal(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	r, err := NewCompiler(mock, DefaultConfig(), nil).Compile(context.Background(), "")
	assert.Nil(t, r)
	var unavailable *llm.ErrProviderUnavailable
	assert.True(t, errors.As(err, &unavailable))
	assert.Equal(t, 1, mock.CallCount())
}
