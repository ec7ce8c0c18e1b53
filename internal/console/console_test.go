package console

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tradeassess/internal/llm"
	"github.com/abhisek/tradeassess/internal/paginate"
	"github.com/abhisek/tradeassess/internal/question"
	"github.com/abhisek/tradeassess/internal/questiongen"
	"github.com/abhisek/tradeassess/internal/report"
	"github.com/abhisek/tradeassess/internal/session"
	"github.com/abhisek/tradeassess/internal/skillanalysis"
)

func demoMachine() *session.Machine {
	p := llm.NewDemoProvider()
	trades := questiongen.DefaultTrades
	return session.NewMachine(session.Deps{
		Generator:  questiongen.New(p, questiongen.DefaultConfig(), nil),
		Translator: questiongen.NewTranslator(p, 300),
		Analyzer:   skillanalysis.New(p, skillanalysis.Config{Trades: trades, MaxTokens: 300}, nil),
		Compiler:   report.NewCompiler(p, report.DefaultConfig(), nil),
	}, session.Config{DefaultTrade: trades[0], ReportTitle: "Report", Layout: paginate.DefaultLayout()}, nil)
}

func TestAsk(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("  Asha  \n"), &out, false)

	got, err := c.Ask("Enter your name: ")
	require.NoError(t, err)
	assert.Equal(t, "Asha", got)
	assert.Equal(t, "Enter your name: ", out.String())

	_, err = c.Ask("again: ")
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestShowQuestion(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, false)

	c.ShowQuestion(&session.Displayed{Number: 1, Text: "Translated\nA) one"})
	c.ShowQuestion(&session.Displayed{Number: 2, Text: "Pick one", Question: &question.Question{
		Text:    "Pick one",
		Options: map[string]string{"A": "w", "B": "x", "C": "y", "D": "z"},
	}})

	assert.Equal(t, "\nQuestion 1:\nTranslated\nA) one\n\nQuestion 2:\nPick one\nA) w\nB) x\nC) y\nD) z\n", out.String())
}

func TestStyledOutputKeepsText(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, true)
	c.Warn("Please enter A, B, C, or D.")
	assert.Contains(t, out.String(), "Please enter A, B, C, or D.")
}

func TestRun_CompletesWithReprompts(t *testing.T) {
	answers := []string{"x", "A", "", "b"}
	for i := 2; i < session.TotalQuestions; i++ {
		answers = append(answers, "C")
	}
	var out bytes.Buffer
	c := New(strings.NewReader(strings.Join(answers, "\n")+"\n"), &out, false)

	m := demoMachine()
	s, err := m.Start(context.Background(), "English")
	require.NoError(t, err)

	res, err := c.Run(context.Background(), m, s)
	require.NoError(t, err)
	require.True(t, res.Done)
	assert.NotNil(t, res.Report.Structured)
	assert.Len(t, s.Transcript, session.TotalQuestions)

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "Please enter A, B, C, or D."))
	for n := 1; n <= session.TotalQuestions; n++ {
		assert.Contains(t, text, fmt.Sprintf("Question %d:", n))
	}
}

func TestRun_EOFAborts(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("A\nB\n"), &out, false)

	m := demoMachine()
	s, err := m.Start(context.Background(), "English")
	require.NoError(t, err)

	res, err := c.Run(context.Background(), m, s)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, ErrInputClosed))
	assert.Equal(t, 3, s.Index)
}
