package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/tradeassess/internal/question"
	"github.com/abhisek/tradeassess/internal/questiongen"
)

// TotalQuestions is the length of an interview.
const TotalQuestions = 15

// Entry is one answered question. Entries are never modified after they
// are appended.
type Entry struct {
	Index    int
	Question string
	Answer   question.Answer
}

// Displayed is the question currently in front of the candidate.
type Displayed struct {
	Number int

	// Text is what gets recorded in the transcript when it is answered.
	Text string

	// Question is the structured question, or nil for the translated
	// opening question, which is plain text.
	Question *question.Question
}

// Lines renders the displayed question for a terminal.
func (d *Displayed) Lines() []string {
	if d.Question != nil {
		return d.Question.Lines()
	}
	return strings.Split(d.Text, "\n")
}

// Session is the state of one interview. Only Machine mutates it.
type Session struct {
	// ID is a UUID used to correlate log lines.
	ID string

	Phase questiongen.Phase

	// Index is the 1-based number of the question being answered.
	Index int

	Language string

	// SkillContext is the trade determined after question 5, or "" if
	// none was determined.
	SkillContext string

	Transcript []Entry

	// Current is the question awaiting an answer; nil once Complete.
	Current *Displayed

	// Aborted is set after a fatal error.
	Aborted bool

	StartTime time.Time
}

// TranscriptText serializes entries as "Q{i}: question" / "A{i}: answer"
// line pairs.
func TranscriptText(entries []Entry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("Q%d: %s\nA%d: %s", e.Index, e.Question, e.Index, e.Answer)
	}
	return strings.Join(parts, "\n")
}

// PhaseFor returns the phase question index belongs to.
func PhaseFor(index int) questiongen.Phase {
	switch {
	case index <= 5:
		return questiongen.SkillDetermination
	case index <= 10:
		return questiongen.Numeracy
	case index <= TotalQuestions:
		return questiongen.Literacy
	}
	return questiongen.Complete
}
