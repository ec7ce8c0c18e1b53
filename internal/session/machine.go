package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/tradeassess/internal/paginate"
	"github.com/abhisek/tradeassess/internal/question"
	"github.com/abhisek/tradeassess/internal/questiongen"
	"github.com/abhisek/tradeassess/internal/report"
	"github.com/abhisek/tradeassess/internal/skillanalysis"
)

var (
	// ErrSessionAborted is returned for any answer after a fatal error.
	ErrSessionAborted = errors.New("session aborted")

	// ErrSessionComplete is returned for an answer after question 15.
	ErrSessionComplete = errors.New("session complete")
)

// Translator renders the opening question in the candidate's language.
type Translator interface {
	Translate(ctx context.Context, language string, q *question.Question) (string, error)
}

// Analyzer determines the skill context after the first phase.
type Analyzer interface {
	Analyze(ctx context.Context, transcript string) skillanalysis.Result
}

// Compiler produces the final report.
type Compiler interface {
	Compile(ctx context.Context, transcript string) (*report.Report, error)
}

// Deps are the collaborators a Machine drives.
type Deps struct {
	Generator  questiongen.Generator
	Translator Translator
	Analyzer   Analyzer
	Compiler   Compiler
}

// Config controls the Machine.
type Config struct {
	// DefaultTrade is used when no skill context was determined.
	DefaultTrade string

	ReportTitle string
	Layout      paginate.Layout

	// Measurer sizes report text for wrapping. Nil uses a fixed
	// per-character width.
	Measurer paginate.Measurer
}

// Outcome is the result of one accepted answer.
type Outcome struct {
	// Done is true once the report is compiled.
	Done bool

	// Next is the question to show; nil when Done.
	Next *Displayed

	Report *report.Report
	Pages  []paginate.Page
}

// Machine drives sessions through the three phases.
type Machine struct {
	deps   Deps
	cfg    Config
	logger *zap.Logger
}

// NewMachine creates a Machine. A nil logger discards output.
func NewMachine(deps Deps, cfg Config, logger *zap.Logger) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Measurer == nil {
		cfg.Measurer = paginate.FixedWidth(5.5)
	}
	return &Machine{deps: deps, cfg: cfg, logger: logger.Named("session")}
}

// Start creates a session and translates the opening question.
func (m *Machine) Start(ctx context.Context, language string) (*Session, error) {
	s := &Session{
		ID:        uuid.NewString(),
		Phase:     questiongen.SkillDetermination,
		Index:     1,
		Language:  language,
		StartTime: time.Now(),
	}

	text, err := m.deps.Translator.Translate(ctx, language, questiongen.FirstQuestion())
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	s.Current = &Displayed{Number: 1, Text: text}

	m.logger.Info("session started", zap.String("session_id", s.ID), zap.String("language", language))
	return s, nil
}

// Answer records input for the current question and advances the session.
// An input that is not a letter A-D returns *question.ErrInvalidAnswer and
// leaves s untouched. Any other error aborts the session.
func (m *Machine) Answer(ctx context.Context, s *Session, input string) (*Outcome, error) {
	switch {
	case s.Aborted:
		return nil, ErrSessionAborted
	case s.Phase == questiongen.Complete:
		return nil, ErrSessionComplete
	}

	answer, err := question.ParseAnswer(input)
	if err != nil {
		return nil, err
	}

	s.Transcript = append(s.Transcript, Entry{Index: s.Index, Question: s.Current.Text, Answer: answer})
	transcript := TranscriptText(s.Transcript)

	out, err := m.advance(ctx, s, transcript)
	if err != nil {
		s.Aborted = true
		m.logger.Error("session aborted",
			zap.String("session_id", s.ID),
			zap.Int("question", s.Index),
			zap.Stringer("phase", s.Phase),
			zap.Error(err),
		)
		return nil, err
	}
	return out, nil
}

func (m *Machine) advance(ctx context.Context, s *Session, transcript string) (*Outcome, error) {
	log := m.logger.With(zap.String("session_id", s.ID))

	if s.Index == TotalQuestions {
		rep, err := m.deps.Compiler.Compile(ctx, transcript)
		if err != nil {
			return nil, err
		}
		s.Phase = questiongen.Complete
		s.Current = nil
		log.Info("session complete", zap.Duration("elapsed", time.Since(s.StartTime)),
			zap.Bool("structured_report", rep.Structured != nil))

		pages := paginate.Paginate(m.cfg.ReportTitle, rep.Text, m.cfg.Layout, m.cfg.Measurer)
		return &Outcome{Done: true, Report: rep, Pages: pages}, nil
	}

	skill := s.SkillContext
	if s.Index == 5 {
		res := m.deps.Analyzer.Analyze(ctx, transcript)
		if res.Determined {
			skill = res.Trade
		}
	}

	next := s.Index + 1
	phase := PhaseFor(next)
	if phase != s.Phase {
		log.Info("phase change", zap.Stringer("from", s.Phase), zap.Stringer("to", phase), zap.String("trade", skill))
	}

	trade := skill
	if trade == "" {
		trade = m.cfg.DefaultTrade
	}
	q, err := m.deps.Generator.Generate(ctx, questiongen.Input{
		Phase:      phase,
		Number:     next,
		Transcript: transcript,
		Language:   s.Language,
		Trade:      trade,
	})
	if err != nil {
		return nil, err
	}

	s.SkillContext = skill
	s.Phase = phase
	s.Index = next
	s.Current = &Displayed{Number: next, Text: q.Text, Question: q}
	return &Outcome{Next: s.Current}, nil
}
