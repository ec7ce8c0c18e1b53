// Package config loads tradeassess configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/abhisek/tradeassess/internal/llm"
	"github.com/abhisek/tradeassess/internal/logging"
	"github.com/abhisek/tradeassess/internal/paginate"
	"github.com/abhisek/tradeassess/internal/questiongen"
)

// Config is the full process configuration.
type Config struct {
	LLM        llm.Config       `koanf:"llm"`
	Assessment AssessmentConfig `koanf:"assessment"`
	Document   DocumentConfig   `koanf:"document"`
	Log        logging.Config   `koanf:"log"`
}

// AssessmentConfig controls the interview.
type AssessmentConfig struct {
	// Language is the candidate's language. Empty means ask at startup.
	Language string `koanf:"language"`

	Trades []string `koanf:"trades"`

	// DefaultTrade is used when skill analysis is inconclusive.
	// Defaults to the first trade.
	DefaultTrade string `koanf:"default_trade"`

	QuestionMaxTokens int     `koanf:"question_max_tokens"`
	AnalysisMaxTokens int     `koanf:"analysis_max_tokens"`
	ReportMaxTokens   int     `koanf:"report_max_tokens"`
	Attempts          int     `koanf:"attempts"`
	Temperature       float64 `koanf:"temperature"`
}

// DocumentConfig controls the rendered report.
type DocumentConfig struct {
	Title     string          `koanf:"title"`
	OutputDir string          `koanf:"output_dir"`
	Layout    paginate.Layout `koanf:"layout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills every zero-valued field.
func applyDefaults(cfg *Config) {
	applyLLMDefaults(&cfg.LLM)

	a := &cfg.Assessment
	if len(a.Trades) == 0 {
		a.Trades = append([]string(nil), questiongen.DefaultTrades...)
	}
	if a.DefaultTrade == "" {
		a.DefaultTrade = a.Trades[0]
	}
	if a.QuestionMaxTokens == 0 {
		a.QuestionMaxTokens = 300
	}
	if a.AnalysisMaxTokens == 0 {
		a.AnalysisMaxTokens = 300
	}
	if a.ReportMaxTokens == 0 {
		a.ReportMaxTokens = 700
	}
	if a.Attempts == 0 {
		a.Attempts = 2
	}

	d := &cfg.Document
	if d.Title == "" {
		d.Title = "Career Counseling Final Report"
	}
	if d.OutputDir == "" {
		d.OutputDir = "."
	}
	def := paginate.DefaultLayout()
	l := &d.Layout
	setFloat(&l.PageWidth, def.PageWidth)
	setFloat(&l.PageHeight, def.PageHeight)
	setFloat(&l.Margins.Left, def.Margins.Left)
	setFloat(&l.Margins.Right, def.Margins.Right)
	setFloat(&l.Margins.Top, def.Margins.Top)
	setFloat(&l.Margins.Bottom, def.Margins.Bottom)
	setFloat(&l.LineHeight, def.LineHeight)
	setFloat(&l.TitleOffset, def.TitleOffset)

	defLog := logging.DefaultConfig()
	if cfg.Log.Level == "" {
		cfg.Log.Level = defLog.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = defLog.Format
	}
}

func applyLLMDefaults(c *llm.Config) {
	def := llm.DefaultConfig()
	setString(&c.Provider, def.Provider)
	setString(&c.Groq.Model, def.Groq.Model)
	setString(&c.Groq.BaseURL, def.Groq.BaseURL)
	setString(&c.OpenAI.Model, def.OpenAI.Model)
	setString(&c.OpenRouter.Model, def.OpenRouter.Model)
	setString(&c.OpenRouter.BaseURL, def.OpenRouter.BaseURL)
	setString(&c.Anthropic.Model, def.Anthropic.Model)
	setString(&c.Gemini.Model, def.Gemini.Model)
	if c.Retry.MaxAttempts == 0 {
		c.Retry.MaxAttempts = def.Retry.MaxAttempts
	}
	if c.Retry.InitialWait == 0 {
		c.Retry.InitialWait = def.Retry.InitialWait
	}
	if c.Retry.MaxWait == 0 {
		c.Retry.MaxWait = def.Retry.MaxWait
	}
	setFloat(&c.Retry.Multiplier, def.Retry.Multiplier)
}

func setString(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

func setFloat(dst *float64, v float64) {
	if *dst == 0 {
		*dst = v
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if err := c.LLM.Validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	if err := c.Assessment.Validate(); err != nil {
		return fmt.Errorf("assessment: %w", err)
	}
	if err := c.Document.Validate(); err != nil {
		return fmt.Errorf("document: %w", err)
	}
	return c.Log.Validate()
}

// Validate checks the assessment section.
func (a AssessmentConfig) Validate() error {
	seen := make(map[string]bool, len(a.Trades))
	for _, t := range a.Trades {
		key := strings.ToLower(strings.TrimSpace(t))
		if key == "" {
			return fmt.Errorf("trades must not contain empty labels")
		}
		if seen[key] {
			return fmt.Errorf("duplicate trade %q", t)
		}
		seen[key] = true
	}
	if len(a.Trades) == 0 {
		return fmt.Errorf("at least one trade is required")
	}
	if !seen[strings.ToLower(a.DefaultTrade)] {
		return fmt.Errorf("default_trade %q is not one of the trades", a.DefaultTrade)
	}
	if a.Attempts < 1 {
		return fmt.Errorf("attempts must be at least 1, got %d", a.Attempts)
	}
	if a.QuestionMaxTokens < 1 || a.AnalysisMaxTokens < 1 || a.ReportMaxTokens < 1 {
		return fmt.Errorf("token budgets must be positive")
	}
	if a.Temperature < 0 || a.Temperature > 1 {
		return fmt.Errorf("temperature must be within [0, 1], got %v", a.Temperature)
	}
	return nil
}

// Validate checks the document section.
func (d DocumentConfig) Validate() error {
	l := d.Layout
	if l.ContentWidth() <= 0 {
		return fmt.Errorf("margins leave no room for text")
	}
	if l.LineHeight <= 0 {
		return fmt.Errorf("line_height must be positive")
	}
	if l.PageHeight-l.Margins.Top-l.TitleOffset < l.Margins.Bottom {
		return fmt.Errorf("page is too short for its margins")
	}
	return nil
}
