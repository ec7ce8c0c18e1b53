// Package console runs the interview on a line-oriented terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/tradeassess/internal/question"
	"github.com/abhisek/tradeassess/internal/session"
)

// ErrInputClosed is returned when input ends before the interview does.
var ErrInputClosed = errors.New("input closed before the assessment finished")

// Console reads answers and prints questions.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
	st  styles
}

// New creates a Console. styled enables colors and bold text.
func New(in io.Reader, out io.Writer, styled bool) *Console {
	return &Console{in: bufio.NewScanner(in), out: out, st: newStyles(styled)}
}

// Ask prints label and returns the next input line, trimmed.
func (c *Console) Ask(label string) (string, error) {
	fmt.Fprint(c.out, c.st.prompt.Render(label))
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// Title prints a bold heading line.
func (c *Console) Title(text string) {
	fmt.Fprintln(c.out, c.st.title.Render(text))
}

// ShowQuestion prints the numbered question and its options.
func (c *Console) ShowQuestion(d *session.Displayed) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.st.heading.Render(fmt.Sprintf("Question %d:", d.Number)))

	if d.Question == nil {
		fmt.Fprintln(c.out, c.st.body.Render(d.Text))
		return
	}
	fmt.Fprintln(c.out, c.st.body.Render(d.Question.Text))
	for _, l := range question.Letters {
		fmt.Fprintf(c.out, "%s %s\n", c.st.letter.Render(string(l)+")"), d.Question.Option(l))
	}
}

// ShowReport prints the report text as received.
func (c *Console) ShowReport(text string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.st.title.Render("Final Report:"))
	fmt.Fprintln(c.out, text)
}

// Notice prints an informational line.
func (c *Console) Notice(format string, args ...any) {
	fmt.Fprintln(c.out, c.st.notice.Render(fmt.Sprintf(format, args...)))
}

// Warn prints a warning line.
func (c *Console) Warn(format string, args ...any) {
	fmt.Fprintln(c.out, c.st.warn.Render(fmt.Sprintf(format, args...)))
}

// Run shows the current question and feeds answers to m until the session
// completes. Invalid letters are re-prompted without advancing.
func (c *Console) Run(ctx context.Context, m *session.Machine, s *session.Session) (*session.Outcome, error) {
	c.ShowQuestion(s.Current)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		input, err := c.Ask("Your answer (A/B/C/D): ")
		if err != nil {
			return nil, err
		}

		out, err := m.Answer(ctx, s, input)
		var invalid *question.ErrInvalidAnswer
		switch {
		case errors.As(err, &invalid):
			c.Warn("Please enter A, B, C, or D.")
			continue
		case err != nil:
			return nil, err
		case out.Done:
			return out, nil
		}
		c.ShowQuestion(out.Next)
	}
}
