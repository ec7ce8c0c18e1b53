package question

import (
	"fmt"
	"strings"
)

// Answer is an option letter chosen by the candidate.
type Answer string

// ErrInvalidAnswer reports input outside A-D. The caller re-prompts; no
// state changes.
type ErrInvalidAnswer struct {
	Input string
}

func (e *ErrInvalidAnswer) Error() string {
	return fmt.Sprintf("invalid answer %q: please enter A, B, C, or D", e.Input)
}

// ParseAnswer normalizes input (trimmed, upper-cased) and checks it names
// one of the option letters.
func ParseAnswer(input string) (Answer, error) {
	a := Answer(strings.ToUpper(strings.TrimSpace(input)))
	for _, l := range Letters {
		if a == l {
			return a, nil
		}
	}
	return "", &ErrInvalidAnswer{Input: input}
}
