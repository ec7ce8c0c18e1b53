package questiongen

import (
	"errors"
	"fmt"
)

// ErrContractViolation is returned when every attempt for a question failed
// the question contract. The session cannot continue past it.
type ErrContractViolation struct {
	Phase    Phase
	Number   int
	Attempts int
	Err      error // the last attempt's contract failure
}

func (e *ErrContractViolation) Error() string {
	return fmt.Sprintf("model did not return valid JSON for phase=%s, q=%d after %d attempts: %v",
		e.Phase, e.Number, e.Attempts, e.Err)
}

func (e *ErrContractViolation) Unwrap() error { return e.Err }

// ErrNoQuestion is returned when a question is requested for the Complete phase.
var ErrNoQuestion = errors.New("no question in the complete phase")
