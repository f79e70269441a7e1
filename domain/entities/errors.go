package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrElementNotFound is returned when a locator matches nothing, or more than one element
	ErrElementNotFound = errors.New("element not found")
	// ErrVisibilityTimeout is returned when a visibility assertion is not satisfied in time
	ErrVisibilityTimeout = errors.New("visibility timeout")
	// ErrFileNotFound is returned when a file to upload does not exist
	ErrFileNotFound = errors.New("file not found")
	// ErrInvalidScenario is returned for malformed steps
	ErrInvalidScenario = errors.New("invalid scenario")
)

// StepError wraps the failure of a single scenario step
type StepError struct {
	Index  int
	Action ActionType
	Kind   error // one of the Err* values above, nil when unclassified
	Err    error
}

func (e *StepError) Error() string {
	if e.Kind != nil && !errors.Is(e.Err, e.Kind) {
		return fmt.Sprintf("step %d (%s): %v: %v", e.Index+1, e.Action, e.Kind, e.Err)
	}
	return fmt.Sprintf("step %d (%s): %v", e.Index+1, e.Action, e.Err)
}

func (e *StepError) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}

// Classify - returns the error kind err belongs to, or nil
func Classify(err error) error {
	for _, kind := range []error{ErrVisibilityTimeout, ErrElementNotFound, ErrFileNotFound, ErrInvalidScenario} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
