package scenario

import "errors"

var (
	// ErrInvalidStep indicates a step that sets zero or several actions,
	// or whose action arguments are malformed.
	ErrInvalidStep = errors.New("scenario: invalid step")

	// ErrEmptyScenario indicates a script without steps.
	ErrEmptyScenario = errors.New("scenario: no steps")
)
