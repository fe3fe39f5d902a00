package session

import "errors"

var (
	// ErrWrongMode indicates input that the current mode does not handle.
	ErrWrongMode = errors.New("session: input not handled in current mode")
	// ErrNoActiveDrag indicates a drag move or end without a drag start.
	ErrNoActiveDrag = errors.New("session: no drag in progress")
	// ErrDegenerateDrag indicates a drag that ended where it started; nothing is committed.
	ErrDegenerateDrag = errors.New("session: drag start and end coincide")
	// ErrUnknownMode indicates a mode name that cannot be parsed.
	ErrUnknownMode = errors.New("session: unknown mode")
)

// IsRejected reports whether err is a gesture the session ignored in its
// current state, as opposed to a failure.
func IsRejected(err error) bool {
	return errors.Is(err, ErrWrongMode) ||
		errors.Is(err, ErrNoActiveDrag) ||
		errors.Is(err, ErrDegenerateDrag)
}
