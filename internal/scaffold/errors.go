package scaffold

import "errors"

// Every error below ends the current invocation with a single user-visible
// message. There are no retries and no partial-state recovery.
var (
	// ErrCancelled means the user dismissed a prompt or menu.
	ErrCancelled = errors.New("cancelled")

	// ErrMissingInput means a required free-text field came back empty.
	ErrMissingInput = errors.New("required input missing")

	// ErrNoWorkspace means no workspace root exists to generate into.
	ErrNoWorkspace = errors.New("no workspace folder available")
)
