package flow

import "errors"

var (
	// ErrBusy rejects a submit or resend while a previous backend call is
	// still in flight. There is no queueing and no cancellation.
	ErrBusy = errors.New("a submission is already in flight")

	// ErrCooldownActive rejects a resend before its countdown reached zero.
	ErrCooldownActive = errors.New("resend is still cooling down")

	// ErrValidation means local field validation failed; the per-field
	// messages are available via FieldErrors and no network call was made.
	ErrValidation = errors.New("local validation failed")

	// ErrWrongScreen rejects an operation that is not valid on the current
	// screen.
	ErrWrongScreen = errors.New("operation not available on current screen")
)
