package workflow

import "errors"

var (
	// ErrUnknownKind means the requested flow kind does not exist.
	ErrUnknownKind = errors.New("workflow: unknown kind")

	// ErrInvalidState means a transition was requested that is illegal for
	// the session's current step. It indicates a caller bug, not a
	// user-recoverable condition.
	ErrInvalidState = errors.New("workflow: operation illegal in current step")

	// ErrKindMismatch means a draft of the wrong kind was applied to a session.
	ErrKindMismatch = errors.New("workflow: draft kind does not match session")

	// ErrSubmissionInFlight means confirm was called while a submission was
	// already processing. The duplicate call is ignored.
	ErrSubmissionInFlight = errors.New("workflow: submission already in flight")

	// ErrSessionNotFound means the session ID is unknown, closed, or expired.
	ErrSessionNotFound = errors.New("workflow: session not found")
)
