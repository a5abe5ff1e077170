package workflow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Step is the position of a session in the fixed input → review → submitting
// → result state machine.
type Step string

const (
	StepInput      Step = "input"
	StepReview     Step = "review"
	StepSubmitting Step = "submitting"
	StepResult     Step = "result"
)

// OutcomeStatus is the terminal disposition of a submission.
type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success"
	OutcomeFailure OutcomeStatus = "failure"
)

// Outcome records how a submission ended, with the amount and counterparty
// needed for the confirmation screen.
type Outcome struct {
	Status       OutcomeStatus
	Message      string
	Amount       decimal.Decimal
	Counterparty string
	CompletedAt  time.Time
}

// Session drives one money-movement flow through the state machine. A session
// is created in Input with an empty draft and is internally sequential: the
// mutex serializes transitions, and the at-most-one-in-flight guard makes a
// duplicate confirm a rejected no-op rather than a second submission.
type Session struct {
	id   uuid.UUID
	kind Kind

	mu         sync.Mutex
	step       Step
	draft      Request
	processing bool
	closed     bool
	result     *Outcome
	lastActive time.Time

	validate Validator
	submit   Submitter
	timeout  time.Duration
	logger   *logrus.Logger
}

// View is an immutable snapshot of a session for callers outside the package.
type View struct {
	ID         uuid.UUID
	Kind       Kind
	Step       Step
	Draft      Request
	Processing bool
	Result     *Outcome
}

func newSession(kind Kind, validate Validator, submit Submitter, timeout time.Duration, logger *logrus.Logger) (*Session, error) {
	draft, err := EmptyRequest(kind)
	if err != nil {
		return nil, err
	}

	return &Session{
		id:         uuid.Must(uuid.NewV4()),
		kind:       kind,
		step:       StepInput,
		draft:      draft,
		lastActive: time.Now(),
		validate:   validate,
		submit:     submit,
		timeout:    timeout,
		logger:     logger,
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Snapshot returns the session state for display.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := View{
		ID:         s.id,
		Kind:       s.kind,
		Step:       s.step,
		Draft:      s.draft,
		Processing: s.processing,
	}
	if s.result != nil {
		result := *s.result
		view.Result = &result
	}
	return view
}

// UpdateDraft replaces the draft. Legal only in Input; anywhere else it
// returns ErrInvalidState and leaves the session untouched.
func (s *Session) UpdateDraft(draft Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionNotFound
	}
	if s.step != StepInput {
		return ErrInvalidState
	}
	if draft.Kind() != s.kind {
		return ErrKindMismatch
	}

	s.draft = draft
	s.lastActive = time.Now()
	return nil
}

// Advance moves Input → Review when the draft validates. On validation
// failure the session stays in Input and the full error set is returned.
func (s *Session) Advance() (FieldErrors, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSessionNotFound
	}
	if s.step != StepInput {
		return nil, ErrInvalidState
	}

	s.lastActive = time.Now()
	if errs := s.validate(s.draft); len(errs) > 0 {
		return errs, nil
	}

	s.step = StepReview
	if s.logger != nil && s.logger.IsLevelEnabled(logrus.DebugLevel) {
		s.logger.WithField("sessionID", s.id).Debugf("Workflow.Advance draft=%s", spew.Sdump(s.draft))
	}
	return nil, nil
}

// Back returns from Review to Input with the draft preserved, or from a
// failed Result back to Review for another attempt.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionNotFound
	}

	switch {
	case s.step == StepReview:
		s.step = StepInput
	case s.step == StepResult && s.result != nil && s.result.Status == OutcomeFailure:
		s.result = nil
		s.step = StepReview
	default:
		return ErrInvalidState
	}

	s.lastActive = time.Now()
	return nil
}

// Confirm is the sole exit from Review. It moves the session to Submitting,
// invokes the submitter exactly once under a bounded timeout, and lands in
// Result. A confirm while a submission is processing returns
// ErrSubmissionInFlight without invoking the submitter again. If the session
// was closed while the submission was in flight, the outcome is returned to
// the caller but the dead session is left untouched.
func (s *Session) Confirm(ctx context.Context) (Outcome, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return Outcome{}, ErrSessionNotFound
	}
	if s.processing {
		s.mu.Unlock()
		return Outcome{}, ErrSubmissionInFlight
	}
	if s.step != StepReview {
		s.mu.Unlock()
		return Outcome{}, ErrInvalidState
	}
	s.step = StepSubmitting
	s.processing = true
	s.lastActive = time.Now()
	draft := s.draft
	s.mu.Unlock()

	submitCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.submit.Submit(submitCtx, draft)
	outcome := buildOutcome(draft, err)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.processing = false
	if s.closed {
		return outcome, nil
	}

	s.step = StepResult
	s.result = &outcome
	s.lastActive = time.Now()
	return outcome, nil
}

func buildOutcome(draft Request, err error) Outcome {
	outcome := Outcome{
		Amount:       draft.Amount(),
		Counterparty: draft.Counterparty(),
		CompletedAt:  time.Now(),
	}

	if err != nil {
		outcome.Status = OutcomeFailure
		outcome.Message = fmt.Sprintf("submission failed: %v", err)
		return outcome
	}

	outcome.Status = OutcomeSuccess
	outcome.Message = fmt.Sprintf("%s sent to %s", draft.Amount().StringFixed(2), draft.Counterparty())
	return outcome
}

// close marks the session dead. An in-flight submission is not cancelled; its
// completion is discarded by Confirm.
func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// idleSince reports whether the session has been inactive since the deadline
// with no submission in flight.
func (s *Session) idleSince(deadline time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.processing && s.lastActive.Before(deadline)
}
