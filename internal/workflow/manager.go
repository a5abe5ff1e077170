package workflow

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-dashboard/internal/notify"
)

const (
	defaultSubmitTimeout = 30 * time.Second
	defaultSessionTTL    = 30 * time.Minute
	pruneInterval        = time.Minute
)

// ManagerConfig wires the manager's collaborators.
type ManagerConfig struct {
	Billers       BillerFinder
	Submitter     Submitter
	Sink          notify.Sink
	SubmitTimeout time.Duration
	SessionTTL    time.Duration
	Logger        *logrus.Logger
}

// Manager owns the live workflow sessions, one per open flow. Independent
// flows (send, transfer, pay-bill) may be open at the same time; each session
// is internally sequential. The manager also surfaces notifications after
// transitions, keeping the sink out of the state machine itself.
type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session

	billers       BillerFinder
	submitter     Submitter
	sink          notify.Sink
	submitTimeout time.Duration
	sessionTTL    time.Duration
	logger        *logrus.Logger
}

// NewManager creates a Manager. Zero config durations fall back to defaults;
// a nil sink falls back to a no-op.
func NewManager(cfg ManagerConfig) *Manager {
	if cfg.SubmitTimeout <= 0 {
		cfg.SubmitTimeout = defaultSubmitTimeout
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.Sink == nil {
		cfg.Sink = notify.NopSink{}
	}

	return &Manager{
		sessions:      make(map[uuid.UUID]*Session),
		billers:       cfg.Billers,
		submitter:     cfg.Submitter,
		sink:          cfg.Sink,
		submitTimeout: cfg.SubmitTimeout,
		sessionTTL:    cfg.SessionTTL,
		logger:        cfg.Logger,
	}
}

// Open creates a fresh session for the kind, starting in Input with an empty
// draft.
func (m *Manager) Open(kind Kind) (View, error) {
	validate, err := NewValidator(kind, m.billers)
	if err != nil {
		return View{}, err
	}

	session, err := newSession(kind, validate, m.submitter, m.submitTimeout, m.logger)
	if err != nil {
		return View{}, err
	}

	m.mu.Lock()
	m.sessions[session.ID()] = session
	m.mu.Unlock()

	if m.logger != nil {
		m.logger.WithFields(logrus.Fields{
			"sessionID": session.ID(),
			"kind":      string(kind),
		}).Info("Workflow.Open")
	}

	return session.Snapshot(), nil
}

// Snapshot returns the current state of a session.
func (m *Manager) Snapshot(id uuid.UUID) (View, error) {
	session, err := m.get(id)
	if err != nil {
		return View{}, err
	}
	return session.Snapshot(), nil
}

// UpdateDraft replaces a session's draft. Legal only in Input.
func (m *Manager) UpdateDraft(id uuid.UUID, draft Request) (View, error) {
	session, err := m.get(id)
	if err != nil {
		return View{}, err
	}
	if err := session.UpdateDraft(draft); err != nil {
		return View{}, err
	}
	return session.Snapshot(), nil
}

// Advance moves a session from Input to Review. Validation failures keep the
// session in Input, surface an error notification, and return the field set.
func (m *Manager) Advance(ctx context.Context, id uuid.UUID) (View, FieldErrors, error) {
	session, err := m.get(id)
	if err != nil {
		return View{}, nil, err
	}

	fieldErrs, err := session.Advance()
	if err != nil {
		return View{}, nil, err
	}
	if len(fieldErrs) > 0 {
		m.sink.Notify(ctx, "Please fill in all required fields", notify.KindError)
	}
	return session.Snapshot(), fieldErrs, nil
}

// Back steps a session from Review to Input, or from a failed Result back to
// Review.
func (m *Manager) Back(id uuid.UUID) (View, error) {
	session, err := m.get(id)
	if err != nil {
		return View{}, err
	}
	if err := session.Back(); err != nil {
		return View{}, err
	}
	return session.Snapshot(), nil
}

// Confirm submits a session's draft and notifies the sink with the outcome.
func (m *Manager) Confirm(ctx context.Context, id uuid.UUID) (Outcome, error) {
	session, err := m.get(id)
	if err != nil {
		return Outcome{}, err
	}

	outcome, err := session.Confirm(ctx)
	if err != nil {
		return Outcome{}, err
	}

	switch outcome.Status {
	case OutcomeSuccess:
		m.sink.Notify(ctx, "Transfer completed successfully", notify.KindSuccess)
	case OutcomeFailure:
		m.sink.Notify(ctx, outcome.Message, notify.KindError)
	}
	return outcome, nil
}

// Close discards a session. Legal from any step; an in-flight submission
// completes and is discarded.
func (m *Manager) Close(id uuid.UUID) error {
	m.mu.Lock()
	session, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	session.close()
	if m.logger != nil {
		m.logger.WithField("sessionID", id).Info("Workflow.Close")
	}
	return nil
}

// PruneExpired closes sessions idle past the TTL and returns how many were
// removed. Sessions with a submission in flight are never pruned.
func (m *Manager) PruneExpired(now time.Time) int {
	deadline := now.Add(-m.sessionTTL)

	m.mu.Lock()
	var expired []*Session
	for id, session := range m.sessions {
		if session.idleSince(deadline) {
			expired = append(expired, session)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, session := range expired {
		session.close()
	}

	if len(expired) > 0 && m.logger != nil {
		m.logger.WithField("pruned", len(expired)).Info("Workflow.PruneExpired")
	}
	return len(expired)
}

// Run prunes expired sessions on a fixed interval until ctx is cancelled.
func (m *Manager) Run(ctx context.Context) error {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			m.PruneExpired(now)
		}
	}
}

func (m *Manager) get(id uuid.UUID) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}
