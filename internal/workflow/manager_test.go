package workflow

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-dashboard/internal/notify"
)

// fakeSubmitter counts invocations and optionally fails or blocks until
// released.
type fakeSubmitter struct {
	mu      sync.Mutex
	calls   int
	err     error
	release chan struct{}
}

func (f *fakeSubmitter) Submit(ctx context.Context, req Request) error {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return f.err
}

func (f *fakeSubmitter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// recordingSink captures notifications for assertions.
type recordingSink struct {
	mu       sync.Mutex
	messages []string
	kinds    []notify.Kind
}

func (s *recordingSink) Notify(ctx context.Context, message string, kind notify.Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, message)
	s.kinds = append(s.kinds, kind)
}

func newTestManager(t *testing.T, submitter Submitter, sink notify.Sink) *Manager {
	t.Helper()
	return NewManager(ManagerConfig{
		Billers:   newFakeBillers(),
		Submitter: submitter,
		Sink:      sink,
	})
}

// -- Open / Snapshot --

func TestOpen_StartsInInputWithEmptyDraft(t *testing.T) {
	m := newTestManager(t, &fakeSubmitter{}, nil)

	view, err := m.Open(KindSendMoney)

	require.NoError(t, err)
	assert.Equal(t, StepInput, view.Step)
	assert.Equal(t, KindSendMoney, view.Kind)
	assert.False(t, view.Processing)
	assert.Nil(t, view.Result)

	draft, ok := view.Draft.(SendMoney)
	require.True(t, ok)
	assert.Empty(t, draft.Recipient)
	assert.True(t, draft.Value.IsZero())
}

func TestOpen_UnknownKind(t *testing.T) {
	m := newTestManager(t, &fakeSubmitter{}, nil)

	_, err := m.Open(Kind("wire"))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestOpen_IndependentFlowsCoexist(t *testing.T) {
	m := newTestManager(t, &fakeSubmitter{}, nil)

	send, err := m.Open(KindSendMoney)
	require.NoError(t, err)
	transfer, err := m.Open(KindTransfer)
	require.NoError(t, err)

	assert.NotEqual(t, send.ID, transfer.ID)

	gotSend, err := m.Snapshot(send.ID)
	require.NoError(t, err)
	assert.Equal(t, KindSendMoney, gotSend.Kind)
}

func TestSnapshot_UnknownSession(t *testing.T) {
	m := newTestManager(t, &fakeSubmitter{}, nil)

	_, err := m.Snapshot(uuid.Must(uuid.NewV4()))
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// -- UpdateDraft --

func TestUpdateDraft_OnlyLegalInInput(t *testing.T) {
	m := newTestManager(t, &fakeSubmitter{}, nil)

	view, err := m.Open(KindSendMoney)
	require.NoError(t, err)

	draft := SendMoney{Recipient: "Jane", Value: decimal.RequireFromString("250.00")}
	_, err = m.UpdateDraft(view.ID, draft)
	require.NoError(t, err)

	_, _, err = m.Advance(context.Background(), view.ID)
	require.NoError(t, err)

	// Now in review: editing must be rejected
	_, err = m.UpdateDraft(view.ID, draft)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestUpdateDraft_KindMismatch(t *testing.T) {
	m := newTestManager(t, &fakeSubmitter{}, nil)

	view, err := m.Open(KindSendMoney)
	require.NoError(t, err)

	_, err = m.UpdateDraft(view.ID, Transfer{FromAccountID: "checking", ToAccountID: "savings"})
	assert.ErrorIs(t, err, ErrKindMismatch)
}

// -- Advance --

func TestAdvance_ValidationFailureStaysInInput(t *testing.T) {
	sink := &recordingSink{}
	m := newTestManager(t, &fakeSubmitter{}, sink)

	view, err := m.Open(KindTransfer)
	require.NoError(t, err)

	_, err = m.UpdateDraft(view.ID, Transfer{
		FromAccountID: "checking",
		ToAccountID:   "checking",
		Value:         decimal.RequireFromString("100.00"),
	})
	require.NoError(t, err)

	after, fieldErrs, err := m.Advance(context.Background(), view.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, fieldErrs)
	assert.Equal(t, StepInput, after.Step, "session remains in input")
	require.Len(t, sink.kinds, 1)
	assert.Equal(t, notify.KindError, sink.kinds[0])
}

func TestAdvance_ValidDraftReachesReview(t *testing.T) {
	m := newTestManager(t, &fakeSubmitter{}, nil)

	view, err := m.Open(KindSendMoney)
	require.NoError(t, err)

	_, err = m.UpdateDraft(view.ID, SendMoney{Recipient: "Jane", Value: decimal.RequireFromString("250.00")})
	require.NoError(t, err)

	after, fieldErrs, err := m.Advance(context.Background(), view.ID)
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, StepReview, after.Step)
}

func TestAdvance_IllegalOutsideInput(t *testing.T) {
	m := newTestManager(t, &fakeSubmitter{}, nil)

	view := openReviewedSendMoney(t, m)

	_, _, err := m.Advance(context.Background(), view.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

// -- Back --

func TestBack_PreservesDraft(t *testing.T) {
	m := newTestManager(t, &fakeSubmitter{}, nil)

	view := openReviewedSendMoney(t, m)

	after, err := m.Back(view.ID)
	require.NoError(t, err)
	assert.Equal(t, StepInput, after.Step)

	draft, ok := after.Draft.(SendMoney)
	require.True(t, ok)
	assert.Equal(t, "Jane", draft.Recipient)
	assert.True(t, draft.Value.Equal(decimal.RequireFromString("250.00")))
}

func TestBack_IllegalInInput(t *testing.T) {
	m := newTestManager(t, &fakeSubmitter{}, nil)

	view, err := m.Open(KindSendMoney)
	require.NoError(t, err)

	_, err = m.Back(view.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestBack_FromFailedResultReturnsToReview(t *testing.T) {
	m := newTestManager(t, &fakeSubmitter{err: errors.New("rail unavailable")}, nil)

	view := openReviewedSendMoney(t, m)

	outcome, err := m.Confirm(context.Background(), view.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailure, outcome.Status)

	after, err := m.Back(view.ID)
	require.NoError(t, err)
	assert.Equal(t, StepReview, after.Step)
	assert.Nil(t, after.Result)
}

// -- Confirm --

func TestConfirm_SuccessCarriesAmountAndCounterparty(t *testing.T) {
	sink := &recordingSink{}
	m := newTestManager(t, &fakeSubmitter{}, sink)

	view := openReviewedSendMoney(t, m)

	outcome, err := m.Confirm(context.Background(), view.ID)
	require.NoError(t, err)

	assert.Equal(t, OutcomeSuccess, outcome.Status)
	assert.True(t, outcome.Amount.Equal(decimal.RequireFromString("250.00")))
	assert.Equal(t, "Jane", outcome.Counterparty)

	after, err := m.Snapshot(view.ID)
	require.NoError(t, err)
	assert.Equal(t, StepResult, after.Step)
	require.NotNil(t, after.Result)
	assert.Equal(t, OutcomeSuccess, after.Result.Status)

	require.Len(t, sink.kinds, 1)
	assert.Equal(t, notify.KindSuccess, sink.kinds[0])
}

func TestConfirm_IllegalOutsideReview(t *testing.T) {
	m := newTestManager(t, &fakeSubmitter{}, nil)

	view, err := m.Open(KindSendMoney)
	require.NoError(t, err)

	_, err = m.Confirm(context.Background(), view.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestConfirm_DuplicateWhileInFlightSubmitsOnce(t *testing.T) {
	submitter := &fakeSubmitter{release: make(chan struct{})}
	m := newTestManager(t, submitter, nil)

	view := openReviewedSendMoney(t, m)

	firstDone := make(chan error, 1)
	go func() {
		_, err := m.Confirm(context.Background(), view.ID)
		firstDone <- err
	}()

	// Wait for the first confirm to reach the submitter
	require.Eventually(t, func() bool {
		return submitter.callCount() == 1
	}, time.Second, 5*time.Millisecond)

	_, err := m.Confirm(context.Background(), view.ID)
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(submitter.release)
	require.NoError(t, <-firstDone)
	assert.Equal(t, 1, submitter.callCount(), "exactly one submission")
}

func TestConfirm_FailureSurfacesAsResultFailure(t *testing.T) {
	sink := &recordingSink{}
	m := newTestManager(t, &fakeSubmitter{err: errors.New("rail unavailable")}, sink)

	view := openReviewedSendMoney(t, m)

	outcome, err := m.Confirm(context.Background(), view.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailure, outcome.Status)
	assert.Contains(t, outcome.Message, "rail unavailable")

	require.Len(t, sink.kinds, 1)
	assert.Equal(t, notify.KindError, sink.kinds[0])
}

func TestConfirm_TimeoutBecomesFailure(t *testing.T) {
	m := NewManager(ManagerConfig{
		Billers:       newFakeBillers(),
		Submitter:     &SimulatedSubmitter{Latency: time.Minute},
		SubmitTimeout: 10 * time.Millisecond,
	})

	view := openReviewedSendMoney(t, m)

	outcome, err := m.Confirm(context.Background(), view.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailure, outcome.Status)
}

// -- Close --

func TestClose_DiscardsSession(t *testing.T) {
	m := newTestManager(t, &fakeSubmitter{}, nil)

	view, err := m.Open(KindSendMoney)
	require.NoError(t, err)

	require.NoError(t, m.Close(view.ID))

	_, err = m.Snapshot(view.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, m.Close(view.ID), ErrSessionNotFound)
}

func TestClose_DuringSubmitDiscardsCompletion(t *testing.T) {
	submitter := &fakeSubmitter{release: make(chan struct{})}
	m := newTestManager(t, submitter, nil)

	view := openReviewedSendMoney(t, m)

	confirmDone := make(chan Outcome, 1)
	go func() {
		outcome, err := m.Confirm(context.Background(), view.ID)
		if err == nil {
			confirmDone <- outcome
		}
		close(confirmDone)
	}()

	require.Eventually(t, func() bool {
		return submitter.callCount() == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, m.Close(view.ID))

	// Releasing the pending submission must not panic or resurrect the session
	close(submitter.release)
	outcome, ok := <-confirmDone
	if ok {
		assert.Equal(t, OutcomeSuccess, outcome.Status)
	}

	_, err := m.Snapshot(view.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// -- Pruning --

func TestPruneExpired_RemovesIdleSessions(t *testing.T) {
	m := NewManager(ManagerConfig{
		Billers:    newFakeBillers(),
		Submitter:  &fakeSubmitter{},
		SessionTTL: time.Millisecond,
	})

	view, err := m.Open(KindSendMoney)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	pruned := m.PruneExpired(time.Now())

	assert.Equal(t, 1, pruned)
	_, err = m.Snapshot(view.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestPruneExpired_KeepsActiveSessions(t *testing.T) {
	m := NewManager(ManagerConfig{
		Billers:    newFakeBillers(),
		Submitter:  &fakeSubmitter{},
		SessionTTL: time.Hour,
	})

	_, err := m.Open(KindSendMoney)
	require.NoError(t, err)

	assert.Equal(t, 0, m.PruneExpired(time.Now()))
}

// openReviewedSendMoney opens a send-money flow with a valid draft and moves
// it to review.
func openReviewedSendMoney(t *testing.T, m *Manager) View {
	t.Helper()

	view, err := m.Open(KindSendMoney)
	require.NoError(t, err)

	_, err = m.UpdateDraft(view.ID, SendMoney{
		Recipient: "Jane",
		Value:     decimal.RequireFromString("250.00"),
	})
	require.NoError(t, err)

	after, fieldErrs, err := m.Advance(context.Background(), view.ID)
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.Equal(t, StepReview, after.Step)
	return after
}
