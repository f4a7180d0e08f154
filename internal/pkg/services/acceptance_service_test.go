package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/workearnest-byte/MoMo-More/configs"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/consts"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/models"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/session"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/utils/worker"
)

func newAcceptanceFixture(t *testing.T) (*AcceptanceService, *session.Store, *MockLedgerPublisher, *MockAcceptanceNotifier) {
	configs.DISBURSEMENT_DELAY_MS = 0
	configs.ACCEPTANCE_IN_FLIGHT_TTL_SECS = 30
	configs.TRANSACTION_REF_PREFIX = "MOMO"

	store := newSessionStore(t)
	ledger := new(MockLedgerPublisher)
	notifier := NewMockAcceptanceNotifier()
	pool := worker.NewWorkerPool(1)
	t.Cleanup(pool.Stop)

	return NewAcceptanceService(pool, store, ledger, notifier), store, ledger, notifier
}

func TestAcceptConfirmsLoan(t *testing.T) {
	service, store, ledger, notifier := newAcceptanceFixture(t)
	ctx := context.Background()

	ledger.On("PublishAcceptanceToKafka", mock.Anything, mock.Anything).Return(nil)
	notifier.On("NotifyAcceptance", mock.Anything, mock.Anything).Return(nil)

	assert.NoError(t, store.PutTrustScore(ctx, "s1", scoredResponse(true)))

	acceptance, err := service.Accept(ctx, "s1", models.AcceptanceRequest{
		SelectedOptionIndex: 1,
		DisbursementMethod:  "momo",
	})
	assert.NoError(t, err)
	assert.Equal(t, 6300.75, acceptance.SelectedLoanOption.Amount)
	assert.Equal(t, models.DisbursementMoMo, acceptance.DisbursementMethod)
	assert.Nil(t, acceptance.BankAccount)
	assert.True(t, strings.HasPrefix(acceptance.TransactionRef, "MOMO"))
	assert.NotEmpty(t, acceptance.AcceptedAt)

	stored, found, err := store.GetAcceptance(ctx, "s1")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, acceptance.TransactionRef, stored.TransactionRef)

	inFlight, err := store.AcceptanceInFlight(ctx, "s1")
	assert.NoError(t, err)
	assert.False(t, inFlight)

	// Ledger and SMS fan-out runs on the worker pool.
	select {
	case published := <-notifier.notified:
		assert.Equal(t, acceptance.TransactionRef, published.TransactionRef)
	case <-time.After(2 * time.Second):
		t.Fatal("acceptance notification never published")
	}
	ledger.AssertExpectations(t)
}

func TestAcceptBankDisbursement(t *testing.T) {
	service, store, ledger, notifier := newAcceptanceFixture(t)
	ctx := context.Background()

	ledger.On("PublishAcceptanceToKafka", mock.Anything, mock.Anything).Return(nil)
	notifier.On("NotifyAcceptance", mock.Anything, mock.Anything).Return(nil)

	assert.NoError(t, store.PutTrustScore(ctx, "s1", scoredResponse(true)))

	acceptance, err := service.Accept(ctx, "s1", models.AcceptanceRequest{
		SelectedOptionIndex: 0,
		DisbursementMethod:  "bank",
		BankAccount:         "12345678",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.DisbursementBank, acceptance.DisbursementMethod)
	assert.NotNil(t, acceptance.BankAccount)
	assert.Equal(t, "12345678", *acceptance.BankAccount)
}

func TestAcceptPreconditions(t *testing.T) {
	service, store, _, _ := newAcceptanceFixture(t)
	ctx := context.Background()

	// No scoring result stored.
	_, err := service.Accept(ctx, "s1", models.AcceptanceRequest{DisbursementMethod: "momo"})
	assert.Equal(t, consts.ErrorNoTrustScoreOnRecord, err)

	// Stored but not approved.
	assert.NoError(t, store.PutTrustScore(ctx, "s2", scoredResponse(false)))
	_, err = service.Accept(ctx, "s2", models.AcceptanceRequest{DisbursementMethod: "momo"})
	assert.Equal(t, consts.ErrorNotApproved, err)

	// Approved, but the payload is bad.
	assert.NoError(t, store.PutTrustScore(ctx, "s3", scoredResponse(true)))
	_, err = service.Accept(ctx, "s3", models.AcceptanceRequest{SelectedOptionIndex: 9, DisbursementMethod: "momo"})
	assert.Equal(t, consts.ErrorOptionIndexOutOfRange, err)
	_, err = service.Accept(ctx, "s3", models.AcceptanceRequest{SelectedOptionIndex: 0, DisbursementMethod: "bank"})
	assert.Equal(t, consts.ErrorBankAccountRequired, err)
	_, err = service.Accept(ctx, "s3", models.AcceptanceRequest{SelectedOptionIndex: 0, DisbursementMethod: "cash"})
	assert.Equal(t, consts.ErrorUnknownDisbursementMethod, err)

	// Failed attempts leave no record and no marker.
	_, found, getErr := store.GetAcceptance(ctx, "s3")
	assert.NoError(t, getErr)
	assert.False(t, found)
	inFlight, flightErr := store.AcceptanceInFlight(ctx, "s3")
	assert.NoError(t, flightErr)
	assert.False(t, inFlight)
}

func TestAcceptRejectsConcurrentAttempt(t *testing.T) {
	service, store, _, _ := newAcceptanceFixture(t)
	ctx := context.Background()

	assert.NoError(t, store.PutTrustScore(ctx, "s1", scoredResponse(true)))

	acquired, err := store.BeginAcceptance(ctx, "s1", 30*time.Second)
	assert.NoError(t, err)
	assert.True(t, acquired)

	_, err = service.Accept(ctx, "s1", models.AcceptanceRequest{SelectedOptionIndex: 0, DisbursementMethod: "momo"})
	assert.Equal(t, consts.ErrorAcceptanceInProgress, err)
}

func TestAcceptAbandonedMidDisbursement(t *testing.T) {
	service, store, _, _ := newAcceptanceFixture(t)
	configs.DISBURSEMENT_DELAY_MS = 200

	ctx := context.Background()
	assert.NoError(t, store.PutTrustScore(ctx, "s1", scoredResponse(true)))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	_, err := service.Accept(cancelled, "s1", models.AcceptanceRequest{SelectedOptionIndex: 0, DisbursementMethod: "momo"})
	assert.Equal(t, consts.ErrorDisbursementSimulationFailed, err)

	// The abandoned run must leave the session retryable: no record, no marker.
	_, found, getErr := store.GetAcceptance(ctx, "s1")
	assert.NoError(t, getErr)
	assert.False(t, found)
	inFlight, flightErr := store.AcceptanceInFlight(ctx, "s1")
	assert.NoError(t, flightErr)
	assert.False(t, inFlight)
}

func TestAcceptResubmitOverwrites(t *testing.T) {
	service, store, ledger, notifier := newAcceptanceFixture(t)
	ctx := context.Background()

	ledger.On("PublishAcceptanceToKafka", mock.Anything, mock.Anything).Return(nil)
	notifier.On("NotifyAcceptance", mock.Anything, mock.Anything).Return(nil)

	assert.NoError(t, store.PutTrustScore(ctx, "s1", scoredResponse(true)))

	first, err := service.Accept(ctx, "s1", models.AcceptanceRequest{SelectedOptionIndex: 0, DisbursementMethod: "momo"})
	assert.NoError(t, err)
	<-notifier.notified

	second, err := service.Accept(ctx, "s1", models.AcceptanceRequest{SelectedOptionIndex: 2, DisbursementMethod: "momo"})
	assert.NoError(t, err)
	<-notifier.notified

	stored, found, err := store.GetAcceptance(ctx, "s1")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, second.SelectedLoanOption, stored.SelectedLoanOption)
	assert.NotEqual(t, first.SelectedLoanOption, stored.SelectedLoanOption)
}
