package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/workearnest-byte/MoMo-More/internal/pkg/consts"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/models"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(NewRedisStoreAdapter(client), 30*time.Minute), mr
}

func approvedResponse() *models.TrustScoreResponse {
	return &models.TrustScoreResponse{
		RequestID:  "req-1",
		MSISDN:     "0812345678",
		TrustScore: 100,
		Approved:   true,
		LoanOptions: []models.LoanOption{
			{Amount: 500, InterestRatePercent: 2.5, TotalRepayment: 522.5, TermDays: 180},
			{Amount: 1000, InterestRatePercent: 2.5, TotalRepayment: 1045, TermDays: 180},
		},
		CreatedAt: "2026-08-29T10:00:00Z",
	}
}

func TestTrustScoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, found, err := store.GetTrustScore(ctx, "s1")
	assert.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, store.PutTrustScore(ctx, "s1", approvedResponse()))

	got, found, err := store.GetTrustScore(ctx, "s1")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "req-1", got.RequestID)
	assert.True(t, got.Approved)
	assert.Len(t, got.LoanOptions, 2)

	// Sessions do not leak into each other.
	_, found, err = store.GetTrustScore(ctx, "s2")
	assert.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, store.RemoveTrustScore(ctx, "s1"))
	_, found, err = store.GetTrustScore(ctx, "s1")
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestAcceptanceRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	bankAccount := "12345678"
	acceptance := &models.LoanAcceptance{
		TrustScoreResponse: *approvedResponse(),
		SelectedLoanOption: models.LoanOption{Amount: 1000, InterestRatePercent: 2.5, TotalRepayment: 1045, TermDays: 180},
		DisbursementMethod: models.DisbursementBank,
		BankAccount:        &bankAccount,
		TransactionRef:     "MOMO1756464000000",
		AcceptedAt:         "2026-08-29T10:05:00Z",
	}
	assert.NoError(t, store.PutAcceptance(ctx, "s1", acceptance))

	got, found, err := store.GetAcceptance(ctx, "s1")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "MOMO1756464000000", got.TransactionRef)
	assert.NotNil(t, got.BankAccount)
	assert.Equal(t, "12345678", *got.BankAccount)

	// Last write wins.
	acceptance.TransactionRef = "MOMO1756464999999"
	acceptance.DisbursementMethod = models.DisbursementMoMo
	acceptance.BankAccount = nil
	assert.NoError(t, store.PutAcceptance(ctx, "s1", acceptance))

	got, found, err = store.GetAcceptance(ctx, "s1")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "MOMO1756464999999", got.TransactionRef)
	assert.Nil(t, got.BankAccount)
}

func TestUnparseableRecordReadsAsAbsent(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	mr.Set(NewRedisKeyBuilder().TrustScoreKey("s1"), "{not json")

	_, found, err := store.GetTrustScore(ctx, "s1")
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestBeginAcceptanceIsExclusive(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	acquired, err := store.BeginAcceptance(ctx, "s1", 30*time.Second)
	assert.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = store.BeginAcceptance(ctx, "s1", 30*time.Second)
	assert.NoError(t, err)
	assert.False(t, acquired)

	inFlight, err := store.AcceptanceInFlight(ctx, "s1")
	assert.NoError(t, err)
	assert.True(t, inFlight)

	assert.NoError(t, store.EndAcceptance(ctx, "s1"))
	acquired, err = store.BeginAcceptance(ctx, "s1", 30*time.Second)
	assert.NoError(t, err)
	assert.True(t, acquired)

	// The marker must expire on its own if never cleared.
	mr.FastForward(31 * time.Second)
	inFlight, err = store.AcceptanceInFlight(ctx, "s1")
	assert.NoError(t, err)
	assert.False(t, inFlight)
}

func TestReset(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.PutTrustScore(ctx, "s1", approvedResponse()))
	assert.NoError(t, store.PutAcceptance(ctx, "s1", &models.LoanAcceptance{TransactionRef: "MOMO1"}))
	_, err := store.BeginAcceptance(ctx, "s1", 30*time.Second)
	assert.NoError(t, err)

	assert.NoError(t, store.Reset(ctx, "s1"))

	snap, err := store.Snapshot(ctx, "s1")
	assert.NoError(t, err)
	assert.False(t, snap.HasTrustScore)
	assert.False(t, snap.HasAcceptance)
	assert.False(t, snap.AcceptanceInFlight)
}

func TestSnapshot(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	snap, err := store.Snapshot(ctx, "s1")
	assert.NoError(t, err)
	assert.Equal(t, false, snap.HasTrustScore)

	response := approvedResponse()
	response.Approved = false
	response.LoanOptions = nil
	assert.NoError(t, store.PutTrustScore(ctx, "s1", response))

	snap, err = store.Snapshot(ctx, "s1")
	assert.NoError(t, err)
	assert.True(t, snap.HasTrustScore)
	assert.False(t, snap.Approved)

	assert.NoError(t, store.PutAcceptance(ctx, "s1", &models.LoanAcceptance{TransactionRef: "MOMO1"}))
	snap, err = store.Snapshot(ctx, "s1")
	assert.NoError(t, err)
	assert.True(t, snap.HasAcceptance)
}

func TestSnapshotWrapsTransportErrors(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectGet(NewRedisKeyBuilder().TrustScoreKey("s1")).SetErr(errors.New("connection refused"))

	store := NewStore(NewRedisStoreAdapter(client), 30*time.Minute)
	_, err := store.Snapshot(context.Background(), "s1")
	assert.Equal(t, consts.ErrorSessionStoreUnavailable, err)
}
