package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/workearnest-byte/MoMo-More/internal/pkg/consts"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/models"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/session"
)

func newSessionStore(t *testing.T) *session.Store {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return session.NewStore(session.NewRedisStoreAdapter(client), 30*time.Minute)
}

func scoredResponse(approved bool) *models.TrustScoreResponse {
	response := &models.TrustScoreResponse{
		RequestID:  "req-1",
		TrustScore: 100,
		Approved:   approved,
		CreatedAt:  "2026-08-29T10:00:00Z",
	}
	if approved {
		response.LoanOptions = []models.LoanOption{
			{Amount: 3150.38, InterestRatePercent: 2.5, TotalRepayment: 3292.14, TermDays: 180},
			{Amount: 6300.75, InterestRatePercent: 2.5, TotalRepayment: 6584.28, TermDays: 180},
			{Amount: 12601.5, InterestRatePercent: 2.5, TotalRepayment: 13168.57, TermDays: 180},
		}
	}
	return response
}

func TestSubmitApplicationStoresScore(t *testing.T) {
	store := newSessionStore(t)
	gateway := new(MockTrustScoreGateway)
	service := NewApplicationService(gateway, store)
	ctx := context.Background()

	// The gateway must see the cleaned MSISDN.
	cleaned := models.TrustScoreRequest{MSISDN: "+27812345678", ConsentGiven: true}
	gateway.On("CalculateTrustScore", mock.Anything, "token-1", cleaned).Return(scoredResponse(true), nil)

	// A stale acceptance from an earlier run must not survive a resubmit.
	assert.NoError(t, store.PutAcceptance(ctx, "s1", &models.LoanAcceptance{TransactionRef: "MOMO-old"}))

	response, err := service.SubmitApplication(ctx, "s1", "token-1", models.TrustScoreRequest{
		MSISDN:       "+27 81 234 5678",
		ConsentGiven: true,
	})
	assert.NoError(t, err)
	assert.True(t, response.Approved)
	assert.Equal(t, "+27812345678", response.MSISDN)

	stored, found, err := store.GetTrustScore(ctx, "s1")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "req-1", stored.RequestID)
	assert.Equal(t, "+27812345678", stored.MSISDN)

	_, found, err = store.GetAcceptance(ctx, "s1")
	assert.NoError(t, err)
	assert.False(t, found)

	gateway.AssertExpectations(t)
}

func TestSubmitApplicationValidation(t *testing.T) {
	store := newSessionStore(t)
	gateway := new(MockTrustScoreGateway)
	service := NewApplicationService(gateway, store)
	ctx := context.Background()

	_, err := service.SubmitApplication(ctx, "s1", "", models.TrustScoreRequest{MSISDN: "12345", ConsentGiven: true})
	assert.Equal(t, consts.ErrorMsisdnFormatValidationFailed, err)

	_, err = service.SubmitApplication(ctx, "s1", "", models.TrustScoreRequest{MSISDN: "0812345678", ConsentGiven: false})
	assert.Equal(t, consts.ErrorConsentNotGiven, err)

	// Nothing may reach the gateway and nothing may be stored.
	gateway.AssertNotCalled(t, "CalculateTrustScore", mock.Anything, mock.Anything, mock.Anything)
	_, found, getErr := store.GetTrustScore(ctx, "s1")
	assert.NoError(t, getErr)
	assert.False(t, found)
}

func TestSubmitApplicationGatewayFailure(t *testing.T) {
	store := newSessionStore(t)
	gateway := new(MockTrustScoreGateway)
	service := NewApplicationService(gateway, store)
	ctx := context.Background()

	gateway.On("CalculateTrustScore", mock.Anything, "", mock.Anything).Return(nil, consts.ErrorTrustScoreGatewayTimeout)

	_, err := service.SubmitApplication(ctx, "s1", "", models.TrustScoreRequest{MSISDN: "0812345678", ConsentGiven: true})
	assert.Equal(t, consts.ErrorTrustScoreGatewayTimeout, err)

	// A failed call leaves no partial record behind.
	_, found, getErr := store.GetTrustScore(ctx, "s1")
	assert.NoError(t, getErr)
	assert.False(t, found)
}
