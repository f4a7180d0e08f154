package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/workearnest-byte/MoMo-More/internal/pkg/models"
)

type MockTrustScoreGateway struct {
	mock.Mock
}

func (m *MockTrustScoreGateway) CalculateTrustScore(ctx context.Context, bearerToken string, request models.TrustScoreRequest) (*models.TrustScoreResponse, error) {
	args := m.Called(ctx, bearerToken, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TrustScoreResponse), args.Error(1)
}

type MockLedgerPublisher struct {
	mock.Mock
}

func (m *MockLedgerPublisher) PublishAcceptanceToKafka(ctx context.Context, acceptance models.LoanAcceptance) error {
	args := m.Called(ctx, acceptance)
	return args.Error(0)
}

type MockAcceptanceNotifier struct {
	mock.Mock
	notified chan models.LoanAcceptance
}

func NewMockAcceptanceNotifier() *MockAcceptanceNotifier {
	return &MockAcceptanceNotifier{notified: make(chan models.LoanAcceptance, 1)}
}

func (m *MockAcceptanceNotifier) NotifyAcceptance(ctx context.Context, acceptance models.LoanAcceptance) error {
	args := m.Called(ctx, acceptance)
	if m.notified != nil {
		m.notified <- acceptance
	}
	return args.Error(0)
}
