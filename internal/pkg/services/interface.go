package services

import (
	"context"
	"time"

	"github.com/workearnest-byte/MoMo-More/internal/pkg/flow"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/models"
)

type TrustScoreGateway interface {
	CalculateTrustScore(ctx context.Context, bearerToken string, request models.TrustScoreRequest) (*models.TrustScoreResponse, error)
}

type SessionStore interface {
	PutTrustScore(ctx context.Context, sessionID string, response *models.TrustScoreResponse) error
	GetTrustScore(ctx context.Context, sessionID string) (*models.TrustScoreResponse, bool, error)
	RemoveTrustScore(ctx context.Context, sessionID string) error
	PutAcceptance(ctx context.Context, sessionID string, acceptance *models.LoanAcceptance) error
	GetAcceptance(ctx context.Context, sessionID string) (*models.LoanAcceptance, bool, error)
	RemoveAcceptance(ctx context.Context, sessionID string) error
	BeginAcceptance(ctx context.Context, sessionID string, ttl time.Duration) (bool, error)
	EndAcceptance(ctx context.Context, sessionID string) error
	AcceptanceInFlight(ctx context.Context, sessionID string) (bool, error)
	Reset(ctx context.Context, sessionID string) error
	Snapshot(ctx context.Context, sessionID string) (flow.Snapshot, error)
}

type LedgerPublisher interface {
	PublishAcceptanceToKafka(ctx context.Context, acceptance models.LoanAcceptance) error
}

type AcceptanceNotifier interface {
	NotifyAcceptance(ctx context.Context, acceptance models.LoanAcceptance) error
}

type ApplicationServiceInterface interface {
	SubmitApplication(ctx context.Context, sessionID string, bearerToken string, request models.TrustScoreRequest) (*models.TrustScoreResponse, error)
}

type AcceptanceServiceInterface interface {
	Accept(ctx context.Context, sessionID string, request models.AcceptanceRequest) (*models.LoanAcceptance, error)
}
