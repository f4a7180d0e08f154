package services

import (
	"context"

	"github.com/workearnest-byte/MoMo-More/internal/pkg/consts"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/logger"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/models"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/utils"
)

// ApplicationService runs the apply step: validate the form, call the scoring
// gateway once, store the result. Validation failures never reach the gateway.
type ApplicationService struct {
	gateway TrustScoreGateway
	store   SessionStore
}

func NewApplicationService(gateway TrustScoreGateway, store SessionStore) *ApplicationService {
	return &ApplicationService{
		gateway: gateway,
		store:   store,
	}
}

// SubmitApplication validates and scores one application. Resubmitting
// replaces the stored scoring result and clears any acceptance from an
// earlier run, so the confirmation screen can never show a loan built on a
// superseded score.
func (h *ApplicationService) SubmitApplication(ctx context.Context, sessionID string, bearerToken string, request models.TrustScoreRequest) (*models.TrustScoreResponse, error) {
	cleanedMSISDN := utils.CleanMSISDN(request.MSISDN)
	if _, err := utils.IsValidMSISDN(cleanedMSISDN); err != nil {
		logger.Error(ctx, "MSISDN format not valid")
		return nil, consts.ErrorMsisdnFormatValidationFailed
	}
	if !request.ConsentGiven {
		logger.Error(ctx, "Application submitted without consent")
		return nil, consts.ErrorConsentNotGiven
	}

	request.MSISDN = cleanedMSISDN
	response, err := h.gateway.CalculateTrustScore(ctx, bearerToken, request)
	if err != nil {
		return nil, err
	}
	response.MSISDN = cleanedMSISDN

	if err := h.store.PutTrustScore(ctx, sessionID, response); err != nil {
		logger.Error(ctx, "Failed to store trust score for session: %v", err)
		return nil, consts.ErrorSessionStoreUnavailable
	}
	if err := h.store.RemoveAcceptance(ctx, sessionID); err != nil {
		logger.Error(ctx, "Failed to clear stale acceptance for session: %v", err)
		return nil, consts.ErrorSessionStoreUnavailable
	}

	logger.Info(ctx, "Application scored requestId=%s approved=%t", response.RequestID, response.Approved)
	return response, nil
}
