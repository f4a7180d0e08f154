package services

import (
	"context"
	"fmt"
	"time"

	"github.com/workearnest-byte/MoMo-More/configs"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/consts"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/logger"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/models"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/utils/worker"
)

// AcceptanceService runs the accept-offer step: pick the option, validate the
// disbursement choice, simulate the payout delay and write the confirmed
// acceptance. One acceptance may run per session at a time; a second submit
// while the first is pending is rejected, a resubmit after confirmation
// overwrites the record.
type AcceptanceService struct {
	workerPool          *worker.WorkerPool
	store               SessionStore
	ledgerPublisher     LedgerPublisher
	notificationService AcceptanceNotifier
}

func NewAcceptanceService(workerPool *worker.WorkerPool, store SessionStore, ledgerPublisher LedgerPublisher, notificationService AcceptanceNotifier) *AcceptanceService {
	return &AcceptanceService{
		workerPool:          workerPool,
		store:               store,
		ledgerPublisher:     ledgerPublisher,
		notificationService: notificationService,
	}
}

func (h *AcceptanceService) Accept(ctx context.Context, sessionID string, request models.AcceptanceRequest) (*models.LoanAcceptance, error) {
	response, found, err := h.store.GetTrustScore(ctx, sessionID)
	if err != nil {
		return nil, consts.ErrorSessionStoreUnavailable
	}
	if !found {
		return nil, consts.ErrorNoTrustScoreOnRecord
	}
	if !response.Approved {
		return nil, consts.ErrorNotApproved
	}

	selectedOption, err := SelectOption(response.LoanOptions, request.SelectedOptionIndex)
	if err != nil {
		return nil, err
	}
	method, err := ValidateDisbursement(request.DisbursementMethod, request.BankAccount)
	if err != nil {
		return nil, err
	}

	inFlightTTL := time.Duration(configs.ACCEPTANCE_IN_FLIGHT_TTL_SECS) * time.Second
	acquired, err := h.store.BeginAcceptance(ctx, sessionID, inFlightTTL)
	if err != nil {
		return nil, consts.ErrorSessionStoreUnavailable
	}
	if !acquired {
		return nil, consts.ErrorAcceptanceInProgress
	}

	// Simulated disbursement. An abandoned request clears the marker and
	// leaves no acceptance behind, so the session lands back on the offer.
	if err := h.simulateDisbursement(ctx); err != nil {
		if endErr := h.store.EndAcceptance(context.WithoutCancel(ctx), sessionID); endErr != nil {
			logger.Error(ctx, "Failed to clear in-flight marker after aborted disbursement: %v", endErr)
		}
		return nil, err
	}

	acceptance := &models.LoanAcceptance{
		TrustScoreResponse: *response,
		SelectedLoanOption: selectedOption,
		DisbursementMethod: method,
		TransactionRef:     fmt.Sprintf("%s%d", configs.TRANSACTION_REF_PREFIX, time.Now().UnixMilli()),
		AcceptedAt:         time.Now().UTC().Format(time.RFC3339),
	}
	if method == models.DisbursementBank {
		bankAccount := request.BankAccount
		acceptance.BankAccount = &bankAccount
	}

	if err := h.store.PutAcceptance(ctx, sessionID, acceptance); err != nil {
		logger.Error(ctx, "Failed to store acceptance for session: %v", err)
		if endErr := h.store.EndAcceptance(context.WithoutCancel(ctx), sessionID); endErr != nil {
			logger.Error(ctx, "Failed to clear in-flight marker after store failure: %v", endErr)
		}
		return nil, consts.ErrorSessionStoreUnavailable
	}
	if err := h.store.EndAcceptance(ctx, sessionID); err != nil {
		logger.Error(ctx, "Failed to clear in-flight marker: %v", err)
	}

	logger.Info(ctx, "Loan accepted transactionRef=%s amount=%v method=%s",
		acceptance.TransactionRef, selectedOption.Amount, method)

	// Ledger and SMS fan-out runs off the request path; failures there never
	// roll back a confirmed acceptance.
	confirmed := *acceptance
	publishCtx := context.WithoutCancel(ctx)
	h.workerPool.Submit(func() {
		if err := h.ledgerPublisher.PublishAcceptanceToKafka(publishCtx, confirmed); err != nil {
			logger.Error(publishCtx, "Ledger publish failed for %s: %v", confirmed.TransactionRef, err)
		}
		if err := h.notificationService.NotifyAcceptance(publishCtx, confirmed); err != nil {
			logger.Error(publishCtx, "Acceptance notification failed for %s: %v", confirmed.TransactionRef, err)
		}
	})

	return acceptance, nil
}

// simulateDisbursement stands in for the payout leg. It only has to take long
// enough for the processing screen to be observable and to respect request
// cancellation.
func (h *AcceptanceService) simulateDisbursement(ctx context.Context) error {
	delay := time.Duration(configs.DISBURSEMENT_DELAY_MS) * time.Millisecond
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		logger.Warn(ctx, "Disbursement simulation abandoned: %v", ctx.Err())
		return consts.ErrorDisbursementSimulationFailed
	case <-timer.C:
		return nil
	}
}
