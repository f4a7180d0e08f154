// Package notification pushes the acceptance-confirmed SMS request onto the
// notification topic. Delivery to the subscriber is the SMS gateway's problem;
// this side only guarantees a well-formed payload.
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/workearnest-byte/MoMo-More/configs"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/common"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/logger"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/models"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/pubsub"
)

// NotificationService handles all notification-related operations
type NotificationService struct {
	pubsubPublisher pubsub.PubSubPublisherInterface
}

func NewNotificationService(pubsubPublisher pubsub.PubSubPublisherInterface) *NotificationService {
	return &NotificationService{
		pubsubPublisher: pubsubPublisher,
	}
}

// NotifyAcceptance publishes the confirmation SMS request for an accepted
// loan. The pattern id picks the template; the parameters fill its slots.
func (h *NotificationService) NotifyAcceptance(ctx context.Context, acceptance models.LoanAcceptance) error {
	if !configs.PUBSUB_ENABLED || h.pubsubPublisher == nil {
		logger.Debug("PubSub disabled, skipping acceptance notification for %s", acceptance.TransactionRef)
		return nil
	}

	payload := models.SmsNotificationRequestPayload{
		NotificationParameter: map[string]string{
			"transactionRef": acceptance.TransactionRef,
			"loanAmount":     common.FormatFloat(acceptance.SelectedLoanOption.Amount),
			"totalRepayment": common.FormatFloat(acceptance.SelectedLoanOption.TotalRepayment),
			"termDays":       fmt.Sprintf("%d", acceptance.SelectedLoanOption.TermDays),
		},
		PatternID:          configs.ACCEPTANCE_CONFIRMED_PATTERN,
		SourceAddress:      configs.SMS_SOURCE_ADDRESS,
		DestinationAddress: acceptance.TrustScoreResponse.MSISDN,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error(ctx, "Failed to marshal SMS notification request: %v", err)
		return fmt.Errorf("failed to marshal SMS request: %w", err)
	}

	topicName := configs.PUBSUB_TOPIC

	// Separate timeout so a cancelled request context cannot abort the publish.
	pubsubCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	messageID, err := h.pubsubPublisher.Publish(pubsubCtx, topicName, payloadBytes, nil)
	if err != nil {
		logger.Error(ctx, "Failed to publish SMS notification to PubSub topic %s: %v", topicName, err)
		return fmt.Errorf("failed to publish to pubsub: %w", err)
	}

	logger.Info(ctx, "Successfully published SMS notification to PubSub topic %s with message ID: %s", topicName, messageID)
	return nil
}
