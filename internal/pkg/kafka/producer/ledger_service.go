package producer

import (
	"context"

	"github.com/workearnest-byte/MoMo-More/configs"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/common"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/logger"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/models"
)

const ledgerRetryCount = 2

// LedgerService publishes confirmed acceptances to the ledger topic. The
// session store stays the source of truth for the flow; the ledger is an
// after-the-fact audit trail, so publishing is best effort and never blocks
// the acceptance response.
type LedgerService struct {
}

func NewLedgerService() *LedgerService {
	return &LedgerService{}
}

func (k *LedgerService) PublishAcceptanceToKafka(ctx context.Context, acceptance models.LoanAcceptance) error {
	if !configs.KAFKA_ENABLED || KafkaProducer == nil {
		logger.Debug("Kafka disabled, skipping ledger publish for %s", acceptance.TransactionRef)
		return nil
	}

	fields := common.SerializeAcceptanceLedgerFields(acceptance)
	if err := SendMessage(ctx, KafkaProducer, fields, ledgerRetryCount); err != nil {
		logger.Error(ctx, "Failed to publish acceptance %s to ledger topic: %v", acceptance.TransactionRef, err)
		return err
	}
	return nil
}
