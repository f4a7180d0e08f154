package producer

import (
	"context"
	"strings"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"github.com/workearnest-byte/MoMo-More/configs"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/logger"
)

type Producer struct {
	producer *kafka.Producer
	topic    string
}

var KafkaProducer *Producer

func NewKafkaProducer(topic string) (*Producer, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":  configs.KAFKA_SERVER,
		"security.protocol":  configs.KAFKA_SECURITY_PROTOCOL,
		"sasl.mechanisms":    configs.KAFKA_SASL_MECHANISM,
		"sasl.username":      configs.KAFKA_SASL_USERNAME,
		"sasl.password":      configs.KAFKA_SASL_PASSWORD,
		"session.timeout.ms": configs.KAFKA_SESSION_TIMEOUT_MS,
		"client.id":          configs.KAFKA_CLIENT_ID,
		"log_level":          0})
	if err != nil {
		return nil, err
	}

	return &Producer{
		producer: p,
		topic:    topic,
	}, nil
}

// SendMessage publishes one ledger row, keyed by its transaction reference.
// The value is the row's fields joined as CSV, matching the ledger consumer's
// expected format. Retries back off linearly before giving up.
func SendMessage(ctx context.Context, kafkaProducer *Producer, fields []string, retryCount int) error {
	transactionRef := fields[0]
	kafkaMsg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &kafkaProducer.topic, Partition: kafka.PartitionAny},
		Value:          []byte(strings.Join(fields, ",")),
		Key:            []byte(transactionRef),
	}

	var lastErr error
	for attempt := 0; attempt <= retryCount; attempt++ {
		lastErr = kafkaProducer.producer.Produce(kafkaMsg, nil)
		if lastErr == nil {
			logger.Info(ctx, "kafka ledger message sent transactionRef=%s", transactionRef)
			kafkaProducer.producer.Flush(15 * 1000)
			return nil
		}
		logger.Error(ctx, "Failed to send Kafka message on attempt %d: %v", attempt+1, lastErr)
		time.Sleep(time.Second * time.Duration(attempt+1))
	}
	return lastErr
}

func (p *Producer) Close() {
	p.producer.Close()
}
