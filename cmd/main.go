package main

import (
	"context"
	"log"
	"strconv"

	"github.com/workearnest-byte/MoMo-More/configs"
	"github.com/workearnest-byte/MoMo-More/internal/app/router"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/kafka/producer"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/logger"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/otel"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/pubsub"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/redis"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/utils/worker"
)

func main() {

	// Load Environment Variables
	err := configs.LoadEnv()
	if err != nil {
		logger.Debug("Error loading .env file: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	//setup otel collector
	_, err = otel.Setup(ctx, configs.SERVICE_NAME, configs.OTEL_URL)
	if err != nil {
		logger.Error(ctx, "Error setting up OTLP: %v", err)
	}

	if configs.KAFKA_ENABLED {
		kafkaProducer, err := producer.NewKafkaProducer(configs.KAFKA_TOPIC)
		if err != nil {
			logger.Error(ctx, "failed to create Kafka Producer error: %v", err)
		} else {
			logger.Info(ctx, "Kafka Producer Created")
			producer.KafkaProducer = kafkaProducer
			defer kafkaProducer.Close()
		}
	}

	var pubsubPublisher *pubsub.PubSubPublisher
	pubsubConfig := configs.GetPubSubConfig()
	if pubsubConfig.Enabled {
		pubsubPublisher, err = pubsub.NewPubSubPublisher(ctx, pubsubConfig.ProjectID)
		if err != nil {
			logger.Error(ctx, "Failed to create Pub/Sub Publisher: %v", err)
		} else {
			defer pubsubPublisher.Close()
			logger.Info(ctx, "Pub/Sub Publisher Created")
		}
	}

	numberOfWorkers, er := strconv.Atoi(configs.WORKER_POOL)
	if er != nil {
		logger.Error(ctx, er)
	}

	// Connect to Redis
	redisClient, err := redis.ConnectToRedis(ctx, configs.GetRedisConfig(), nil)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Disconnect(redisClient.Client)

	workerPool := worker.NewWorkerPool(numberOfWorkers)
	defer workerPool.Stop()

	r := router.SetupRouter(workerPool, redisClient.Client, pubsubPublisher)

	port := configs.SERVER_PORT

	if err := r.Run(":" + port); err != nil {
		logger.Error(ctx, "Failed to run server: %v", err)
	}
}
