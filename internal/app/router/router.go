package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"

	"github.com/workearnest-byte/MoMo-More/configs"
	"github.com/workearnest-byte/MoMo-More/internal/app/handlers"
	"github.com/workearnest-byte/MoMo-More/internal/app/middleware"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/downstreams"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/kafka/producer"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/notification"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/pubsub"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/services"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/session"
	"github.com/workearnest-byte/MoMo-More/internal/pkg/utils/worker"
)

func SetupRouter(workerPool *worker.WorkerPool, redisClient *redis.Client, pubsubPublisher *pubsub.PubSubPublisher) *gin.Engine {

	r := gin.Default()
	meter := otel.Meter(configs.SERVICE_NAME)
	r.Use(otelgin.Middleware(configs.SERVICE_NAME))
	r.Use(middleware.NewMetricMiddleware(meter))
	r.Use(middleware.AttachRequestDetails())

	redisAdapter := session.NewRedisStoreAdapter(redisClient)
	sessionTTL := time.Duration(configs.SESSION_TTL_MINUTES) * time.Minute
	sessionStore := session.NewStore(redisAdapter, sessionTTL)

	trustScoreGateway := downstreams.NewTrustScoreService()
	ledgerService := producer.NewLedgerService()

	// A publisher that failed to start must stay a nil interface, not a nil
	// pointer wrapped in one, so the notification service can skip it.
	var notifier pubsub.PubSubPublisherInterface
	if pubsubPublisher != nil {
		notifier = pubsubPublisher
	}
	notificationService := notification.NewNotificationService(notifier)

	applicationService := services.NewApplicationService(trustScoreGateway, sessionStore)
	acceptanceService := services.NewAcceptanceService(workerPool, sessionStore, ledgerService, notificationService)

	applicationHandler := handlers.NewApplicationHandler(applicationService)
	flowHandler := handlers.NewFlowHandler(sessionStore)
	acceptanceHandler := handlers.NewAcceptanceHandler(acceptanceService, sessionStore)

	r.POST("/MoMoMore/Application", middleware.ExtractBearerToken(), applicationHandler.SubmitApplication)
	r.GET("/MoMoMore/Flow/:screen", flowHandler.ResolveScreen)
	r.POST("/MoMoMore/Acceptance", acceptanceHandler.Accept)
	r.GET("/MoMoMore/Acceptance", acceptanceHandler.GetAcceptance)
	r.POST("/MoMoMore/Reset", flowHandler.Reset)

	// The scoring engine ships in-process by default; flipping it off points
	// the gateway at a standalone deployment on the same route shape.
	if configs.TRUSTSCORE_EMBEDDED {
		trustScoreHandler := handlers.NewTrustScoreHandler()
		r.POST("/routes/calculate", middleware.ExtractBearerToken(), trustScoreHandler.Calculate)
	}

	r.GET("/_healthz", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"status": "ok"})
	})

	return r
}
