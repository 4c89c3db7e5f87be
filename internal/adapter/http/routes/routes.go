package routes

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "vitrine/docs"
	"vitrine/internal/adapter/http/handlers"
	"vitrine/internal/adapter/persistence/repository"
	"vitrine/internal/config"
	"vitrine/internal/infrastructure/database"
	"vitrine/internal/infrastructure/events"
	"vitrine/internal/infrastructure/listings"
	"vitrine/internal/infrastructure/lock"
	"vitrine/internal/infrastructure/navigation"
	"vitrine/internal/infrastructure/storage"
	"vitrine/internal/usecase"
	"vitrine/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const shutdownTimeout = 30 * time.Second

// Run will start the server and block until SIGINT or SIGTERM.
func Run() {
	cfg := config.Load()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	closers := getRoutes(cfg)
	defer closeAll(closers)

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		log.Printf("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}

// closeAll releases the clients opened by getRoutes. Kafka flushes its
// pending batch on Close.
func closeAll(closers []io.Closer) {
	for _, c := range closers {
		if err := c.Close(); err != nil {
			log.Printf("Close failed: %v", err)
		}
	}
}

func getRoutes(cfg config.Config) []io.Closer {
	var closers []io.Closer
	ctx := context.Background()
	ddb := database.ConnectDynamoDB(cfg.AWS)

	sessionRepo := repository.NewWizardSessionDynamoRepository(ddb, cfg.SessionsTable, cfg.SessionTTL)
	listingClient := listings.NewAPIClient(cfg.ListingsAPIURL, cfg.ListingsAPIToken, cfg.ListingsAPITimeout)
	navigator := navigation.NewDashboardNavigator(cfg.DashboardURL)

	var uploader interfaces.IMediaUploader
	s3Uploader, err := storage.NewS3Uploader(ctx, cfg)
	if err != nil {
		log.Printf("Media uploader not configured: %v", err)
	} else {
		uploader = s3Uploader
	}

	var submissionLock interfaces.ISubmissionLock
	if cfg.RedisAddr != "" {
		redisLock := lock.NewRedisSubmissionLock(cfg.RedisAddr, cfg.RedisPassword, cfg.SubmissionLockTTL)
		if err := redisLock.Ping(ctx); err != nil {
			log.Printf("Redis not reachable at %s: %v", cfg.RedisAddr, err)
		}
		submissionLock = redisLock
		closers = append(closers, redisLock)
	} else {
		log.Printf("REDIS_ADDR not set, using in-process submission lock")
		submissionLock = lock.NewLocalSubmissionLock(cfg.SubmissionLockTTL)
	}

	var publisher interfaces.IListingEventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := events.NewKafkaListingPublisher(cfg.KafkaBrokers, cfg.ListingEventTopic)
		publisher = kafkaPublisher
		closers = append(closers, kafkaPublisher)
	} else {
		log.Printf("KAFKA_BROKER not set, listing events disabled")
	}

	pipeline := usecase.NewSubmissionPipeline(listingClient, navigator, publisher)
	wizardUseCase := usecase.NewWizardUseCase(sessionRepo, listingClient, uploader, submissionLock, pipeline)

	wizardHandler := handlers.NewWizardHandler(wizardUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWizardRoutes(v1, wizardHandler)

	return closers
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
