package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/omnicart/database-service/config"
	"github.com/omnicart/database-service/internal/pkg/broker"
	"github.com/omnicart/database-service/internal/pkg/cache"
	"github.com/omnicart/database-service/internal/pkg/database"
	"github.com/omnicart/database-service/internal/pkg/httputil"
	"github.com/omnicart/database-service/internal/pkg/logger"

	invH "github.com/omnicart/database-service/internal/inventory/handler"
	invRepoPkg "github.com/omnicart/database-service/internal/inventory/repository"
	invUCPkg "github.com/omnicart/database-service/internal/inventory/usecase"

	resH "github.com/omnicart/database-service/internal/reservation/handler"
	resListenerPkg "github.com/omnicart/database-service/internal/reservation/listener"
	resRepoPkg "github.com/omnicart/database-service/internal/reservation/repository"
	resUCPkg "github.com/omnicart/database-service/internal/reservation/usecase"

	ordH "github.com/omnicart/database-service/internal/order/handler"
	ordRepoPkg "github.com/omnicart/database-service/internal/order/repository"
	ordUCPkg "github.com/omnicart/database-service/internal/order/usecase"

	payH "github.com/omnicart/database-service/internal/payment/handler"
	payRepoPkg "github.com/omnicart/database-service/internal/payment/repository"
	payUCPkg "github.com/omnicart/database-service/internal/payment/usecase"

	shipH "github.com/omnicart/database-service/internal/shipment/handler"
	shipRepoPkg "github.com/omnicart/database-service/internal/shipment/repository"
	shipUCPkg "github.com/omnicart/database-service/internal/shipment/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.Config{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}
	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := database.NewPostgres(&database.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("connected to PostgreSQL", zap.String("db_name", cfg.Postgres.DBName))

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		appLogger.Fatal("could not ensure schema", zap.Error(err))
	}

	// 4. Initialize Redis (advisory availability cache)
	var redisClient *cache.RedisClient
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Fatal("could not connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		appLogger.Info("connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	// 5. Initialize Kafka
	var producer *broker.Producer
	var consumer *broker.Consumer
	if cfg.Kafka.Enabled {
		producer = broker.NewProducer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.ReservationTopic,
		})
		defer producer.Close()

		consumer = broker.NewConsumer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.OrderTopic,
			GroupID: cfg.Kafka.GroupID,
		})
		defer consumer.Close()
		appLogger.Info("connected to Kafka",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("reservation_topic", cfg.Kafka.ReservationTopic),
			zap.String("order_topic", cfg.Kafka.OrderTopic),
		)
	}

	// 6. Initialize Repositories
	lockTimeout := time.Duration(cfg.Reservation.LockTimeoutMS) * time.Millisecond
	resRepo := resRepoPkg.NewPGRepository(db, lockTimeout)
	invRepo := invRepoPkg.NewPGRepository(db)
	ordRepo := ordRepoPkg.NewPGRepository(db)
	payRepo := payRepoPkg.NewPGRepository(db)
	shipRepo := shipRepoPkg.NewPGRepository(db)

	// 7. Initialize UseCases
	cacheTTL := time.Duration(cfg.Reservation.AvailabilityCacheTTLMS) * time.Millisecond
	resUC := resUCPkg.NewReservationUseCase(resRepo, redisClient, producer, appLogger, cacheTTL)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, redisClient, appLogger)
	ordUC := ordUCPkg.NewOrderUseCase(ordRepo, appLogger)
	payUC := payUCPkg.NewPaymentUseCase(payRepo, ordRepo, appLogger)
	shipUC := shipUCPkg.NewShipmentUseCase(shipRepo, ordRepo, appLogger)

	// 8. Start order event listener
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if consumer != nil {
		listener := resListenerPkg.NewOrderListener(consumer, resUC, appLogger)
		go listener.Start(ctx)
	}

	// 9. Register Handlers
	mux := http.NewServeMux()
	resH.NewReservationHandler(resUC, appLogger).RegisterRoutes(mux)
	invH.NewInventoryHandler(invUC, appLogger).RegisterRoutes(mux)
	ordH.NewOrderHandler(ordUC, appLogger).RegisterRoutes(mux)
	payH.NewPaymentHandler(payUC, appLogger).RegisterRoutes(mux)
	shipH.NewShipmentHandler(shipUC, appLogger).RegisterRoutes(mux)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "database-service",
		})
	})

	// 10. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	server := &http.Server{Addr: port, Handler: mux}

	go func() {
		appLogger.Info("starting HTTP server", zap.String("port", port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("server shutdown error", zap.Error(err))
	}
	appLogger.Info("server stopped")
}
