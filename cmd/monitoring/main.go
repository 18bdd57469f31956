package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/openroads/trafficmon/internal/pkg/config"
	"github.com/openroads/trafficmon/internal/pkg/database"
	"github.com/openroads/trafficmon/internal/pkg/health"
	"github.com/openroads/trafficmon/internal/pkg/logger"
	"github.com/openroads/trafficmon/internal/pkg/middleware"
	nsqpkg "github.com/openroads/trafficmon/internal/pkg/nsq"
	"github.com/openroads/trafficmon/internal/pkg/server"
	"github.com/openroads/trafficmon/services/monitoring/gateway"
	"github.com/openroads/trafficmon/services/monitoring/handler"
	"github.com/openroads/trafficmon/services/monitoring/repository"
	"github.com/openroads/trafficmon/services/monitoring/usecase"
)

func main() {
	appName := "monitoring-service"
	configPath := "config/monitoring.env"
	configs := config.InitConfig(configPath)

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer, optional by configuration
	var producer *nsqpkg.Producer
	if configs.NSQ.Enabled {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		defer producer.Stop()
	}

	// Initialize repository
	monitoringRepo := repository.NewMonitoringRepository(configs, postgresClient.GetDB(), redisClient, repository.ExactKeyer{})

	// Initialize gateway
	monitoringGW := gateway.NewMonitoringGW(producer)

	// Initialize usecase
	monitoringUC := usecase.NewMonitoringUC(configs, monitoringRepo, monitoringGW)

	// Initialize handlers
	h := handler.NewHandler(monitoringUC, configs)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(logger.EchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName,
		health.PostgresChecker(postgresClient),
		health.RedisChecker(redisClient),
	)

	// Register service routes
	h.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
