package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"go.uber.org/zap"

	"load-analytics/internal/config"
	"load-analytics/internal/infrastructure/cache"
	"load-analytics/internal/infrastructure/database/postgres"
	"load-analytics/internal/ingestion"
	"load-analytics/internal/logger"
	"load-analytics/internal/routes"
	"load-analytics/internal/usecase/load"
	"load-analytics/internal/usecase/report"
	pkgmqtt "load-analytics/pkg/mqtt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	env := cfg.Server.Environment
	if env == "" {
		env = "development"
	}
	if err := logger.Init(env); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("environment", env),
		zap.String("report_timezone", cfg.Report.Timezone),
	)

	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		logger.Fatal("Database configuration is missing. Please set DB_HOST and DB_NAME environment variables.")
	}
	if cfg.JWT.Secret == "" {
		logger.Fatal("JWT secret is missing. Please set JWT_SECRET environment variable.")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	db, err := postgres.NewDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	loc := cfg.Report.Location()
	loadRepository := postgres.NewLoadRepository(db)
	loadService := load.NewService(loadRepository, loc)

	reportOpts := []report.Option{}
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			logger.Warn("Report cache disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			reportOpts = append(reportOpts, report.WithCache(cache.NewRedisReportCache(redisClient), cfg.Report.CacheTTL()))
		}
	}
	reportService := report.NewService(loadRepository, loc, reportOpts...)

	router := routes.SetupRoutes(ctx, cfg, routes.Dependencies{
		DB:            db,
		ReportService: reportService,
		LoadService:   loadService,
	})

	if cfg.MQTT.Enabled() {
		stopIngestion := startIngestion(cfg, loadService)
		defer stopIngestion()
	}

	host := cfg.Server.Host
	if host == "" {
		host = "0.0.0.0"
	}
	port := cfg.Server.Port
	if port == "" {
		port = "8080"
	}
	addr := net.JoinHostPort(host, port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start goroutine
	go func() {
		logger.Info("Server starting",
			zap.String("address", addr),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown Server ...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown server", zap.Error(err))
	}

	logger.Info("Server exited properly")
}

// startIngestion subscribes to telematics leg events. Failures leave the API running without ingestion.
func startIngestion(cfg *config.Config, recorder ingestion.TimeRecorder) func() {
	processor := ingestion.NewProcessor(recorder, cfg.Ingestion.Workers, cfg.Ingestion.BufferSize)
	processor.Start()

	clientConfig := pkgmqtt.DefaultConfig(cfg.MQTT.Broker, cfg.MQTT.ClientID)
	clientConfig.Username = cfg.MQTT.Username
	clientConfig.Password = cfg.MQTT.Password

	client, err := ingestion.NewMQTTIngestionClient(&ingestion.MQTTIngestionConfig{
		ClientConfig: clientConfig,
		Topic:        cfg.MQTT.Topic,
		QoS:          byte(cfg.MQTT.QoS),
	}, processor)
	if err == nil {
		err = client.Start()
	}
	if err != nil {
		logger.Error("Telematics ingestion disabled", zap.Error(err))
		processor.Stop()
		return func() {}
	}

	return func() {
		client.Stop()
		processor.Stop()

		metrics := processor.GetMetrics()
		logger.Info("Ingestion stopped",
			zap.Int64("processed", metrics.MessagesProcessed),
			zap.Int64("skipped", metrics.MessagesSkipped),
			zap.Int64("failed", metrics.MessagesFailed),
			zap.Int64("dropped", metrics.MessagesDropped),
		)
	}
}
