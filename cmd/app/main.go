package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boutique/api"
	"boutique/cmd"
	httpin "boutique/internal/adapters/in/http"
	"boutique/internal/adapters/out/eventlog"
	"boutique/internal/adapters/out/kafka"
	"boutique/internal/adapters/out/persistence"
	"boutique/internal/core/ports"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	gormDB := mustOpenDatabase(configs)

	publisher, closePublisher := newPublisher(configs, logger)
	defer closePublisher()

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		publisher,
		logger,
		time.Now,
	)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// .env is optional; real environment variables win.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:            os.Getenv("HTTP_PORT"),
		LogLevel:            os.Getenv("LOG_LEVEL"),
		DBDriver:            os.Getenv("DB_DRIVER"),
		DBPath:              os.Getenv("DB_PATH"),
		DBHost:              os.Getenv("DB_HOST"),
		DBPort:              os.Getenv("DB_PORT"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBSslMode:           os.Getenv("DB_SSLMODE"),
		KafkaBrokers:        os.Getenv("KAFKA_BROKERS"),
		KafkaWorkOrderTopic: os.Getenv("KAFKA_WORK_ORDER_TOPIC"),
		AlertsSchedule:      os.Getenv("ALERTS_SCHEDULE"),
	}
	return config.WithDefaults()
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	gormDB, err := persistence.Open(persistence.Options{
		Dialect: configs.Dialect(),
		DSN:     configs.DSN(),
	})
	if err != nil {
		log.Fatalf("connection error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = persistence.Migrate(ctx, gormDB, configs.Dialect()); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	return gormDB
}

// newPublisher returns the Kafka publisher when brokers are configured and a
// log publisher otherwise.
func newPublisher(configs cmd.Config, logger *slog.Logger) (ports.EventPublisher, func()) {
	brokers := configs.Brokers()
	if len(brokers) == 0 {
		return eventlog.NewPublisher(logger), func() {}
	}

	publisher, err := kafka.NewPublisher(brokers, configs.KafkaWorkOrderTopic, logger)
	if err != nil {
		log.Fatalf("kafka error: %v", err)
	}
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close kafka producer", "error", err)
		}
	}
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) {
	doc, err := api.Load()
	if err != nil {
		log.Fatalf("openapi error: %v", err)
	}
	if err = api.Register(doc); err != nil {
		log.Fatalf("swagger error: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(echoLogLevel(app.Config().SlogLevel()))

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))

	httpin.Register(e, app.CreateHTTPServer(), doc)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}
}

func echoLogLevel(level slog.Level) log.Lvl {
	switch {
	case level <= slog.LevelDebug:
		return log.DEBUG
	case level <= slog.LevelInfo:
		return log.INFO
	case level <= slog.LevelWarn:
		return log.WARN
	default:
		return log.ERROR
	}
}
