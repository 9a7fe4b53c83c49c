package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"couriernet/cmd"
	echohttp "couriernet/internal/adapters/in/http"
	"couriernet/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cast"
	"gopkg.in/natefinch/lumberjack.v2"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config := getConfig()
	logger := newLogger(config)

	gormDB, err := gorm.Open(gorm_postgres.Open(config.DatabaseDSN()), &gorm.Config{})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err = postgres.AutoMigrate(gormDB); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})
	defer func() { _ = redisClient.Close() }()

	root := cmd.NewCompositionRoot(config, gormDB, redisClient, logger)

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Error("failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := newWebServer(&root)

	go func() {
		if serveErr := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); serveErr != nil && serveErr != http.ErrServerClosed {
			logger.Error("web server stopped", "error", serveErr)
			os.Exit(1)
		}
	}()
	logger.Info("shipment matching engine started", "port", config.HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err = e.Close(); err != nil {
		logger.Error("web server close failed", "error", err)
	}
}

func getConfig() cmd.Config {
	return cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:        goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          cast.ToInt(os.Getenv("REDIS_DB")),
		TrackingCacheTTL: time.Duration(cast.ToInt(os.Getenv("TRACKING_CACHE_TTL_SECONDS"))) * time.Second,
		LogFile:          os.Getenv("LOG_FILE"),
		LogMaxSizeMB:     cast.ToInt(os.Getenv("LOG_MAX_SIZE_MB")),
		LogMaxBackups:    cast.ToInt(os.Getenv("LOG_MAX_BACKUPS")),
		LogMaxAgeDays:    cast.ToInt(os.Getenv("LOG_MAX_AGE_DAYS")),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// newLogger writes structured JSON logs to stdout, and additionally to
// a size-rotated file when LOG_FILE is set.
func newLogger(config cmd.Config) *slog.Logger {
	var out io.Writer = os.Stdout
	if config.LogFile != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   config.LogFile,
			MaxSize:    config.LogMaxSizeMB,
			MaxBackups: config.LogMaxBackups,
			MaxAge:     config.LogMaxAgeDays,
			Compress:   true,
		})
	}
	return slog.New(slog.NewJSONHandler(out, nil))
}

func newWebServer(root *cmd.CompositionRoot) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := echohttp.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateAssignDriverCommandHandler(),
		root.CreateAcceptPickupCommandHandler(),
		root.CreateConfirmDeliveryCommandHandler(),
		root.CreateReportProblemCommandHandler(),
		root.CreateOverrideStatusCommandHandler(),
		root.CreateCreateDriverCommandHandler(),
		root.CreateHideOrderCommandHandler(),
		root.CreatePurgeHistoryCommandHandler(),
		root.CreateGetAvailableCoursesQueryHandler(),
		root.CreateGetUserOrdersQueryHandler(),
		root.CreateGetCarrierOrdersQueryHandler(),
		root.CreateGetOrderHistoryQueryHandler(),
		root.CreateGetCarrierStatsQueryHandler(),
		root.CreateGetCarrierDriversQueryHandler(),
		root.CreateTrackShipmentQueryHandler(),
	)
	server.RegisterRoutes(e)

	return e
}
