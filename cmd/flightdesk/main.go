package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"flightdesk/cfg"
	"flightdesk/internal/flight"
	"flightdesk/pkg/cache"
	"flightdesk/pkg/db"
	"flightdesk/pkg/flightclient"
	"flightdesk/pkg/idgen"
	"flightdesk/pkg/logger"
	"flightdesk/pkg/telemetry"

	_ "flightdesk/cmd/flightdesk/docs" // swagger docs

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// @title           Flightdesk API
// @version         1.0
// @description     Flight search over the InnoTravel API with normalized itineraries.
// @BasePath        /
// @schemes         http
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	// ============
	// Otel
	// ============
	if config.Observability.OTLPEndpoint != "" {
		shutdownOtel, err := telemetry.Init(ctx, telemetry.Config{
			OTLPEndpoint: config.Observability.OTLPEndpoint,
			ServiceName:  config.Observability.ServiceName,
			Environment:  config.AppEnv,
		}, zlogger)
		if err != nil {
			zlogger.Warn("continuing without tracing/metrics", logger.Field{Key: "err", Value: err})
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdownOtel(ctx); err != nil {
					zlogger.Error("failed to shutdown OpenTelemetry", logger.Field{Key: "err", Value: err})
				}
			}()
		}
	}

	// ============
	// Cache
	// ============
	redis, err := cache.NewRedisCache(ctx, cache.RedisConfig{
		Addr:     config.RedisConfig.Host + ":" + config.RedisConfig.Port,
		Password: config.RedisConfig.Password,
	})
	if err != nil {
		log.Fatal(err)
	}

	// ============
	// Database
	// ============
	var audit flight.AuditLog
	if config.Postgres.Host != "" {
		dsn := db.PostgresConfig(config.Postgres).DSN()
		if err := db.Migrate("file://db/migrations", dsn); err != nil {
			log.Fatal(err)
		}
		sqlClient, err := db.NewSQLClient(ctx, "postgres", dsn)
		if err != nil {
			log.Fatal(err)
		}
		defer sqlClient.Close()
		audit = flight.NewAuditRepository(sqlClient)
	} else {
		zlogger.Warn("POSTGRES_HOST not set, search audit log disabled")
	}

	// ============
	// ID generator
	// ============
	ids, err := idgen.NewSnowflakeGenerator(config.SnowflakeNodeID)
	if err != nil {
		log.Fatal(err)
	}

	// ============
	// External Service
	// ============
	httpClient := &http.Client{
		Timeout: time.Duration(config.FlightAPI.TimeoutSeconds) * time.Second,
	}
	innoTravelClient := flightclient.NewInnoTravelClient(httpClient, flightclient.Config{
		BaseURL:       config.FlightAPI.BaseURL,
		SecretCode:    config.FlightAPI.SecretCode,
		APIKey:        config.FlightAPI.APIKey,
		RatePerSecond: config.FlightAPI.RatePerSecond,
	}, zlogger)

	// ============
	// Internal Service
	// ============
	flightSvc := flight.NewService(innoTravelClient, redis, config.SearchRetentionMinutes, audit, ids, zlogger)
	flightHandler := flight.NewFlightHandler(flightSvc)

	// ============
	// HTTP
	// ============
	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(config.Observability.ServiceName))
	r.Use(logger.GinMiddleware(zlogger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	flightHandler.RegisterRoutes(r)
	initSwagger(r)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", config.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlogger.Info("server listening", logger.Field{Key: "addr", Value: srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlogger.Error("server shutdown failed", logger.Field{Key: "err", Value: err})
	}
}

func initSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		html := `<!DOCTYPE html>
<html>
<head>
    <title>API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <script id="api-reference" data-url="/swagger/doc.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
		c.String(200, html)
	})
}
