package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/kelompok6/retail-pos/docs"
	"github.com/kelompok6/retail-pos/internal/app"
	"github.com/kelompok6/retail-pos/internal/auth"
	"github.com/kelompok6/retail-pos/internal/insight"
	"github.com/kelompok6/retail-pos/kafka"
	"github.com/kelompok6/retail-pos/pkg/database"
	"github.com/kelompok6/retail-pos/pkg/kvstore"
	"github.com/kelompok6/retail-pos/pkg/logger"
	"github.com/kelompok6/retail-pos/pkg/tracing"
)

func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "pos-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, getEnv("LOG_LEVEL", "info"), isDevelopment)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Msg("Starting POS service")

	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	store, err := newStore()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize persistence backend")
	}

	var publisher *kafka.Publisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		publisher, err = kafka.NewPublisher([]string{brokers})
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize Kafka publisher, eventing disabled")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	var insightService *insight.Service
	if getEnv("GEMINI_API_KEY", "")+getEnv("GOOGLE_API_KEY", "") != "" {
		insightService, err = insight.NewService(context.Background())
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize insight service, fallback responses only")
			insightService = nil
		}
	}

	handlers, err := app.InitializeHandlers(store, publisher, insightService)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handlers")
	}

	logger.Logger.Info().Msg("Handlers initialized")

	startHTTPServer(handlers, getEnv("HTTP_PORT", "8080"))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

// newStore selects the persistence backend from KV_BACKEND: file (default),
// redis, postgres or memory.
func newStore() (kvstore.Store, error) {
	switch backend := getEnv("KV_BACKEND", "file"); backend {
	case "redis":
		db, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
		return kvstore.NewRedisStore(
			context.Background(),
			getEnv("REDIS_ADDR", "localhost:6379"),
			getEnv("REDIS_PASSWORD", ""),
			db,
		)
	case "postgres":
		db, err := database.NewGormConnection(database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "posdb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		})
		if err != nil {
			return nil, err
		}
		return kvstore.NewGormStore(db)
	case "memory":
		return kvstore.NewMemoryStore(), nil
	default:
		return kvstore.NewFileStore(getEnv("DATA_DIR", "./data"))
	}
}

func startHTTPServer(handlers *app.Handlers, port string) {
	router := mux.NewRouter()

	handlers.Auth.RegisterRoutes(router)
	handlers.Catalog.RegisterRoutes(router)
	handlers.Sales.RegisterRoutes(router)
	handlers.Insight.RegisterRoutes(router)

	handlers.Sales.RegisterHealthCheck(router)
	router.Handle("/metrics", promhttp.Handler())
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Everything under /api except the login endpoint requires a token.
	router.Use(authGate)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := otelhttp.NewHandler(c.Handler(router), "pos-http-request")

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Str("swagger_endpoint", "/swagger/").
		Msg("HTTP server started")

	go func() {
		if err := http.ListenAndServe(":"+port, handler); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()
}

func authGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/api/login" {
			next.ServeHTTP(w, r)
			return
		}
		auth.Middleware(next).ServeHTTP(w, r)
	})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
