package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/kelompok6/retail-pos/kafka"
	"github.com/kelompok6/retail-pos/pkg/logger"
)

// The trends worker consumes sale.completed events and keeps per-day revenue
// and transaction counters in Redis. The counters are advisory dashboards
// material; the ledger remains the source of truth.
func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "trends-worker")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, getEnv("LOG_LEVEL", "info"), isDevelopment)

	db, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()

	consumer, err := kafka.NewConsumer(
		[]string{getEnv("KAFKA_BROKERS", "localhost:9092")},
		getEnv("KAFKA_GROUP_ID", "trends-worker"),
		recordSale(redisClient),
	)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create consumer")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := consumer.Start(ctx); err != nil {
			logger.Logger.Error().Err(err).Msg("Consumer stopped")
		}
	}()

	logger.Logger.Info().Msg("Trends worker started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down trends worker...")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// recordSale returns the event handler that bumps the day's counters.
func recordSale(client *redis.Client) kafka.EventHandler {
	return func(ctx context.Context, event kafka.SaleCompletedEvent) error {
		amount, err := decimal.NewFromString(event.TotalAmount)
		if err != nil {
			return err
		}

		day := event.SoldAt.Format("2006-01-02")
		pipe := client.Pipeline()
		pipe.IncrByFloat(ctx, "trends:revenue:"+day, amount.InexactFloat64())
		pipe.Incr(ctx, "trends:transactions:"+day)
		if _, err := pipe.Exec(ctx); err != nil {
			return err
		}

		logger.Info(ctx).
			Str("sale_id", event.SaleID).
			Str("day", day).
			Str("amount", event.TotalAmount).
			Msg("Sale recorded in trend counters")
		return nil
	}
}
