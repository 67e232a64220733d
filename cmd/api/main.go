package main

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stayhub-app/rating-service/internal/clients/accommodation"
	"github.com/stayhub-app/rating-service/internal/config"
	"github.com/stayhub-app/rating-service/internal/events"
	"github.com/stayhub-app/rating-service/internal/logging"
	"github.com/stayhub-app/rating-service/internal/repository/postgres"
	"github.com/stayhub-app/rating-service/internal/service"
	transporthttp "github.com/stayhub-app/rating-service/internal/transport/http"
	"github.com/stayhub-app/rating-service/internal/util"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr)
		if err != nil {
			log.Fatalf("logstash writer: %v", err)
		}
		defer writer.Close()
		log.SetOutput(io.MultiWriter(os.Stdout, writer))
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	if cfg.RabbitURL == "" {
		log.Fatal("RABBITMQ_URL is required")
	}
	bus, err := events.NewRabbitMQBus(events.RabbitMQConfig{
		URL:      cfg.RabbitURL,
		Exchange: cfg.RabbitExchange,
	})
	if err != nil {
		log.Fatalf("connect rabbitmq: %v", err)
	}
	defer bus.Close()

	uow := postgres.NewUnitOfWork(db)
	hostRatings := postgres.NewHostRatingRepo(db)
	accommodationRatings := postgres.NewAccommodationRatingRepo(db)

	if cfg.AccommodationBaseURL == "" {
		log.Fatal("ACCOMMODATION_BASE_URL is required")
	}
	accommodationClient := accommodation.NewClient(cfg.AccommodationBaseURL, cfg.AccommodationToken, cfg.AccommodationRPS)

	hostRatingService := service.NewHostRatingService(hostRatings, uow, bus)
	accommodationRatingService := service.NewAccommodationRatingService(accommodationRatings, accommodationClient, uow, bus)

	jwtManager := util.NewJWTManager(cfg.JWTSecret, 24*time.Hour)

	checks := map[string]transporthttp.HealthCheck{
		"database": db.PingContext,
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	}

	e := transporthttp.NewRouter(cfg.AllowOrigins, checks)
	if rdb != nil {
		e.Use(transporthttp.VisitorTracking(rdb))
	}

	transporthttp.RegisterSwagger(e, filepath.Join("docs", "swagger.yaml"))
	transporthttp.RegisterHostRatings(e, jwtManager, hostRatingService)
	transporthttp.RegisterAccommodationRatings(e, jwtManager, accommodationRatingService)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
