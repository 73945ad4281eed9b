package config

import (
	"brokerage-service/internal/app/models"
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
	Site           *models.SiteDefinition
	// WorkerStop if set will be called during Shutdown to gracefully stop
	// the lead relay worker.
	WorkerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.WorkerStop != nil {
		b.WorkerStop()
		log.Println("Successfully stopped lead relay worker")
	}

	err := b.Redis.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	err = b.RabbitMQ.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing RabbitMQ")

	err = b.Logger.Sync()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
