package contracts

import (
	"brokerage-service/internal/app/models"
	"brokerage-service/internal/pkg/dto/requests"
	"brokerage-service/internal/pkg/dto/responses"
	"context"
)

type LeadUsecase interface {
	CreateLead(ctx context.Context, request *requests.CreateLead) (*responses.Lead, error)
}

// LeadQueueService is the durable buffer between the contact form and the
// external form-relay webhook.
type LeadQueueService interface {
	Enqueue(ctx context.Context, lead *models.QueuedLead) error
	EnqueueToDLQ(ctx context.Context, lead *models.QueuedLead) error
	Reenqueue(ctx context.Context, lead *models.QueuedLead) error
	FetchN(ctx context.Context, max int) ([]QueuedLeadItem, error)
	Ack(deliveryTag uint64) error
}

type QueuedLeadItem struct {
	DeliveryTag uint64
	Lead        models.QueuedLead
}
