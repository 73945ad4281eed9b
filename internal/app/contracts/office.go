package contracts

import (
	"brokerage-service/internal/app/models"
	"brokerage-service/internal/pkg/dto/responses"
	"context"
)

type OfficeUsecase interface {
	GetLocation(ctx context.Context) (*responses.Location, error)
	GetOpenStatus(ctx context.Context) (models.OpenStatus, error)
}
