package contracts

import (
	"brokerage-service/internal/pkg/dto/requests"
	"brokerage-service/internal/pkg/dto/responses"
	"context"
)

type CatalogUsecase interface {
	FindServices(ctx context.Context, query *requests.ServiceQuery) (*responses.ServiceList, error)
}
