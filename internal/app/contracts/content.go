package contracts

import (
	"brokerage-service/internal/pkg/dto/responses"
	"context"
)

type ContentUsecase interface {
	GetSiteContent(ctx context.Context) (*responses.SiteContent, error)
}
