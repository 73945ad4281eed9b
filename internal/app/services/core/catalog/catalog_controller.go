package catalog

import (
	"brokerage-service/internal/app/contracts"
	"brokerage-service/internal/pkg/constvars"
	"brokerage-service/internal/pkg/dto/requests"
	"brokerage-service/internal/pkg/exceptions"
	"brokerage-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type CatalogController struct {
	Log            *zap.Logger
	CatalogUsecase contracts.CatalogUsecase
}

func NewCatalogController(logger *zap.Logger, catalogUsecase contracts.CatalogUsecase) *CatalogController {
	return &CatalogController{
		Log:            logger,
		CatalogUsecase: catalogUsecase,
	}
}

func (ctrl *CatalogController) FindServices(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	query := &requests.ServiceQuery{
		Category: r.URL.Query().Get("category"),
		FreeText: r.URL.Query().Get("q"),
	}

	result, err := ctrl.CatalogUsecase.FindServices(ctx, query)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetServicesSuccessMessage, result)
}
