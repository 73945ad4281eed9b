package offices

import (
	"brokerage-service/internal/app/contracts"
	"brokerage-service/internal/pkg/constvars"
	"brokerage-service/internal/pkg/exceptions"
	"brokerage-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type OfficeController struct {
	Log           *zap.Logger
	OfficeUsecase contracts.OfficeUsecase
}

func NewOfficeController(logger *zap.Logger, officeUsecase contracts.OfficeUsecase) *OfficeController {
	return &OfficeController{
		Log:           logger,
		OfficeUsecase: officeUsecase,
	}
}

func (ctrl *OfficeController) GetLocation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.OfficeUsecase.GetLocation(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLocationSuccessMessage, result)
}

func (ctrl *OfficeController) GetOpenStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.OfficeUsecase.GetOpenStatus(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetOpenStatusSuccessMessage, result)
}
