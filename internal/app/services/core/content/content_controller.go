package content

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

type ContentController struct {
	Log            *zap.Logger
	ContentUsecase contracts.ContentUsecase
}

func NewContentController(logger *zap.Logger, contentUsecase contracts.ContentUsecase) *ContentController {
	return &ContentController{
		Log:            logger,
		ContentUsecase: contentUsecase,
	}
}

func (ctrl *ContentController) GetSiteContent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ContentUsecase.GetSiteContent(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSiteContentSuccessMessage, result)
}
