package leads

import (
	"brokerage-service/internal/app/contracts"
	"brokerage-service/internal/pkg/constvars"
	"brokerage-service/internal/pkg/dto/requests"
	"brokerage-service/internal/pkg/exceptions"
	"brokerage-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type LeadController struct {
	Log         *zap.Logger
	LeadUsecase contracts.LeadUsecase
}

func NewLeadController(logger *zap.Logger, leadUsecase contracts.LeadUsecase) *LeadController {
	return &LeadController{
		Log:         logger,
		LeadUsecase: leadUsecase,
	}
}

func (ctrl *LeadController) CreateLead(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.CreateLead{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	result, err := ctrl.LeadUsecase.CreateLead(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.CreateLeadSuccessMessage, result)
}
