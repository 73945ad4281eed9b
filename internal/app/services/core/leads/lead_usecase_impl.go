package leads

import (
	"brokerage-service/internal/app/contracts"
	"brokerage-service/internal/app/models"
	"brokerage-service/internal/pkg/constvars"
	"brokerage-service/internal/pkg/dto/requests"
	"brokerage-service/internal/pkg/dto/responses"
	"brokerage-service/internal/pkg/exceptions"
	"brokerage-service/internal/pkg/utils"
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	leadUsecaseInstance contracts.LeadUsecase
	onceLeadUsecase     sync.Once
)

type leadUsecase struct {
	Log       *zap.Logger
	LeadQueue contracts.LeadQueueService
	Clock     contracts.Clock
}

func NewLeadUsecase(
	logger *zap.Logger,
	leadQueue contracts.LeadQueueService,
	clock contracts.Clock,
) contracts.LeadUsecase {
	onceLeadUsecase.Do(func() {
		instance := &leadUsecase{
			Log:       logger,
			LeadQueue: leadQueue,
			Clock:     clock,
		}
		leadUsecaseInstance = instance
	})
	return leadUsecaseInstance
}

func (u *leadUsecase) CreateLead(ctx context.Context, request *requests.CreateLead) (*responses.Lead, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("leadUsecase.CreateLead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeCreateLeadRequest(request)

	// A filled honeypot marks a bot. Answer as if the lead was accepted so
	// the sender learns nothing, but never enqueue it.
	if strings.TrimSpace(request.Company) != "" {
		u.Log.Info("leadUsecase.CreateLead honeypot tripped, dropping submission",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return &responses.Lead{}, nil
	}

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	lead := models.Lead{
		ID:          utils.GenerateLeadID(),
		Name:        request.Name,
		Contact:     request.Contact,
		Coverages:   request.Coverages,
		Note:        request.Note,
		Page:        request.Page,
		SubmittedAt: u.Clock.Now().UTC(),
	}

	if err := u.LeadQueue.Enqueue(ctx, &models.QueuedLead{Lead: lead}); err != nil {
		u.Log.Error("leadUsecase.CreateLead error enqueueing lead",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLeadIDKey, lead.ID),
			zap.Error(err),
		)
		return nil, err
	}

	u.Log.Info("leadUsecase.CreateLead succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLeadIDKey, lead.ID),
	)
	return &responses.Lead{ID: lead.ID}, nil
}
