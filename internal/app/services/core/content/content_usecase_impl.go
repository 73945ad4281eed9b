package content

import (
	"brokerage-service/internal/app/config"
	"brokerage-service/internal/app/contracts"
	"brokerage-service/internal/app/models"
	"brokerage-service/internal/pkg/constvars"
	"brokerage-service/internal/pkg/dto/responses"
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	contentUsecaseInstance contracts.ContentUsecase
	onceContentUsecase     sync.Once
)

type contentUsecase struct {
	Log            *zap.Logger
	RedisRepo      contracts.RedisRepository
	InternalConfig *config.InternalConfig
	Site           *models.SiteDefinition
}

func NewContentUsecase(
	logger *zap.Logger,
	redisRepo contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	site *models.SiteDefinition,
) contracts.ContentUsecase {
	onceContentUsecase.Do(func() {
		instance := &contentUsecase{
			Log:            logger,
			RedisRepo:      redisRepo,
			InternalConfig: internalConfig,
			Site:           site,
		}
		contentUsecaseInstance = instance
	})
	return contentUsecaseInstance
}

func (u *contentUsecase) GetSiteContent(ctx context.Context) (*responses.SiteContent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("contentUsecase.GetSiteContent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	cached, err := u.RedisRepo.Get(ctx, constvars.RedisKeySiteContent)
	if err != nil {
		u.Log.Warn("contentUsecase.GetSiteContent error reading cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	} else if cached != "" {
		var content responses.SiteContent
		if err := json.Unmarshal([]byte(cached), &content); err == nil {
			return &content, nil
		}
		u.Log.Warn("contentUsecase.GetSiteContent cached payload is invalid, rebuilding",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	}

	content := &responses.SiteContent{
		Name:             u.Site.Profile.Name,
		Tagline:          u.Site.Profile.Tagline,
		Description:      u.Site.Profile.Description,
		Contact:          u.Site.Profile.Contact,
		Socials:          u.Site.Profile.Socials,
		Languages:        u.Site.Profile.Languages,
		HoursShort:       u.Site.Profile.HoursShort,
		FAQs:             u.Site.FAQs,
		ServiceFAQs:      u.Site.ServiceFAQs,
		Testimonials:     u.Site.Testimonials,
		Bundles:          u.Site.Bundles,
		CarrierLogoCount: u.Site.CarrierLogoCount,
	}

	ttl := time.Duration(u.InternalConfig.App.CacheTTLInMinutes) * time.Minute
	if err := u.RedisRepo.Set(ctx, constvars.RedisKeySiteContent, content, ttl); err != nil {
		u.Log.Warn("contentUsecase.GetSiteContent error priming cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return content, nil
}
