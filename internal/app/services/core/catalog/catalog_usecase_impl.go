package catalog

import (
	"brokerage-service/internal/app/config"
	"brokerage-service/internal/app/contracts"
	"brokerage-service/internal/app/models"
	"brokerage-service/internal/pkg/constvars"
	"brokerage-service/internal/pkg/dto/requests"
	"brokerage-service/internal/pkg/dto/responses"
	"brokerage-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// resetSuggestions is the known-good chip set offered when a search comes
// back empty.
var resetSuggestions = []string{"Auto", "Home", "Commercial"}

var (
	catalogUsecaseInstance contracts.CatalogUsecase
	onceCatalogUsecase     sync.Once
)

type catalogUsecase struct {
	Log            *zap.Logger
	RedisRepo      contracts.RedisRepository
	InternalConfig *config.InternalConfig
	Offerings      []models.Offering
	QuickFilters   []string
}

func NewCatalogUsecase(
	logger *zap.Logger,
	redisRepo contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	site *models.SiteDefinition,
) contracts.CatalogUsecase {
	onceCatalogUsecase.Do(func() {
		instance := &catalogUsecase{
			Log:            logger,
			RedisRepo:      redisRepo,
			InternalConfig: internalConfig,
			Offerings:      BuildCatalog(site.Services, site.DisabledServices),
			QuickFilters:   site.QuickFilters,
		}
		catalogUsecaseInstance = instance
	})
	return catalogUsecaseInstance
}

func (u *catalogUsecase) FindServices(ctx context.Context, query *requests.ServiceQuery) (*responses.ServiceList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("catalogUsecase.FindServices called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCategoryKey, query.Category),
		zap.String(constvars.LoggingQueryTermKey, query.FreeText),
	)

	category := models.CategoryPersonal
	if query.Category != "" {
		category = models.Category(query.Category)
		if !category.Valid() {
			return nil, exceptions.ErrUnknownCategory(fmt.Errorf("category %q is not a catalog tab", query.Category))
		}
	}

	offerings, err := u.catalog(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterOfferings(offerings, category, query.FreeText)

	counts := make([]responses.CategoryCount, 0, len(models.Categories))
	for _, c := range models.Categories {
		count := 0
		for _, offering := range offerings {
			if offering.Category == c {
				count++
			}
		}
		counts = append(counts, responses.CategoryCount{Category: c, Count: count})
	}

	result := &responses.ServiceList{
		Category:     category,
		Query:        strings.TrimSpace(query.FreeText),
		Offerings:    filtered,
		Counts:       counts,
		QuickFilters: u.QuickFilters,
	}
	if len(filtered) == 0 {
		result.ResetSuggestions = resetSuggestions
	}

	u.Log.Info("catalogUsecase.FindServices succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("offering_count", len(filtered)),
	)
	return result, nil
}

// catalog serves the offering list through a redis cache so other instances
// sharing the cache avoid rebuilding it, falling back to the in-process list
// on any miss.
func (u *catalogUsecase) catalog(ctx context.Context) ([]models.Offering, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cached, err := u.RedisRepo.Get(ctx, constvars.RedisKeyCatalogList)
	if err != nil {
		u.Log.Warn("catalogUsecase.catalog error reading cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	} else if cached != "" {
		var offerings []models.Offering
		if err := json.Unmarshal([]byte(cached), &offerings); err == nil {
			return offerings, nil
		}
		u.Log.Warn("catalogUsecase.catalog cached payload is invalid, rebuilding",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	}

	ttl := time.Duration(u.InternalConfig.App.CacheTTLInMinutes) * time.Minute
	if err := u.RedisRepo.Set(ctx, constvars.RedisKeyCatalogList, u.Offerings, ttl); err != nil {
		u.Log.Warn("catalogUsecase.catalog error priming cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return u.Offerings, nil
}
