package catalog

import (
	"brokerage-service/internal/app/config"
	"brokerage-service/internal/app/models"
	"brokerage-service/internal/pkg/constvars"
	"brokerage-service/internal/pkg/dto/requests"
	"brokerage-service/internal/pkg/exceptions"
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	store map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{store: make(map[string]string)}
}

func (r *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.store[key] = string(data)
	return nil
}

func (r *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return r.store[key], nil
}

func (r *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(r.store, key)
	return nil
}

func (r *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if _, ok := r.store[key]; ok {
		return false, nil
	}
	return true, r.Set(ctx, key, value, exp)
}

func TestCatalogUsecaseFindServices(t *testing.T) {
	site := &models.SiteDefinition{
		Services: []models.ServiceEntry{
			{Key: "auto", Title: "Auto Insurance", Blurb: "Liability, comp & collision, SR-22 support, and multi-car discounts."},
			{Key: "home", Title: "Home & Renters", Blurb: "Protect dwelling, belongings, and liability with right-sized coverage."},
			{Key: "life", Title: "Life Insurance", Blurb: "Term & whole life options that protect your family's future."},
			{Key: "commercial", Title: "Commercial", Blurb: "General liability, BOP, commercial auto, and workers' comp."},
			{Key: "moto", Title: "Motorcycle", Blurb: "Coverage for riders with gear and accessory protection."},
		},
		QuickFilters: []string{"Auto", "Home", "Commercial", "SR-22"},
	}
	internalConfig := &config.InternalConfig{App: config.App{CacheTTLInMinutes: 60}}

	// Package singleton, shared across subtests.
	redisRepo := newFakeRedisRepository()
	usecase := NewCatalogUsecase(zap.NewNop(), redisRepo, internalConfig, site)
	ctx := context.Background()

	t.Run("defaults to the Personal tab", func(t *testing.T) {
		result, err := usecase.FindServices(ctx, &requests.ServiceQuery{})
		require.NoError(t, err)

		assert.Equal(t, models.CategoryPersonal, result.Category)
		require.Len(t, result.Offerings, 3)
		assert.Equal(t, "Auto Insurance", result.Offerings[0].DisplayName)
		assert.Empty(t, result.ResetSuggestions)
	})

	t.Run("rejects unknown categories", func(t *testing.T) {
		_, err := usecase.FindServices(ctx, &requests.ServiceQuery{Category: "Pets"})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("reports counts for every tab regardless of the filter", func(t *testing.T) {
		result, err := usecase.FindServices(ctx, &requests.ServiceQuery{Category: "Specialty", FreeText: "motorcycle"})
		require.NoError(t, err)

		require.Len(t, result.Counts, 3)
		assert.Equal(t, models.CategoryPersonal, result.Counts[0].Category)
		assert.Equal(t, 3, result.Counts[0].Count)
		assert.Equal(t, 1, result.Counts[1].Count)
		assert.Equal(t, 1, result.Counts[2].Count)
	})

	t.Run("offers reset suggestions when nothing matches", func(t *testing.T) {
		result, err := usecase.FindServices(ctx, &requests.ServiceQuery{Category: "Business", FreeText: "spaceship"})
		require.NoError(t, err)

		assert.Empty(t, result.Offerings)
		assert.Equal(t, []string{"Auto", "Home", "Commercial"}, result.ResetSuggestions)
	})

	t.Run("echoes the trimmed term and the quick filters", func(t *testing.T) {
		result, err := usecase.FindServices(ctx, &requests.ServiceQuery{FreeText: "  auto "})
		require.NoError(t, err)

		assert.Equal(t, "auto", result.Query)
		assert.Equal(t, site.QuickFilters, result.QuickFilters)
	})

	t.Run("primes the offerings cache", func(t *testing.T) {
		cached, err := redisRepo.Get(ctx, constvars.RedisKeyCatalogList)
		require.NoError(t, err)
		require.NotEmpty(t, cached)

		var offerings []models.Offering
		require.NoError(t, json.Unmarshal([]byte(cached), &offerings))
		assert.Len(t, offerings, 5)
	})
}
