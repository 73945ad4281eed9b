package offices

import (
	"brokerage-service/internal/app/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func testSite() *models.SiteDefinition {
	return &models.SiteDefinition{
		Profile: models.SiteProfile{
			Name:       "Original Insurance Marketing",
			HoursShort: "Mon–Fri 9–6 • Sat by appt.",
			Languages:  []string{"Arabic", "Spanish", "English"},
		},
		Office: models.Office{Locality: "Downey", Region: "CA"},
		Hours:  weekdayHours(),
	}
}

func TestOfficeUsecase(t *testing.T) {
	pacific, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	// The usecase is a package singleton, so every subtest shares this
	// instance and steers it through the fake clock.
	clk := &fakeClock{}
	usecase := NewOfficeUsecase(zap.NewNop(), testSite(), clk, pacific)

	t.Run("status is anchored to the business timezone", func(t *testing.T) {
		// 01:00 UTC on Monday is still 17:00 Sunday in Los Angeles.
		clk.now = time.Date(2026, time.January, 12, 1, 0, 0, 0, time.UTC)

		status, err := usecase.GetOpenStatus(context.Background())
		require.NoError(t, err)
		assert.Equal(t, models.OpenStateClosed, status.State)
	})

	t.Run("location renders the hours table", func(t *testing.T) {
		// Wednesday 14:00 in Los Angeles.
		clk.now = time.Date(2026, time.January, 7, 22, 0, 0, 0, time.UTC)

		location, err := usecase.GetLocation(context.Background())
		require.NoError(t, err)

		require.Len(t, location.Hours, 7)
		assert.Equal(t, "Monday", location.Hours[0].Label)
		assert.Equal(t, "09:00 AM – 06:00 PM", location.Hours[0].Text)
		assert.Equal(t, "By appointment — call", location.Hours[5].Text)
		assert.Equal(t, "Closed", location.Hours[6].Text)

		assert.False(t, location.Hours[0].Today)
		assert.True(t, location.Hours[2].Today, "wednesday row should carry the today highlight")

		assert.Equal(t, models.OpenStateOpen, location.Status.State)
		assert.Equal(t, "Mon–Fri 9–6 • Sat by appt.", location.HoursShort)
	})

	t.Run("opening hours omit times for closed and appointment days", func(t *testing.T) {
		clk.now = time.Date(2026, time.January, 7, 22, 0, 0, 0, time.UTC)

		location, err := usecase.GetLocation(context.Background())
		require.NoError(t, err)

		require.Len(t, location.OpeningHours, 7)
		assert.Equal(t, "09:00:00", location.OpeningHours[0].Opens)
		assert.Equal(t, "18:00:00", location.OpeningHours[0].Closes)

		assert.Equal(t, "Saturday", location.OpeningHours[5].DayOfWeek)
		assert.Empty(t, location.OpeningHours[5].Opens)
		assert.Empty(t, location.OpeningHours[5].Closes)
		assert.Equal(t, "Sunday", location.OpeningHours[6].DayOfWeek)
		assert.Empty(t, location.OpeningHours[6].Opens)
	})
}
