package config

import (
	"brokerage-service/internal/app/models"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalSiteJSON = `{
  "profile": {
    "name": "Original Insurance",
    "contact": {"phone": "(310) 538 8666"}
  },
  "hours": [
    {"label": "Monday", "mode": "open", "open": "09:00", "close": "18:00"},
    {"label": "Tuesday", "mode": "open", "open": "09:00", "close": "18:00"},
    {"label": "Wednesday", "mode": "open", "open": "09:00", "close": "18:00"},
    {"label": "Thursday", "mode": "open", "open": "09:00", "close": "18:00"},
    {"label": "Friday", "mode": "open", "open": "09:00", "close": "18:00"},
    {"label": "Saturday", "mode": "by_appointment"},
    {"label": "Sunday", "mode": "closed"}
  ],
  "services": [
    {"key": "auto", "title": "Auto Insurance", "blurb": "Liability and more."}
  ]
}`

func writeSiteFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSiteDefinition(t *testing.T) {
	t.Run("loads a valid definition", func(t *testing.T) {
		site, err := LoadSiteDefinition(writeSiteFile(t, minimalSiteJSON))
		require.NoError(t, err)

		assert.Equal(t, "Original Insurance", site.Profile.Name)
		assert.Equal(t, models.DayModeOpen, site.Hours[0].Mode)
		assert.Equal(t, models.TimeOfDay{Hour: 9}, site.Hours[0].Open)
		assert.Equal(t, models.TimeOfDay{Hour: 18}, site.Hours[0].Close)
		assert.Equal(t, models.DayModeAppointment, site.Hours[5].Mode)
		assert.Equal(t, models.DayModeClosed, site.Hours[6].Mode)
		require.Len(t, site.Services, 1)
	})

	t.Run("loads the shipped definition", func(t *testing.T) {
		site, err := LoadSiteDefinition("../../../configs/site.json")
		require.NoError(t, err)

		assert.Len(t, site.Services, 9)
		assert.Len(t, site.QuickFilters, 8)
		assert.Equal(t, "Downey", site.Office.Locality)
		assert.Equal(t, 8, site.CarrierLogoCount)
	})

	t.Run("fails when the file is missing", func(t *testing.T) {
		_, err := LoadSiteDefinition(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("rejects an hours table that is not seven rows", func(t *testing.T) {
		content := `{
  "profile": {"name": "X", "contact": {"phone": "555"}},
  "hours": [{"label": "Monday", "mode": "closed"}],
  "services": [{"key": "auto", "title": "Auto"}]
}`
		_, err := LoadSiteDefinition(writeSiteFile(t, content))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "weekday rows")
	})

	t.Run("rejects an open time that does not precede the close time", func(t *testing.T) {
		content := `{
  "profile": {"name": "X", "contact": {"phone": "555"}},
  "hours": [
    {"label": "Monday", "mode": "open", "open": "18:00", "close": "09:00"},
    {"label": "Tuesday", "mode": "closed"},
    {"label": "Wednesday", "mode": "closed"},
    {"label": "Thursday", "mode": "closed"},
    {"label": "Friday", "mode": "closed"},
    {"label": "Saturday", "mode": "closed"},
    {"label": "Sunday", "mode": "closed"}
  ],
  "services": [{"key": "auto", "title": "Auto"}]
}`
		_, err := LoadSiteDefinition(writeSiteFile(t, content))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must precede")
	})

	t.Run("rejects unknown day modes", func(t *testing.T) {
		content := `{
  "profile": {"name": "X", "contact": {"phone": "555"}},
  "hours": [
    {"label": "Monday", "mode": "siesta"},
    {"label": "Tuesday", "mode": "closed"},
    {"label": "Wednesday", "mode": "closed"},
    {"label": "Thursday", "mode": "closed"},
    {"label": "Friday", "mode": "closed"},
    {"label": "Saturday", "mode": "closed"},
    {"label": "Sunday", "mode": "closed"}
  ],
  "services": [{"key": "auto", "title": "Auto"}]
}`
		_, err := LoadSiteDefinition(writeSiteFile(t, content))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown mode")
	})

	t.Run("rejects duplicate service keys", func(t *testing.T) {
		content := `{
  "profile": {"name": "X", "contact": {"phone": "555"}},
  "hours": [
    {"label": "Monday", "mode": "closed"},
    {"label": "Tuesday", "mode": "closed"},
    {"label": "Wednesday", "mode": "closed"},
    {"label": "Thursday", "mode": "closed"},
    {"label": "Friday", "mode": "closed"},
    {"label": "Saturday", "mode": "closed"},
    {"label": "Sunday", "mode": "closed"}
  ],
  "services": [
    {"key": "auto", "title": "Auto"},
    {"key": "auto", "title": "Auto Again"}
  ]
}`
		_, err := LoadSiteDefinition(writeSiteFile(t, content))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate service key")
	})
}
