package offices

import (
	"brokerage-service/internal/app/contracts"
	"brokerage-service/internal/app/models"
	"brokerage-service/internal/pkg/constvars"
	"brokerage-service/internal/pkg/dto/responses"
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	hoursRowClosedText      = "Closed"
	hoursRowAppointmentText = "By appointment — call"
)

var (
	officeUsecaseInstance contracts.OfficeUsecase
	onceOfficeUsecase     sync.Once
)

type officeUsecase struct {
	Log      *zap.Logger
	Site     *models.SiteDefinition
	Clock    contracts.Clock
	Location *time.Location
}

func NewOfficeUsecase(
	logger *zap.Logger,
	site *models.SiteDefinition,
	clock contracts.Clock,
	location *time.Location,
) contracts.OfficeUsecase {
	onceOfficeUsecase.Do(func() {
		instance := &officeUsecase{
			Log:      logger,
			Site:     site,
			Clock:    clock,
			Location: location,
		}
		officeUsecaseInstance = instance
	})
	return officeUsecaseInstance
}

func (u *officeUsecase) GetOpenStatus(ctx context.Context) (models.OpenStatus, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	now := u.Clock.Now().In(u.Location)
	status := StatusAt(u.Site.Hours, now)

	u.Log.Info("officeUsecase.GetOpenStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("state", string(status.State)),
	)
	return status, nil
}

func (u *officeUsecase) GetLocation(ctx context.Context) (*responses.Location, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("officeUsecase.GetLocation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	now := u.Clock.Now().In(u.Location)
	todayIdx := dayIndex(now)

	rows := make([]responses.HoursRow, 0, len(u.Site.Hours))
	specs := make([]responses.OpeningHoursSpec, 0, len(u.Site.Hours))
	for i, day := range u.Site.Hours {
		row := responses.HoursRow{Label: day.Label}
		spec := responses.OpeningHoursSpec{DayOfWeek: day.Label}

		switch day.Mode {
		case models.DayModeClosed:
			row.Text = hoursRowClosedText
		case models.DayModeAppointment:
			row.Text = hoursRowAppointmentText
		default:
			row.Text = fmt.Sprintf("%s – %s", formatTwelveHour(day.Open), formatTwelveHour(day.Close))
			// Today highlight only applies to regular open days.
			row.Today = i == todayIdx
			spec.Opens = day.Open.String() + ":00"
			spec.Closes = day.Close.String() + ":00"
		}

		rows = append(rows, row)
		specs = append(specs, spec)
	}

	location := &responses.Location{
		Name:         u.Site.Profile.Name,
		Contact:      u.Site.Profile.Contact,
		Office:       u.Site.Office,
		HoursShort:   u.Site.Profile.HoursShort,
		Hours:        rows,
		OpeningHours: specs,
		Status:       StatusAt(u.Site.Hours, now),
		Languages:    u.Site.Profile.Languages,
	}

	u.Log.Info("officeUsecase.GetLocation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return location, nil
}

func formatTwelveHour(t models.TimeOfDay) string {
	hour := t.Hour % 12
	if hour == 0 {
		hour = 12
	}
	meridiem := "AM"
	if t.Hour >= 12 {
		meridiem = "PM"
	}
	return fmt.Sprintf("%02d:%02d %s", hour, t.Minute, meridiem)
}
