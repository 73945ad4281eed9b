package offices

import (
	"brokerage-service/internal/app/models"
	"brokerage-service/internal/pkg/constvars"
	"time"
)

// dayIndex maps time.Weekday (Sunday=0) onto the Monday-first hours table.
func dayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// StatusAt classifies now against the weekly hours table. The caller must
// pass now already converted to the business timezone. Both the open and
// close bounds count as open.
func StatusAt(hours models.WeeklyHours, now time.Time) models.OpenStatus {
	row := hours[dayIndex(now)]

	switch row.Mode {
	case models.DayModeClosed:
		return models.OpenStatus{State: models.OpenStateClosed, Label: constvars.OpenStatusClosedLabel}
	case models.DayModeAppointment:
		return models.OpenStatus{State: models.OpenStateAppointment, Label: constvars.OpenStatusAppointmentLabel}
	}

	second := now.Hour()*3600 + now.Minute()*60 + now.Second()
	if second >= row.Open.MinuteOfDay()*60 && second <= row.Close.MinuteOfDay()*60 {
		return models.OpenStatus{State: models.OpenStateOpen, Label: constvars.OpenStatusOpenLabel}
	}
	return models.OpenStatus{State: models.OpenStateClosed, Label: constvars.OpenStatusClosedLabel}
}
