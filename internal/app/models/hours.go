package models

import (
	"fmt"
	"strconv"
	"strings"
)

type DayMode string

const (
	DayModeOpen        DayMode = "open"
	DayModeClosed      DayMode = "closed"
	DayModeAppointment DayMode = "by_appointment"
)

type OpenState string

const (
	OpenStateOpen        OpenState = "open"
	OpenStateClosed      OpenState = "closed"
	OpenStateAppointment OpenState = "by_appointment"
)

// TimeOfDay is a wall-clock time without a date or timezone attached.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

func (t TimeOfDay) MinuteOfDay() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseTimeOfDay parses an "HH:MM" string (24-hour clock).
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("time of day %q is not in HH:MM format", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("time of day %q has invalid hour: %w", value, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("time of day %q has invalid minute: %w", value, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("time of day %q is out of range", value)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// DaySchedule describes one weekday row of the office hours table.
// Open and Close are only meaningful when Mode is DayModeOpen.
type DaySchedule struct {
	Label string    `json:"label"`
	Mode  DayMode   `json:"mode"`
	Open  TimeOfDay `json:"open,omitempty"`
	Close TimeOfDay `json:"close,omitempty"`
}

// WeeklyHours holds exactly one DaySchedule per weekday, Monday-first.
// Index 0 is Monday, index 6 is Sunday.
type WeeklyHours [7]DaySchedule

// OpenStatus is the three-way classification of "now" against a schedule.
type OpenStatus struct {
	State OpenState `json:"state"`
	Label string    `json:"label"`
}
