package clock

import (
	"brokerage-service/internal/app/contracts"
	"time"
)

type systemClock struct{}

// NewSystemClock returns a Clock backed by the wall clock.
func NewSystemClock() contracts.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
