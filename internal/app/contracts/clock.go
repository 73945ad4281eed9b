package contracts

import "time"

// Clock abstracts the source of "now" so time-dependent logic is testable
// without waiting on the wall clock.
type Clock interface {
	Now() time.Time
}
