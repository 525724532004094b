package pricing

import "time"

//go:generate moq -out clock_mocks.go . Clock

// Clock ...
type Clock interface {
	Now() time.Time
}

type systemClock struct {
}

// NewSystemClock returns a clock in UTC
func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
