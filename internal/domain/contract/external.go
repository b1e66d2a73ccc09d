package contract

import (
	"context"
	"time"
)

//go:generate mockgen -source=external.go -destination=../../../mocks/external.go -package=mocks

// HolidayChecker answers whether a date is a non-working day and locates
// the most recent prior working day.
// This allows mocking in tests while keeping the real implementation simple.
type HolidayChecker interface {
	// IsNonWorkingDay reports whether date is a weekend or a public holiday.
	IsNonWorkingDay(ctx context.Context, date time.Time) bool

	// LastWorkingDay returns the most recent working day strictly before
	// date, looking back at most 7 calendar days. ok is false when every
	// day in the window was a weekend or holiday.
	LastWorkingDay(date time.Time) (day time.Time, ok bool)
}

// Notifier delivers the selection result to an external channel.
type Notifier interface {
	// Notify announces the selected user. Delivery is best-effort; an error
	// means all attempts were exhausted.
	Notify(ctx context.Context, mail string) error
}

// Rand is the random source used by the weighted sampler and the
// probabilistic cleanup, injectable so tests can fix outcomes.
type Rand interface {
	Float64() float64
}
