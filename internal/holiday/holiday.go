// Package holiday decides whether a date is a working day. It chains an
// ordered list of sources: a remote lookup service first, then an offline
// region-aware holiday calendar. Weekends are always non-working. When every
// source fails the resolver fails open and reports a working day, since
// blocking the whole duty rotation because a remote API is down is worse
// than occasionally missing a holiday.
package holiday

import (
	"context"
	"log"
	"time"
)

// Source answers whether a specific date is a public holiday. An error means
// the source could not produce an answer and the next one should be tried.
type Source interface {
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}

// Resolver implements contract.HolidayChecker over a source chain.
type Resolver struct {
	sources []Source
	offline *OfflineSource
}

// NewResolver builds a resolver trying remote first and offline second. The
// offline source is also used on its own for the last-working-day walk.
func NewResolver(remote Source, offline *OfflineSource) *Resolver {
	return &Resolver{
		sources: []Source{remote, offline},
		offline: offline,
	}
}

// IsNonWorkingDay reports whether date is a weekend or a public holiday.
func (r *Resolver) IsNonWorkingDay(ctx context.Context, date time.Time) bool {
	if isWeekend(date) {
		return true
	}

	for _, source := range r.sources {
		isHoliday, err := source.IsHoliday(ctx, date)
		if err != nil {
			log.Printf("Holiday source failed, trying next: %v", err)
			continue
		}
		return isHoliday
	}

	log.Println("All holiday sources failed, assuming a working day")
	return false
}

// LastWorkingDay returns the most recent working day strictly before date,
// looking back at most 7 calendar days. Only the offline calendar is
// consulted for past dates; the remote service can answer for today only.
func (r *Resolver) LastWorkingDay(date time.Time) (time.Time, bool) {
	for daysBack := 1; daysBack <= 7; daysBack++ {
		day := date.AddDate(0, 0, -daysBack)
		if isWeekend(day) {
			continue
		}
		if isHoliday, _ := r.offline.IsHoliday(context.Background(), day); isHoliday {
			continue
		}
		return day, true
	}

	return time.Time{}, false
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
