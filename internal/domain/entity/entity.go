package entity

import "time"

// User is a roster member that can be selected as catcher of the day.
// Accounts are owned by the external account-management UI; the scheduler
// only reads them and mirrors last_chosen after a selection.
type User struct {
	ID         int64      `json:"id" db:"id"`
	Mail       string     `json:"mail" db:"mail"`
	Weekdays   []int      `json:"weekdays" db:"weekdays"` // ISO 8601 weekdays the user is available on
	LastChosen *time.Time `json:"last_chosen" db:"last_chosen"`
}

// AvailableOn reports whether the user is normally available on the given
// ISO 8601 weekday (1=Monday .. 7=Sunday).
func (u *User) AvailableOn(weekday int) bool {
	for _, d := range u.Weekdays {
		if d == weekday {
			return true
		}
	}
	return false
}

// VacationPeriod is an inclusive date range during which a user must not be
// selected. Managed by the external vacation UI; never mutated here.
type VacationPeriod struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	StartDate time.Time `json:"start_date" db:"start_date"`
	EndDate   time.Time `json:"end_date" db:"end_date"`
}

// Selection is one immutable entry of the selection-history ledger.
type Selection struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"user_id" db:"user_id"`
	SelectedDate time.Time `json:"selected_date" db:"selected_date"`
}

// Candidate is an eligible user together with the full weight breakdown,
// as shown by --debug-weights.
type Candidate struct {
	User             *User
	Weight           float64
	RecentSelections int
	OnLastWorkingDay bool
	PenaltyApplied   bool
	TieBreakBonus    float64
}
