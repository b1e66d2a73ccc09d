package domain

// ISO 8601 weekday constants and mappings
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// WeekdayNames maps ISO 8601 weekday numbers to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// DefaultDutyDays represents Monday through Friday in ISO format
var DefaultDutyDays = []int{Monday, Tuesday, Wednesday, Thursday, Friday}

// DateLayout is the canonical date format used in the database and in logs
const DateLayout = "2006-01-02"

// Default parameters of the weighted selection algorithm
const (
	DefaultBaseWeight            = 100.0
	DefaultLastWorkingDayPenalty = 50.0
	DefaultFrequencyPenalty      = 5.0
	DefaultLookbackDays          = 30
	DefaultRetentionDays         = 90
	DefaultCleanupProbability    = 0.1
)

// NeverSelectedBonus is the days-since-last-selection value used for users
// that have never been selected, so that first-time candidates are strongly
// favored over everyone with a selection on record.
const NeverSelectedBonus = 365
