package service

import (
	"github.com/dutybot/catcher/internal/domain"
	"github.com/dutybot/catcher/internal/domain/contract"
)

// Params holds the tunable knobs of the weighted selection algorithm.
// They are passed in at construction so tests can inject alternate values.
type Params struct {
	BaseWeight            float64
	LastWorkingDayPenalty float64
	FrequencyPenalty      float64
	LookbackDays          int
	RetentionDays         int
	CleanupProbability    float64
}

func DefaultParams() Params {
	return Params{
		BaseWeight:            domain.DefaultBaseWeight,
		LastWorkingDayPenalty: domain.DefaultLastWorkingDayPenalty,
		FrequencyPenalty:      domain.DefaultFrequencyPenalty,
		LookbackDays:          domain.DefaultLookbackDays,
		RetentionDays:         domain.DefaultRetentionDays,
		CleanupProbability:    domain.DefaultCleanupProbability,
	}
}

type Instance struct {
	Selection *selectionService
}

func NewInstance(dm contract.DataManager, holiday contract.HolidayChecker, notifier contract.Notifier, rng contract.Rand, params Params) *Instance {
	return &Instance{
		Selection: newSelection(dm, holiday, notifier, rng, params),
	}
}
