package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/dutybot/catcher/internal/domain"
	"github.com/dutybot/catcher/internal/domain/contract"
	"github.com/dutybot/catcher/internal/domain/entity"
)

// buildCandidates computes the fairness weight for every eligible user.
func (s *selectionService) buildCandidates(tx contract.DataManager, date time.Time, eligible []*entity.User, lastCatcherID int64, hasLastCatcher bool) ([]*entity.Candidate, error) {
	// The last-working-day penalty cannot change the outcome when there is
	// no alternative, so it is suppressed for a sole candidate.
	hasAlternatives := len(eligible) > 1

	from := date.AddDate(0, 0, -s.params.LookbackDays)

	candidates := make([]*entity.Candidate, 0, len(eligible))
	for _, user := range eligible {
		recent, err := tx.History().CountByUserInRange(user.ID, from, date)
		if err != nil {
			return nil, fmt.Errorf("failed to count recent selections for %s: %w", user.Mail, err)
		}

		onLastWorkingDay := hasLastCatcher && user.ID == lastCatcherID
		penalized := onLastWorkingDay && hasAlternatives

		candidates = append(candidates, &entity.Candidate{
			User:             user,
			Weight:           s.weightFor(user, date, recent, penalized),
			RecentSelections: recent,
			OnLastWorkingDay: onLastWorkingDay,
			PenaltyApplied:   penalized,
		})
	}

	return candidates, nil
}

func (s *selectionService) weightFor(user *entity.User, date time.Time, recentSelections int, penalized bool) float64 {
	weight := s.params.BaseWeight

	if user.LastChosen != nil {
		weight += float64(daysBetween(*user.LastChosen, date))
	} else {
		// Never selected: strongly favor first-time candidates.
		weight += domain.NeverSelectedBonus
	}

	if penalized {
		weight -= s.params.LastWorkingDayPenalty
	}

	weight -= float64(recentSelections) * s.params.FrequencyPenalty

	// Weights must never be zero or negative to keep sampling well-defined.
	return math.Max(weight, 1)
}

// applyTieBreaks perturbs equal weights into a strict total order. Weights
// are grouped after rounding to 2 decimals; within a group, candidates are
// ranked by earliest last_chosen (never selected counts as year 1900), then
// mail ascending, and each rank receives a strictly decreasing bonus
// (0.1, 0.05, 0.0333, ...). Identical inputs always yield identical order.
func applyTieBreaks(candidates []*entity.Candidate) {
	groups := make(map[float64][]*entity.Candidate)
	for _, c := range candidates {
		key := math.Round(c.Weight*100) / 100
		groups[key] = append(groups[key], c)
	}

	for _, group := range groups {
		if len(group) == 1 {
			continue
		}

		sort.Slice(group, func(i, j int) bool {
			li, lj := lastChosenOrEpoch(group[i].User), lastChosenOrEpoch(group[j].User)
			if !li.Equal(lj) {
				return li.Before(lj)
			}
			return group[i].User.Mail < group[j].User.Mail
		})

		for i, c := range group {
			bonus := 0.1 / float64(i+1)
			c.TieBreakBonus = bonus
			c.Weight += bonus
		}
	}
}

// sampleWeighted draws one candidate by cumulative weight: r is uniform in
// [0, total) and the first candidate whose running sum exceeds r wins.
func sampleWeighted(candidates []*entity.Candidate, rng contract.Rand) *entity.Candidate {
	if len(candidates) == 1 {
		return candidates[0]
	}

	var total float64
	for _, c := range candidates {
		total += c.Weight
	}

	r := rng.Float64() * total

	var cumulative float64
	for _, c := range candidates {
		cumulative += c.Weight
		if cumulative > r {
			return c
		}
	}

	// Floating point accumulation can leave the running sum just below r.
	return candidates[len(candidates)-1]
}

var neverChosen = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

func lastChosenOrEpoch(u *entity.User) time.Time {
	if u.LastChosen == nil {
		return neverChosen
	}
	return *u.LastChosen
}

func daysBetween(from, to time.Time) int {
	return int(normalizeDate(to).Sub(normalizeDate(from)).Hours() / 24)
}
