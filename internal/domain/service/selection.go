package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/dutybot/catcher/internal/domain"
	"github.com/dutybot/catcher/internal/domain/contract"
	"github.com/dutybot/catcher/internal/domain/entity"
)

// Outcome classifies how a run ended. Everything except OutcomeSelected is
// a graceful no-op.
type Outcome int

const (
	OutcomeSelected Outcome = iota
	OutcomeAlreadySelected
	OutcomeNonWorkingDay
	OutcomeNoEligibleUsers
)

type Options struct {
	Date         time.Time
	DryRun       bool
	DebugWeights bool
}

type Result struct {
	Outcome    Outcome
	Mail       string
	Weight     float64
	Candidates []*entity.Candidate
	Notified   bool
}

type selectionService struct {
	dm       contract.DataManager
	holiday  contract.HolidayChecker
	notifier contract.Notifier
	rng      contract.Rand
	params   Params
}

func newSelection(dm contract.DataManager, holiday contract.HolidayChecker, notifier contract.Notifier, rng contract.Rand, params Params) *selectionService {
	return &selectionService{
		dm:       dm,
		holiday:  holiday,
		notifier: notifier,
		rng:      rng,
		params:   params,
	}
}

// SelectCatcher performs one full selection run: holiday check, eligibility
// filtering, weighting, sampling, recording and notification. The read phase
// and the record write share a single transaction so a concurrent re-run
// cannot record a second pick for the same date.
func (s *selectionService) SelectCatcher(ctx context.Context, opts Options) (*Result, error) {
	date := normalizeDate(opts.Date)

	if s.holiday.IsNonWorkingDay(ctx, date) {
		log.Printf("%s is a non-working day, no catcher needed", date.Format(domain.DateLayout))
		return &Result{Outcome: OutcomeNonWorkingDay}, nil
	}

	var result *Result
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		var err error
		result, err = s.selectInTx(tx, date, opts)
		return err
	})
	if err != nil {
		return nil, err
	}

	if result.Outcome != OutcomeSelected || opts.DryRun {
		return result, nil
	}

	// Occasional ledger pruning, bounded by CleanupProbability per run.
	if s.rng.Float64() < s.params.CleanupProbability {
		if _, err := s.CleanupHistory(ctx, date, s.params.RetentionDays, false); err != nil {
			log.Printf("Warning: failed to clean up old selection history: %v", err)
		}
	}

	// Notification is best-effort: the recorded selection stands even when
	// every delivery attempt fails.
	if err := s.notifier.Notify(ctx, result.Mail); err != nil {
		log.Printf("Warning: failed to notify catcher %s: %v", result.Mail, err)
	} else {
		result.Notified = true
		log.Printf("Successfully notified catcher: %s", result.Mail)
	}

	return result, nil
}

func (s *selectionService) selectInTx(tx contract.DataManager, date time.Time, opts Options) (*Result, error) {
	// Idempotency guard: a re-run for the same date keeps the existing pick.
	mail, found, err := tx.History().GetSelectedMail(date)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing selection: %w", err)
	}
	if found {
		log.Printf("User %s was already selected for %s", mail, date.Format(domain.DateLayout))
		return &Result{Outcome: OutcomeAlreadySelected, Mail: mail}, nil
	}

	eligible, err := s.eligibleUsers(tx, date)
	if err != nil {
		return nil, err
	}
	if len(eligible) == 0 {
		log.Println("No eligible users found for today (all on vacation or not scheduled)")
		return &Result{Outcome: OutcomeNoEligibleUsers}, nil
	}

	var lastCatcherID int64
	var hasLastCatcher bool
	if lastWorkingDay, ok := s.holiday.LastWorkingDay(date); ok {
		lastCatcherID, hasLastCatcher, err = tx.History().GetSelectedUserID(lastWorkingDay)
		if err != nil {
			return nil, fmt.Errorf("failed to get last working day's catcher: %w", err)
		}
	}

	candidates, err := s.buildCandidates(tx, date, eligible, lastCatcherID, hasLastCatcher)
	if err != nil {
		return nil, err
	}

	applyTieBreaks(candidates)

	// Highest weight first. Weights are pairwise distinct after
	// tie-breaking; mail remains as a stable final key regardless.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Weight != candidates[j].Weight {
			return candidates[i].Weight > candidates[j].Weight
		}
		return candidates[i].User.Mail < candidates[j].User.Mail
	})

	if opts.DebugWeights {
		logWeights(candidates)
	}

	selected := sampleWeighted(candidates, s.rng)

	if opts.DryRun {
		log.Printf("[DRY RUN] Would select: %s (final weight: %.3f)", selected.User.Mail, selected.Weight)
	} else {
		if err := tx.History().Create(selected.User.ID, date); err != nil {
			return nil, err
		}
		// Mirror last_chosen for external readers of the user table.
		if err := tx.User().SetLastChosen(selected.User.ID, date); err != nil {
			return nil, err
		}
		log.Printf("Selected new catcher: %s (final weight: %.3f)", selected.User.Mail, selected.Weight)
	}

	return &Result{
		Outcome:    OutcomeSelected,
		Mail:       selected.User.Mail,
		Weight:     selected.Weight,
		Candidates: candidates,
	}, nil
}

// eligibleUsers returns roster members available on date's weekday and not
// on vacation.
func (s *selectionService) eligibleUsers(tx contract.DataManager, date time.Time) ([]*entity.User, error) {
	users, err := tx.User().GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	weekday := isoWeekday(date)

	var eligible []*entity.User
	for _, user := range users {
		if !user.AvailableOn(weekday) {
			continue
		}

		onVacation, err := tx.Vacation().IsOnVacation(user.ID, date)
		if err != nil {
			return nil, err
		}
		if onVacation {
			continue
		}

		eligible = append(eligible, user)
	}

	return eligible, nil
}

// CleanupHistory prunes ledger entries older than today-retentionDays.
// The entry on the cutoff date itself is retained.
func (s *selectionService) CleanupHistory(ctx context.Context, today time.Time, retentionDays int, dryRun bool) (int64, error) {
	cutoff := normalizeDate(today).AddDate(0, 0, -retentionDays)

	if dryRun {
		count, err := s.dm.History().CountOlderThan(cutoff)
		if err != nil {
			return 0, err
		}
		log.Printf("[DRY RUN] Would delete %d selection history records older than %s", count, cutoff.Format(domain.DateLayout))
		return count, nil
	}

	deleted, err := s.dm.History().DeleteOlderThan(cutoff)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		log.Printf("Cleaned up %d old selection history records (older than %d days)", deleted, retentionDays)
	}

	return deleted, nil
}

func logWeights(candidates []*entity.Candidate) {
	log.Println("Weight calculations for all eligible users (after tie-breaking):")
	for _, c := range candidates {
		lastChosen := "never"
		if c.User.LastChosen != nil {
			lastChosen = c.User.LastChosen.Format(domain.DateLayout)
		}
		log.Printf("  %s: weight=%.3f, last_chosen=%s, recent_selections=%d, last_working_day_penalty=%t, tie_break_bonus=%.3f",
			c.User.Mail, c.Weight, lastChosen, c.RecentSelections, c.PenaltyApplied, c.TieBreakBonus)
	}
}

func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// isoWeekday converts Go's weekday (Sunday=0) to ISO 8601 (Monday=1..Sunday=7).
func isoWeekday(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return domain.Sunday
}
