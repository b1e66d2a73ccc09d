package service

import (
	"math/rand"
	"testing"
	"time"

	"github.com/dutybot/catcher/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_weightFor(t *testing.T) {
	svc := &selectionService{params: DefaultParams()}
	date := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)

	t.Run("never selected contributes exactly 365", func(t *testing.T) {
		user := &entity.User{Mail: "new@example.com"}

		weight := svc.weightFor(user, date, 0, false)

		assert.Equal(t, float64(465), weight)
	})

	t.Run("days since last selection are added", func(t *testing.T) {
		last := date.AddDate(0, 0, -12)
		user := &entity.User{Mail: "old@example.com", LastChosen: &last}

		weight := svc.weightFor(user, date, 0, false)

		assert.Equal(t, float64(112), weight)
	})

	t.Run("penalty and frequency are subtracted", func(t *testing.T) {
		last := date.AddDate(0, 0, -1)
		user := &entity.User{Mail: "busy@example.com", LastChosen: &last}

		weight := svc.weightFor(user, date, 3, true)

		// 100 + 1 - 50 - 15
		assert.Equal(t, float64(36), weight)
	})

	t.Run("weight is clamped to a minimum of 1", func(t *testing.T) {
		last := date
		user := &entity.User{Mail: "hammered@example.com", LastChosen: &last}

		weight := svc.weightFor(user, date, 100, true)

		assert.Equal(t, float64(1), weight)
	})
}

func Test_applyTieBreaks(t *testing.T) {
	date := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)

	makeTied := func() []*entity.Candidate {
		older := date.AddDate(0, 0, -40)
		newer := date.AddDate(0, 0, -10)
		return []*entity.Candidate{
			{User: &entity.User{Mail: "carol@example.com", LastChosen: &newer}, Weight: 100},
			{User: &entity.User{Mail: "bob@example.com"}, Weight: 100},
			{User: &entity.User{Mail: "alice@example.com", LastChosen: &older}, Weight: 100},
		}
	}

	t.Run("tied weights become pairwise distinct", func(t *testing.T) {
		candidates := makeTied()
		applyTieBreaks(candidates)

		seen := map[float64]string{}
		for _, c := range candidates {
			prev, dup := seen[c.Weight]
			require.False(t, dup, "%s and %s share weight %f", prev, c.User.Mail, c.Weight)
			seen[c.Weight] = c.User.Mail
		}
	})

	t.Run("rank order is never-selected first, then earliest last_chosen", func(t *testing.T) {
		candidates := makeTied()
		applyTieBreaks(candidates)

		weights := map[string]float64{}
		for _, c := range candidates {
			weights[c.User.Mail] = c.Weight
		}

		// bob (never selected) outranks alice (40 days ago) outranks carol.
		assert.Equal(t, 100.1, weights["bob@example.com"])
		assert.Equal(t, 100.05, weights["alice@example.com"])
		assert.InDelta(t, 100.0333, weights["carol@example.com"], 0.0001)
	})

	t.Run("re-running on identical input yields identical weights", func(t *testing.T) {
		first := makeTied()
		second := makeTied()
		applyTieBreaks(first)
		applyTieBreaks(second)

		for i := range first {
			assert.Equal(t, second[i].Weight, first[i].Weight)
			assert.Equal(t, second[i].TieBreakBonus, first[i].TieBreakBonus)
		}
	})

	t.Run("singleton weight groups are untouched", func(t *testing.T) {
		candidates := []*entity.Candidate{
			{User: &entity.User{Mail: "alice@example.com"}, Weight: 100},
			{User: &entity.User{Mail: "bob@example.com"}, Weight: 90},
		}
		applyTieBreaks(candidates)

		assert.Equal(t, float64(100), candidates[0].Weight)
		assert.Equal(t, float64(90), candidates[1].Weight)
		assert.Zero(t, candidates[0].TieBreakBonus)
		assert.Zero(t, candidates[1].TieBreakBonus)
	})
}

func Test_sampleWeighted(t *testing.T) {
	makeCandidates := func() []*entity.Candidate {
		return []*entity.Candidate{
			{User: &entity.User{Mail: "heavy@example.com"}, Weight: 60},
			{User: &entity.User{Mail: "medium@example.com"}, Weight: 30},
			{User: &entity.User{Mail: "light@example.com"}, Weight: 10},
		}
	}

	t.Run("sole candidate is returned without drawing", func(t *testing.T) {
		only := []*entity.Candidate{{User: &entity.User{Mail: "solo@example.com"}, Weight: 1}}

		selected := sampleWeighted(only, nil)

		assert.Equal(t, "solo@example.com", selected.User.Mail)
	})

	t.Run("fixed seed always returns the same candidate", func(t *testing.T) {
		first := sampleWeighted(makeCandidates(), rand.New(rand.NewSource(7)))
		second := sampleWeighted(makeCandidates(), rand.New(rand.NewSource(7)))

		assert.Equal(t, first.User.Mail, second.User.Mail)
	})

	t.Run("empirical frequency converges to weight share", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		const draws = 20000

		counts := map[string]int{}
		for i := 0; i < draws; i++ {
			counts[sampleWeighted(makeCandidates(), rng).User.Mail]++
		}

		assert.InDelta(t, 0.60, float64(counts["heavy@example.com"])/draws, 0.02)
		assert.InDelta(t, 0.30, float64(counts["medium@example.com"])/draws, 0.02)
		assert.InDelta(t, 0.10, float64(counts["light@example.com"])/draws, 0.02)
	})
}
