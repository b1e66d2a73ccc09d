package holiday

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	holiday bool
	err     error
	calls   int
}

func (s *stubSource) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	s.calls++
	return s.holiday, s.err
}

func TestResolver_IsNonWorkingDay(t *testing.T) {
	ctx := context.Background()
	offline := NewOfflineSource("BW")

	saturday := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2025, time.March, 18, 0, 0, 0, 0, time.UTC)

	t.Run("weekends are non-working regardless of sources", func(t *testing.T) {
		broken := &stubSource{err: errors.New("service down")}
		r := NewResolver(broken, offline)

		assert.True(t, r.IsNonWorkingDay(ctx, saturday))
		assert.True(t, r.IsNonWorkingDay(ctx, sunday))
		assert.Zero(t, broken.calls, "weekend check must short-circuit the sources")
	})

	t.Run("first source answer wins", func(t *testing.T) {
		remote := &stubSource{holiday: true}
		r := NewResolver(remote, offline)

		assert.True(t, r.IsNonWorkingDay(ctx, tuesday))
		assert.Equal(t, 1, remote.calls)
	})

	t.Run("falls back to the offline calendar when the remote fails", func(t *testing.T) {
		remote := &stubSource{err: errors.New("timeout")}
		r := NewResolver(remote, offline)

		// Neujahr is in the offline dataset even with the remote down.
		newYear := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
		assert.True(t, r.IsNonWorkingDay(ctx, newYear))

		assert.False(t, r.IsNonWorkingDay(ctx, tuesday))
	})

	t.Run("fails open when every source errors", func(t *testing.T) {
		r := &Resolver{sources: []Source{
			&stubSource{err: errors.New("remote down")},
			&stubSource{err: errors.New("dataset missing")},
		}}

		assert.False(t, r.IsNonWorkingDay(ctx, tuesday))
	})
}

func TestOfflineSource_IsHoliday(t *testing.T) {
	ctx := context.Background()

	t.Run("knows nationwide holidays", func(t *testing.T) {
		src := NewOfflineSource("BW")

		newYear := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
		holiday, err := src.IsHoliday(ctx, newYear)
		require.NoError(t, err)
		assert.True(t, holiday)

		ordinary := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
		holiday, err = src.IsHoliday(ctx, ordinary)
		require.NoError(t, err)
		assert.False(t, holiday)
	})

	t.Run("knows state-specific holidays", func(t *testing.T) {
		epiphany := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)

		bw := NewOfflineSource("BW")
		holiday, err := bw.IsHoliday(ctx, epiphany)
		require.NoError(t, err)
		assert.True(t, holiday, "Epiphany is a holiday in Baden-Württemberg")

		berlin := NewOfflineSource("BE")
		holiday, err = berlin.IsHoliday(ctx, epiphany)
		require.NoError(t, err)
		assert.False(t, holiday, "Epiphany is not a holiday in Berlin")
	})

	t.Run("unknown regions fall back to nationwide holidays", func(t *testing.T) {
		src := NewOfflineSource("XX")

		newYear := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
		holiday, err := src.IsHoliday(ctx, newYear)
		require.NoError(t, err)
		assert.True(t, holiday)
	})
}

func TestResolver_LastWorkingDay(t *testing.T) {
	r := NewResolver(&stubSource{err: errors.New("unused")}, NewOfflineSource("BW"))

	t.Run("skips the weekend", func(t *testing.T) {
		monday := time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC)

		day, ok := r.LastWorkingDay(monday)
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), day)
	})

	t.Run("skips holidays", func(t *testing.T) {
		// Thursday 2025-01-02: the day before is Neujahr, so the walk lands
		// on Tuesday 2024-12-31.
		thursday := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)

		day, ok := r.LastWorkingDay(thursday)
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), day)
	})

	t.Run("plain weekday returns the previous day", func(t *testing.T) {
		wednesday := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)

		day, ok := r.LastWorkingDay(wednesday)
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC), day)
	})
}
