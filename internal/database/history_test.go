package database

import (
	"testing"
	"time"

	"github.com/dutybot/catcher/internal/domain"
	"github.com/dutybot/catcher/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHistoryTest(t *testing.T) (*DB, *entity.User, *entity.User) {
	t.Helper()

	db := SetupTestDB(t)
	t.Cleanup(func() { CleanupTestDB(t, db) })

	userRepo := newUserRepo(db.conn)

	alice := &entity.User{Mail: "alice@example.com", Weekdays: domain.DefaultDutyDays}
	bob := &entity.User{Mail: "bob@example.com", Weekdays: domain.DefaultDutyDays}
	require.NoError(t, userRepo.Create(alice))
	require.NoError(t, userRepo.Create(bob))

	return db, alice, bob
}

func TestHistoryRepo_GetSelectedOnDate(t *testing.T) {
	db, alice, _ := setupHistoryTest(t)
	historyRepo := newHistoryRepo(db.conn)

	date := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	require.NoError(t, historyRepo.Create(alice.ID, date))

	t.Run("returns the recorded user id", func(t *testing.T) {
		userID, found, err := historyRepo.GetSelectedUserID(date)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, alice.ID, userID)
	})

	t.Run("returns the recorded mail", func(t *testing.T) {
		mail, found, err := historyRepo.GetSelectedMail(date)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "alice@example.com", mail)
	})

	t.Run("reports no selection for other dates", func(t *testing.T) {
		_, found, err := historyRepo.GetSelectedUserID(date.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestHistoryRepo_CountByUserInRange(t *testing.T) {
	db, alice, bob := setupHistoryTest(t)
	historyRepo := newHistoryRepo(db.conn)

	today := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	from := today.AddDate(0, 0, -30)

	require.NoError(t, historyRepo.Create(alice.ID, from))                    // on the lower bound, counted
	require.NoError(t, historyRepo.Create(alice.ID, from.AddDate(0, 0, -1))) // before the window
	require.NoError(t, historyRepo.Create(alice.ID, today.AddDate(0, 0, -5)))
	require.NoError(t, historyRepo.Create(alice.ID, today)) // upper bound is exclusive
	require.NoError(t, historyRepo.Create(bob.ID, today.AddDate(0, 0, -3)))

	count, err := historyRepo.CountByUserInRange(alice.ID, from, today)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestHistoryRepo_DeleteOlderThan(t *testing.T) {
	db, alice, _ := setupHistoryTest(t)
	historyRepo := newHistoryRepo(db.conn)

	cutoff := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)

	require.NoError(t, historyRepo.Create(alice.ID, cutoff.AddDate(0, 0, -2)))
	require.NoError(t, historyRepo.Create(alice.ID, cutoff.AddDate(0, 0, -1)))
	require.NoError(t, historyRepo.Create(alice.ID, cutoff))
	require.NoError(t, historyRepo.Create(alice.ID, cutoff.AddDate(0, 0, 1)))

	count, err := historyRepo.CountOlderThan(cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	deleted, err := historyRepo.DeleteOlderThan(cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	// The entry exactly on the cutoff date survives.
	_, found, err := historyRepo.GetSelectedUserID(cutoff)
	require.NoError(t, err)
	assert.True(t, found)

	remaining, err := historyRepo.CountOlderThan(cutoff.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(2), remaining)
}
