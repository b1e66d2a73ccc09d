package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dutybot/catcher/internal/domain"
	"github.com/dutybot/catcher/internal/domain/contract"
)

type historyRepo struct {
	db dbConn
}

func newHistoryRepo(db dbConn) contract.SelectionHistoryRepo {
	return &historyRepo{db: db}
}

func (r *historyRepo) Create(userID int64, date time.Time) error {
	query := `
		INSERT INTO selection_history (user_id, selected_date)
		VALUES (?, ?)
	`

	_, err := r.db.Exec(query, userID, date.Format(domain.DateLayout))
	if err != nil {
		return fmt.Errorf("failed to record selection: %w", err)
	}

	return nil
}

func (r *historyRepo) GetSelectedUserID(date time.Time) (int64, bool, error) {
	query := `
		SELECT user_id
		FROM selection_history
		WHERE selected_date = ?
	`

	var userID int64
	err := r.db.QueryRow(query, date.Format(domain.DateLayout)).Scan(&userID)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get selection for date: %w", err)
	}

	return userID, true, nil
}

func (r *historyRepo) GetSelectedMail(date time.Time) (string, bool, error) {
	query := `
		SELECT u.mail
		FROM user u
		JOIN selection_history sh ON u.id = sh.user_id
		WHERE sh.selected_date = ?
	`

	var mail string
	err := r.db.QueryRow(query, date.Format(domain.DateLayout)).Scan(&mail)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get selected mail for date: %w", err)
	}

	return mail, true, nil
}

// CountByUserInRange counts selections of the user with selected_date in
// [from, to).
func (r *historyRepo) CountByUserInRange(userID int64, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM selection_history
		WHERE user_id = ?
		  AND selected_date >= ?
		  AND selected_date < ?
	`

	var count int
	err := r.db.QueryRow(query, userID, from.Format(domain.DateLayout), to.Format(domain.DateLayout)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent selections: %w", err)
	}

	return count, nil
}

func (r *historyRepo) CountOlderThan(cutoff time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM selection_history
		WHERE selected_date < ?
	`

	var count int64
	err := r.db.QueryRow(query, cutoff.Format(domain.DateLayout)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count old selections: %w", err)
	}

	return count, nil
}

// DeleteOlderThan removes entries with selected_date strictly before cutoff;
// entries on the cutoff date itself are retained.
func (r *historyRepo) DeleteOlderThan(cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM selection_history
		WHERE selected_date < ?
	`

	result, err := r.db.Exec(query, cutoff.Format(domain.DateLayout))
	if err != nil {
		return 0, fmt.Errorf("failed to delete old selections: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get deleted row count: %w", err)
	}

	return deleted, nil
}
