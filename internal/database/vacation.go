package database

import (
	"fmt"
	"time"

	"github.com/dutybot/catcher/internal/domain"
	"github.com/dutybot/catcher/internal/domain/contract"
	"github.com/dutybot/catcher/internal/domain/entity"
)

type vacationRepo struct {
	db dbConn
}

func newVacationRepo(db dbConn) contract.VacationRepo {
	return &vacationRepo{db: db}
}

func (r *vacationRepo) Create(period *entity.VacationPeriod) error {
	query := `
		INSERT INTO vacation (user_id, start_date, end_date)
		VALUES (?, ?, ?)
	`

	result, err := r.db.Exec(query,
		period.UserID,
		period.StartDate.Format(domain.DateLayout),
		period.EndDate.Format(domain.DateLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to create vacation period: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	period.ID = id
	return nil
}

func (r *vacationRepo) GetByUser(userID int64) ([]*entity.VacationPeriod, error) {
	query := `
		SELECT id, user_id, start_date, end_date
		FROM vacation
		WHERE user_id = ?
		ORDER BY start_date ASC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vacation periods: %w", err)
	}
	defer rows.Close()

	var periods []*entity.VacationPeriod
	for rows.Next() {
		period := &entity.VacationPeriod{}
		var start, end string

		if err := rows.Scan(&period.ID, &period.UserID, &start, &end); err != nil {
			return nil, fmt.Errorf("failed to scan vacation period: %w", err)
		}

		if period.StartDate, err = time.Parse(domain.DateLayout, start); err != nil {
			return nil, fmt.Errorf("malformed start_date for vacation %d: %w", period.ID, err)
		}
		if period.EndDate, err = time.Parse(domain.DateLayout, end); err != nil {
			return nil, fmt.Errorf("malformed end_date for vacation %d: %w", period.ID, err)
		}

		periods = append(periods, period)
	}

	return periods, rows.Err()
}

// IsOnVacation reports whether any vacation period of the user covers date.
// Both period bounds are inclusive.
func (r *vacationRepo) IsOnVacation(userID int64, date time.Time) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM vacation
		WHERE user_id = ?
		  AND ? BETWEEN start_date AND end_date
	`

	var count int
	err := r.db.QueryRow(query, userID, date.Format(domain.DateLayout)).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check vacation status: %w", err)
	}

	return count > 0, nil
}
