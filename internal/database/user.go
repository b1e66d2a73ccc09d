package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dutybot/catcher/internal/domain"
	"github.com/dutybot/catcher/internal/domain/contract"
	"github.com/dutybot/catcher/internal/domain/entity"
)

type userRepo struct {
	db dbConn
}

func newUserRepo(db dbConn) contract.UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) Create(user *entity.User) error {
	weekdays, err := json.Marshal(user.Weekdays)
	if err != nil {
		return fmt.Errorf("failed to marshal weekdays: %w", err)
	}

	var lastChosen interface{}
	if user.LastChosen != nil {
		lastChosen = user.LastChosen.Format(domain.DateLayout)
	}

	query := `
		INSERT INTO user (mail, weekdays, last_chosen)
		VALUES (?, ?, ?)
	`

	result, err := r.db.Exec(query, user.Mail, string(weekdays), lastChosen)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	user.ID = id
	return nil
}

func (r *userRepo) GetByMail(mail string) (*entity.User, error) {
	query := `
		SELECT id, mail, weekdays, last_chosen
		FROM user
		WHERE mail = ?
	`

	user, err := scanUser(r.db.QueryRow(query, mail))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (r *userRepo) GetAll() ([]*entity.User, error) {
	query := `
		SELECT id, mail, weekdays, last_chosen
		FROM user
		ORDER BY mail ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *userRepo) SetLastChosen(userID int64, date time.Time) error {
	query := `UPDATE user SET last_chosen = ? WHERE id = ?`

	_, err := r.db.Exec(query, date.Format(domain.DateLayout), userID)
	if err != nil {
		return fmt.Errorf("failed to set last chosen: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*entity.User, error) {
	user := &entity.User{}

	var weekdays string
	var lastChosen sql.NullString

	if err := row.Scan(&user.ID, &user.Mail, &weekdays, &lastChosen); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(weekdays), &user.Weekdays); err != nil {
		return nil, fmt.Errorf("malformed weekdays for user %d: %w", user.ID, err)
	}

	if lastChosen.Valid {
		t, err := time.Parse(domain.DateLayout, lastChosen.String)
		if err != nil {
			return nil, fmt.Errorf("malformed last_chosen for user %d: %w", user.ID, err)
		}
		user.LastChosen = &t
	}

	return user, nil
}
