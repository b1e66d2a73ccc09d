package contract

import (
	"context"
	"time"

	"github.com/dutybot/catcher/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	User() UserRepo
	Vacation() VacationRepo
	History() SelectionHistoryRepo
}

// UserRepo defines the contract for the user repository
type UserRepo interface {
	Create(user *entity.User) error
	GetByMail(mail string) (*entity.User, error)
	GetAll() ([]*entity.User, error)
	SetLastChosen(userID int64, date time.Time) error
}

// VacationRepo defines the contract for the vacation-period repository
type VacationRepo interface {
	Create(period *entity.VacationPeriod) error
	GetByUser(userID int64) ([]*entity.VacationPeriod, error)
	IsOnVacation(userID int64, date time.Time) (bool, error)
}

// SelectionHistoryRepo defines the contract for the selection-history ledger
type SelectionHistoryRepo interface {
	Create(userID int64, date time.Time) error
	GetSelectedUserID(date time.Time) (int64, bool, error)
	GetSelectedMail(date time.Time) (string, bool, error)
	CountByUserInRange(userID int64, from, to time.Time) (int, error)
	CountOlderThan(cutoff time.Time) (int64, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}
