package database

import (
	"context"
	"fmt"

	"github.com/dutybot/catcher/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	userRepo     contract.UserRepo
	vacationRepo contract.VacationRepo
	historyRepo  contract.SelectionHistoryRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := &instance{
		db: db,
	}
	i.userRepo = newUserRepo(db.conn)
	i.vacationRepo = newVacationRepo(db.conn)
	i.historyRepo = newHistoryRepo(db.conn)
	return i
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		userRepo:     newUserRepo(db),
		vacationRepo: newVacationRepo(db),
		historyRepo:  newHistoryRepo(db),
	}
}

// User returns the user repository
func (i *instance) User() contract.UserRepo {
	return i.userRepo
}

// Vacation returns the vacation-period repository
func (i *instance) Vacation() contract.VacationRepo {
	return i.vacationRepo
}

// History returns the selection-history repository
func (i *instance) History() contract.SelectionHistoryRepo {
	return i.historyRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
