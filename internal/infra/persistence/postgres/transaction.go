// Package postgres stores devices and profiles with GORM on PostgreSQL.
package postgres

import (
	"context"

	"jelpi/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager is the Fx provider for repository.TransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// txRepositories binds both repositories to one *gorm.DB transaction handle.
type txRepositories struct {
	devices  repository.DeviceRepository
	profiles repository.ProfileRepository
}

func (r *txRepositories) DeviceRepo() repository.DeviceRepository {
	return r.devices
}

func (r *txRepositories) ProfileRepo() repository.ProfileRepository {
	return r.profiles
}

// Execute pins the transaction to the primary: a transition must see the
// device as last written, never a lagging replica.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error

	err := tm.db.WithContext(ctx).Clauses(dbresolver.Write).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&txRepositories{
			devices:  NewDeviceRepository(tx),
			profiles: NewProfileRepository(tx),
		})

		return fnErr
	})

	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		// Domain errors pass through untouched for the use cases to match on.
		return fnErr
	default:
		return errors.Wrap(err, "device store transaction failed")
	}
}
