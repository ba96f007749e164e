package postgres

import (
	"context"

	"rolodex/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager runs use case work inside a single database
// transaction and hands the work a factory of transaction-bound repositories.
type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager builds the manager over the shared gorm client.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute opens a transaction and invokes fn with repositories bound to it.
// A non-nil error from fn rolls the transaction back and comes back
// unchanged, so domain sentinels survive errors.Is at the caller. A panic
// inside fn rolls back and keeps unwinding.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositoryFactory{tx: tx})
	})
}

// gormRepositoryFactory builds repositories over one transaction handle.
// gorm represents a transaction as another *gorm.DB.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) ContactRepo() repository.ContactRepository {
	return NewContactRepository(f.tx)
}
