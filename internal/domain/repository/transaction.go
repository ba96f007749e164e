package repository

import "context"

// TransactionManager groups repository writes into one database transaction
// without leaking the driver into the use case layer.
type TransactionManager interface {
	// Execute invokes fn inside a transaction. An error from fn rolls the
	// work back and is returned; otherwise the transaction commits. The
	// factory hands fn repositories bound to that transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory builds repositories that share one transaction.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// ContactRepo returns a ContactRepository bound to the current transaction.
	ContactRepo() ContactRepository
}
