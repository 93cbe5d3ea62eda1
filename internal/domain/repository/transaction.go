package repository

import "context"

// TransactionManager runs a unit of work against the device store. Every
// device mutation reads the device, checks the transition and writes it back
// inside one Execute call, so a failure leaves the stored device untouched.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. fn's
	// error is returned unchanged.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	DeviceRepo() DeviceRepository
	ProfileRepo() ProfileRepository
}
