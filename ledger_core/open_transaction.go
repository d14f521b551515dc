package ledger_core

import (
	"context"

	"gorm.io/gorm"
)

// Books bundles the store services bound to one database transaction.
type Books struct {
	Accounts *AccountStore
	Log      *TransactionLog
}

// OpenTransaction runs handle inside a single database transaction.
// Everything written through books commits or rolls back as one unit.
// Errors that are not domain errors come back as ErrStorageUnavailable,
// which guarantees the caller no partial effect is observable.
func OpenTransaction(ctx context.Context, db *gorm.DB, handle func(tx *gorm.DB, books *Books) error) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		books := &Books{
			Accounts: NewAccountStore(tx),
			Log:      NewTransactionLog(tx),
		}
		return handle(tx, books)
	})

	return StorageErr(err)
}
