package ledger_core

import (
	"time"

	"gorm.io/gorm"
)

// TransactionLog is the append-only history of completed transfers.
// Append is the single write path; nothing in the codebase updates or
// deletes a row, which keeps reads safe without extra locking.
type TransactionLog struct {
	db *gorm.DB
}

func NewTransactionLog(db *gorm.DB) *TransactionLog {
	return &TransactionLog{db: db}
}

// Append persists the transaction and assigns its identifier.
// Identifiers increase with creation order.
func (l *TransactionLog) Append(trx *Transaction) error {
	if trx.Created.IsZero() {
		trx.Created = time.Now()
	}
	err := l.db.Create(trx).Error
	if err != nil {
		return StorageErr(err)
	}
	return nil
}

// ByParticipant lists transactions where address is sender or receiver,
// newest first.
func (l *TransactionLog) ByParticipant(address string, limit, offset int) ([]*Transaction, error) {
	var list []*Transaction
	err := l.query(limit, offset).
		Where("sender_address = ? OR receiver_address = ?", address, address).
		Find(&list).
		Error
	if err != nil {
		return nil, StorageErr(err)
	}
	return list, nil
}

// All lists every transaction, newest first. Privileged: callers gate
// this behind the admin surface.
func (l *TransactionLog) All(limit, offset int) ([]*Transaction, error) {
	var list []*Transaction
	err := l.query(limit, offset).
		Find(&list).
		Error
	if err != nil {
		return nil, StorageErr(err)
	}
	return list, nil
}

func (l *TransactionLog) query(limit, offset int) *gorm.DB {
	q := l.db.Model(&Transaction{}).
		Order("created desc, id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	return q
}
