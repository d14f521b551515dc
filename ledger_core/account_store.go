package ledger_core

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountStore is the durable account mapping. Bind it to a transaction
// via OpenTransaction when mutations must be atomic with other writes.
type AccountStore struct {
	db *gorm.DB
}

func NewAccountStore(db *gorm.DB) *AccountStore {
	return &AccountStore{db: db}
}

func (s *AccountStore) Get(id uint) (*Account, error) {
	var acc Account
	err := s.db.Model(&Account{}).First(&acc, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrAccountNotFound, id)
		}
		return nil, StorageErr(err)
	}
	return &acc, nil
}

func (s *AccountStore) GetByAddress(address string) (*Account, error) {
	var acc Account
	err := s.db.Model(&Account{}).
		Where("address = ?", address).
		First(&acc).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: address %s", ErrAccountNotFound, address)
		}
		return nil, StorageErr(err)
	}
	return &acc, nil
}

func (s *AccountStore) GetByEmail(email string) (*Account, error) {
	var acc Account
	err := s.db.Model(&Account{}).
		Where("email = ?", email).
		First(&acc).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: email %s", ErrAccountNotFound, email)
		}
		return nil, StorageErr(err)
	}
	return &acc, nil
}

// Lock reads an account under a FOR UPDATE row lock. Must run inside a
// transaction; the lock is held until the transaction ends.
func (s *AccountStore) Lock(id uint) (*Account, error) {
	var acc Account
	err := s.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&acc, id).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrAccountNotFound, id)
		}
		return nil, StorageErr(err)
	}
	return &acc, nil
}

// Create persists a new account. Duplicate identifier, address or email
// surfaces as ErrConflict via the driver's duplicate-key translation.
func (s *AccountStore) Create(acc *Account) error {
	err := s.db.Create(acc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: email %s", ErrConflict, acc.Email)
		}
		return StorageErr(err)
	}
	return nil
}

// MutateBalances applies every delta or none of them. Rows are locked in
// ascending id order so two overlapping mutations cannot deadlock, and
// any delta that would drive a balance negative aborts the whole batch.
// Mutations over disjoint account sets do not contend on each other's
// row locks.
func (s *AccountStore) MutateBalances(deltas map[uint]decimal.Decimal) error {
	if len(deltas) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(deltas))
	for id := range deltas {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	err := s.db.Transaction(func(tx *gorm.DB) error {
		locked := NewAccountStore(tx)
		for _, id := range ids {
			acc, err := locked.Lock(id)
			if err != nil {
				return err
			}

			next := acc.Balance.Add(deltas[id])
			if next.IsNegative() {
				return fmt.Errorf("%w: account %d", ErrInsufficientFunds, id)
			}

			err = tx.Model(&Account{}).
				Where("id = ?", id).
				Update("balance", next).
				Error
			if err != nil {
				return err
			}
		}
		return nil
	})

	return StorageErr(err)
}

func (s *AccountStore) Delete(id uint) error {
	res := s.db.Delete(&Account{}, id)
	if res.Error != nil {
		return StorageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrAccountNotFound, id)
	}
	return nil
}

// SumBalances totals every balance in the store, fee vault included.
// Summed in Go so decimal precision does not depend on the SQL dialect.
func (s *AccountStore) SumBalances() (decimal.Decimal, error) {
	var accounts []*Account
	err := s.db.Model(&Account{}).Find(&accounts).Error
	if err != nil {
		return decimal.Zero, StorageErr(err)
	}

	total := decimal.Zero
	for _, acc := range accounts {
		total = total.Add(acc.Balance)
	}
	return total, nil
}
