package ledger_core_test

import (
	"testing"

	"github.com/arnavseth183/CrossBorderTransactionChain/ledger_core"
	"github.com/arnavseth183/CrossBorderTransactionChain/ledger_mock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateDuplicateEmailConflict(t *testing.T) {
	db := ledger_mock.MockDatabase(t)
	store := ledger_core.NewAccountStore(db)

	ledger_mock.PopulateAccount(t, db, &ledger_mock.AccountSeed{
		Username: "alice",
		Country:  "US",
		Balance:  decimal.NewFromInt(100),
	})

	err := store.Create(&ledger_core.Account{
		Username:     "alice2",
		Email:        "alice@test.local",
		PasswordHash: "x",
		Role:         ledger_core.RoleCustomer,
		Country:      "US",
		Address:      "addr-alice2",
		Balance:      decimal.Zero,
	})
	assert.ErrorIs(t, err, ledger_core.ErrConflict)
}

func TestGetByAddressNotFound(t *testing.T) {
	db := ledger_mock.MockDatabase(t)
	store := ledger_core.NewAccountStore(db)

	_, err := store.GetByAddress("no-such-address")
	assert.ErrorIs(t, err, ledger_core.ErrAccountNotFound)

	_, err = store.Get(99999)
	assert.ErrorIs(t, err, ledger_core.ErrAccountNotFound)
}

func TestMutateBalancesAppliesAllDeltas(t *testing.T) {
	db := ledger_mock.MockDatabase(t)
	store := ledger_core.NewAccountStore(db)

	alice := ledger_mock.PopulateAccount(t, db, &ledger_mock.AccountSeed{
		Username: "alice",
		Country:  "US",
		Balance:  decimal.NewFromInt(100),
	})
	bob := ledger_mock.PopulateAccount(t, db, &ledger_mock.AccountSeed{
		Username: "bob",
		Country:  "US",
		Balance:  decimal.NewFromInt(50),
	})

	err := store.MutateBalances(map[uint]decimal.Decimal{
		alice.ID: decimal.NewFromInt(-30),
		bob.ID:   decimal.NewFromInt(30),
	})
	assert.NoError(t, err)

	alice2, err := store.Get(alice.ID)
	assert.NoError(t, err)
	assert.Equal(t, "70.00", alice2.Balance.StringFixed(2))

	bob2, err := store.Get(bob.ID)
	assert.NoError(t, err)
	assert.Equal(t, "80.00", bob2.Balance.StringFixed(2))
}

func TestMutateBalancesAllOrNothing(t *testing.T) {
	db := ledger_mock.MockDatabase(t)
	store := ledger_core.NewAccountStore(db)

	alice := ledger_mock.PopulateAccount(t, db, &ledger_mock.AccountSeed{
		Username: "alice",
		Country:  "US",
		Balance:  decimal.NewFromInt(100),
	})
	bob := ledger_mock.PopulateAccount(t, db, &ledger_mock.AccountSeed{
		Username: "bob",
		Country:  "US",
		Balance:  decimal.NewFromInt(50),
	})

	// alice cannot cover 150: the whole batch must roll back
	err := store.MutateBalances(map[uint]decimal.Decimal{
		alice.ID: decimal.NewFromInt(-150),
		bob.ID:   decimal.NewFromInt(150),
	})
	assert.ErrorIs(t, err, ledger_core.ErrInsufficientFunds)

	alice2, _ := store.Get(alice.ID)
	bob2, _ := store.Get(bob.ID)
	assert.Equal(t, "100.00", alice2.Balance.StringFixed(2))
	assert.Equal(t, "50.00", bob2.Balance.StringFixed(2))
}

func TestMutateBalancesUnknownAccount(t *testing.T) {
	db := ledger_mock.MockDatabase(t)
	store := ledger_core.NewAccountStore(db)

	alice := ledger_mock.PopulateAccount(t, db, &ledger_mock.AccountSeed{
		Username: "alice",
		Country:  "US",
		Balance:  decimal.NewFromInt(100),
	})

	err := store.MutateBalances(map[uint]decimal.Decimal{
		alice.ID: decimal.NewFromInt(-10),
		99999:    decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, ledger_core.ErrAccountNotFound)

	alice2, _ := store.Get(alice.ID)
	assert.Equal(t, "100.00", alice2.Balance.StringFixed(2))
}

func TestDeleteAccount(t *testing.T) {
	db := ledger_mock.MockDatabase(t)
	store := ledger_core.NewAccountStore(db)

	alice := ledger_mock.PopulateAccount(t, db, &ledger_mock.AccountSeed{
		Username: "alice",
		Country:  "US",
		Balance:  decimal.NewFromInt(100),
	})

	assert.NoError(t, store.Delete(alice.ID))

	_, err := store.Get(alice.ID)
	assert.ErrorIs(t, err, ledger_core.ErrAccountNotFound)

	assert.ErrorIs(t, store.Delete(alice.ID), ledger_core.ErrAccountNotFound)
}

func TestSumBalances(t *testing.T) {
	db := ledger_mock.MockDatabase(t)
	store := ledger_core.NewAccountStore(db)

	ledger_mock.PopulateAccount(t, db, &ledger_mock.AccountSeed{
		Username: "alice",
		Country:  "US",
		Balance:  decimal.NewFromInt(100),
	})
	ledger_mock.PopulateAccount(t, db, &ledger_mock.AccountSeed{
		Username: "bob",
		Country:  "GB",
		Balance:  decimal.RequireFromString("0.50"),
	})

	total, err := store.SumBalances()
	assert.NoError(t, err)
	assert.Equal(t, "100.50", total.StringFixed(2))
}
