package ledger_mock

import (
	"fmt"
	"testing"

	crossborder "github.com/arnavseth183/CrossBorderTransactionChain"
	"github.com/arnavseth183/CrossBorderTransactionChain/ledger_core"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MockDatabase opens a fresh in-memory sqlite database, runs the real
// migration and seed, and closes it when the test ends. A single pooled
// connection keeps concurrent test transactions serialized the way
// sqlite wants them.
func MockDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	log := zerolog.Nop()
	require.NoError(t, crossborder.NewMigrationHandler(db, log)())
	require.NoError(t, crossborder.NewSeedHandler(db, log)())

	return db
}

type AccountSeed struct {
	Username     string
	Role         ledger_core.Role
	Country      string
	Balance      decimal.Decimal
	DeleteSecret string
}

// PopulateAccount inserts a ready-made account, skipping the lifecycle
// service so tests can pin balances directly.
func PopulateAccount(t *testing.T, db *gorm.DB, seed *AccountSeed) *ledger_core.Account {
	t.Helper()

	role := seed.Role
	if role == "" {
		role = ledger_core.RoleCustomer
	}

	var secretHash string
	if seed.DeleteSecret != "" {
		// MinCost keeps the suite fast; production uses DefaultCost.
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.DeleteSecret), bcrypt.MinCost)
		require.NoError(t, err)
		secretHash = string(hash)
	}

	acc := &ledger_core.Account{
		Username:         seed.Username,
		Email:            fmt.Sprintf("%s@test.local", seed.Username),
		PasswordHash:     "x",
		Role:             role,
		Country:          seed.Country,
		Address:          uuid.NewString(),
		Balance:          seed.Balance,
		DeleteSecretHash: secretHash,
	}
	require.NoError(t, db.Create(acc).Error)

	return acc
}

// FeeVault fetches the seeded platform fee account.
func FeeVault(t *testing.T, db *gorm.DB) *ledger_core.Account {
	t.Helper()

	vault, err := ledger_core.NewAccountStore(db).GetByAddress(ledger_core.FeeVaultAddress)
	require.NoError(t, err)
	return vault
}
