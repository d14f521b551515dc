package crossborder

import (
	"errors"

	"github.com/arnavseth183/CrossBorderTransactionChain/ledger_core"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MigrationHandler func() error

func NewMigrationHandler(db *gorm.DB, log zerolog.Logger) MigrationHandler {
	return func() error {
		log.Info().Msg("migrating ledger service")
		return db.AutoMigrate(
			&ledger_core.Account{},
			&ledger_core.Transaction{},
		)
	}
}

type SeedHandler func() error

// NewSeedHandler creates the reserved platform fee-vault account when it
// does not exist yet. The vault has no deletion secret, so the lifecycle
// service can never remove it.
func NewSeedHandler(db *gorm.DB, log zerolog.Logger) SeedHandler {
	return func() error {
		var vault ledger_core.Account
		err := db.Model(&ledger_core.Account{}).
			Where("address = ?", ledger_core.FeeVaultAddress).
			First(&vault).
			Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		log.Info().Msg("seeding platform fee vault")
		return db.Create(&ledger_core.Account{
			Username: "platform_fees",
			Email:    "fees@platform.internal",
			Role:     ledger_core.RoleBank,
			Country:  "US",
			Address:  ledger_core.FeeVaultAddress,
			Balance:  decimal.Zero,
		}).Error
	}
}
