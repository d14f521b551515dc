package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/arnavseth183/CrossBorderTransactionChain/ledger_core"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Engine executes transfers. Execute is safe to call from many
// goroutines; all balance mutation happens under row locks inside one
// database transaction.
type Engine interface {
	Execute(ctx context.Context, senderID uint, receiverAddress string, amount decimal.Decimal, note string) (*ledger_core.Transaction, error)
}

type engineImpl struct {
	db   *gorm.DB
	fees *ledger_core.FeeSchedule
}

func NewEngine(db *gorm.DB, fees *ledger_core.FeeSchedule) Engine {
	return &engineImpl{
		db:   db,
		fees: fees,
	}
}

// Execute validates and settles one transfer. Validation order is fixed:
// amount, receiver resolution, self-transfer, role policy, balance
// against amount, then balance against amount plus fee. On success the
// sender debit, receiver credit, fee-vault credit and log append commit
// as one unit; on any failure nothing is written. The engine never
// retries: resubmitting appends a new transaction, so retry is the
// caller's call.
func (e *engineImpl) Execute(ctx context.Context, senderID uint, receiverAddress string, amount decimal.Decimal, note string) (*ledger_core.Transaction, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", ledger_core.ErrInvalidInput)
	}
	if !amount.Equal(amount.Round(2)) {
		return nil, fmt.Errorf("%w: amount has sub-cent precision", ledger_core.ErrInvalidInput)
	}

	var trx *ledger_core.Transaction
	err := ledger_core.OpenTransaction(ctx, e.db, func(tx *gorm.DB, books *ledger_core.Books) error {
		receiver, err := books.Accounts.GetByAddress(receiverAddress)
		if err != nil {
			return err
		}
		if receiver.ID == senderID {
			return ledger_core.ErrSelfTransfer
		}

		// Row locks in ascending id order; MutateBalances below
		// re-acquires them in the same order within this transaction.
		first, second := senderID, receiver.ID
		if first > second {
			first, second = second, first
		}
		if _, err = books.Accounts.Lock(first); err != nil {
			return err
		}
		if _, err = books.Accounts.Lock(second); err != nil {
			return err
		}

		sender, err := books.Accounts.Get(senderID)
		if err != nil {
			return err
		}
		receiver, err = books.Accounts.Get(receiver.ID)
		if err != nil {
			return err
		}

		if sender.Role == ledger_core.RoleAdmin || receiver.Role == ledger_core.RoleAdmin {
			return ledger_core.ErrRoleForbidden
		}

		if sender.Balance.LessThan(amount) {
			return fmt.Errorf("%w: balance %s, amount %s",
				ledger_core.ErrInsufficientFunds,
				sender.Balance.StringFixed(2), amount.StringFixed(2))
		}

		fee, crossBorder := e.fees.CrossBorderFee(sender.Country, receiver.Country, amount)

		totalDebit := amount.Add(fee)
		if sender.Balance.LessThan(totalDebit) {
			return fmt.Errorf("%w: balance %s, amount+fee %s",
				ledger_core.ErrInsufficientFundsForFee,
				sender.Balance.StringFixed(2), totalDebit.StringFixed(2))
		}

		deltas := map[uint]decimal.Decimal{
			sender.ID:   totalDebit.Neg(),
			receiver.ID: amount,
		}
		if fee.IsPositive() {
			vault, err := books.Accounts.GetByAddress(ledger_core.FeeVaultAddress)
			if err != nil {
				return err
			}
			deltas[vault.ID] = fee
		}

		if err = books.Accounts.MutateBalances(deltas); err != nil {
			return err
		}

		trx = &ledger_core.Transaction{
			SenderAddress:   sender.Address,
			SenderCountry:   sender.Country,
			ReceiverAddress: receiver.Address,
			ReceiverCountry: receiver.Country,
			Amount:          amount,
			Fee:             fee,
			CrossBorder:     crossBorder,
			Note:            note,
			Created:         time.Now(),
		}

		return books.Log.Append(trx)
	})

	if err != nil {
		return nil, err
	}
	return trx, nil
}
