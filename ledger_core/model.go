package ledger_core

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleBank     Role = "bank"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleBank, RoleAdmin:
		return true
	default:
		return false
	}
}

// FeeVaultAddress is the reserved address of the platform fee account.
// Cross-border fees are credited here so that the total balance across
// all accounts is invariant under transfers.
const FeeVaultAddress = "platform:fee-vault"

// Account holds a party's balance. Address is assigned once at
// registration and never reassigned; Role is fixed after creation.
type Account struct {
	ID               uint            `json:"id" gorm:"primarykey"`
	Username         string          `json:"username"`
	Email            string          `json:"email" gorm:"index:acc_email,unique"`
	PasswordHash     string          `json:"-"`
	Role             Role            `json:"role"`
	Country          string          `json:"country"`
	Address          string          `json:"address" gorm:"index:acc_address,unique"`
	Balance          decimal.Decimal `json:"balance" gorm:"type:decimal(20,2)"`
	DeleteSecretHash string          `json:"-"`
	Created          time.Time       `json:"created"`
}

// Transaction is a completed transfer. Records are append-only: no code
// path updates or deletes a row once it is written, and an account's
// deletion leaves its history untouched.
type Transaction struct {
	ID              uint            `json:"id" gorm:"primarykey"`
	SenderAddress   string          `json:"sender_address" gorm:"index"`
	SenderCountry   string          `json:"sender_country"`
	ReceiverAddress string          `json:"receiver_address" gorm:"index"`
	ReceiverCountry string          `json:"receiver_country"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:decimal(20,2)"`
	Fee             decimal.Decimal `json:"fee" gorm:"type:decimal(20,2)"`
	CrossBorder     bool            `json:"cross_border"`
	Note            string          `json:"note"`
	Created         time.Time       `json:"created"`
}

// Participant reports whether addr is on either side of the transaction.
func (t *Transaction) Participant(addr string) bool {
	return t.SenderAddress == addr || t.ReceiverAddress == addr
}

// TotalDebit is what the sender actually paid.
func (t *Transaction) TotalDebit() decimal.Decimal {
	return t.Amount.Add(t.Fee)
}
