package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arnavseth183/CrossBorderTransactionChain/ledger_core"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// StartingBalance is credited to every non-admin account at
// registration. Admin accounts start at zero.
var StartingBalance = decimal.NewFromInt(10000)

type RegisterPayload struct {
	Username     string           `json:"username"`
	Email        string           `json:"email"`
	Password     string           `json:"password"`
	Role         ledger_core.Role `json:"role"`
	Country      string           `json:"country"`
	DeleteSecret string           `json:"delete_secret"`
}

// Lifecycle creates and retires accounts. Balance movement is the
// transfer engine's job; the only balance this service ever writes is
// the starting balance.
type Lifecycle interface {
	Register(ctx context.Context, pay *RegisterPayload) (*ledger_core.Account, error)
	DeleteAccount(ctx context.Context, id uint, suppliedSecret string) error
}

type lifecycleImpl struct {
	db *gorm.DB
}

func NewLifecycle(db *gorm.DB) Lifecycle {
	return &lifecycleImpl{db: db}
}

// Register stores a new account with a fresh, never-reused address.
// Credential and deletion secret are stored as bcrypt hashes only.
func (l *lifecycleImpl) Register(ctx context.Context, pay *RegisterPayload) (*ledger_core.Account, error) {
	if err := validatePayload(pay); err != nil {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(pay.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ledger_core.ErrInvalidInput, err)
	}

	var secretHash []byte
	if pay.DeleteSecret != "" {
		secretHash, err = bcrypt.GenerateFromPassword([]byte(pay.DeleteSecret), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ledger_core.ErrInvalidInput, err)
		}
	}

	balance := StartingBalance
	if pay.Role == ledger_core.RoleAdmin {
		balance = decimal.Zero
	}

	acc := &ledger_core.Account{
		Username:         strings.TrimSpace(pay.Username),
		Email:            strings.ToLower(strings.TrimSpace(pay.Email)),
		PasswordHash:     string(passwordHash),
		Role:             pay.Role,
		Country:          strings.ToUpper(strings.TrimSpace(pay.Country)),
		Address:          uuid.NewString(),
		Balance:          balance,
		DeleteSecretHash: string(secretHash),
		Created:          time.Now(),
	}

	err = ledger_core.OpenTransaction(ctx, l.db, func(tx *gorm.DB, books *ledger_core.Books) error {
		return books.Accounts.Create(acc)
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// DeleteAccount removes the account record when the supplied secret
// matches the one hashed at registration. Accounts registered without a
// deletion secret can never be deleted this way. Historical transactions
// stay queryable by address either way.
func (l *lifecycleImpl) DeleteAccount(ctx context.Context, id uint, suppliedSecret string) error {
	return ledger_core.OpenTransaction(ctx, l.db, func(tx *gorm.DB, books *ledger_core.Books) error {
		acc, err := books.Accounts.Lock(id)
		if err != nil {
			return err
		}

		if acc.DeleteSecretHash == "" {
			return ledger_core.ErrSecretMismatch
		}
		err = bcrypt.CompareHashAndPassword([]byte(acc.DeleteSecretHash), []byte(suppliedSecret))
		if err != nil {
			if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
				return ledger_core.ErrSecretMismatch
			}
			return err
		}

		return books.Accounts.Delete(id)
	})
}

func validatePayload(pay *RegisterPayload) error {
	if strings.TrimSpace(pay.Username) == "" {
		return fmt.Errorf("%w: username required", ledger_core.ErrInvalidInput)
	}
	if strings.TrimSpace(pay.Email) == "" {
		return fmt.Errorf("%w: email required", ledger_core.ErrInvalidInput)
	}
	if pay.Password == "" {
		return fmt.Errorf("%w: password required", ledger_core.ErrInvalidInput)
	}
	if strings.TrimSpace(pay.Country) == "" {
		return fmt.Errorf("%w: country required", ledger_core.ErrInvalidInput)
	}
	if !pay.Role.Valid() {
		return fmt.Errorf("%w: role %q", ledger_core.ErrInvalidInput, pay.Role)
	}
	return nil
}
