package ledger_core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput covers malformed requests: missing fields,
	// non-positive or over-precise amounts, unknown roles.
	ErrInvalidInput = errors.New("invalid input")

	ErrAccountNotFound = errors.New("account not found")
	ErrSelfTransfer    = errors.New("sender and receiver are the same account")
	ErrRoleForbidden   = errors.New("admin accounts cannot participate in transfers")

	// ErrInsufficientFunds: the balance does not cover the amount itself.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInsufficientFundsForFee: the balance covers the amount but not
	// amount plus the cross-border fee. Kept separate from
	// ErrInsufficientFunds because the caller surfaces them differently.
	ErrInsufficientFundsForFee = errors.New("insufficient funds to cover cross-border fee")

	ErrConflict       = errors.New("account already exists")
	ErrSecretMismatch = errors.New("deletion secret missing or does not match")

	// ErrStorageUnavailable marks store-layer failures. It implies no
	// partial mutation happened, so the caller may retry; validation
	// errors must never be wrapped in it.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

var domainErrs = []error{
	ErrInvalidInput,
	ErrAccountNotFound,
	ErrSelfTransfer,
	ErrRoleForbidden,
	ErrInsufficientFunds,
	ErrInsufficientFundsForFee,
	ErrConflict,
	ErrSecretMismatch,
}

// IsDomainErr reports whether err is a validation/business error as
// opposed to a storage failure.
func IsDomainErr(err error) bool {
	for _, derr := range domainErrs {
		if errors.Is(err, derr) {
			return true
		}
	}
	return false
}

// StorageErr classifies an error coming back from the store. Domain
// errors pass through unchanged, anything else is reported as
// ErrStorageUnavailable with the cause attached.
func StorageErr(err error) error {
	if err == nil {
		return nil
	}
	if IsDomainErr(err) || errors.Is(err, ErrStorageUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
