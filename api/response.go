package api

import (
	"errors"

	"github.com/arnavseth183/CrossBorderTransactionChain/ledger_core"
	"github.com/gofiber/fiber/v2"
)

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type kindMapping struct {
	err    error
	kind   string
	status int
}

// One mapping for every error kind the core reports. Anything outside
// this table is a bug surfaced as a 500 without leaking internals.
var kindMappings = []kindMapping{
	{ledger_core.ErrInvalidInput, "invalid_input", fiber.StatusBadRequest},
	{ledger_core.ErrAccountNotFound, "not_found", fiber.StatusNotFound},
	{ledger_core.ErrSelfTransfer, "self_transfer", fiber.StatusBadRequest},
	{ledger_core.ErrRoleForbidden, "role_forbidden", fiber.StatusForbidden},
	{ledger_core.ErrInsufficientFunds, "insufficient_funds", fiber.StatusUnprocessableEntity},
	{ledger_core.ErrInsufficientFundsForFee, "insufficient_funds_for_fee", fiber.StatusUnprocessableEntity},
	{ledger_core.ErrConflict, "conflict", fiber.StatusConflict},
	{ledger_core.ErrSecretMismatch, "secret_mismatch", fiber.StatusForbidden},
	{ledger_core.ErrStorageUnavailable, "storage_unavailable", fiber.StatusServiceUnavailable},
}

func fail(c *fiber.Ctx, err error) error {
	for _, m := range kindMappings {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(fiber.Map{
				"error": errorBody{Kind: m.kind, Message: err.Error()},
			})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": errorBody{Kind: "internal", Message: "internal error"},
	})
}

func ok(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{"data": data})
}
