package api

import (
	"fmt"

	"github.com/arnavseth183/CrossBorderTransactionChain/ledger_core"
	"github.com/arnavseth183/CrossBorderTransactionChain/transfer"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type TransferHandler struct {
	Engine transfer.Engine
}

type transferRequest struct {
	SenderID        uint   `json:"sender_id"`
	ReceiverAddress string `json:"receiver_address"`
	Amount          string `json:"amount"`
	Note            string `json:"note"`
}

func (h *TransferHandler) Execute(c *fiber.Ctx) error {
	var req transferRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fmt.Errorf("%w: %v", ledger_core.ErrInvalidInput, err))
	}

	// Amounts travel as strings so no float ever touches money.
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return fail(c, fmt.Errorf("%w: amount %q", ledger_core.ErrInvalidInput, req.Amount))
	}

	trx, err := h.Engine.Execute(c.Context(), req.SenderID, req.ReceiverAddress, amount, req.Note)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, trx)
}
