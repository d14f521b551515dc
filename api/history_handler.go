package api

import (
	"github.com/arnavseth183/CrossBorderTransactionChain/ledger"
	"github.com/gofiber/fiber/v2"
)

type HistoryHandler struct {
	History ledger.History
}

func (h *HistoryHandler) ByParticipant(c *fiber.Ctx) error {
	filter := &ledger.HistoryFilter{
		Address: c.Params("address"),
		Limit:   c.QueryInt("limit"),
		Offset:  c.QueryInt("offset"),
	}

	list, err := h.History.ByParticipant(c.Context(), filter)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, list)
}

func (h *HistoryHandler) All(c *fiber.Ctx) error {
	filter := &ledger.HistoryFilter{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}

	list, err := h.History.All(c.Context(), filter)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, list)
}
