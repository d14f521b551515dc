package api

import (
	"fmt"
	"strconv"

	"github.com/arnavseth183/CrossBorderTransactionChain/account"
	"github.com/arnavseth183/CrossBorderTransactionChain/ledger_core"
	"github.com/gofiber/fiber/v2"
)

type AccountHandler struct {
	Lifecycle account.Lifecycle
	Store     *ledger_core.AccountStore
}

func (h *AccountHandler) Register(c *fiber.Ctx) error {
	var pay account.RegisterPayload
	if err := c.BodyParser(&pay); err != nil {
		return fail(c, fmt.Errorf("%w: %v", ledger_core.ErrInvalidInput, err))
	}

	acc, err := h.Lifecycle.Register(c.Context(), &pay)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, acc)
}

func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}

	var body struct {
		DeleteSecret string `json:"delete_secret"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return fail(c, fmt.Errorf("%w: %v", ledger_core.ErrInvalidInput, err))
		}
	}

	if err := h.Lifecycle.DeleteAccount(c.Context(), id, body.DeleteSecret); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"deleted": id})
}

func (h *AccountHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}

	acc, err := h.Store.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, acc)
}

func (h *AccountHandler) GetByAddress(c *fiber.Ctx) error {
	acc, err := h.Store.GetByAddress(c.Params("address"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, acc)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: account id %q", ledger_core.ErrInvalidInput, c.Params("id"))
	}
	return uint(id), nil
}
