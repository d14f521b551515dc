package crossborder

import (
	"github.com/arnavseth183/CrossBorderTransactionChain/account"
	"github.com/arnavseth183/CrossBorderTransactionChain/api"
	"github.com/arnavseth183/CrossBorderTransactionChain/ledger"
	"github.com/arnavseth183/CrossBorderTransactionChain/ledger_core"
	"github.com/arnavseth183/CrossBorderTransactionChain/transfer"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type RegisterHandler func(app *fiber.App)

// NewRegisterHandler wires the core services and mounts the HTTP
// surface. Everything behind /v1 is stateless: identity comes with
// every request, never from ambient session state.
func NewRegisterHandler(
	db *gorm.DB,
	fees *ledger_core.FeeSchedule,
	adminKey string,
	log zerolog.Logger,
) RegisterHandler {
	accountHandler := &api.AccountHandler{
		Lifecycle: account.NewLifecycle(db),
		Store:     ledger_core.NewAccountStore(db),
	}
	transferHandler := &api.TransferHandler{
		Engine: transfer.NewEngine(db, fees),
	}
	historyHandler := &api.HistoryHandler{
		History: ledger.NewHistory(db),
	}

	return func(app *fiber.App) {
		app.Use(api.RequestLogger(log))

		v1 := app.Group("/v1")

		v1.Post("/accounts", accountHandler.Register)
		v1.Get("/accounts/:id", accountHandler.Get)
		v1.Delete("/accounts/:id", accountHandler.Delete)
		v1.Get("/addresses/:address", accountHandler.GetByAddress)

		v1.Post("/transfers", transferHandler.Execute)
		v1.Get("/addresses/:address/transactions", historyHandler.ByParticipant)

		v1.Get("/transactions", api.AdminOnly(adminKey), historyHandler.All)
	}
}
