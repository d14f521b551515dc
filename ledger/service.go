package ledger

import (
	"context"

	"github.com/arnavseth183/CrossBorderTransactionChain/ledger_core"
	"gorm.io/gorm"
)

const defaultPageSize = 50

type HistoryFilter struct {
	Address string `json:"address"`
	Limit   int    `json:"limit"`
	Offset  int    `json:"offset"`
}

// History is the read side of the transaction log, serving dashboards
// and audit views. It never writes.
type History interface {
	ByParticipant(ctx context.Context, filter *HistoryFilter) ([]*ledger_core.Transaction, error)
	All(ctx context.Context, filter *HistoryFilter) ([]*ledger_core.Transaction, error)
}

type historyImpl struct {
	db *gorm.DB
}

func NewHistory(db *gorm.DB) History {
	return &historyImpl{db: db}
}

// ByParticipant lists the address's transactions newest first. The
// result is finite and restartable: re-running with the same filter
// returns the same page plus whatever was appended since.
func (h *historyImpl) ByParticipant(ctx context.Context, filter *HistoryFilter) ([]*ledger_core.Transaction, error) {
	log := ledger_core.NewTransactionLog(h.db.WithContext(ctx))
	limit, offset := page(filter)
	return log.ByParticipant(filter.Address, limit, offset)
}

// All lists every transaction newest first. Callers gate this behind
// the admin surface.
func (h *historyImpl) All(ctx context.Context, filter *HistoryFilter) ([]*ledger_core.Transaction, error) {
	log := ledger_core.NewTransactionLog(h.db.WithContext(ctx))
	limit, offset := page(filter)
	return log.All(limit, offset)
}

func page(filter *HistoryFilter) (int, int) {
	if filter == nil {
		return defaultPageSize, 0
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
