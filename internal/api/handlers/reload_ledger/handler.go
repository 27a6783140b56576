package reload_ledger

import (
	"net/http"

	"github.com/freshup-events/erlebnisbuchung/internal/api/handlers"
)

const msgReloadFailed = "Buchungsliste konnte nicht geladen werden"

// ReloadResponse reports the new ledger size after a reload
type ReloadResponse struct {
	Loaded int `json:"loaded"`
}

type Handler struct {
	ledger  LedgerStore
	sheets  SheetsClient
	metrics Metrics
	logger  Logger
}

func NewHandler(ledger LedgerStore, sheets SheetsClient, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		ledger:  ledger,
		sheets:  sheets,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle POST /api/v1/ledger/reload
// Re-seeds the in-memory ledger from the sheet. The sheet is the
// system of record: bookings accepted locally but not yet visible in
// it are dropped, so operators should reload during quiet moments.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entries, err := h.sheets.FetchBookings(r.Context())
	if err != nil {
		h.logger.Error("POST /ledger/reload - Fetch from sheet failed: %v", err)
		handlers.RespondError(w, http.StatusBadGateway, msgReloadFailed)
		return
	}

	h.ledger.Replace(entries)
	h.metrics.SetLedgerSize(h.ledger.Len())

	h.logger.Info("POST /ledger/reload - Ledger re-seeded with %d entries", len(entries))
	handlers.RespondJSON(w, http.StatusOK, ReloadResponse{Loaded: len(entries)})
}
