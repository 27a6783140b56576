package get_offerings

import (
	"net/http"

	"github.com/freshup-events/erlebnisbuchung/internal/api/handlers"
)

type Logger interface {
	Info(format string, v ...interface{})
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/offerings
// The catalog is immutable, so the response is assembled fresh from
// the domain tables on every call without any further lookups.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp := BuildResponse()
	h.logger.Info("GET /offerings - OK: vehicles=%d flights=%d dates=%d",
		len(resp.Vehicles), len(resp.Flights), len(resp.Dates))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
