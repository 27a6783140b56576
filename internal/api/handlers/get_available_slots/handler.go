package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/freshup-events/erlebnisbuchung/internal/api/handlers"
	getAvailableSlots "github.com/freshup-events/erlebnisbuchung/internal/usecase/get_available_slots"
)

const (
	msgMissingDate      = "Datum ist erforderlich"
	msgInvalidDate      = "Ungültiges Datumsformat, erwartet TT.MM.JJJJ"
	msgOfferingNotFound = "Erlebnis nicht gefunden"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/offerings/{offeringId}/available-slots
// Query params: date (required, DD.MM.YYYY)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	offeringID := mux.Vars(r)["offeringId"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /offerings/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(offeringID, dateStr)
	if err != nil {
		h.logger.Warn("GET /offerings/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrOfferingNotFound):
			h.logger.Warn("GET /offerings/{id}/available-slots - Offering not found: offering_id=%s", offeringID)
			handlers.RespondNotFound(w, msgOfferingNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /offerings/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /offerings/{id}/available-slots - Failed: offering_id=%s, error=%v", offeringID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /offerings/{id}/available-slots - OK: offering_id=%s, date=%s, slots_count=%d",
		offeringID, result.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
