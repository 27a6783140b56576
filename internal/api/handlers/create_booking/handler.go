package create_booking

import (
	"errors"
	"net/http"

	"github.com/freshup-events/erlebnisbuchung/internal/api/handlers"
	createBooking "github.com/freshup-events/erlebnisbuchung/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Ungültiger Anfrageinhalt"
	msgSlotNotAvailable   = "Der gewählte Zeitslot ist nicht mehr verfügbar"
	msgRelayFailed        = "Es gab ein Problem beim Absenden deiner Buchung."
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(w, r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var validationErr *createBooking.ValidationError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /bookings - Validation failed: %v", validationErr)
			handlers.RespondJSON(w, http.StatusUnprocessableEntity,
				ValidationErrorsResponse{Errors: validationErr.Fields})

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: offering=%s date=%s time=%s",
				req.Fahrzeug+req.Flugart, req.Datum, req.Uhrzeit)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrRelayFailed):
			// The booking is recorded locally; the caller still gets a
			// failure so the user retries the confirmation flow.
			h.logger.Error("POST /bookings - Relay failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgRelayFailed)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%s offering=%s date=%s time=%s",
		result.ID, result.OfferingID, result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
