package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	createBooking "github.com/freshup-events/erlebnisbuchung/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createBooking.Response), args.Error(1)
}

func postBooking(t *testing.T, handler *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

const validBody = `{
	"fahrzeug": "audi-q6",
	"datum": "17.05.2025",
	"uhrzeit": "10:10",
	"vorname": "Max",
	"nachname": "Mustermann",
	"strasse": "Musterstrasse 123",
	"plz": "8500",
	"ort": "Frauenfeld",
	"geburtsdatum": "01.02.1990",
	"email": "max@example.com"
}`

func TestHandle_Created(t *testing.T) {
	useCase := &MockUseCase{}
	useCase.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.OfferingID == "audi-q6" && req.FirstName == "Max"
	})).Return(&createBooking.Response{
		ID:         "b-1",
		OfferingID: "audi-q6",
		Label:      "Audi Q6",
		Category:   "vehicle",
		Date:       "17.05.2025",
		Time:       "10:10",
		Count:      1,
	}, nil)

	rec := postBooking(t, NewHandler(useCase, nopLogger{}), validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "b-1", resp.ID)
	assert.Equal(t, "audi-q6", resp.Offering)
	assert.Equal(t, "17.05.2025", resp.Date)
	useCase.AssertExpectations(t)
}

func TestHandle_FlugartFillsOfferingID(t *testing.T) {
	useCase := &MockUseCase{}
	useCase.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.OfferingID == "tandemflug-helikopter"
	})).Return(&createBooking.Response{ID: "b-2", OfferingID: "tandemflug-helikopter"}, nil)

	body := `{"flugart": "tandemflug-helikopter", "datum": "17.05.2025", "uhrzeit": "09:00"}`
	rec := postBooking(t, NewHandler(useCase, nopLogger{}), body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	useCase.AssertExpectations(t)
}

func TestHandle_InvalidBody(t *testing.T) {
	useCase := &MockUseCase{}

	rec := postBooking(t, NewHandler(useCase, nopLogger{}), `{"fahrzeug": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	useCase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_OversizedBody(t *testing.T) {
	useCase := &MockUseCase{}

	body := `{"fahrzeug": "` + strings.Repeat("x", 2<<20) + `"}`
	rec := postBooking(t, NewHandler(useCase, nopLogger{}), body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	useCase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_ValidationErrors(t *testing.T) {
	useCase := &MockUseCase{}
	useCase.On("Execute", mock.Anything, mock.Anything).Return(nil, &createBooking.ValidationError{
		Fields: []createBooking.FieldError{
			{Field: "firstName", Message: "Vorname muss mindestens 2 Zeichen lang sein."},
		},
	})

	rec := postBooking(t, NewHandler(useCase, nopLogger{}), validBody)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp ValidationErrorsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "firstName", resp.Errors[0].Field)
}

func TestHandle_SlotNotAvailable(t *testing.T) {
	useCase := &MockUseCase{}
	useCase.On("Execute", mock.Anything, mock.Anything).Return(nil, createBooking.ErrSlotNotAvailable)

	rec := postBooking(t, NewHandler(useCase, nopLogger{}), validBody)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "nicht mehr verfügbar")
}

func TestHandle_RelayFailed(t *testing.T) {
	useCase := &MockUseCase{}
	useCase.On("Execute", mock.Anything, mock.Anything).Return(nil, createBooking.ErrRelayFailed)

	rec := postBooking(t, NewHandler(useCase, nopLogger{}), validBody)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Problem beim Absenden")
}

func TestHandle_UnexpectedError(t *testing.T) {
	useCase := &MockUseCase{}
	useCase.On("Execute", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	rec := postBooking(t, NewHandler(useCase, nopLogger{}), validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
