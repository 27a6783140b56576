package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/freshup-events/erlebnisbuchung/internal/domain"
)

// Logger is the logging interface required by the client
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to the spreadsheet-backed booking workflow. The same
// endpoint accepts relayed bookings (POST) and serves the current rows
// (GET). Retries and backoff are the workflow's concern, not ours.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a sheet workflow client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SubmitBooking relays an accepted booking to the sheet workflow,
// which records it and sends the confirmation email. A non-success
// status in the answer yields ErrRelayRejected.
func (c *Client) SubmitBooking(ctx context.Context, record BookingRecord) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: marshal record: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var result SubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if result.Status != "success" {
		c.log.Warn("SubmitBooking: workflow answered status=%s message=%s", result.Status, result.Message)
		return fmt.Errorf("%w: %s", ErrRelayRejected, result.Message)
	}

	return nil
}

// FetchBookings reads the current reservation rows from the sheet
// workflow and converts them into ledger entries. Partial rows are
// tolerated: missing counts become one passenger, unknown identifiers
// never match a catalog offering.
func (c *Client) FetchBookings(ctx context.Context) ([]domain.Booking, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var rows []BookingRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: failed to decode rows: %v", ErrInvalidResponse, err)
	}

	bookings := make([]domain.Booking, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, row.ToDomain())
	}

	c.log.Info("FetchBookings: loaded %d rows from sheet", len(bookings))
	return bookings, nil
}
