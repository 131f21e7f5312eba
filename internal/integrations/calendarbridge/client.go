package calendarbridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the external calendar bridge that mirrors appointments
// into third-party calendars (Google, Outlook).
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a calendar bridge client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// PushEvent sends one appointment event to the bridge.
func (c *Client) PushEvent(ctx context.Context, event *EventPayload) error {
	url := fmt.Sprintf("%s/internal/events", c.baseURL)

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to encode event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// PushEventWithGracefulDegradation sends an appointment event and downgrades
// any failure to ErrServiceDegraded. Calendar sync is best-effort: the
// appointment is already committed locally, so bridge downtime must never
// surface to the booking client.
func (c *Client) PushEventWithGracefulDegradation(ctx context.Context, event *EventPayload) error {
	c.log.Info("Pushing appointment event appointment_id=%d to calendar bridge", event.AppointmentID)

	if err := c.PushEvent(ctx, event); err != nil {
		c.log.Error("Calendar bridge unavailable, applying graceful degradation for appointment_id=%d: %v", event.AppointmentID, err)
		return fmt.Errorf("%w: appointment_id=%d, error=%v", ErrServiceDegraded, event.AppointmentID, err)
	}

	c.log.Info("Successfully pushed appointment event appointment_id=%d", event.AppointmentID)
	return nil
}
