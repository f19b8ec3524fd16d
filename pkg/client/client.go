package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ticketly/internal/events"
	"ticketly/internal/tickets"
)

// APIError carries the server's response body text for any non-2xx status,
// or a per-operation fallback message when the body is empty.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client mirrors the browser client's data layer: three operations, one per
// server route. No retries, no caching.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client against an API base URL such as "http://localhost:4000/api".
func New(baseURL string) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: 15 * time.Second})
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// FetchEvents loads every event summary.
func (c *Client) FetchEvents(ctx context.Context) ([]events.EventSummary, error) {
	var summaries []events.EventSummary
	if err := c.get(ctx, "/events", "failed to load events", &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// FetchEventByID loads one detail bundle.
func (c *Client) FetchEventByID(ctx context.Context, eventID int) (*events.DetailBundle, error) {
	var bundle events.DetailBundle
	path := fmt.Sprintf("/events/%d", eventID)
	if err := c.get(ctx, path, "failed to load event", &bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// CreateTicket submits a purchase and returns the created ticket.
func (c *Client) CreateTicket(ctx context.Context, eventID int, payload tickets.CreateTicketRequest) (*tickets.Ticket, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/events/%d/tickets", eventID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var created tickets.CreateTicketResponse
	if err := c.do(req, "failed to create ticket", &created); err != nil {
		return nil, err
	}
	return &created.Ticket, nil
}

func (c *Client) get(ctx context.Context, path, fallbackMsg string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, fallbackMsg, out)
}

// do executes the request and surfaces any non-2xx response as an APIError.
func (c *Client) do(req *http.Request, fallbackMsg string, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := fallbackMsg
		if text, readErr := io.ReadAll(resp.Body); readErr == nil {
			if trimmed := strings.TrimSpace(string(text)); trimmed != "" {
				message = trimmed
			}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
