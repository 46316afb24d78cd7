package smsgate

import (
	"context"
	"fmt"
	"strings"

	"github.com/propsetu/estate-backend/internal/adapter"
)

// sendRequest is the gateway's message payload
type sendRequest struct {
	SenderID string `json:"sender_id"`
	To       string `json:"to"`
	Message  string `json:"message"`
}

// sendResponse is the gateway's delivery acknowledgement
type sendResponse struct {
	Status    string `json:"status"`
	MessageID string `json:"message_id"`
}

// Client sends SMS through the gateway's HTTP API.
// It implements notification.SMSSender
type Client struct {
	httpClient adapter.HTTPClient
	baseURL    string
	apiKey     string
	senderID   string
}

// NewClient creates an SMS gateway client
func NewClient(httpClient adapter.HTTPClient, baseURL, apiKey, senderID string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		senderID:   senderID,
	}
}

// Send delivers one SMS to the given number
func (c *Client) Send(ctx context.Context, to string, body string) error {
	if to == "" {
		return fmt.Errorf("missing recipient number")
	}

	req := sendRequest{
		SenderID: c.senderID,
		To:       to,
		Message:  body,
	}

	headers := map[string]string{
		"X-Api-Key": c.apiKey,
	}

	var resp sendResponse
	url := c.baseURL + "/v2/sms"
	if err := c.httpClient.PostJSON(ctx, url, headers, req, &resp); err != nil {
		return fmt.Errorf("failed to send sms: %w", err)
	}

	if resp.Status != "" && resp.Status != "queued" && resp.Status != "sent" {
		return fmt.Errorf("gateway rejected sms with status %q", resp.Status)
	}

	return nil
}
