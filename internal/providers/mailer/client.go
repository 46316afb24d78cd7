package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/propsetu/estate-backend/internal/adapter"
	"github.com/propsetu/estate-backend/internal/notification"
)

// sendRequest is the provider's message payload
type sendRequest struct {
	From    address `json:"from"`
	To      address `json:"to"`
	Subject string  `json:"subject"`
	HTML    string  `json:"html,omitempty"`
	Text    string  `json:"text,omitempty"`
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// sendResponse is the provider's accepted-message response
type sendResponse struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
}

// Client sends transactional email through the provider's HTTP API.
// It implements notification.EmailSender
type Client struct {
	httpClient  adapter.HTTPClient
	baseURL     string
	apiKey      string
	fromAddress string
	fromName    string
}

// NewClient creates a mailer client
func NewClient(httpClient adapter.HTTPClient, baseURL, apiKey, fromAddress, fromName string) *Client {
	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		apiKey:      apiKey,
		fromAddress: fromAddress,
		fromName:    fromName,
	}
}

// Send delivers one email and returns the provider message id
func (c *Client) Send(ctx context.Context, msg notification.EmailMessage) (string, error) {
	if msg.To == "" {
		return "", fmt.Errorf("missing recipient address")
	}

	req := sendRequest{
		From:    address{Email: c.fromAddress, Name: c.fromName},
		To:      address{Email: msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTMLBody,
		Text:    msg.TextBody,
	}

	headers := map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}

	var resp sendResponse
	url := c.baseURL + "/v1/messages"
	if err := c.httpClient.PostJSON(ctx, url, headers, req, &resp); err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	return resp.MessageID, nil
}
