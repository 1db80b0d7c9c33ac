package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client posts new-order notifications to the store's webhook (typically a
// WhatsApp bridge watched by the kitchen). Notifications are best effort:
// callers log failures and never let them affect the order itself.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

type OrderNotification struct {
	OrderID       uint    `json:"order_id"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	DeliveryType  string  `json:"delivery_type"`
	Total         float64 `json:"total"`
}

type NotifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Enabled reports whether a webhook URL was configured.
func (c *Client) Enabled() bool {
	return c.BaseURL != ""
}

// Send order notification via webhook
func (c *Client) SendOrderNotification(notification OrderNotification) (*NotifyResponse, error) {
	// Marshal to JSON
	jsonData, err := json.Marshal(notification)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification: %w", err)
	}

	// Create HTTP request
	req, err := http.NewRequest("POST", c.BaseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set headers
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	// Send request
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()

	// Read response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(body))
	}

	var notifyResp NotifyResponse
	if err := json.Unmarshal(body, &notifyResp); err != nil {
		// Some webhooks reply with an empty body; treat 2xx as success
		return &NotifyResponse{Success: true}, nil
	}

	return &notifyResp, nil
}
