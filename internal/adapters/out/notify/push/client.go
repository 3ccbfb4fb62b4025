// Package push delivers notifications by posting them to an HTTP gateway.
// The gateway owns the last mile (messenger, SMS, app push); this adapter
// only speaks its JSON API.
package push

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"tradematch/internal/core/domain/model/kernel"
	"tradematch/internal/core/ports"
	"tradematch/internal/pkg/errs"
)

const (
	sendPath       = "/api/v1/messages"
	requestTimeout = 5 * time.Second
)

// message is the gateway's wire format for one outbound notification.
type message struct {
	RecipientID int64  `json:"recipient_id"`
	Text        string `json:"text"`
	OrderID     int64  `json:"order_id,omitempty"`
	ClaimToken  string `json:"claim_token,omitempty"`
}

// Client implements ports.Notifier over the push gateway's HTTP API.
type Client struct {
	client *resty.Client
}

// NewClient creates a push gateway client.
// The token is sent as a bearer credential on every request; pass an empty
// token for gateways that sit behind network-level auth.
func NewClient(baseURL, token string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetHeader("Content-Type", "application/json")
	if token != "" {
		client.SetAuthToken(token)
	}

	return &Client{client: client}, nil
}

// Notify posts one notification to the gateway.
// Any non-2xx response is a delivery failure.
func (c *Client) Notify(ctx context.Context, recipient kernel.UserID, notification ports.Notification) error {
	if err := recipient.Validate(); err != nil {
		return err
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(message{
			RecipientID: recipient.Int64(),
			Text:        notification.Text,
			OrderID:     notification.OrderID,
			ClaimToken:  notification.ClaimToken,
		}).
		Post(sendPath)
	if err != nil {
		return fmt.Errorf("push gateway request: %w", err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("push gateway responded %d: %s", resp.StatusCode(), resp.String())
	}

	return nil
}
