// Package telegram delivers order notifications through the Telegram Bot API.
//
// Delivery is strictly best effort: one request, a short timeout, and an
// error return that callers log and move on from. A notification must never
// hold an order hostage.
package telegram

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"universestore/internal/core/domain/model/kernel"
	"universestore/internal/core/ports"
	"universestore/internal/pkg/errs"
)

const (
	defaultBaseURL = "https://api.telegram.org"
	sendTimeout    = 5 * time.Second
)

// Client sends order notifications to a single Telegram chat.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	chatID     string
	logger     *slog.Logger
}

// NewClient creates a Telegram client for the given bot token and chat.
func NewClient(token, chatID string, logger *slog.Logger) (*Client, error) {
	return NewClientWithBaseURL(defaultBaseURL, token, chatID, logger)
}

// NewClientWithBaseURL creates a client that talks to an alternate API host.
func NewClientWithBaseURL(baseURL, token, chatID string, logger *slog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if token == "" {
		return nil, errs.NewValueIsRequiredError("token")
	}
	if chatID == "" {
		return nil, errs.NewValueIsRequiredError("chatID")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &Client{
		httpClient: &http.Client{Timeout: sendTimeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		chatID:     chatID,
		logger:     logger.With("component", "telegram_client"),
	}, nil
}

// Send posts one notification message. A single attempt is made; any failure
// is returned for the caller to log, never to act on.
func (c *Client) Send(ctx context.Context, kind ports.NotificationKind,
	number kernel.OrderNumber, item string) error {
	text, err := messageText(kind, number, item)
	if err != nil {
		return err
	}

	form := url.Values{}
	form.Set("chat_id", c.chatID)
	form.Set("text", text)
	form.Set("parse_mode", "Markdown")

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram api responded %d: %s", resp.StatusCode, string(body))
	}

	c.logger.DebugContext(ctx, "notification sent",
		"kind", string(kind), "orderNumber", number.String())
	return nil
}

func messageText(kind ports.NotificationKind, number kernel.OrderNumber, item string) (string, error) {
	switch kind {
	case ports.NotificationReceived:
		return fmt.Sprintf(
			"🌌 *Universe Store*\n\n"+
				"📦 Your order has been received!\n\n"+
				"Order number: `%s`\nItem: %s\n\n"+
				"The universe is preparing your package. ✨",
			number.String(), item), nil
	case ports.NotificationShipped:
		return fmt.Sprintf(
			"🌌 *Universe Store*\n\n"+
				"🚀 Your order has shipped!\n\n"+
				"Order number: `%s`\nItem: %s\n\n"+
				"Estimated delivery: within 3 hours. Keep your heart open. 💫",
			number.String(), item), nil
	case ports.NotificationDelivered:
		return fmt.Sprintf(
			"🌌 *Universe Store*\n\n"+
				"🎁 Your order has been delivered!\n\n"+
				"Order number: `%s`\nItem: %s\n\n"+
				"Check your surroundings — the universe works in subtle ways. 🌠",
			number.String(), item), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("unknown notification kind %q", string(kind)))
	}
}
