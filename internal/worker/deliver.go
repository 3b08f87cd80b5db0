package worker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"satnica/internal/amqp"
)

// Deliverer pushes one earnings alert to its final destination.
type Deliverer interface {
	Deliver(ctx context.Context, msg *amqp.EarningsAlertMessage) error
}

// WebhookDeliverer POSTs the alert as JSON to a configured endpoint.
type WebhookDeliverer struct {
	url    string
	client *http.Client
}

var _ Deliverer = (*WebhookDeliverer)(nil)

func NewWebhookDeliverer(url string, timeout time.Duration) *WebhookDeliverer {
	return &WebhookDeliverer{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (d *WebhookDeliverer) Deliver(ctx context.Context, msg *amqp.EarningsAlertMessage) error {
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal alert: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}

// LogDeliverer writes the alert to the log. The fallback when no webhook is
// configured, so consumed messages are still acked instead of requeued forever.
type LogDeliverer struct{}

var _ Deliverer = (*LogDeliverer)(nil)

func (LogDeliverer) Deliver(ctx context.Context, msg *amqp.EarningsAlertMessage) error {
	slog.InfoContext(ctx, "Earnings alert",
		"user_id", msg.UserID,
		"record_id", msg.RecordID,
		"classification", msg.Classification,
		"message", msg.Message,
		"earnings", msg.Earnings,
		"average", msg.Average)
	return nil
}
