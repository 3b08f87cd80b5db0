// Package notify decides what an earnings notification says and hands it to
// whatever channel delivers it. Delivery is fire-and-forget from the
// submission workflow's point of view.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"satnica/internal/amqp"
	"satnica/internal/core"
)

// Alert is one notification request for a submitted entry.
type Alert struct {
	UserID         string
	RecordID       string
	Classification core.Classification
	Message        string
	Earnings       float64
	Average        float64
}

// Notifier delivers alerts. Implementations must not be relied on for
// rollback: a failed Send never unpersists the record it describes.
type Notifier interface {
	Send(ctx context.Context, alert Alert) error
}

// BuildMessage renders the user-facing text for a classification.
func BuildMessage(cls core.Classification, earnings, average float64) string {
	switch cls {
	case core.Above:
		return fmt.Sprintf("Današnja zarada od %.2f € je iznad tvog prosjeka (%.2f €)", earnings, average)
	case core.Below:
		return fmt.Sprintf("Današnja zarada od %.2f € je ispod tvog prosjeka (%.2f €)", earnings, average)
	default:
		return ""
	}
}

// AMQPNotifier publishes alerts to the notification queue for the delivery
// worker to pick up.
type AMQPNotifier struct {
	client *amqp.Client
}

func NewAMQPNotifier(client *amqp.Client) *AMQPNotifier {
	return &AMQPNotifier{client: client}
}

func (n *AMQPNotifier) Send(ctx context.Context, alert Alert) error {
	msg := amqp.NewEarningsAlertMessage(
		alert.UserID, alert.RecordID, alert.Classification,
		alert.Message, alert.Earnings, alert.Average)
	return n.client.PublishEarningsAlert(ctx, msg)
}

// LogNotifier only logs alerts. Used when no broker is configured.
type LogNotifier struct{}

func (LogNotifier) Send(ctx context.Context, alert Alert) error {
	slog.InfoContext(ctx, "Earnings alert (log only)",
		"user_id", alert.UserID,
		"record_id", alert.RecordID,
		"classification", alert.Classification,
		"message", alert.Message)
	return nil
}

var (
	_ Notifier = (*AMQPNotifier)(nil)
	_ Notifier = LogNotifier{}
)
