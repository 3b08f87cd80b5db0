// Package worker runs the background half of the engine: delivering queued
// earnings alerts and periodically exporting monthly summaries.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"satnica/internal/amqp"
)

// AlertWorker handles alert messages consumed from the broker.
type AlertWorker struct {
	deliverer Deliverer
}

func NewAlertWorker(deliverer Deliverer) *AlertWorker {
	if deliverer == nil {
		deliverer = LogDeliverer{}
	}
	return &AlertWorker{deliverer: deliverer}
}

// HandleAlert delivers one alert. A returned error requeues the message.
func (w *AlertWorker) HandleAlert(ctx context.Context, msg *amqp.EarningsAlertMessage) error {
	slog.InfoContext(ctx, "Processing earnings alert",
		"user_id", msg.UserID,
		"record_id", msg.RecordID,
		"classification", msg.Classification)

	if err := w.deliverer.Deliver(ctx, msg); err != nil {
		return fmt.Errorf("deliver alert: %w", err)
	}

	slog.InfoContext(ctx, "Delivered earnings alert",
		"user_id", msg.UserID,
		"record_id", msg.RecordID)

	return nil
}
