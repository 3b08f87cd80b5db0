package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"satnica/internal/core"
	"satnica/internal/export"
	"satnica/internal/store"
)

// ExportWorker periodically mirrors per-user monthly summaries to the
// configured destination.
type ExportWorker struct {
	store    store.RecordStore
	writer   export.SummaryWriter
	userIDs  []string
	interval time.Duration
}

func NewExportWorker(st store.RecordStore, writer export.SummaryWriter, userIDs []string, interval time.Duration) *ExportWorker {
	return &ExportWorker{
		store:    st,
		writer:   writer,
		userIDs:  userIDs,
		interval: interval,
	}
}

// Run exports once immediately, then on every tick until ctx is done.
func (w *ExportWorker) Run(ctx context.Context) error {
	if err := w.RunOnce(ctx); err != nil {
		slog.ErrorContext(ctx, "Initial summary export failed", "error", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Stopping summary export", "reason", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			if err := w.RunOnce(ctx); err != nil {
				slog.ErrorContext(ctx, "Summary export failed", "error", err)
			}
		}
	}
}

// RunOnce builds the current overview snapshot and writes it out.
func (w *ExportWorker) RunOnce(ctx context.Context) error {
	var rows []export.Row
	for _, userID := range w.userIDs {
		records, err := w.store.ListByUserOrderedByDate(ctx, userID)
		if err != nil {
			return fmt.Errorf("list records for %s: %w", userID, err)
		}
		for _, sum := range core.AggregateByMonth(records) {
			rows = append(rows, export.Row{
				UserID:        userID,
				MonthYear:     sum.Month.String(),
				TotalHours:    sum.TotalHours,
				TotalEarnings: sum.TotalEarnings,
			})
		}
	}

	if err := w.writer.WriteSummaries(ctx, rows); err != nil {
		return fmt.Errorf("write summaries: %w", err)
	}

	slog.InfoContext(ctx, "Exported summary snapshot",
		"users", len(w.userIDs),
		"rows", len(rows))

	return nil
}
