// Package services wires the earnings rules to the record store and the
// notification channel. One submission is one strictly ordered pipeline:
// validate, snapshot the average, compute, persist, then notify. The average
// is always the one from before the new record existed.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"satnica/internal/core"
	applog "satnica/internal/log"
	"satnica/internal/notify"
	"satnica/internal/store"
)

type EntryService struct {
	store    store.RecordStore
	notifier notify.Notifier
}

func NewEntryService(recordStore store.RecordStore, notifier notify.Notifier) *EntryService {
	return &EntryService{
		store:    recordStore,
		notifier: notifier,
	}
}

// SubmissionResult is what a successful submission reports back: the
// persisted record plus how it compared to the pre-submission average.
type SubmissionResult struct {
	Record         core.WorkRecord
	Classification core.Classification
	Average        float64
}

// SubmitEntry runs one submission. Validation failures abort before any
// side effect. A storage failure surfaces and skips notification (nothing
// was persisted, so there is nothing to announce). A notification failure
// is logged and never fails the submission.
func (s *EntryService) SubmitEntry(ctx context.Context, userID string, baseRate, hours float64, holidayOrNight bool, date core.Date) (SubmissionResult, error) {
	if strings.TrimSpace(userID) == "" {
		return SubmissionResult{}, core.ErrEmptyUserID
	}
	if err := date.Validate(); err != nil {
		return SubmissionResult{}, err
	}

	adjustedRate, earnings, err := core.ComputeEarnings(baseRate, hours, holidayOrNight)
	if err != nil {
		return SubmissionResult{}, err
	}

	// Snapshot the running average before the new record exists. The new
	// entry must not be part of its own comparison baseline.
	history, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return SubmissionResult{}, fmt.Errorf("load history: %w", err)
	}
	average := core.AverageEarnings(history)

	stored, err := s.store.Insert(ctx, core.WorkRecord{
		UserID:         userID,
		Date:           date,
		HourlyRate:     adjustedRate,
		HoursWorked:    hours,
		HolidayOrNight: holidayOrNight,
		Earnings:       earnings,
	})
	if err != nil {
		return SubmissionResult{}, fmt.Errorf("persist record: %w", err)
	}

	classification := core.Classify(stored.Earnings, average)

	slog.InfoContext(ctx, "Work entry submitted",
		applog.FieldUserID, userID,
		applog.FieldRecordID, stored.ID,
		applog.FieldDate, stored.Date.String(),
		applog.FieldEarnings, stored.Earnings,
		applog.FieldAverage, average,
		applog.FieldClassification, classification)

	s.notifyDeviation(ctx, stored, classification, average)

	return SubmissionResult{
		Record:         stored,
		Classification: classification,
		Average:        average,
	}, nil
}

// notifyDeviation emits an alert for above/below classifications. Failures
// don't roll back the persisted record.
func (s *EntryService) notifyDeviation(ctx context.Context, rec core.WorkRecord, cls core.Classification, average float64) {
	if cls == core.Equal {
		return
	}
	if s.notifier == nil {
		slog.WarnContext(ctx, "No notifier configured, skipping earnings alert",
			applog.FieldUserID, rec.UserID, applog.FieldRecordID, rec.ID)
		return
	}

	alert := notify.Alert{
		UserID:         rec.UserID,
		RecordID:       rec.ID,
		Classification: cls,
		Message:        notify.BuildMessage(cls, rec.Earnings, average),
		Earnings:       rec.Earnings,
		Average:        average,
	}
	if err := s.notifier.Send(ctx, alert); err != nil {
		slog.ErrorContext(ctx, "Failed to send earnings alert",
			applog.FieldUserID, rec.UserID,
			applog.FieldRecordID, rec.ID,
			applog.FieldClassification, cls,
			applog.FieldError, err)
		// Don't fail the submission - the record is already persisted
	}
}

// ListRecords returns the user's full history ascending by date.
func (s *EntryService) ListRecords(ctx context.Context, userID string) ([]core.WorkRecord, error) {
	records, err := s.store.ListByUserOrderedByDate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

// MonthlySummaries recomputes the per-month totals from the full history.
// Feeding the aggregator date-ordered records makes the group order
// chronological as a side effect of first-seen ordering.
func (s *EntryService) MonthlySummaries(ctx context.Context, userID string) ([]core.MonthlySummary, error) {
	records, err := s.store.ListByUserOrderedByDate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list records for aggregation: %w", err)
	}
	return core.AggregateByMonth(records), nil
}
