// Package export mirrors per-user monthly summaries to an external sheet,
// the overview table users keep an eye on outside the app.
package export

import "context"

// Row is one line of the overview table: a user's totals for one month.
type Row struct {
	UserID        string
	MonthYear     string // M-YYYY
	TotalHours    float64
	TotalEarnings float64
}

// SummaryWriter replaces the destination's contents with the given snapshot.
type SummaryWriter interface {
	WriteSummaries(ctx context.Context, rows []Row) error
}
