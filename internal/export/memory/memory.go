// Package memory keeps exported snapshots in process memory. Used in tests
// and when no spreadsheet is configured.
package memory

import (
	"context"
	"sync"

	"satnica/internal/export"
)

type Writer struct {
	mu   sync.Mutex
	last []export.Row
}

var _ export.SummaryWriter = (*Writer)(nil)

func New() *Writer {
	return &Writer{}
}

func (w *Writer) WriteSummaries(_ context.Context, rows []export.Row) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.last = append([]export.Row(nil), rows...)
	return nil
}

// Last returns the most recently written snapshot.
func (w *Writer) Last() []export.Row {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]export.Row(nil), w.last...)
}
