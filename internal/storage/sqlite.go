// Package storage implements the record store on SQLite. The schema mirrors
// the hosted backend the data originally lived in: one work_hours row per
// entry, date kept as a YYYY-MM-DD string, the holiday flag as a 0/1 column.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"satnica/internal/core"
	"satnica/internal/store"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Insert implements store.RecordStore.
func (r *SQLiteRepository) Insert(ctx context.Context, rec core.WorkRecord) (core.WorkRecord, error) {
	if err := rec.Validate(); err != nil {
		return core.WorkRecord{}, err
	}

	holiday := 0
	if rec.HolidayOrNight {
		holiday = 1
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO work_hours (user_id, date, hourly_rate, hours_worked, holiday_hours, earnings)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.UserID, rec.Date.String(), rec.HourlyRate, rec.HoursWorked, holiday, rec.Earnings)
	if err != nil {
		return core.WorkRecord{}, &store.StorageError{Op: "insert", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.WorkRecord{}, &store.StorageError{Op: "insert", Err: err}
	}
	rec.ID = strconv.FormatInt(id, 10)

	slog.InfoContext(ctx, "Work record saved to SQLite",
		"id", rec.ID,
		"user_id", rec.UserID,
		"date", rec.Date.String(),
		"hours_worked", rec.HoursWorked,
		"earnings", rec.Earnings)

	return rec, nil
}

// ListByUser implements store.RecordStore.
func (r *SQLiteRepository) ListByUser(ctx context.Context, userID string) ([]core.WorkRecord, error) {
	return r.list(ctx, "list_by_user",
		`SELECT id, user_id, date, hourly_rate, hours_worked, holiday_hours, earnings
		 FROM work_hours WHERE user_id = ?`, userID)
}

// ListByUserOrderedByDate implements store.RecordStore.
func (r *SQLiteRepository) ListByUserOrderedByDate(ctx context.Context, userID string) ([]core.WorkRecord, error) {
	return r.list(ctx, "list_by_user_ordered",
		`SELECT id, user_id, date, hourly_rate, hours_worked, holiday_hours, earnings
		 FROM work_hours WHERE user_id = ? ORDER BY date ASC, id ASC`, userID)
}

func (r *SQLiteRepository) list(ctx context.Context, op, query, userID string) ([]core.WorkRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, &store.StorageError{Op: op, Err: err}
	}
	defer rows.Close()

	var out []core.WorkRecord
	for rows.Next() {
		var (
			id      int64
			rec     core.WorkRecord
			dateStr string
			holiday int
		)
		if err := rows.Scan(&id, &rec.UserID, &dateStr, &rec.HourlyRate, &rec.HoursWorked, &holiday, &rec.Earnings); err != nil {
			return nil, &store.StorageError{Op: op, Err: err}
		}
		rec.ID = strconv.FormatInt(id, 10)
		rec.HolidayOrNight = holiday != 0
		rec.Date, err = core.ParseDate(dateStr)
		if err != nil {
			return nil, &store.StorageError{Op: op, Err: fmt.Errorf("stored date %q: %w", dateStr, err)}
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &store.StorageError{Op: op, Err: err}
	}

	return out, nil
}

var _ store.RecordStore = (*SQLiteRepository)(nil)
