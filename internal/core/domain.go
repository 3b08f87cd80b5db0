package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

type (
	// Date is a plain calendar date. No time component, no timezone math:
	// the backing time.Time is always midnight UTC.
	Date struct {
		time.Time
	}

	// WorkRecord is one persisted day of work. HourlyRate already includes
	// the holiday/night premium when HolidayOrNight is set; the base rate
	// the user typed is not stored separately.
	WorkRecord struct {
		ID             string
		UserID         string
		Date           Date
		HourlyRate     float64
		HoursWorked    float64
		HolidayOrNight bool
		Earnings       float64
	}
)

// ErrValidation is the class every input validation failure wraps, so callers
// can distinguish bad input from storage failures with errors.Is.
var (
	ErrValidation = errors.New("invalid input")

	ErrInvalidRate  = fmt.Errorf("%w: hourly rate must be a positive finite number", ErrValidation)
	ErrInvalidHours = fmt.Errorf("%w: hours worked must be a positive finite number", ErrValidation)
	ErrInvalidDate  = fmt.Errorf("%w: date cannot be zero", ErrValidation)
	ErrEmptyUserID  = fmt.Errorf("%w: user id cannot be empty", ErrValidation)
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string, the format records are exchanged in.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	return Date{Time: t.UTC()}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month as 1-12.
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the 4-digit year.
func (d Date) Year() int {
	return d.Time.Year()
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

func (r WorkRecord) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return ErrEmptyUserID
	}
	if err := r.Date.Validate(); err != nil {
		return err
	}
	if !isPositiveFinite(r.HourlyRate) {
		return ErrInvalidRate
	}
	if !isPositiveFinite(r.HoursWorked) {
		return ErrInvalidHours
	}
	return nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
