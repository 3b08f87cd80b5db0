// Package core holds the earnings rules: how a daily entry becomes an
// earnings amount, how history folds into a running average, and how a new
// entry is classified against that average.
package core

// HolidayPremium is the multiplier applied to the hourly rate for hours
// worked on holidays, Sundays or at night.
const HolidayPremium = 1.5

// Classification tells how a day's earnings compare to the running average.
type Classification string

const (
	Above Classification = "above"
	Below Classification = "below"
	Equal Classification = "equal"
)

// ComputeEarnings turns the rate the user typed and the hours worked into the
// adjusted rate and the earned amount. The premium is folded into the
// returned rate, so earnings == adjustedRate * hours always holds for what
// gets persisted.
func ComputeEarnings(baseRate, hours float64, holidayOrNight bool) (adjustedRate, earnings float64, err error) {
	if !isPositiveFinite(baseRate) {
		return 0, 0, ErrInvalidRate
	}
	if !isPositiveFinite(hours) {
		return 0, 0, ErrInvalidHours
	}
	adjustedRate = baseRate
	if holidayOrNight {
		adjustedRate = baseRate * HolidayPremium
	}
	return adjustedRate, adjustedRate * hours, nil
}

// AverageEarnings returns the arithmetic mean of earnings over the whole
// history. Zero for an empty history, so the first entry always classifies
// above average.
func AverageEarnings(records []WorkRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += r.Earnings
	}
	return sum / float64(len(records))
}

// Classify compares a new entry's earnings against the average computed
// before that entry was added. Strict comparisons; exact equality reports
// Equal and emits no notification upstream.
func Classify(earnings, average float64) Classification {
	switch {
	case earnings > average:
		return Above
	case earnings < average:
		return Below
	default:
		return Equal
	}
}
