package core

import "strconv"

// MonthKey identifies one calendar month. A typed key rather than a
// formatted string, so "10-2024" can never lexically sort before "2-2025".
type MonthKey struct {
	Month int // 1-12
	Year  int
}

// String renders the month in the M-YYYY display form used by the monthly
// overview table.
func (k MonthKey) String() string {
	return strconv.Itoa(k.Month) + "-" + strconv.Itoa(k.Year)
}

// MonthlySummary is the aggregate for one calendar month. Computed on
// demand, never persisted.
type MonthlySummary struct {
	Month         MonthKey
	TotalHours    float64
	TotalEarnings float64
}

// AggregateByMonth groups records by calendar month and sums hours and
// earnings per group. No rounding during accumulation. The output order is
// first-seen-month order of the input, which keeps the result deterministic
// for a given record order; callers needing chronological order sort
// themselves.
func AggregateByMonth(records []WorkRecord) []MonthlySummary {
	if len(records) == 0 {
		return nil
	}

	index := make(map[MonthKey]int, len(records))
	summaries := make([]MonthlySummary, 0, len(records))

	for _, r := range records {
		key := MonthKey{Month: r.Date.Month(), Year: r.Date.Year()}
		i, ok := index[key]
		if !ok {
			i = len(summaries)
			index[key] = i
			summaries = append(summaries, MonthlySummary{Month: key})
		}
		summaries[i].TotalHours += r.HoursWorked
		summaries[i].TotalEarnings += r.Earnings
	}

	return summaries
}
