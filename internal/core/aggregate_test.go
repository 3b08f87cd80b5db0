package core

import (
	"math"
	"testing"
)

func TestAggregateByMonthEmpty(t *testing.T) {
	if got := AggregateByMonth(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestAggregateByMonthGroups(t *testing.T) {
	records := []WorkRecord{
		{Date: NewDate(2024, 1, 5), HoursWorked: 4, Earnings: 40},
		{Date: NewDate(2024, 1, 20), HoursWorked: 6, Earnings: 60},
		{Date: NewDate(2024, 2, 1), HoursWorked: 3, Earnings: 30},
	}

	got := AggregateByMonth(records)
	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}

	jan := got[0]
	if jan.Month != (MonthKey{Month: 1, Year: 2024}) {
		t.Fatalf("first summary month = %v", jan.Month)
	}
	if jan.TotalHours != 10 || jan.TotalEarnings != 100 {
		t.Fatalf("january totals = %v h, %v earned", jan.TotalHours, jan.TotalEarnings)
	}

	feb := got[1]
	if feb.Month != (MonthKey{Month: 2, Year: 2024}) {
		t.Fatalf("second summary month = %v", feb.Month)
	}
	if feb.TotalHours != 3 || feb.TotalEarnings != 30 {
		t.Fatalf("february totals = %v h, %v earned", feb.TotalHours, feb.TotalEarnings)
	}
}

func TestAggregateByMonthYearBoundary(t *testing.T) {
	records := []WorkRecord{
		{Date: NewDate(2023, 12, 15), HoursWorked: 8, Earnings: 80},
		{Date: NewDate(2024, 1, 15), HoursWorked: 8, Earnings: 80},
	}

	got := AggregateByMonth(records)
	if len(got) != 2 {
		t.Fatalf("december 2023 and january 2024 must not merge, got %d groups", len(got))
	}
	if got[0].Month.Year == got[1].Month.Year {
		t.Fatalf("groups share a year: %v, %v", got[0].Month, got[1].Month)
	}
}

// Aggregation is a partition: totals across groups equal totals across input.
func TestAggregateByMonthPartition(t *testing.T) {
	records := []WorkRecord{
		{Date: NewDate(2024, 3, 1), HoursWorked: 7.5, Earnings: 93.75},
		{Date: NewDate(2024, 3, 9), HoursWorked: 6.25, Earnings: 62.5},
		{Date: NewDate(2024, 4, 2), HoursWorked: 8, Earnings: 120},
		{Date: NewDate(2024, 5, 30), HoursWorked: 2.5, Earnings: 37.5},
		{Date: NewDate(2024, 4, 12), HoursWorked: 4, Earnings: 60},
	}

	var wantHours, wantEarnings float64
	for _, r := range records {
		wantHours += r.HoursWorked
		wantEarnings += r.Earnings
	}

	var gotHours, gotEarnings float64
	for _, s := range AggregateByMonth(records) {
		gotHours += s.TotalHours
		gotEarnings += s.TotalEarnings
	}

	if math.Abs(gotHours-wantHours) > 1e-9 {
		t.Fatalf("hours: sum of summaries %v != sum of records %v", gotHours, wantHours)
	}
	if math.Abs(gotEarnings-wantEarnings) > 1e-9 {
		t.Fatalf("earnings: sum of summaries %v != sum of records %v", gotEarnings, wantEarnings)
	}
}

func TestAggregateByMonthFirstSeenOrder(t *testing.T) {
	records := []WorkRecord{
		{Date: NewDate(2024, 6, 1), HoursWorked: 1, Earnings: 10},
		{Date: NewDate(2024, 2, 1), HoursWorked: 1, Earnings: 10},
		{Date: NewDate(2024, 6, 2), HoursWorked: 1, Earnings: 10},
	}

	got := AggregateByMonth(records)
	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}
	if got[0].Month.Month != 6 || got[1].Month.Month != 2 {
		t.Fatalf("expected first-seen order [6 2], got [%d %d]", got[0].Month.Month, got[1].Month.Month)
	}
}

func TestMonthKeyString(t *testing.T) {
	cases := []struct {
		key  MonthKey
		want string
	}{
		{MonthKey{Month: 1, Year: 2024}, "1-2024"},
		{MonthKey{Month: 12, Year: 2023}, "12-2023"},
	}
	for i, tc := range cases {
		if got := tc.key.String(); got != tc.want {
			t.Fatalf("case %d key string = %q, want %q", i, got, tc.want)
		}
	}
}
