package core

import (
	"errors"
	"math"
	"testing"
)

func TestComputeEarnings(t *testing.T) {
	cases := []struct {
		rate, hours  float64
		holiday      bool
		wantRate     float64
		wantEarnings float64
	}{
		{10, 8, false, 10, 80},
		{10, 8, true, 15, 120},
		{12.5, 4, false, 12.5, 50},
		{8, 0.5, true, 12, 6},
	}
	for i, tc := range cases {
		gotRate, gotEarnings, err := ComputeEarnings(tc.rate, tc.hours, tc.holiday)
		if err != nil {
			t.Fatalf("case %d unexpected error: %v", i, err)
		}
		if gotRate != tc.wantRate {
			t.Fatalf("case %d rate = %v, want %v", i, gotRate, tc.wantRate)
		}
		if gotEarnings != tc.wantEarnings {
			t.Fatalf("case %d earnings = %v, want %v", i, gotEarnings, tc.wantEarnings)
		}
	}
}

func TestComputeEarningsRejectsBadInput(t *testing.T) {
	cases := []struct {
		rate, hours float64
		wantErr     error
	}{
		{0, 8, ErrInvalidRate},
		{-10, 8, ErrInvalidRate},
		{math.NaN(), 8, ErrInvalidRate},
		{math.Inf(1), 8, ErrInvalidRate},
		{10, 0, ErrInvalidHours},
		{10, -1, ErrInvalidHours},
		{10, math.NaN(), ErrInvalidHours},
		{10, math.Inf(-1), ErrInvalidHours},
	}
	for i, tc := range cases {
		_, _, err := ComputeEarnings(tc.rate, tc.hours, false)
		if !errors.Is(err, tc.wantErr) {
			t.Fatalf("case %d err = %v, want %v", i, err, tc.wantErr)
		}
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("case %d err %v should wrap ErrValidation", i, err)
		}
	}
}

func TestAverageEarningsEmpty(t *testing.T) {
	if got := AverageEarnings(nil); got != 0 {
		t.Fatalf("empty history average = %v, want 0", got)
	}
}

func TestAverageEarnings(t *testing.T) {
	identical := []WorkRecord{
		{Earnings: 75},
		{Earnings: 75},
		{Earnings: 75},
	}
	if got := AverageEarnings(identical); got != 75 {
		t.Fatalf("average of identical records = %v, want 75", got)
	}

	mixed := []WorkRecord{{Earnings: 100}, {Earnings: 200}}
	if got := AverageEarnings(mixed); got != 150 {
		t.Fatalf("average = %v, want 150", got)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		earnings, average float64
		want              Classification
	}{
		{80, 0, Above},
		{120, 150, Below},
		{150, 150, Equal},
		{149.999, 150, Below},
	}
	for i, tc := range cases {
		if got := Classify(tc.earnings, tc.average); got != tc.want {
			t.Fatalf("case %d classify(%v, %v) = %v, want %v", i, tc.earnings, tc.average, got, tc.want)
		}
	}
}
