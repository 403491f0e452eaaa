package date

import (
	"testing"
	"time"
)

func TestNewRange(t *testing.T) {
	testCases := []struct {
		name   string
		in     Date
		period Period
		want   Range
	}{
		{"Single day", New(2025, time.September, 8), Daily, Range{From: New(2025, time.September, 8), To: New(2025, time.September, 8)}},
		{"A Wednesday", New(2025, time.September, 10), Weekly, Range{From: New(2025, time.September, 8), To: New(2025, time.September, 14)}},
		{"A Sunday", New(2025, time.September, 14), Weekly, Range{From: New(2025, time.September, 8), To: New(2025, time.September, 14)}},
		{"A month", New(2025, time.September, 17), Monthly, Range{From: New(2025, time.September, 1), To: New(2025, time.September, 30)}},
		{"A leap year", New(2024, time.February, 15), Monthly, Range{From: New(2024, time.February, 1), To: New(2024, time.February, 29)}},
		{"December", New(2025, time.December, 5), Monthly, Range{From: New(2025, time.December, 1), To: New(2025, time.December, 31)}},
		{"A year", New(2025, time.September, 8), Yearly, Range{From: New(2025, time.January, 1), To: New(2025, time.December, 31)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewRange(tc.in, tc.period); got != tc.want {
				t.Errorf("NewRange(%v, %v) = %v, want %v", tc.in, tc.period, got, tc.want)
			}
		})
	}
}

func TestRange_Identifier(t *testing.T) {
	testCases := []struct {
		name string
		in   Range
		want string
	}{
		{"Daily Identifier", NewRange(New(2025, time.September, 8), Daily), "2025-09-08"},
		{"Weekly Identifier", NewRange(New(2025, time.September, 8), Weekly), "2025-W37"},
		{"Early Week Identifier", NewRange(New(2025, time.January, 6), Weekly), "2025-W02"},
		{"Monthly Identifier", Month(New(2025, time.September, 1)), "2025-09"},
		{"Yearly Identifier", NewRange(New(2025, time.January, 1), Yearly), "2025"},
		{"Custom Range Identifier", Range{From: New(2025, time.September, 2), To: New(2025, time.September, 10)}, "2025-09-02_2025-09-10"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Identifier(); got != tc.want {
				t.Errorf("Identifier() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseMonth(t *testing.T) {
	got, err := ParseMonth("2025-02")
	if err != nil {
		t.Fatalf("ParseMonth() error = %v", err)
	}
	want := Range{From: New(2025, time.February, 1), To: New(2025, time.February, 28)}
	if got != want {
		t.Errorf("ParseMonth() = %v, want %v", got, want)
	}
	if _, err := ParseMonth("February"); err == nil {
		t.Errorf("ParseMonth(%q) expected an error", "February")
	}
}

func TestRange_Days(t *testing.T) {
	r := Month(New(2025, time.February, 10))
	var n int
	prev := r.From.Add(-1)
	for d := range r.Days() {
		if d.Add(-1) != prev {
			t.Fatalf("Days() yielded %v after %v", d, prev)
		}
		if !r.Contains(d) {
			t.Errorf("Contains(%v) = false for a day of the range", d)
		}
		prev = d
		n++
	}
	if n != 28 {
		t.Errorf("Days() yielded %d days, want 28", n)
	}
	if r.Contains(New(2025, time.March, 1)) {
		t.Errorf("Contains(2025-03-01) = true, want false")
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Period
		wantErr bool
	}{
		{"Daily", "daily", Daily, false},
		{"Weekly", "weekly", Weekly, false},
		{"Monthly", "monthly", Monthly, false},
		{"Yearly", "yearly", Yearly, false},
		{"Unknown", "unknown", Daily, true},
		{"Day", "day", Daily, false},
		{"Week", "Week", Weekly, false},
		{"Month", "month", Monthly, false},
		{"Year", "year", Yearly, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if (err != nil) != tc.wantErr {
				t.Errorf("ParsePeriod() error = %v, wantErr %v", err, tc.wantErr)
				return
			}
			if got != tc.want {
				t.Errorf("ParsePeriod() = %v, want %v", got, tc.want)
			}
		})
	}
}
