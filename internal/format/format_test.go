package format_test

import (
	"testing"
	"time"

	"github.com/csg33k/underwriteai/internal/format"
)

func TestDate(t *testing.T) {
	toronto, err := time.LoadLocation("America/Toronto")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name  string
		t     time.Time
		loc   *time.Location
		long  string
		short string
	}{
		{"utc morning", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), nil, "Jan. 15, 2024, 10:30 a.m.", "Jan. 15, 10:30 a.m."},
		{"toronto offset", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), toronto, "Jan. 15, 2024, 5:30 a.m.", "Jan. 15, 5:30 a.m."},
		{"noon", time.Date(2024, 5, 3, 12, 5, 0, 0, time.UTC), time.UTC, "May 3, 2024, 12:05 p.m.", "May 3, 12:05 p.m."},
		{"midnight", time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC), time.UTC, "Sep. 30, 2024, 12:00 a.m.", "Sep. 30, 12:00 a.m."},
		{"evening", time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC), time.UTC, "Dec. 31, 2023, 11:59 p.m.", "Dec. 31, 11:59 p.m."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := format.Date(tc.t, tc.loc); got != tc.long {
				t.Errorf("Date = %q, want %q", got, tc.long)
			}
			if got := format.DateShort(tc.t, tc.loc); got != tc.short {
				t.Errorf("DateShort = %q, want %q", got, tc.short)
			}
		})
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{500000, "$500,000"},
		{250000, "$250,000"},
		{0, "$0"},
		{999, "$999"},
		{1234.5, "$1,234.50"},
		{-1500, "-$1,500"},
	}
	for _, tc := range tests {
		if got := format.Money(tc.in); got != tc.want {
			t.Errorf("Money(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{2_300_000, "2.3 MB"},
		{900_000, "900 kB"},
		{512, "512 B"},
		{-1, "0 B"},
	}
	for _, tc := range tests {
		if got := format.Size(tc.in); got != tc.want {
			t.Errorf("Size(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := format.Percent(0.92); got != "92%" {
		t.Errorf("got %q", got)
	}
	if got := format.Percent(0.85); got != "85%" {
		t.Errorf("got %q", got)
	}
}
