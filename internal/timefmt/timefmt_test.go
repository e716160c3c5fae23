package timefmt

import (
	"errors"
	"testing"
	"time"

	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/errs"
)

func TestToComparable(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		format string
		want   string
	}{
		{"24h Already Padded", "09:00", Format24, "09:00"},
		{"24h Unpadded Hour", "9:00", Format24, "09:00"},
		{"24h Evening", "18:30", Format24, "18:30"},
		{"24h With Seconds", "18:30:00", Format24, "18:30"},
		{"12h Morning", "9:30 am", Format12, "09:30"},
		{"12h Afternoon", "1:15 pm", Format12, "13:15"},
		{"12h Noon", "12:00 pm", Format12, "12:00"},
		{"12h Midnight", "12:00 am", Format12, "00:00"},
		{"12h No Space", "9:00am", Format12, "09:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToComparable(tt.value, tt.format)
			if err != nil {
				t.Fatalf("ToComparable(%q, %q) error: %v", tt.value, tt.format, err)
			}
			if got != tt.want {
				t.Errorf("ToComparable(%q, %q) = %q, want %q", tt.value, tt.format, got, tt.want)
			}
		})
	}
}

func TestToComparable_Malformed(t *testing.T) {
	bad := []struct {
		value  string
		format string
	}{
		{"not a time", Format24},
		{"25:00", Format24},
		{"12:61", Format24},
		{"9:30", Format12},      // missing am/pm
		{"13:30 pm", Format12},  // 12-hour clock has no hour 13
		{"9:30 am", "HH:MM:SS"}, // unknown format
	}

	for _, tt := range bad {
		if _, err := ToComparable(tt.value, tt.format); !errors.Is(err, errs.ErrFormat) {
			t.Errorf("ToComparable(%q, %q): expected format error, got %v", tt.value, tt.format, err)
		}
	}
}

func TestTo12Hour(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		// The midnight rule: anything starting "00" collapses to 12:00 am.
		{"Midnight Exact", "00:00:00", "12:00 am"},
		{"Midnight With Minutes", "00:45:00", "12:00 am"},
		{"Morning", "09:30:00", "9:30 am"},
		{"Noon", "12:00:00", "12:00 pm"},
		{"Afternoon", "13:05:00", "1:05 pm"},
		{"Evening", "18:00:00", "6:00 pm"},
		{"No Seconds", "18:00", "6:00 pm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := To12Hour(tt.value)
			if err != nil {
				t.Fatalf("To12Hour(%q) error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("To12Hour(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}

	if _, err := To12Hour("garbage"); !errors.Is(err, errs.ErrFormat) {
		t.Errorf("To12Hour(garbage): expected format error, got %v", err)
	}
}

func TestWeekdayCode(t *testing.T) {
	// 2022-03-06 was a Sunday; walk the whole week from there.
	want := []string{"Su", "M", "T", "W", "Th", "F", "Sa"}
	start := time.Date(2022, time.March, 6, 10, 0, 0, 0, time.UTC)
	for i, code := range want {
		day := start.AddDate(0, 0, i)
		if got := WeekdayCode(day); got != code {
			t.Errorf("WeekdayCode(%s) = %q, want %q", day.Format("2006-01-02"), got, code)
		}
	}
}

func TestWeekdayCode_IgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2022, time.March, 7, 1, 0, 0, 0, time.UTC)
	night := time.Date(2022, time.March, 7, 23, 59, 0, 0, time.UTC)
	if WeekdayCode(morning) != WeekdayCode(night) {
		t.Error("same calendar date produced different weekday codes")
	}
}

func TestComparableOrdering(t *testing.T) {
	// Lexicographic order on the keys must agree with clock order.
	keys := []string{"00:00", "07:05", "09:00", "12:00", "13:30", "23:59"}
	for i := 1; i < len(keys); i++ {
		if !(keys[i-1] < keys[i]) {
			t.Errorf("comparable keys out of order: %q >= %q", keys[i-1], keys[i])
		}
	}
}
