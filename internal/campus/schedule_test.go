package campus

import (
	"errors"
	"testing"

	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/errs"
)

func TestParseClassPeriod(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		days      string
		wantStart string
		wantEnd   string
	}{
		{"Registration Format", "9:00a - 9:50a", "MWF", "09:00", "09:50"},
		{"Afternoon Class", "1:35p - 2:50p", "TTh", "13:35", "14:50"},
		{"Plain 24 Hour", "09:00 09:50", "MWF", "09:00", "09:50"},
		{"Evening Class", "5:00p - 7:30p", "W", "17:00", "19:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := ParseClassPeriod(tt.raw, tt.days)
			if err != nil {
				t.Fatalf("ParseClassPeriod(%q) error: %v", tt.raw, err)
			}
			if period.Start != tt.wantStart || period.End != tt.wantEnd {
				t.Errorf("ParseClassPeriod(%q) = %q-%q, want %q-%q",
					tt.raw, period.Start, period.End, tt.wantStart, tt.wantEnd)
			}
			if period.Days != tt.days {
				t.Errorf("days = %q, want %q", period.Days, tt.days)
			}
		})
	}
}

func TestParseClassPeriod_Malformed(t *testing.T) {
	for _, raw := range []string{"", "9:00a", "9:00a 9:50a 10:00a", "banana - apple"} {
		if _, err := ParseClassPeriod(raw, "MWF"); !errors.Is(err, errs.ErrFormat) {
			t.Errorf("ParseClassPeriod(%q): expected format error, got %v", raw, err)
		}
	}
}

func TestCategoryCode(t *testing.T) {
	want := map[string]int{
		"Education":            4,
		"Conferences":          1006,
		"Athletics":            10,
		"Arts & Entertainment": 9,
		"Major Conferences":    6,
		"Student Life":         49,
		"Health and Wellness":  47,
		"Other":                52,
	}

	for label, code := range want {
		got, err := CategoryCode(label)
		if err != nil {
			t.Errorf("CategoryCode(%q) error: %v", label, err)
			continue
		}
		if got != code {
			t.Errorf("CategoryCode(%q) = %d, want %d", label, got, code)
		}
	}

	if _, err := CategoryCode("Cooking"); err == nil {
		t.Error("unknown category must be rejected before any network call")
	}

	if len(Categories) != len(want) {
		t.Errorf("menu lists %d categories, want %d", len(Categories), len(want))
	}
}
