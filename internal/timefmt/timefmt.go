// Package timefmt converts between the clock formats the campus APIs use:
// 24-hour "HH:MM" strings, 12-hour "h:mm am" strings, and zero-padded 24-hour
// keys that order lexicographically the same as real clock time.
package timefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/errs"
)

// Source formats accepted by ToComparable.
const (
	Format24 = "HH:MM"
	Format12 = "hh:MM a"
)

// Weekday codes follow the schedule API: 0=Su, 1=M, ... 6=Sa.
var weekdayCodes = [7]string{"Su", "M", "T", "W", "Th", "F", "Sa"}

// WeekdayCode returns the compact weekday code for an instant.
func WeekdayCode(t time.Time) string {
	return weekdayCodes[int(t.Weekday())]
}

// ToComparable normalizes a clock string into a zero-padded 24-hour "HH:MM"
// key. Keys compare lexicographically consistent with real clock time, which
// is how every time comparison in this program works.
func ToComparable(value, format string) (string, error) {
	switch format {
	case Format24:
		h, m, err := parse24(value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%02d:%02d", h, m), nil
	case Format12:
		h, m, err := parse12(value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%02d:%02d", h, m), nil
	default:
		return "", fmt.Errorf("%w: unknown time format %q", errs.ErrFormat, format)
	}
}

// To12Hour converts a 24-hour time-of-day ("HH:MM" or "HH:MM:SS") into the
// display form "h:mm am". Midnight is a required special case: any "00:xx"
// becomes exactly "12:00 am", matching what the event tables have always
// shown.
func To12Hour(timeOfDay string) (string, error) {
	if strings.HasPrefix(timeOfDay, "00") {
		return "12:00 am", nil
	}
	h, m, err := parse24(timeOfDay)
	if err != nil {
		return "", err
	}
	suffix := "am"
	switch {
	case h == 12:
		suffix = "pm"
	case h > 12:
		h -= 12
		suffix = "pm"
	}
	return fmt.Sprintf("%d:%02d %s", h, m, suffix), nil
}

// Is12Hour reports whether a string already carries an am/pm suffix.
func Is12Hour(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	return strings.HasSuffix(v, "am") || strings.HasSuffix(v, "pm")
}

func parse24(value string) (int, int, error) {
	v := strings.TrimSpace(value)
	parts := strings.Split(v, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, fmt.Errorf("%w: bad 24-hour time %q", errs.ErrFormat, value)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, fmt.Errorf("%w: bad hour in %q", errs.ErrFormat, value)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("%w: bad minute in %q", errs.ErrFormat, value)
	}
	return h, m, nil
}

func parse12(value string) (int, int, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	v = strings.ReplaceAll(v, " ", "")
	var pm bool
	switch {
	case strings.HasSuffix(v, "am"):
		v = strings.TrimSuffix(v, "am")
	case strings.HasSuffix(v, "pm"):
		v = strings.TrimSuffix(v, "pm")
		pm = true
	default:
		return 0, 0, fmt.Errorf("%w: missing am/pm in %q", errs.ErrFormat, value)
	}
	h, m, err := parse24(v)
	if err != nil {
		return 0, 0, err
	}
	if h < 1 || h > 12 {
		return 0, 0, fmt.Errorf("%w: bad 12-hour hour in %q", errs.ErrFormat, value)
	}
	if h == 12 {
		h = 0
	}
	if pm {
		h += 12
	}
	return h, m, nil
}
