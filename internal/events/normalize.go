// Package events is the conflict-filtering and curation core: it normalizes
// raw calendar records, hides the ones that clash with the student's class
// schedule, and maintains the session browse table and the persistent
// My Events table.
package events

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/campus"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/errs"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/models"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/timefmt"
)

var (
	quoteStripper = strings.NewReplacer(`"`, "", `'`, "")
	tagPattern    = regexp.MustCompile(`<[^>]*>?`)
)

// Normalized is a canonical event plus the session-only suppression flag.
// The flag never reaches storage: suppressed events are simply not written.
type Normalized struct {
	models.Event
	Suppressed bool
}

// Normalize turns one raw calendar record into a canonical event. A record
// whose start time cannot be read is the caller's cue to skip it, never to
// abort the whole fetch.
func Normalize(raw campus.RawEvent, byuID, category string) (*Normalized, error) {
	name := quoteStripper.Replace(raw.Title)

	var description string
	if raw.Description != nil {
		description = cleanDescription(*raw.Description)
	}

	location := raw.LocationName
	if location == "" {
		location = "No Location Listed"
	}

	startTime, startsAt, err := rewriteStart(raw.StartDateTime)
	if err != nil {
		return nil, err
	}

	price := raw.HighPrice
	if price == "0.0" {
		price = "Free!"
	}

	return &Normalized{
		Event: models.Event{
			Name:        name,
			StartTime:   startTime,
			Price:       price,
			Description: description,
			URL:         raw.FullURL,
			Location:    location,
			DayOfWeek:   timefmt.WeekdayCode(startsAt),
			ByuID:       byuID,
			Category:    category,
			StartsAt:    startsAt,
		},
	}, nil
}

// cleanDescription strips HTML tags, the calendar feed's mis-encoded
// apostrophe, and literal backslash-n / backslash-r sequences.
func cleanDescription(d string) string {
	d = tagPattern.ReplaceAllString(d, " ")
	d = strings.ReplaceAll(d, "Â¿", "'")
	d = strings.ReplaceAll(d, `\n`, " ")
	d = strings.ReplaceAll(d, `\r`, " ")
	return d
}

// rewriteStart rewrites "2022-03-25 18:00:00" as "2022-03-25 6:00 pm" and
// derives the instant used for ordering. Feeding an already-rewritten value
// back through is value-preserving.
func rewriteStart(startDateTime string) (string, time.Time, error) {
	if len(startDateTime) < 12 {
		return "", time.Time{}, fmt.Errorf("%w: bad start %q", errs.ErrFormat, startDateTime)
	}
	datePart := startDateTime[:10]
	timeOfDay := strings.TrimSpace(startDateTime[11:])

	var display string
	var err error
	if timefmt.Is12Hour(timeOfDay) {
		display = timeOfDay
	} else {
		display, err = timefmt.To12Hour(timeOfDay)
		if err != nil {
			return "", time.Time{}, err
		}
	}

	// The instant always matches the display form, so "00:45" sorts as the
	// "12:00 am" it renders as.
	key, err := timefmt.ToComparable(display, timefmt.Format12)
	if err != nil {
		return "", time.Time{}, err
	}
	day, err := time.Parse("2006-01-02", datePart)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: bad date %q", errs.ErrFormat, datePart)
	}
	h, _ := strconv.Atoi(key[:2])
	m, _ := strconv.Atoi(key[3:])
	startsAt := time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, time.UTC)

	return datePart + " " + display, startsAt, nil
}
