package campus

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/errs"
)

// Categories lists the browseable event categories in menu order.
var Categories = []string{
	"Education",
	"Conferences",
	"Athletics",
	"Arts & Entertainment",
	"Major Conferences",
	"Student Life",
	"Health and Wellness",
	"Other",
}

// categoryCodes maps a category label to the number the calendar API expects.
var categoryCodes = map[string]int{
	"Education":            4,
	"Conferences":          1006,
	"Athletics":            10,
	"Arts & Entertainment": 9,
	"Major Conferences":    6,
	"Student Life":         49,
	"Health and Wellness":  47,
	"Other":                52,
}

// CategoryCode validates a category label before any network call is made.
func CategoryCode(label string) (int, error) {
	code, ok := categoryCodes[label]
	if !ok {
		return 0, fmt.Errorf("%w: unknown event category %q", errs.ErrFormat, label)
	}
	return code, nil
}

// RawEvent is one record exactly as the calendar API returns it.
type RawEvent struct {
	Title         string  `json:"Title"`
	Description   *string `json:"Description"`
	LocationName  string  `json:"LocationName"`
	StartDateTime string  `json:"StartDateTime"`
	FullURL       string  `json:"FullUrl"`
	HighPrice     string  `json:"HighPrice"`
}

// FetchEvents pulls every event in a category between today and the end of
// the browse window. An empty slice is a valid answer.
func (c *Client) FetchEvents(category string) ([]RawEvent, error) {
	code, err := CategoryCode(category)
	if err != nil {
		return nil, err
	}

	today := c.clk.Now()
	windowEnd := today.AddDate(0, 0, c.cfg.Browse.WindowDays)

	u, err := url.Parse(c.cfg.API.EventsURL)
	if err != nil {
		return nil, errs.Transport(err)
	}
	q := u.Query()
	q.Set("categories", strconv.Itoa(code))
	q.Set("event[min][date]", today.Format("2006-1-2"))
	q.Set("event[max][date]", windowEnd.Format("2006-1-2"))
	u.RawQuery = q.Encode()

	resp, err := c.http.Get(u.String())
	if err != nil {
		return nil, errs.Transport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.Upstream(fmt.Sprintf("events API returned status %d", resp.StatusCode))
	}

	var raws []RawEvent
	if err := json.NewDecoder(resp.Body).Decode(&raws); err != nil {
		return nil, errs.Upstream("events API returned an unreadable response")
	}
	return raws, nil
}
