package campus

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/errs"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/models"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/timefmt"
)

// The registration API signals "no classes" with this exact string instead of
// an empty table.
const notEnrolledSentinel = "You are not currently enrolled for any classes."

// WeeklySchedule is a student's class schedule for the term.
type WeeklySchedule struct {
	Enrolled bool
	Periods  []models.ClassPeriod
}

// FetchSchedule pulls the weekly class schedule for a person. Rows that
// cannot be parsed are skipped so one odd entry never hides the schedule.
func (c *Client) FetchSchedule(apiKey, personID string) (*WeeklySchedule, error) {
	u := fmt.Sprintf("%s/%s/%s", c.cfg.API.ScheduleURL, personID, c.cfg.API.Term)
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, errs.Transport(err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Transport(err)
	}
	defer resp.Body.Close()

	// The registration API signals an ID/key mismatch through a header, not
	// a status code.
	if resp.Header.Get("error-code") == "2" {
		return nil, errs.Upstream("that BYU ID and API key do not match; please try again")
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden:
		return nil, errs.Upstream("it looks like you are not subscribed to the AcademicRegistrationStudentSchedule - v1 API; please subscribe and try again")
	default:
		return nil, errs.Upstream("the student schedule API rejected the request")
	}

	var result struct {
		WeeklySchedService struct {
			Response struct {
				Enrolled      string `json:"enrolled"`
				ScheduleTable []struct {
					ClassPeriod string `json:"class_period"`
					Days        string `json:"days"`
				} `json:"schedule_table"`
			} `json:"response"`
		} `json:"WeeklySchedService"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errs.Upstream("the student schedule API returned an unreadable response")
	}

	sched := &WeeklySchedule{
		Enrolled: result.WeeklySchedService.Response.Enrolled != notEnrolledSentinel,
	}
	if !sched.Enrolled {
		return sched, nil
	}

	for _, row := range result.WeeklySchedService.Response.ScheduleTable {
		period, err := ParseClassPeriod(row.ClassPeriod, row.Days)
		if err != nil {
			continue
		}
		sched.Periods = append(sched.Periods, period)
	}
	return sched, nil
}

// ParseClassPeriod turns a raw class period like "9:00a - 9:50a" (or
// "09:00 09:50") plus a day list like "MWF" into a ClassPeriod with
// comparable start/end keys.
func ParseClassPeriod(raw, days string) (models.ClassPeriod, error) {
	parts := strings.Fields(strings.ReplaceAll(raw, "-", " "))
	if len(parts) != 2 {
		return models.ClassPeriod{}, fmt.Errorf("%w: bad class period %q", errs.ErrFormat, raw)
	}

	start, err := parseClassTime(parts[0])
	if err != nil {
		return models.ClassPeriod{}, err
	}
	end, err := parseClassTime(parts[1])
	if err != nil {
		return models.ClassPeriod{}, err
	}

	return models.ClassPeriod{Start: start, End: end, Days: days}, nil
}

// parseClassTime accepts the registration API's abbreviated "9:00a" form as
// well as plain 24-hour times.
func parseClassTime(v string) (string, error) {
	lower := strings.ToLower(v)
	if strings.HasSuffix(lower, "a") || strings.HasSuffix(lower, "p") {
		lower += "m"
	}
	if timefmt.Is12Hour(lower) {
		return timefmt.ToComparable(lower, timefmt.Format12)
	}
	return timefmt.ToComparable(v, timefmt.Format24)
}
