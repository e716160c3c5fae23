package events

import (
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/clock"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/models"
)

// Filter marks every event whose start falls inside a class period on a day
// the class also meets. Suppression is monotonic: once a period suppresses an
// event, later periods cannot bring it back. Callers skip the filter entirely
// for students with no enrollment.
func Filter(periods []models.ClassPeriod, evs []*Normalized) {
	if len(periods) == 0 {
		return
	}
	for _, ev := range evs {
		if ev.Suppressed {
			continue
		}
		key := ev.StartsAt.Format("15:04")
		for _, p := range periods {
			if !clock.DayMatch(p.Days, ev.DayOfWeek) {
				continue
			}
			// Start is inclusive, end is exclusive: a 9:50 event is free to
			// follow a 9:00-9:50 class.
			if p.Start <= key && key < p.End {
				ev.Suppressed = true
				break
			}
		}
	}
}
