package events

import (
	"errors"

	"gorm.io/gorm"

	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/campus"
	database "github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/db"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/errs"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/models"
)

// CandidateSet is the per-category browse table. It lives in event_table for
// the length of one browse and is rebuilt from scratch on every category
// switch.
type CandidateSet struct {
	db    *gorm.DB
	byuID string
	gen   uint64
}

func NewCandidateSet(db *database.Client, byuID string) *CandidateSet {
	return &CandidateSet{db: db.DB, byuID: byuID}
}

// View is an ordered snapshot of the set. Indices shown to the user are
// positions within a View; any mutation invalidates every earlier View.
type View struct {
	Events []models.Event
	gen    uint64
}

// Rebuild clears the table and repopulates it from one fetch: normalize,
// conflict-filter, drop suppressed, dedup on the natural key (first
// occurrence wins), insert the rest in fetch order. Returns ErrEmptyResult
// when the source had nothing for this category.
func (s *CandidateSet) Rebuild(raws []campus.RawEvent, category string, sched *campus.WeeklySchedule) error {
	s.gen++
	// Hard delete: the browse table is scratch space, soft-deleted rows
	// would only pile up.
	if err := s.db.Unscoped().Where("byu_id = ?", s.byuID).Delete(&models.Event{}).Error; err != nil {
		return errs.Transport(err)
	}
	if len(raws) == 0 {
		return errs.ErrEmptyResult
	}

	normalized := make([]*Normalized, 0, len(raws))
	for _, raw := range raws {
		ev, err := Normalize(raw, s.byuID, category)
		if err != nil {
			// One bad record must not hide the rest of the category.
			continue
		}
		normalized = append(normalized, ev)
	}

	if sched != nil && sched.Enrolled {
		Filter(sched.Periods, normalized)
	}

	seen := make(map[models.EventKey]bool, len(normalized))
	for _, ev := range normalized {
		if ev.Suppressed {
			continue
		}
		key := ev.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		if err := s.db.Create(&ev.Event).Error; err != nil {
			return errs.Transport(err)
		}
	}
	return nil
}

// List returns the current view, ascending by start instant. The id
// tie-break keeps the sort stable in fetch order.
func (s *CandidateSet) List() (*View, error) {
	var evs []models.Event
	err := s.db.Where("byu_id = ?", s.byuID).
		Order("starts_at asc, id asc").
		Find(&evs).Error
	if err != nil {
		return nil, errs.Transport(err)
	}
	return &View{Events: evs, gen: s.gen}, nil
}

// At returns the event at a position in a previously listed view. Views
// rendered before the latest mutation are rejected outright.
func (s *CandidateSet) At(v *View, index int) (*models.Event, error) {
	if v == nil || v.gen != s.gen {
		return nil, errs.ErrStaleView
	}
	if index < 0 || index >= len(v.Events) {
		return nil, errs.ErrIndexOutOfRange
	}
	return &v.Events[index], nil
}

func (s *CandidateSet) IsEmpty() (bool, error) {
	var n int64
	if err := s.db.Model(&models.Event{}).Where("byu_id = ?", s.byuID).Count(&n).Error; err != nil {
		return false, errs.Transport(err)
	}
	return n == 0, nil
}

// Clear drops this user's session rows; used on category switch and at
// session teardown.
func (s *CandidateSet) Clear() error {
	s.gen++
	if err := s.db.Unscoped().Where("byu_id = ?", s.byuID).Delete(&models.Event{}).Error; err != nil {
		return errs.Transport(err)
	}
	return nil
}

// IsEmptyResult reports the "nothing to show" outcome, which is not a
// failure.
func IsEmptyResult(err error) bool {
	return errors.Is(err, errs.ErrEmptyResult)
}
