package events

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/clock"
	database "github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/db"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/errs"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/models"
)

// CuratedSet is the persistent My Events table for one user. Unlike the
// browse table it survives across runs and is only ever emptied on request.
type CuratedSet struct {
	db    *gorm.DB
	byuID string
	clk   clock.Clock
	gen   uint64
}

func NewCuratedSet(db *database.Client, byuID string, clk clock.Clock) *CuratedSet {
	return &CuratedSet{db: db.DB, byuID: byuID, clk: clk}
}

// CuratedView is an ordered snapshot of the curated set; same staleness
// contract as View.
type CuratedView struct {
	Events []models.MyEvent
	gen    uint64
}

// Add copies an event into My Events, stamping the moment of curation.
// An entry with the same (name, id, start time) already present is a
// DuplicateEntry; the existing row is never overwritten.
func (s *CuratedSet) Add(ev models.Event) error {
	var before int64
	err := s.db.Model(&models.MyEvent{}).
		Where("byu_id = ?", s.byuID).
		Count(&before).Error
	if err != nil {
		return errs.Transport(err)
	}

	var dups int64
	err = s.db.Model(&models.MyEvent{}).
		Where("name = ? AND byu_id = ? AND start_time = ?", ev.Name, s.byuID, ev.StartTime).
		Count(&dups).Error
	if err != nil {
		return errs.Transport(err)
	}
	if dups > 0 {
		return errs.ErrDuplicateEntry
	}

	now := s.clk.Now()
	my := models.MyEvent{
		Name:        ev.Name,
		StartTime:   ev.StartTime,
		Price:       ev.Price,
		Description: ev.Description,
		URL:         ev.URL,
		Location:    ev.Location,
		DayOfWeek:   ev.DayOfWeek,
		ByuID:       s.byuID,
		Category:    ev.Category,
		DateAdded:   stampDateAdded(now),
		StartsAt:    ev.StartsAt,
		AddedAt:     now,
	}
	if err := s.db.Create(&my).Error; err != nil {
		return errs.Transport(err)
	}
	s.gen++

	var after int64
	err = s.db.Model(&models.MyEvent{}).
		Where("byu_id = ?", s.byuID).
		Count(&after).Error
	if err != nil {
		return errs.Transport(err)
	}
	if after != before+1 {
		return errs.Transport(fmt.Errorf("my_events row count moved from %d to %d on a single add", before, after))
	}
	return nil
}

// ListByStart is the display ordering: ascending by start instant, stable in
// insertion order.
func (s *CuratedSet) ListByStart() (*CuratedView, error) {
	var evs []models.MyEvent
	err := s.db.Where("byu_id = ?", s.byuID).
		Order("starts_at asc, id asc").
		Find(&evs).Error
	if err != nil {
		return nil, errs.Transport(err)
	}
	return &CuratedView{Events: evs, gen: s.gen}, nil
}

// ListRecent orders by the moment of curation, newest first. Used for the
// "last event you added" banner.
func (s *CuratedSet) ListRecent() (*CuratedView, error) {
	var evs []models.MyEvent
	err := s.db.Where("byu_id = ?", s.byuID).
		Order("added_at desc, id desc").
		Find(&evs).Error
	if err != nil {
		return nil, errs.Transport(err)
	}
	return &CuratedView{Events: evs, gen: s.gen}, nil
}

// At returns the entry at a position in a previously listed view.
func (s *CuratedSet) At(v *CuratedView, index int) (*models.MyEvent, error) {
	if v == nil || v.gen != s.gen {
		return nil, errs.ErrStaleView
	}
	if index < 0 || index >= len(v.Events) {
		return nil, errs.ErrIndexOutOfRange
	}
	return &v.Events[index], nil
}

// RemoveAt deletes the entry at a view position by its natural key.
func (s *CuratedSet) RemoveAt(v *CuratedView, index int) error {
	target, err := s.At(v, index)
	if err != nil {
		return err
	}
	res := s.db.Unscoped().
		Where("name = ? AND byu_id = ? AND start_time = ?", target.Name, s.byuID, target.StartTime).
		Delete(&models.MyEvent{})
	if res.Error != nil {
		return errs.Transport(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.ErrIndexOutOfRange
	}
	s.gen++
	return nil
}

// Clear empties My Events for this user. Clearing an empty set succeeds.
func (s *CuratedSet) Clear() error {
	s.gen++
	if err := s.db.Unscoped().Where("byu_id = ?", s.byuID).Delete(&models.MyEvent{}).Error; err != nil {
		return errs.Transport(err)
	}
	return nil
}

func (s *CuratedSet) IsEmpty() (bool, error) {
	var n int64
	if err := s.db.Model(&models.MyEvent{}).Where("byu_id = ?", s.byuID).Count(&n).Error; err != nil {
		return false, errs.Transport(err)
	}
	return n == 0, nil
}

// LastAddedName reports the name of the most recently curated event, or ""
// when the set is empty.
func (s *CuratedSet) LastAddedName() (string, error) {
	recent, err := s.ListRecent()
	if err != nil {
		return "", err
	}
	if len(recent.Events) == 0 {
		return "", nil
	}
	return recent.Events[0].Name, nil
}

// stampDateAdded renders the curation moment as "<date> at <clock time>",
// minute precision, minutes zero-padded.
func stampDateAdded(now time.Time) string {
	return fmt.Sprintf("%s at %s", now.Format("2006-1-2"), now.Format("3:04 pm"))
}
