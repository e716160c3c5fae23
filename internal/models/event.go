package models

import (
	"time"

	"gorm.io/gorm"
)

// Event represents one campus calendar event in the session browse table.
type Event struct {
	gorm.Model

	Name        string `json:"name" gorm:"index"`
	StartTime   string `json:"start_time"` // Display form: "2022-03-25 6:00 pm"
	Price       string `json:"price"`      // "Free!" or the raw high price
	Description string `json:"description"`
	URL         string `json:"url"`
	Location    string `json:"location"`
	DayOfWeek   string `json:"day_of_week" gorm:"size:2"` // M,T,W,Th,F,Sa,Su
	ByuID       string `json:"byu_id" gorm:"index"`
	Category    string `json:"category"`

	// Parsed start instant. Ordering only, never rendered.
	StartsAt time.Time `json:"-" gorm:"index"`
}

func (Event) TableName() string {
	return "event_table"
}

// EventKey is the natural key: no two rows in one table may share it.
type EventKey struct {
	Name      string
	ByuID     string
	StartTime string
}

func (e Event) Key() EventKey {
	return EventKey{Name: e.Name, ByuID: e.ByuID, StartTime: e.StartTime}
}

// MyEvent is a curated copy of an Event plus the moment it was added.
type MyEvent struct {
	gorm.Model

	Name        string `json:"name" gorm:"index"`
	StartTime   string `json:"start_time"`
	Price       string `json:"price"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Location    string `json:"location"`
	DayOfWeek   string `json:"day_of_week" gorm:"size:2"`
	ByuID       string `json:"byu_id" gorm:"index"`
	Category    string `json:"category"`

	DateAdded string `json:"date_added"` // Display form: "2022-3-25 at 4:05 pm"

	StartsAt time.Time `json:"-" gorm:"index"`
	AddedAt  time.Time `json:"-" gorm:"index"`
}

func (MyEvent) TableName() string {
	return "my_events"
}

func (e MyEvent) Key() EventKey {
	return EventKey{Name: e.Name, ByuID: e.ByuID, StartTime: e.StartTime}
}
