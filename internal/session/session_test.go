package session

import (
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/campus"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/clock"
	database "github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/db"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/events"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/models"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/shell"
)

const testByuID = "123456789"

func setupSessionDB(t *testing.T) *database.Client {
	t.Helper()
	d, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := d.AutoMigrate(&models.Event{}, &models.MyEvent{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return &database.Client{DB: d}
}

// scriptedRun drives a whole session from canned input and returns the
// transcript. The nil campus client is safe for flows that never fetch.
func scriptedRun(t *testing.T, db *database.Client, input string) string {
	t.Helper()
	var out strings.Builder
	sh := shell.NewWithIO(strings.NewReader(input), &out)
	clk := clock.MockClock{MockTime: time.Date(2022, time.March, 25, 16, 5, 0, 0, time.UTC)}
	orch := New(nil, db, sh, clk, &campus.Identity{ByuID: testByuID, PersonID: "p1"}, "key")
	if err := orch.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return out.String()
}

func seedMyEvent(t *testing.T, db *database.Client, name string) {
	t.Helper()
	set := events.NewCuratedSet(db, testByuID, clock.MockClock{MockTime: time.Date(2022, time.March, 25, 10, 0, 0, 0, time.UTC)})
	err := set.Add(models.Event{
		Name:      name,
		StartTime: "2022-03-26 7:00 pm",
		Price:     "Free!",
		Location:  "WSC",
		DayOfWeek: "Sa",
		ByuID:     testByuID,
		Category:  "Student Life",
		StartsAt:  time.Date(2022, 3, 26, 19, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("seed add: %v", err)
	}
}

func TestRun_MyEventsEmpty(t *testing.T) {
	db := setupSessionDB(t)

	// View My Events, then QUIT.
	out := scriptedRun(t, db, "2\n3\n")

	if !strings.Contains(out, "There are no events in My Events. Go to Browse Events to add some.") {
		t.Errorf("empty My Events message missing from transcript:\n%s", out)
	}
}

func TestRun_MyEventsRenderAndBack(t *testing.T) {
	db := setupSessionDB(t)
	seedMyEvent(t, db, "Football Game")

	// View My Events, BACK, QUIT.
	out := scriptedRun(t, db, "2\n4\n3\n")

	if !strings.Contains(out, "MY EVENTS") {
		t.Errorf("My Events header missing:\n%s", out)
	}
	if !strings.Contains(out, "Football Game") {
		t.Errorf("curated event missing from table:\n%s", out)
	}
}

func TestRun_DeleteEvent(t *testing.T) {
	db := setupSessionDB(t)
	seedMyEvent(t, db, "Football Game")

	// View My Events, Delete an Event, index 0; the set empties, the cycle
	// reports it and falls back to the main menu; QUIT.
	out := scriptedRun(t, db, "2\n2\n0\n3\n")

	if !strings.Contains(out, "Event successfully taken off My Events.") {
		t.Errorf("delete confirmation missing:\n%s", out)
	}

	var n int64
	db.DB.Model(&models.MyEvent{}).Where("byu_id = ?", testByuID).Count(&n)
	if n != 0 {
		t.Errorf("expected empty my_events after delete, found %d rows", n)
	}
}

func TestRun_DeleteInvalidIndex(t *testing.T) {
	db := setupSessionDB(t)
	seedMyEvent(t, db, "Football Game")

	// Delete with an out-of-range index, then BACK, QUIT.
	out := scriptedRun(t, db, "2\n2\n5\n4\n3\n")

	if !strings.Contains(out, "That index number is not valid. Please try again.") {
		t.Errorf("invalid index message missing:\n%s", out)
	}

	var n int64
	db.DB.Model(&models.MyEvent{}).Where("byu_id = ?", testByuID).Count(&n)
	if n != 1 {
		t.Errorf("out-of-range delete changed the table: %d rows", n)
	}
}

func TestRun_DeleteAll(t *testing.T) {
	db := setupSessionDB(t)
	seedMyEvent(t, db, "Football Game")
	seedMyEvent(t, db, "Game Night")

	// Delete All Events returns straight to the main menu; QUIT.
	out := scriptedRun(t, db, "2\n3\n3\n")

	if !strings.Contains(out, "My Events cleared.") {
		t.Errorf("clear confirmation missing:\n%s", out)
	}

	var n int64
	db.DB.Model(&models.MyEvent{}).Where("byu_id = ?", testByuID).Count(&n)
	if n != 0 {
		t.Errorf("expected empty my_events after clear, found %d rows", n)
	}
}

func TestRun_BrowseBackAvoidsFetch(t *testing.T) {
	db := setupSessionDB(t)

	// Browse Events, BACK from the category menu (option 9), QUIT. The nil
	// campus client proves no fetch happens on this path.
	out := scriptedRun(t, db, "1\n9\n3\n")

	if !strings.Contains(out, "What type of event are you looking for?") {
		t.Errorf("category menu missing:\n%s", out)
	}
}
