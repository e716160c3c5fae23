// Package session drives one interactive run: the main menu, the browse
// cycle, and the My Events cycle. It is the single place that decides whether
// an error ends the session or just re-prompts.
package session

import (
	"errors"
	"log"
	"strings"

	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/campus"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/clock"
	database "github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/db"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/errs"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/events"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/shell"
)

// State names one phase of a browse or My Events cycle.
type State int

const (
	AwaitingCategory State = iota
	Fetching
	Filtering
	Rendering
	AwaitingIndexOrBack
	DetailView
	Deleting
)

type Orchestrator struct {
	campus    *campus.Client
	candidate *events.CandidateSet
	curated   *events.CuratedSet
	shell     *shell.Shell

	identity *campus.Identity
	apiKey   string

	state State
}

func New(client *campus.Client, db *database.Client, sh *shell.Shell, clk clock.Clock, identity *campus.Identity, apiKey string) *Orchestrator {
	return &Orchestrator{
		campus:    client,
		candidate: events.NewCandidateSet(db, identity.ByuID),
		curated:   events.NewCuratedSet(db, identity.ByuID, clk),
		shell:     sh,
		identity:  identity,
		apiKey:    apiKey,
	}
}

// Run loops the main menu until QUIT or a fatal dependency failure. Either
// way the session table is cleared on the way out and the caller exits 0.
func (o *Orchestrator) Run() error {
	for {
		choice := o.shell.Menu("Please choose an option:", []string{"Browse Events", "View My Events", "QUIT"})

		var err error
		switch choice {
		case "Browse Events":
			err = o.browse()
		case "View My Events":
			err = o.myEvents()
		case "QUIT":
			o.teardown()
			return nil
		}

		if err != nil {
			o.teardown()
			return err
		}
	}
}

func (o *Orchestrator) teardown() {
	if err := o.candidate.Clear(); err != nil {
		log.Printf("could not clear session table at teardown: %v", err)
	}
}

// browse is the category cycle. Only fatal errors escape; everything else
// re-prompts.
func (o *Orchestrator) browse() error {
	for {
		o.state = AwaitingCategory
		category := o.shell.Menu(
			"What type of event are you looking for? Select BACK to go back to the main menu.",
			append(append([]string{}, campus.Categories...), "BACK"),
		)
		if category == "BACK" {
			return nil
		}
		if err := o.browseCategory(category); err != nil {
			if errs.Fatal(err) {
				return err
			}
			o.shell.Println("\nThat input is not recognizable. Please try again.")
		}
	}
}

func (o *Orchestrator) browseCategory(category string) error {
	o.state = Fetching
	o.shell.Println("\nGenerating events for you...please wait")
	raws, err := o.campus.FetchEvents(category)
	if err != nil {
		return err
	}
	sched, err := o.campus.FetchSchedule(o.apiKey, o.identity.PersonID)
	if err != nil {
		return err
	}

	o.state = Filtering
	if err := o.candidate.Rebuild(raws, category, sched); err != nil {
		if errors.Is(err, errs.ErrEmptyResult) {
			o.shell.Println("\nThere are no events in this category for this month. Please try another category.")
			return nil
		}
		return err
	}

	for {
		o.state = Rendering
		view, err := o.candidate.List()
		if err != nil {
			return err
		}
		o.shell.Println("\n" + strings.ToUpper(category))
		o.shell.RenderCandidates(view)
		if last, err := o.curated.LastAddedName(); err == nil && last != "" {
			o.shell.Printf("\nThe last event you added to My Events was %s\n", last)
		}

		o.state = AwaitingIndexOrBack
		index, ok := o.shell.AskIndex("\nTo see more information and/or add, please type the index of an event from the table or press the Enter key to get back.")
		if !ok {
			return nil
		}

		ev, err := o.candidate.At(view, index)
		if err != nil {
			o.shell.Println("\nThat index number is not valid. Please try again.")
			continue
		}

		o.state = DetailView
		o.shell.RenderDetail(ev.Name, ev.DayOfWeek, ev.StartTime, ev.Description, ev.URL)
		if o.shell.Confirm("Would you like to add this event to My Events?") {
			switch err := o.curated.Add(*ev); {
			case errors.Is(err, errs.ErrDuplicateEntry):
				o.shell.Println("\nSorry, that event is already on your table. You cannot add it again.")
			case err != nil:
				return err
			default:
				o.shell.Println("\nEvent successfully added to My Events.")
			}
		}
		// Loop re-renders: indices from the view above are dead after any
		// mutation.
	}
}

// myEvents is the curated cycle: no fetching or filtering, plus deletion.
func (o *Orchestrator) myEvents() error {
	for {
		o.state = Rendering
		empty, err := o.curated.IsEmpty()
		if err != nil {
			return err
		}
		if empty {
			o.shell.Println("\nThere are no events in My Events. Go to Browse Events to add some.")
			return nil
		}
		view, err := o.curated.ListByStart()
		if err != nil {
			return err
		}
		o.shell.Println("\nMY EVENTS")
		o.shell.RenderCurated(view)

		o.state = AwaitingIndexOrBack
		choice := o.shell.Menu("Please choose an option:", []string{
			"See More Information on an Event",
			"Delete an Event",
			"Delete All Events",
			"BACK",
		})

		switch choice {
		case "See More Information on an Event":
			index, ok := o.shell.AskIndex("\nTo see more information, please type the index of an event from the table or press the Enter key to get back.")
			if !ok {
				continue
			}
			ev, err := o.curated.At(view, index)
			if err != nil {
				o.shell.Println("\nThat index number is not valid. Please try again.")
				continue
			}
			o.state = DetailView
			o.shell.RenderDetail(ev.Name, ev.DayOfWeek, ev.StartTime, ev.Description, ev.URL)
			o.shell.WaitForEnter("Once you have finished viewing the information, press Enter to get back.")

		case "Delete an Event":
			o.state = Deleting
			index, ok := o.shell.AskIndex("\nTo delete, please type the index of an event from the table or press the Enter key to get back.")
			if !ok {
				continue
			}
			switch err := o.curated.RemoveAt(view, index); {
			case errors.Is(err, errs.ErrIndexOutOfRange), errors.Is(err, errs.ErrStaleView):
				o.shell.Println("\nThat index number is not valid. Please try again.")
			case err != nil:
				return err
			default:
				o.shell.Println("\nEvent successfully taken off My Events.")
			}

		case "Delete All Events":
			o.state = Deleting
			if err := o.curated.Clear(); err != nil {
				return err
			}
			o.shell.Println("\nMy Events cleared.")
			return nil

		case "BACK":
			return nil
		}
	}
}
