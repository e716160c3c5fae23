package shell

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/events"
)

// descriptionWidth matches the 100-column wrap the detail view has always
// used.
const descriptionWidth = 100

// RenderCandidates prints the browse table: index, name, start time, price,
// location.
func (s *Shell) RenderCandidates(v *events.View) {
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Index\tName\tStart Time\tPrice\tLocation")
	for i, ev := range v.Events {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i, ev.Name, ev.StartTime, ev.Price, ev.Location)
	}
	w.Flush()
}

// RenderCurated prints My Events with the two extra columns.
func (s *Shell) RenderCurated(v *events.CuratedView) {
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Index\tName\tStart Time\tPrice\tLocation\tCategory\tDate Added to My Events")
	for i, ev := range v.Events {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i, ev.Name, ev.StartTime, ev.Price, ev.Location, ev.Category, ev.DateAdded)
	}
	w.Flush()
}

// RenderDetail prints the additional-info view for one event.
func (s *Shell) RenderDetail(name, dayOfWeek, startTime, description, url string) {
	s.Println("\nAdditional Info\n")
	s.Printf("Name: %s\n\n", name)
	s.Printf("Day of Week: %s\n\n", dayOfWeek)
	s.Printf("Start Time: %s\n\n", startTime)
	s.Printf("Description: %s\n\n", wrap(description, descriptionWidth))
	s.Printf("URL For All Information: %s\n\n", url)
}

// wrap breaks text on word boundaries at the given width.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > width {
				b.WriteString("\n")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}
