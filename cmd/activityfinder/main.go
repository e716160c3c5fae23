package main

import (
	"errors"
	"log"

	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/campus"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/clock"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/config"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/creds"
	database "github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/db"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/errs"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/session"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/shell"
)

// The program always exits 0: a fatal dependency failure prints its cause
// and ends the run, it is not a crash.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()
	sh := shell.New()
	clk := clock.RealClock{}

	sh.Banner()

	username, password, err := creds.Fetch(cfg)
	if err != nil {
		sh.Printf("\nIt looks like you're not logged into AWS. Please log into AWS and try again.\n")
		return
	}

	sh.Println("Checking that your VPN is on -- please wait")
	db, err := database.New(cfg, username, password)
	if err == nil {
		err = db.Ping()
	}
	if err != nil {
		sh.Println("\nUnable to create a connection to database; please turn on your VPN before using this program.")
		return
	}
	sh.Println("VPN status confirmed.")

	if err := db.AutoMigrate(); err != nil {
		sh.Println("\nYour VPN is no longer on. Please turn it back on and try again.")
		return
	}

	apiKey := sh.AskSecret("What is your API Key?")
	byuID := sh.AskLine("What is your BYU ID?")
	// Every BYU ID is nine digits long.
	for len(byuID) != 9 {
		sh.Println("\nThat is not a correct BYU ID. Please try again.")
		byuID = sh.AskLine("What is your BYU ID?")
	}

	client := campus.New(cfg, clk)
	identity, err := client.LookupPerson(apiKey, byuID)
	if err != nil {
		reportFatal(sh, err)
		return
	}
	// Confirm the schedule subscription up front so the failure surfaces at
	// login, not mid-browse.
	if _, err := client.FetchSchedule(apiKey, identity.PersonID); err != nil {
		reportFatal(sh, err)
		return
	}

	sh.Printf("\nHello, %s\n", identity.PreferredName)
	sh.Welcome()

	orch := session.New(client, db, sh, clk, identity, apiKey)
	if err := orch.Run(); err != nil {
		reportFatal(sh, err)
		return
	}

	sh.Farewell()
}

func reportFatal(sh *shell.Shell, err error) {
	if errors.Is(err, errs.ErrTransportUnavailable) {
		sh.Println("\nYour VPN is no longer on. Please turn it back on and try again.")
		return
	}
	sh.Printf("\n%s\n", capitalize(errs.Cause(err)))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
