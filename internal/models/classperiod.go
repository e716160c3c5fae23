package models

// ClassPeriod is one meeting pattern from the student's weekly schedule.
// Start and End are comparable "HH:MM" keys (24h, zero-padded); Days is a
// run of weekday codes, e.g. "MWF" or "TTh". Built once per session from the
// schedule API and never persisted.
type ClassPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  string `json:"days"`
}
