package gcalendar

import "time"

// Config selects credentials and the target calendar.
type Config struct {
	CredentialsPath string
	// TokenPath is only read for OAuth desktop credentials. Defaults to token.json.
	TokenPath  string
	CalendarID string
	Timezone   string
}

// StudyEvent is one planned block pushed to the calendar.
type StudyEvent struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	// ReminderMinutes adds a popup reminder when positive.
	ReminderMinutes int64
}

// SyncResult reports what InsertEvents managed to create.
type SyncResult struct {
	Created  int
	EventIDs []string
	Links    []string
}
