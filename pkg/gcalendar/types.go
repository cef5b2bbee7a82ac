package gcalendar

import "time"

const (
	DefaultCalendarID = "primary"

	// sourceKey tags events created by this client so they can be found again.
	sourceKey = "leaveSourceId"
)

// Reminder is a leave-time event for one tracker task.
type Reminder struct {
	CalendarID  string
	SourceID    string // tracker task id; reminders are upserted per SourceID
	Summary     string
	Description string
	Location    string
	LeaveAt     time.Time
	Duration    time.Duration // defaults to 15 minutes
	Timezone    string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Start    time.Time
	End      time.Time
	Updated  bool // true when an existing reminder was replaced
}
