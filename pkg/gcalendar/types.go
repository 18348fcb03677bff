package gcalendar

import "time"

// Event is a simplified representation of a Google Calendar event.
// For all-day events EndTime is the exclusive end date.
type Event struct {
	ID           string
	Summary      string
	Description  string
	HtmlLink     string
	Location     string
	Organizer    string
	CalendarName string
	StartTime    time.Time
	EndTime      time.Time
	AllDay       bool
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
	Location   *time.Location // for all-day dates; nil means UTC
}
