package usecase

import "time"

// CalendarEventInput is the vendor-agnostic shape of a calendar event.
type CalendarEventInput struct {
	Title       string
	Description string
	StartsAt    time.Time
	EndsAt      time.Time
	Attendees   []string
}

// CalendarGateway wraps the third-party calendar API. CreateEvent returns the
// vendor's event id, which is stored on the meeting for later sync.
type CalendarGateway interface {
	CreateEvent(input *CalendarEventInput) (string, error)
	UpdateEvent(eventId string, input *CalendarEventInput) error
	DeleteEvent(eventId string) error
}
