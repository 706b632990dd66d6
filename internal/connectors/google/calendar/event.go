package calendar

import (
	"github.com/google/uuid"
	"google.golang.org/api/calendar/v3"

	"github.com/archeteam/workspaced/internal/core/domain"
)

// reminderMinutes is the email reminder lead time set on every event.
const reminderMinutes = 30

// BuildEvent converts event details to the Calendar API representation.
// Online events carry a conference create request so the provider
// attaches a meeting link during the same insert call; any other
// location is set verbatim.
func BuildEvent(ev domain.EventDetails) *calendar.Event {
	attendees := make([]*calendar.EventAttendee, 0, len(ev.Attendees))
	for _, email := range ev.Attendees {
		attendees = append(attendees, &calendar.EventAttendee{Email: email})
	}

	event := &calendar.Event{
		Summary: ev.Summary,
		Start: &calendar.EventDateTime{
			DateTime: ev.Start,
			TimeZone: ev.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: ev.End,
			TimeZone: ev.Timezone,
		},
		Attendees: attendees,
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: reminderMinutes},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	if ev.IsOnline() {
		event.ConferenceData = &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: uuid.NewString(),
			},
		}
	} else {
		event.Location = ev.Location
	}

	return event
}
