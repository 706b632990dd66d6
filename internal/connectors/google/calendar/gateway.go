package calendar

import (
	"context"

	"google.golang.org/api/calendar/v3"

	"github.com/archeteam/workspaced/internal/connectors/google"
	"github.com/archeteam/workspaced/internal/core/domain"
	"github.com/archeteam/workspaced/internal/core/ports/driven"
)

// sendUpdatesAll notifies all attendees of event changes, matching the
// behaviour callers of this service have always seen.
const sendUpdatesAll = "all"

// conferenceDataVersion enables conference creation on insert.
const conferenceDataVersion = 1

// Ensure Gateway implements the interface.
var _ driven.CalendarGateway = (*Gateway)(nil)

// Gateway performs calendar operations through the Calendar API.
type Gateway struct {
	svc     *calendar.Service
	limiter *google.RateLimiter
}

// NewGateway creates a Calendar gateway over an authenticated service.
func NewGateway(svc *calendar.Service, limiter *google.RateLimiter) *Gateway {
	return &Gateway{svc: svc, limiter: limiter}
}

// InsertEvent creates an event via events.insert. Conference creation
// for online events happens in this same call, not a second round trip.
func (g *Gateway) InsertEvent(ctx context.Context, calendarID string, ev domain.EventDetails) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}

	_, err := g.svc.Events.Insert(calendarID, BuildEvent(ev)).
		SendUpdates(sendUpdatesAll).
		ConferenceDataVersion(conferenceDataVersion).
		Context(ctx).Do()
	if err != nil {
		return google.WrapError(err)
	}
	return nil
}

// DeleteEvent removes an event via events.delete, notifying attendees.
func (g *Gateway) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}

	err := g.svc.Events.Delete(calendarID, eventID).
		SendUpdates(sendUpdatesAll).
		Context(ctx).Do()
	if err != nil {
		return google.WrapError(err)
	}
	return nil
}

// InsertCalendar creates a calendar via calendars.insert.
func (g *Gateway) InsertCalendar(ctx context.Context, cal domain.CalendarDetails) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}

	_, err := g.svc.Calendars.Insert(&calendar.Calendar{
		Summary:  cal.Summary,
		TimeZone: cal.Timezone,
	}).Context(ctx).Do()
	if err != nil {
		return google.WrapError(err)
	}
	return nil
}

// DeleteCalendar removes a calendar via calendars.delete.
func (g *Gateway) DeleteCalendar(ctx context.Context, calendarID string) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}

	if err := g.svc.Calendars.Delete(calendarID).Context(ctx).Do(); err != nil {
		return google.WrapError(err)
	}
	return nil
}

// ListCalendars fetches one page of the user's calendar list.
func (g *Gateway) ListCalendars(ctx context.Context, pageToken string) ([]domain.ResourceRef, string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, "", err
	}

	req := g.svc.CalendarList.List()
	if pageToken != "" {
		req = req.PageToken(pageToken)
	}

	list, err := req.Context(ctx).Do()
	if err != nil {
		return nil, "", google.WrapError(err)
	}

	refs := make([]domain.ResourceRef, 0, len(list.Items))
	for _, item := range list.Items {
		refs = append(refs, domain.ResourceRef{ID: item.Id, Name: item.Summary})
	}
	return refs, list.NextPageToken, nil
}

// ListEvents fetches one page of a calendar's events.
func (g *Gateway) ListEvents(ctx context.Context, calendarID, pageToken string) ([]domain.ResourceRef, string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, "", err
	}

	req := g.svc.Events.List(calendarID)
	if pageToken != "" {
		req = req.PageToken(pageToken)
	}

	events, err := req.Context(ctx).Do()
	if err != nil {
		return nil, "", google.WrapError(err)
	}

	refs := make([]domain.ResourceRef, 0, len(events.Items))
	for _, item := range events.Items {
		refs = append(refs, domain.ResourceRef{ID: item.Id, Name: item.Summary})
	}
	return refs, events.NextPageToken, nil
}
