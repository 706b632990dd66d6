package services

import (
	"context"
	"fmt"

	"github.com/archeteam/workspaced/internal/core/domain"
	"github.com/archeteam/workspaced/internal/core/ports/driven"
	"github.com/archeteam/workspaced/internal/core/ports/driving"
	"github.com/archeteam/workspaced/internal/logger"
)

// Ensure CalendarService implements the interface.
var _ driving.CalendarOps = (*CalendarService)(nil)

// CalendarService is the authenticated access layer for calendar
// operations. Every operation authenticates first, resolves names to
// identifiers where the remote primitive needs one, then issues exactly
// one mutating call. Failures at any stage short-circuit; nothing is
// retried internally.
type CalendarService struct {
	auth     *Authenticator
	resolver *Resolver
	remote   driven.RemoteServices
}

// NewCalendarService creates the calendar access layer.
func NewCalendarService(auth *Authenticator, resolver *Resolver, remote driven.RemoteServices) *CalendarService {
	return &CalendarService{auth: auth, resolver: resolver, remote: remote}
}

// gateway authenticates and builds a calendar gateway for one operation.
func (s *CalendarService) gateway(ctx context.Context) (driven.CalendarGateway, error) {
	cred, err := s.auth.EnsureValid(ctx, domain.CalendarScopes())
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	gw, err := s.remote.Calendar(ctx, cred)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemote, err)
	}
	return gw, nil
}

// CreateEvent creates an event on the given calendar. An empty
// calendarID targets the primary calendar. The online variant requests
// provider-side conference creation as part of the same insert.
func (s *CalendarService) CreateEvent(ctx context.Context, calendarID string, ev domain.EventDetails) error {
	gw, err := s.gateway(ctx)
	if err != nil {
		return err
	}

	if calendarID == "" {
		calendarID = domain.DefaultCalendarID
	}

	logger.Info("creating event %q on calendar %s", ev.Summary, calendarID)
	if err := gw.InsertEvent(ctx, calendarID, ev); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// DeleteEvent removes the first event on the calendar whose summary
// matches, in listing order.
func (s *CalendarService) DeleteEvent(ctx context.Context, calendarID, summary string) error {
	gw, err := s.gateway(ctx)
	if err != nil {
		return err
	}

	if calendarID == "" {
		calendarID = domain.DefaultCalendarID
	}

	eventID, err := s.resolver.Resolve(ctx, domain.KindEvent, summary, func(ctx context.Context, pageToken string) ([]domain.ResourceRef, string, error) {
		return gw.ListEvents(ctx, calendarID, pageToken)
	})
	if err != nil {
		return err
	}

	logger.Info("deleting event %q (%s) from calendar %s", summary, eventID, calendarID)
	if err := gw.DeleteEvent(ctx, calendarID, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// CreateCalendar creates a new calendar.
func (s *CalendarService) CreateCalendar(ctx context.Context, cal domain.CalendarDetails) error {
	gw, err := s.gateway(ctx)
	if err != nil {
		return err
	}

	logger.Info("creating calendar %q (%s)", cal.Summary, cal.Timezone)
	if err := gw.InsertCalendar(ctx, cal); err != nil {
		return fmt.Errorf("create calendar: %w", err)
	}
	return nil
}

// DeleteCalendar removes the first calendar whose summary matches.
func (s *CalendarService) DeleteCalendar(ctx context.Context, summary string) error {
	gw, err := s.gateway(ctx)
	if err != nil {
		return err
	}

	calendarID, err := s.resolveCalendar(ctx, gw, summary)
	if err != nil {
		return err
	}

	logger.Info("deleting calendar %q (%s)", summary, calendarID)
	if err := gw.DeleteCalendar(ctx, calendarID); err != nil {
		return fmt.Errorf("delete calendar: %w", err)
	}
	return nil
}

// LookupCalendarID resolves a calendar summary to its identifier.
func (s *CalendarService) LookupCalendarID(ctx context.Context, summary string) (string, error) {
	gw, err := s.gateway(ctx)
	if err != nil {
		return "", err
	}
	return s.resolveCalendar(ctx, gw, summary)
}

func (s *CalendarService) resolveCalendar(ctx context.Context, gw driven.CalendarGateway, summary string) (string, error) {
	return s.resolver.Resolve(ctx, domain.KindCalendar, summary, func(ctx context.Context, pageToken string) ([]domain.ResourceRef, string, error) {
		return gw.ListCalendars(ctx, pageToken)
	})
}
