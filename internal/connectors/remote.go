// Package connectors wires provider-specific gateways into the core's
// remote service ports.
package connectors

import (
	"context"
	"fmt"

	"github.com/archeteam/workspaced/internal/connectors/google"
	"github.com/archeteam/workspaced/internal/connectors/google/calendar"
	"github.com/archeteam/workspaced/internal/connectors/google/drive"
	"github.com/archeteam/workspaced/internal/connectors/google/gmail"
	"github.com/archeteam/workspaced/internal/core/domain"
	"github.com/archeteam/workspaced/internal/core/ports/driven"
)

// Ensure GoogleRemote implements the interface.
var _ driven.RemoteServices = (*GoogleRemote)(nil)

// GoogleRemote builds per-capability Google API gateways. Rate limiters
// are shared across operations so concurrent requests stay inside quota.
type GoogleRemote struct {
	gmailLimiter    *google.RateLimiter
	driveLimiter    *google.RateLimiter
	calendarLimiter *google.RateLimiter
}

// NewGoogleRemote creates the Google remote service factory.
func NewGoogleRemote() *GoogleRemote {
	return &GoogleRemote{
		gmailLimiter:    google.NewRateLimiter(google.ServiceGmail),
		driveLimiter:    google.NewRateLimiter(google.ServiceDrive),
		calendarLimiter: google.NewRateLimiter(google.ServiceCalendar),
	}
}

// Mail builds a Gmail gateway bound to the credential.
func (r *GoogleRemote) Mail(ctx context.Context, cred *domain.Credential) (driven.MailGateway, error) {
	svc, err := google.NewGmailService(ctx, cred)
	if err != nil {
		return nil, fmt.Errorf("create gmail service: %w", err)
	}
	return gmail.NewGateway(svc, r.gmailLimiter), nil
}

// Calendar builds a Calendar gateway bound to the credential.
func (r *GoogleRemote) Calendar(ctx context.Context, cred *domain.Credential) (driven.CalendarGateway, error) {
	svc, err := google.NewCalendarService(ctx, cred)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return calendar.NewGateway(svc, r.calendarLimiter), nil
}

// Drive builds a Drive gateway bound to the credential.
func (r *GoogleRemote) Drive(ctx context.Context, cred *domain.Credential) (driven.DriveGateway, error) {
	svc, err := google.NewDriveService(ctx, cred)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	return drive.NewGateway(svc, r.driveLimiter), nil
}
