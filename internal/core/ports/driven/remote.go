package driven

import (
	"context"

	"github.com/archeteam/workspaced/internal/core/domain"
)

// MailGateway is the remote mail-sending surface.
type MailGateway interface {
	// Send delivers one message. Exactly one remote call.
	Send(ctx context.Context, msg domain.OutgoingMail) error
}

// CalendarGateway is the remote calendar surface.
// Listing methods follow the cursor contract: an empty next token means
// the listing is exhausted.
type CalendarGateway interface {
	InsertEvent(ctx context.Context, calendarID string, ev domain.EventDetails) error
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
	InsertCalendar(ctx context.Context, cal domain.CalendarDetails) error
	DeleteCalendar(ctx context.Context, calendarID string) error

	ListCalendars(ctx context.Context, pageToken string) ([]domain.ResourceRef, string, error)
	ListEvents(ctx context.Context, calendarID, pageToken string) ([]domain.ResourceRef, string, error)
}

// DriveGateway is the remote file-storage surface.
type DriveGateway interface {
	CreateFile(ctx context.Context, file domain.FileUpload, parentID string) error
	CreateFolder(ctx context.Context, name, parentID string) error
	Delete(ctx context.Context, id string) error
	Share(ctx context.Context, id string, grant domain.PermissionGrant) error

	// ListFiles lists non-trashed items, optionally scoped to a parent
	// and optionally restricted to folders.
	ListFiles(ctx context.Context, parentID, pageToken string, foldersOnly bool) ([]domain.ResourceRef, string, error)
}

// RemoteServices builds per-capability gateways bound to a validated
// credential. Gateways are cheap and built per operation; the credential
// is never cached inside them.
type RemoteServices interface {
	Mail(ctx context.Context, cred *domain.Credential) (MailGateway, error)
	Calendar(ctx context.Context, cred *domain.Credential) (CalendarGateway, error)
	Drive(ctx context.Context, cred *domain.Credential) (DriveGateway, error)
}
