package driving

import (
	"context"

	"github.com/archeteam/workspaced/internal/core/domain"
)

// MailOps exposes mail operations to driving adapters.
type MailOps interface {
	// SendMail authenticates and sends one message.
	SendMail(ctx context.Context, msg domain.OutgoingMail) error
}

// CalendarOps exposes calendar operations to driving adapters.
// Operations addressed by summary resolve the name to a remote identifier
// before the single mutating call.
type CalendarOps interface {
	// CreateEvent creates an event on the named calendar (ID, not name;
	// empty means the primary calendar).
	CreateEvent(ctx context.Context, calendarID string, ev domain.EventDetails) error

	// DeleteEvent removes the first event whose summary matches, in
	// listing order.
	DeleteEvent(ctx context.Context, calendarID, summary string) error

	// CreateCalendar creates a new calendar.
	CreateCalendar(ctx context.Context, cal domain.CalendarDetails) error

	// DeleteCalendar removes the first calendar whose summary matches.
	DeleteCalendar(ctx context.Context, summary string) error

	// LookupCalendarID resolves a calendar summary to its identifier.
	LookupCalendarID(ctx context.Context, summary string) (string, error)
}

// StorageOps exposes drive operations to driving adapters.
// parentName, when non-empty, scopes the operation to the first folder
// with that name; resolution failure aborts the operation.
type StorageOps interface {
	CreateFile(ctx context.Context, file domain.FileUpload, parentName string) error
	DeleteFile(ctx context.Context, name, parentName string) error
	CreateFolder(ctx context.Context, name, parentName string) error
	DeleteFolder(ctx context.Context, name, parentName string) error
	ShareFolder(ctx context.Context, name, parentName string, grant domain.PermissionGrant) error
}
