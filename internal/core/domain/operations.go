package domain

// Defaults carried over from the service's original request contract.
const (
	// DefaultCalendarID is used when a request names no calendar.
	DefaultCalendarID = "primary"
	// LocationOnline marks an event as an online meeting; the event is
	// created with a provider-side conference instead of a location.
	LocationOnline = "online"
	// DefaultShareRole is the permission role granted when none is given.
	DefaultShareRole = "reader"
)

// OutgoingMail describes a mail message to send.
type OutgoingMail struct {
	Recipient string
	Sender    string
	Subject   string
	Body      string
	// Attachment is the raw attachment bytes; nil means no attachment.
	Attachment []byte
	// AttachmentName is the filename the attachment is sent under.
	AttachmentName string
}

// EventDetails describes a calendar event to create.
type EventDetails struct {
	Summary   string
	Attendees []string
	// Start and End are RFC 3339 local datetimes (no offset), interpreted
	// in Timezone by the remote service.
	Start    string
	End      string
	Timezone string
	// Location is a venue, or LocationOnline for a conference event.
	Location string
}

// IsOnline reports whether the event should carry a provider conference.
func (e *EventDetails) IsOnline() bool {
	return e.Location == "" || e.Location == LocationOnline
}

// CalendarDetails describes a calendar to create.
type CalendarDetails struct {
	Summary  string
	Timezone string
}

// FileUpload describes a file to create on the storage service.
type FileUpload struct {
	Name     string
	Content  []byte
	MIMEType string
}

// PermissionGrant describes a sharing grant on a storage resource.
type PermissionGrant struct {
	Email  string
	Role   string
	Notify bool
}
