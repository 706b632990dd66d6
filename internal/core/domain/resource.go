package domain

import "context"

// ResourceKind identifies the type of remote resource being resolved.
type ResourceKind string

const (
	// KindCalendar is a Google Calendar calendar.
	KindCalendar ResourceKind = "calendar"
	// KindEvent is a calendar event.
	KindEvent ResourceKind = "event"
	// KindFile is a Drive file.
	KindFile ResourceKind = "file"
	// KindFolder is a Drive folder.
	KindFolder ResourceKind = "folder"
)

// ResourceRef is a (name, identifier) pair returned by a remote listing.
// Names are not unique at the remote service; identifiers are.
type ResourceRef struct {
	ID   string
	Name string
}

// ListPage fetches one page of a remote listing. An empty pageToken
// requests the first page; an empty next token means the listing is
// exhausted. Callers bake any parent scoping into the closure.
type ListPage func(ctx context.Context, pageToken string) (items []ResourceRef, next string, err error)
