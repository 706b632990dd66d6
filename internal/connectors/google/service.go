package google

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/archeteam/workspaced/internal/core/domain"
)

// tokenSource builds an oauth2.TokenSource carrying the validated
// credential's bearer token. The source is deliberately static: token
// refresh is the Authenticator's job, never the API client's.
func tokenSource(cred *domain.Credential) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: cred.AccessToken,
		TokenType:   "Bearer",
	})
}

// NewGmailService creates a Gmail API service bound to the credential.
func NewGmailService(ctx context.Context, cred *domain.Credential) (*gmail.Service, error) {
	return gmail.NewService(ctx, option.WithTokenSource(tokenSource(cred)))
}

// NewDriveService creates a Google Drive API service bound to the credential.
func NewDriveService(ctx context.Context, cred *domain.Credential) (*drive.Service, error) {
	return drive.NewService(ctx, option.WithTokenSource(tokenSource(cred)))
}

// NewCalendarService creates a Google Calendar API service bound to the credential.
func NewCalendarService(ctx context.Context, cred *domain.Credential) (*calendar.Service, error) {
	return calendar.NewService(ctx, option.WithTokenSource(tokenSource(cred)))
}
