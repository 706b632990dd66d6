package services

import (
	"context"
	"fmt"

	"github.com/archeteam/workspaced/internal/core/domain"
	"github.com/archeteam/workspaced/internal/core/ports/driven"
	"github.com/archeteam/workspaced/internal/core/ports/driving"
	"github.com/archeteam/workspaced/internal/logger"
)

// Ensure MailService implements the interface.
var _ driving.MailOps = (*MailService)(nil)

// MailService is the authenticated access layer for mail operations.
type MailService struct {
	auth   *Authenticator
	remote driven.RemoteServices
}

// NewMailService creates the mail access layer.
func NewMailService(auth *Authenticator, remote driven.RemoteServices) *MailService {
	return &MailService{auth: auth, remote: remote}
}

// SendMail authenticates, then issues exactly one send call. An
// authentication failure short-circuits; no remote call is attempted.
func (s *MailService) SendMail(ctx context.Context, msg domain.OutgoingMail) error {
	cred, err := s.auth.EnsureValid(ctx, domain.MailScopes())
	if err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}

	gw, err := s.remote.Mail(ctx, cred)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRemote, err)
	}

	logger.Info("sending mail to %s", msg.Recipient)
	if err := gw.Send(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
