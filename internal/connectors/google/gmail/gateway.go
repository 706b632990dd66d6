package gmail

import (
	"context"
	"fmt"

	"google.golang.org/api/gmail/v1"

	"github.com/archeteam/workspaced/internal/connectors/google"
	"github.com/archeteam/workspaced/internal/core/domain"
	"github.com/archeteam/workspaced/internal/core/ports/driven"
)

// authenticatedUser addresses the account the credential belongs to.
const authenticatedUser = "me"

// Ensure Gateway implements the interface.
var _ driven.MailGateway = (*Gateway)(nil)

// Gateway sends mail through the Gmail API.
type Gateway struct {
	svc     *gmail.Service
	limiter *google.RateLimiter
}

// NewGateway creates a Gmail gateway over an authenticated service.
func NewGateway(svc *gmail.Service, limiter *google.RateLimiter) *Gateway {
	return &Gateway{svc: svc, limiter: limiter}
}

// Send delivers one message via users.messages.send.
func (g *Gateway) Send(ctx context.Context, msg domain.OutgoingMail) error {
	raw, err := BuildRawMessage(msg)
	if err != nil {
		return fmt.Errorf("build message: %w", err)
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}

	_, err = g.svc.Users.Messages.Send(authenticatedUser, &gmail.Message{Raw: raw}).
		Context(ctx).Do()
	if err != nil {
		return google.WrapError(err)
	}
	return nil
}
