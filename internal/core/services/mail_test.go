package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archeteam/workspaced/internal/core/domain"
)

func TestMailService_SendMail(t *testing.T) {
	store := &fakeCredStore{cred: validCredential()}
	remote := newFakeRemote()
	svc := NewMailService(NewAuthenticator(store, &fakeFlow{}, nil), remote)

	msg := domain.OutgoingMail{
		Recipient: "someone@example.com",
		Sender:    "me@example.com",
		Subject:   "hello",
		Body:      "hi there",
	}
	err := svc.SendMail(context.Background(), msg)

	require.NoError(t, err)
	require.Len(t, remote.mail.sent, 1)
	assert.Equal(t, "someone@example.com", remote.mail.sent[0].Recipient)
}

func TestMailService_SendMail_AuthFailureShortCircuits(t *testing.T) {
	store := &fakeCredStore{}
	flow := &fakeFlow{issueErr: domain.ErrInteractionRequired}
	remote := newFakeRemote()
	svc := NewMailService(NewAuthenticator(store, flow, nil), remote)

	err := svc.SendMail(context.Background(), domain.OutgoingMail{Recipient: "a@b.c"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInteractionRequired)
	assert.Equal(t, 0, remote.builtCount(), "no remote gateway may be built after auth failure")
	assert.Empty(t, remote.mail.sent)
}

func TestMailService_SendMail_SendFailureWrapped(t *testing.T) {
	store := &fakeCredStore{cred: validCredential()}
	remote := newFakeRemote()
	remote.mail.sendErr = domain.ErrNotAuthorized
	svc := NewMailService(NewAuthenticator(store, &fakeFlow{}, nil), remote)

	err := svc.SendMail(context.Background(), domain.OutgoingMail{Recipient: "a@b.c"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}
