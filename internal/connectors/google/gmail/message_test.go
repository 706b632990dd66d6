package gmail

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archeteam/workspaced/internal/core/domain"
)

func TestBuildRawMessage_PlainText(t *testing.T) {
	msg := domain.OutgoingMail{
		Recipient: "to@example.com",
		Sender:    "from@example.com",
		Subject:   "weekly report",
		Body:      "all green",
	}

	raw, err := BuildRawMessage(msg)
	require.NoError(t, err)

	decoded, err := base64.URLEncoding.DecodeString(raw)
	require.NoError(t, err)
	text := string(decoded)

	assert.Contains(t, text, "From: from@example.com")
	assert.Contains(t, text, "To: to@example.com")
	assert.Contains(t, text, "Subject: weekly report")
	assert.Contains(t, text, "Content-Type: text/plain")
	assert.Contains(t, text, "all green")
	assert.NotContains(t, text, "multipart/mixed")
}

func TestBuildRawMessage_WithAttachment(t *testing.T) {
	payload := []byte("%PDF-1.4 fake content")
	msg := domain.OutgoingMail{
		Recipient:      "to@example.com",
		Sender:         "from@example.com",
		Subject:        "invoice",
		Body:           "attached",
		Attachment:     payload,
		AttachmentName: "invoice.pdf",
	}

	raw, err := BuildRawMessage(msg)
	require.NoError(t, err)

	decoded, err := base64.URLEncoding.DecodeString(raw)
	require.NoError(t, err)
	text := string(decoded)

	assert.Contains(t, text, "multipart/mixed")
	assert.Contains(t, text, "Content-Transfer-Encoding: base64")
	assert.Contains(t, text, `filename="invoice.pdf"`)
	assert.Contains(t, text, "application/pdf")
	assert.Contains(t, text, base64.StdEncoding.EncodeToString(payload))
	// Body still present as its own part.
	assert.Contains(t, text, "attached")
}

func TestAttachmentMIMEType(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"pdf", "report.pdf", "application/pdf"},
		{"unknown extension", "data.xyz123", fallbackMIMEType},
		{"no extension", "README", fallbackMIMEType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := attachmentMIMEType(tt.filename)
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("attachmentMIMEType(%q) = %q, want prefix %q", tt.filename, got, tt.want)
			}
		})
	}
}
