package gmail

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"
	"path/filepath"

	"github.com/archeteam/workspaced/internal/core/domain"
)

// fallbackMIMEType is used when an attachment's type cannot be inferred
// from its filename extension.
const fallbackMIMEType = "application/octet-stream"

// BuildRawMessage assembles an RFC 2822 message and returns it
// base64url-encoded, the form the Gmail send API expects in Message.Raw.
// Messages without an attachment are plain text/plain; with an
// attachment they become multipart/mixed with a base64 part.
func BuildRawMessage(msg domain.OutgoingMail) (string, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s\r\n", msg.Sender)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.Recipient)
	fmt.Fprintf(&buf, "Subject: %s\r\n", msg.Subject)
	buf.WriteString("MIME-Version: 1.0\r\n")

	if len(msg.Attachment) == 0 {
		buf.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
		buf.WriteString(msg.Body)
		return base64.URLEncoding.EncodeToString(buf.Bytes()), nil
	}

	writer := multipart.NewWriter(&buf)
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", writer.Boundary())

	textHeader := textproto.MIMEHeader{}
	textHeader.Set("Content-Type", "text/plain; charset=\"UTF-8\"")
	textPart, err := writer.CreatePart(textHeader)
	if err != nil {
		return "", fmt.Errorf("create text part: %w", err)
	}
	if _, err := textPart.Write([]byte(msg.Body)); err != nil {
		return "", fmt.Errorf("write body: %w", err)
	}

	attachHeader := textproto.MIMEHeader{}
	attachHeader.Set("Content-Type", attachmentMIMEType(msg.AttachmentName))
	attachHeader.Set("Content-Transfer-Encoding", "base64")
	attachHeader.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", msg.AttachmentName))
	attachPart, err := writer.CreatePart(attachHeader)
	if err != nil {
		return "", fmt.Errorf("create attachment part: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(msg.Attachment)
	if _, err := attachPart.Write([]byte(encoded)); err != nil {
		return "", fmt.Errorf("write attachment: %w", err)
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart: %w", err)
	}

	return base64.URLEncoding.EncodeToString(buf.Bytes()), nil
}

// attachmentMIMEType infers the MIME type from the filename extension.
func attachmentMIMEType(name string) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return fallbackMIMEType
}
