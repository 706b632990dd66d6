package httpapi

import (
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/archeteam/workspaced/internal/core/domain"
	"github.com/archeteam/workspaced/internal/core/ports/driving"
	"github.com/archeteam/workspaced/internal/logger"
)

// MailHandler handles mail routes.
type MailHandler struct {
	mail driving.MailOps
}

// NewMailHandler creates a new mail handler.
func NewMailHandler(mail driving.MailOps) *MailHandler {
	return &MailHandler{mail: mail}
}

// Register sets up mail routes.
func (h *MailHandler) Register(api fiber.Router) {
	email := api.Group("/email")
	email.Post("/send_email", h.SendEmail)
}

// sendEmailRequest carries one outgoing message. Attachment content
// arrives base64-encoded; the extension names its file type. The
// "attachement" key is kept for compatibility with existing clients.
type sendEmailRequest struct {
	Recipient  string `json:"recipient"`
	Sender     string `json:"sender"`
	Body       string `json:"body"`
	Subject    string `json:"subject"`
	Attachment string `json:"attachement"`
	Extension  string `json:"extension"`
}

// SendEmail sends one message, with an optional attachment.
func (h *MailHandler) SendEmail(c fiber.Ctx) error {
	var req sendEmailRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.Recipient == "" {
		return badRequest(c, "recipient is required")
	}

	msg := domain.OutgoingMail{
		Recipient: req.Recipient,
		Sender:    req.Sender,
		Subject:   req.Subject,
		Body:      req.Body,
	}

	if req.Attachment != "" {
		data, err := base64.StdEncoding.DecodeString(req.Attachment)
		if err != nil {
			return badRequest(c, "attachment is not valid base64")
		}
		ext := req.Extension
		if ext == "" {
			ext = ".pdf"
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		msg.Attachment = data
		msg.AttachmentName = "attachment" + ext
	}

	logger.Info("send mail request: recipient=%s subject=%q attachment=%t",
		req.Recipient, req.Subject, msg.Attachment != nil)

	if err := h.mail.SendMail(c.Context(), msg); err != nil {
		logger.Error("send mail: %v", err)
		return fail(c, err)
	}
	return ok(c)
}
