package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/archeteam/workspaced/internal/core/domain"
)

// statusFor maps a classified operation error to an HTTP status.
// Authentication failures of any shape are the client's problem (401);
// resolution exhaustion is 404; a blown resolution budget is 504; remote
// failures surface as 502.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotAuthorized),
		errors.Is(err, domain.ErrInteractionRequired),
		errors.Is(err, domain.ErrProviderRejected):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrResourceNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrResolveTimeout):
		return fiber.StatusGatewayTimeout
	case errors.Is(err, domain.ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, domain.ErrRemote):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// fail writes the normalised error response. The message names the
// failed stage because the services wrap with stage prefixes.
func fail(c fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"status": "error",
		"error":  err.Error(),
	})
}

func ok(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "error": ""})
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status": "error",
		"error":  msg,
	})
}
