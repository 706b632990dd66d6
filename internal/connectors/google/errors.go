package google

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/archeteam/workspaced/internal/core/domain"
)

// WrapError classifies a Google API error into the domain taxonomy so
// callers never see a raw provider error. Permission failures (401, 403)
// become domain.ErrNotAuthorized; everything else remote-side becomes
// domain.ErrRemote with the provider's message preserved.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return fmt.Errorf("%w: %v", domain.ErrRemote, err)
	}

	switch gerr.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrNotAuthorized, gerr.Message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: not found at remote: %s", domain.ErrRemote, gerr.Message)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: rate limited: %s", domain.ErrRemote, gerr.Message)
	default:
		return fmt.Errorf("%w: status %d: %s", domain.ErrRemote, gerr.Code, gerr.Message)
	}
}

// IsNotAuthorized returns true if the error indicates the remote service
// refused the call with the current credential.
func IsNotAuthorized(err error) bool {
	return errors.Is(err, domain.ErrNotAuthorized)
}
