package domain

import "errors"

// Authentication errors. The Authenticator returns exactly one of these
// when it cannot produce a valid credential; callers surface it as the
// operation's failure without retrying.
var (
	// ErrInteractionRequired indicates a new consent flow is needed but
	// cannot proceed (headless process, no browser, no terminal).
	ErrInteractionRequired = errors.New("user interaction required to authorise")

	// ErrProviderRejected indicates the identity provider explicitly
	// denied a refresh or issuance request.
	ErrProviderRejected = errors.New("identity provider rejected the request")

	// ErrStoreUnavailable indicates the credential could not be persisted.
	ErrStoreUnavailable = errors.New("credential store unavailable")
)

// Resolution errors. The Resolver returns exactly one of these when a
// name cannot be translated to a remote identifier.
var (
	// ErrResourceNotFound indicates the listing was exhausted without a match.
	ErrResourceNotFound = errors.New("named resource not found")

	// ErrResolveTimeout indicates the resolution budget elapsed before
	// the listing was exhausted or a match was found.
	ErrResolveTimeout = errors.New("resolution timed out")
)

// Operation errors.
var (
	// ErrRemote indicates the remote service call itself failed.
	ErrRemote = errors.New("remote service error")

	// ErrNotAuthorized indicates the remote service refused the call
	// with the current credential (insufficient permission).
	ErrNotAuthorized = errors.New("not authorised by remote service")
)
