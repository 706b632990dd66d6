package oauth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/archeteam/workspaced/internal/core/domain"
	"github.com/archeteam/workspaced/internal/core/ports/driven"
	"github.com/archeteam/workspaced/internal/logger"
)

// Ensure GoogleFlow implements the interface.
var _ driven.AuthFlow = (*GoogleFlow)(nil)

// Google OAuth2 endpoints.
const (
	authURL  = "https://accounts.google.com/o/oauth2/v2/auth"
	tokenURL = "https://oauth2.googleapis.com/token"
)

// Callback port range for the loopback redirect.
const (
	callbackPortStart = 8400
	callbackPortEnd   = 8420
)

// consentTimeout bounds how long we wait for the user to finish the
// browser consent flow.
const consentTimeout = 5 * time.Minute

// GoogleFlow obtains credentials from Google's OAuth2 endpoints. Refresh
// is a plain token exchange; IssueNew runs the full authorization-code
// flow with PKCE through the user's browser.
type GoogleFlow struct {
	clientID     string
	clientSecret string
}

// NewGoogleFlow creates a flow for the given OAuth client.
func NewGoogleFlow(clientID, clientSecret string) *GoogleFlow {
	return &GoogleFlow{clientID: clientID, clientSecret: clientSecret}
}

// Refresh exchanges the credential's refresh token for a fresh access
// token. A provider denial (revoked or invalid grant) maps to
// ErrProviderRejected so the caller knows reissuance is needed; transport
// failures pass through unmapped.
func (f *GoogleFlow) Refresh(ctx context.Context, cred *domain.Credential) (*domain.Credential, error) {
	if !cred.HasRefreshToken() {
		return nil, fmt.Errorf("%w: credential has no refresh token", domain.ErrProviderRejected)
	}

	resp, err := refreshAccessToken(ctx, tokenURL, f.clientID, f.clientSecret, cred.RefreshToken)
	if err != nil {
		var terr *tokenError
		if errors.As(err, &terr) {
			return nil, fmt.Errorf("%w: %v", domain.ErrProviderRejected, terr)
		}
		return nil, err
	}

	refreshed := &domain.Credential{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		TokenType:    resp.TokenType,
		Expiry:       resp.Expiry,
		Scopes:       cred.Scopes,
	}
	// Google frequently omits the refresh token on refresh responses;
	// the original grant stays valid.
	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = cred.RefreshToken
	}
	if refreshed.TokenType == "" {
		refreshed.TokenType = cred.TokenType
	}

	return refreshed, nil
}

// IssueNew runs the interactive authorization-code flow for the given
// scopes. Without a terminal to drive the browser handoff it fails fast
// with ErrInteractionRequired rather than hanging.
func (f *GoogleFlow) IssueNew(ctx context.Context, scopes domain.ScopeSet) (*domain.Credential, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("%w: no terminal available for browser consent", domain.ErrInteractionRequired)
	}

	verifier, err := generateCodeVerifier()
	if err != nil {
		return nil, fmt.Errorf("generate code verifier: %w", err)
	}
	state, err := generateState()
	if err != nil {
		return nil, fmt.Errorf("generate state: %w", err)
	}

	port, err := findAvailablePort(callbackPortStart, callbackPortEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInteractionRequired, err)
	}

	srv := newCallbackServer(port, state)
	if err := srv.Start(); err != nil {
		return nil, fmt.Errorf("start callback server: %w", err)
	}
	defer srv.Stop()

	consentURL := f.buildAuthURL(scopes, srv.RedirectURI(), state, generateCodeChallenge(verifier))

	logger.Info("Opening browser for Google authorisation...")
	if err := openBrowser(consentURL); err != nil {
		logger.Warn("could not open browser automatically: %v", err)
		logger.Info("Visit this URL to authorise: %s", consentURL)
	}

	waitCtx, cancel := context.WithTimeout(ctx, consentTimeout)
	defer cancel()

	code, err := srv.WaitForCode(waitCtx)
	if err != nil {
		var cbErr *callbackError
		if errors.As(err, &cbErr) {
			return nil, fmt.Errorf("%w: %v", domain.ErrProviderRejected, cbErr)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: consent not completed in time", domain.ErrInteractionRequired)
		}
		return nil, err
	}

	resp, err := exchangeCodeForTokens(ctx, tokenURL, f.clientID, f.clientSecret, code, srv.RedirectURI(), verifier)
	if err != nil {
		var terr *tokenError
		if errors.As(err, &terr) {
			return nil, fmt.Errorf("%w: %v", domain.ErrProviderRejected, terr)
		}
		return nil, err
	}

	cred := &domain.Credential{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		TokenType:    resp.TokenType,
		Expiry:       resp.Expiry,
		Scopes:       scopes,
	}
	if cred.TokenType == "" {
		cred.TokenType = "Bearer"
	}

	return cred, nil
}

// buildAuthURL assembles the consent URL. access_type=offline and
// prompt=consent force Google to issue a refresh token even when the
// user has authorised before.
func (f *GoogleFlow) buildAuthURL(scopes domain.ScopeSet, redirectURI, state, challenge string) string {
	params := url.Values{}
	params.Set("client_id", f.clientID)
	params.Set("redirect_uri", redirectURI)
	params.Set("response_type", "code")
	params.Set("scope", joinScopes(scopes))
	params.Set("state", state)
	params.Set("code_challenge", challenge)
	params.Set("code_challenge_method", "S256")
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")

	return authURL + "?" + params.Encode()
}

func joinScopes(scopes domain.ScopeSet) string {
	return strings.Join(scopes, " ")
}
