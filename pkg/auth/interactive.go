package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"golang.org/x/oauth2"

	"github.com/deviantintegral/flameconnect/internal/pkg/infrastructure/logging"
	"github.com/deviantintegral/flameconnect/internal/pkg/infrastructure/tracing"
)

var tracer = otel.Tracer("flameconnect/auth")

// InteractiveOAuth is the TokenSupplier strategy that drives the gateway's
// Azure AD B2C authorization-code-with-PKCE flow (spec.md §4.3.1): a
// still-valid in-memory token is returned as is; otherwise the token
// (loaded from the on-disk cache when none is held in memory) is
// silently refreshed with its refresh token, and when there is no
// refresh token or the refresh fails the user is prompted through Prompt.
//
// The cached-token double-checked-lock pattern mirrors the teacher's
// refreshToken: an RLock fast path for the common "token still valid"
// case, then a Lock-and-recheck before doing the work of refreshing, so
// two concurrent callers never both hit the network for the same
// logical refresh.
type InteractiveOAuth struct {
	config     *oauth2.Config
	oauthCtx   context.Context
	httpClient *http.Client
	prompt     Prompt
	cache      *tokenCache

	mu    sync.RWMutex
	token *oauth2.Token
}

// NewInteractiveOAuth constructs an InteractiveOAuth. httpClient is used
// for every call to the authority (token exchange and refresh); pass nil
// to use http.DefaultClient.
func NewInteractiveOAuth(authority, clientID, redirectURL string, scopes []string, cachePath string, httpClient *http.Client, prompt Prompt) *InteractiveOAuth {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if prompt == nil {
		prompt = NewStdPrompt()
	}

	config := &oauth2.Config{
		ClientID:    clientID,
		RedirectURL: redirectURL,
		Scopes:      scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  authority + "/oauth2/v2.0/authorize",
			TokenURL: authority + "/oauth2/v2.0/token",
		},
	}

	return &InteractiveOAuth{
		config:     config,
		oauthCtx:   context.WithValue(context.Background(), oauth2.HTTPClient, httpClient),
		httpClient: httpClient,
		prompt:     prompt,
		cache:      newTokenCache(cachePath),
	}
}

func (o *InteractiveOAuth) GetToken(ctx context.Context) (accessToken string, err error) {
	ctx, span := tracer.Start(ctx, "get-token")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	o.mu.RLock()
	if o.token != nil && o.token.Valid() {
		token := o.token.AccessToken
		o.mu.RUnlock()
		return token, nil
	}
	o.mu.RUnlock()

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.token != nil && o.token.Valid() {
		return o.token.AccessToken, nil
	}

	if o.token == nil {
		cached, loadErr := o.cache.load(ctx)
		if loadErr != nil {
			log := logging.GetLoggerFromContext(ctx)
			log.Warn().Err(loadErr).Msg("ignoring corrupt token cache")
		} else {
			o.token = cached
		}
	}

	if o.token != nil && o.token.RefreshToken != "" {
		refreshed, refreshErr := o.silentRefresh(ctx, o.token)
		if refreshErr == nil {
			o.token = refreshed
			o.cache.save(ctx, refreshed)
			return refreshed.AccessToken, nil
		}
		logging.GetLoggerFromContext(ctx).Debug().Err(refreshErr).Msg("silent refresh failed, falling back to interactive sign-in")
	}

	token, err := o.interactiveSignIn(ctx)
	if err != nil {
		return "", err
	}

	o.token = token
	o.cache.save(ctx, token)
	return token.AccessToken, nil
}

// silentRefresh makes a single refresh-token grant request: maxAttempts
// is 1, so the backoff branch is never taken and a failure is returned
// to the caller without an automatic retry.
func (o *InteractiveOAuth) silentRefresh(ctx context.Context, stale *oauth2.Token) (*oauth2.Token, error) {
	source := o.config.TokenSource(o.oauthCtx, &oauth2.Token{RefreshToken: stale.RefreshToken})

	var lastErr error
	const maxAttempts = 1
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt*attempt) * 100 * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, &AuthError{Kind: ErrorKindSilentRefreshFailed, Cause: ctx.Err()}
			}
		}

		token, err := source.Token()
		if err == nil {
			return token, nil
		}
		lastErr = err
	}

	kind := ErrorKindSilentRefreshFailed
	if isAuthorityUnreachable(lastErr) {
		kind = ErrorKindAuthorityUnreachable
	}
	return nil, &AuthError{Kind: kind, Cause: lastErr}
}

// isAuthorityUnreachable reports whether err is a transport-level
// failure (DNS, TLS, connection refused, timeout) reaching the OAuth
// authority, as opposed to the authority responding with a rejection —
// golang.org/x/oauth2 surfaces the former as a *url.Error and the latter
// as an *oauth2.RetrieveError carrying an HTTP response.
func isAuthorityUnreachable(err error) bool {
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

func (o *InteractiveOAuth) interactiveSignIn(ctx context.Context) (*oauth2.Token, error) {
	verifier := oauth2.GenerateVerifier()
	authorizeURL := o.config.AuthCodeURL("state", oauth2.S256ChallengeOption(verifier))

	redirect, err := o.prompt.Authorize(authorizeURL)
	if err != nil {
		return nil, err
	}

	code, err := extractAuthCode(redirect)
	if err != nil {
		return nil, err
	}

	token, err := o.config.Exchange(o.oauthCtx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		kind := ErrorKindCodeExchangeFailed
		if isAuthorityUnreachable(err) {
			kind = ErrorKindAuthorityUnreachable
		}
		return nil, &AuthError{Kind: kind, Cause: err}
	}

	return token, nil
}

// extractAuthCode accepts either a bare authorization code or the full
// redirect URL the authority sent the browser to, since users reliably
// paste whichever one is visible in the address bar.
func extractAuthCode(pasted string) (string, error) {
	pasted = strings.TrimSpace(pasted)
	if pasted == "" {
		return "", &AuthError{Kind: ErrorKindUserAborted}
	}

	u, err := url.Parse(pasted)
	if err != nil || u.Scheme == "" {
		return pasted, nil
	}

	code := u.Query().Get("code")
	if code == "" {
		return "", &AuthError{Kind: ErrorKindCodeExchangeFailed, Cause: fmt.Errorf("redirect URL has no code parameter")}
	}
	return code, nil
}
