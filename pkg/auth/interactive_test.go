package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"
	"golang.org/x/oauth2"
)

var staleToken = oauth2.Token{
	AccessToken:  "expired-access-token",
	RefreshToken: "refresh-1",
	TokenType:    "Bearer",
	Expiry:       time.Now().Add(-time.Hour),
}

type fakePrompt struct {
	redirect string
}

func (p *fakePrompt) Authorize(authorizeURL string) (string, error) {
	return p.redirect, nil
}

func tokenResponse(w http.ResponseWriter, accessToken string, expiresIn int) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"access_token":  accessToken,
		"refresh_token": "refresh-1",
		"token_type":    "Bearer",
		"expires_in":    expiresIn,
	})
}

func TestInteractiveOAuthExchangesCodeOnFirstCall(t *testing.T) {
	is := is.New(t)

	authority := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenResponse(w, "first-access-token", 3600)
	}))
	defer authority.Close()

	cachePath := filepath.Join(t.TempDir(), "token-cache.json")
	prompt := &fakePrompt{redirect: "https://app/callback?code=auth-code-1&state=state"}

	client := NewInteractiveOAuth(authority.URL, "client-id", "https://app/callback", []string{"openid"}, cachePath, authority.Client(), prompt)

	token, err := client.GetToken(context.Background())
	is.NoErr(err)
	is.Equal(token, "first-access-token")

	_, err = os.Stat(cachePath)
	is.NoErr(err)
}

func TestInteractiveOAuthReusesCachedTokenWithoutPrompting(t *testing.T) {
	is := is.New(t)

	calls := 0
	authority := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		tokenResponse(w, "access-token", 3600)
	}))
	defer authority.Close()

	cachePath := filepath.Join(t.TempDir(), "token-cache.json")
	prompt := &fakePrompt{redirect: "https://app/callback?code=auth-code-1"}

	client := NewInteractiveOAuth(authority.URL, "client-id", "https://app/callback", []string{"openid"}, cachePath, authority.Client(), prompt)

	_, err := client.GetToken(context.Background())
	is.NoErr(err)
	is.Equal(calls, 1)

	_, err = client.GetToken(context.Background())
	is.NoErr(err)
	is.Equal(calls, 1) // served from the in-memory cache, authority not hit again
}

func TestInteractiveOAuthSilentlyRefreshesFromDiskCache(t *testing.T) {
	is := is.New(t)

	authority := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenResponse(w, "refreshed-access-token", 3600)
	}))
	defer authority.Close()

	cachePath := filepath.Join(t.TempDir(), "token-cache.json")
	cache := newTokenCache(cachePath)
	cache.save(context.Background(), &staleToken)

	prompt := &fakePrompt{redirect: "https://app/callback?code=should-not-be-used"}
	client := NewInteractiveOAuth(authority.URL, "client-id", "https://app/callback", []string{"openid"}, cachePath, authority.Client(), prompt)

	token, err := client.GetToken(context.Background())
	is.NoErr(err)
	is.Equal(token, "refreshed-access-token")
}

func TestInteractiveSignInClassifiesUnreachableAuthorityDistinctlyFromRejection(t *testing.T) {
	is := is.New(t)

	authority := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	unreachableURL := authority.URL
	authority.Close() // nothing is listening here anymore

	cachePath := filepath.Join(t.TempDir(), "token-cache.json")
	prompt := &fakePrompt{redirect: "https://app/callback?code=auth-code-1"}

	client := NewInteractiveOAuth(unreachableURL, "client-id", "https://app/callback", []string{"openid"}, cachePath, http.DefaultClient, prompt)

	_, err := client.GetToken(context.Background())
	is.True(err != nil)

	var authErr *AuthError
	is.True(errors.As(err, &authErr))
	is.Equal(authErr.Kind, ErrorKindAuthorityUnreachable)
}

func TestExtractAuthCodeAcceptsBareCodeOrRedirectURL(t *testing.T) {
	is := is.New(t)

	code, err := extractAuthCode("raw-code-value")
	is.NoErr(err)
	is.Equal(code, "raw-code-value")

	code, err = extractAuthCode("https://app/callback?code=url-code-value&state=xyz")
	is.NoErr(err)
	is.Equal(code, "url-code-value")

	_, err = extractAuthCode("")
	is.True(err != nil)
}
