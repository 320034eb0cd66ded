package auth

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/deviantintegral/flameconnect/internal/pkg/infrastructure/logging"
)

// cachedToken is the on-disk shape of InteractiveOAuth's token cache
// (spec.md §6.5): a single flat JSON document, not a relational schema,
// which is why no database driver from the teacher's stack is wired here.
type cachedToken struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	Expiry       time.Time `json:"expiry"`
}

func tokenToCache(t *oauth2.Token) cachedToken {
	return cachedToken{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
		Expiry:       t.Expiry,
	}
}

func (c cachedToken) toToken() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		TokenType:    c.TokenType,
		Expiry:       c.Expiry,
	}
}

// tokenCache persists a single oauth2.Token to a JSON file, guarding reads
// and writes with a mutex so concurrent calls on the same tokenCache don't
// interleave. Each InteractiveOAuth creates its own tokenCache, so separate
// instances sharing a path are not serialized against each other.
type tokenCache struct {
	path string
	mu   sync.Mutex
}

func newTokenCache(path string) *tokenCache {
	return &tokenCache{path: path}
}

// load reads the cached token, returning (nil, nil) if no cache file
// exists yet — that is the normal first-run state, not an error.
func (c *tokenCache) load(ctx context.Context) (*oauth2.Token, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &AuthError{Kind: ErrorKindCacheCorrupt, Cause: err}
	}

	var cached cachedToken
	if err := json.Unmarshal(raw, &cached); err != nil {
		log := logging.GetLoggerFromContext(ctx)
		log.Warn().Err(err).Str("path", c.path).Msg("token cache file is not valid JSON, discarding")
		return nil, &AuthError{Kind: ErrorKindCacheCorrupt, Cause: err}
	}

	return cached.toToken(), nil
}

// save writes token to disk, creating the parent directory if needed.
// A failure to persist is logged but not fatal: InteractiveOAuth still
// returns the freshly obtained token to the caller, it will just have to
// sign in again next process start.
func (c *tokenCache) save(ctx context.Context, token *oauth2.Token) {
	c.mu.Lock()
	defer c.mu.Unlock()

	log := logging.GetLoggerFromContext(ctx)

	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		log.Warn().Err(err).Str("path", c.path).Msg("could not create token cache directory")
		return
	}

	raw, err := json.Marshal(tokenToCache(token))
	if err != nil {
		log.Warn().Err(err).Msg("could not marshal token for caching")
		return
	}

	if err := os.WriteFile(c.path, raw, 0o600); err != nil {
		log.Warn().Err(err).Str("path", c.path).Msg("could not write token cache")
	}
}
