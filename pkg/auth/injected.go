package auth

import (
	"context"
	"sync"
)

// TokenCallback is an async function returning the current bearer token.
// Refresh policy is entirely up to the caller: returning a new token on
// every call is fine, as is returning the same token until it expires
// (spec.md §4.3.1).
type TokenCallback func(ctx context.Context) (string, error)

// InjectedToken is the TokenSupplier strategy for a caller-managed token:
// either a literal static string, or an async callback invoked on every
// GetToken call. Concurrent GetToken calls on the same InjectedToken are
// serialized through mu so a slow callback is never invoked twice in
// parallel for what the caller would consider one logical refresh — the
// same de-duplication goal as InteractiveOAuth's silent-refresh path,
// just without a cache to check first, since caching policy belongs to
// the callback here, not to this supplier.
type InjectedToken struct {
	static   string
	callback TokenCallback

	mu sync.Mutex
}

// NewStaticToken returns an InjectedToken that always returns token.
func NewStaticToken(token string) *InjectedToken {
	return &InjectedToken{static: token}
}

// NewCallbackToken returns an InjectedToken that calls cb on every
// GetToken call.
func NewCallbackToken(cb TokenCallback) *InjectedToken {
	return &InjectedToken{callback: cb}
}

func (t *InjectedToken) GetToken(ctx context.Context) (string, error) {
	if t.callback == nil {
		return t.static, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	token, err := t.callback(ctx)
	if err != nil {
		return "", &AuthError{Kind: ErrorKindSilentRefreshFailed, Cause: err}
	}
	return token, nil
}
