// Package auth implements FlameConnect's TokenSupplier abstraction
// (spec.md §4.3): a single async operation producing a bearer token,
// with two concrete strategies — a caller-injected token and a
// self-driven interactive OAuth2 / Azure AD B2C login with on-disk
// token cache and silent refresh.
package auth

import "context"

// TokenSupplier produces a current bearer token suitable for use in an
// Authorization: Bearer header. Implementations must be safe to call
// from multiple concurrent request paths; the result may be cached
// across calls (spec.md §4.3).
type TokenSupplier interface {
	GetToken(ctx context.Context) (string, error)
}
