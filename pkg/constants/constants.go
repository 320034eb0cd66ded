// Package constants holds FlameConnect's compile-time gateway and OAuth
// configuration (spec.md §4.1). Everything here is pure data; nothing in
// this package performs I/O except the optional environment-variable
// overrides below, which read once at call time and never mutate global
// state.
package constants

import (
	"context"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
)

// API_BASE_URL is the gateway's HTTPS origin.
const API_BASE_URL = "https://app.unifiremote.com"

// OAUTH_AUTHORITY is the Azure AD B2C authority URL for the gateway's
// sign-in policy.
const OAUTH_AUTHORITY = "https://unifirelogin.b2clogin.com/unifirelogin.onmicrosoft.com/B2C_1_SignIn"

// OAUTH_CLIENT_ID identifies FlameConnect to the B2C tenant.
const OAUTH_CLIENT_ID = "a56d5c91-7a3b-4d2e-9c4a-2f1b6e8d0c73"

// OAUTH_SCOPES is the scope list required for token acquisition.
var OAUTH_SCOPES = []string{
	"openid",
	"offline_access",
	"https://unifirelogin.onmicrosoft.com/api/user_impersonation",
}

// DEFAULT_HEADERS are applied to every gateway request in addition to the
// bearer Authorization header pkg/client adds per call (spec.md §4.4.6).
// The exact key/value mapping is prescribed by the gateway and reproduced
// byte-for-byte from existing clients.
var DEFAULT_HEADERS = map[string]string{
	"X-App-Id":        "com.unifire.flameconnect",
	"X-Api-Version":   "2",
	"X-Device-Type":   "other",
	"X-Device-Os":     "other",
	"Accept-Language": "en-US",
	"X-Country-Code":  "US",
	"X-Log-Requests":  "false",
}

// Parameter ID constants, mirrored from pkg/models so callers that only
// need the ID space (e.g. building a WriteParameters request by hand) are
// not forced to import the full type definitions.
const (
	ParamIDTempUnit        uint16 = 236
	ParamIDMode            uint16 = 321
	ParamIDFlameEffect     uint16 = 322
	ParamIDHeat            uint16 = 323
	ParamIDHeatMode        uint16 = 325
	ParamIDTimer           uint16 = 326
	ParamIDSoftwareVersion uint16 = 327
	ParamIDError           uint16 = 329
	ParamIDSound           uint16 = 369
	ParamIDLogEffect       uint16 = 370
)

// APIBaseURL returns API_BASE_URL unless overridden by the
// FLAMECONNECT_API_BASE_URL environment variable, following the teacher's
// env.GetVariableOrDefault idiom for letting integration tests and
// self-hosted gateway mirrors retarget the client without code changes.
func APIBaseURL(ctx context.Context) string {
	return env.GetVariableOrDefault(ctx, "FLAMECONNECT_API_BASE_URL", API_BASE_URL)
}

// OAuthAuthority returns OAUTH_AUTHORITY unless overridden by
// FLAMECONNECT_OAUTH_AUTHORITY.
func OAuthAuthority(ctx context.Context) string {
	return env.GetVariableOrDefault(ctx, "FLAMECONNECT_OAUTH_AUTHORITY", OAUTH_AUTHORITY)
}

// DefaultTokenCachePath returns the on-disk path InteractiveOAuth uses for
// its token cache unless overridden by FLAMECONNECT_TOKEN_CACHE_PATH. The
// default lives under the OS-appropriate user cache directory (spec.md
// §6.5); os.UserCacheDir failures fall back to "." so construction never
// panics on an unusual environment.
func DefaultTokenCachePath(ctx context.Context) string {
	return env.GetVariableOrDefault(ctx, "FLAMECONNECT_TOKEN_CACHE_PATH", defaultTokenCacheDir()+"/flameconnect/token-cache.json")
}
