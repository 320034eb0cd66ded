package logging

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type loggerContextKey struct {
	name string
}

var loggerCtxKey = &loggerContextKey{"logger"}

func NewLogger(ctx context.Context, serviceName, serviceVersion string) (context.Context, zerolog.Logger) {
	logger := log.With().Str("service", strings.ToLower(serviceName)).Str("version", serviceVersion).Logger()
	ctx = NewContextWithLogger(ctx, logger)
	return ctx, logger
}

func NewContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	ctx = context.WithValue(ctx, loggerCtxKey, logger)
	return ctx
}

func GetLoggerFromContext(ctx context.Context) zerolog.Logger {
	logger, ok := ctx.Value(loggerCtxKey).(zerolog.Logger)

	if !ok {
		return log.Logger
	}

	return logger
}

// WithFireID returns ctx carrying a logger annotated with fire_id, so
// every log line a single fireplace operation emits downstream — an
// overview fetch, a parameter write, a turn_on/turn_off composition — can
// be correlated back to the fireplace it was about without the caller
// threading a fire_id string through every log call by hand
// (pkg/client's per-fireplace operations all take a fire_id, spec.md
// §4.4.2-§4.4.5).
func WithFireID(ctx context.Context, fireID string) context.Context {
	logger := GetLoggerFromContext(ctx).With().Str("fire_id", fireID).Logger()
	return NewContextWithLogger(ctx, logger)
}

// WithRequestID returns ctx carrying a logger annotated with request_id,
// the same value pkg/client stamps into the X-Request-Id header on every
// gateway call (spec.md §4.4.6), so a logged gateway failure can be
// matched against gateway-side logs for the same request.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	logger := GetLoggerFromContext(ctx).With().Str("request_id", requestID).Logger()
	return NewContextWithLogger(ctx, logger)
}
