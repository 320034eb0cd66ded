package client

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/deviantintegral/flameconnect/internal/pkg/infrastructure/tracing"
)

// recordAndEnd is the span-closing idiom ListFires/GetFireOverview/
// WriteParameters/TurnOn/TurnOff use so every public method can defer a
// single call instead of repeating RecordError/SetStatus/End.
func recordAndEnd(err error, span trace.Span) {
	tracing.RecordAnyErrorAndEndSpan(err, span)
}
