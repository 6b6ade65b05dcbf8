package log

import "context"

type ctxKey string

const ctxKeyRequestID ctxKey = "request_id"

// Modes and encodings accepted by ZapConfig.
const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
	EncodingJSON    = "json"
	EncodingConsole = "console"

	FieldRequestID = "request_id"
)

// WithRequestID stores a request id in the context so every log line carries it.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

// RequestIDFromContext returns the request id, or "" when none is set.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID).(string)
	return id
}
