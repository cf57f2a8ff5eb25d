package log

import "context"

const (
	ModeProduction = "production"
	EncodingJSON   = "json"

	requestIDKey = "request_id"
)

type ctxKey struct{}

// WithRequestID returns a copy of ctx carrying the request id picked up by every log line.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestIDFromContext returns the request id stored by WithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
