package logging

import "context"

type requestIDKey struct{}

// RequestIDKey is the attribute name under which the request id is logged.
const RequestIDKey = "request_id"

// WithRequestID returns a context whose log entries are tagged with id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the API request id carried by ctx, if any.
func RequestID(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}

func withContextAttrs(ctx context.Context, args []any) []any {
	id, ok := RequestID(ctx)
	if !ok {
		return args
	}
	return append(args, RequestIDKey, id)
}
