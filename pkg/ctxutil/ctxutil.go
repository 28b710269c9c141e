package ctxutil

import "context"

type ctxKey string

const (
	viewerEmailKey ctxKey = "viewer_email"
	requestIDKey   ctxKey = "request_id"
)

// WithViewerEmail stores the authenticated viewer's email in the context.
func WithViewerEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, viewerEmailKey, email)
}

// ViewerEmailFromCtx extracts the viewer's email from the context.
// Returns "" and false if the value is missing, empty, or the wrong type.
func ViewerEmailFromCtx(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(viewerEmailKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
