package context

import "context"

type contextKey string

const (
	requestIDKey      contextKey = "observability_request_id"
	documentNumberKey contextKey = "observability_document_number"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(requestIDKey).(string)
	return value
}

// WithDocumentNumber tags the context with the invoice/estimate number the
// current operation works on, so export and write-back logs can name it.
func WithDocumentNumber(ctx context.Context, number int64) context.Context {
	if ctx == nil || number <= 0 {
		return ctx
	}
	return context.WithValue(ctx, documentNumberKey, number)
}

func DocumentNumberFromContext(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}
	value, _ := ctx.Value(documentNumberKey).(int64)
	return value
}
