// Пакет ctxmeta — нейтральный слой для метаданных запроса, которые
// прокидываются через context.Context (request_id, trace_id).
// HTTP-слой и логгер зависят от этого маленького пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const keyRequestID ctxKey = "request_id"

// WithRequestID кладёт request_id в контекст (пустое значение игнорируется).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, keyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(keyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
