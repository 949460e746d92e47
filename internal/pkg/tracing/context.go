package tracing

import "context"

// requestIDKey — ключ для хранения request ID в context.
// Приватный тип предотвращает коллизии ключей с другими пакетами.
type requestIDKey struct{}

// WithRequestID возвращает новый context с добавленным request ID.
// Уже установленный ID перезаписывается.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext извлекает request ID из context.
// Возвращает пустую строку если ID не установлен или context == nil.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
