package tracing

import (
	"context"
	"testing"
)

func TestRequestIDContext_RoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6")
	if got := RequestIDFromContext(ctx); got != "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6" {
		t.Errorf("RequestIDFromContext = %q", got)
	}
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("ожидалась пустая строка, получено %q", got)
	}
	if got := RequestIDFromContext(nil); got != "" { //nolint:staticcheck // проверка nil-safe поведения
		t.Errorf("nil context: ожидалась пустая строка, получено %q", got)
	}
}

func TestWithRequestID_Overwrite(t *testing.T) {
	ctx := WithRequestID(context.Background(), "first")
	ctx = WithRequestID(ctx, "second")
	if got := RequestIDFromContext(ctx); got != "second" {
		t.Errorf("RequestIDFromContext = %q, want %q", got, "second")
	}
}
