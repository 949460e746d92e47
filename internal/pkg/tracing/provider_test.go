package tracing

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func TestNewTracerProvider_Disabled(t *testing.T) {
	shutdown, err := NewTracerProvider(Config{Enabled: false}, nil)
	if err != nil {
		t.Fatalf("NewTracerProvider: %v", err)
	}
	if shutdown == nil {
		t.Fatal("shutdown function не должна быть nil")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("nop shutdown вернул ошибку: %v", err)
	}
}

func TestNewTracerProvider_InvalidConfig(t *testing.T) {
	_, err := NewTracerProvider(Config{Enabled: true}, nil)
	if err == nil {
		t.Fatal("ожидалась ошибка валидации для пустого endpoint")
	}
}

func TestContextWithOTelRequestID(t *testing.T) {
	id := "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6"
	ctx := ContextWithOTelRequestID(context.Background(), id)

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		t.Fatal("span context невалиден")
	}
	if sc.TraceID().String() != id {
		t.Errorf("trace ID = %q, want %q", sc.TraceID().String(), id)
	}
	if !sc.SpanID().IsValid() {
		t.Error("span ID должен быть валидным, иначе SDK игнорирует remote parent")
	}
	if !sc.IsRemote() {
		t.Error("span context должен быть remote")
	}
	if !sc.IsSampled() {
		t.Error("span context должен быть sampled")
	}
}

func TestContextWithOTelRequestID_ZeroTailGetsValidSpanID(t *testing.T) {
	// Последние 8 байт нулевые — span ID должен вывестись из первой половины.
	id := "a1b2c3d4e5f6a7b80000000000000000"
	ctx := ContextWithOTelRequestID(context.Background(), id)

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		t.Fatal("span context невалиден")
	}
	if !sc.SpanID().IsValid() {
		t.Error("span ID должен быть ненулевым при нулевом хвосте trace ID")
	}
}

func TestContextWithOTelRequestID_Invalid(t *testing.T) {
	base := context.Background()
	ctx := ContextWithOTelRequestID(base, "not-a-hex-id")
	if ctx != base {
		t.Error("невалидный ID должен возвращать исходный контекст")
	}
}
