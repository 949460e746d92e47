// Package tracing предоставляет генерацию request ID и инициализацию
// OpenTelemetry TracerProvider. Request ID используется для корреляции
// логов одного HTTP запроса.
//
// Формат request ID: 32-символьный hex string (16 байт), например:
//
//	"a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6"
//
// Это совместимо с W3C Trace Context format, поэтому тот же ID может
// использоваться как OTel trace ID (см. ContextWithOTelRequestID).
package tracing

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"
)

// fallbackCounter используется для генерации уникальных fallback ID.
var fallbackCounter atomic.Uint64

// GenerateRequestID генерирует уникальный request ID.
// Формат: 32 символа hex (16 байт).
//
// Использует crypto/rand. При ошибке crypto/rand (практически невозможно
// на современных системах) возвращает fallback значение на основе
// timestamp и счётчика.
func GenerateRequestID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fallbackRequestID()
	}
	return hex.EncodeToString(b)
}

// fallbackRequestID генерирует ID на основе текущего времени и счётчика.
// %016x для uint64 даёт ровно 16 hex символов, итого всегда 32 символа.
func fallbackRequestID() string {
	counter := fallbackCounter.Add(1)
	timestamp := uint64(time.Now().UnixNano())
	return fmt.Sprintf("%016x%016x", timestamp, counter)
}
