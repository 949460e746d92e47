// Package middleware содержит HTTP middleware приложения: логирование
// запросов с корреляцией по request ID и перехват паник.
package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/AayushBarhate/backend/internal/pkg/clientip"
	"github.com/AayushBarhate/backend/internal/pkg/logging"
	"github.com/AayushBarhate/backend/internal/pkg/metrics"
	"github.com/AayushBarhate/backend/internal/pkg/tracing"
)

const (
	// maxUserAgentLen — максимальная длина user agent в полях лога.
	maxUserAgentLen = 200
	// maxRefererLen — максимальная длина referer в полях лога.
	maxRefererLen = 100
	// maxBodyCaptureBytes — лимит чтения тела запроса для логирования.
	maxBodyCaptureBytes = 1 << 20
	// maxErrorBodyBytes — лимит захвата тела ответа при ошибке.
	maxErrorBodyBytes = 4096

	// tracerName — имя инструментирующей библиотеки для OTel tracer.
	tracerName = "github.com/AayushBarhate/backend/internal/middleware"
)

// skipExact — пути, запросы на которые не логируются (служебные endpoint-ы
// опрашиваются мониторингом каждые несколько секунд).
var skipExact = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// RequestLogger возвращает middleware, логирующее каждый HTTP запрос:
// строка "API Request" до обработки, LogAPICall после, системное событие
// при статусе >= 400. Каждому запросу присваивается request ID,
// доступный обработчикам через tracing.RequestIDFromContext.
//
// Ошибка записи лога фатальна для запроса: middleware паникует,
// аудит запросов важнее их обработки.
func RequestLogger(logger logging.AppLogger, collector metrics.Collector) func(http.Handler) http.Handler {
	if collector == nil {
		collector = &metrics.NopCollector{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skipLogging(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			requestID := tracing.GenerateRequestID()
			ctx := tracing.WithRequestID(r.Context(), requestID)
			ctx = tracing.ContextWithOTelRequestID(ctx, requestID)

			// Span запроса наследует trace ID от request ID — логи и
			// экспортированный trace коррелируются одним значением.
			ctx, span := otel.Tracer(tracerName).Start(ctx, r.Method+" "+r.URL.Path)
			defer span.End()

			r = r.WithContext(ctx)

			ip := clientip.Resolve(r.RemoteAddr, r.Header)
			info := clientip.Classify(ip)

			fields := requestFields(r, ip, info, requestID)
			msg := fmt.Sprintf("API Request: %s %s from %s", r.Method, r.URL.Path, ip)
			if err := logger.Info(msg, fields); err != nil {
				panic(err)
			}

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r)
			elapsed := time.Since(start)

			elapsedMS := float64(elapsed.Microseconds()) / 1000.0
			if err := logger.LogAPICall(r.URL.Path, r.Method, rec.status, "", elapsedMS, ip); err != nil {
				panic(err)
			}

			if rec.status >= http.StatusBadRequest {
				if err := logHTTPError(logger, r, rec, ip, info, requestID); err != nil {
					panic(err)
				}
			}

			span.SetAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
				attribute.Int("http.status_code", rec.status),
				attribute.String("client.address", ip),
			)
			if rec.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(rec.status))
			}

			collector.RecordRequest(r.Method, rec.status, elapsed)
		})
	}
}

// skipLogging сообщает, нужно ли пропустить логирование пути.
func skipLogging(path string) bool {
	if _, ok := skipExact[path]; ok {
		return true
	}
	return strings.HasPrefix(path, "/static")
}

// requestFields собирает поля входящего запроса.
// Пустые заголовки не добавляются, тело захватывается только для
// методов с payload и только если это валидный JSON объект.
func requestFields(r *http.Request, ip string, info clientip.IPInfo, requestID string) logging.Fields {
	fields := logging.Fields{
		logging.F("request_id", requestID),
		logging.F("method", r.Method),
		logging.F("endpoint", r.URL.Path),
		logging.F("client_ip", ip),
		logging.F("ip_type", string(info.Classification)),
	}
	if label := ipVersionLabel(info.Version); label != "" {
		fields = append(fields, logging.F("ip_version", label))
	}
	if ua := r.UserAgent(); ua != "" {
		fields = append(fields, logging.F("user_agent", truncate(ua, maxUserAgentLen)))
	}
	if ref := r.Referer(); ref != "" {
		fields = append(fields, logging.F("referer", truncate(ref, maxRefererLen)))
	}
	if q := r.URL.RawQuery; q != "" {
		fields = append(fields, logging.F("query_params", q))
	}
	if body, ok := captureJSONBody(r); ok {
		// Чувствительные ключи тела редактируются на уровне логгера.
		fields = append(fields, logging.F("body", body))
	}
	return fields
}

// captureJSONBody читает начало тела запроса для логирования и
// восстанавливает r.Body для обработчика: захваченные байты склеиваются
// с непрочитанным остатком, обработчик всегда получает полный поток.
// Возвращает false для методов без payload, пустого тела, не-JSON
// содержимого и тел, не поместившихся в лимит захвата целиком.
func captureJSONBody(r *http.Request) (map[string]any, bool) {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return nil, false
	}
	if r.Body == nil {
		return nil, false
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyCaptureBytes))
	r.Body = &restoredBody{reader: io.MultiReader(bytes.NewReader(data), r.Body), closer: r.Body}
	if err != nil || len(data) == 0 {
		return nil, false
	}
	// Лимит выбран ровно: захват размером с лимит означает, что тело
	// могло быть обрезано — такой фрагмент парсить нельзя.
	if len(data) == maxBodyCaptureBytes {
		return nil, false
	}

	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, false
	}
	return body, true
}

// restoredBody отдаёт захваченный префикс, затем остаток исходного тела.
// Close закрывает исходное тело запроса.
type restoredBody struct {
	reader io.Reader
	closer io.Closer
}

func (b *restoredBody) Read(p []byte) (int, error) { return b.reader.Read(p) }
func (b *restoredBody) Close() error               { return b.closer.Close() }

// logHTTPError пишет системное событие об ошибочном ответе.
// 4xx — Warning без алерта, 5xx — Error с алертом.
func logHTTPError(logger logging.AppLogger, r *http.Request, rec *statusRecorder, ip string, info clientip.IPInfo, requestID string) error {
	fields := logging.Fields{
		logging.F("request_id", requestID),
		logging.F("method", r.Method),
		logging.F("endpoint", r.URL.Path),
		logging.F("status_code", rec.status),
		logging.F("client_ip", ip),
		logging.F("ip_type", string(info.Classification)),
	}
	if msg := errorMessageFromBody(rec.errorBody.Bytes()); msg != "" {
		fields = append(fields, logging.F("error_message", msg))
	}

	level := logging.LevelWarning
	notify := false
	if rec.status >= http.StatusInternalServerError {
		level = logging.LevelError
		notify = true
	}

	event := fmt.Sprintf("HTTP %d error on %s %s from %s", rec.status, r.Method, r.URL.Path, ip)
	return logger.LogSystemEvent(event, fields, level, notify)
}

// errorMessageFromBody извлекает сообщение об ошибке из JSON тела ответа.
// Поддерживаются общепринятые ключи "error" и "message".
func errorMessageFromBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	for _, key := range []string{"error", "message"} {
		if v, ok := parsed[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// ipVersionLabel возвращает человекочитаемую метку версии IP.
func ipVersionLabel(version int) string {
	switch version {
	case 4:
		return "IPv4"
	case 6:
		return "IPv6"
	default:
		return ""
	}
}

// truncate обрезает строку до limit рун.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// statusRecorder перехватывает статус ответа и, для ошибочных статусов,
// начало тела — чтобы вытащить сообщение об ошибке для лога.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	errorBody   bytes.Buffer
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wroteHeader {
		r.status = status
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.wroteHeader = true
	}
	if r.status >= http.StatusBadRequest && r.errorBody.Len() < maxErrorBodyBytes {
		remain := maxErrorBodyBytes - r.errorBody.Len()
		if remain > len(b) {
			remain = len(b)
		}
		r.errorBody.Write(b[:remain])
	}
	return r.ResponseWriter.Write(b)
}
