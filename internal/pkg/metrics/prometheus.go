package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config содержит настройки Prometheus коллектора.
type Config struct {
	// Enabled — включены ли метрики.
	Enabled bool

	// Namespace — префикс имён метрик. По умолчанию "backend".
	Namespace string
}

// DefaultNamespace — namespace метрик по умолчанию.
const DefaultNamespace = "backend"

// PrometheusCollector реализует Collector с Prometheus метриками.
// Метрики отдаются pull-моделью через Handler() на /metrics —
// процесс долгоживущий, Pushgateway не нужен.
type PrometheusCollector struct {
	registry *prometheus.Registry

	logRecords       *prometheus.CounterVec
	dispatchTotal    *prometheus.CounterVec
	dispatchDuration prometheus.Histogram
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
}

// NewPrometheusCollector создаёт PrometheusCollector с указанной конфигурацией.
// Регистрирует метрики:
//   - <ns>_log_records_total (counter, label level)
//   - <ns>_alert_dispatch_total (counter, label status)
//   - <ns>_alert_dispatch_duration_seconds (histogram)
//   - <ns>_http_requests_total (counter, labels method/status)
//   - <ns>_http_request_duration_seconds (histogram, label method)
func NewPrometheusCollector(config Config) (*PrometheusCollector, error) {
	namespace := config.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}

	registry := prometheus.NewRegistry()

	logRecords := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "log_records_total",
			Help:      "Total number of log records written to the file sink",
		},
		[]string{"level"},
	)

	dispatchTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alert_dispatch_total",
			Help:      "Total number of alert dispatch attempts by outcome",
		},
		[]string{"status"},
	)

	// Buckets покрывают диапазон от быстрых ответов webhook до таймаута 10s.
	dispatchDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "alert_dispatch_duration_seconds",
			Help:      "Duration of alert dispatch HTTP calls in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of handled HTTP requests",
		},
		[]string{"method", "status"},
	)

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP request handling in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// Используем Register вместо MustRegister для избежания panic.
	// Ошибка возможна только при дублировании имён метрик в одном registry.
	collectors := []prometheus.Collector{
		logRecords, dispatchTotal, dispatchDuration, requestsTotal, requestDuration,
	}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: ошибка регистрации метрики: %w", err)
		}
	}

	return &PrometheusCollector{
		registry:         registry,
		logRecords:       logRecords,
		dispatchTotal:    dispatchTotal,
		dispatchDuration: dispatchDuration,
		requestsTotal:    requestsTotal,
		requestDuration:  requestDuration,
	}, nil
}

// RecordLogWrite увеличивает счётчик записанных лог-строк.
func (c *PrometheusCollector) RecordLogWrite(level string) {
	c.logRecords.WithLabelValues(level).Inc()
}

// RecordDispatch записывает результат и длительность отправки алерта.
func (c *PrometheusCollector) RecordDispatch(success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "error"
	}
	c.dispatchTotal.WithLabelValues(status).Inc()
	c.dispatchDuration.Observe(duration.Seconds())
}

// RecordRequest записывает обработанный HTTP запрос.
func (c *PrometheusCollector) RecordRequest(method string, status int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// Handler возвращает HTTP handler для экспорта метрик (/metrics).
func (c *PrometheusCollector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
