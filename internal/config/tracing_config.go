package config

import (
	"time"

	"github.com/AayushBarhate/backend/internal/constants"
	"github.com/AayushBarhate/backend/internal/pkg/tracing"
)

// TracingConfig содержит настройки OpenTelemetry трейсинга.
type TracingConfig struct {
	// Enabled — включён ли трейсинг.
	Enabled bool `yaml:"enabled" env:"BK_TRACING_ENABLED"`

	// Endpoint — OTLP HTTP endpoint (например, "jaeger:4318").
	Endpoint string `yaml:"endpoint" env:"BK_TRACING_ENDPOINT"`

	// Insecure — использовать HTTP вместо HTTPS.
	Insecure bool `yaml:"insecure" env:"BK_TRACING_INSECURE"`

	// Timeout — таймаут экспорта трейсов.
	Timeout time.Duration `yaml:"timeout" env:"BK_TRACING_TIMEOUT"`

	// SamplingRate — доля сэмплируемых трейсов (0.0 — ни один, 1.0 — все).
	SamplingRate float64 `yaml:"samplingRate" env:"BK_TRACING_SAMPLING_RATE"`
}

// getDefaultTracingConfig возвращает конфигурацию трейсинга по умолчанию
// (трейсинг выключен).
func getDefaultTracingConfig() TracingConfig {
	return TracingConfig{
		Enabled:      false,
		Timeout:      5 * time.Second,
		SamplingRate: 1.0,
	}
}

// validateTracingConfig проверяет корректность конфигурации трейсинга.
// Делегирует проверку пакету tracing.
func validateTracingConfig(tc *TracingConfig, appName, environment string) error {
	cfg := tc.Config(appName, environment)
	return cfg.Validate()
}

// Config собирает tracing.Config из секции конфигурации и настроек приложения.
func (tc *TracingConfig) Config(appName, environment string) tracing.Config {
	return tracing.Config{
		Enabled:      tc.Enabled,
		Endpoint:     tc.Endpoint,
		ServiceName:  appName,
		Version:      constants.Version,
		Environment:  environment,
		Insecure:     tc.Insecure,
		Timeout:      tc.Timeout,
		SamplingRate: tc.SamplingRate,
	}
}
