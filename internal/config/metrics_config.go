package config

import (
	"fmt"
	"regexp"

	"github.com/AayushBarhate/backend/internal/pkg/metrics"
)

// MetricsConfig содержит настройки Prometheus метрик.
type MetricsConfig struct {
	// Enabled — включён ли endpoint /metrics.
	Enabled bool `yaml:"enabled" env:"BK_METRICS_ENABLED"`

	// Namespace — префикс имён метрик.
	Namespace string `yaml:"namespace" env:"BK_METRICS_NAMESPACE"`
}

// namespaceRe — допустимый формат namespace по правилам Prometheus.
var namespaceRe = regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9_:]*$`)

// getDefaultMetricsConfig возвращает конфигурацию метрик по умолчанию.
func getDefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:   true,
		Namespace: metrics.DefaultNamespace,
	}
}

// validateMetricsConfig проверяет корректность конфигурации метрик.
func validateMetricsConfig(mc *MetricsConfig) error {
	if !mc.Enabled {
		return nil
	}
	if !namespaceRe.MatchString(mc.Namespace) {
		return fmt.Errorf("metrics: namespace %q не соответствует формату Prometheus", mc.Namespace)
	}
	return nil
}

// Config собирает metrics.Config из секции конфигурации.
func (mc *MetricsConfig) Config() metrics.Config {
	return metrics.Config{
		Enabled:   mc.Enabled,
		Namespace: mc.Namespace,
	}
}
