// Package config загружает и валидирует конфигурацию приложения.
// Источники (по возрастанию приоритета): значения по умолчанию,
// YAML файл, переменные окружения BK_*.
package config

import "log/slog"

// Config — корневая конфигурация приложения.
type Config struct {
	// App — базовые настройки приложения.
	App AppConfig `yaml:"app"`

	// Logging — настройки файлового логирования.
	Logging LoggingConfig `yaml:"logging"`

	// Alerting — настройки алертинга (Discord webhook).
	Alerting AlertingConfig `yaml:"alerting"`

	// Metrics — настройки Prometheus метрик.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing — настройки OpenTelemetry трейсинга.
	Tracing TracingConfig `yaml:"tracing"`

	// Logger — bootstrap-логгер процесса (stdout, JSON).
	// Не конфигурируется из файла.
	Logger *slog.Logger `yaml:"-"`
}

// AppConfig — базовые настройки приложения.
type AppConfig struct {
	// Name — отображаемое имя приложения (алерты, health endpoint).
	Name string `yaml:"name" env:"BK_APP_NAME"`

	// Environment — окружение: development, staging, production.
	Environment string `yaml:"environment" env:"BK_ENVIRONMENT"`

	// Port — порт HTTP сервера.
	Port int `yaml:"port" env:"BK_PORT"`

	// LogLevel — уровень bootstrap-логгера (debug, info, warn, error).
	LogLevel string `yaml:"logLevel" env:"BK_LOG_LEVEL"`
}
