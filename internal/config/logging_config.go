package config

import (
	"errors"

	"github.com/AayushBarhate/backend/internal/constants"
)

// LoggingConfig содержит настройки файлового логирования.
type LoggingConfig struct {
	// LogsDir — директория для app.log и errors.log.
	// Создаётся при старте, если отсутствует.
	LogsDir string `yaml:"logsDir" env:"BK_LOGS_DIR"`

	// Source — имя источника в строках лога.
	Source string `yaml:"source" env:"BK_LOG_SOURCE"`
}

// getDefaultLoggingConfig возвращает конфигурацию логирования по умолчанию.
func getDefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		LogsDir: constants.DefaultLogsDir,
		Source:  "backend",
	}
}

// validateLoggingConfig проверяет корректность конфигурации логирования.
// Логирование обязательно: пустая директория — фатальная ошибка загрузки,
// в отличие от опциональных секций (alerting, metrics, tracing).
func validateLoggingConfig(lc *LoggingConfig) error {
	if lc.LogsDir == "" {
		return errors.New("logging: директория логов обязательна")
	}
	if lc.Source == "" {
		return errors.New("logging: имя источника обязательно")
	}
	return nil
}
