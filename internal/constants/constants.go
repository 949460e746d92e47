// Package constants содержит константы, используемые в проекте backend.
// Константы сгруппированы по их функциональному назначению.
package constants

// Version - версия приложения.
const Version = "1.0.0"

// Константы приложения по умолчанию
const (
	// DefaultAppName - отображаемое имя приложения
	DefaultAppName = "SmartTV Backend"
	// DefaultEnvironment - окружение по умолчанию
	DefaultEnvironment = "development"
	// DefaultPort - порт HTTP сервера по умолчанию
	DefaultPort = 3001
	// DefaultConfigPath - путь к YAML конфигурации по умолчанию
	DefaultConfigPath = "config/app.yaml"
	// DefaultLogsDir - директория файловых логов по умолчанию
	DefaultLogsDir = "logs"
)

// Константы уровней логирования bootstrap-логгера
const (
	// LogLevelDebug - уровень отладки
	LogLevelDebug = "debug"
	// LogLevelInfo - информационный уровень
	LogLevelInfo = "info"
	// LogLevelWarn - уровень предупреждений
	LogLevelWarn = "warn"
	// LogLevelError - уровень ошибок
	LogLevelError = "error"
	// LogLevelDefault - уровень по умолчанию
	LogLevelDefault = LogLevelInfo
)

// EnvPrefix - префикс переменных окружения приложения.
const EnvPrefix = "BK_"
