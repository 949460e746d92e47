package config

import (
	"fmt"
	"log/slog"
	"os"
	"path"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"github.com/AayushBarhate/backend/internal/constants"
)

// getDefaultConfig возвращает конфигурацию приложения по умолчанию.
// Значения подобраны так, чтобы приложение поднималось без единой
// переменной окружения: логи в ./logs, алертинг и трейсинг выключены.
func getDefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        constants.DefaultAppName,
			Environment: constants.DefaultEnvironment,
			Port:        constants.DefaultPort,
			LogLevel:    constants.LogLevelDefault,
		},
		Logging:  getDefaultLoggingConfig(),
		Alerting: getDefaultAlertingConfig(),
		Metrics:  getDefaultMetricsConfig(),
		Tracing:  getDefaultTracingConfig(),
	}
}

// MustLoad загружает конфигурацию приложения.
// Порядок источников (по возрастанию приоритета):
//  1. Значения по умолчанию
//  2. YAML файл (путь из BK_CONFIG_PATH, по умолчанию config/app.yaml);
//     отсутствие файла не является ошибкой
//  3. Переменные окружения BK_*
//
// Обязательные секции (app, logging) валидируются fail-fast: ошибка
// прерывает загрузку. Опциональные секции (alerting, metrics, tracing)
// при невалидной конфигурации отключаются с предупреждением — сбой
// внешнего канала не должен мешать старту приложения.
// Возвращает:
//   - *Config: указатель на загруженную конфигурацию приложения
//   - error: ошибка загрузки конфигурации или nil при успехе
func MustLoad() (*Config, error) {
	cfg := getDefaultConfig()

	// YAML файл опционален
	configPath := os.Getenv("BK_CONFIG_PATH")
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	if data, readErr := os.ReadFile(configPath); readErr == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("ошибка парсинга %s: %w", configPath, err)
		}
	} else if !os.IsNotExist(readErr) {
		return nil, fmt.Errorf("ошибка чтения %s: %w", configPath, readErr)
	}

	// Переменные окружения переопределяют YAML
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("не удалось прочитать переменные окружения в Config: %w", err)
	}

	l := getSlog(cfg.App.LogLevel)
	cfg.Logger = l

	if err := validateAppConfig(&cfg.App); err != nil {
		l.Error("невалидная конфигурация приложения", slog.String("error", err.Error()))
		return nil, err
	}
	if err := validateLoggingConfig(&cfg.Logging); err != nil {
		l.Error("невалидная конфигурация логирования", slog.String("error", err.Error()))
		return nil, err
	}

	// Fail-fast валидация опциональных секций: обнаруживаем невалидную
	// конфигурацию при загрузке, а не при первом использовании в runtime.
	if err := validateAlertingConfig(&cfg.Alerting); err != nil {
		l.Warn("невалидная конфигурация алертинга, алертинг отключён",
			slog.String("error", err.Error()),
			slog.String("reason", "validation_failed"),
		)
		cfg.Alerting = getDefaultAlertingConfig()
	}
	if err := validateMetricsConfig(&cfg.Metrics); err != nil {
		l.Warn("невалидная конфигурация метрик, метрики отключены",
			slog.String("error", err.Error()),
			slog.String("reason", "validation_failed"),
		)
		cfg.Metrics.Enabled = false
	}
	if cfg.Tracing.Enabled {
		if err := validateTracingConfig(&cfg.Tracing, cfg.App.Name, cfg.App.Environment); err != nil {
			l.Warn("невалидная конфигурация трейсинга, трейсинг отключён",
				slog.String("error", err.Error()),
				slog.String("reason", "validation_failed"),
			)
			cfg.Tracing.Enabled = false
		}
	}

	return cfg, nil
}

// validateAppConfig проверяет базовые настройки приложения.
func validateAppConfig(ac *AppConfig) error {
	if ac.Name == "" {
		return fmt.Errorf("app: имя приложения обязательно")
	}
	if ac.Port < 1 || ac.Port > 65535 {
		return fmt.Errorf("app: порт %d вне диапазона 1-65535", ac.Port)
	}
	return nil
}

// getSlog создаёт bootstrap-логгер процесса: JSON на stdout.
// Используется для диагностики загрузки конфигурации и инициализации —
// до того, как поднят файловый логгер приложения.
func getSlog(logLevel string) *slog.Logger {
	var programLevel = new(slog.LevelVar)

	switch logLevel {
	default:
		programLevel.Set(slog.LevelInfo)
	case constants.LogLevelDebug:
		programLevel.Set(slog.LevelDebug)
	case constants.LogLevelInfo:
		programLevel.Set(slog.LevelInfo)
	case constants.LogLevelWarn:
		programLevel.Set(slog.LevelWarn)
	case constants.LogLevelError:
		programLevel.Set(slog.LevelError)
	}

	l := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     programLevel,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				s := a.Value.Any().(*slog.Source)
				s.File = path.Base(s.File)
			}
			return a
		},
	}))
	l = l.With(slog.Group("App info",
		slog.String("version", constants.Version),
	))
	return l
}
