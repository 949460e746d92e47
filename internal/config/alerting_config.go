package config

import (
	"time"

	"github.com/AayushBarhate/backend/internal/pkg/alerting"
)

// AlertingConfig содержит настройки алертинга.
type AlertingConfig struct {
	// DiscordWebhookURL — URL Discord webhook. Пустое значение
	// отключает алертинг: приложение пишет только в файлы.
	DiscordWebhookURL string `yaml:"discordWebhookUrl" env:"BK_ALERTING_DISCORD_WEBHOOK_URL"`

	// Timeout — таймаут HTTP запроса к webhook.
	Timeout time.Duration `yaml:"timeout" env:"BK_ALERTING_TIMEOUT"`
}

// getDefaultAlertingConfig возвращает конфигурацию алертинга по умолчанию.
// Алертинг отключён по умолчанию.
func getDefaultAlertingConfig() AlertingConfig {
	return AlertingConfig{
		DiscordWebhookURL: "",
		Timeout:           alerting.DefaultTimeout,
	}
}

// validateAlertingConfig проверяет корректность конфигурации алертинга.
// Делегирует проверку URL пакету alerting — единственный источник правил.
func validateAlertingConfig(ac *AlertingConfig) error {
	cfg := alerting.DiscordConfig{WebhookURL: ac.DiscordWebhookURL}
	return cfg.Validate()
}

// DiscordConfig собирает alerting.DiscordConfig из секции конфигурации
// и настроек приложения.
func (ac *AlertingConfig) DiscordConfig(appName, environment string) alerting.DiscordConfig {
	return alerting.DiscordConfig{
		WebhookURL:  ac.DiscordWebhookURL,
		AppName:     appName,
		Environment: environment,
		Timeout:     ac.Timeout,
	}
}
