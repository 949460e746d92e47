package alerting

import (
	"net/url"
	"time"
)

// DefaultTimeout — таймаут HTTP запроса к webhook по умолчанию.
// Retry нет: алерт best-effort, повторная доставка не гарантируется.
const DefaultTimeout = 10 * time.Second

// DiscordConfig содержит настройки discord канала.
type DiscordConfig struct {
	// WebhookURL — URL webhook. Пустое значение полностью отключает
	// отправку (Dispatch становится no-op).
	WebhookURL string

	// AppName — отображаемое имя приложения (footer и username бота).
	AppName string

	// Environment — метка окружения, отображается в верхнем регистре.
	Environment string

	// Timeout — таймаут HTTP запроса. По умолчанию 10 секунд.
	Timeout time.Duration
}

// Validate проверяет корректность DiscordConfig.
// Пустой WebhookURL валиден — канал просто отключён.
func (c *DiscordConfig) Validate() error {
	if c.WebhookURL == "" {
		return nil
	}
	u, err := url.Parse(c.WebhookURL)
	if err != nil {
		return ErrWebhookURLInvalid
	}
	// Только http/https — защита от SSRF через file:// и т.п.
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrWebhookURLInvalid
	}
	return nil
}
