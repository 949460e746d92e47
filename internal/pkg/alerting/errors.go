package alerting

import "errors"

// Ошибки валидации конфигурации.
var (
	// ErrWebhookURLInvalid — webhook URL имеет невалидный формат.
	ErrWebhookURLInvalid = errors.New("alerting: webhook url has invalid format (must have http/https scheme and host)")
)
