package alerting

import (
	"github.com/AayushBarhate/backend/internal/pkg/logging"
	"github.com/AayushBarhate/backend/internal/pkg/metrics"
)

// NewDispatcher создаёт диспетчер алертов по конфигурации.
// Пустой WebhookURL даёт NopAlerter — приложение работает без внешнего
// канала, события пишутся только в файлы.
func NewDispatcher(config DiscordConfig, collector metrics.Collector) (logging.Dispatcher, error) {
	if config.WebhookURL == "" {
		return NewNopAlerter(), nil
	}
	return NewDiscordAlerter(config, collector)
}
