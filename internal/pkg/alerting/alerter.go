// Package alerting предоставляет реализации logging.Dispatcher для
// отправки лог-событий во внешние каналы. Поддерживается Discord webhook
// (rich embed) и Nop канал для отключённого алертинга.
//
// ВАЖНО: диспетчер не должен прерывать работу приложения при ошибках
// доставки. Все сбои (сеть, не-2xx, таймаут) потребляются внутри: без
// retry, без эскалации и без записи через логирующий фасад — последнее
// исключает петлю обратной связи, когда сломан сам внешний канал.
package alerting

import "net/http"

// ChannelDiscord — имя discord канала.
const ChannelDiscord = "discord"

// HTTPClient определяет интерфейс HTTP клиента для тестирования.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
