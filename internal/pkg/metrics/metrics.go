// Package metrics предоставляет интерфейс и реализации для сбора метрик.
// Реализации: PrometheusCollector (экспорт через /metrics), NopCollector.
package metrics

import "time"

// Collector определяет интерфейс для записи метрик логирования и алертинга.
// Реализации должны быть безопасны для конкурентного использования:
// методы вызываются из обработчиков запросов и из диспетчера алертов.
type Collector interface {
	// RecordLogWrite записывает факт записи лог-строки указанного уровня.
	RecordLogWrite(level string)

	// RecordDispatch записывает результат отправки алерта во внешний канал.
	RecordDispatch(success bool, duration time.Duration)

	// RecordRequest записывает обработанный HTTP запрос.
	// Путь намеренно не используется как label — высокая кардинальность.
	RecordRequest(method string, status int, duration time.Duration)
}
