// Package logging предоставляет фасад структурированного логирования
// с записью в ротируемые файлы и best-effort отправкой алертов во
// внешний канал.
//
// Фасад создаётся один раз в composition root приложения и передаётся
// потребителям через интерфейс AppLogger. Глобального экземпляра нет;
// жизненный цикл привязан к старту/остановке процесса, файлы
// закрываются через Close.
package logging

import "context"

// AppLogger определяет узкий интерфейс логирования для потребителей
// (middleware, обработчики, фоновые задачи). Реализации: Service, NopLogger.
//
// Все методы пишут запись в файловый sink безусловно; отправка во внешний
// канал зависит от метода и параметров. Возвращаемая ошибка — только
// локальный I/O сбой записи в файл: он фатален по контракту (потеря
// audit-лога хуже видимого отказа). Сбой отправки алерта никогда не
// возвращается и не влияет на результат вызова.
type AppLogger interface {
	// Info записывает информационное сообщение. По умолчанию НЕ отправляет алерт.
	Info(msg string, fields Fields) error

	// Warning записывает предупреждение и отправляет алерт.
	Warning(msg string, fields Fields) error

	// Error записывает ошибку и отправляет алерт.
	Error(msg string, fields Fields) error

	// Critical записывает критическое событие и отправляет алерт.
	Critical(msg string, fields Fields) error

	// Log записывает сообщение указанного уровня с явным управлением
	// отправкой алерта (override уровневых default-ов).
	Log(level Level, msg string, fields Fields, notify bool) error

	// LogUserAction записывает действие пользователя (уровень INFO, без алерта).
	LogUserAction(userID, action string, details Fields, clientIP string) error

	// LogAPICall записывает обработанный API вызов. При statusCode >= 400
	// эскалирует до ERROR (с алертом).
	LogAPICall(endpoint, method string, statusCode int, userID string, responseTimeMS float64, clientIP string) error

	// LogExternalServiceEvent записывает событие внешнего сервиса.
	// Правило (намеренная политика, не побочный эффект уровня): при
	// непустом errMsg алерт отправляется ВСЕГДА.
	LogExternalServiceEvent(service, eventType, reference, status, errMsg string) error

	// LogSystemEvent записывает системное событие (старт, остановка и т.п.)
	// с указанным уровнем и явным флагом отправки алерта.
	LogSystemEvent(event string, details Fields, level Level, notify bool) error
}

// Dispatcher отправляет лог-событие во внешний канал алертинга.
// Реализации: alerting.DiscordAlerter, alerting.NopAlerter.
//
// Контракт: Dispatch никогда не паникует и ничего не возвращает —
// любые сбои доставки (сеть, не-2xx, таймаут) потребляются внутри
// реализации. Dispatch не должен вызывать логирующий фасад, чтобы
// исключить петлю обратной связи, когда сломан сам внешний канал.
type Dispatcher interface {
	Dispatch(ctx context.Context, event Event)
}

// nopDispatcher используется фасадом, когда внешний канал не настроен.
type nopDispatcher struct{}

func (nopDispatcher) Dispatch(context.Context, Event) {}
