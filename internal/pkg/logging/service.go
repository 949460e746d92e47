package logging

import (
	"context"
	"fmt"
	"time"

	"github.com/AayushBarhate/backend/internal/pkg/metrics"
)

// DefaultSourceName — имя логгера-источника по умолчанию.
const DefaultSourceName = "backend"

// Service — основная реализация AppLogger: пишет в FileSink и отправляет
// подмножество событий через Dispatcher.
//
// Безопасен для конкурентного использования. Запись в файл выполняется
// первой и безусловно; отправка алерта идёт после и независимо — её сбой
// не влияет на результат вызова и не откатывает запись. Файловый sink и
// диспетчер не разделяют блокировок.
type Service struct {
	source     string
	sink       *FileSink
	dispatcher Dispatcher
	collector  metrics.Collector

	// now подменяется в тестах.
	now func() time.Time
}

// NewService создаёт фасад логирования.
// При nil dispatcher алерты отключены; при nil collector метрики не пишутся.
func NewService(source string, sink *FileSink, dispatcher Dispatcher, collector metrics.Collector) *Service {
	if source == "" {
		source = DefaultSourceName
	}
	if dispatcher == nil {
		dispatcher = nopDispatcher{}
	}
	if collector == nil {
		collector = metrics.NewNopCollector()
	}
	return &Service{
		source:     source,
		sink:       sink,
		dispatcher: dispatcher,
		collector:  collector,
		now:        time.Now,
	}
}

// Close закрывает файловый sink. Shutdown hook приложения.
func (s *Service) Close() error {
	return s.sink.Close()
}

// log — общий путь всех записей: redaction, файл, метрика, алерт.
func (s *Service) log(level Level, msg string, fields Fields, notify bool) error {
	event := Event{
		Time:    s.now().UTC(),
		Level:   level,
		Message: msg,
		Fields:  fields.Redact(),
		Source:  s.source,
	}

	line := FormatLine(event.Time, event.Level, event.Source, event.Message)
	if err := s.sink.Append(level, line); err != nil {
		// Файловая запись — несущая: ошибка уходит вызывающему.
		return err
	}
	s.collector.RecordLogWrite(level.String())

	if notify {
		// Отправка после записи; диспетчер потребляет свои сбои сам.
		s.dispatcher.Dispatch(context.Background(), event)
	}
	return nil
}

// Info записывает сообщение уровня INFO. Алерт по умолчанию не отправляется.
func (s *Service) Info(msg string, fields Fields) error {
	return s.log(LevelInfo, msg, fields, false)
}

// Warning записывает сообщение уровня WARNING и отправляет алерт.
func (s *Service) Warning(msg string, fields Fields) error {
	return s.log(LevelWarning, msg, fields, true)
}

// Error записывает сообщение уровня ERROR и отправляет алерт.
func (s *Service) Error(msg string, fields Fields) error {
	return s.log(LevelError, msg, fields, true)
}

// Critical записывает сообщение уровня CRITICAL и отправляет алерт.
func (s *Service) Critical(msg string, fields Fields) error {
	return s.log(LevelCritical, msg, fields, true)
}

// Log записывает сообщение указанного уровня с явным флагом отправки.
func (s *Service) Log(level Level, msg string, fields Fields, notify bool) error {
	return s.log(level, msg, fields, notify)
}

// LogUserAction записывает действие пользователя со структурированными данными.
func (s *Service) LogUserAction(userID, action string, details Fields, clientIP string) error {
	fields := Fields{
		F("user_id", userID),
		F("action", action),
		F("timestamp", s.now().UTC().Format(time.RFC3339)),
	}
	if clientIP != "" {
		fields = append(fields, F("client_ip", clientIP))
	}
	fields = append(fields, details...)

	msg := fmt.Sprintf("User action: %s by user %s", action, userID)
	if clientIP != "" {
		msg += " from " + clientIP
	}
	return s.Info(msg, fields)
}

// LogAPICall записывает обработанный API вызов с метриками производительности.
// При statusCode >= 400 запись эскалируется до ERROR и отправляется алерт.
func (s *Service) LogAPICall(endpoint, method string, statusCode int, userID string, responseTimeMS float64, clientIP string) error {
	fields := Fields{
		F("endpoint", endpoint),
		F("method", method),
		F("status_code", statusCode),
	}
	if userID != "" {
		fields = append(fields, F("user_id", userID))
	}
	if responseTimeMS > 0 {
		fields = append(fields, F("response_time_ms", responseTimeMS))
	}
	if clientIP != "" {
		fields = append(fields, F("client_ip", clientIP))
	}
	fields = append(fields, F("timestamp", s.now().UTC().Format(time.RFC3339)))

	msg := fmt.Sprintf("%s %s -> %d", method, endpoint, statusCode)
	if responseTimeMS > 0 {
		msg += fmt.Sprintf(" (%.2fms)", responseTimeMS)
	}
	if clientIP != "" {
		msg += " from " + clientIP
	}

	if statusCode >= 400 {
		return s.Error("API Error: "+msg, fields)
	}
	return s.Info("API Call: "+msg, fields)
}

// LogExternalServiceEvent записывает событие внешнего сервиса (телефония,
// очередь задач и т.п.).
//
// Правило принудительной отправки: при непустом errMsg алерт уходит
// ВСЕГДА, независимо от уровневых default-ов. Это осознанная политика —
// сбои внешних интеграций не должны зависеть от намерений вызывающего.
func (s *Service) LogExternalServiceEvent(service, eventType, reference, status, errMsg string) error {
	fields := Fields{
		F("service", service),
		F("event_type", eventType),
	}
	if reference != "" {
		fields = append(fields, F("reference", reference))
	}
	if status != "" {
		fields = append(fields, F("status", status))
	}
	fields = append(fields, F("timestamp", s.now().UTC().Format(time.RFC3339)))

	if errMsg != "" {
		fields = append(fields, F("error", errMsg))
		msg := fmt.Sprintf("%s Error: %s - %s", service, eventType, errMsg)
		return s.log(LevelError, msg, fields, true)
	}

	msg := fmt.Sprintf("%s Event: %s", service, eventType)
	if status != "" {
		msg += fmt.Sprintf(" (Status: %s)", status)
	}
	return s.Info(msg, fields)
}

// LogSystemEvent записывает системное событие (старт, остановка, фоновые
// задачи) с указанным уровнем и явным флагом отправки алерта.
func (s *Service) LogSystemEvent(event string, details Fields, level Level, notify bool) error {
	fields := Fields{
		F("event", event),
		F("timestamp", s.now().UTC().Format(time.RFC3339)),
	}
	fields = append(fields, details...)
	return s.log(level, "System Event: "+event, fields, notify)
}
