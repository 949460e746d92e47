package logging

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// mockDispatcher собирает отправленные события.
type mockDispatcher struct {
	mu     sync.Mutex
	events []Event
}

func (m *mockDispatcher) Dispatch(_ context.Context, event Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

func (m *mockDispatcher) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events)
}

func (m *mockDispatcher) last() Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.events[len(m.events)-1]
}

// newTestService создаёт Service поверх временной директории.
func newTestService(t *testing.T) (*Service, *mockDispatcher, string) {
	t.Helper()
	dir := t.TempDir()
	sink, err := NewFileSink(dir)
	if err != nil {
		t.Fatalf("NewFileSink() error = %v", err)
	}
	t.Cleanup(func() { _ = sink.Close() })

	dispatcher := &mockDispatcher{}
	svc := NewService("test", sink, dispatcher, nil)
	return svc, dispatcher, dir
}

// countLines возвращает количество непустых строк в лог-файле.
// Отсутствующий файл считается пустым.
func countLines(t *testing.T, dir, name string) int {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if os.IsNotExist(err) {
		return 0
	}
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", name, err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return 0
	}
	return len(lines)
}

func TestService_Info_WritesGeneralOnly(t *testing.T) {
	svc, dispatcher, dir := newTestService(t)

	if err := svc.Info("hello", nil); err != nil {
		t.Fatalf("Info() error = %v", err)
	}

	if got := countLines(t, dir, GeneralLogName); got != 1 {
		t.Errorf("общий лог: %d строк, ожидалась 1", got)
	}
	if got := countLines(t, dir, ErrorLogName); got != 0 {
		t.Errorf("лог ошибок: %d строк, ожидалось 0", got)
	}
	// Info по умолчанию не отправляет алерт.
	if dispatcher.count() != 0 {
		t.Errorf("dispatch вызван %d раз, ожидалось 0", dispatcher.count())
	}
}

func TestService_Error_WritesBothSinksOnce(t *testing.T) {
	svc, dispatcher, dir := newTestService(t)

	if err := svc.Error("boom", nil); err != nil {
		t.Fatalf("Error() error = %v", err)
	}

	if got := countLines(t, dir, GeneralLogName); got != 1 {
		t.Errorf("общий лог: %d строк, ожидалась 1", got)
	}
	if got := countLines(t, dir, ErrorLogName); got != 1 {
		t.Errorf("лог ошибок: %d строк, ожидалась 1", got)
	}
	if dispatcher.count() != 1 {
		t.Errorf("dispatch вызван %d раз, ожидался 1", dispatcher.count())
	}
}

func TestService_Critical_Dispatches(t *testing.T) {
	svc, dispatcher, _ := newTestService(t)

	if err := svc.Critical("down", Fields{F("component", "db")}); err != nil {
		t.Fatalf("Critical() error = %v", err)
	}
	if dispatcher.count() != 1 {
		t.Fatalf("dispatch вызван %d раз, ожидался 1", dispatcher.count())
	}
	if got := dispatcher.last().Level; got != LevelCritical {
		t.Errorf("Level = %v, want %v", got, LevelCritical)
	}
}

func TestService_Log_ExplicitNotifyOverride(t *testing.T) {
	svc, dispatcher, _ := newTestService(t)

	// Error с notify=false — запись есть, алерта нет.
	if err := svc.Log(LevelError, "quiet error", nil, false); err != nil {
		t.Fatalf("Log() error = %v", err)
	}
	if dispatcher.count() != 0 {
		t.Errorf("dispatch вызван %d раз, ожидалось 0", dispatcher.count())
	}

	// Info с notify=true — алерт уходит.
	if err := svc.Log(LevelInfo, "loud info", nil, true); err != nil {
		t.Fatalf("Log() error = %v", err)
	}
	if dispatcher.count() != 1 {
		t.Errorf("dispatch вызван %d раз, ожидался 1", dispatcher.count())
	}
}

func TestService_RedactsSensitiveKeys(t *testing.T) {
	svc, dispatcher, _ := newTestService(t)

	fields := Fields{
		F("user_id", "u1"),
		F("PASSWORD", "hunter2"),
		F("api_key", "abc"),
		F("details", map[string]any{"token": "x", "device": "tv"}),
	}
	if err := svc.Log(LevelWarning, "login", fields, true); err != nil {
		t.Fatalf("Log() error = %v", err)
	}

	event := dispatcher.last()
	if _, ok := event.Fields.Get("PASSWORD"); ok {
		t.Error("PASSWORD не должен попадать в событие")
	}
	if _, ok := event.Fields.Get("api_key"); ok {
		t.Error("api_key не должен попадать в событие")
	}
	details, ok := event.Fields.Get("details")
	if !ok {
		t.Fatal("details должен сохраниться")
	}
	m := details.(map[string]any)
	if _, ok := m["token"]; ok {
		t.Error("вложенный token не должен попадать в событие")
	}
	if m["device"] != "tv" {
		t.Errorf("device = %v, want tv", m["device"])
	}
}

func TestService_LogAPICall_Escalation(t *testing.T) {
	svc, dispatcher, dir := newTestService(t)

	// Успешный вызов — INFO, без алерта.
	if err := svc.LogAPICall("/api/calls", "GET", 200, "u1", 12.5, "203.0.113.9"); err != nil {
		t.Fatalf("LogAPICall() error = %v", err)
	}
	if dispatcher.count() != 0 {
		t.Errorf("dispatch после 200: %d, ожидалось 0", dispatcher.count())
	}
	if got := countLines(t, dir, ErrorLogName); got != 0 {
		t.Errorf("лог ошибок после 200: %d строк, ожидалось 0", got)
	}

	// 500 — эскалация до ERROR: запись в оба файла и алерт.
	if err := svc.LogAPICall("/api/calls", "POST", 500, "", 44.1, "203.0.113.9"); err != nil {
		t.Fatalf("LogAPICall() error = %v", err)
	}
	if dispatcher.count() != 1 {
		t.Errorf("dispatch после 500: %d, ожидался 1", dispatcher.count())
	}
	if got := countLines(t, dir, ErrorLogName); got != 1 {
		t.Errorf("лог ошибок после 500: %d строк, ожидалась 1", got)
	}
	event := dispatcher.last()
	if event.Level != LevelError {
		t.Errorf("Level = %v, want %v", event.Level, LevelError)
	}
	if !strings.HasPrefix(event.Message, "API Error:") {
		t.Errorf("Message = %q, ожидался префикс API Error:", event.Message)
	}
	if status, _ := event.Fields.Get("status_code"); status != 500 {
		t.Errorf("status_code = %v, want 500", status)
	}
}

func TestService_LogExternalServiceEvent_ErrorAlwaysDispatches(t *testing.T) {
	svc, dispatcher, _ := newTestService(t)

	// Без ошибки — INFO, алерта нет.
	if err := svc.LogExternalServiceEvent("Twilio", "call.completed", "CA123", "completed", ""); err != nil {
		t.Fatalf("LogExternalServiceEvent() error = %v", err)
	}
	if dispatcher.count() != 0 {
		t.Errorf("dispatch без ошибки: %d, ожидалось 0", dispatcher.count())
	}

	// С ошибкой — алерт уходит всегда.
	if err := svc.LogExternalServiceEvent("Twilio", "call.failed", "CA124", "", "carrier unreachable"); err != nil {
		t.Fatalf("LogExternalServiceEvent() error = %v", err)
	}
	if dispatcher.count() != 1 {
		t.Fatalf("dispatch с ошибкой: %d, ожидался 1", dispatcher.count())
	}
	event := dispatcher.last()
	if event.Level != LevelError {
		t.Errorf("Level = %v, want %v", event.Level, LevelError)
	}
	if errField, ok := event.Fields.Get("error"); !ok || errField != "carrier unreachable" {
		t.Errorf("error = %v, want carrier unreachable", errField)
	}
}

func TestService_LogUserAction(t *testing.T) {
	svc, _, dir := newTestService(t)

	if err := svc.LogUserAction("u42", "channel_change", Fields{F("device_type", "tv")}, "10.0.0.5"); err != nil {
		t.Fatalf("LogUserAction() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, GeneralLogName))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	line := string(data)
	if !strings.Contains(line, "User action: channel_change by user u42 from 10.0.0.5") {
		t.Errorf("неожиданная строка лога: %q", line)
	}
	if !strings.Contains(line, "| INFO     |") {
		t.Errorf("ожидался уровень INFO с выравниванием: %q", line)
	}
}

func TestService_LogSystemEvent_Levels(t *testing.T) {
	svc, dispatcher, dir := newTestService(t)

	if err := svc.LogSystemEvent("Application starting up", Fields{F("port", 3001)}, LevelInfo, false); err != nil {
		t.Fatalf("LogSystemEvent() error = %v", err)
	}
	if err := svc.LogSystemEvent("disk nearly full", nil, LevelWarning, true); err != nil {
		t.Fatalf("LogSystemEvent() error = %v", err)
	}

	if got := countLines(t, dir, GeneralLogName); got != 2 {
		t.Errorf("общий лог: %d строк, ожидалось 2", got)
	}
	if dispatcher.count() != 1 {
		t.Errorf("dispatch: %d, ожидался 1", dispatcher.count())
	}
	if got := dispatcher.last().Message; got != "System Event: disk nearly full" {
		t.Errorf("Message = %q", got)
	}
}

func TestService_DispatchAfterWrite(t *testing.T) {
	// Событие получает timestamp в UTC и источник фасада.
	svc, dispatcher, _ := newTestService(t)
	fixed := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	if err := svc.Warning("clock check", nil); err != nil {
		t.Fatalf("Warning() error = %v", err)
	}
	event := dispatcher.last()
	if !event.Time.Equal(fixed) {
		t.Errorf("Time = %v, want %v", event.Time, fixed)
	}
	if event.Source != "test" {
		t.Errorf("Source = %q, want test", event.Source)
	}
}
