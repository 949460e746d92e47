package alerting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/AayushBarhate/backend/internal/pkg/logging"
	"github.com/AayushBarhate/backend/internal/pkg/metrics"
)

// DiscordAlerter отправляет лог-события в Discord webhook как rich embed.
// Реализует logging.Dispatcher.
type DiscordAlerter struct {
	config     DiscordConfig
	httpClient HTTPClient
	diag       io.Writer
	collector  metrics.Collector
}

// NewDiscordAlerter создаёт алертер для discord канала.
// Возвращает ошибку только при невалидной конфигурации: пустой
// WebhookURL валиден и даёт no-op диспетчер.
func NewDiscordAlerter(config DiscordConfig, collector metrics.Collector) (*DiscordAlerter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if collector == nil {
		collector = &metrics.NopCollector{}
	}
	return &DiscordAlerter{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		diag:       os.Stderr,
		collector:  collector,
	}, nil
}

// SetHTTPClient устанавливает HTTP клиент (для тестирования).
func (a *DiscordAlerter) SetHTTPClient(client HTTPClient) {
	a.httpClient = client
}

// SetDiagWriter устанавливает writer диагностики доставки (для тестирования).
// По умолчанию os.Stderr — не логирующий фасад, чтобы исключить петлю.
func (a *DiscordAlerter) SetDiagWriter(w io.Writer) {
	a.diag = w
}

// httpError — не-2xx ответ webhook.
type httpError struct {
	statusCode int
}

func (e *httpError) Error() string {
	return fmt.Sprintf("webhook returned status %d", e.statusCode)
}

// Dispatch отправляет событие в Discord. Никогда не возвращает ошибку
// и не паникует: любой сбой доставки печатается в diag writer и
// учитывается в метриках, после чего событие считается обработанным.
func (a *DiscordAlerter) Dispatch(ctx context.Context, event logging.Event) {
	if a.config.WebhookURL == "" {
		return
	}

	start := time.Now()
	err := a.send(ctx, event)
	duration := time.Since(start)

	if err != nil {
		fmt.Fprintf(a.diag, "Failed to send log to Discord: %v\n", err)
		a.collector.RecordDispatch(false, duration)
		return
	}
	a.collector.RecordDispatch(true, duration)
}

func (a *DiscordAlerter) send(ctx context.Context, event logging.Event) error {
	payload := buildPayload(event, a.config.AppName, a.config.Environment)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.config.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &httpError{statusCode: resp.StatusCode}
	}
	return nil
}
