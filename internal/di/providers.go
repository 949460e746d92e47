package di

import (
	"context"
	"net/http"

	"github.com/AayushBarhate/backend/internal/config"
	"github.com/AayushBarhate/backend/internal/pkg/alerting"
	"github.com/AayushBarhate/backend/internal/pkg/logging"
	"github.com/AayushBarhate/backend/internal/pkg/metrics"
	"github.com/AayushBarhate/backend/internal/pkg/tracing"
	"github.com/AayushBarhate/backend/internal/server"
)

// MetricsComponents связывает коллектор и HTTP handler одного registry.
// Нужен потому, что Handler() существует только у Prometheus реализации,
// а провайдеры Wire возвращают по одному значению.
type MetricsComponents struct {
	// Collector — реализация сбора метрик (Prometheus или Nop).
	Collector metrics.Collector

	// Handler — handler для /metrics. Nil когда метрики отключены.
	Handler http.Handler
}

// ProvideMetricsComponents создаёт коллектор метрик по конфигурации.
// При отключённых метриках — NopCollector без handler-а.
func ProvideMetricsComponents(cfg *config.Config) (*MetricsComponents, error) {
	if !cfg.Metrics.Enabled {
		return &MetricsComponents{Collector: metrics.NewNopCollector()}, nil
	}
	prom, err := metrics.NewPrometheusCollector(cfg.Metrics.Config())
	if err != nil {
		return nil, err
	}
	return &MetricsComponents{Collector: prom, Handler: prom.Handler()}, nil
}

// ProvideMetricsCollector извлекает коллектор из MetricsComponents.
func ProvideMetricsCollector(mc *MetricsComponents) metrics.Collector {
	return mc.Collector
}

// ProvideFileSink создаёт файловый sink логов с ротацией.
// Cleanup-функция закрывает оба файла при завершении приложения.
func ProvideFileSink(cfg *config.Config) (*logging.FileSink, func(), error) {
	sink, err := logging.NewFileSink(cfg.Logging.LogsDir)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = sink.Close()
	}
	return sink, cleanup, nil
}

// ProvideDispatcher создаёт диспетчер алертов на основе AlertingConfig.
// Если webhook не задан — NopAlerter: события пишутся только в файлы.
func ProvideDispatcher(cfg *config.Config, collector metrics.Collector) (logging.Dispatcher, error) {
	discordCfg := cfg.Alerting.DiscordConfig(cfg.App.Name, cfg.App.Environment)
	return alerting.NewDispatcher(discordCfg, collector)
}

// ProvideLoggerService создаёт фасад логирования приложения.
func ProvideLoggerService(cfg *config.Config, sink *logging.FileSink, dispatcher logging.Dispatcher, collector metrics.Collector) *logging.Service {
	return logging.NewService(cfg.Logging.Source, sink, dispatcher, collector)
}

// ProvideTracerShutdown инициализирует OTel TracerProvider.
// Если трейсинг отключён — nop shutdown function (нулевой overhead).
func ProvideTracerShutdown(cfg *config.Config) (func(context.Context) error, error) {
	tracingCfg := cfg.Tracing.Config(cfg.App.Name, cfg.App.Environment)
	return tracing.NewTracerProvider(tracingCfg, cfg.Logger)
}

// ProvideServer создаёт HTTP сервер приложения.
func ProvideServer(cfg *config.Config, logger *logging.Service, mc *MetricsComponents) *server.Server {
	return server.New(cfg.App.Port, cfg.App.Name, logger, mc.Collector, mc.Handler)
}
