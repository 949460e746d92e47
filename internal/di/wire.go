//go:build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/AayushBarhate/backend/internal/config"
	"github.com/AayushBarhate/backend/internal/pkg/logging"
)

//go:generate wire

// ProviderSet объединяет все провайдеры приложения.
// Используется в InitializeApp для построения графа зависимостей.
//
// При добавлении новых провайдеров:
// 1. Создать функцию провайдера в providers.go
// 2. Добавить её в ProviderSet
// 3. Перегенерировать: go generate ./internal/di/...
var ProviderSet = wire.NewSet(
	ProvideMetricsComponents,
	ProvideMetricsCollector,
	ProvideFileSink,
	ProvideDispatcher,
	ProvideLoggerService,
	ProvideTracerShutdown,
	ProvideServer,
	wire.Bind(new(logging.AppLogger), new(*logging.Service)),
	wire.Struct(new(App), "*"),
)

// InitializeApp создаёт и инициализирует App через Wire DI.
// Принимает внешний Config (загруженный через config.MustLoad()).
//
// Wire генерирует реализацию этой функции в wire_gen.go.
// Функция здесь является "заглушкой" с wire.Build() вызовом.
//
// Возвращаемая cleanup-функция закрывает файловый sink логов;
// вызывать её при завершении приложения.
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(ProviderSet)
	return nil, nil, nil // Wire заменит это на реальную реализацию
}
