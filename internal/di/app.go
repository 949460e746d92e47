// Package di собирает граф зависимостей приложения через Wire DI.
package di

import (
	"context"

	"github.com/AayushBarhate/backend/internal/config"
	"github.com/AayushBarhate/backend/internal/pkg/logging"
	"github.com/AayushBarhate/backend/internal/server"
)

// App содержит инициализированные зависимости приложения.
// Создаётся через Wire DI в InitializeApp().
//
// Все поля инициализируются через провайдеры в providers.go.
// При добавлении новых зависимостей:
// 1. Добавить поле в App struct
// 2. Создать провайдер в providers.go
// 3. Добавить провайдер в ProviderSet в wire.go
// 4. Перегенерировать wire_gen.go: go generate ./internal/di/...
type App struct {
	// Config содержит конфигурацию приложения.
	// Передаётся извне через InitializeApp().
	Config *config.Config

	// Logger — фасад структурированного логирования: файлы + алерты.
	// Создаётся через ProvideLoggerService.
	Logger logging.AppLogger

	// Server — HTTP сервер с middleware логирования.
	// Создаётся через ProvideServer.
	Server *server.Server

	// TracerShutdown завершает OTel TracerProvider и отправляет
	// буферизированные span-ы. Если трейсинг отключён — nop function.
	TracerShutdown func(context.Context) error
}
