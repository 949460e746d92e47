// Package main содержит точку входа для приложения backend.
// Приложение поднимает HTTP сервер с логированием запросов в файлы
// и отправкой алертов в Discord.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AayushBarhate/backend/internal/config"
	"github.com/AayushBarhate/backend/internal/di"
	"github.com/AayushBarhate/backend/internal/pkg/logging"
)

// shutdownFlushTimeout — время на экспорт буферизированных span-ов при завершении.
const shutdownFlushTimeout = 5 * time.Second

func main() {
	os.Exit(run())
}

// run выполняет жизненный цикл приложения и возвращает exit code.
// Выделен из main, чтобы defer-ы отрабатывали до os.Exit.
func run() int {
	cfg, err := config.MustLoad()
	if err != nil {
		slog.Error("Ошибка загрузки конфигурации", slog.String("error", err.Error()))
		return 1
	}
	l := cfg.Logger

	app, cleanup, err := di.InitializeApp(cfg)
	if err != nil {
		l.Error("Ошибка инициализации приложения", slog.String("error", err.Error()))
		return 1
	}
	defer cleanup()

	if err = app.Logger.LogSystemEvent("Application starting up", logging.Fields{
		logging.F("port", cfg.App.Port),
		logging.F("environment", cfg.App.Environment),
	}, logging.LevelInfo, false); err != nil {
		l.Error("Ошибка записи стартового события", slog.String("error", err.Error()))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	l.Info("HTTP сервер запускается", slog.String("addr", app.Server.Addr()))
	serveErr := app.Server.Run(ctx)

	// Завершение: событие в лог и слив трейсов.
	code := 0
	if serveErr != nil {
		l.Error("Ошибка HTTP сервера", slog.String("error", serveErr.Error()))
		_ = app.Logger.LogSystemEvent("Application stopped with error", logging.Fields{
			logging.F("error_message", serveErr.Error()),
		}, logging.LevelError, true)
		code = 1
	} else {
		_ = app.Logger.LogSystemEvent("Application shutting down", nil, logging.LevelInfo, false)
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), shutdownFlushTimeout)
	defer cancel()
	if err = app.TracerShutdown(flushCtx); err != nil {
		l.Warn("Ошибка завершения трейсинга", slog.String("error", err.Error()))
	}

	return code
}
