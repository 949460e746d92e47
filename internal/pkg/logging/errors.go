package logging

import "errors"

// Ошибки конфигурации sink.
var (
	// ErrLogsDirRequired — директория для лог-файлов не указана.
	ErrLogsDirRequired = errors.New("logging: logs directory is required")
)
