package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Имена и параметры ротации лог-файлов. Фиксированы намеренно:
// размеры и количество backup не являются runtime-конфигурацией.
const (
	// GeneralLogName — общий лог, все записи уровня INFO и выше.
	GeneralLogName = "app.log"
	// ErrorLogName — лог ошибок, только ERROR и CRITICAL.
	ErrorLogName = "errors.log"

	generalMaxSizeMB  = 10
	generalMaxBackups = 5
	errorMaxSizeMB    = 5
	errorMaxBackups   = 3
)

// FileSink пишет отформатированные строки в два ротируемых файла:
// общий (>= INFO) и файл ошибок (>= ERROR). Ротация выполняется lumberjack
// при превышении максимального размера; backup сверх лимита удаляются,
// начиная с самых старых.
//
// Безопасен для конкурентного использования: lumberjack сериализует
// записи в каждый файл собственным мьютексом, общих блокировок между
// файлами нет.
type FileSink struct {
	general io.WriteCloser
	errlog  io.WriteCloser
}

// NewFileSink создаёт sink в указанной директории, создавая её при
// необходимости. Живёт весь жизненный цикл процесса; закрывается
// через Close при остановке приложения.
func NewFileSink(logsDir string) (*FileSink, error) {
	if logsDir == "" {
		return nil, ErrLogsDirRequired
	}
	if err := os.MkdirAll(logsDir, 0750); err != nil {
		return nil, fmt.Errorf("logging: создание директории логов %s: %w", logsDir, err)
	}

	return &FileSink{
		general: newRotatingWriter(filepath.Join(logsDir, GeneralLogName), generalMaxSizeMB, generalMaxBackups),
		errlog:  newRotatingWriter(filepath.Join(logsDir, ErrorLogName), errorMaxSizeMB, errorMaxBackups),
	}, nil
}

// newRotatingWriter создаёт ротируемый writer.
// Compress и MaxAge не используются: audit-файлы хранятся как есть,
// ограничение только по размеру и количеству.
func newRotatingWriter(path string, maxSizeMB, maxBackups int) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}
}

// Append записывает строку в общий файл и, для уровней ERROR и выше,
// в файл ошибок. Каждая запись попадает в каждый подходящий файл ровно
// один раз.
//
// Ошибка локального I/O (диск заполнен, нет прав) возвращается наверх:
// молчаливая потеря audit-лога хуже видимого отказа.
func (s *FileSink) Append(level Level, line string) error {
	if _, err := io.WriteString(s.general, line+"\n"); err != nil {
		return fmt.Errorf("logging: запись в %s: %w", GeneralLogName, err)
	}
	if level >= LevelError {
		if _, err := io.WriteString(s.errlog, line+"\n"); err != nil {
			return fmt.Errorf("logging: запись в %s: %w", ErrorLogName, err)
		}
	}
	return nil
}

// Close закрывает оба файла. Вызывается из shutdown hook приложения.
func (s *FileSink) Close() error {
	return errors.Join(s.general.Close(), s.errlog.Close())
}
