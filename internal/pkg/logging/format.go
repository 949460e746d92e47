package logging

import (
	"fmt"
	"time"
)

// lineTimeLayout — формат локального времени в строке лог-файла.
const lineTimeLayout = "2006-01-02 15:04:05"

// Event — неизменяемая лог-запись. Создаётся фасадом на каждый вызов,
// синхронно потребляется файловым sink и (опционально) диспетчером алертов.
type Event struct {
	// Time — момент создания записи, UTC.
	Time time.Time

	// Level — уровень записи.
	Level Level

	// Message — человекочитаемое сообщение.
	Message string

	// Fields — структурированный payload. Уже очищен от чувствительных
	// ключей к моменту создания Event.
	Fields Fields

	// Source — имя логгера-источника.
	Source string
}

// FormatLine форматирует запись в строку лог-файла:
//
//	2024-01-15 10:30:00 | ERROR    | backend | Сообщение
//
// Временная метка — локальное время, уровень дополняется пробелами до 8 символов.
func FormatLine(t time.Time, level Level, source, message string) string {
	return fmt.Sprintf("%s | %-8s | %s | %s",
		t.Local().Format(lineTimeLayout), level.String(), source, message)
}
