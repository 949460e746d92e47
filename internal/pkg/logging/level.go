package logging

import (
	"fmt"
	"strings"
)

// Level — уровень критичности лог-записи.
type Level int

// Поддерживаемые уровни в порядке возрастания критичности.
const (
	// LevelInfo — значимые события (запросы, успешные операции).
	LevelInfo Level = iota
	// LevelWarning — recoverable проблемы, требующие внимания.
	LevelWarning
	// LevelError — ошибки выполнения.
	LevelError
	// LevelCritical — критические сбои (необработанные паники и т.п.).
	LevelCritical
)

// String возвращает каноническое имя уровня для лог-файлов и алертов.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// ParseLevel разбирает строковый уровень без учёта регистра.
// Неизвестное значение даёт LevelInfo — безопасный default,
// событие не теряется и не эскалируется.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warning", "warn":
		return LevelWarning
	case "error":
		return LevelError
	case "critical":
		return LevelCritical
	default:
		return LevelInfo
	}
}
