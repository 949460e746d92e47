package logging

import "strings"

// Field — одна пара ключ/значение структурированного payload.
// Значение может быть строкой, числом, bool или вложенным map[string]any.
type Field struct {
	Key   string
	Value any
}

// Fields — упорядоченный список полей. Порядок добавления сохраняется
// при записи и при отправке алерта.
type Fields []Field

// F — короткий конструктор поля.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// sensitiveKeys — ключи, которые никогда не попадают ни в файл, ни в алерт.
// Сравнение без учёта регистра.
var sensitiveKeys = map[string]struct{}{
	"password":   {},
	"token":      {},
	"secret":     {},
	"key":        {},
	"auth_token": {},
	"api_key":    {},
}

// IsSensitiveKey сообщает, относится ли ключ к чувствительным данным.
func IsSensitiveKey(key string) bool {
	_, ok := sensitiveKeys[strings.ToLower(key)]
	return ok
}

// Get возвращает значение поля по ключу и признак его наличия.
func (f Fields) Get(key string) (any, bool) {
	for _, field := range f {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}

// Redact возвращает копию без чувствительных ключей.
// Вложенные map[string]any фильтруются рекурсивно.
func (f Fields) Redact() Fields {
	if f == nil {
		return nil
	}
	out := make(Fields, 0, len(f))
	for _, field := range f {
		if IsSensitiveKey(field.Key) {
			continue
		}
		field.Value = redactValue(field.Value)
		out = append(out, field)
	}
	return out
}

// redactValue фильтрует чувствительные ключи во вложенных словарях.
func redactValue(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	out := make(map[string]any, len(m))
	for k, val := range m {
		if IsSensitiveKey(k) {
			continue
		}
		out[k] = redactValue(val)
	}
	return out
}
