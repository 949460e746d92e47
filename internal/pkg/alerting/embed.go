package alerting

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AayushBarhate/backend/internal/pkg/logging"
)

// maxFieldValueLen — максимальная длина значения поля embed.
// Более длинные значения усекаются с маркером "...".
const maxFieldValueLen = 1000

// criticalIconURL — иконка для CRITICAL алертов (footer и аватар бота).
const criticalIconURL = "https://cdn.discordapp.com/emojis/1234567890123456789.png"

// Embed — rich-сообщение канала в нативной схеме Discord.
// Живёт только на время одной отправки.
type Embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Color       int          `json:"color"`
	Timestamp   string       `json:"timestamp"`
	Footer      EmbedFooter  `json:"footer"`
	Fields      []EmbedField `json:"fields"`
}

// EmbedFooter — подпись embed.
type EmbedFooter struct {
	Text    string `json:"text"`
	IconURL string `json:"icon_url,omitempty"`
}

// EmbedField — одно поле embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// webhookPayload — тело POST запроса к webhook.
type webhookPayload struct {
	Embeds    []Embed `json:"embeds"`
	Username  string  `json:"username"`
	AvatarURL string  `json:"avatar_url,omitempty"`
}

// levelStyle — презентационные атрибуты уровня.
type levelStyle struct {
	color int
	emoji string
	name  string
}

// styleFor возвращает цвет/иконку/имя для уровня.
// Неизвестный уровень отображается серым с его строковым представлением.
func styleFor(level logging.Level) levelStyle {
	switch level {
	case logging.LevelInfo:
		return levelStyle{color: 0x3498db, emoji: "🔵", name: "Information"} // синий
	case logging.LevelWarning:
		return levelStyle{color: 0xf39c12, emoji: "🟠", name: "Warning"} // оранжевый
	case logging.LevelError:
		return levelStyle{color: 0xe74c3c, emoji: "🔴", name: "Error"} // красный
	case logging.LevelCritical:
		return levelStyle{color: 0x8b0000, emoji: "🔥", name: "Critical"} // тёмно-красный
	default:
		return levelStyle{color: 0x95a5a6, emoji: "⚪", name: level.String()}
	}
}

// fieldGroup — категория поля embed. Группы выводятся в фиксированном
// порядке: user → network → error → other, с визуальным разделителем
// между непустыми соседними группами.
type fieldGroup int

const (
	groupUser fieldGroup = iota
	groupNetwork
	groupError
	groupOther
)

// groupOrder — порядок вывода групп.
var groupOrder = []fieldGroup{groupUser, groupNetwork, groupError, groupOther}

// Членство ключей в группах.
var (
	networkKeys = map[string]fieldGroup{
		"client_ip": groupNetwork, "ip_type": groupNetwork, "ip_version": groupNetwork,
		"remote_addr": groupNetwork, "endpoint": groupNetwork, "method": groupNetwork,
		"status_code": groupNetwork, "response_time_ms": groupNetwork,
		"user_id": groupUser, "action": groupUser, "device_type": groupUser,
		"exception_type": groupError, "exception_message": groupError,
		"error_message": groupError, "error_type": groupError,
	}

	// monospaceKeys — ключи, значения которых оборачиваются в `code` маркер.
	monospaceKeys = map[string]struct{}{
		"client_ip": {}, "user_id": {}, "endpoint": {}, "method": {}, "status_code": {},
	}
)

// categorize возвращает группу для ключа payload.
// Чистая функция — тестируется отдельно от транспорта.
func categorize(key string) fieldGroup {
	if g, ok := networkKeys[key]; ok {
		return g
	}
	return groupOther
}

// humanizeKey превращает ключ payload в имя поля:
// подчёркивания → пробелы, каждое слово с заглавной буквы.
func humanizeKey(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

// formatValue приводит значение к строке, усекает до maxFieldValueLen
// и оборачивает в monospace маркер для ключей из monospaceKeys.
func formatValue(key string, value any) string {
	s := fmt.Sprintf("%v", value)
	if runes := []rune(s); len(runes) > maxFieldValueLen {
		s = string(runes[:maxFieldValueLen-3]) + "..."
	}
	if _, ok := monospaceKeys[key]; ok {
		return "`" + s + "`"
	}
	return s
}

// isEmptyValue повторяет семантику «пустого» значения payload:
// nil, пустая строка, false, числовой ноль и пустой словарь пропускаются.
func isEmptyValue(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case bool:
		return !value
	case int:
		return value == 0
	case int32:
		return value == 0
	case int64:
		return value == 0
	case float32:
		return value == 0
	case float64:
		return value == 0
	case map[string]any:
		return len(value) == 0
	default:
		return false
	}
}

// separatorField — пустое поле-разделитель между группами
// (zero-width space, на всю ширину).
func separatorField() EmbedField {
	return EmbedField{Name: "​", Value: "​", Inline: false}
}

// buildFields распределяет непустые поля payload по группам и собирает
// итоговый список с разделителями. Порядок полей внутри группы —
// порядок payload. Пустой результат заменяется fallback-полем с именем
// окружения.
func buildFields(fields logging.Fields, environment string) []EmbedField {
	grouped := make(map[fieldGroup][]EmbedField, len(groupOrder))
	for _, f := range fields {
		if isEmptyValue(f.Value) {
			continue
		}
		g := categorize(f.Key)
		grouped[g] = append(grouped[g], EmbedField{
			Name:   humanizeKey(f.Key),
			Value:  formatValue(f.Key, f.Value),
			Inline: true,
		})
	}

	var out []EmbedField
	for _, g := range groupOrder {
		if len(grouped[g]) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, separatorField())
		}
		out = append(out, grouped[g]...)
	}

	if len(out) == 0 {
		out = append(out, EmbedField{
			Name:   "Environment",
			Value:  "`" + strings.ToUpper(environment) + "`",
			Inline: true,
		})
	}
	return out
}

// buildPayload собирает полный webhook payload из лог-события.
func buildPayload(event logging.Event, appName, environment string) webhookPayload {
	style := styleFor(event.Level)

	embed := Embed{
		Title:       fmt.Sprintf("%s %s Alert", style.emoji, style.name),
		Description: "**" + event.Message + "**",
		Color:       style.color,
		Timestamp:   event.Time.UTC().Format("2006-01-02T15:04:05.000Z"),
		Footer: EmbedFooter{
			Text: fmt.Sprintf("%s • %s", appName, strings.ToUpper(environment)),
		},
		Fields: buildFields(event.Fields, environment),
	}

	payload := webhookPayload{
		Embeds:   []Embed{embed},
		Username: "🤖 " + appName,
	}
	if event.Level == logging.LevelCritical {
		embed.Footer.IconURL = criticalIconURL
		payload.Embeds[0] = embed
		payload.AvatarURL = criticalIconURL
	}
	return payload
}
