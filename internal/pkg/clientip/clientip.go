// Package clientip определяет доверенный IP адрес клиента по данным
// соединения и proxy заголовкам, и классифицирует его.
//
// Политика выбора: предпочитается первый НЕ-приватный кандидат
// (сначала remote address соединения, затем proxy заголовки по порядку),
// иначе используется лучшее из доступного. Это намеренно понижает
// приоритет спуфабельных приватных адресов в пользу настоящего
// публичного IP клиента, но в dev/local окружениях, где всё приватное,
// всё равно даёт пригодное значение.
package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Unknown — значение, возвращаемое когда адрес клиента определить нельзя.
const Unknown = "unknown"

// Classification — категория IP адреса.
type Classification string

// Возможные классификации. Приоритет при пересечении диапазонов:
// loopback > private > multicast > public.
const (
	ClassLoopback  Classification = "loopback"
	ClassPrivate   Classification = "private"
	ClassMulticast Classification = "multicast"
	ClassPublic    Classification = "public"
	ClassInvalid   Classification = "invalid"
	ClassUnknown   Classification = "unknown"
)

// IPInfo содержит производные сведения об IP адресе.
// Вычисляется заново для каждого запроса — дешёвая чистая функция от строки.
type IPInfo struct {
	// Address — исходная строка адреса.
	Address string

	// Version — версия протокола: 4 или 6. Ноль если адрес не распарсился.
	Version int

	// Classification — категория адреса.
	Classification Classification
}

// proxyHeaders — фиксированный упорядоченный список proxy заголовков.
// X-Forwarded-For проверяется первым: его проставляет большинство
// reverse proxy. CF-Connecting-IP и True-Client-IP — Cloudflare.
var proxyHeaders = []string{
	"X-Forwarded-For",
	"X-Real-IP",
	"X-Client-IP",
	"CF-Connecting-IP",
	"True-Client-IP",
	"X-Forwarded",
}

// Resolve возвращает наиболее доверенный IP адрес клиента.
//
// Алгоритм:
//  1. Если remote address соединения — валидный и НЕ приватный IP, вернуть его.
//  2. Иначе просканировать proxy заголовки по порядку; для X-Forwarded-For
//     берётся первый (левый) элемент списка. Возвращается первое значение,
//     которое парсится как валидный не-приватный IP.
//  3. Иначе вернуть remote address как есть (даже приватный),
//     или "unknown" если адреса нет вовсе.
//
// remoteAddr принимается в форме "host:port" (http.Request.RemoteAddr)
// или как голый адрес.
func Resolve(remoteAddr string, header http.Header) string {
	host := stripPort(remoteAddr)

	if addr, err := netip.ParseAddr(host); err == nil && !isPrivateOrLocal(addr) {
		return host
	}

	for _, name := range proxyHeaders {
		value := header.Get(name)
		if value == "" {
			continue
		}
		// X-Forwarded-For может содержать цепочку "client, proxy1, proxy2" —
		// оригинальный клиент слева.
		candidate := strings.TrimSpace(strings.Split(value, ",")[0])
		addr, err := netip.ParseAddr(candidate)
		if err != nil {
			continue
		}
		if !isPrivateOrLocal(addr) {
			return candidate
		}
	}

	// Последний вариант: remote address даже если он приватный.
	if host != "" {
		return host
	}
	return Unknown
}

// Classify разбирает адрес и возвращает IPInfo.
// Неразбираемый вход даёт Classification=invalid, ошибки не возвращаются.
func Classify(address string) IPInfo {
	if address == "" || address == Unknown {
		return IPInfo{Address: address, Classification: ClassUnknown}
	}

	addr, err := netip.ParseAddr(address)
	if err != nil {
		return IPInfo{Address: address, Classification: ClassInvalid}
	}

	info := IPInfo{Address: address, Version: 6}
	if addr.Is4() || addr.Is4In6() {
		info.Version = 4
	}

	switch {
	case addr.IsLoopback():
		info.Classification = ClassLoopback
	case addr.IsPrivate() || addr.IsLinkLocalUnicast():
		info.Classification = ClassPrivate
	case addr.IsMulticast():
		info.Classification = ClassMulticast
	default:
		info.Classification = ClassPublic
	}
	return info
}

// isPrivateOrLocal сообщает, является ли адрес приватным, loopback
// или link-local. Такие адреса пропускаются при поиске публичного кандидата.
func isPrivateOrLocal(addr netip.Addr) bool {
	return addr.IsPrivate() || addr.IsLoopback() || addr.IsLinkLocalUnicast()
}

// stripPort убирает ":port" из remote address, если он есть.
// http.Request.RemoteAddr приходит в форме "ip:port", IPv6 — "[::1]:port".
func stripPort(remoteAddr string) string {
	if remoteAddr == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return remoteAddr
}
