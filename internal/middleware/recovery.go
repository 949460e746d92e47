package middleware

import (
	"fmt"
	"net/http"

	"github.com/AayushBarhate/backend/internal/pkg/clientip"
	"github.com/AayushBarhate/backend/internal/pkg/logging"
)

// Recovery возвращает middleware, перехватывающее паники обработчиков.
// Паника логируется как CRITICAL событие с типом и текстом исключения,
// после чего пробрасывается дальше — решение о судьбе процесса
// принимает вышестоящий слой, а не логгер.
func Recovery(logger logging.AppLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				ip := clientip.Resolve(r.RemoteAddr, r.Header)
				info := clientip.Classify(ip)

				fields := logging.Fields{
					logging.F("exception_type", fmt.Sprintf("%T", recovered)),
					logging.F("exception_message", fmt.Sprintf("%v", recovered)),
					logging.F("method", r.Method),
					logging.F("endpoint", r.URL.Path),
					logging.F("client_ip", ip),
					logging.F("ip_type", string(info.Classification)),
				}
				msg := fmt.Sprintf("Unhandled panic on %s %s", r.Method, r.URL.Path)
				// Ошибка записи здесь уже ничего не меняет: паника
				// пробрасывается в любом случае.
				_ = logger.Critical(msg, fields)

				panic(recovered)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
