package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRecovery_LogsCriticalAndRepanics(t *testing.T) {
	logger := &mockLogger{}
	h := Recovery(logger)(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic("нет соединения с базой")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.RemoteAddr = "203.0.113.7:51000"

	func() {
		defer func() {
			if recover() == nil {
				t.Error("паника должна пробрасываться дальше")
			}
		}()
		h.ServeHTTP(httptest.NewRecorder(), req)
	}()

	if len(logger.criticals) != 1 {
		t.Fatalf("critical записей: %d, want 1", len(logger.criticals))
	}
	entry := logger.criticals[0]
	if entry.msg != "Unhandled panic on GET /api/items" {
		t.Errorf("msg = %q", entry.msg)
	}
	if got := fieldValue(entry.fields, "exception_type"); got != "string" {
		t.Errorf("exception_type = %v", got)
	}
	if got := fieldValue(entry.fields, "exception_message"); got != "нет соединения с базой" {
		t.Errorf("exception_message = %v", got)
	}
	if got := fieldValue(entry.fields, "client_ip"); got != "203.0.113.7" {
		t.Errorf("client_ip = %v", got)
	}
}

func TestRecovery_NoPanicPassesThrough(t *testing.T) {
	logger := &mockLogger{}
	h := Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusTeapot {
		t.Errorf("status = %d", rr.Code)
	}
	if len(logger.criticals) != 0 {
		t.Errorf("critical записей быть не должно: %+v", logger.criticals)
	}
}
