package tracing

import (
	"encoding/hex"
	"testing"
)

func TestGenerateRequestID_Format(t *testing.T) {
	id := GenerateRequestID()
	if len(id) != 32 {
		t.Fatalf("длина ID = %d, want 32 (%q)", len(id), id)
	}
	if _, err := hex.DecodeString(id); err != nil {
		t.Errorf("ID не является hex строкой: %q", id)
	}
}

func TestGenerateRequestID_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := GenerateRequestID()
		if _, dup := seen[id]; dup {
			t.Fatalf("повтор ID: %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestFallbackRequestID_Format(t *testing.T) {
	a := fallbackRequestID()
	b := fallbackRequestID()
	if len(a) != 32 || len(b) != 32 {
		t.Errorf("длина fallback ID: %d и %d, want 32", len(a), len(b))
	}
	if a == b {
		t.Errorf("fallback ID не уникальны: %q", a)
	}
}
