package tracing

import (
	"errors"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Enabled:      true,
		Endpoint:     "http://jaeger:4318",
		ServiceName:  "backend",
		Version:      "1.0.0",
		Environment:  "test",
		Timeout:      5 * time.Second,
		SamplingRate: 1.0,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"валидная", func(c *Config) {}, nil},
		{"выключенная всегда валидна", func(c *Config) { *c = Config{} }, nil},
		{"без endpoint", func(c *Config) { c.Endpoint = "" }, ErrTracingEndpointRequired},
		{"endpoint без host", func(c *Config) { c.Endpoint = "http://" }, ErrTracingEndpointInvalidFormat},
		{"без service name", func(c *Config) { c.ServiceName = "" }, ErrTracingServiceNameRequired},
		{"нулевой timeout", func(c *Config) { c.Timeout = 0 }, ErrTracingTimeoutInvalid},
		{"rate меньше нуля", func(c *Config) { c.SamplingRate = -0.1 }, ErrTracingSamplingRateInvalid},
		{"rate больше единицы", func(c *Config) { c.SamplingRate = 1.5 }, ErrTracingSamplingRateInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil && err != nil {
				t.Errorf("неожиданная ошибка: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Enabled {
		t.Error("трейсинг по умолчанию должен быть выключен")
	}
	if cfg.SamplingRate != 1.0 {
		t.Errorf("SamplingRate = %g, want 1.0", cfg.SamplingRate)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("дефолтная конфигурация невалидна: %v", err)
	}
}
