package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AayushBarhate/backend/internal/constants"
)

func TestMustLoad_Defaults(t *testing.T) {
	t.Setenv("BK_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := MustLoad()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, constants.DefaultAppName, cfg.App.Name)
	assert.Equal(t, constants.DefaultEnvironment, cfg.App.Environment)
	assert.Equal(t, constants.DefaultPort, cfg.App.Port)
	assert.Equal(t, constants.DefaultLogsDir, cfg.Logging.LogsDir)
	assert.Empty(t, cfg.Alerting.DiscordWebhookURL, "алертинг по умолчанию отключён")
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.Tracing.Enabled)
	assert.NotNil(t, cfg.Logger)
}

func TestMustLoad_EnvOverride(t *testing.T) {
	t.Setenv("BK_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("BK_APP_NAME", "Test Backend")
	t.Setenv("BK_ENVIRONMENT", "production")
	t.Setenv("BK_PORT", "8080")
	t.Setenv("BK_LOGS_DIR", "/var/log/backend")
	t.Setenv("BK_ALERTING_DISCORD_WEBHOOK_URL", "https://discord.com/api/webhooks/1/a")

	cfg, err := MustLoad()
	require.NoError(t, err)

	assert.Equal(t, "Test Backend", cfg.App.Name)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "/var/log/backend", cfg.Logging.LogsDir)
	assert.Equal(t, "https://discord.com/api/webhooks/1/a", cfg.Alerting.DiscordWebhookURL)
}

func TestMustLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "app.yaml")
	yamlContent := `
app:
  name: "YAML Backend"
  port: 9090
logging:
  logsDir: "yaml-logs"
metrics:
  enabled: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0o600))
	t.Setenv("BK_CONFIG_PATH", configPath)

	cfg, err := MustLoad()
	require.NoError(t, err)

	assert.Equal(t, "YAML Backend", cfg.App.Name)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "yaml-logs", cfg.Logging.LogsDir)
	assert.False(t, cfg.Metrics.Enabled)
	// Не тронутые YAML секции сохраняют значения по умолчанию.
	assert.Equal(t, constants.DefaultEnvironment, cfg.App.Environment)
}

func TestMustLoad_EnvBeatsYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "app.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("app:\n  port: 9090\n"), 0o600))
	t.Setenv("BK_CONFIG_PATH", configPath)
	t.Setenv("BK_PORT", "7070")

	cfg, err := MustLoad()
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.App.Port)
}

func TestMustLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "app.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("app: [не мапа"), 0o600))
	t.Setenv("BK_CONFIG_PATH", configPath)

	_, err := MustLoad()
	require.Error(t, err)
}

func TestMustLoad_InvalidPort(t *testing.T) {
	t.Setenv("BK_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("BK_PORT", "99999")

	_, err := MustLoad()
	require.Error(t, err)
}

func TestMustLoad_InvalidWebhookDisablesAlerting(t *testing.T) {
	t.Setenv("BK_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("BK_ALERTING_DISCORD_WEBHOOK_URL", "not-a-url-at-all")

	cfg, err := MustLoad()
	require.NoError(t, err, "невалидный webhook не должен прерывать загрузку")
	assert.Empty(t, cfg.Alerting.DiscordWebhookURL, "невалидный webhook сбрасывается")
}

func TestMustLoad_InvalidNamespaceDisablesMetrics(t *testing.T) {
	t.Setenv("BK_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("BK_METRICS_NAMESPACE", "123-плохой")

	cfg, err := MustLoad()
	require.NoError(t, err)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestMustLoad_InvalidTracingDisablesTracing(t *testing.T) {
	t.Setenv("BK_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("BK_TRACING_ENABLED", "true")
	// Endpoint не задан — валидация должна отключить трейсинг.

	cfg, err := MustLoad()
	require.NoError(t, err)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestAlertingConfig_DiscordConfig(t *testing.T) {
	ac := AlertingConfig{
		DiscordWebhookURL: "https://discord.com/api/webhooks/1/a",
		Timeout:           15 * time.Second,
	}
	dc := ac.DiscordConfig("Test Backend", "staging")

	assert.Equal(t, "https://discord.com/api/webhooks/1/a", dc.WebhookURL)
	assert.Equal(t, "Test Backend", dc.AppName)
	assert.Equal(t, "staging", dc.Environment)
	assert.Equal(t, 15*time.Second, dc.Timeout)
}

func TestTracingConfig_Config(t *testing.T) {
	tc := TracingConfig{
		Enabled:      true,
		Endpoint:     "http://jaeger:4318",
		Timeout:      5 * time.Second,
		SamplingRate: 0.5,
	}
	cfg := tc.Config("Test Backend", "production")

	assert.Equal(t, "Test Backend", cfg.ServiceName)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, constants.Version, cfg.Version)
	assert.InDelta(t, 0.5, cfg.SamplingRate, 1e-9)
	assert.NoError(t, cfg.Validate())
}
