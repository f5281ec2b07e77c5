package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.APIPort)
	assert.Equal(t, StorageMemory, cfg.StorageBackend)
	assert.False(t, cfg.Development)
	assert.False(t, cfg.TelegramEnabled())
	assert.False(t, cfg.EmailEnabled())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("API_PORT", "8080")
	t.Setenv("DEVELOPMENT", "true")
	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("POSTGRES_DB", "stakeforge_test")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.APIPort)
	assert.True(t, cfg.Development)
	assert.Equal(t, StoragePostgres, cfg.StorageBackend)
	assert.Equal(t, "stakeforge_test", cfg.PostgresDB)
}

func TestValidate_UnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "etcd")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "STORAGE_BACKEND")
}

func TestValidate_TelegramRequiresChatID(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "TELEGRAM_OPS_CHAT_ID")
}

func TestValidate_SMTPRequiresOpsEmail(t *testing.T) {
	t.Setenv("SMTP_USER", "mailer")
	t.Setenv("SMTP_SENDER", "noreply@stakeforge.io")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "OPS_EMAIL")
}
