package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	require.Equal(t, "devforum", cfg.AppName)
	require.Equal(t, 168*time.Hour, cfg.TokenTTL)
	require.Equal(t, "notifications", cfg.RabbitMQNotifyQue)
	require.Equal(t, "questions", cfg.ESQuestionsIndex)
}

func TestValidateRequiresJWTSecret(t *testing.T) {
	cfg := &Config{}
	require.ErrorIs(t, cfg.Validate(), ErrMissingJWTSecret)

	cfg.JWTSecret = "s"
	require.NoError(t, cfg.Validate())
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "forum", DBSSLMode: "disable"}
	require.Equal(t, "postgres://u:p@db:5432/forum?sslmode=disable", cfg.PostgresDSN())
}

func TestCSVHelpers(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: "http://a.test, http://b.test ,", ElasticsearchAddrs: ""}
	require.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
	require.Empty(t, cfg.ESAddrs())
}
