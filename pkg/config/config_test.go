package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "http://localhost:4001", cfg.PublicationAPIURL)
	assert.Equal(t, "http://localhost:5001", cfg.PatentAPIURL)
	assert.Equal(t, "http://localhost:5002", cfg.ProofFileHost)
	assert.Equal(t, 15*time.Second, cfg.BackendTimeout)
	assert.Equal(t, 0, cfg.BackendRetries)
	assert.Equal(t, 30*time.Minute, cfg.ViewTTL)
	assert.False(t, cfg.DevLogin)
	assert.Nil(t, cfg.OAuth)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PATENT_API_URL", "https://patents.uni.example")
	t.Setenv("BACKEND_RETRIES", "2")
	t.Setenv("DEV_LOGIN", "true")
	t.Setenv("VIEW_TTL", "5m")

	cfg, err := Load(newViper())
	require.NoError(t, err)
	assert.Equal(t, "https://patents.uni.example", cfg.PatentAPIURL)
	assert.Equal(t, 2, cfg.BackendRetries)
	assert.True(t, cfg.DevLogin)
	assert.Equal(t, 5*time.Minute, cfg.ViewTTL)
}

func TestLoadOAuth(t *testing.T) {
	t.Setenv("APP_URL", "https://portal.uni.example/")
	t.Setenv("OAUTH_CLIENT_ID", "portal")
	t.Setenv("OAUTH_CLIENT_SECRET", "s3cret")
	t.Setenv("OAUTH_AUTH_URL", "https://sso.uni.example/authorize")
	t.Setenv("OAUTH_TOKEN_URL", "https://sso.uni.example/token")
	t.Setenv("OAUTH_SCOPES", "openid records")

	cfg, err := Load(newViper())
	require.NoError(t, err)
	require.NotNil(t, cfg.OAuth)
	assert.Equal(t, "portal", cfg.OAuth.ClientID)
	assert.Equal(t, "https://portal.uni.example/auth/callback", cfg.OAuth.RedirectURL)
	assert.Equal(t, "https://sso.uni.example/token", cfg.OAuth.Endpoint.TokenURL)
	assert.Equal(t, []string{"openid", "records"}, cfg.OAuth.Scopes)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"relative api url", "PUBLICATION_API_URL", "/api"},
		{"bad scheme", "PROOF_FILE_HOST", "ftp://files"},
		{"negative retries", "BACKEND_RETRIES", "-1"},
		{"zero ttl", "VIEW_TTL", "0s"},
		{"oauth without endpoints", "OAUTH_CLIENT_ID", "portal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load(newViper())
			assert.Error(t, err)
		})
	}
}
