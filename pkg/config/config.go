package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/oauth2"
)

type Config struct {
	ListenAddr string
	AppURL     string

	// Record services
	PublicationAPIURL string
	PatentAPIURL      string
	ProofFileHost     string
	BackendTimeout    time.Duration
	BackendRetries    int

	// Session settings
	SessionName   string
	SessionSecret string
	ViewTTL       time.Duration

	CardLayout string
	DevLogin   bool

	// OAuth is nil when single sign-on is not configured.
	OAuth *oauth2.Config
}

// LoadDotEnv loads .env into the process environment if present.
func LoadDotEnv() error {
	return godotenv.Load()
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("app_url", "http://localhost:8080")

	v.SetDefault("publication_api_url", "http://localhost:4001")
	v.SetDefault("patent_api_url", "http://localhost:5001")
	v.SetDefault("proof_file_host", "http://localhost:5002")
	v.SetDefault("backend_timeout", "15s")
	v.SetDefault("backend_retries", 0)

	v.SetDefault("session_name", "scholar-session")
	v.SetDefault("session_secret", "")
	v.SetDefault("view_ttl", "30m")

	v.SetDefault("card_layout", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("dev_login", false)

	v.SetDefault("oauth_client_id", "")
	v.SetDefault("oauth_client_secret", "")
	v.SetDefault("oauth_auth_url", "")
	v.SetDefault("oauth_token_url", "")
	v.SetDefault("oauth_redirect_url", "")
	v.SetDefault("oauth_scopes", []string{"openid", "profile"})
}

// Load reads the settings from v. Keys map to upper-case environment
// variables when v has AutomaticEnv enabled.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		ListenAddr:        v.GetString("listen_addr"),
		AppURL:            strings.TrimRight(v.GetString("app_url"), "/"),
		PublicationAPIURL: v.GetString("publication_api_url"),
		PatentAPIURL:      v.GetString("patent_api_url"),
		ProofFileHost:     v.GetString("proof_file_host"),
		BackendTimeout:    v.GetDuration("backend_timeout"),
		BackendRetries:    v.GetInt("backend_retries"),
		SessionName:       v.GetString("session_name"),
		SessionSecret:     v.GetString("session_secret"),
		ViewTTL:           v.GetDuration("view_ttl"),
		CardLayout:        v.GetString("card_layout"),
		DevLogin:          v.GetBool("dev_login"),
	}

	for key, raw := range map[string]string{
		"PUBLICATION_API_URL": cfg.PublicationAPIURL,
		"PATENT_API_URL":      cfg.PatentAPIURL,
		"PROOF_FILE_HOST":     cfg.ProofFileHost,
	} {
		if err := checkURL(raw); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
	}
	if cfg.BackendRetries < 0 {
		return nil, fmt.Errorf("BACKEND_RETRIES must not be negative")
	}
	if cfg.ViewTTL <= 0 {
		return nil, fmt.Errorf("VIEW_TTL must be positive")
	}
	if cfg.SessionName == "" {
		return nil, fmt.Errorf("SESSION_NAME must not be empty")
	}

	if clientID := v.GetString("oauth_client_id"); clientID != "" {
		authURL, tokenURL := v.GetString("oauth_auth_url"), v.GetString("oauth_token_url")
		if authURL == "" || tokenURL == "" {
			return nil, fmt.Errorf("OAUTH_AUTH_URL and OAUTH_TOKEN_URL are required with OAUTH_CLIENT_ID")
		}
		redirectURL := v.GetString("oauth_redirect_url")
		if redirectURL == "" {
			redirectURL = cfg.AppURL + "/auth/callback"
		}
		cfg.OAuth = &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: v.GetString("oauth_client_secret"),
			Scopes:       v.GetStringSlice("oauth_scopes"),
			Endpoint: oauth2.Endpoint{
				AuthURL:  authURL,
				TokenURL: tokenURL,
			},
			RedirectURL: redirectURL,
		}
	}

	return cfg, nil
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%q is not an absolute http(s) URL", raw)
	}
	return nil
}
