package cmd

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"scholar-portal/pkg/config"
	"scholar-portal/pkg/handlers"
	"scholar-portal/pkg/logger"
	"scholar-portal/pkg/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().Bool("dev-login", false, "allow signing in by typing an identifier")
	viper.BindPFlag("listen_addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("dev_login", serveCmd.Flags().Lookup("dev-login"))
	rootCmd.AddCommand(serveCmd)
}

func newClient(cfg *config.Config) *services.Client {
	return services.NewClient(services.ClientOptions{
		PublicationAPI: cfg.PublicationAPIURL,
		PatentAPI:      cfg.PatentAPIURL,
		Timeout:        cfg.BackendTimeout,
		Retries:        cfg.BackendRetries,
		Log:            logger.Log,
	})
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logger.Log

	layout, err := services.LoadLayout(cfg.CardLayout)
	if err != nil {
		return err
	}

	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		log.Warn("SESSION_SECRET is not set; sessions will not survive a restart")
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return fmt.Errorf("generate session secret: %w", err)
		}
	}
	if cfg.OAuth == nil && !cfg.DevLogin {
		log.Warn("Neither OAUTH_CLIENT_ID nor DEV_LOGIN is set; nobody can sign in")
	}

	gin.SetMode(gin.ReleaseMode)
	h := &handlers.Handlers{
		Backend:  newClient(cfg),
		Views:    services.NewViewStore(cfg.ViewTTL),
		Cards:    services.NewCardBuilder(layout, cfg.ProofFileHost),
		OAuth:    cfg.OAuth,
		DevLogin: cfg.DevLogin,
		Log:      log,
	}
	r, err := h.Router(handlers.RouterOptions{
		SessionName:   cfg.SessionName,
		SessionSecret: secret,
		SecureCookie:  strings.HasPrefix(cfg.AppURL, "https:"),
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		ticker := time.NewTicker(cfg.ViewTTL)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := h.Views.Sweep(); n > 0 {
					log.WithField("expired", n).Debug("Swept review views")
				}
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.ListenAddr).Info("Starting server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
