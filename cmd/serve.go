package cmd

import (
	"context"
	"net/url"

	"github.com/bingetonic/bingetonic/config"
	"github.com/bingetonic/bingetonic/pkg/httpx"
	"github.com/bingetonic/bingetonic/pkg/kv"
	"github.com/bingetonic/bingetonic/pkg/logger"
	"github.com/bingetonic/bingetonic/pkg/manager"
	"github.com/bingetonic/bingetonic/pkg/session"
	"github.com/bingetonic/bingetonic/pkg/storage/sqlite"
	"github.com/bingetonic/bingetonic/pkg/tmdb"
	"github.com/bingetonic/bingetonic/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the tracker server",
	Long:  `start the tracker server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		if cfg.Auth.JWTSecret == "" {
			log.Fatal("auth.jwtSecret must be set to serve")
		}

		m, err := buildManager(cfg)
		if err != nil {
			log.Fatal("failed to build manager", zap.Error(err))
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go func() {
			if err := m.RunRefresher(logger.WithCtx(ctx, log)); err != nil {
				log.Debug("refresher stopped", zap.Error(err))
			}
		}()

		server := server.New(log, m)
		log.Error(server.Serve(cfg.Server.Port))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// buildManager wires a manager from configuration. The session manager
// is nil when no jwt secret is configured, which is fine for one-shot
// commands that never touch accounts.
func buildManager(cfg config.Config) (*manager.Manager, error) {
	tmdbURL := url.URL{
		Scheme: cfg.TMDB.Scheme,
		Host:   cfg.TMDB.Host,
	}

	tmdbClient, err := tmdb.New(tmdbURL.String(), cfg.TMDB.APIKey,
		httpx.WithBaseBackoff(cfg.TMDB.BaseBackoff),
		httpx.WithMaxRetries(cfg.TMDB.MaxRetries),
	)
	if err != nil {
		return nil, err
	}

	store, err := sqlite.New(cfg.Storage.FilePath)
	if err != nil {
		return nil, err
	}

	localKV, err := kv.NewFileStore(cfg.Local.FilePath)
	if err != nil {
		return nil, err
	}

	var sessions *session.Manager
	if cfg.Auth.JWTSecret != "" {
		sessions, err = session.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		if err != nil {
			return nil, err
		}
	}

	return manager.New(tmdbClient, store, localKV, sessions, cfg.Refresh), nil
}
