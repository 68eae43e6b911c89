package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/planvista/topograph/internal/api"
	"github.com/planvista/topograph/internal/config"
	"github.com/planvista/topograph/pkg/cache"
	"github.com/planvista/topograph/pkg/store"
)

// shutdownTimeout bounds graceful shutdown after the context is canceled.
const shutdownTimeout = 10 * time.Second

// newServeCmd creates the serve command running the HTTP API.
func newServeCmd() *cobra.Command {
	var (
		configPath string
		listen     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the topology HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Listen = listen
			}

			c, err := openCache(cmd.Context(), cfg.Cache, logger)
			if err != nil {
				return err
			}
			defer c.Close()

			s, err := openStore(cmd.Context(), cfg.Store, logger)
			if err != nil {
				return err
			}
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				_ = s.Close(ctx)
			}()

			srv := &http.Server{
				Addr:    cfg.Listen,
				Handler: api.New(logger, c, s, cfg).Router(),
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", "addr", cfg.Listen)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-cmd.Context().Done():
				logger.Info("shutting down")
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := srv.Shutdown(ctx); err != nil {
					return err
				}
				if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")

	return cmd
}

// openCache builds the configured cache backend.
func openCache(ctx context.Context, cfg config.CacheConfig, logger *charmlog.Logger) (cache.Cache, error) {
	switch cfg.Backend {
	case config.CacheRedis:
		logger.Debug("using redis cache", "addr", cfg.RedisAddr)
		return cache.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case config.CacheFile:
		dir, err := cacheDir(cfg.Dir)
		if err != nil {
			return nil, err
		}
		logger.Debug("using file cache", "dir", dir)
		return cache.NewFileCache(dir)
	default:
		logger.Debug("caching disabled")
		return cache.NewNullCache(), nil
	}
}

// openStore builds the configured graph store. No Mongo URI means the
// in-memory store, which loses saved graphs on restart.
func openStore(ctx context.Context, cfg config.StoreConfig, logger *charmlog.Logger) (store.Store, error) {
	if cfg.MongoURI == "" {
		logger.Debug("using in-memory graph store")
		return store.NewMemoryStore(), nil
	}
	logger.Debug("using mongo graph store", "database", cfg.Database)
	return store.NewMongoStore(ctx, cfg.MongoURI, cfg.Database)
}
