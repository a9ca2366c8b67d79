package gateway

import (
	"context"
	"errors"
	"net/http"

	"github.com/matheus3301/wppgw/internal/backend"
	"github.com/matheus3301/wppgw/internal/config"
	"github.com/matheus3301/wppgw/internal/logging"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params holds command-line overrides passed to the fx module. Empty
// fields defer to the config file and environment.
type Params struct {
	ConfigPath string
	ListenAddr string
	BackendURL string
}

// Module returns the fx module for the gateway, composing all providers
// and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("gateway",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideBackendClient,
			NewHandler,
			NewServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig(p Params) (*config.Config, error) {
	cfg, err := config.Load(p.ConfigPath)
	if err != nil {
		return nil, err
	}
	if p.ListenAddr != "" {
		cfg.ListenAddr = p.ListenAddr
	}
	if p.BackendURL != "" {
		cfg.BackendURL = p.BackendURL
	}
	return cfg, nil
}

func provideLogger() *zap.Logger {
	return logging.New("wppgwd")
}

func provideBackendClient(cfg *config.Config, logger *zap.Logger) *backend.Client {
	return backend.NewClient(cfg.BackendURL, cfg.RequestTimeout.Std(), logger)
}

func registerLifecycle(lc fx.Lifecycle, srv *Server, cfg *config.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("gateway starting",
				zap.String("listen", cfg.ListenAddr),
				zap.String("backend", cfg.BackendURL))
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("http server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := srv.Stop(ctx); err != nil {
				logger.Warn("error stopping http server", zap.Error(err))
			}
			logger.Info("gateway stopped")
			return nil
		},
	})
}
