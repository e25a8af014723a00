package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/specialistvlad/jmxforge/internal/config"
	"github.com/specialistvlad/jmxforge/internal/httpapi"
	"github.com/specialistvlad/jmxforge/internal/planstore"
)

// App bundles the service dependencies.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *planstore.Store
}

// New wires an App from its configuration.
func New(cfg *config.Config, logger *slog.Logger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
		store:  planstore.New(),
	}
}

// Store exposes the plan store, mainly for tests.
func (a *App) Store() *planstore.Store { return a.store }

// Run serves the HTTP API until the context is canceled, then shuts down
// gracefully.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    a.cfg.ListenAddr,
		Handler: httpapi.NewRouter(a.logger, a.store),
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("API server starting.", "addr", a.cfg.ListenAddr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down API server.")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
