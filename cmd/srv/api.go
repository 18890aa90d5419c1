package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/questx-lab/person-api/config"
	"github.com/questx-lab/person-api/internal/handler"
	"github.com/questx-lab/person-api/internal/middleware"
	"github.com/questx-lab/person-api/migration"
	"github.com/questx-lab/person-api/pkg/prometheus"
	"github.com/questx-lab/person-api/pkg/router"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(c *cli.Context) error {
	if err := s.loadContext(c); err != nil {
		return err
	}

	if c.Bool("auto-migrate") || s.configs.Database.Driver == config.SQLite {
		if err := migration.AutoMigrate(s.ctx); err != nil {
			return err
		}
	}

	s.loadRepos()
	s.loadDomains()
	if err := s.loadRouter(); err != nil {
		return err
	}

	cfg := s.configs.ApiServer
	s.server = &http.Server{
		Addr:         cfg.Address(),
		Handler:      middleware.AllowCors(cfg.AllowedOrigins, s.router.Handler()),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(s.ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("Starting server on %s", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Infof("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	s.logger.Infof("Server stopped")
	return nil
}

func (s *srv) loadRouter() error {
	r, err := newRouter(s)
	if err != nil {
		return err
	}

	s.router = r
	return nil
}

func newRouter(s *srv) (*router.Router, error) {
	sqlDB, err := s.db.DB()
	if err != nil {
		return nil, err
	}

	r := router.New(s.db, *s.configs, s.logger)
	r.Before(middleware.WithStartTime())
	r.Before(middleware.WithRequestID())
	r.AddCloser(middleware.Logger())
	r.AddCloser(middleware.Prometheus())

	router.GET(r, "/health", handler.Health)
	r.Handle(http.MethodGet, "/metrics", prometheus.NewHandler(sqlDB, s.configs.Database.Database))

	handler.NewPersonHandler(s.personDomain).Register(r)
	return r, nil
}
