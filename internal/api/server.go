package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/cfo-playbook-api/internal/api/handler"
	"github.com/vfg2006/cfo-playbook-api/internal/api/handler/router"
	"github.com/vfg2006/cfo-playbook-api/internal/config"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/authenticating"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/evaluating"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/reporting"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/scenario"
	"github.com/vfg2006/cfo-playbook-api/pkg/log"
	"github.com/vfg2006/cfo-playbook-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services agrupa as dependências expostas pela API
type Services struct {
	Evaluator      evaluating.Evaluator
	Reports        reporting.Builder
	Catalog        scenario.Catalog
	Authenticator  authenticating.Authenticator
	CronJobs       handler.CronJobServices
	MetricsHandler http.Handler
}

type Server struct {
	httpServer *http.Server
}

func New(config *config.Config, services Services) (*Server, error) {
	if services.MetricsHandler == nil {
		services.MetricsHandler = http.NotFoundHandler()
	}

	handler := NewHandler(config, services)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(config *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics(services.MetricsHandler)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Evaluations(services.Evaluator, services.Reports)...),
		router.WithRoutes(handler.Modules(services.Evaluator)...),
		router.WithRoutes(handler.Scenarios(services.Catalog, services.Evaluator)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithFields(log.Fields{
			"address": s.httpServer.Addr,
		}).Info("server: starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("server: listen failed")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("server: interrupt signal received")
	case <-ctx.Done():
		log.L.Info("server: application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", shutdownTimeout.String()).Info("server: graceful shutdown started")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("server: shutdown failed")
		return err
	}

	log.L.Info("server: stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
