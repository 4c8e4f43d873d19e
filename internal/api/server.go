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
	"github.com/sirupsen/logrus"
	"github.com/stensrud/agentic-dsta/internal/api/handler"
	"github.com/stensrud/agentic-dsta/internal/api/handler/router"
	"github.com/stensrud/agentic-dsta/internal/config"
	"github.com/stensrud/agentic-dsta/internal/usecases/account"
	"github.com/stensrud/agentic-dsta/internal/usecases/authenticating"
	"github.com/stensrud/agentic-dsta/internal/usecases/orchestrating"
	"github.com/stensrud/agentic-dsta/internal/usecases/runlogging"
	"github.com/stensrud/agentic-dsta/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
	cleanups   []func() error
}

// Services reúne as dependências expostas pela API HTTP
type Services struct {
	Orchestrator    orchestrating.Orchestrator
	RunLogger       runlogging.RunLogger
	Accounts        account.AccountService
	Authenticator   authenticating.Authenticator
	DecisionRunSync handler.CronJob
	HealthProbes    []handler.HealthProbe
}

func New(cfg *config.Config, services Services) (*Server, error) {
	cronServices := handler.CronJobServices{
		DecisionRunSync: services.DecisionRunSync,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.HealthProbes...)...),
		router.WithRoutes(handler.Scheduler(services.Orchestrator, cfg.App.AppName, cfg.DecisionRun.DefaultDryRun)...),
		router.WithRoutes(handler.Runs(services.RunLogger)...),
		router.WithRoutes(handler.Customers(services.Accounts)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	logrus.WithField("routes", rt.Routes()).Debug("Rotas registradas")

	middlewares := []alice.Constructor{
		middleware.LoggingMiddleware(),
		middleware.LogPanicMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// OnShutdown registra uma limpeza executada depois que o servidor HTTP para
func (s *Server) OnShutdown(cleanup func() error) {
	s.cleanups = append(s.cleanups, cleanup)
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown para de aceitar requisições, espera as execuções em andamento e roda as limpezas
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	logrus.Info("Servidor HTTP desligado com sucesso")

	for i := len(s.cleanups) - 1; i >= 0; i-- {
		if err := s.cleanups[i](); err != nil {
			logrus.WithError(err).Warn("Erro ao liberar recurso no desligamento")
		}
	}

	return nil
}
