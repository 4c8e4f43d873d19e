package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/stensrud/agentic-dsta/infrastructure/database/postgres"
	"github.com/stensrud/agentic-dsta/infrastructure/database/redis"
	"github.com/stensrud/agentic-dsta/infrastructure/integrator/googleads"
	"github.com/stensrud/agentic-dsta/infrastructure/integrator/googleads/adsclient"
	"github.com/stensrud/agentic-dsta/infrastructure/integrator/sa360"
	"github.com/stensrud/agentic-dsta/infrastructure/integrator/sa360/reportclient"
	"github.com/stensrud/agentic-dsta/infrastructure/integrator/sheets"
	"github.com/stensrud/agentic-dsta/infrastructure/lease"
	"github.com/stensrud/agentic-dsta/infrastructure/repository"
	"github.com/stensrud/agentic-dsta/internal/api"
	"github.com/stensrud/agentic-dsta/internal/api/handler"
	"github.com/stensrud/agentic-dsta/internal/config"
	"github.com/stensrud/agentic-dsta/internal/scheduler"
	"github.com/stensrud/agentic-dsta/internal/usecases/account"
	"github.com/stensrud/agentic-dsta/internal/usecases/authenticating"
	"github.com/stensrud/agentic-dsta/internal/usecases/orchestrating"
	"github.com/stensrud/agentic-dsta/internal/usecases/reconciling"
	"github.com/stensrud/agentic-dsta/internal/usecases/runlogging"
	"github.com/stensrud/agentic-dsta/internal/usecases/validating"
	"github.com/stensrud/agentic-dsta/pkg/log"
)

func main() {
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)

	redisClient, err := redis.NewClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}
	logrus.Info("Conexão com Redis estabelecida com sucesso")

	configRepo := repository.NewCustomerConfigRepository(pgConn)
	pendingRepo := repository.NewPendingChangeRepository(pgConn)
	runLogRepo := repository.NewRunLogRepository(pgConn)

	resolver := config.NewRefreshTokenResolver(cfg)

	adsClient, err := adsclient.NewClient(ctx, cfg, resolver)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar cliente do Google Ads")
	}
	googleAds := googleads.New(adsClient)

	reportClient, err := reportclient.NewClient(ctx, cfg, resolver)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar cliente do SA360")
	}

	sheetsClient, err := sheets.NewClient(ctx, cfg, resolver)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar cliente do Google Sheets")
	}

	runLogger := runlogging.NewService(runLogRepo, cfg)
	reconciler := reconciling.NewReconciler(sa360.New(reportClient), sheetsClient)
	leaser := lease.NewRedisLeaser(redisClient, cfg.RunLease.TTL, cfg.RunLease.KeyPrefix)

	orchestrator := orchestrating.NewService(
		leaser,
		runLogger,
		configRepo,
		pendingRepo,
		googleAds,
		googleAds,
		validating.NewValidator(validating.DefaultRules()),
		reconciler,
		cfg,
	)

	accountService := account.NewService(configRepo, pendingRepo)
	authenticator := authenticating.NewService(cfg)

	decisionRunSync := scheduler.NewDecisionRunSyncService(configRepo, orchestrator, cfg)
	if err := decisionRunSync.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de execuções")
	} else {
		logrus.Info("Agendador de execuções iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Orchestrator:    orchestrator,
		RunLogger:       runLogger,
		Accounts:        accountService,
		Authenticator:   authenticator,
		DecisionRunSync: decisionRunSync,
		HealthProbes: []handler.HealthProbe{
			{Name: "postgres", Check: pgConn.Ping},
			{Name: "redis", Check: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }},
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	server.OnShutdown(pgConn.Close)
	server.OnShutdown(redisClient.Close)

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
