package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stensrud/agentic-dsta/internal/api/handler/router"
	"github.com/stensrud/agentic-dsta/internal/usecases/account"
	"github.com/stensrud/agentic-dsta/internal/usecases/orchestrating"
	"github.com/stensrud/agentic-dsta/internal/usecases/runlogging"
	"github.com/stensrud/agentic-dsta/pkg/middleware"
)

// Healthcheck expõe /healthcheck (somente processo), /healthcheck/ready (com dependências) e /metrics
func Healthcheck(probes ...HealthProbe) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/healthcheck/ready",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(probes...),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Scheduler(service orchestrating.Orchestrator, appName string, defaultDryRun bool) []router.Route {
	return []router.Route{
		{
			Path:        "/scheduler/init_and_run",
			Method:      http.MethodPost,
			Handler:     InitAndRun(service, appName, defaultDryRun),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Runs(service runlogging.RunLogger) []router.Route {
	return []router.Route{
		{
			Path:        "/runs/:customer_id",
			Method:      http.MethodGet,
			Handler:     RunHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/runs/:customer_id/:run_id",
			Method:      http.MethodGet,
			Handler:     GetRun(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Customers(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/customers/:customer_id/config",
			Method:      http.MethodGet,
			Handler:     GetCustomerConfig(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OperatorOrAdmin()},
		},
		{
			Path:        "/v1/customers/:customer_id/changes",
			Method:      http.MethodPost,
			Handler:     EnqueueChanges(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OperatorOrAdmin()},
		},
	}
}

// CronJobs retorna as rotas para execução manual das cron jobs
func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
