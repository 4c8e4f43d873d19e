package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ações registradas por ferramenta e resultado
	MutationCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decision_agent_mutations_total",
			Help: "Total mutation actions recorded",
		},
		[]string{"tool", "outcome", "simulated"},
	)

	// execuções finalizadas por caso de uso e status
	RunCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decision_agent_runs_total",
			Help: "Total decision runs completed",
		},
		[]string{"usecase", "status"},
	)

	// duração das execuções em segundos
	RunDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "decision_agent_run_duration_seconds",
			Help:    "Histogram of decision run durations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"usecase"},
	)

	// execuções recusadas porque outra estava em andamento para o cliente
	RunConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "decision_agent_run_conflicts_total",
			Help: "Total runs rejected because a run was already in progress",
		},
	)

	// falhas ao persistir o log de execução
	RunLogErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "decision_agent_run_log_errors_total",
			Help: "Total run log persistence errors",
		},
	)

	// linhas da planilha por resultado da reconciliação
	SheetRowCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decision_agent_sheet_rows_total",
			Help: "Total SA360 sheet rows reconciled",
		},
		[]string{"outcome"},
	)

	// duração das requisições HTTP
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "decision_agent_http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		MutationCount,
		RunCount,
		RunDuration,
		RunConflicts,
		RunLogErrors,
		SheetRowCount,
		HTTPRequestDuration,
	)
}

// Outcome classifica uma ação para os labels de métricas
func Outcome(success, rejected bool) string {
	switch {
	case success:
		return "success"
	case rejected:
		return "rejected"
	}
	return "failed"
}
