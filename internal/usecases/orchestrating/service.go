package orchestrating

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stensrud/agentic-dsta/infrastructure/integrator/googleads"
	"github.com/stensrud/agentic-dsta/infrastructure/integrator/googleads/adsclient"
	"github.com/stensrud/agentic-dsta/infrastructure/lease"
	"github.com/stensrud/agentic-dsta/infrastructure/repository"
	"github.com/stensrud/agentic-dsta/internal/config"
	"github.com/stensrud/agentic-dsta/internal/domain"
	"github.com/stensrud/agentic-dsta/internal/usecases/auditing"
	"github.com/stensrud/agentic-dsta/internal/usecases/executing"
	"github.com/stensrud/agentic-dsta/internal/usecases/reconciling"
	"github.com/stensrud/agentic-dsta/internal/usecases/runlogging"
	"github.com/stensrud/agentic-dsta/internal/usecases/validating"
	"github.com/stensrud/agentic-dsta/pkg/apiErrors"
	"github.com/stensrud/agentic-dsta/pkg/log"
	"github.com/stensrud/agentic-dsta/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

const defaultMaxParallelMutations = 4

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Orchestrator conduz uma execução completa para um cliente
type Orchestrator interface {
	Run(ctx context.Context, req RunRequest) (*domain.RunResult, error)
}

// SheetReconciler é a parte do reconciliador usada pela execução do SA360
type SheetReconciler interface {
	Reconcile(ctx context.Context, req reconciling.Request, actions *auditing.ActionLogger) (*domain.ReconciliationReport, error)
}

type RunRequest struct {
	CustomerID  string
	Usecase     domain.Usecase
	TriggeredBy domain.TriggerSource
	DryRun      bool
	Changes     []domain.Change
}

type Service struct {
	leaser      lease.Leaser
	runLogger   runlogging.RunLogger
	configs     repository.CustomerConfigRepository
	pending     repository.PendingChangeRepository
	reader      googleads.Reader
	mutator     googleads.Mutator
	validator   *validating.Validator
	reconciler  SheetReconciler
	maxParallel int
	renewEvery  time.Duration
	now         func() time.Time
}

func NewService(
	leaser lease.Leaser,
	runLogger runlogging.RunLogger,
	configs repository.CustomerConfigRepository,
	pending repository.PendingChangeRepository,
	reader googleads.Reader,
	mutator googleads.Mutator,
	validator *validating.Validator,
	reconciler SheetReconciler,
	cfg *config.Config,
) *Service {
	maxParallel := defaultMaxParallelMutations
	if cfg != nil && cfg.DecisionRun.MaxParallelMutations > 0 {
		maxParallel = cfg.DecisionRun.MaxParallelMutations
	}

	var leaseTTL time.Duration
	if cfg != nil {
		leaseTTL = cfg.RunLease.TTL
	}

	return &Service{
		leaser:      leaser,
		runLogger:   runLogger,
		configs:     configs,
		pending:     pending,
		reader:      reader,
		mutator:     mutator,
		validator:   validator,
		reconciler:  reconciler,
		maxParallel: maxParallel,
		renewEvery:  lease.RenewInterval(leaseTTL),
		now:         time.Now,
	}
}

// run acumula o estado de uma execução em andamento
type run struct {
	id         string
	req        RunRequest
	actions    *auditing.ActionLogger
	logMu      sync.Mutex
	logFailed  bool
	blocked    []domain.BlockedRow
	report     *domain.ReconciliationReport
	pendingIDs []string
}

// Run adquire o lease do cliente, registra o início, aplica as mudanças e finaliza o log.
// Erros devolvidos significam que a execução nem começou; falhas durante a execução ficam no RunResult.
func (s *Service) Run(ctx context.Context, req RunRequest) (*domain.RunResult, error) {
	if req.CustomerID == "" {
		return nil, NewRunError(ErrInvalidRunRequest, apiErrors.ErrMissingRequiredData, "", "customer_id é obrigatório")
	}
	if !req.Usecase.IsValid() {
		return nil, NewRunError(ErrInvalidRunRequest, apiErrors.ErrInvalidUsecase, req.CustomerID, fmt.Sprintf("usecase inválido: %q", req.Usecase))
	}

	token, err := s.leaser.Acquire(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, lease.ErrRunInProgress) {
			metrics.RunConflicts.Inc()
			return nil, NewRunError(ErrRunInProgress, apiErrors.ErrRunInProgress, req.CustomerID, "")
		}
		return nil, NewRunError(ErrAcquireLease, apiErrors.ErrInternalServer, req.CustomerID, err.Error())
	}
	defer func() {
		// o lease expira sozinho se a liberação falhar
		if err := s.leaser.Release(context.WithoutCancel(ctx), req.CustomerID, token); err != nil {
			logrus.WithFields(logrus.Fields{
				"customer_id": req.CustomerID,
				"error":       err.Error(),
			}).Warn("orchestrator: falha ao liberar lease")
		}
	}()

	// execuções longas não podem perder o lease no meio; para antes da liberação
	stopRenewal := lease.KeepAlive(ctx, s.leaser, req.CustomerID, token, s.renewEvery)
	defer stopRenewal()

	loginCustomerID, sa360Cfg, err := s.loadConfig(ctx, req)
	if err != nil {
		return nil, err
	}

	runID, err := s.runLogger.Start(ctx, runlogging.StartParams{
		CustomerID:  req.CustomerID,
		Usecase:     req.Usecase,
		TriggeredBy: req.TriggeredBy,
		DryRun:      req.DryRun,
	})
	if err != nil {
		metrics.RunLogErrors.Inc()
		return nil, NewRunError(ErrStartRun, apiErrors.ErrDatabaseOperation, req.CustomerID, err.Error())
	}

	startedAt := s.now()
	r := &run{id: runID, req: req, actions: auditing.NewActionLogger()}
	r.actions.Clear()

	ctx = log.WithRunID(ctx, runID)
	logger := log.ForContext(ctx).WithFields(logrus.Fields{
		"customer_id": req.CustomerID,
		"usecase":     req.Usecase,
		"dry_run":     req.DryRun,
	})
	logger.Info("orchestrator: execução iniciada")

	changes := s.collectChanges(ctx, r)

	var runErr error
	switch req.Usecase {
	case domain.UsecaseGoogleAds:
		s.runGoogleAds(adsclient.WithLoginCustomerID(ctx, loginCustomerID), r, changes)
	case domain.UsecaseSA360:
		runErr = s.runSA360(ctx, r, sa360Cfg, loginCustomerID, changes)
	}

	result := s.complete(ctx, r, runErr)

	if !req.DryRun && runErr == nil && len(r.pendingIDs) > 0 {
		if err := s.pending.MarkConsumed(ctx, r.pendingIDs, runID); err != nil {
			logger.WithError(err).Error("orchestrator: falha ao marcar mudanças pendentes como consumidas")
		}
	}

	metrics.RunCount.WithLabelValues(string(req.Usecase), string(result.Status)).Inc()
	metrics.RunDuration.WithLabelValues(string(req.Usecase)).Observe(s.now().Sub(startedAt).Seconds())

	logger.WithFields(logrus.Fields{
		"status":    result.Status,
		"total":     result.Summary.Total,
		"succeeded": result.Summary.Succeeded,
		"failed":    result.Summary.Failed,
		"rejected":  result.Summary.Rejected,
	}).Info("orchestrator: execução finalizada")

	return result, nil
}

func (s *Service) loadConfig(ctx context.Context, req RunRequest) (string, *domain.SA360Config, error) {
	notFound := func(err error) error {
		if errors.Is(err, repository.ErrNotFound) {
			return NewRunError(ErrCustomerNotFound, apiErrors.ErrCustomerNotFound, req.CustomerID, string(req.Usecase))
		}
		return NewRunError(ErrLoadConfig, apiErrors.ErrDatabaseOperation, req.CustomerID, err.Error())
	}

	switch req.Usecase {
	case domain.UsecaseGoogleAds:
		cfg, err := s.configs.GetGoogleAdsConfig(ctx, req.CustomerID)
		if err != nil {
			return "", nil, notFound(err)
		}
		if cfg.LoginCustomerID != nil {
			return *cfg.LoginCustomerID, nil, nil
		}
		return "", nil, nil
	default:
		cfg, err := s.configs.GetSA360Config(ctx, req.CustomerID)
		if err != nil {
			return "", nil, notFound(err)
		}
		login := ""
		if cfg.LoginCustomerID != nil {
			login = *cfg.LoginCustomerID
		}
		return login, cfg, nil
	}
}

// collectChanges junta as mudanças da requisição com as pendentes do cliente.
// Envelopes inválidos viram uma Action rejeitada.
func (s *Service) collectChanges(ctx context.Context, r *run) []domain.Change {
	changes := append([]domain.Change{}, r.req.Changes...)

	pending, err := s.pending.ListPending(ctx, r.req.CustomerID, r.req.Usecase)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": r.id,
			"error":  err.Error(),
		}).Error("orchestrator: falha ao buscar mudanças pendentes")
		return changes
	}

	for _, p := range pending {
		r.pendingIDs = append(r.pendingIDs, p.ID)

		change, err := p.Change.ToChange()
		if err != nil {
			s.appendToRun(ctx, r, r.actions.Append(invalidChangeAction(r.req, p, err)))
			continue
		}
		changes = append(changes, change)
	}

	return changes
}

func invalidChangeAction(req RunRequest, p domain.PendingChange, err error) domain.Action {
	return domain.Action{
		Tool: "unknown",
		Params: map[string]any{
			"customer_id":       req.CustomerID,
			"pending_change_id": p.ID,
			"type":              string(p.Change.Type),
		},
		Description: "Mudança pendente inválida",
		Simulated:   req.DryRun,
		Result: domain.ActionResult{
			Error: &domain.ActionError{Kind: domain.ActionErrorInvalidArguments, Message: err.Error()},
		},
	}
}

// runGoogleAds despacha as mudanças agrupadas por alvo: alvos distintos em paralelo, o mesmo alvo em ordem
func (s *Service) runGoogleAds(ctx context.Context, r *run, changes []domain.Change) {
	executor := executing.New(r.req.DryRun, s.mutator, r.actions)
	dispatcher := executing.NewDispatcher(s.reader, s.validator, executor, r.actions)

	var g errgroup.Group
	g.SetLimit(s.maxParallel)

	for _, group := range groupByTarget(changes) {
		g.Go(func() error {
			for _, change := range group {
				action := dispatcher.Dispatch(ctx, r.req.CustomerID, change)
				s.appendToRun(ctx, r, action)
			}
			return nil
		})
	}

	_ = g.Wait()
}

func groupByTarget(changes []domain.Change) [][]domain.Change {
	order := make([]string, 0)
	groups := make(map[string][]domain.Change)

	for _, change := range changes {
		target := change.Target()
		if _, seen := groups[target]; !seen {
			order = append(order, target)
		}
		groups[target] = append(groups[target], change)
	}

	grouped := make([][]domain.Change, 0, len(order))
	for _, target := range order {
		grouped = append(grouped, groups[target])
	}
	return grouped
}

func (s *Service) runSA360(ctx context.Context, r *run, cfg *domain.SA360Config, loginCustomerID string, changes []domain.Change) error {
	before := r.actions.Count()

	report, err := s.reconciler.Reconcile(ctx, reconciling.Request{
		CustomerID:      r.req.CustomerID,
		LoginCustomerID: loginCustomerID,
		SheetID:         cfg.SheetID,
		SheetName:       cfg.SheetName,
		Changes:         changes,
		DryRun:          r.req.DryRun,
	}, r.actions)

	for _, action := range r.actions.Snapshot()[before:] {
		s.appendToRun(ctx, r, action)
	}

	if err != nil {
		return err
	}

	r.report = report
	r.blocked = report.Blocked
	return nil
}

// appendToRun grava a ação no log persistido; falhas marcam a execução sem desfazer a mutação
func (s *Service) appendToRun(ctx context.Context, r *run, action domain.Action) {
	if err := s.runLogger.AppendAction(ctx, r.id, action); err != nil {
		metrics.RunLogErrors.Inc()
		logrus.WithFields(logrus.Fields{
			"run_id": r.id,
			"tool":   action.Tool,
			"error":  err.Error(),
		}).Error("orchestrator: falha ao gravar ação no log da execução")

		r.logMu.Lock()
		r.logFailed = true
		r.logMu.Unlock()
	}
}

func (s *Service) complete(ctx context.Context, r *run, runErr error) *domain.RunResult {
	actions := r.actions.Snapshot()
	summary := domain.SummarizeActions(actions)
	if r.report != nil {
		for _, outcome := range r.report.Outcomes {
			switch outcome.Outcome {
			case domain.RowBlocked:
				summary.Blocked++
			case domain.RowInserted:
				summary.Inserted++
			case domain.RowUpdated:
				summary.Updated++
			}
		}
	}

	r.logMu.Lock()
	logFailed := r.logFailed
	r.logMu.Unlock()

	status := RunStatus(summary, runErr, logFailed)

	params := runlogging.CompleteParams{Status: status, Summary: &summary}
	if runErr != nil {
		message := runErr.Error()
		params.Error = &message
	}
	if logFailed {
		params.Actions = actions
	}

	if err := s.runLogger.Complete(context.WithoutCancel(ctx), r.id, params); err != nil {
		metrics.RunLogErrors.Inc()
		logrus.WithFields(logrus.Fields{
			"run_id": r.id,
			"error":  err.Error(),
		}).Error("orchestrator: falha ao finalizar o log da execução")

		if runErr == nil {
			status = domain.RunStatusCompletedWithLoggingErrors
		}
	}

	return &domain.RunResult{
		RunID:   r.id,
		Status:  status,
		Summary: summary,
		Actions: actions,
		Blocked: r.blocked,
	}
}

// RunStatus deriva o status final da execução a partir do resumo das ações
func RunStatus(summary domain.RunSummary, runErr error, logFailed bool) domain.RunStatus {
	switch {
	case runErr != nil:
		return domain.RunStatusError
	case logFailed:
		return domain.RunStatusCompletedWithLoggingErrors
	case summary.Failed == 0 && summary.Rejected == 0:
		return domain.RunStatusSuccess
	case summary.Succeeded == 0 && summary.Rejected == 0:
		return domain.RunStatusError
	default:
		return domain.RunStatusPartialFailure
	}
}
