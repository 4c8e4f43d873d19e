package runlogging

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stensrud/agentic-dsta/infrastructure/repository"
	"github.com/stensrud/agentic-dsta/internal/config"
	"github.com/stensrud/agentic-dsta/internal/domain"
	"github.com/stensrud/agentic-dsta/pkg/apiErrors"
	"github.com/stensrud/agentic-dsta/pkg/utils"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// RunLogger persiste o documento de auditoria de cada execução
type RunLogger interface {
	Start(ctx context.Context, params StartParams) (string, error)
	AppendAction(ctx context.Context, runID string, action domain.Action) error
	Complete(ctx context.Context, runID string, params CompleteParams) error
	History(ctx context.Context, customerID string, limit int, includeDryRuns bool) ([]domain.RunMetadata, error)
	Get(ctx context.Context, runID string) (*domain.Run, error)
}

type StartParams struct {
	CustomerID  string
	Usecase     domain.Usecase
	TriggeredBy domain.TriggerSource
	DryRun      bool
}

// CompleteParams finaliza a execução. Actions, quando informado, substitui as ações anexadas
// (usado quando a gravação incremental falhou).
type CompleteParams struct {
	Status  domain.RunStatus
	Summary *domain.RunSummary
	Error   *string
	Actions []domain.Action
}

type Service struct {
	repo         repository.RunLogRepository
	defaultLimit int
	maxLimit     int
	now          func() time.Time
	newID        func() (string, error)
}

func NewService(repo repository.RunLogRepository, cfg *config.Config) *Service {
	s := &Service{
		repo:         repo,
		defaultLimit: defaultHistoryLimit,
		maxLimit:     maxHistoryLimit,
		now:          time.Now,
		newID:        utils.GenerateRunID,
	}

	if cfg != nil {
		if cfg.DecisionRun.HistoryDefaultLimit > 0 {
			s.defaultLimit = cfg.DecisionRun.HistoryDefaultLimit
		}
		if cfg.DecisionRun.HistoryMaxLimit > 0 {
			s.maxLimit = cfg.DecisionRun.HistoryMaxLimit
		}
	}

	return s
}

func (s *Service) Start(ctx context.Context, params StartParams) (string, error) {
	if params.CustomerID == "" {
		return "", NewRunLogError(ErrInvalidRunRequest, apiErrors.ErrMissingRequiredData, "", "customer_id é obrigatório")
	}
	if !params.Usecase.IsValid() {
		return "", NewRunLogError(ErrInvalidRunRequest, apiErrors.ErrInvalidUsecase, "", fmt.Sprintf("usecase inválido: %q", params.Usecase))
	}

	runID, err := s.newID()
	if err != nil {
		return "", NewRunLogError(ErrGenerateRunID, apiErrors.ErrInternalServer, "", err.Error())
	}

	triggeredBy := params.TriggeredBy
	if triggeredBy == "" {
		triggeredBy = domain.TriggerAPI
	}

	run := &domain.Run{
		ID:          runID,
		CustomerID:  params.CustomerID,
		Usecase:     params.Usecase,
		TriggeredBy: triggeredBy,
		DryRun:      params.DryRun,
		Status:      domain.RunStatusRunning,
		StartedAt:   s.now().UTC(),
		Actions:     []domain.Action{},
	}

	if err := s.repo.Insert(ctx, run); err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": params.CustomerID,
			"usecase":     params.Usecase,
			"error":       err.Error(),
		}).Error("runlog: falha ao registrar início da execução")
		return "", NewRunLogError(ErrRunLogWrite, apiErrors.ErrDatabaseOperation, runID, "falha ao registrar início da execução")
	}

	logrus.WithFields(logrus.Fields{
		"run_id":       runID,
		"customer_id":  params.CustomerID,
		"usecase":      params.Usecase,
		"triggered_by": triggeredBy,
		"dry_run":      params.DryRun,
	}).Info("runlog: execução iniciada")

	return runID, nil
}

func (s *Service) AppendAction(ctx context.Context, runID string, action domain.Action) error {
	if err := s.repo.AppendAction(ctx, runID, action); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewRunLogError(ErrRunNotFound, apiErrors.ErrRunNotFound, runID, "")
		}
		if errors.Is(err, repository.ErrRunSealed) {
			return NewRunLogError(ErrRunAlreadySealed, apiErrors.ErrRunCompleted, runID, "execução já finalizada não aceita novas ações")
		}
		return NewRunLogError(ErrRunLogWrite, apiErrors.ErrDatabaseOperation, runID, err.Error())
	}
	return nil
}

// Complete grava o estado final. Chamadas repetidas para uma execução já finalizada não alteram nada.
func (s *Service) Complete(ctx context.Context, runID string, params CompleteParams) error {
	if !params.Status.IsTerminal() {
		return NewRunLogError(ErrInvalidRunRequest, apiErrors.ErrInvalidRequest, runID, fmt.Sprintf("status final inválido: %q", params.Status))
	}

	updated, err := s.repo.Complete(ctx, runID, repository.RunCompletion{
		Status:      params.Status,
		Summary:     params.Summary,
		Error:       params.Error,
		Actions:     params.Actions,
		CompletedAt: s.now().UTC(),
	})
	if err != nil {
		return NewRunLogError(ErrRunLogWrite, apiErrors.ErrDatabaseOperation, runID, err.Error())
	}

	if updated {
		logrus.WithFields(logrus.Fields{
			"run_id": runID,
			"status": params.Status,
		}).Info("runlog: execução finalizada")
		return nil
	}

	if _, err := s.repo.GetByID(ctx, runID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewRunLogError(ErrRunNotFound, apiErrors.ErrRunNotFound, runID, "")
		}
		return NewRunLogError(ErrRunLogRead, apiErrors.ErrDatabaseOperation, runID, err.Error())
	}

	logrus.WithField("run_id", runID).Debug("runlog: execução já finalizada, nada a fazer")
	return nil
}

// History lista as execuções mais recentes do cliente, no máximo limit, da mais nova para a mais antiga
func (s *Service) History(ctx context.Context, customerID string, limit int, includeDryRuns bool) ([]domain.RunMetadata, error) {
	if customerID == "" {
		return nil, NewRunLogError(ErrInvalidRunRequest, apiErrors.ErrMissingRequiredData, "", "customer_id é obrigatório")
	}

	limit = s.clampLimit(limit)

	runs, err := s.repo.ListByCustomer(ctx, customerID, limit, includeDryRuns)
	if err != nil {
		return nil, NewRunLogError(ErrRunLogRead, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
	if len(runs) > limit {
		runs = runs[:limit]
	}

	return runs, nil
}

func (s *Service) clampLimit(limit int) int {
	if limit <= 0 {
		return s.defaultLimit
	}
	if limit > s.maxLimit {
		return s.maxLimit
	}
	return limit
}

func (s *Service) Get(ctx context.Context, runID string) (*domain.Run, error) {
	run, err := s.repo.GetByID(ctx, runID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewRunLogError(ErrRunNotFound, apiErrors.ErrRunNotFound, runID, "")
		}
		return nil, NewRunLogError(ErrRunLogRead, apiErrors.ErrDatabaseOperation, runID, err.Error())
	}
	return run, nil
}
