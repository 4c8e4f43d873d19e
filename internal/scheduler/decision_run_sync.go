package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/stensrud/agentic-dsta/infrastructure/repository"
	"github.com/stensrud/agentic-dsta/internal/config"
	"github.com/stensrud/agentic-dsta/internal/domain"
	"github.com/stensrud/agentic-dsta/internal/usecases/orchestrating"
)

var ErrSyncInProgress = errors.New("decision run sync already in progress")

// DecisionRunSyncConfig representa a configuração do agendador de execuções
type DecisionRunSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
	DryRun              bool
	Usecases            []domain.Usecase
}

// DecisionRunSyncService agenda uma execução por cliente configurado em cada caso de uso
type DecisionRunSyncService struct {
	scheduler           *gocron.Scheduler
	config              DecisionRunSyncConfig
	configRepo          repository.CustomerConfigRepository
	orchestrator        orchestrating.Orchestrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncRuns        int
	lastSyncFailures    int
}

func NewDecisionRunSyncService(
	configRepo repository.CustomerConfigRepository,
	orchestrator orchestrating.Orchestrator,
	appConfig *config.Config,
) *DecisionRunSyncService {
	syncConfig := DecisionRunSyncConfig{
		CronSchedule:        appConfig.DecisionRun.CronSchedule,
		RequestDelaySeconds: appConfig.DecisionRun.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.DecisionRun.MaxConcurrentJobs,
		SyncEnabled:         appConfig.DecisionRun.Enabled,
		DryRun:              appConfig.DecisionRun.DefaultDryRun,
		Usecases:            parseUsecases(appConfig.DecisionRun.ScheduledUsecases),
	}
	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
		"dry_run":               syncConfig.DryRun,
		"usecases":              syncConfig.Usecases,
	}).Info("Configuração do agendador de execuções carregada")

	return &DecisionRunSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       syncConfig,
		configRepo:   configRepo,
		orchestrator: orchestrator,
	}
}

func parseUsecases(values []string) []domain.Usecase {
	usecases := make([]domain.Usecase, 0, len(values))
	for _, value := range values {
		usecase := domain.Usecase(value)
		if !usecase.IsValid() {
			logrus.WithField("usecase", value).Warn("Caso de uso agendado desconhecido. Ignorando.")
			continue
		}
		usecases = append(usecases, usecase)
	}
	return usecases
}

// Start inicia o agendador
func (s *DecisionRunSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Execuções agendadas desabilitadas por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de execuções")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar execuções: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de execuções")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DecisionRunSyncService) tryBegin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *DecisionRunSyncService) runAll(ctx context.Context) {
	if !s.tryBegin() {
		logrus.Info("Execuções agendadas já em andamento, ignorando")
		return
	}
	s.syncAll(ctx)
}

// syncAll percorre os casos de uso e dispara uma execução por cliente.
// Precisa ser chamado com syncRunning já marcado.
func (s *DecisionRunSyncService) syncAll(ctx context.Context) {
	startTime := time.Now()
	runs, failures := 0, 0

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.lastSyncRuns = runs
		s.lastSyncFailures = failures
		s.syncMutex.Unlock()
	}()

	for _, usecase := range s.config.Usecases {
		customerIDs, err := s.configRepo.ListCustomerIDs(ctx, usecase)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"usecase": usecase,
				"error":   err.Error(),
			}).Error("Erro ao buscar clientes para execução agendada")
			continue
		}

		if len(customerIDs) == 0 {
			logrus.WithField("usecase", usecase).Info("Nenhum cliente configurado para o caso de uso")
			continue
		}

		ok, failed := s.runCustomers(ctx, usecase, customerIDs)
		runs += ok + failed
		failures += failed
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"runs":     runs,
		"failures": failures,
	}).Info("Execuções agendadas concluídas")
}

// runCustomers executa os clientes com no máximo MaxConcurrentJobs em paralelo
func (s *DecisionRunSyncService) runCustomers(ctx context.Context, usecase domain.Usecase, customerIDs []string) (int, int) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok       int
		failures int
	)

	for _, customerID := range customerIDs {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(customerID string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			succeeded := s.runCustomer(ctx, usecase, customerID)

			mu.Lock()
			if succeeded {
				ok++
			} else {
				failures++
			}
			mu.Unlock()

			if s.config.RequestDelaySeconds > 0 {
				time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
			}
		}(customerID)
	}

	wg.Wait()
	return ok, failures
}

func (s *DecisionRunSyncService) runCustomer(ctx context.Context, usecase domain.Usecase, customerID string) bool {
	fields := logrus.Fields{
		"customer_id": customerID,
		"usecase":     usecase,
		"dry_run":     s.config.DryRun,
	}

	result, err := s.orchestrator.Run(ctx, orchestrating.RunRequest{
		CustomerID:  customerID,
		Usecase:     usecase,
		TriggeredBy: domain.TriggerScheduler,
		DryRun:      s.config.DryRun,
	})
	if err != nil {
		if errors.Is(err, orchestrating.ErrRunInProgress) {
			logrus.WithFields(fields).Warn("Cliente já possui execução em andamento. Pulando.")
		} else {
			logrus.WithFields(fields).WithError(err).Error("Erro na execução agendada do cliente")
		}
		return false
	}

	fields["run_id"] = result.RunID
	fields["status"] = result.Status
	logrus.WithFields(fields).Info("Execução agendada do cliente concluída")

	return result.Status != domain.RunStatusError
}

// TriggerManualSync inicia manualmente as execuções de todos os clientes.
// Retorna ErrSyncInProgress se já houver uma rodada em andamento.
func (s *DecisionRunSyncService) TriggerManualSync(ctx context.Context) error {
	if !s.tryBegin() {
		logrus.Info("Execuções agendadas já em andamento, ignorando solicitação manual")
		return ErrSyncInProgress
	}

	logrus.Info("Iniciando execuções manuais para todos os clientes")
	go s.syncAll(context.WithoutCancel(ctx))
	return nil
}

// GetStatus retorna o status atual do agendador
func (s *DecisionRunSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_dry_run":           s.config.DryRun,
		"sync_usecases":          s.config.Usecases,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_runs":         s.lastSyncRuns,
		"last_sync_failures":     s.lastSyncFailures,
	}
}
