package orchestrating_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	googleadsmocks "github.com/stensrud/agentic-dsta/infrastructure/integrator/googleads/mocks"
	"github.com/stensrud/agentic-dsta/infrastructure/lease"
	leasemocks "github.com/stensrud/agentic-dsta/infrastructure/lease/mocks"
	"github.com/stensrud/agentic-dsta/infrastructure/repository"
	repomocks "github.com/stensrud/agentic-dsta/infrastructure/repository/mocks"
	"github.com/stensrud/agentic-dsta/internal/config"
	"github.com/stensrud/agentic-dsta/internal/domain"
	"github.com/stensrud/agentic-dsta/internal/usecases/auditing"
	"github.com/stensrud/agentic-dsta/internal/usecases/orchestrating"
	"github.com/stensrud/agentic-dsta/internal/usecases/orchestrating/mocks"
	"github.com/stensrud/agentic-dsta/internal/usecases/reconciling"
	"github.com/stensrud/agentic-dsta/internal/usecases/runlogging"
	runlogmocks "github.com/stensrud/agentic-dsta/internal/usecases/runlogging/mocks"
	"github.com/stensrud/agentic-dsta/internal/usecases/validating"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	leaser     *leasemocks.MockLeaser
	runLogger  *runlogmocks.MockRunLogger
	configs    *repomocks.MockCustomerConfigRepository
	pending    *repomocks.MockPendingChangeRepository
	reader     *googleadsmocks.MockReader
	mutator    *googleadsmocks.MockMutator
	reconciler *mocks.MockSheetReconciler
	service    *orchestrating.Service
}

func newFixture(ctrl *gomock.Controller) *fixture {
	return newFixtureWithConfig(ctrl, nil)
}

func newFixtureWithConfig(ctrl *gomock.Controller, cfg *config.Config) *fixture {
	f := &fixture{
		leaser:     leasemocks.NewMockLeaser(ctrl),
		runLogger:  runlogmocks.NewMockRunLogger(ctrl),
		configs:    repomocks.NewMockCustomerConfigRepository(ctrl),
		pending:    repomocks.NewMockPendingChangeRepository(ctrl),
		reader:     googleadsmocks.NewMockReader(ctrl),
		mutator:    googleadsmocks.NewMockMutator(ctrl),
		reconciler: mocks.NewMockSheetReconciler(ctrl),
	}
	f.service = orchestrating.NewService(
		f.leaser,
		f.runLogger,
		f.configs,
		f.pending,
		f.reader,
		f.mutator,
		validating.NewValidator(validating.DefaultRules()),
		f.reconciler,
		cfg,
	)
	return f
}

func (f *fixture) expectLease(customerID string) {
	f.leaser.EXPECT().Acquire(gomock.Any(), customerID).Return("token-1", nil)
	f.leaser.EXPECT().Release(gomock.Any(), customerID, "token-1").Return(nil)
}

func TestService_RunGoogleAdsDryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	f := newFixture(ctrl)

	f.expectLease("123")
	f.configs.EXPECT().GetGoogleAdsConfig(gomock.Any(), "123").Return(&domain.GoogleAdsConfig{CustomerID: "123"}, nil)
	f.runLogger.EXPECT().Start(gomock.Any(), runlogging.StartParams{
		CustomerID:  "123",
		Usecase:     domain.UsecaseGoogleAds,
		TriggeredBy: domain.TriggerScheduler,
		DryRun:      true,
	}).Return("run-1", nil)
	f.pending.EXPECT().ListPending(gomock.Any(), "123", domain.UsecaseGoogleAds).Return([]domain.PendingChange{
		{ID: "p1", Change: domain.ChangeEnvelope{Type: domain.ChangeBudget, CampaignID: "222", BudgetMicros: 10_000_000}},
	}, nil)
	f.runLogger.EXPECT().AppendAction(gomock.Any(), "run-1", gomock.Any()).Return(nil).Times(2)
	f.runLogger.EXPECT().Complete(gomock.Any(), "run-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params runlogging.CompleteParams) error {
			assert.Equal(t, domain.RunStatusSuccess, params.Status)
			assert.Equal(t, 2, params.Summary.Total)
			assert.Nil(t, params.Actions)
			assert.Nil(t, params.Error)
			return nil
		})

	result, err := f.service.Run(ctx, orchestrating.RunRequest{
		CustomerID:  "123",
		Usecase:     domain.UsecaseGoogleAds,
		TriggeredBy: domain.TriggerScheduler,
		DryRun:      true,
		Changes:     []domain.Change{domain.CampaignStatusChange{CampaignID: "111", Status: domain.CampaignStatusPaused}},
	})
	require.NoError(t, err)

	assert.Equal(t, "run-1", result.RunID)
	assert.Equal(t, domain.RunStatusSuccess, result.Status)
	require.Len(t, result.Actions, 2)
	for _, action := range result.Actions {
		assert.True(t, action.Simulated)
		assert.True(t, action.Result.Success)
	}
}

func TestService_RunRejectsConcurrentRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	f.leaser.EXPECT().Acquire(gomock.Any(), "123").Return("", lease.ErrRunInProgress)

	_, err := f.service.Run(context.Background(), orchestrating.RunRequest{CustomerID: "123", Usecase: domain.UsecaseGoogleAds})
	assert.ErrorIs(t, err, orchestrating.ErrRunInProgress)
}

func TestService_RunCustomerNotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	f.expectLease("123")
	f.configs.EXPECT().GetSA360Config(gomock.Any(), "123").Return(nil, repository.ErrNotFound)

	_, err := f.service.Run(context.Background(), orchestrating.RunRequest{CustomerID: "123", Usecase: domain.UsecaseSA360})
	assert.ErrorIs(t, err, orchestrating.ErrCustomerNotFound)
}

func TestService_RunRenewsLeaseUntilRelease(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixtureWithConfig(ctrl, &config.Config{RunLease: config.RunLease{TTL: 30 * time.Millisecond}})

	var released atomic.Bool
	f.leaser.EXPECT().Acquire(gomock.Any(), "123").Return("token-1", nil)
	f.leaser.EXPECT().Renew(gomock.Any(), "123", "token-1").
		DoAndReturn(func(context.Context, string, string) error {
			assert.False(t, released.Load(), "renovação depois da liberação")
			return nil
		}).MinTimes(1)
	f.leaser.EXPECT().Release(gomock.Any(), "123", "token-1").
		DoAndReturn(func(context.Context, string, string) error {
			released.Store(true)
			return nil
		})
	f.configs.EXPECT().GetSA360Config(gomock.Any(), "123").
		DoAndReturn(func(context.Context, string) (*domain.SA360Config, error) {
			time.Sleep(60 * time.Millisecond)
			return nil, repository.ErrNotFound
		})

	_, err := f.service.Run(context.Background(), orchestrating.RunRequest{CustomerID: "123", Usecase: domain.UsecaseSA360})
	assert.ErrorIs(t, err, orchestrating.ErrCustomerNotFound)
	assert.True(t, released.Load())
}

func TestService_RunStartFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	f.expectLease("123")
	f.configs.EXPECT().GetGoogleAdsConfig(gomock.Any(), "123").Return(&domain.GoogleAdsConfig{}, nil)
	f.runLogger.EXPECT().Start(gomock.Any(), gomock.Any()).Return("", errors.New("db down"))

	_, err := f.service.Run(context.Background(), orchestrating.RunRequest{
		CustomerID: "123",
		Usecase:    domain.UsecaseGoogleAds,
		Changes:    []domain.Change{domain.CampaignStatusChange{CampaignID: "111", Status: domain.CampaignStatusPaused}},
	})
	assert.ErrorIs(t, err, orchestrating.ErrStartRun)
}

func TestService_RunLoggingFailureKeepsMutation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	login := "999"

	f.expectLease("123")
	f.configs.EXPECT().GetGoogleAdsConfig(gomock.Any(), "123").Return(&domain.GoogleAdsConfig{LoginCustomerID: &login}, nil)
	f.runLogger.EXPECT().Start(gomock.Any(), gomock.Any()).Return("run-2", nil)
	f.pending.EXPECT().ListPending(gomock.Any(), "123", domain.UsecaseGoogleAds).Return([]domain.PendingChange{
		{ID: "p1", Change: domain.ChangeEnvelope{Type: domain.ChangeCampaignStatus, CampaignID: "111", Status: domain.CampaignStatusPaused}},
	}, nil)
	f.mutator.EXPECT().UpdateCampaignStatus(gomock.Any(), "123", "111", domain.CampaignStatusPaused).Return("customers/123/campaigns/111", nil)
	f.runLogger.EXPECT().AppendAction(gomock.Any(), "run-2", gomock.Any()).Return(errors.New("write timeout"))
	f.runLogger.EXPECT().Complete(gomock.Any(), "run-2", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params runlogging.CompleteParams) error {
			assert.Equal(t, domain.RunStatusCompletedWithLoggingErrors, params.Status)
			require.Len(t, params.Actions, 1)
			assert.True(t, params.Actions[0].Result.Success)
			return nil
		})
	f.pending.EXPECT().MarkConsumed(gomock.Any(), []string{"p1"}, "run-2").Return(nil)

	result, err := f.service.Run(context.Background(), orchestrating.RunRequest{CustomerID: "123", Usecase: domain.UsecaseGoogleAds})
	require.NoError(t, err)
	assert.Equal(t, domain.RunStatusCompletedWithLoggingErrors, result.Status)
	assert.Equal(t, 1, result.Summary.Succeeded)
}

func TestService_RunInvalidPendingChangeIsRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	f.expectLease("123")
	f.configs.EXPECT().GetGoogleAdsConfig(gomock.Any(), "123").Return(&domain.GoogleAdsConfig{}, nil)
	f.runLogger.EXPECT().Start(gomock.Any(), gomock.Any()).Return("run-3", nil)
	f.pending.EXPECT().ListPending(gomock.Any(), "123", domain.UsecaseGoogleAds).Return([]domain.PendingChange{
		{ID: "p9", Change: domain.ChangeEnvelope{Type: "teleport", CampaignID: "111"}},
	}, nil)
	f.runLogger.EXPECT().AppendAction(gomock.Any(), "run-3", gomock.Any()).Return(nil)
	f.runLogger.EXPECT().Complete(gomock.Any(), "run-3", gomock.Any()).Return(nil)
	f.pending.EXPECT().MarkConsumed(gomock.Any(), []string{"p9"}, "run-3").Return(nil)

	result, err := f.service.Run(context.Background(), orchestrating.RunRequest{CustomerID: "123", Usecase: domain.UsecaseGoogleAds})
	require.NoError(t, err)

	require.Len(t, result.Actions, 1)
	assert.Equal(t, domain.ActionErrorInvalidArguments, result.Actions[0].Result.Error.Kind)
	assert.Equal(t, domain.RunStatusError, result.Status)
}

func TestService_RunIndependentCampaignsConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	const campaigns = 25

	changes := make([]domain.Change, 0, campaigns*2)
	for i := 0; i < campaigns; i++ {
		id := fmt.Sprintf("%d", 1000+i)
		changes = append(changes,
			domain.CampaignStatusChange{CampaignID: id, Status: domain.CampaignStatusPaused},
			domain.BudgetChange{CampaignID: id, BudgetMicros: 5_000_000},
		)
	}

	f.expectLease("123")
	f.configs.EXPECT().GetGoogleAdsConfig(gomock.Any(), "123").Return(&domain.GoogleAdsConfig{}, nil)
	f.runLogger.EXPECT().Start(gomock.Any(), gomock.Any()).Return("run-4", nil)
	f.pending.EXPECT().ListPending(gomock.Any(), "123", domain.UsecaseGoogleAds).Return(nil, nil)
	f.runLogger.EXPECT().AppendAction(gomock.Any(), "run-4", gomock.Any()).Return(nil).Times(campaigns * 2)
	f.runLogger.EXPECT().Complete(gomock.Any(), "run-4", gomock.Any()).Return(nil)

	result, err := f.service.Run(context.Background(), orchestrating.RunRequest{
		CustomerID: "123",
		Usecase:    domain.UsecaseGoogleAds,
		DryRun:     true,
		Changes:    changes,
	})
	require.NoError(t, err)
	require.Len(t, result.Actions, campaigns*2)

	// mudanças do mesmo alvo mantêm a ordem
	firstSeen := make(map[string]string)
	for _, action := range result.Actions {
		campaignID := action.Params["campaign_id"].(string)
		if _, ok := firstSeen[campaignID]; !ok {
			firstSeen[campaignID] = action.Tool
		}
	}
	for _, tool := range firstSeen {
		assert.Equal(t, "campaign_status_change", tool)
	}
}

func TestService_RunSA360(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	f.expectLease("123")
	f.configs.EXPECT().GetSA360Config(gomock.Any(), "123").Return(&domain.SA360Config{SheetID: "sheet-1", SheetName: "Plan"}, nil)
	f.runLogger.EXPECT().Start(gomock.Any(), gomock.Any()).Return("run-5", nil)
	f.pending.EXPECT().ListPending(gomock.Any(), "123", domain.UsecaseSA360).Return(nil, nil)
	f.reconciler.EXPECT().Reconcile(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req reconciling.Request, actions *auditing.ActionLogger) (*domain.ReconciliationReport, error) {
			assert.Equal(t, "sheet-1", req.SheetID)
			assert.Len(t, req.Changes, 2)

			actions.Append(domain.Action{Tool: reconciling.ToolSheetUpdate, Result: domain.ActionResult{Success: true}})
			actions.Append(domain.Action{Tool: reconciling.ToolSheetUpdate, Result: domain.ActionResult{
				Error: &domain.ActionError{Kind: domain.ActionErrorReconciliation, Message: "divergência"},
			}})
			return &domain.ReconciliationReport{
				Outcomes: []domain.RowOutcome{
					{CampaignID: "111", Outcome: domain.RowUpdated},
					{CampaignID: "222", Outcome: domain.RowBlocked, Reason: "divergência"},
				},
				Blocked: []domain.BlockedRow{{CampaignID: "222", Reason: "divergência"}},
			}, nil
		})
	f.runLogger.EXPECT().AppendAction(gomock.Any(), "run-5", gomock.Any()).Return(nil).Times(2)
	f.runLogger.EXPECT().Complete(gomock.Any(), "run-5", gomock.Any()).Return(nil)

	result, err := f.service.Run(context.Background(), orchestrating.RunRequest{
		CustomerID: "123",
		Usecase:    domain.UsecaseSA360,
		Changes: []domain.Change{
			domain.CampaignStatusChange{CampaignID: "111", Status: domain.CampaignStatusPaused},
			domain.CampaignStatusChange{CampaignID: "222", Status: domain.CampaignStatusPaused},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RunStatusPartialFailure, result.Status)
	assert.Equal(t, 1, result.Summary.Blocked)
	assert.Equal(t, 1, result.Summary.Updated)
	require.Len(t, result.Blocked, 1)
}

func TestService_RunSA360FetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	f.expectLease("123")
	f.configs.EXPECT().GetSA360Config(gomock.Any(), "123").Return(&domain.SA360Config{SheetID: "sheet-1", SheetName: "Plan"}, nil)
	f.runLogger.EXPECT().Start(gomock.Any(), gomock.Any()).Return("run-6", nil)
	f.pending.EXPECT().ListPending(gomock.Any(), "123", domain.UsecaseSA360).Return([]domain.PendingChange{
		{ID: "p1", Change: domain.ChangeEnvelope{Type: domain.ChangeCampaignStatus, CampaignID: "111", Status: domain.CampaignStatusPaused}},
	}, nil)
	f.reconciler.EXPECT().Reconcile(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, reconciling.ErrFetchReport)
	f.runLogger.EXPECT().Complete(gomock.Any(), "run-6", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params runlogging.CompleteParams) error {
			assert.Equal(t, domain.RunStatusError, params.Status)
			require.NotNil(t, params.Error)
			return nil
		})

	result, err := f.service.Run(context.Background(), orchestrating.RunRequest{CustomerID: "123", Usecase: domain.UsecaseSA360})
	require.NoError(t, err)
	assert.Equal(t, domain.RunStatusError, result.Status)
}

func TestRunStatus(t *testing.T) {
	tests := []struct {
		name      string
		summary   domain.RunSummary
		runErr    error
		logFailed bool
		want      domain.RunStatus
	}{
		{name: "Sem mudanças", summary: domain.RunSummary{}, want: domain.RunStatusSuccess},
		{name: "Tudo aplicado", summary: domain.RunSummary{Total: 2, Succeeded: 2}, want: domain.RunStatusSuccess},
		{name: "Parte rejeitada", summary: domain.RunSummary{Total: 2, Succeeded: 1, Rejected: 1}, want: domain.RunStatusPartialFailure},
		{name: "Parte falhou", summary: domain.RunSummary{Total: 2, Succeeded: 1, Failed: 1}, want: domain.RunStatusPartialFailure},
		{name: "Tudo falhou", summary: domain.RunSummary{Total: 2, Failed: 2}, want: domain.RunStatusError},
		{name: "Erro fatal", summary: domain.RunSummary{Total: 1, Succeeded: 1}, runErr: errors.New("x"), want: domain.RunStatusError},
		{name: "Falha de log", summary: domain.RunSummary{Total: 1, Succeeded: 1}, logFailed: true, want: domain.RunStatusCompletedWithLoggingErrors},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orchestrating.RunStatus(tt.summary, tt.runErr, tt.logFailed))
		})
	}
}
