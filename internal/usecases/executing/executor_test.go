package executing

import (
	"context"
	"net/http"
	"testing"

	adsdomain "github.com/stensrud/agentic-dsta/infrastructure/integrator/googleads/domain"
	"github.com/stensrud/agentic-dsta/infrastructure/integrator/googleads/mocks"
	"github.com/stensrud/agentic-dsta/internal/domain"
	"github.com/stensrud/agentic-dsta/internal/usecases/auditing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func int64Ptr(v int64) *int64 { return &v }

func TestNew_SelectsVariant(t *testing.T) {
	actions := auditing.NewActionLogger()

	assert.IsType(t, &SimulatedExecutor{}, New(true, nil, actions))
	assert.IsType(t, &RealExecutor{}, New(false, nil, actions))
	assert.True(t, New(true, nil, actions).DryRun())
	assert.False(t, New(false, nil, actions).DryRun())
}

func TestExecutors_ActionShapeParity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockMutator := mocks.NewMockMutator(ctrl)

	changes := []struct {
		name  string
		apply func(e Executor) domain.Action
		setup func()
	}{
		{
			name: "Status",
			apply: func(e Executor) domain.Action {
				return e.ApplyStatusChange(ctx, "123", domain.CampaignStatusChange{CampaignID: "111", Status: domain.CampaignStatusPaused})
			},
			setup: func() {
				mockMutator.EXPECT().UpdateCampaignStatus(ctx, "123", "111", domain.CampaignStatusPaused).
					Return("customers/123/campaigns/111", nil)
			},
		},
		{
			name: "Orçamento",
			apply: func(e Executor) domain.Action {
				return e.ApplyBudgetChange(ctx, "123", domain.BudgetChange{CampaignID: "111", BudgetMicros: 50_000_000})
			},
			setup: func() {
				mockMutator.EXPECT().UpdateCampaignBudget(ctx, "123", "111", int64(50_000_000)).
					Return("customers/123/campaignBudgets/9", nil)
			},
		},
		{
			name: "Estratégia de lance",
			apply: func(e Executor) domain.Action {
				return e.ApplyBiddingStrategyChange(ctx, "123", domain.BiddingStrategyChange{
					CampaignID: "111",
					Scheme:     domain.BiddingScheme{Kind: domain.SchemeMaximizeConversions, TargetCPAMicros: int64Ptr(3_000_000)},
				})
			},
			setup: func() {
				mockMutator.EXPECT().UpdateBiddingStrategy(ctx, "123", "111", gomock.Any()).
					Return("customers/123/campaigns/111", nil)
			},
		},
		{
			name: "Portfólio",
			apply: func(e Executor) domain.Action {
				return e.ApplyPortfolioStrategyChange(ctx, "123", domain.PortfolioStrategyChange{
					ResourceName:    "customers/123/biddingStrategies/77",
					Type:            domain.SchemeTargetCPA,
					TargetCPAMicros: int64Ptr(4_000_000),
				})
			},
			setup: func() {
				mockMutator.EXPECT().UpdatePortfolioStrategy(ctx, "123", gomock.Any()).
					Return("customers/123/biddingStrategies/77", nil)
			},
		},
		{
			name: "Localização",
			apply: func(e Executor) domain.Action {
				return e.ApplyGeoTargetChange(ctx, "123", domain.GeoTargetChange{CampaignID: "111", LocationIDs: []string{"1001775"}})
			},
			setup: func() {
				mockMutator.EXPECT().ReplaceGeoTargets(ctx, "123", gomock.Any()).
					Return("customers/123/campaignCriteria/111~1001775", nil)
			},
		},
	}

	for _, tt := range changes {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			realActions := auditing.NewActionLogger()
			simActions := auditing.NewActionLogger()

			realAction := tt.apply(New(false, mockMutator, realActions))
			simAction := tt.apply(New(true, mockMutator, simActions))

			assert.Equal(t, realAction.Tool, simAction.Tool)
			assert.Equal(t, realAction.Params, simAction.Params)
			assert.Equal(t, realAction.Description, simAction.Description)
			assert.Equal(t, realAction.Warnings, simAction.Warnings)
			assert.Equal(t, realAction.Result.Message, simAction.Result.Message)
			assert.Equal(t, realAction.Result.Error, simAction.Result.Error)
			assert.False(t, realAction.Simulated)
			assert.True(t, simAction.Simulated)
			assert.True(t, realAction.Result.Success)
			assert.True(t, simAction.Result.Success)
			assert.Contains(t, simAction.Result.ResourceReference, "simulated/")
			assert.NotEmpty(t, realAction.Result.ResourceReference)

			assert.Equal(t, 1, realActions.Count())
			assert.Equal(t, 1, simActions.Count())
		})
	}
}

func TestRealExecutor_SurfacesAPIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockMutator := mocks.NewMockMutator(ctrl)
	actions := auditing.NewActionLogger()

	apiErr := &adsdomain.APIError{
		HTTPStatus: http.StatusBadRequest,
		Code:       http.StatusBadRequest,
		Status:     "INVALID_ARGUMENT",
		Message:    "Request contains an invalid argument.",
		Failures: []adsdomain.FailureDetail{{
			ErrorCode: map[string]string{"rangeError": "TOO_LOW"},
			Message:   "Too low.",
		}},
	}

	mockMutator.EXPECT().
		UpdateCampaignBudget(ctx, "123", "111", int64(1)).
		Return("", apiErr)

	action := New(false, mockMutator, actions).ApplyBudgetChange(ctx, "123", domain.BudgetChange{CampaignID: "111", BudgetMicros: 1})

	assert.False(t, action.Result.Success)
	require.NotNil(t, action.Result.Error)
	assert.Equal(t, domain.ActionErrorExternalAPI, action.Result.Error.Kind)
	assert.Equal(t, "rangeError=TOO_LOW", action.Result.Error.Code)
	assert.Contains(t, action.Result.Error.Message, "Too low.")
	assert.Len(t, actions.Snapshot(), 1)
}

func TestSimulatedExecutor_ReferencesPortfolioID(t *testing.T) {
	actions := auditing.NewActionLogger()

	action := New(true, nil, actions).ApplyPortfolioStrategyChange(context.Background(), "123", domain.PortfolioStrategyChange{
		ResourceName:    "customers/123/biddingStrategies/77",
		Type:            domain.SchemeTargetCPA,
		TargetCPAMicros: int64Ptr(4_000_000),
	})

	assert.Equal(t, "simulated/77", action.Result.ResourceReference)
	assert.Equal(t, ToolPortfolioStrategy, action.Tool)
	assert.Equal(t, int64(4_000_000), action.Params["target_cpa_micros"])
	assert.False(t, action.Timestamp.IsZero())
}
