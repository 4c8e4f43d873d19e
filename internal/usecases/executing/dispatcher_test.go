package executing

import (
	"context"
	"errors"
	"testing"

	"github.com/stensrud/agentic-dsta/infrastructure/integrator/googleads"
	"github.com/stensrud/agentic-dsta/infrastructure/integrator/googleads/mocks"
	"github.com/stensrud/agentic-dsta/internal/domain"
	"github.com/stensrud/agentic-dsta/internal/usecases/auditing"
	"github.com/stensrud/agentic-dsta/internal/usecases/validating"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDispatcher_Dispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockAds := mocks.NewMockIntegrator(ctrl)
	validator := validating.NewValidator(validating.DefaultRules())
	noConversions := 0.0

	tests := []struct {
		name     string
		dryRun   bool
		change   domain.Change
		setup    func()
		validate func(t *testing.T, action domain.Action, actions *auditing.ActionLogger)
	}{
		{
			name:   "Esquema não suportado pelo canal é registrado como rejeitado sem mutação",
			change: domain.BiddingStrategyChange{CampaignID: "111", Scheme: domain.BiddingScheme{Kind: domain.SchemeTargetSpend}},
			setup: func() {
				mockAds.EXPECT().GetCampaign(ctx, "123", "111").
					Return(&domain.Campaign{ID: "111", ChannelType: domain.ChannelVideo}, nil)
			},
			validate: func(t *testing.T, action domain.Action, actions *auditing.ActionLogger) {
				assert.False(t, action.Result.Success)
				require.NotNil(t, action.Result.Error)
				assert.Equal(t, domain.ActionErrorValidation, action.Result.Error.Kind)
				assert.Equal(t, validating.CodeUnsupportedForChannel, action.Result.Error.Code)
				assert.True(t, action.Rejected())
				assert.Equal(t, ToolBiddingStrategy, action.Tool)
				assert.Equal(t, 1, actions.Count())
			},
		},
		{
			name:   "Maximize conversions sem conversões recentes segue com aviso",
			change: domain.BiddingStrategyChange{CampaignID: "111", Scheme: domain.BiddingScheme{Kind: domain.SchemeMaximizeConversions}},
			setup: func() {
				mockAds.EXPECT().GetCampaign(ctx, "123", "111").
					Return(&domain.Campaign{ID: "111", ChannelType: domain.ChannelSearch, RecentConversions: &noConversions}, nil)
				mockAds.EXPECT().UpdateBiddingStrategy(gomock.Any(), "123", "111", gomock.Any()).
					Return("customers/123/campaigns/111", nil)
			},
			validate: func(t *testing.T, action domain.Action, actions *auditing.ActionLogger) {
				assert.True(t, action.Result.Success)
				assert.Equal(t, []string{validating.FlatlineWarning}, action.Warnings)
				assert.Equal(t, "customers/123/campaigns/111", action.Result.ResourceReference)
				assert.Equal(t, 1, actions.Count())
			},
		},
		{
			name:   "Falha ao ler a campanha gera ação com erro externo",
			change: domain.BiddingStrategyChange{CampaignID: "111", Scheme: domain.BiddingScheme{Kind: domain.SchemeManualCPC}},
			setup: func() {
				mockAds.EXPECT().GetCampaign(ctx, "123", "111").
					Return(nil, errors.New("connection reset"))
			},
			validate: func(t *testing.T, action domain.Action, actions *auditing.ActionLogger) {
				assert.False(t, action.Result.Success)
				require.NotNil(t, action.Result.Error)
				assert.Equal(t, domain.ActionErrorExternalAPI, action.Result.Error.Kind)
				assert.Equal(t, 1, actions.Count())
			},
		},
		{
			name:   "Campanha inexistente é argumento inválido",
			change: domain.BiddingStrategyChange{CampaignID: "999", Scheme: domain.BiddingScheme{Kind: domain.SchemeManualCPC}},
			setup: func() {
				mockAds.EXPECT().GetCampaign(ctx, "123", "999").
					Return(nil, googleads.ErrCampaignNotFound)
			},
			validate: func(t *testing.T, action domain.Action, actions *auditing.ActionLogger) {
				require.NotNil(t, action.Result.Error)
				assert.Equal(t, domain.ActionErrorInvalidArguments, action.Result.Error.Kind)
			},
		},
		{
			name:   "Status inválido é rejeitado antes de qualquer chamada",
			change: domain.CampaignStatusChange{CampaignID: "111", Status: domain.CampaignStatusRemoved},
			setup:  func() {},
			validate: func(t *testing.T, action domain.Action, actions *auditing.ActionLogger) {
				require.NotNil(t, action.Result.Error)
				assert.Equal(t, domain.ActionErrorValidation, action.Result.Error.Kind)
				assert.Equal(t, validating.CodeInvalidValue, action.Result.Error.Code)
				assert.Equal(t, ToolCampaignStatus, action.Tool)
			},
		},
		{
			name:   "Dry run não chama a API e marca rejeições como simuladas",
			dryRun: true,
			change: domain.BudgetChange{CampaignID: "111", BudgetMicros: 0},
			setup:  func() {},
			validate: func(t *testing.T, action domain.Action, actions *auditing.ActionLogger) {
				assert.True(t, action.Simulated)
				assert.True(t, action.Rejected())
			},
		},
		{
			name:   "Dry run aprovado é simulado com sucesso",
			dryRun: true,
			change: domain.GeoTargetChange{CampaignID: "111", LocationIDs: []string{"1001775"}, Negative: true},
			setup:  func() {},
			validate: func(t *testing.T, action domain.Action, actions *auditing.ActionLogger) {
				assert.True(t, action.Simulated)
				assert.True(t, action.Result.Success)
				assert.Equal(t, "simulated/111", action.Result.ResourceReference)
				assert.Equal(t, true, action.Params["negative"])
			},
		},
		{
			name: "Portfólio avisa sobre campanhas vinculadas",
			change: domain.PortfolioStrategyChange{
				ResourceName:    "customers/123/biddingStrategies/77",
				Type:            domain.SchemeTargetCPA,
				TargetCPAMicros: int64Ptr(5_000_000),
			},
			setup: func() {
				mockAds.EXPECT().GetPortfolioStrategy(ctx, "123", "customers/123/biddingStrategies/77").
					Return(&domain.PortfolioBiddingStrategy{
						ResourceName:      "customers/123/biddingStrategies/77",
						Type:              domain.SchemeTargetCPA,
						LinkedCampaignIDs: []string{"1", "2"},
					}, nil)
				mockAds.EXPECT().UpdatePortfolioStrategy(gomock.Any(), "123", gomock.Any()).
					Return("customers/123/biddingStrategies/77", nil)
			},
			validate: func(t *testing.T, action domain.Action, actions *auditing.ActionLogger) {
				assert.True(t, action.Result.Success)
				require.Len(t, action.Warnings, 1)
				assert.Contains(t, action.Warnings[0], "1, 2")
			},
		},
		{
			name: "Portfólio de outro cliente é rejeitado sem leitura",
			change: domain.PortfolioStrategyChange{
				ResourceName:    "customers/999/biddingStrategies/77",
				Type:            domain.SchemeTargetCPA,
				TargetCPAMicros: int64Ptr(5_000_000),
			},
			setup: func() {},
			validate: func(t *testing.T, action domain.Action, actions *auditing.ActionLogger) {
				require.NotNil(t, action.Result.Error)
				assert.Equal(t, validating.CodeInvalidSchemeShape, action.Result.Error.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			actions := auditing.NewActionLogger()
			dispatcher := NewDispatcher(mockAds, validator, New(tt.dryRun, mockAds, actions), actions)

			action := dispatcher.Dispatch(ctx, "123", tt.change)
			tt.validate(t, action, actions)
		})
	}
}
