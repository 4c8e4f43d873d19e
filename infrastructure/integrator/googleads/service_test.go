package googleads

import (
	"context"
	"errors"
	"testing"

	adsdomain "github.com/stensrud/agentic-dsta/infrastructure/integrator/googleads/domain"
	"github.com/stensrud/agentic-dsta/infrastructure/integrator/googleads/mocks"
	"github.com/stensrud/agentic-dsta/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGoogleAdsIntegrator_GetCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(mockClient)
	ctx := context.Background()

	tests := []struct {
		name       string
		campaignID string
		setup      func()
		validate   func(t *testing.T, campaign *domain.Campaign, err error)
	}{
		{
			name:       "Campanha com Maximize conversions e conversões recentes",
			campaignID: "111",
			setup: func() {
				mockClient.EXPECT().
					Search(ctx, "123", gomock.Any()).
					Return([]adsdomain.GoogleAdsRow{{
						Campaign: &adsdomain.Campaign{
							ID:                     111,
							ResourceName:           "customers/123/campaigns/111",
							Name:                   "Search BR",
							Status:                 "ENABLED",
							AdvertisingChannelType: "SEARCH",
							BiddingStrategyType:    "MAXIMIZE_CONVERSIONS",
							CampaignBudget:         "customers/123/campaignBudgets/9",
							MaximizeConversions:    &adsdomain.MaximizeConversions{TargetCpaMicros: 2_000_000},
						},
						CampaignBudget: &adsdomain.CampaignBudget{AmountMicros: 10_000_000},
					}}, nil)
				mockClient.EXPECT().
					Search(ctx, "123", gomock.Any()).
					Return([]adsdomain.GoogleAdsRow{
						{Metrics: &adsdomain.Metrics{Conversions: 3}},
						{Metrics: &adsdomain.Metrics{Conversions: 1.5}},
					}, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				require.NoError(t, err)
				assert.Equal(t, "111", campaign.ID)
				assert.Equal(t, domain.ChannelSearch, campaign.ChannelType)
				assert.Equal(t, domain.SchemeMaximizeConversions, campaign.BiddingScheme.Kind)
				require.NotNil(t, campaign.BiddingScheme.TargetCPAMicros)
				assert.Equal(t, int64(2_000_000), *campaign.BiddingScheme.TargetCPAMicros)
				assert.Equal(t, int64(10_000_000), campaign.BudgetMicros)
				require.NotNil(t, campaign.RecentConversions)
				assert.Equal(t, 4.5, *campaign.RecentConversions)
			},
		},
		{
			name:       "Campanha ligada a portfólio é reportada como PORTFOLIO",
			campaignID: "222",
			setup: func() {
				mockClient.EXPECT().
					Search(ctx, "123", gomock.Any()).
					Return([]adsdomain.GoogleAdsRow{{
						Campaign: &adsdomain.Campaign{
							ID:                     222,
							AdvertisingChannelType: "DISPLAY",
							BiddingStrategyType:    "TARGET_CPA",
							BiddingStrategy:        "customers/123/biddingStrategies/77",
						},
					}}, nil)
				mockClient.EXPECT().
					Search(ctx, "123", gomock.Any()).
					Return(nil, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.SchemePortfolio, campaign.BiddingScheme.Kind)
				assert.Equal(t, "customers/123/biddingStrategies/77", campaign.BiddingScheme.PortfolioResourceName)
				require.NotNil(t, campaign.RecentConversions)
				assert.Zero(t, *campaign.RecentConversions)
			},
		},
		{
			name:       "Falha nas conversões não impede a leitura da campanha",
			campaignID: "333",
			setup: func() {
				mockClient.EXPECT().
					Search(ctx, "123", gomock.Any()).
					Return([]adsdomain.GoogleAdsRow{{Campaign: &adsdomain.Campaign{ID: 333, AdvertisingChannelType: "VIDEO"}}}, nil)
				mockClient.EXPECT().
					Search(ctx, "123", gomock.Any()).
					Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				require.NoError(t, err)
				assert.Nil(t, campaign.RecentConversions)
			},
		},
		{
			name:       "Campanha inexistente",
			campaignID: "444",
			setup: func() {
				mockClient.EXPECT().
					Search(ctx, "123", gomock.Any()).
					Return([]adsdomain.GoogleAdsRow{}, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.ErrorIs(t, err, ErrCampaignNotFound)
				assert.Nil(t, campaign)
			},
		},
		{
			name:       "ID não numérico é rejeitado sem chamar a API",
			campaignID: "1 OR 1=1",
			setup:      func() {},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.ErrorIs(t, err, ErrInvalidIdentifier)
				assert.Nil(t, campaign)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			campaign, err := integrator.GetCampaign(ctx, "123", tt.campaignID)
			tt.validate(t, campaign, err)
		})
	}
}

func TestGoogleAdsIntegrator_GetPortfolioStrategy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(mockClient)
	ctx := context.Background()

	mockClient.EXPECT().
		Search(ctx, "123", gomock.Any()).
		Return([]adsdomain.GoogleAdsRow{{
			BiddingStrategy: &adsdomain.BiddingStrategy{
				ResourceName: "customers/123/biddingStrategies/77",
				ID:           77,
				Name:         "CPA compartilhado",
				Type:         "TARGET_CPA",
				TargetCpa:    &adsdomain.TargetCpa{TargetCpaMicros: 5_000_000},
			},
		}}, nil)
	mockClient.EXPECT().
		Search(ctx, "123", gomock.Any()).
		Return([]adsdomain.GoogleAdsRow{
			{Campaign: &adsdomain.Campaign{ID: 1}},
			{Campaign: &adsdomain.Campaign{ID: 2}},
		}, nil)

	portfolio, err := integrator.GetPortfolioStrategy(ctx, "123", "customers/123/biddingStrategies/77")
	require.NoError(t, err)
	assert.Equal(t, domain.SchemeTargetCPA, portfolio.Type)
	require.NotNil(t, portfolio.TargetCPAMicros)
	assert.Equal(t, int64(5_000_000), *portfolio.TargetCPAMicros)
	assert.Equal(t, []string{"1", "2"}, portfolio.LinkedCampaignIDs)

	_, err = integrator.GetPortfolioStrategy(ctx, "123", "customers/123/biddingStrategies/77' OR '1'='1")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestGoogleAdsIntegrator_UpdateCampaignBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(mockClient)
	ctx := context.Background()

	mockClient.EXPECT().
		Search(ctx, "123", "SELECT campaign.campaign_budget FROM campaign WHERE campaign.id = 111").
		Return([]adsdomain.GoogleAdsRow{{Campaign: &adsdomain.Campaign{CampaignBudget: "customers/123/campaignBudgets/9"}}}, nil)
	mockClient.EXPECT().
		Mutate(ctx, "123", adsdomain.ResourceCampaignBudgets, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ adsdomain.MutateResource, ops []adsdomain.Operation) (*adsdomain.MutateResponse, error) {
			require.Len(t, ops, 1)
			assert.Equal(t, "amount_micros", ops[0].UpdateMask)
			budget, ok := ops[0].Update.(adsdomain.CampaignBudget)
			require.True(t, ok)
			assert.Equal(t, "customers/123/campaignBudgets/9", budget.ResourceName)
			assert.Equal(t, int64(25_000_000), budget.AmountMicros)
			return &adsdomain.MutateResponse{Results: []adsdomain.MutateResult{{ResourceName: budget.ResourceName}}}, nil
		})

	ref, err := integrator.UpdateCampaignBudget(ctx, "123", "111", 25_000_000)
	require.NoError(t, err)
	assert.Equal(t, "customers/123/campaignBudgets/9", ref)
}

func TestGoogleAdsIntegrator_UpdateBiddingStrategy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(mockClient)
	ctx := context.Background()

	mockClient.EXPECT().
		Mutate(ctx, "123-456-7890", adsdomain.ResourceCampaigns, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ adsdomain.MutateResource, ops []adsdomain.Operation) (*adsdomain.MutateResponse, error) {
			require.Len(t, ops, 1)
			assert.Equal(t, "bidding_strategy", ops[0].UpdateMask)
			campaign := ops[0].Update.(adsdomain.Campaign)
			assert.Equal(t, "customers/1234567890/campaigns/111", campaign.ResourceName)
			assert.Equal(t, "customers/1234567890/biddingStrategies/77", campaign.BiddingStrategy)
			return &adsdomain.MutateResponse{Results: []adsdomain.MutateResult{{ResourceName: campaign.ResourceName}}}, nil
		})

	ref, err := integrator.UpdateBiddingStrategy(ctx, "123-456-7890", "111", domain.BiddingScheme{
		Kind:                  domain.SchemePortfolio,
		PortfolioResourceName: "customers/1234567890/biddingStrategies/77",
	})
	require.NoError(t, err)
	assert.Equal(t, "customers/1234567890/campaigns/111", ref)
}

func TestGoogleAdsIntegrator_ReplaceGeoTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(mockClient)
	ctx := context.Background()

	mockClient.EXPECT().
		Search(ctx, "123", gomock.Any()).
		Return([]adsdomain.GoogleAdsRow{
			{CampaignCriterion: &adsdomain.CampaignCriterion{ResourceName: "customers/123/campaignCriteria/111~1", Negative: false}},
			{CampaignCriterion: &adsdomain.CampaignCriterion{ResourceName: "customers/123/campaignCriteria/111~2", Negative: true}},
		}, nil)
	mockClient.EXPECT().
		Mutate(ctx, "123", adsdomain.ResourceCampaignCriteria, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ adsdomain.MutateResource, ops []adsdomain.Operation) (*adsdomain.MutateResponse, error) {
			require.Len(t, ops, 3)
			assert.Equal(t, "customers/123/campaignCriteria/111~1", ops[0].Remove)

			created := ops[1].Create.(adsdomain.CampaignCriterion)
			assert.Equal(t, "customers/123/campaigns/111", created.Campaign)
			assert.Equal(t, "geoTargetConstants/1001775", created.Location.GeoTargetConstant)
			assert.False(t, created.Negative)

			return &adsdomain.MutateResponse{Results: []adsdomain.MutateResult{
				{ResourceName: "customers/123/campaignCriteria/111~1"},
				{ResourceName: "customers/123/campaignCriteria/111~1001775"},
				{ResourceName: "customers/123/campaignCriteria/111~1001776"},
			}}, nil
		})

	ref, err := integrator.ReplaceGeoTargets(ctx, "123", domain.GeoTargetChange{
		CampaignID:  "111",
		LocationIDs: []string{"1001775", "1001776"},
	})
	require.NoError(t, err)
	assert.Equal(t, "customers/123/campaignCriteria/111~1001776", ref)

	_, err = integrator.ReplaceGeoTargets(ctx, "123", domain.GeoTargetChange{CampaignID: "111", LocationIDs: []string{"São Paulo"}})
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestPortfolioPayload(t *testing.T) {
	cpa := int64(4_000_000)
	ceiling := int64(9_000_000)
	roas := 3.5

	tests := []struct {
		name     string
		change   domain.PortfolioStrategyChange
		wantMask string
		wantErr  error
	}{
		{
			name:     "Target CPA com teto de CPC",
			change:   domain.PortfolioStrategyChange{Type: domain.SchemeTargetCPA, TargetCPAMicros: &cpa, CPCBidCeilingMicros: &ceiling},
			wantMask: "target_cpa.target_cpa_micros,target_cpa.cpc_bid_ceiling_micros",
		},
		{
			name:     "Target ROAS",
			change:   domain.PortfolioStrategyChange{Type: domain.SchemeTargetROAS, TargetROAS: &roas},
			wantMask: "target_roas.target_roas",
		},
		{
			name:    "Sem campos para atualizar",
			change:  domain.PortfolioStrategyChange{Type: domain.SchemeTargetSpend},
			wantErr: ErrUnsupportedScheme,
		},
		{
			name:    "Tipo não suportado",
			change:  domain.PortfolioStrategyChange{Type: domain.SchemeManualCPC},
			wantErr: ErrUnsupportedScheme,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mask, err := PortfolioPayload(tt.change)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMask, mask)
		})
	}
}
