package sa360

import (
	"context"
	"errors"
	"testing"

	sa360domain "github.com/stensrud/agentic-dsta/infrastructure/integrator/sa360/domain"
	"github.com/stensrud/agentic-dsta/infrastructure/integrator/sa360/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSA360Reporter_ListCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockClient := mocks.NewMockClient(ctrl)
	reporter := New(mockClient)

	mockClient.EXPECT().Search(ctx, "123", "999", campaignReportQuery).Return([]sa360domain.Row{
		{
			Campaign: &sa360domain.Campaign{
				ID:                     111,
				Name:                   "Brand",
				Status:                 "ENABLED",
				AdvertisingChannelType: "SEARCH",
				BiddingStrategyType:    "MANUAL_CPC",
				EndDate:                "2037-12-30",
			},
			CampaignBudget: &sa360domain.CampaignBudget{AmountMicros: 50_000_000},
		},
		{Customer: &sa360domain.Customer{ID: 123}},
	}, nil)

	rows, err := reporter.ListCampaigns(ctx, "123", "999")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "111", rows[0].CampaignID)
	assert.Equal(t, "Brand", rows[0].CampaignName)
	assert.Equal(t, "50.00", rows[0].Budget)
	assert.Equal(t, "2037-12-30", rows[0].EndDate)
	assert.Equal(t, "123", rows[0].CustomerID)
}

func TestSA360Reporter_ListCampaignsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockClient := mocks.NewMockClient(ctrl)
	reporter := New(mockClient)

	boom := errors.New("boom")
	mockClient.EXPECT().Search(ctx, "123", "", campaignReportQuery).Return(nil, boom)
	_, err := reporter.ListCampaigns(ctx, "123", "")
	assert.ErrorIs(t, err, boom)

	mockClient.EXPECT().Search(ctx, "123", "", campaignReportQuery).Return([]sa360domain.Row{}, nil)
	_, err = reporter.ListCampaigns(ctx, "123", "")
	assert.ErrorIs(t, err, ErrNoCampaigns)
}
