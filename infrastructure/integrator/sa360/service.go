package sa360

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	sa360domain "github.com/stensrud/agentic-dsta/infrastructure/integrator/sa360/domain"
	"github.com/stensrud/agentic-dsta/infrastructure/integrator/sa360/reportclient"
	"github.com/stensrud/agentic-dsta/internal/domain"
	"github.com/stensrud/agentic-dsta/pkg/utils"
)

var ErrNoCampaigns = errors.New("sa360: no campaigns returned for customer")

const campaignReportQuery = `SELECT campaign.id, campaign.name, campaign.status, campaign.advertising_channel_type, campaign.bidding_strategy_type, campaign.end_date, campaign_budget.amount_micros FROM campaign WHERE campaign.status != 'REMOVED'`

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Reporter lê o estado autoritativo das campanhas no SA360
type Reporter interface {
	ListCampaigns(ctx context.Context, customerID, loginCustomerID string) ([]domain.SheetRow, error)
}

type SA360Reporter struct {
	Client reportclient.Client
}

func New(client reportclient.Client) *SA360Reporter {
	return &SA360Reporter{
		Client: client,
	}
}

// ListCampaigns devolve uma SheetRow por campanha, com as colunas validadas no formato do relatório
func (r *SA360Reporter) ListCampaigns(ctx context.Context, customerID, loginCustomerID string) ([]domain.SheetRow, error) {
	rows, err := r.Client.Search(ctx, customerID, loginCustomerID, campaignReportQuery)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Error("sa360: falha ao buscar campanhas")
		return nil, fmt.Errorf("sa360: listing campaigns for %s: %w", customerID, err)
	}

	campaigns := make([]domain.SheetRow, 0, len(rows))
	for _, row := range rows {
		if row.Campaign == nil {
			continue
		}
		campaigns = append(campaigns, FactoryReportRow(customerID, row))
	}

	if len(campaigns) == 0 {
		return nil, ErrNoCampaigns
	}

	return campaigns, nil
}

func FactoryReportRow(customerID string, row sa360domain.Row) domain.SheetRow {
	sheetRow := domain.SheetRow{
		CampaignID:      strconv.FormatInt(row.Campaign.ID, 10),
		CampaignName:    row.Campaign.Name,
		Status:          row.Campaign.Status,
		CampaignType:    row.Campaign.AdvertisingChannelType,
		BidStrategyType: row.Campaign.BiddingStrategyType,
		EndDate:         row.Campaign.EndDate,
		CustomerID:      customerID,
	}

	if row.CampaignBudget != nil {
		sheetRow.Budget = strconv.FormatFloat(utils.MicrosToCurrency(row.CampaignBudget.AmountMicros), 'f', 2, 64)
	}

	return sheetRow
}
