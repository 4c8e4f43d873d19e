package googleads

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/stensrud/agentic-dsta/infrastructure/integrator/googleads/adsclient"
	adsdomain "github.com/stensrud/agentic-dsta/infrastructure/integrator/googleads/domain"
	"github.com/stensrud/agentic-dsta/internal/domain"
)

var (
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrPortfolioNotFound  = errors.New("portfolio bidding strategy not found")
	ErrInvalidIdentifier  = errors.New("invalid identifier")
	ErrUnsupportedScheme  = errors.New("unsupported bidding scheme")
	ErrEmptyMutateResults = errors.New("mutate returned no results")
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Reader lê o estado atual usado na validação das mudanças
type Reader interface {
	GetCampaign(ctx context.Context, customerID, campaignID string) (*domain.Campaign, error)
	GetPortfolioStrategy(ctx context.Context, customerID, resourceName string) (*domain.PortfolioBiddingStrategy, error)
}

// Mutator aplica as mudanças e devolve o resource name afetado
type Mutator interface {
	UpdateCampaignStatus(ctx context.Context, customerID, campaignID string, status domain.CampaignStatus) (string, error)
	UpdateCampaignBudget(ctx context.Context, customerID, campaignID string, budgetMicros int64) (string, error)
	UpdateBiddingStrategy(ctx context.Context, customerID, campaignID string, scheme domain.BiddingScheme) (string, error)
	UpdatePortfolioStrategy(ctx context.Context, customerID string, change domain.PortfolioStrategyChange) (string, error)
	ReplaceGeoTargets(ctx context.Context, customerID string, change domain.GeoTargetChange) (string, error)
}

type Integrator interface {
	Reader
	Mutator
}

type GoogleAdsIntegrator struct {
	Client adsclient.Client
}

func New(client adsclient.Client) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{Client: client}
}

func numericID(field, value string) (string, error) {
	if _, err := strconv.ParseInt(value, 10, 64); err != nil {
		return "", fmt.Errorf("%w: %s %q", ErrInvalidIdentifier, field, value)
	}
	return value, nil
}

func campaignResourceName(customerID, campaignID string) string {
	return fmt.Sprintf("customers/%s/campaigns/%s", adsclient.NormalizeCustomerID(customerID), campaignID)
}

func (s *GoogleAdsIntegrator) GetCampaign(ctx context.Context, customerID, campaignID string) (*domain.Campaign, error) {
	id, err := numericID("campaign_id", campaignID)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT campaign.id, campaign.resource_name, campaign.name, campaign.status,
		campaign.advertising_channel_type, campaign.bidding_strategy_type, campaign.bidding_strategy,
		campaign.campaign_budget, campaign.maximize_conversions.target_cpa_micros,
		campaign.maximize_conversion_value.target_roas, campaign.target_impression_share.location,
		campaign.target_impression_share.location_fraction_micros, campaign_budget.amount_micros
		FROM campaign WHERE campaign.id = %s`, id)

	rows, err := s.Client.Search(ctx, customerID, query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("googleads: falha ao buscar campanha")
		return nil, err
	}

	if len(rows) == 0 || rows[0].Campaign == nil {
		return nil, fmt.Errorf("%w: %s", ErrCampaignNotFound, campaignID)
	}

	campaign := FactoryCampaign(rows[0])

	conversions, err := s.recentConversions(ctx, customerID, id)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Warn("googleads: não foi possível obter conversões recentes")
	} else {
		campaign.RecentConversions = &conversions
	}

	return campaign, nil
}

func (s *GoogleAdsIntegrator) recentConversions(ctx context.Context, customerID, campaignID string) (float64, error) {
	query := fmt.Sprintf(`SELECT metrics.conversions FROM campaign
		WHERE campaign.id = %s AND segments.date DURING LAST_30_DAYS`, campaignID)

	rows, err := s.Client.Search(ctx, customerID, query)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, row := range rows {
		if row.Metrics != nil {
			total += row.Metrics.Conversions
		}
	}
	return total, nil
}

func (s *GoogleAdsIntegrator) GetPortfolioStrategy(ctx context.Context, customerID, resourceName string) (*domain.PortfolioBiddingStrategy, error) {
	if resourceName == "" || strings.ContainsAny(resourceName, `'"\`) {
		return nil, fmt.Errorf("%w: resource_name %q", ErrInvalidIdentifier, resourceName)
	}

	query := fmt.Sprintf(`SELECT bidding_strategy.resource_name, bidding_strategy.id, bidding_strategy.name,
		bidding_strategy.type, bidding_strategy.target_cpa.target_cpa_micros, bidding_strategy.target_roas.target_roas
		FROM bidding_strategy WHERE bidding_strategy.resource_name = '%s'`, resourceName)

	rows, err := s.Client.Search(ctx, customerID, query)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 || rows[0].BiddingStrategy == nil {
		return nil, fmt.Errorf("%w: %s", ErrPortfolioNotFound, resourceName)
	}

	portfolio := FactoryPortfolio(rows[0].BiddingStrategy)

	linkedQuery := fmt.Sprintf(`SELECT campaign.id FROM campaign
		WHERE campaign.bidding_strategy = '%s' AND campaign.status != 'REMOVED'`, resourceName)

	linked, err := s.Client.Search(ctx, customerID, linkedQuery)
	if err != nil {
		return nil, err
	}
	for _, row := range linked {
		if row.Campaign != nil {
			portfolio.LinkedCampaignIDs = append(portfolio.LinkedCampaignIDs, strconv.FormatInt(row.Campaign.ID, 10))
		}
	}

	return portfolio, nil
}

func (s *GoogleAdsIntegrator) UpdateCampaignStatus(ctx context.Context, customerID, campaignID string, status domain.CampaignStatus) (string, error) {
	id, err := numericID("campaign_id", campaignID)
	if err != nil {
		return "", err
	}

	operation := adsdomain.Operation{
		Update: adsdomain.Campaign{
			ResourceName: campaignResourceName(customerID, id),
			Status:       string(status),
		},
		UpdateMask: "status",
	}

	return s.mutateOne(ctx, customerID, adsdomain.ResourceCampaigns, operation)
}

func (s *GoogleAdsIntegrator) UpdateCampaignBudget(ctx context.Context, customerID, campaignID string, budgetMicros int64) (string, error) {
	id, err := numericID("campaign_id", campaignID)
	if err != nil {
		return "", err
	}

	rows, err := s.Client.Search(ctx, customerID, fmt.Sprintf(
		"SELECT campaign.campaign_budget FROM campaign WHERE campaign.id = %s", id))
	if err != nil {
		return "", err
	}
	if len(rows) == 0 || rows[0].Campaign == nil || rows[0].Campaign.CampaignBudget == "" {
		return "", fmt.Errorf("%w: %s", ErrCampaignNotFound, campaignID)
	}

	operation := adsdomain.Operation{
		Update: adsdomain.CampaignBudget{
			ResourceName: rows[0].Campaign.CampaignBudget,
			AmountMicros: budgetMicros,
		},
		UpdateMask: "amount_micros",
	}

	return s.mutateOne(ctx, customerID, adsdomain.ResourceCampaignBudgets, operation)
}

func (s *GoogleAdsIntegrator) UpdateBiddingStrategy(ctx context.Context, customerID, campaignID string, scheme domain.BiddingScheme) (string, error) {
	id, err := numericID("campaign_id", campaignID)
	if err != nil {
		return "", err
	}

	payload, mask, err := CampaignSchemePayload(campaignResourceName(customerID, id), scheme)
	if err != nil {
		return "", err
	}

	operation := adsdomain.Operation{Update: payload, UpdateMask: mask}
	return s.mutateOne(ctx, customerID, adsdomain.ResourceCampaigns, operation)
}

func (s *GoogleAdsIntegrator) UpdatePortfolioStrategy(ctx context.Context, customerID string, change domain.PortfolioStrategyChange) (string, error) {
	payload, mask, err := PortfolioPayload(change)
	if err != nil {
		return "", err
	}

	operation := adsdomain.Operation{Update: payload, UpdateMask: mask}
	return s.mutateOne(ctx, customerID, adsdomain.ResourceBiddingStrategies, operation)
}

// ReplaceGeoTargets remove os critérios de localização com a mesma polaridade e cria os novos
// numa única chamada de mutate
func (s *GoogleAdsIntegrator) ReplaceGeoTargets(ctx context.Context, customerID string, change domain.GeoTargetChange) (string, error) {
	campaignID, err := numericID("campaign_id", change.CampaignID)
	if err != nil {
		return "", err
	}

	locationIDs := make([]string, 0, len(change.LocationIDs))
	for _, locationID := range change.LocationIDs {
		id, err := numericID("location_id", locationID)
		if err != nil {
			return "", err
		}
		locationIDs = append(locationIDs, id)
	}

	customer := adsclient.NormalizeCustomerID(customerID)

	if change.AdGroupID != "" {
		adGroupID, err := numericID("ad_group_id", change.AdGroupID)
		if err != nil {
			return "", err
		}
		return s.replaceAdGroupGeoTargets(ctx, customer, adGroupID, locationIDs, change.Negative)
	}

	rows, err := s.Client.Search(ctx, customerID, fmt.Sprintf(`SELECT campaign_criterion.resource_name, campaign_criterion.negative
		FROM campaign_criterion WHERE campaign.id = %s AND campaign_criterion.type = LOCATION`, campaignID))
	if err != nil {
		return "", err
	}

	operations := make([]adsdomain.Operation, 0, len(rows)+len(locationIDs))
	for _, row := range rows {
		if row.CampaignCriterion == nil || row.CampaignCriterion.Negative != change.Negative {
			continue
		}
		operations = append(operations, adsdomain.Operation{Remove: row.CampaignCriterion.ResourceName})
	}

	campaignResource := campaignResourceName(customer, campaignID)
	for _, locationID := range locationIDs {
		operations = append(operations, adsdomain.Operation{
			Create: adsdomain.CampaignCriterion{
				Campaign: campaignResource,
				Negative: change.Negative,
				Location: &adsdomain.LocationInfo{GeoTargetConstant: "geoTargetConstants/" + locationID},
			},
		})
	}

	resp, err := s.Client.Mutate(ctx, customerID, adsdomain.ResourceCampaignCriteria, operations)
	if err != nil {
		return "", err
	}

	return lastResourceName(resp, campaignResource), nil
}

func (s *GoogleAdsIntegrator) replaceAdGroupGeoTargets(ctx context.Context, customerID, adGroupID string, locationIDs []string, negative bool) (string, error) {
	rows, err := s.Client.Search(ctx, customerID, fmt.Sprintf(`SELECT ad_group_criterion.resource_name, ad_group_criterion.negative
		FROM ad_group_criterion WHERE ad_group.id = %s AND ad_group_criterion.type = LOCATION`, adGroupID))
	if err != nil {
		return "", err
	}

	operations := make([]adsdomain.Operation, 0, len(rows)+len(locationIDs))
	for _, row := range rows {
		if row.AdGroupCriterion == nil || row.AdGroupCriterion.Negative != negative {
			continue
		}
		operations = append(operations, adsdomain.Operation{Remove: row.AdGroupCriterion.ResourceName})
	}

	adGroupResource := fmt.Sprintf("customers/%s/adGroups/%s", customerID, adGroupID)
	for _, locationID := range locationIDs {
		operations = append(operations, adsdomain.Operation{
			Create: adsdomain.AdGroupCriterion{
				AdGroup:  adGroupResource,
				Negative: negative,
				Location: &adsdomain.LocationInfo{GeoTargetConstant: "geoTargetConstants/" + locationID},
			},
		})
	}

	resp, err := s.Client.Mutate(ctx, customerID, adsdomain.ResourceAdGroupCriteria, operations)
	if err != nil {
		return "", err
	}

	return lastResourceName(resp, adGroupResource), nil
}

func (s *GoogleAdsIntegrator) mutateOne(ctx context.Context, customerID string, resource adsdomain.MutateResource, operation adsdomain.Operation) (string, error) {
	resp, err := s.Client.Mutate(ctx, customerID, resource, []adsdomain.Operation{operation})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"resource":    resource,
			"error":       err.Error(),
		}).Error("googleads: falha no mutate")
		return "", err
	}

	if resp == nil || len(resp.Results) == 0 {
		return "", ErrEmptyMutateResults
	}

	return resp.Results[0].ResourceName, nil
}

func lastResourceName(resp *adsdomain.MutateResponse, fallback string) string {
	if resp == nil || len(resp.Results) == 0 {
		return fallback
	}
	return resp.Results[len(resp.Results)-1].ResourceName
}
