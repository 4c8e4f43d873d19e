package googleads

import (
	"fmt"
	"strconv"
	"strings"

	adsdomain "github.com/stensrud/agentic-dsta/infrastructure/integrator/googleads/domain"
	"github.com/stensrud/agentic-dsta/internal/domain"
)

func FactoryCampaign(row adsdomain.GoogleAdsRow) *domain.Campaign {
	c := row.Campaign
	campaign := &domain.Campaign{
		ID:                 strconv.FormatInt(c.ID, 10),
		ResourceName:       c.ResourceName,
		Name:               c.Name,
		ChannelType:        domain.ChannelType(c.AdvertisingChannelType),
		Status:             domain.CampaignStatus(c.Status),
		BudgetResourceName: c.CampaignBudget,
		BiddingScheme:      FactoryBiddingScheme(c),
	}

	if row.CampaignBudget != nil {
		campaign.BudgetMicros = row.CampaignBudget.AmountMicros
	}

	return campaign
}

// FactoryBiddingScheme monta o esquema atual da campanha. Uma campanha ligada a um
// portfólio é sempre reportada como PORTFOLIO, independente do tipo da estratégia.
func FactoryBiddingScheme(c *adsdomain.Campaign) domain.BiddingScheme {
	if c.BiddingStrategy != "" {
		return domain.BiddingScheme{Kind: domain.SchemePortfolio, PortfolioResourceName: c.BiddingStrategy}
	}

	scheme := domain.BiddingScheme{Kind: domain.BiddingSchemeKind(c.BiddingStrategyType)}

	switch scheme.Kind {
	case domain.SchemeMaximizeConversions:
		if c.MaximizeConversions != nil && c.MaximizeConversions.TargetCpaMicros > 0 {
			scheme.TargetCPAMicros = int64Ptr(c.MaximizeConversions.TargetCpaMicros)
		}
	case domain.SchemeMaximizeConversionValue:
		if c.MaximizeConversionValue != nil && c.MaximizeConversionValue.TargetRoas > 0 {
			scheme.TargetROAS = float64Ptr(c.MaximizeConversionValue.TargetRoas)
		}
	case domain.SchemeTargetImpressionShare:
		if tis := c.TargetImpressionShare; tis != nil {
			location := domain.ImpressionShareLocation(tis.Location)
			scheme.Location = &location
			scheme.LocationFractionMicros = int64Ptr(tis.LocationFractionMicros)
			if tis.CpcBidCeilingMicros > 0 {
				scheme.CPCBidCeilingMicros = int64Ptr(tis.CpcBidCeilingMicros)
			}
		}
	}

	return scheme
}

func FactoryPortfolio(s *adsdomain.BiddingStrategy) *domain.PortfolioBiddingStrategy {
	portfolio := &domain.PortfolioBiddingStrategy{
		ResourceName:      s.ResourceName,
		ID:                strconv.FormatInt(s.ID, 10),
		Name:              s.Name,
		Type:              domain.BiddingSchemeKind(s.Type),
		LinkedCampaignIDs: make([]string, 0),
	}

	if s.TargetCpa != nil && s.TargetCpa.TargetCpaMicros > 0 {
		portfolio.TargetCPAMicros = int64Ptr(s.TargetCpa.TargetCpaMicros)
	}
	if s.TargetRoas != nil && s.TargetRoas.TargetRoas > 0 {
		portfolio.TargetROAS = float64Ptr(s.TargetRoas.TargetRoas)
	}

	return portfolio
}

// CampaignSchemePayload devolve o recurso de campanha e a update mask para aplicar o esquema
func CampaignSchemePayload(resourceName string, scheme domain.BiddingScheme) (adsdomain.Campaign, string, error) {
	campaign := adsdomain.Campaign{ResourceName: resourceName}

	switch scheme.Kind {
	case domain.SchemePortfolio:
		if scheme.PortfolioResourceName == "" {
			return campaign, "", fmt.Errorf("%w: portfolio without resource name", ErrUnsupportedScheme)
		}
		campaign.BiddingStrategy = scheme.PortfolioResourceName
		return campaign, "bidding_strategy", nil

	case domain.SchemeMaximizeConversions:
		campaign.MaximizeConversions = &adsdomain.MaximizeConversions{TargetCpaMicros: derefInt64(scheme.TargetCPAMicros)}
		return campaign, "maximize_conversions", nil

	case domain.SchemeMaximizeConversionValue:
		campaign.MaximizeConversionValue = &adsdomain.MaximizeConversionValue{TargetRoas: derefFloat64(scheme.TargetROAS)}
		return campaign, "maximize_conversion_value", nil

	case domain.SchemeManualCPC:
		enhanced := scheme.EnhancedCPC != nil && *scheme.EnhancedCPC
		campaign.ManualCpc = &adsdomain.ManualCpc{EnhancedCpcEnabled: enhanced}
		return campaign, "manual_cpc", nil

	case domain.SchemeManualCPM:
		campaign.ManualCpm = &adsdomain.Empty{}
		return campaign, "manual_cpm", nil

	case domain.SchemeManualCPV:
		campaign.ManualCpv = &adsdomain.Empty{}
		return campaign, "manual_cpv", nil

	case domain.SchemeTargetSpend:
		campaign.TargetSpend = &adsdomain.TargetSpend{CpcBidCeilingMicros: derefInt64(scheme.CPCBidCeilingMicros)}
		return campaign, "target_spend", nil

	case domain.SchemeTargetImpressionShare:
		tis := &adsdomain.TargetImpressionShare{
			LocationFractionMicros: derefInt64(scheme.LocationFractionMicros),
			CpcBidCeilingMicros:    derefInt64(scheme.CPCBidCeilingMicros),
		}
		if scheme.Location != nil {
			tis.Location = string(*scheme.Location)
		}
		campaign.TargetImpressionShare = tis
		return campaign, "target_impression_share", nil

	case domain.SchemePercentCPC:
		campaign.PercentCpc = &adsdomain.PercentCpc{CpcBidCeilingMicros: derefInt64(scheme.CPCBidCeilingMicros)}
		return campaign, "percent_cpc", nil

	case domain.SchemeCommission:
		campaign.Commission = &adsdomain.Commission{CommissionRateMicros: derefInt64(scheme.CommissionRateMicros)}
		return campaign, "commission", nil
	}

	return campaign, "", fmt.Errorf("%w: %s", ErrUnsupportedScheme, scheme.Kind)
}

// PortfolioPayload devolve a estratégia de portfólio e a update mask dos parâmetros informados
func PortfolioPayload(change domain.PortfolioStrategyChange) (adsdomain.BiddingStrategy, string, error) {
	strategy := adsdomain.BiddingStrategy{ResourceName: change.ResourceName}
	mask := make([]string, 0, 2)

	switch change.Type {
	case domain.SchemeTargetCPA:
		strategy.TargetCpa = &adsdomain.TargetCpa{
			TargetCpaMicros:     derefInt64(change.TargetCPAMicros),
			CpcBidCeilingMicros: derefInt64(change.CPCBidCeilingMicros),
		}
		if change.TargetCPAMicros != nil {
			mask = append(mask, "target_cpa.target_cpa_micros")
		}
		if change.CPCBidCeilingMicros != nil {
			mask = append(mask, "target_cpa.cpc_bid_ceiling_micros")
		}

	case domain.SchemeTargetROAS:
		strategy.TargetRoas = &adsdomain.TargetRoas{
			TargetRoas:          derefFloat64(change.TargetROAS),
			CpcBidCeilingMicros: derefInt64(change.CPCBidCeilingMicros),
		}
		if change.TargetROAS != nil {
			mask = append(mask, "target_roas.target_roas")
		}
		if change.CPCBidCeilingMicros != nil {
			mask = append(mask, "target_roas.cpc_bid_ceiling_micros")
		}

	case domain.SchemeTargetSpend:
		strategy.TargetSpend = &adsdomain.TargetSpend{CpcBidCeilingMicros: derefInt64(change.CPCBidCeilingMicros)}
		if change.CPCBidCeilingMicros != nil {
			mask = append(mask, "target_spend.cpc_bid_ceiling_micros")
		}

	case domain.SchemeMaximizeConversions:
		strategy.MaximizeConversions = &adsdomain.MaximizeConversions{TargetCpaMicros: derefInt64(change.TargetCPAMicros)}
		if change.TargetCPAMicros != nil {
			mask = append(mask, "maximize_conversions.target_cpa_micros")
		}

	case domain.SchemeMaximizeConversionValue:
		strategy.MaximizeConversionValue = &adsdomain.MaximizeConversionValue{TargetRoas: derefFloat64(change.TargetROAS)}
		if change.TargetROAS != nil {
			mask = append(mask, "maximize_conversion_value.target_roas")
		}

	default:
		return strategy, "", fmt.Errorf("%w: portfolio type %s", ErrUnsupportedScheme, change.Type)
	}

	if len(mask) == 0 {
		return strategy, "", fmt.Errorf("%w: no fields to update for %s", ErrUnsupportedScheme, change.Type)
	}

	return strategy, strings.Join(mask, ","), nil
}

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefFloat64(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
