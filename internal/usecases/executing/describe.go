package executing

import (
	"fmt"
	"strings"

	"github.com/stensrud/agentic-dsta/internal/domain"
	"github.com/stensrud/agentic-dsta/pkg/utils"
)

const (
	ToolCampaignStatus    = "campaign_status_change"
	ToolBudget            = "budget_change"
	ToolBiddingStrategy   = "bidding_strategy_change"
	ToolPortfolioStrategy = "portfolio_strategy_change"
	ToolGeoTarget         = "geo_target_change"
)

// call descreve uma mutação da mesma forma para os executores real e simulado
type call struct {
	tool        string
	params      map[string]any
	description string
	target      string
}

func (c call) action() domain.Action {
	return domain.Action{
		Tool:        c.tool,
		Params:      c.params,
		Description: c.description,
	}
}

// successMessage é o mesmo para a variante real e a simulada
func (c call) successMessage() string {
	return fmt.Sprintf("%s aplicado em %s", c.tool, c.target)
}

func describeStatus(customerID string, change domain.CampaignStatusChange) call {
	return call{
		tool: ToolCampaignStatus,
		params: map[string]any{
			"customer_id": customerID,
			"campaign_id": change.CampaignID,
			"status":      string(change.Status),
		},
		description: fmt.Sprintf("Alterar status da campanha %s para %s", change.CampaignID, change.Status),
		target:      change.CampaignID,
	}
}

func describeBudget(customerID string, change domain.BudgetChange) call {
	return call{
		tool: ToolBudget,
		params: map[string]any{
			"customer_id":   customerID,
			"campaign_id":   change.CampaignID,
			"budget_micros": change.BudgetMicros,
		},
		description: fmt.Sprintf("Alterar orçamento diário da campanha %s para %.2f",
			change.CampaignID, utils.MicrosToCurrency(change.BudgetMicros)),
		target: change.CampaignID,
	}
}

func describeBidding(customerID string, change domain.BiddingStrategyChange) call {
	params := schemeParams(change.Scheme)
	params["customer_id"] = customerID
	params["campaign_id"] = change.CampaignID

	description := fmt.Sprintf("Alterar estratégia de lance da campanha %s para %s", change.CampaignID, change.Scheme.Kind)
	if change.Scheme.IsPortfolio() {
		description = fmt.Sprintf("Vincular a campanha %s ao portfólio %s", change.CampaignID, change.Scheme.PortfolioResourceName)
	}

	return call{
		tool:        ToolBiddingStrategy,
		params:      params,
		description: description,
		target:      change.CampaignID,
	}
}

func describePortfolio(customerID string, change domain.PortfolioStrategyChange) call {
	params := map[string]any{
		"customer_id":   customerID,
		"resource_name": change.ResourceName,
		"type":          string(change.Type),
	}
	details := make([]string, 0, 3)

	if change.TargetCPAMicros != nil {
		params["target_cpa_micros"] = *change.TargetCPAMicros
		details = append(details, fmt.Sprintf("CPA alvo %.2f", utils.MicrosToCurrency(*change.TargetCPAMicros)))
	}
	if change.TargetROAS != nil {
		params["target_roas"] = *change.TargetROAS
		details = append(details, fmt.Sprintf("ROAS alvo %.2f", *change.TargetROAS))
	}
	if change.CPCBidCeilingMicros != nil {
		params["cpc_bid_ceiling_micros"] = *change.CPCBidCeilingMicros
		details = append(details, fmt.Sprintf("teto de CPC %.2f", utils.MicrosToCurrency(*change.CPCBidCeilingMicros)))
	}

	return call{
		tool:        ToolPortfolioStrategy,
		params:      params,
		description: fmt.Sprintf("Atualizar portfólio %s (%s): %s", change.ResourceName, change.Type, strings.Join(details, ", ")),
		target:      portfolioID(change.ResourceName),
	}
}

func describeGeoTarget(customerID string, change domain.GeoTargetChange) call {
	params := map[string]any{
		"customer_id":  customerID,
		"campaign_id":  change.CampaignID,
		"location_ids": append([]string(nil), change.LocationIDs...),
		"negative":     change.Negative,
	}
	if change.AdGroupID != "" {
		params["ad_group_id"] = change.AdGroupID
	}
	if change.LocationName != "" {
		params["location_name"] = change.LocationName
	}

	verb := "Segmentar"
	if change.Negative {
		verb = "Excluir"
	}

	scope := "campanha " + change.CampaignID
	if change.AdGroupID != "" {
		scope = fmt.Sprintf("grupo de anúncios %s da campanha %s", change.AdGroupID, change.CampaignID)
	}

	return call{
		tool:        ToolGeoTarget,
		params:      params,
		description: fmt.Sprintf("%s localizações %s na %s", verb, strings.Join(change.LocationIDs, ", "), scope),
		target:      change.CampaignID,
	}
}

func schemeParams(scheme domain.BiddingScheme) map[string]any {
	params := map[string]any{"scheme": string(scheme.Kind)}

	if scheme.TargetCPAMicros != nil {
		params["target_cpa_micros"] = *scheme.TargetCPAMicros
	}
	if scheme.TargetROAS != nil {
		params["target_roas"] = *scheme.TargetROAS
	}
	if scheme.EnhancedCPC != nil {
		params["enhanced_cpc_enabled"] = *scheme.EnhancedCPC
	}
	if scheme.CPCBidCeilingMicros != nil {
		params["cpc_bid_ceiling_micros"] = *scheme.CPCBidCeilingMicros
	}
	if scheme.Location != nil {
		params["location"] = string(*scheme.Location)
	}
	if scheme.LocationFractionMicros != nil {
		params["location_fraction_micros"] = *scheme.LocationFractionMicros
	}
	if scheme.CommissionRateMicros != nil {
		params["commission_rate_micros"] = *scheme.CommissionRateMicros
	}
	if scheme.PortfolioResourceName != "" {
		params["portfolio_resource_name"] = scheme.PortfolioResourceName
	}

	return params
}

func portfolioID(resourceName string) string {
	if i := strings.LastIndex(resourceName, "/"); i >= 0 {
		return resourceName[i+1:]
	}
	return resourceName
}
