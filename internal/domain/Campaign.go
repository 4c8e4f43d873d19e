package domain

type ChannelType string

const (
	ChannelSearch         ChannelType = "SEARCH"
	ChannelDisplay        ChannelType = "DISPLAY"
	ChannelVideo          ChannelType = "VIDEO"
	ChannelPerformanceMax ChannelType = "PERFORMANCE_MAX"
	ChannelHotel          ChannelType = "HOTEL"
	ChannelShopping       ChannelType = "SHOPPING"
	ChannelDemandGen      ChannelType = "DEMAND_GEN"
)

type CampaignStatus string

const (
	CampaignStatusEnabled CampaignStatus = "ENABLED"
	CampaignStatusPaused  CampaignStatus = "PAUSED"
	CampaignStatusRemoved CampaignStatus = "REMOVED"
)

// IsSettable indica se o status pode ser aplicado por uma mudança
func (s CampaignStatus) IsSettable() bool {
	return s == CampaignStatusEnabled || s == CampaignStatusPaused
}

// Campaign é o retrato de uma campanha lido da API antes de qualquer mutação
type Campaign struct {
	ID                 string         `json:"id"`
	ResourceName       string         `json:"resource_name"`
	Name               string         `json:"name"`
	ChannelType        ChannelType    `json:"channel_type"`
	Status             CampaignStatus `json:"status"`
	BiddingScheme      BiddingScheme  `json:"bidding_scheme"`
	BudgetMicros       int64          `json:"budget_micros"`
	BudgetResourceName string         `json:"budget_resource_name"`
	GeoTargets         []GeoTarget    `json:"geo_targets,omitempty"`
	RecentConversions  *float64       `json:"recent_conversions,omitempty"`
}

type GeoTarget struct {
	CriterionID  string `json:"criterion_id"`
	LocationID   string `json:"location_id"`
	ResourceName string `json:"resource_name"`
	Negative     bool   `json:"negative"`
}

// PortfolioBiddingStrategy é uma estratégia compartilhada entre várias campanhas
type PortfolioBiddingStrategy struct {
	ResourceName      string            `json:"resource_name"`
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Type              BiddingSchemeKind `json:"type"`
	TargetCPAMicros   *int64            `json:"target_cpa_micros,omitempty"`
	TargetROAS        *float64          `json:"target_roas,omitempty"`
	LinkedCampaignIDs []string          `json:"linked_campaign_ids"`
}
