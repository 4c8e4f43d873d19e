package adsdomain

// Recursos REST do Google Ads. Valores int64 trafegam como string no JSON da API.

type Campaign struct {
	ResourceName            string                   `json:"resourceName,omitempty"`
	ID                      int64                    `json:"id,omitempty,string"`
	Name                    string                   `json:"name,omitempty"`
	Status                  string                   `json:"status,omitempty"`
	AdvertisingChannelType  string                   `json:"advertisingChannelType,omitempty"`
	BiddingStrategyType     string                   `json:"biddingStrategyType,omitempty"`
	BiddingStrategy         string                   `json:"biddingStrategy,omitempty"`
	CampaignBudget          string                   `json:"campaignBudget,omitempty"`
	EndDate                 string                   `json:"endDate,omitempty"`
	MaximizeConversions     *MaximizeConversions     `json:"maximizeConversions,omitempty"`
	MaximizeConversionValue *MaximizeConversionValue `json:"maximizeConversionValue,omitempty"`
	ManualCpc               *ManualCpc               `json:"manualCpc,omitempty"`
	ManualCpm               *Empty                   `json:"manualCpm,omitempty"`
	ManualCpv               *Empty                   `json:"manualCpv,omitempty"`
	TargetSpend             *TargetSpend             `json:"targetSpend,omitempty"`
	TargetImpressionShare   *TargetImpressionShare   `json:"targetImpressionShare,omitempty"`
	PercentCpc              *PercentCpc              `json:"percentCpc,omitempty"`
	Commission              *Commission              `json:"commission,omitempty"`
}

type Empty struct{}

type MaximizeConversions struct {
	TargetCpaMicros int64 `json:"targetCpaMicros,omitempty,string"`
}

type MaximizeConversionValue struct {
	TargetRoas float64 `json:"targetRoas,omitempty"`
}

type ManualCpc struct {
	EnhancedCpcEnabled bool `json:"enhancedCpcEnabled,omitempty"`
}

type TargetSpend struct {
	CpcBidCeilingMicros int64 `json:"cpcBidCeilingMicros,omitempty,string"`
}

type TargetImpressionShare struct {
	Location               string `json:"location,omitempty"`
	LocationFractionMicros int64  `json:"locationFractionMicros,omitempty,string"`
	CpcBidCeilingMicros    int64  `json:"cpcBidCeilingMicros,omitempty,string"`
}

type PercentCpc struct {
	CpcBidCeilingMicros int64 `json:"cpcBidCeilingMicros,omitempty,string"`
	EnhancedCpcEnabled  bool  `json:"enhancedCpcEnabled,omitempty"`
}

type Commission struct {
	CommissionRateMicros int64 `json:"commissionRateMicros,omitempty,string"`
}

type TargetCpa struct {
	TargetCpaMicros     int64 `json:"targetCpaMicros,omitempty,string"`
	CpcBidCeilingMicros int64 `json:"cpcBidCeilingMicros,omitempty,string"`
}

type TargetRoas struct {
	TargetRoas          float64 `json:"targetRoas,omitempty"`
	CpcBidCeilingMicros int64   `json:"cpcBidCeilingMicros,omitempty,string"`
}

type CampaignBudget struct {
	ResourceName string `json:"resourceName,omitempty"`
	AmountMicros int64  `json:"amountMicros,omitempty,string"`
}

type BiddingStrategy struct {
	ResourceName            string                   `json:"resourceName,omitempty"`
	ID                      int64                    `json:"id,omitempty,string"`
	Name                    string                   `json:"name,omitempty"`
	Type                    string                   `json:"type,omitempty"`
	CampaignCount           int64                    `json:"campaignCount,omitempty,string"`
	TargetCpa               *TargetCpa               `json:"targetCpa,omitempty"`
	TargetRoas              *TargetRoas              `json:"targetRoas,omitempty"`
	TargetSpend             *TargetSpend             `json:"targetSpend,omitempty"`
	MaximizeConversions     *MaximizeConversions     `json:"maximizeConversions,omitempty"`
	MaximizeConversionValue *MaximizeConversionValue `json:"maximizeConversionValue,omitempty"`
}

type LocationInfo struct {
	GeoTargetConstant string `json:"geoTargetConstant,omitempty"`
}

type CampaignCriterion struct {
	ResourceName string        `json:"resourceName,omitempty"`
	Campaign     string        `json:"campaign,omitempty"`
	CriterionID  int64         `json:"criterionId,omitempty,string"`
	Type         string        `json:"type,omitempty"`
	Negative     bool          `json:"negative,omitempty"`
	Location     *LocationInfo `json:"location,omitempty"`
}

type AdGroupCriterion struct {
	ResourceName string        `json:"resourceName,omitempty"`
	AdGroup      string        `json:"adGroup,omitempty"`
	CriterionID  int64         `json:"criterionId,omitempty,string"`
	Type         string        `json:"type,omitempty"`
	Negative     bool          `json:"negative,omitempty"`
	Location     *LocationInfo `json:"location,omitempty"`
}

type Metrics struct {
	Conversions float64 `json:"conversions,omitempty"`
}

// GoogleAdsRow é uma linha de resposta do googleAds:search
type GoogleAdsRow struct {
	Campaign          *Campaign          `json:"campaign,omitempty"`
	CampaignBudget    *CampaignBudget    `json:"campaignBudget,omitempty"`
	BiddingStrategy   *BiddingStrategy   `json:"biddingStrategy,omitempty"`
	CampaignCriterion *CampaignCriterion `json:"campaignCriterion,omitempty"`
	AdGroupCriterion  *AdGroupCriterion  `json:"adGroupCriterion,omitempty"`
	Metrics           *Metrics           `json:"metrics,omitempty"`
}

type SearchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

type SearchResponse struct {
	Results       []GoogleAdsRow `json:"results"`
	NextPageToken string         `json:"nextPageToken,omitempty"`
}

type MutateResource string

const (
	ResourceCampaigns         MutateResource = "campaigns"
	ResourceCampaignBudgets   MutateResource = "campaignBudgets"
	ResourceCampaignCriteria  MutateResource = "campaignCriteria"
	ResourceAdGroupCriteria   MutateResource = "adGroupCriteria"
	ResourceBiddingStrategies MutateResource = "biddingStrategies"
)

// Operation é uma operação de mutate; apenas um entre Create, Update e Remove deve ser preenchido
type Operation struct {
	Create     any    `json:"create,omitempty"`
	Update     any    `json:"update,omitempty"`
	UpdateMask string `json:"updateMask,omitempty"`
	Remove     string `json:"remove,omitempty"`
}

type MutateRequest struct {
	Operations   []Operation `json:"operations"`
	ValidateOnly bool        `json:"validateOnly,omitempty"`
}

type MutateResult struct {
	ResourceName string `json:"resourceName"`
}

type MutateResponse struct {
	Results []MutateResult `json:"results"`
}
