package domain

type BiddingSchemeKind string

const (
	SchemeMaximizeConversions     BiddingSchemeKind = "MAXIMIZE_CONVERSIONS"
	SchemeMaximizeConversionValue BiddingSchemeKind = "MAXIMIZE_CONVERSION_VALUE"
	SchemeManualCPC               BiddingSchemeKind = "MANUAL_CPC"
	SchemeTargetSpend             BiddingSchemeKind = "TARGET_SPEND"
	SchemeTargetImpressionShare   BiddingSchemeKind = "TARGET_IMPRESSION_SHARE"
	SchemeManualCPM               BiddingSchemeKind = "MANUAL_CPM"
	SchemeManualCPV               BiddingSchemeKind = "MANUAL_CPV"
	SchemePercentCPC              BiddingSchemeKind = "PERCENT_CPC"
	SchemeCommission              BiddingSchemeKind = "COMMISSION"
	SchemePortfolio               BiddingSchemeKind = "PORTFOLIO"

	// Só existem como estratégias de portfólio
	SchemeTargetCPA  BiddingSchemeKind = "TARGET_CPA"
	SchemeTargetROAS BiddingSchemeKind = "TARGET_ROAS"
)

// IsMaximize indica se o esquema é da família Maximize*
func (k BiddingSchemeKind) IsMaximize() bool {
	return k == SchemeMaximizeConversions || k == SchemeMaximizeConversionValue
}

// IsPortfolioOnly indica se o tipo só pode ser usado como estratégia de portfólio
func (k BiddingSchemeKind) IsPortfolioOnly() bool {
	return k == SchemeTargetCPA || k == SchemeTargetROAS
}

type ImpressionShareLocation string

const (
	LocationAnywhereOnPage    ImpressionShareLocation = "ANYWHERE_ON_PAGE"
	LocationTopOfPage         ImpressionShareLocation = "TOP_OF_PAGE"
	LocationAbsoluteTopOfPage ImpressionShareLocation = "ABSOLUTE_TOP_OF_PAGE"
)

func (l ImpressionShareLocation) IsValid() bool {
	switch l {
	case LocationAnywhereOnPage, LocationTopOfPage, LocationAbsoluteTopOfPage:
		return true
	}
	return false
}

// BiddingScheme é a variante de lance de uma campanha. Apenas os campos do Kind informado
// são considerados; PortfolioResourceName só vale para SchemePortfolio.
type BiddingScheme struct {
	Kind                   BiddingSchemeKind        `json:"kind"`
	TargetCPAMicros        *int64                   `json:"target_cpa_micros,omitempty"`
	TargetROAS             *float64                 `json:"target_roas,omitempty"`
	EnhancedCPC            *bool                    `json:"enhanced_cpc_enabled,omitempty"`
	CPCBidCeilingMicros    *int64                   `json:"cpc_bid_ceiling_micros,omitempty"`
	Location               *ImpressionShareLocation `json:"location,omitempty"`
	LocationFractionMicros *int64                   `json:"location_fraction_micros,omitempty"`
	CommissionRateMicros   *int64                   `json:"commission_rate_micros,omitempty"`
	PortfolioResourceName  string                   `json:"portfolio_resource_name,omitempty"`
}

func (b BiddingScheme) IsPortfolio() bool {
	return b.Kind == SchemePortfolio
}
