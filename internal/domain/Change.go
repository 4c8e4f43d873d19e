package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownChangeType = errors.New("unknown change type")

type ChangeKind string

const (
	ChangeCampaignStatus    ChangeKind = "campaign_status"
	ChangeBudget            ChangeKind = "budget"
	ChangeBiddingStrategy   ChangeKind = "bidding_strategy"
	ChangeGeoTarget         ChangeKind = "geo_target"
	ChangePortfolioStrategy ChangeKind = "portfolio_strategy"
)

// Change é um comando de mutação tipado. As variantes concretas são
// CampaignStatusChange, BudgetChange, BiddingStrategyChange, GeoTargetChange
// e PortfolioStrategyChange.
type Change interface {
	Kind() ChangeKind
	// Target identifica o recurso alterado: o ID da campanha ou o resource name do portfólio
	Target() string
}

type CampaignStatusChange struct {
	CampaignID string         `json:"campaign_id"`
	Status     CampaignStatus `json:"status"`
}

func (c CampaignStatusChange) Kind() ChangeKind { return ChangeCampaignStatus }
func (c CampaignStatusChange) Target() string   { return c.CampaignID }

type BudgetChange struct {
	CampaignID   string `json:"campaign_id"`
	BudgetMicros int64  `json:"budget_micros"`
}

func (c BudgetChange) Kind() ChangeKind { return ChangeBudget }
func (c BudgetChange) Target() string   { return c.CampaignID }

type BiddingStrategyChange struct {
	CampaignID string        `json:"campaign_id"`
	Scheme     BiddingScheme `json:"scheme"`
}

func (c BiddingStrategyChange) Kind() ChangeKind { return ChangeBiddingStrategy }
func (c BiddingStrategyChange) Target() string   { return c.CampaignID }

// GeoTargetChange substitui os critérios de localização da campanha (ou do grupo de anúncios
// quando AdGroupID é informado). Negative marca as localizações como exclusões.
type GeoTargetChange struct {
	CampaignID   string   `json:"campaign_id"`
	AdGroupID    string   `json:"ad_group_id,omitempty"`
	LocationIDs  []string `json:"location_ids"`
	LocationName string   `json:"location_name,omitempty"`
	Negative     bool     `json:"negative"`
}

func (c GeoTargetChange) Kind() ChangeKind { return ChangeGeoTarget }
func (c GeoTargetChange) Target() string   { return c.CampaignID }

type PortfolioStrategyChange struct {
	ResourceName        string            `json:"resource_name"`
	Type                BiddingSchemeKind `json:"type"`
	TargetCPAMicros     *int64            `json:"target_cpa_micros,omitempty"`
	TargetROAS          *float64          `json:"target_roas,omitempty"`
	CPCBidCeilingMicros *int64            `json:"cpc_bid_ceiling_micros,omitempty"`
}

func (c PortfolioStrategyChange) Kind() ChangeKind { return ChangePortfolioStrategy }
func (c PortfolioStrategyChange) Target() string   { return c.ResourceName }

// ChangeEnvelope é a forma serializada de um Change, discriminada pelo campo type
type ChangeEnvelope struct {
	Type                ChangeKind        `json:"type"`
	CampaignID          string            `json:"campaign_id,omitempty"`
	AdGroupID           string            `json:"ad_group_id,omitempty"`
	Status              CampaignStatus    `json:"status,omitempty"`
	BudgetMicros        int64             `json:"budget_micros,omitempty"`
	Scheme              *BiddingScheme    `json:"scheme,omitempty"`
	LocationIDs         []string          `json:"location_ids,omitempty"`
	LocationName        string            `json:"location_name,omitempty"`
	Negative            bool              `json:"negative,omitempty"`
	ResourceName        string            `json:"resource_name,omitempty"`
	StrategyType        BiddingSchemeKind `json:"strategy_type,omitempty"`
	TargetCPAMicros     *int64            `json:"target_cpa_micros,omitempty"`
	TargetROAS          *float64          `json:"target_roas,omitempty"`
	CPCBidCeilingMicros *int64            `json:"cpc_bid_ceiling_micros,omitempty"`
}

func (e ChangeEnvelope) ToChange() (Change, error) {
	switch e.Type {
	case ChangeCampaignStatus:
		return CampaignStatusChange{CampaignID: e.CampaignID, Status: e.Status}, nil
	case ChangeBudget:
		return BudgetChange{CampaignID: e.CampaignID, BudgetMicros: e.BudgetMicros}, nil
	case ChangeBiddingStrategy:
		if e.Scheme == nil {
			return nil, fmt.Errorf("bidding_strategy change for campaign %s without scheme", e.CampaignID)
		}
		return BiddingStrategyChange{CampaignID: e.CampaignID, Scheme: *e.Scheme}, nil
	case ChangeGeoTarget:
		return GeoTargetChange{
			CampaignID:   e.CampaignID,
			AdGroupID:    e.AdGroupID,
			LocationIDs:  e.LocationIDs,
			LocationName: e.LocationName,
			Negative:     e.Negative,
		}, nil
	case ChangePortfolioStrategy:
		return PortfolioStrategyChange{
			ResourceName:        e.ResourceName,
			Type:                e.StrategyType,
			TargetCPAMicros:     e.TargetCPAMicros,
			TargetROAS:          e.TargetROAS,
			CPCBidCeilingMicros: e.CPCBidCeilingMicros,
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownChangeType, e.Type)
}

func EnvelopeFor(change Change) ChangeEnvelope {
	switch c := change.(type) {
	case CampaignStatusChange:
		return ChangeEnvelope{Type: c.Kind(), CampaignID: c.CampaignID, Status: c.Status}
	case BudgetChange:
		return ChangeEnvelope{Type: c.Kind(), CampaignID: c.CampaignID, BudgetMicros: c.BudgetMicros}
	case BiddingStrategyChange:
		scheme := c.Scheme
		return ChangeEnvelope{Type: c.Kind(), CampaignID: c.CampaignID, Scheme: &scheme}
	case GeoTargetChange:
		return ChangeEnvelope{
			Type:         c.Kind(),
			CampaignID:   c.CampaignID,
			AdGroupID:    c.AdGroupID,
			LocationIDs:  c.LocationIDs,
			LocationName: c.LocationName,
			Negative:     c.Negative,
		}
	case PortfolioStrategyChange:
		return ChangeEnvelope{
			Type:                c.Kind(),
			ResourceName:        c.ResourceName,
			StrategyType:        c.Type,
			TargetCPAMicros:     c.TargetCPAMicros,
			TargetROAS:          c.TargetROAS,
			CPCBidCeilingMicros: c.CPCBidCeilingMicros,
		}
	}

	return ChangeEnvelope{}
}

// PendingChange é uma mudança enfileirada para a próxima execução do cliente
type PendingChange struct {
	ID         string         `json:"id"`
	CustomerID string         `json:"customer_id"`
	Usecase    Usecase        `json:"usecase"`
	Change     ChangeEnvelope `json:"change"`
	CreatedAt  time.Time      `json:"created_at"`
}
