package domain

// Colunas do template de bulk upload do SA360
const (
	ColumnCampaignID           = "Campaign ID"
	ColumnCampaignName         = "Campaign"
	ColumnStatus               = "Status"
	ColumnCampaignType         = "Campaign type"
	ColumnBudget               = "Budget"
	ColumnBidStrategyType      = "Bid strategy type"
	ColumnEndDate              = "End date"
	ColumnCustomerID           = "Customer ID"
	ColumnLocation             = "Location"
	ColumnEUPoliticalAds       = "EU political ads"
	ColumnAssociatedCampaignID = "Associated Campaign ID"
	ColumnAction               = "Action"
	ColumnRowType              = "Row Type"
)

// ValidatedColumns são as colunas comparadas com o SA360 antes de qualquer escrita
var ValidatedColumns = []string{
	ColumnCampaignID,
	ColumnCampaignName,
	ColumnStatus,
	ColumnCampaignType,
	ColumnBudget,
	ColumnBidStrategyType,
	ColumnEndDate,
}

const (
	RowTypeExcludedLocation = "excluded location"
	RowActionDeactivate     = "deactivate"
)

// SheetRow é uma linha da planilha (ou o equivalente vindo do relatório do SA360).
// RowNumber é 1-based e conta o cabeçalho.
type SheetRow struct {
	RowNumber            int               `json:"row_number"`
	CampaignID           string            `json:"campaign_id"`
	CampaignName         string            `json:"campaign_name"`
	Status               string            `json:"status"`
	CampaignType         string            `json:"campaign_type"`
	Budget               string            `json:"budget"`
	BidStrategyType      string            `json:"bid_strategy_type"`
	EndDate              string            `json:"end_date"`
	CustomerID           string            `json:"customer_id,omitempty"`
	Location             string            `json:"location,omitempty"`
	EUPoliticalAds       string            `json:"eu_political_ads,omitempty"`
	AssociatedCampaignID string            `json:"associated_campaign_id,omitempty"`
	Raw                  map[string]string `json:"-"`
}

// ValidatedValue devolve o valor de uma das colunas validadas
func (r SheetRow) ValidatedValue(column string) string {
	switch column {
	case ColumnCampaignID:
		return r.CampaignID
	case ColumnCampaignName:
		return r.CampaignName
	case ColumnStatus:
		return r.Status
	case ColumnCampaignType:
		return r.CampaignType
	case ColumnBudget:
		return r.Budget
	case ColumnBidStrategyType:
		return r.BidStrategyType
	case ColumnEndDate:
		return r.EndDate
	}
	return ""
}

type RowOutcomeKind string

const (
	RowUpdated  RowOutcomeKind = "updated"
	RowInserted RowOutcomeKind = "inserted"
	RowBlocked  RowOutcomeKind = "blocked"
	RowFailed   RowOutcomeKind = "failed"
)

type RowOutcome struct {
	CampaignID string         `json:"campaign_id"`
	RowNumber  int            `json:"row_number,omitempty"`
	Outcome    RowOutcomeKind `json:"outcome"`
	Column     string         `json:"column,omitempty"`
	Reason     string         `json:"reason,omitempty"`
}

type BlockedRow struct {
	CampaignID string   `json:"campaign_id"`
	RowNumber  int      `json:"row_number,omitempty"`
	Reason     string   `json:"reason"`
	Columns    []string `json:"columns,omitempty"`
}

type ReconciliationReport struct {
	Outcomes []RowOutcome `json:"outcomes"`
	Blocked  []BlockedRow `json:"blocked"`
}
