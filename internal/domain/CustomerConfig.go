package domain

type ManagedCampaign struct {
	CampaignID  string `json:"campaignId"`
	Instruction string `json:"instruction"`
}

type TargetLocation struct {
	City   string   `json:"city"`
	Lat    float64  `json:"lat"`
	Lng    float64  `json:"lng"`
	Radius *float64 `json:"radius,omitempty"`
	State  *string  `json:"state,omitempty"`
}

// GoogleAdsConfig é o documento de configuração por cliente do Google Ads
type GoogleAdsConfig struct {
	CustomerID      string            `json:"customerId"`
	Campaigns       []ManagedCampaign `json:"campaigns"`
	Locations       []TargetLocation  `json:"locations"`
	LoginCustomerID *string           `json:"logincustomerid,omitempty"`
}

// SA360Config aponta para a planilha de bulk upload do cliente
type SA360Config struct {
	CustomerID      string            `json:"customerId"`
	SheetID         string            `json:"sheetId"`
	SheetName       string            `json:"sheetName"`
	LoginCustomerID *string           `json:"logincustomerid,omitempty"`
	Campaigns       []ManagedCampaign `json:"campaigns"`
}

type CustomerInstruction struct {
	CustomerID  string `json:"customerId"`
	Instruction string `json:"instruction"`
}

// CustomerConfigView agrega os documentos de configuração de um cliente
type CustomerConfigView struct {
	CustomerID  string               `json:"customer_id"`
	GoogleAds   *GoogleAdsConfig     `json:"google_ads,omitempty"`
	SA360       *SA360Config         `json:"sa360,omitempty"`
	Instruction *CustomerInstruction `json:"instruction,omitempty"`
}
