package sa360domain

// Linhas do relatório do Search Ads 360. Valores int64 trafegam como string no JSON da API.

type SearchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
	PageSize  int    `json:"pageSize,omitempty"`
}

type SearchResponse struct {
	Results       []Row  `json:"results"`
	NextPageToken string `json:"nextPageToken,omitempty"`
}

type Row struct {
	Customer       *Customer       `json:"customer,omitempty"`
	Campaign       *Campaign       `json:"campaign,omitempty"`
	CampaignBudget *CampaignBudget `json:"campaignBudget,omitempty"`
}

type Customer struct {
	ID              int64  `json:"id,omitempty,string"`
	DescriptiveName string `json:"descriptiveName,omitempty"`
}

type Campaign struct {
	ResourceName           string `json:"resourceName,omitempty"`
	ID                     int64  `json:"id,omitempty,string"`
	Name                   string `json:"name,omitempty"`
	Status                 string `json:"status,omitempty"`
	AdvertisingChannelType string `json:"advertisingChannelType,omitempty"`
	BiddingStrategyType    string `json:"biddingStrategyType,omitempty"`
	EndDate                string `json:"endDate,omitempty"`
}

type CampaignBudget struct {
	AmountMicros int64 `json:"amountMicros,omitempty,string"`
}
