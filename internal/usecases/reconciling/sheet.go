package reconciling

import (
	"strings"

	"github.com/stensrud/agentic-dsta/internal/domain"
)

// header mapeia o nome da coluna para o índice 0-based. A busca ignora caixa e espaços nas pontas.
type header struct {
	names   []string
	indexes map[string]int
}

func parseHeader(row []string) header {
	h := header{names: row, indexes: make(map[string]int, len(row))}
	for i, name := range row {
		key := headerKey(name)
		if _, exists := h.indexes[key]; !exists && key != "" {
			h.indexes[key] = i
		}
	}
	return h
}

func headerKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (h header) index(column string) (int, bool) {
	i, ok := h.indexes[headerKey(column)]
	return i, ok
}

func (h header) missing(columns ...string) []string {
	missing := make([]string, 0)
	for _, column := range columns {
		if _, ok := h.index(column); !ok {
			missing = append(missing, column)
		}
	}
	return missing
}

// sheet é a aba lida no início da passagem
type sheet struct {
	header header
	rows   []domain.SheetRow
}

func parseSheet(values [][]string) sheet {
	s := sheet{header: parseHeader(values[0])}

	for i, cells := range values[1:] {
		row := domain.SheetRow{
			RowNumber: i + 2,
			Raw:       make(map[string]string, len(cells)),
		}
		for col, value := range cells {
			if col < len(s.header.names) {
				row.Raw[s.header.names[col]] = value
			}
		}

		row.CampaignID = s.cell(cells, domain.ColumnCampaignID)
		row.CampaignName = s.cell(cells, domain.ColumnCampaignName)
		row.Status = s.cell(cells, domain.ColumnStatus)
		row.CampaignType = s.cell(cells, domain.ColumnCampaignType)
		row.Budget = s.cell(cells, domain.ColumnBudget)
		row.BidStrategyType = s.cell(cells, domain.ColumnBidStrategyType)
		row.EndDate = s.cell(cells, domain.ColumnEndDate)
		row.CustomerID = s.cell(cells, domain.ColumnCustomerID)
		row.Location = s.cell(cells, domain.ColumnLocation)
		row.EUPoliticalAds = s.cell(cells, domain.ColumnEUPoliticalAds)
		row.AssociatedCampaignID = s.cell(cells, domain.ColumnAssociatedCampaignID)

		s.rows = append(s.rows, row)
	}

	return s
}

func (s sheet) cell(cells []string, column string) string {
	i, ok := s.header.index(column)
	if !ok || i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

// campaignRow devolve a linha da campanha, ignorando as linhas de exclusão de localização
func (s sheet) campaignRow(campaignID string) (domain.SheetRow, bool) {
	for _, row := range s.rows {
		if row.CampaignID != campaignID {
			continue
		}
		if strings.EqualFold(row.Raw[s.rawName(domain.ColumnRowType)], domain.RowTypeExcludedLocation) {
			continue
		}
		return row, true
	}
	return domain.SheetRow{}, false
}

func (s sheet) rawName(column string) string {
	if i, ok := s.header.index(column); ok {
		return s.header.names[i]
	}
	return column
}

// negativeGeoRow monta a linha de exclusão na ordem das colunas do cabeçalho
func (s sheet) negativeGeoRow(campaign domain.SheetRow, location string) []any {
	values := map[string]string{
		headerKey(domain.ColumnRowType):              domain.RowTypeExcludedLocation,
		headerKey(domain.ColumnAction):               domain.RowActionDeactivate,
		headerKey(domain.ColumnCustomerID):           campaign.CustomerID,
		headerKey(domain.ColumnCampaignName):         campaign.CampaignName,
		headerKey(domain.ColumnLocation):             location,
		headerKey(domain.ColumnEUPoliticalAds):       campaign.EUPoliticalAds,
		headerKey(domain.ColumnAssociatedCampaignID): campaign.CampaignID,
	}

	row := make([]any, len(s.header.names))
	for i, name := range s.header.names {
		row[i] = values[headerKey(name)]
	}
	return row
}
