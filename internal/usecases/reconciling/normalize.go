package reconciling

import (
	"strings"

	"github.com/stensrud/agentic-dsta/internal/domain"
	"github.com/stensrud/agentic-dsta/pkg/utils"
)

// data final padrão do SA360 para campanhas sem término
const openEndDate = "2037-12-30"

var enumReplacer = strings.NewReplacer(" ", "", "_", "", "-", "")

func normalizeEnum(value string) string {
	return enumReplacer.Replace(strings.ToUpper(strings.TrimSpace(value)))
}

func normalizeStatus(value string) string {
	switch normalized := normalizeEnum(value); normalized {
	case "ACTIVE", "ENABLED":
		return string(domain.CampaignStatusEnabled)
	default:
		return normalized
	}
}

func normalizeEndDate(value string) string {
	normalized := utils.NormalizeDate(value)
	if normalized == openEndDate {
		return ""
	}
	return normalized
}

// budgetsMatch compara o orçamento da planilha com o do relatório aceitando valores em moeda ou em micros
func budgetsMatch(sheetValue, reportValue string) bool {
	sheetValue, reportValue = strings.TrimSpace(sheetValue), strings.TrimSpace(reportValue)
	if sheetValue == "" || reportValue == "" {
		return sheetValue == reportValue
	}

	a, errA := utils.ParseCurrency(sheetValue)
	b, errB := utils.ParseCurrency(reportValue)
	if errA != nil || errB != nil {
		return sheetValue == reportValue
	}

	return sameCents(a, b) || sameCents(a/1_000_000, b) || sameCents(a, b/1_000_000)
}

func sameCents(a, b float64) bool {
	return utils.CurrencyToMicros(utils.RoundWithTwoDecimalPlace(a)) == utils.CurrencyToMicros(utils.RoundWithTwoDecimalPlace(b))
}

// columnMatches aplica a normalização de cada coluna validada
func columnMatches(column, sheetValue, reportValue string) bool {
	switch column {
	case domain.ColumnStatus:
		return normalizeStatus(sheetValue) == normalizeStatus(reportValue)
	case domain.ColumnCampaignType, domain.ColumnBidStrategyType:
		return normalizeEnum(sheetValue) == normalizeEnum(reportValue)
	case domain.ColumnBudget:
		return budgetsMatch(sheetValue, reportValue)
	case domain.ColumnEndDate:
		return normalizeEndDate(sheetValue) == normalizeEndDate(reportValue)
	default:
		return strings.TrimSpace(sheetValue) == strings.TrimSpace(reportValue)
	}
}

// sheetStatusValue escreve o status no mesmo estilo já usado na célula (Active/Paused ou ENABLED/PAUSED)
func sheetStatusValue(current string, status domain.CampaignStatus) string {
	normalized := normalizeEnum(current)
	labelStyle := normalized == "ACTIVE" || (normalized == "PAUSED" && strings.ToUpper(current) != current)
	if !labelStyle {
		return string(status)
	}
	if status == domain.CampaignStatusEnabled {
		return "Active"
	}
	return "Paused"
}
