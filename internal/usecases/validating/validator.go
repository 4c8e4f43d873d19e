package validating

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stensrud/agentic-dsta/internal/domain"
)

const maxLocationFractionMicros = 1_000_000

// FlatlineWarning é emitido quando uma estratégia Maximize* é aplicada a uma campanha sem conversões recentes
const FlatlineWarning = "campanha sem conversões recentes: estratégias Maximize* tendem a zerar a entrega"

// Verdict é o resultado de uma validação aceita. Warnings nunca bloqueiam a mudança.
type Verdict struct {
	Warnings []string
}

type Validator struct {
	rules *Rules
}

func NewValidator(rules *Rules) *Validator {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Validator{rules: rules}
}

// Campos específicos aceitos por cada tipo de esquema
var schemeFields = map[domain.BiddingSchemeKind][]string{
	domain.SchemeMaximizeConversions:     {"target_cpa_micros"},
	domain.SchemeMaximizeConversionValue: {"target_roas"},
	domain.SchemeManualCPC:               {"enhanced_cpc_enabled"},
	domain.SchemeTargetSpend:             {"cpc_bid_ceiling_micros"},
	domain.SchemeTargetImpressionShare:   {"location", "location_fraction_micros", "cpc_bid_ceiling_micros"},
	domain.SchemePercentCPC:              {"cpc_bid_ceiling_micros", "enhanced_cpc_enabled"},
	domain.SchemeCommission:              {"commission_rate_micros"},
	domain.SchemePortfolio:               {"portfolio_resource_name"},
}

func presentFields(scheme domain.BiddingScheme) []string {
	fields := make([]string, 0)
	if scheme.TargetCPAMicros != nil {
		fields = append(fields, "target_cpa_micros")
	}
	if scheme.TargetROAS != nil {
		fields = append(fields, "target_roas")
	}
	if scheme.EnhancedCPC != nil {
		fields = append(fields, "enhanced_cpc_enabled")
	}
	if scheme.CPCBidCeilingMicros != nil {
		fields = append(fields, "cpc_bid_ceiling_micros")
	}
	if scheme.Location != nil {
		fields = append(fields, "location")
	}
	if scheme.LocationFractionMicros != nil {
		fields = append(fields, "location_fraction_micros")
	}
	if scheme.CommissionRateMicros != nil {
		fields = append(fields, "commission_rate_micros")
	}
	if scheme.PortfolioResourceName != "" {
		fields = append(fields, "portfolio_resource_name")
	}
	return fields
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// ValidateBiddingChange decide se a troca de estratégia pode ser aplicada à campanha
func (v *Validator) ValidateBiddingChange(campaign *domain.Campaign, change domain.BiddingStrategyChange) (Verdict, error) {
	if campaign == nil {
		return Verdict{}, missingField("campaign", fmt.Sprintf("campanha %s não encontrada", change.CampaignID))
	}

	scheme := change.Scheme
	if scheme.Kind == "" {
		return Verdict{}, missingField("scheme.kind", "tipo de estratégia não informado")
	}

	// TARGET_CPA e TARGET_ROAS soltos nunca estão na tabela; a forma é verificada antes
	if scheme.Kind.IsPortfolioOnly() {
		wrapper := domain.SchemeMaximizeConversions
		if scheme.Kind == domain.SchemeTargetROAS {
			wrapper = domain.SchemeMaximizeConversionValue
		}
		return Verdict{}, invalidShape("scheme.kind", fmt.Sprintf("%s só é aceito dentro de %s ou como portfólio", scheme.Kind, wrapper))
	}

	if scheme.IsPortfolio() {
		if scheme.PortfolioResourceName == "" {
			return Verdict{}, missingField("portfolio_resource_name", "referência de portfólio vazia")
		}
		if !v.rules.AllowsPortfolio(campaign.ChannelType) {
			return Verdict{}, portfolioNotAllowed(fmt.Sprintf("canal %s não aceita estratégias de portfólio", campaign.ChannelType))
		}
		if err := checkSchemeFields(scheme); err != nil {
			return Verdict{}, err
		}
		if !strings.HasPrefix(scheme.PortfolioResourceName, "customers/") ||
			!strings.Contains(scheme.PortfolioResourceName, "/biddingStrategies/") {
			return Verdict{}, invalidShape("portfolio_resource_name", fmt.Sprintf("resource name inválido: %s", scheme.PortfolioResourceName))
		}
		return Verdict{}, nil
	}

	if !v.rules.Allows(campaign.ChannelType, scheme.Kind) {
		return Verdict{}, unsupported(fmt.Sprintf("%s não é aceito em %s (aceitos: %s)",
			scheme.Kind, campaign.ChannelType, joinKinds(v.rules.AllowedKinds(campaign.ChannelType))))
	}

	// campos de outro tipo (ex.: target_cpa_micros em MANUAL_CPM) só depois da tabela do canal
	if err := checkSchemeFields(scheme); err != nil {
		return Verdict{}, err
	}

	if err := validateSchemeValues(scheme); err != nil {
		return Verdict{}, err
	}

	verdict := Verdict{}
	if scheme.Kind.IsMaximize() && campaign.RecentConversions != nil && *campaign.RecentConversions == 0 {
		verdict.Warnings = append(verdict.Warnings, FlatlineWarning)
	}

	return verdict, nil
}

func checkSchemeFields(scheme domain.BiddingScheme) error {
	allowedFields := schemeFields[scheme.Kind]
	for _, field := range presentFields(scheme) {
		if !contains(allowedFields, field) {
			return invalidShape(field, fmt.Sprintf("campo %s não pertence a %s", field, scheme.Kind))
		}
	}
	return nil
}

func validateSchemeValues(scheme domain.BiddingScheme) error {
	switch scheme.Kind {
	case domain.SchemeTargetImpressionShare:
		if scheme.Location == nil {
			return missingField("location", "TARGET_IMPRESSION_SHARE exige location")
		}
		if scheme.LocationFractionMicros == nil {
			return missingField("location_fraction_micros", "TARGET_IMPRESSION_SHARE exige location_fraction_micros")
		}
		if !scheme.Location.IsValid() {
			return invalidShape("location", fmt.Sprintf("location inválida: %s", *scheme.Location))
		}
		fraction := *scheme.LocationFractionMicros
		if fraction <= 0 || fraction > maxLocationFractionMicros {
			return invalidShape("location_fraction_micros", fmt.Sprintf("fração fora do intervalo (0, %d]: %d", maxLocationFractionMicros, fraction))
		}
	}

	if scheme.TargetCPAMicros != nil && *scheme.TargetCPAMicros <= 0 {
		return invalidValue("target_cpa_micros", "target_cpa_micros deve ser positivo")
	}
	if scheme.TargetROAS != nil && *scheme.TargetROAS <= 0 {
		return invalidValue("target_roas", "target_roas deve ser positivo")
	}
	if scheme.CPCBidCeilingMicros != nil && *scheme.CPCBidCeilingMicros <= 0 {
		return invalidValue("cpc_bid_ceiling_micros", "cpc_bid_ceiling_micros deve ser positivo")
	}
	if scheme.CommissionRateMicros != nil && *scheme.CommissionRateMicros <= 0 {
		return invalidValue("commission_rate_micros", "commission_rate_micros deve ser positivo")
	}

	return nil
}

func (v *Validator) ValidateStatusChange(change domain.CampaignStatusChange) (Verdict, error) {
	if change.CampaignID == "" {
		return Verdict{}, missingField("campaign_id", "campaign_id é obrigatório")
	}
	if !change.Status.IsSettable() {
		return Verdict{}, invalidValue("status", fmt.Sprintf("status deve ser ENABLED ou PAUSED, recebido %q", change.Status))
	}
	return Verdict{}, nil
}

func (v *Validator) ValidateBudgetChange(change domain.BudgetChange) (Verdict, error) {
	if change.CampaignID == "" {
		return Verdict{}, missingField("campaign_id", "campaign_id é obrigatório")
	}
	if change.BudgetMicros <= 0 {
		return Verdict{}, invalidValue("budget_micros", "orçamento deve ser positivo")
	}
	return Verdict{}, nil
}

func (v *Validator) ValidateGeoTargetChange(change domain.GeoTargetChange) (Verdict, error) {
	if change.CampaignID == "" {
		return Verdict{}, missingField("campaign_id", "campaign_id é obrigatório")
	}
	if len(change.LocationIDs) == 0 {
		return Verdict{}, missingField("location_ids", "ao menos uma localização é obrigatória")
	}
	for _, id := range change.LocationIDs {
		if _, err := strconv.ParseInt(id, 10, 64); err != nil {
			return Verdict{}, invalidValue("location_ids", fmt.Sprintf("location id não numérico: %q", id))
		}
	}
	return Verdict{}, nil
}

var portfolioFields = map[domain.BiddingSchemeKind][]string{
	domain.SchemeMaximizeConversions:     {"target_cpa_micros"},
	domain.SchemeMaximizeConversionValue: {"target_roas"},
	domain.SchemeTargetCPA:               {"target_cpa_micros", "cpc_bid_ceiling_micros"},
	domain.SchemeTargetROAS:              {"target_roas", "cpc_bid_ceiling_micros"},
	domain.SchemeTargetSpend:             {"cpc_bid_ceiling_micros"},
}

// ValidatePortfolioChange valida a alteração de uma estratégia de portfólio. current é o estado
// atual do portfólio, usado para avisar quantas campanhas serão afetadas.
func (v *Validator) ValidatePortfolioChange(customerID string, change domain.PortfolioStrategyChange, current *domain.PortfolioBiddingStrategy) (Verdict, error) {
	if change.ResourceName == "" {
		return Verdict{}, missingField("resource_name", "resource_name do portfólio é obrigatório")
	}

	prefix := fmt.Sprintf("customers/%s/biddingStrategies/", strings.ReplaceAll(customerID, "-", ""))
	if !strings.HasPrefix(change.ResourceName, prefix) {
		return Verdict{}, invalidShape("resource_name", fmt.Sprintf("resource name deve começar com %s", prefix))
	}

	allowedFields, ok := portfolioFields[change.Type]
	if !ok {
		return Verdict{}, unsupported(fmt.Sprintf("tipo de portfólio não suportado: %q", change.Type))
	}

	present := make([]string, 0)
	if change.TargetCPAMicros != nil {
		present = append(present, "target_cpa_micros")
	}
	if change.TargetROAS != nil {
		present = append(present, "target_roas")
	}
	if change.CPCBidCeilingMicros != nil {
		present = append(present, "cpc_bid_ceiling_micros")
	}
	for _, field := range present {
		if !contains(allowedFields, field) {
			return Verdict{}, invalidShape(field, fmt.Sprintf("campo %s não pertence a %s", field, change.Type))
		}
	}

	if len(present) == 0 {
		return Verdict{}, missingField(allowedFields[0], fmt.Sprintf("nenhum parâmetro informado para %s (aceitos: %s)",
			change.Type, strings.Join(allowedFields, ", ")))
	}

	switch change.Type {
	case domain.SchemeTargetCPA:
		if change.TargetCPAMicros == nil {
			return Verdict{}, missingField("target_cpa_micros", "TARGET_CPA exige target_cpa_micros")
		}
	case domain.SchemeTargetROAS:
		if change.TargetROAS == nil {
			return Verdict{}, missingField("target_roas", "TARGET_ROAS exige target_roas")
		}
	}

	if change.TargetCPAMicros != nil && *change.TargetCPAMicros <= 0 {
		return Verdict{}, invalidValue("target_cpa_micros", "target_cpa_micros deve ser positivo")
	}
	if change.TargetROAS != nil && *change.TargetROAS <= 0 {
		return Verdict{}, invalidValue("target_roas", "target_roas deve ser positivo")
	}

	verdict := Verdict{}
	if current != nil && len(current.LinkedCampaignIDs) > 0 {
		verdict.Warnings = append(verdict.Warnings, fmt.Sprintf(
			"alteração afeta %d campanhas vinculadas: %s",
			len(current.LinkedCampaignIDs), strings.Join(current.LinkedCampaignIDs, ", ")))
	}

	return verdict, nil
}

func joinKinds(kinds []domain.BiddingSchemeKind) string {
	values := make([]string, len(kinds))
	for i, kind := range kinds {
		values[i] = string(kind)
	}
	return strings.Join(values, ", ")
}
