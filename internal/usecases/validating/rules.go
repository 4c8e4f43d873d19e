package validating

import "github.com/stensrud/agentic-dsta/internal/domain"

// Rule define os esquemas de lance aceitos por um tipo de canal
type Rule struct {
	Allowed         map[domain.BiddingSchemeKind]struct{}
	AllowsPortfolio bool
}

// Rules é a tabela de estratégias por canal. É somente leitura depois de criada.
type Rules struct {
	byChannel map[domain.ChannelType]Rule
}

func newRule(allowsPortfolio bool, kinds ...domain.BiddingSchemeKind) Rule {
	allowed := make(map[domain.BiddingSchemeKind]struct{}, len(kinds))
	for _, kind := range kinds {
		allowed[kind] = struct{}{}
	}
	return Rule{Allowed: allowed, AllowsPortfolio: allowsPortfolio}
}

// DefaultRules carrega a tabela de estratégias suportadas pelo Google Ads por canal
func DefaultRules() *Rules {
	return &Rules{
		byChannel: map[domain.ChannelType]Rule{
			domain.ChannelSearch: newRule(true,
				domain.SchemeManualCPC,
				domain.SchemeTargetSpend,
				domain.SchemeMaximizeConversions,
				domain.SchemeMaximizeConversionValue,
				domain.SchemeTargetImpressionShare,
			),
			domain.ChannelDisplay: newRule(true,
				domain.SchemeManualCPC,
				domain.SchemeManualCPM,
				domain.SchemeMaximizeConversions,
				domain.SchemeMaximizeConversionValue,
			),
			domain.ChannelVideo: newRule(false,
				domain.SchemeManualCPV,
				domain.SchemeMaximizeConversions,
			),
			domain.ChannelPerformanceMax: newRule(false,
				domain.SchemeMaximizeConversions,
				domain.SchemeMaximizeConversionValue,
			),
			domain.ChannelHotel: newRule(false,
				domain.SchemeManualCPC,
				domain.SchemePercentCPC,
				domain.SchemeCommission,
			),
		},
	}
}

// Lookup retorna a regra do canal. Canais desconhecidos não têm regra.
func (r *Rules) Lookup(channel domain.ChannelType) (Rule, bool) {
	rule, ok := r.byChannel[channel]
	return rule, ok
}

// Allows indica se o esquema padrão é aceito pelo canal
func (r *Rules) Allows(channel domain.ChannelType, kind domain.BiddingSchemeKind) bool {
	rule, ok := r.byChannel[channel]
	if !ok {
		return false
	}
	_, allowed := rule.Allowed[kind]
	return allowed
}

func (r *Rules) AllowsPortfolio(channel domain.ChannelType) bool {
	rule, ok := r.byChannel[channel]
	return ok && rule.AllowsPortfolio
}

// AllowedKinds lista os esquemas aceitos, usado nas mensagens de rejeição
func (r *Rules) AllowedKinds(channel domain.ChannelType) []domain.BiddingSchemeKind {
	rule, ok := r.byChannel[channel]
	if !ok {
		return nil
	}

	kinds := make([]domain.BiddingSchemeKind, 0, len(rule.Allowed))
	for _, kind := range schemeOrder {
		if _, allowed := rule.Allowed[kind]; allowed {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

var schemeOrder = []domain.BiddingSchemeKind{
	domain.SchemeManualCPC,
	domain.SchemeManualCPM,
	domain.SchemeManualCPV,
	domain.SchemeTargetSpend,
	domain.SchemeTargetImpressionShare,
	domain.SchemeMaximizeConversions,
	domain.SchemeMaximizeConversionValue,
	domain.SchemePercentCPC,
	domain.SchemeCommission,
}
