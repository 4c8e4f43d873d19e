package executing

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/stensrud/agentic-dsta/infrastructure/integrator/googleads"
	adsdomain "github.com/stensrud/agentic-dsta/infrastructure/integrator/googleads/domain"
	"github.com/stensrud/agentic-dsta/internal/domain"
	"github.com/stensrud/agentic-dsta/internal/usecases/auditing"
	"github.com/stensrud/agentic-dsta/pkg/metrics"
)

const simulatedReferencePrefix = "simulated/"

// Executor aplica uma mudança já validada e registra exatamente uma Action no ActionLogger
type Executor interface {
	DryRun() bool
	ApplyStatusChange(ctx context.Context, customerID string, change domain.CampaignStatusChange) domain.Action
	ApplyBudgetChange(ctx context.Context, customerID string, change domain.BudgetChange) domain.Action
	ApplyBiddingStrategyChange(ctx context.Context, customerID string, change domain.BiddingStrategyChange) domain.Action
	ApplyPortfolioStrategyChange(ctx context.Context, customerID string, change domain.PortfolioStrategyChange) domain.Action
	ApplyGeoTargetChange(ctx context.Context, customerID string, change domain.GeoTargetChange) domain.Action
}

// New escolhe a variante do executor uma única vez por execução
func New(dryRun bool, mutator googleads.Mutator, actions *auditing.ActionLogger) Executor {
	if dryRun {
		return &SimulatedExecutor{actions: actions}
	}
	return &RealExecutor{mutator: mutator, actions: actions}
}

type RealExecutor struct {
	mutator googleads.Mutator
	actions *auditing.ActionLogger
}

func (e *RealExecutor) DryRun() bool { return false }

func (e *RealExecutor) ApplyStatusChange(ctx context.Context, customerID string, change domain.CampaignStatusChange) domain.Action {
	ref, err := e.mutator.UpdateCampaignStatus(ctx, customerID, change.CampaignID, change.Status)
	return e.record(ctx, describeStatus(customerID, change), ref, err)
}

func (e *RealExecutor) ApplyBudgetChange(ctx context.Context, customerID string, change domain.BudgetChange) domain.Action {
	ref, err := e.mutator.UpdateCampaignBudget(ctx, customerID, change.CampaignID, change.BudgetMicros)
	return e.record(ctx, describeBudget(customerID, change), ref, err)
}

func (e *RealExecutor) ApplyBiddingStrategyChange(ctx context.Context, customerID string, change domain.BiddingStrategyChange) domain.Action {
	ref, err := e.mutator.UpdateBiddingStrategy(ctx, customerID, change.CampaignID, change.Scheme)
	return e.record(ctx, describeBidding(customerID, change), ref, err)
}

func (e *RealExecutor) ApplyPortfolioStrategyChange(ctx context.Context, customerID string, change domain.PortfolioStrategyChange) domain.Action {
	ref, err := e.mutator.UpdatePortfolioStrategy(ctx, customerID, change)
	return e.record(ctx, describePortfolio(customerID, change), ref, err)
}

func (e *RealExecutor) ApplyGeoTargetChange(ctx context.Context, customerID string, change domain.GeoTargetChange) domain.Action {
	ref, err := e.mutator.ReplaceGeoTargets(ctx, customerID, change)
	return e.record(ctx, describeGeoTarget(customerID, change), ref, err)
}

func (e *RealExecutor) record(ctx context.Context, c call, ref string, err error) domain.Action {
	action := c.action()
	action.Warnings = warningsFrom(ctx)

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tool":   c.tool,
			"target": c.target,
			"error":  err.Error(),
		}).Error("executor: falha ao aplicar mutação")

		action.Result = domain.ActionResult{Success: false, Error: ExternalError(err)}
		return appendAction(e.actions, action)
	}

	action.Result = domain.ActionResult{
		Success:           true,
		ResourceReference: ref,
		Message:           c.successMessage(),
	}
	return appendAction(e.actions, action)
}

// SimulatedExecutor não chama a API: descreve a mudança pretendida e sempre reporta sucesso
type SimulatedExecutor struct {
	actions *auditing.ActionLogger
}

func (e *SimulatedExecutor) DryRun() bool { return true }

func (e *SimulatedExecutor) ApplyStatusChange(ctx context.Context, customerID string, change domain.CampaignStatusChange) domain.Action {
	return e.record(ctx, describeStatus(customerID, change))
}

func (e *SimulatedExecutor) ApplyBudgetChange(ctx context.Context, customerID string, change domain.BudgetChange) domain.Action {
	return e.record(ctx, describeBudget(customerID, change))
}

func (e *SimulatedExecutor) ApplyBiddingStrategyChange(ctx context.Context, customerID string, change domain.BiddingStrategyChange) domain.Action {
	return e.record(ctx, describeBidding(customerID, change))
}

func (e *SimulatedExecutor) ApplyPortfolioStrategyChange(ctx context.Context, customerID string, change domain.PortfolioStrategyChange) domain.Action {
	return e.record(ctx, describePortfolio(customerID, change))
}

func (e *SimulatedExecutor) ApplyGeoTargetChange(ctx context.Context, customerID string, change domain.GeoTargetChange) domain.Action {
	return e.record(ctx, describeGeoTarget(customerID, change))
}

func (e *SimulatedExecutor) record(ctx context.Context, c call) domain.Action {
	action := c.action()
	action.Warnings = warningsFrom(ctx)
	action.Simulated = true
	action.Result = domain.ActionResult{
		Success:           true,
		ResourceReference: simulatedReferencePrefix + c.target,
		Message:           c.successMessage(),
	}
	return appendAction(e.actions, action)
}

// ExternalError converte o erro de uma chamada externa, preservando código e mensagem da API
func ExternalError(err error) *domain.ActionError {
	var apiErr *adsdomain.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		if code == "" {
			code = apiErr.Status
		}
		if code == "" {
			code = strconv.Itoa(apiErr.HTTPStatus)
		}
		return &domain.ActionError{
			Kind:    domain.ActionErrorExternalAPI,
			Code:    code,
			Message: apiErr.Error(),
		}
	}

	if errors.Is(err, googleads.ErrInvalidIdentifier) ||
		errors.Is(err, googleads.ErrUnsupportedScheme) ||
		errors.Is(err, googleads.ErrCampaignNotFound) ||
		errors.Is(err, googleads.ErrPortfolioNotFound) {
		return &domain.ActionError{Kind: domain.ActionErrorInvalidArguments, Message: err.Error()}
	}

	return &domain.ActionError{Kind: domain.ActionErrorExternalAPI, Message: err.Error()}
}

func appendAction(actions *auditing.ActionLogger, action domain.Action) domain.Action {
	recorded := actions.Append(action)
	metrics.MutationCount.
		WithLabelValues(recorded.Tool, metrics.Outcome(recorded.Succeeded(), recorded.Rejected()), fmt.Sprint(recorded.Simulated)).
		Inc()
	return recorded
}
