package executing

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/stensrud/agentic-dsta/infrastructure/integrator/googleads"
	"github.com/stensrud/agentic-dsta/internal/domain"
	"github.com/stensrud/agentic-dsta/internal/usecases/auditing"
	"github.com/stensrud/agentic-dsta/internal/usecases/validating"
)

type warningsKey struct{}

// withWarnings anexa os avisos da validação à Action que o executor vai registrar
func withWarnings(ctx context.Context, warnings []string) context.Context {
	if len(warnings) == 0 {
		return ctx
	}
	return context.WithValue(ctx, warningsKey{}, warnings)
}

func warningsFrom(ctx context.Context) []string {
	warnings, _ := ctx.Value(warningsKey{}).([]string)
	return warnings
}

// Dispatcher lê o estado atual, valida a mudança e a entrega ao executor.
// Toda mudança resulta em exatamente uma Action registrada.
type Dispatcher struct {
	reader    googleads.Reader
	validator *validating.Validator
	executor  Executor
	actions   *auditing.ActionLogger
}

func NewDispatcher(reader googleads.Reader, validator *validating.Validator, executor Executor, actions *auditing.ActionLogger) *Dispatcher {
	return &Dispatcher{
		reader:    reader,
		validator: validator,
		executor:  executor,
		actions:   actions,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, customerID string, change domain.Change) domain.Action {
	logger := logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"change":      change.Kind(),
		"target":      change.Target(),
	})

	switch c := change.(type) {
	case domain.CampaignStatusChange:
		verdict, err := d.validator.ValidateStatusChange(c)
		if err != nil {
			return d.reject(describeStatus(customerID, c), err)
		}
		return d.executor.ApplyStatusChange(withWarnings(ctx, verdict.Warnings), customerID, c)

	case domain.BudgetChange:
		verdict, err := d.validator.ValidateBudgetChange(c)
		if err != nil {
			return d.reject(describeBudget(customerID, c), err)
		}
		return d.executor.ApplyBudgetChange(withWarnings(ctx, verdict.Warnings), customerID, c)

	case domain.GeoTargetChange:
		verdict, err := d.validator.ValidateGeoTargetChange(c)
		if err != nil {
			return d.reject(describeGeoTarget(customerID, c), err)
		}
		return d.executor.ApplyGeoTargetChange(withWarnings(ctx, verdict.Warnings), customerID, c)

	case domain.BiddingStrategyChange:
		described := describeBidding(customerID, c)

		campaign, err := d.reader.GetCampaign(ctx, customerID, c.CampaignID)
		if err != nil {
			logger.WithError(err).Error("dispatcher: falha ao ler campanha")
			return d.fail(described, err)
		}

		verdict, err := d.validator.ValidateBiddingChange(campaign, c)
		if err != nil {
			logger.WithError(err).Warn("dispatcher: mudança de lance rejeitada")
			return d.reject(described, err)
		}
		return d.executor.ApplyBiddingStrategyChange(withWarnings(ctx, verdict.Warnings), customerID, c)

	case domain.PortfolioStrategyChange:
		described := describePortfolio(customerID, c)

		if _, err := d.validator.ValidatePortfolioChange(customerID, c, nil); err != nil {
			logger.WithError(err).Warn("dispatcher: mudança de portfólio rejeitada")
			return d.reject(described, err)
		}

		current, err := d.reader.GetPortfolioStrategy(ctx, customerID, c.ResourceName)
		if err != nil {
			logger.WithError(err).Error("dispatcher: falha ao ler portfólio")
			return d.fail(described, err)
		}

		verdict, err := d.validator.ValidatePortfolioChange(customerID, c, current)
		if err != nil {
			return d.reject(described, err)
		}
		return d.executor.ApplyPortfolioStrategyChange(withWarnings(ctx, verdict.Warnings), customerID, c)
	}

	return d.record(call{
		tool:        "unknown",
		params:      map[string]any{"customer_id": customerID, "type": fmt.Sprintf("%T", change)},
		description: "Mudança de tipo desconhecido",
	}, domain.ActionResult{
		Error: &domain.ActionError{
			Kind:    domain.ActionErrorInvalidArguments,
			Message: domain.ErrUnknownChangeType.Error(),
		},
	})
}

func (d *Dispatcher) reject(c call, err error) domain.Action {
	actionErr := &domain.ActionError{Kind: domain.ActionErrorValidation, Message: err.Error()}

	var validationErr *validating.ValidationError
	if errors.As(err, &validationErr) {
		actionErr.Code = validationErr.Code
	}

	return d.record(c, domain.ActionResult{Error: actionErr})
}

func (d *Dispatcher) fail(c call, err error) domain.Action {
	return d.record(c, domain.ActionResult{Error: ExternalError(err)})
}

func (d *Dispatcher) record(c call, result domain.ActionResult) domain.Action {
	action := c.action()
	action.Simulated = d.executor.DryRun()
	action.Result = result
	return appendAction(d.actions, action)
}
