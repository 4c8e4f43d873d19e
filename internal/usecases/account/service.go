package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stensrud/agentic-dsta/infrastructure/repository"
	"github.com/stensrud/agentic-dsta/internal/domain"
	"github.com/stensrud/agentic-dsta/pkg/apiErrors"
	"github.com/stensrud/agentic-dsta/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type AccountService interface {
	GetCustomerConfig(ctx context.Context, customerID string) (*domain.CustomerConfigView, error)
	ListCustomers(ctx context.Context, usecase domain.Usecase) ([]string, error)
	EnqueueChanges(ctx context.Context, customerID string, usecase domain.Usecase, envelopes []domain.ChangeEnvelope) ([]domain.PendingChange, error)
}

type Service struct {
	configRepository  repository.CustomerConfigRepository
	pendingRepository repository.PendingChangeRepository
	newID             func() (string, error)
	now               func() time.Time
}

func NewService(
	configRepository repository.CustomerConfigRepository,
	pendingRepository repository.PendingChangeRepository,
) AccountService {
	return &Service{
		configRepository:  configRepository,
		pendingRepository: pendingRepository,
		newID:             utils.GenerateChangeID,
		now:               time.Now,
	}
}

// GetCustomerConfig agrega os documentos do cliente. Documentos ausentes ficam nil;
// o cliente só é considerado inexistente quando nenhum documento existe.
func (s *Service) GetCustomerConfig(ctx context.Context, customerID string) (*domain.CustomerConfigView, error) {
	if customerID == "" {
		return nil, ErrCustomerIDRequired
	}

	view := &domain.CustomerConfigView{CustomerID: customerID}

	googleAds, err := s.configRepository.GetGoogleAdsConfig(ctx, customerID)
	if err := ignoreNotFound(err); err != nil {
		logrus.WithFields(logrus.Fields{"customer_id": customerID, "error": err.Error()}).Error("Error getting google ads config")
		return nil, NewAccountErrorWithID(ErrFetchConfig, apiErrors.ErrDatabaseOperation, customerID, "Falha ao buscar configuração do Google Ads")
	}
	view.GoogleAds = googleAds

	sa360, err := s.configRepository.GetSA360Config(ctx, customerID)
	if err := ignoreNotFound(err); err != nil {
		logrus.WithFields(logrus.Fields{"customer_id": customerID, "error": err.Error()}).Error("Error getting sa360 config")
		return nil, NewAccountErrorWithID(ErrFetchConfig, apiErrors.ErrDatabaseOperation, customerID, "Falha ao buscar configuração do SA360")
	}
	view.SA360 = sa360

	instruction, err := s.configRepository.GetInstruction(ctx, customerID)
	if err := ignoreNotFound(err); err != nil {
		logrus.WithFields(logrus.Fields{"customer_id": customerID, "error": err.Error()}).Error("Error getting customer instruction")
		return nil, NewAccountErrorWithID(ErrFetchConfig, apiErrors.ErrDatabaseOperation, customerID, "Falha ao buscar instruções do cliente")
	}
	view.Instruction = instruction

	if view.GoogleAds == nil && view.SA360 == nil && view.Instruction == nil {
		return nil, NewAccountErrorWithID(ErrCustomerNotFound, apiErrors.ErrCustomerNotFound, customerID, "Cliente sem configuração")
	}

	return view, nil
}

func ignoreNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}

func (s *Service) ListCustomers(ctx context.Context, usecase domain.Usecase) ([]string, error) {
	if !usecase.IsValid() {
		return nil, NewAccountError(ErrInvalidUsecase, apiErrors.ErrInvalidUsecase, fmt.Sprintf("usecase inválido: %q", usecase))
	}

	customerIDs, err := s.configRepository.ListCustomerIDs(ctx, usecase)
	if err != nil {
		return nil, NewAccountError(ErrFetchConfig, apiErrors.ErrDatabaseOperation, "Falha ao listar clientes no banco de dados")
	}

	return customerIDs, nil
}

// sa360Kinds são as mudanças que a planilha de bulk upload consegue representar
var sa360Kinds = map[domain.ChangeKind]bool{
	domain.ChangeCampaignStatus: true,
	domain.ChangeBudget:         true,
	domain.ChangeGeoTarget:      true,
}

// EnqueueChanges valida os envelopes e os guarda para a próxima execução do cliente.
// Um envelope inválido rejeita o lote inteiro.
func (s *Service) EnqueueChanges(ctx context.Context, customerID string, usecase domain.Usecase, envelopes []domain.ChangeEnvelope) ([]domain.PendingChange, error) {
	if customerID == "" {
		return nil, ErrCustomerIDRequired
	}
	if !usecase.IsValid() {
		return nil, NewAccountErrorWithID(ErrInvalidUsecase, apiErrors.ErrInvalidUsecase, customerID, fmt.Sprintf("usecase inválido: %q", usecase))
	}
	if len(envelopes) == 0 {
		return nil, NewAccountErrorWithID(ErrInvalidChange, apiErrors.ErrMissingRequiredData, customerID, "nenhuma mudança informada")
	}

	pending := make([]domain.PendingChange, 0, len(envelopes))
	createdAt := s.now().UTC()

	for i, envelope := range envelopes {
		change, err := envelope.ToChange()
		if err != nil {
			return nil, NewAccountErrorWithID(ErrInvalidChange, apiErrors.ErrInvalidChange, customerID, fmt.Sprintf("mudança %d: %s", i, err.Error()))
		}
		if change.Target() == "" {
			return nil, NewAccountErrorWithID(ErrInvalidChange, apiErrors.ErrInvalidChange, customerID, fmt.Sprintf("mudança %d: alvo ausente", i))
		}
		if usecase == domain.UsecaseSA360 && !sa360Kinds[change.Kind()] {
			return nil, NewAccountErrorWithID(ErrInvalidChange, apiErrors.ErrInvalidChange, customerID, fmt.Sprintf("mudança %d: %s não é suportada no SA360", i, change.Kind()))
		}

		id, err := s.newID()
		if err != nil {
			return nil, NewAccountErrorWithID(ErrGenerateID, apiErrors.ErrInternalServer, customerID, "Falha ao gerar identificador da mudança")
		}

		pending = append(pending, domain.PendingChange{
			ID:         id,
			CustomerID: customerID,
			Usecase:    usecase,
			Change:     domain.EnvelopeFor(change),
			CreatedAt:  createdAt,
		})
	}

	if err := s.pendingRepository.Enqueue(ctx, pending); err != nil {
		logrus.WithFields(logrus.Fields{"customer_id": customerID, "error": err.Error()}).Error("Error enqueuing changes")
		return nil, NewAccountErrorWithID(ErrEnqueueChange, apiErrors.ErrDatabaseOperation, customerID, "Falha ao salvar mudanças")
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"usecase":     usecase,
		"quantity":    len(pending),
	}).Info("Mudanças enfileiradas para a próxima execução")

	return pending, nil
}
