package cliente

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
	"github.com/Kleberfca/timeline-project-system/internal/ports"
)

type Service struct {
	clienteRepo ports.ClienteRepository
	log         *zap.Logger
}

func NewService(clienteRepo ports.ClienteRepository, log *zap.Logger) *Service {
	return &Service{
		clienteRepo: clienteRepo,
		log:         log,
	}
}

type CreateInput struct {
	Nome     string  `json:"nome"`
	Email    string  `json:"email"`
	Telefone *string `json:"telefone,omitempty"`
	Empresa  *string `json:"empresa,omitempty"`
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Cliente, error) {
	now := time.Now()
	cliente := &domain.Cliente{
		ID:        uuid.NewString(),
		Nome:      input.Nome,
		Email:     input.Email,
		Telefone:  input.Telefone,
		Empresa:   input.Empresa,
		Ativo:     true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.clienteRepo.Create(ctx, cliente); err != nil {
		return nil, err
	}
	s.log.Info("Cliente created", zap.String("cliente_id", cliente.ID))
	return cliente, nil
}

type UpdateInput struct {
	Nome     *string `json:"nome,omitempty"`
	Email    *string `json:"email,omitempty"`
	Telefone *string `json:"telefone,omitempty"`
	Empresa  *string `json:"empresa,omitempty"`
	Ativo    *bool   `json:"ativo,omitempty"`
}

func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (*domain.Cliente, error) {
	cliente, err := s.clienteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}

	if input.Nome != nil {
		cliente.Nome = *input.Nome
	}
	if input.Email != nil {
		cliente.Email = *input.Email
	}
	if input.Telefone != nil {
		cliente.Telefone = input.Telefone
	}
	if input.Empresa != nil {
		cliente.Empresa = input.Empresa
	}
	if input.Ativo != nil {
		cliente.Ativo = *input.Ativo
	}
	cliente.UpdatedAt = time.Now()

	if err := s.clienteRepo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Cliente, error) {
	cliente, err := s.clienteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	return cliente, nil
}

func (s *Service) List(ctx context.Context, apenasAtivos bool) ([]*domain.Cliente, error) {
	return s.clienteRepo.List(ctx, apenasAtivos)
}

func (s *Service) Deactivate(ctx context.Context, id string) error {
	cliente, err := s.clienteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNotFound
	}
	return s.clienteRepo.Deactivate(ctx, id)
}
