package projeto

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
	"github.com/Kleberfca/timeline-project-system/internal/observability/telemetry"
	"github.com/Kleberfca/timeline-project-system/internal/ports"
)

type Service struct {
	projetoRepo ports.ProjetoRepository
	clienteRepo ports.ClienteRepository
	catalogRepo ports.CatalogRepository
	log         *zap.Logger
}

func NewService(projetoRepo ports.ProjetoRepository, clienteRepo ports.ClienteRepository, catalogRepo ports.CatalogRepository, log *zap.Logger) *Service {
	return &Service{
		projetoRepo: projetoRepo,
		clienteRepo: clienteRepo,
		catalogRepo: catalogRepo,
		log:         log,
	}
}

type CreateInput struct {
	ClienteID       string     `json:"cliente_id"`
	Nome            string     `json:"nome"`
	Descricao       *string    `json:"descricao,omitempty"`
	DataInicio      time.Time  `json:"data_inicio"`
	DataFimPrevista *time.Time `json:"data_fim_prevista,omitempty"`
}

// Create persists a new projeto together with one pendente timeline entry
// per catalog etapa, all inside one transaction. A projeto is never visible
// with a partial timeline.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Projeto, error) {
	cliente, err := s.clienteRepo.GetByID(ctx, input.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}

	etapas, err := s.catalogRepo.ListEtapas(ctx)
	if err != nil {
		return nil, err
	}
	if len(etapas) == 0 {
		return nil, fmt.Errorf("etapa catalog is empty, cannot seed timeline")
	}

	now := time.Now()
	projeto := &domain.Projeto{
		ID:              uuid.NewString(),
		ClienteID:       input.ClienteID,
		Nome:            input.Nome,
		Descricao:       input.Descricao,
		DataInicio:      input.DataInicio,
		DataFimPrevista: input.DataFimPrevista,
		Ativo:           true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	entries := make([]*domain.TimelineEntry, 0, len(etapas))
	for _, etapa := range etapas {
		entries = append(entries, &domain.TimelineEntry{
			ID:        uuid.NewString(),
			ProjetoID: projeto.ID,
			EtapaID:   etapa.ID,
			Status:    domain.StatusPendente,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if err := s.projetoRepo.CreateWithTimeline(ctx, projeto, entries); err != nil {
		return nil, err
	}

	telemetry.ProjetosCreated.Inc()
	s.log.Info("Projeto created",
		zap.String("projeto_id", projeto.ID),
		zap.String("cliente_id", projeto.ClienteID),
		zap.Int("timeline_entries", len(entries)),
	)
	return projeto, nil
}

type UpdateInput struct {
	Nome            *string    `json:"nome,omitempty"`
	Descricao       *string    `json:"descricao,omitempty"`
	DataInicio      *time.Time `json:"data_inicio,omitempty"`
	DataFimPrevista *time.Time `json:"data_fim_prevista,omitempty"`
	Ativo           *bool      `json:"ativo,omitempty"`
}

func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (*domain.Projeto, error) {
	projeto, err := s.projetoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if projeto == nil {
		return nil, domain.ErrNotFound
	}

	if input.Nome != nil {
		projeto.Nome = *input.Nome
	}
	if input.Descricao != nil {
		projeto.Descricao = input.Descricao
	}
	if input.DataInicio != nil {
		projeto.DataInicio = *input.DataInicio
	}
	if input.DataFimPrevista != nil {
		projeto.DataFimPrevista = input.DataFimPrevista
	}
	if input.Ativo != nil {
		projeto.Ativo = *input.Ativo
	}
	projeto.UpdatedAt = time.Now()

	if err := s.projetoRepo.Update(ctx, projeto); err != nil {
		return nil, err
	}
	return projeto, nil
}

// GetByID enforces scope: clientes only see their own projetos.
func (s *Service) GetByID(ctx context.Context, id string, user *domain.User) (*domain.Projeto, error) {
	projeto, err := s.projetoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if projeto == nil {
		return nil, domain.ErrNotFound
	}
	if !user.IsAdmin() {
		if user.ClienteID == nil || *user.ClienteID != projeto.ClienteID {
			return nil, domain.ErrForbidden
		}
	}
	return projeto, nil
}

// List returns every projeto for admins, or the caller's own active
// projetos for clientes.
func (s *Service) List(ctx context.Context, user *domain.User) ([]*domain.Projeto, error) {
	if user.IsAdmin() {
		return s.projetoRepo.List(ctx)
	}
	if user.ClienteID == nil {
		return nil, domain.ErrForbidden
	}
	return s.projetoRepo.ListByCliente(ctx, *user.ClienteID)
}

func (s *Service) Deactivate(ctx context.Context, id string) error {
	projeto, err := s.projetoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if projeto == nil {
		return domain.ErrNotFound
	}
	return s.projetoRepo.Deactivate(ctx, id)
}

// EnsureCatalog seeds the fixed fase and etapa catalog. Idempotent, runs
// on every startup. Fases are seeded first and read back so etapas always
// reference the persisted fase ids, not freshly generated ones.
func (s *Service) EnsureCatalog(ctx context.Context) error {
	fases := make([]*domain.Fase, 0, len(domain.FasesOrdenadas))
	for i, nome := range domain.FasesOrdenadas {
		fases = append(fases, &domain.Fase{ID: uuid.NewString(), Nome: nome, Ordem: i + 1})
	}
	if err := s.catalogRepo.Seed(ctx, fases, nil); err != nil {
		return fmt.Errorf("failed to seed fases: %w", err)
	}

	persisted, err := s.catalogRepo.ListFases(ctx)
	if err != nil {
		return err
	}
	faseIDs := make(map[domain.FaseNome]string, len(persisted))
	for _, f := range persisted {
		faseIDs[f.Nome] = f.ID
	}

	var etapas []*domain.Etapa
	for _, faseNome := range domain.FasesOrdenadas {
		faseID, ok := faseIDs[faseNome]
		if !ok {
			return fmt.Errorf("fase %s missing after seed", faseNome)
		}
		for i, etapaNome := range domain.EtapasPorFase[faseNome] {
			etapas = append(etapas, &domain.Etapa{
				ID:     uuid.NewString(),
				FaseID: faseID,
				Nome:   etapaNome,
				Ordem:  i + 1,
			})
		}
	}

	if err := s.catalogRepo.Seed(ctx, nil, etapas); err != nil {
		return fmt.Errorf("failed to seed etapas: %w", err)
	}
	return nil
}
