package mocks

import (
	"context"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	UpdateFunc     func(ctx context.Context, user *domain.User) error
	DeleteFunc     func(ctx context.Context, id string) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockClienteRepository is a mock implementation of ClienteRepository
type MockClienteRepository struct {
	CreateFunc      func(ctx context.Context, cliente *domain.Cliente) error
	GetByIDFunc     func(ctx context.Context, id string) (*domain.Cliente, error)
	ListFunc        func(ctx context.Context, apenasAtivos bool) ([]*domain.Cliente, error)
	UpdateFunc      func(ctx context.Context, cliente *domain.Cliente) error
	DeactivateFunc  func(ctx context.Context, id string) error
	CountAtivosFunc func(ctx context.Context) (int64, error)
}

func (m *MockClienteRepository) Create(ctx context.Context, cliente *domain.Cliente) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, cliente)
	}
	return nil
}

func (m *MockClienteRepository) GetByID(ctx context.Context, id string) (*domain.Cliente, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockClienteRepository) List(ctx context.Context, apenasAtivos bool) ([]*domain.Cliente, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, apenasAtivos)
	}
	return nil, nil
}

func (m *MockClienteRepository) Update(ctx context.Context, cliente *domain.Cliente) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, cliente)
	}
	return nil
}

func (m *MockClienteRepository) Deactivate(ctx context.Context, id string) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	return nil
}

func (m *MockClienteRepository) CountAtivos(ctx context.Context) (int64, error) {
	if m.CountAtivosFunc != nil {
		return m.CountAtivosFunc(ctx)
	}
	return 0, nil
}

// MockProjetoRepository is a mock implementation of ProjetoRepository
type MockProjetoRepository struct {
	CreateWithTimelineFunc func(ctx context.Context, projeto *domain.Projeto, entries []*domain.TimelineEntry) error
	GetByIDFunc            func(ctx context.Context, id string) (*domain.Projeto, error)
	ListFunc               func(ctx context.Context) ([]*domain.Projeto, error)
	ListByClienteFunc      func(ctx context.Context, clienteID string) ([]*domain.Projeto, error)
	UpdateFunc             func(ctx context.Context, projeto *domain.Projeto) error
	DeactivateFunc         func(ctx context.Context, id string) error
	CountAtivosFunc        func(ctx context.Context) (int64, error)
}

func (m *MockProjetoRepository) CreateWithTimeline(ctx context.Context, projeto *domain.Projeto, entries []*domain.TimelineEntry) error {
	if m.CreateWithTimelineFunc != nil {
		return m.CreateWithTimelineFunc(ctx, projeto, entries)
	}
	return nil
}

func (m *MockProjetoRepository) GetByID(ctx context.Context, id string) (*domain.Projeto, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProjetoRepository) List(ctx context.Context) ([]*domain.Projeto, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockProjetoRepository) ListByCliente(ctx context.Context, clienteID string) ([]*domain.Projeto, error) {
	if m.ListByClienteFunc != nil {
		return m.ListByClienteFunc(ctx, clienteID)
	}
	return nil, nil
}

func (m *MockProjetoRepository) Update(ctx context.Context, projeto *domain.Projeto) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, projeto)
	}
	return nil
}

func (m *MockProjetoRepository) Deactivate(ctx context.Context, id string) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	return nil
}

func (m *MockProjetoRepository) CountAtivos(ctx context.Context) (int64, error) {
	if m.CountAtivosFunc != nil {
		return m.CountAtivosFunc(ctx)
	}
	return 0, nil
}

// MockTimelineRepository is a mock implementation of TimelineRepository
type MockTimelineRepository struct {
	GetByIDFunc       func(ctx context.Context, id string) (*domain.TimelineEntry, error)
	ListByProjetoFunc func(ctx context.Context, projetoID string) ([]*domain.TimelineEntry, error)
	UpdateFunc        func(ctx context.Context, entry *domain.TimelineEntry) error
	CountByStatusFunc func(ctx context.Context, status domain.StatusEtapa) (int64, error)
}

func (m *MockTimelineRepository) GetByID(ctx context.Context, id string) (*domain.TimelineEntry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTimelineRepository) ListByProjeto(ctx context.Context, projetoID string) ([]*domain.TimelineEntry, error) {
	if m.ListByProjetoFunc != nil {
		return m.ListByProjetoFunc(ctx, projetoID)
	}
	return nil, nil
}

func (m *MockTimelineRepository) Update(ctx context.Context, entry *domain.TimelineEntry) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, entry)
	}
	return nil
}

func (m *MockTimelineRepository) CountByStatus(ctx context.Context, status domain.StatusEtapa) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, status)
	}
	return 0, nil
}

// MockCatalogRepository is a mock implementation of CatalogRepository
type MockCatalogRepository struct {
	ListFasesFunc  func(ctx context.Context) ([]*domain.Fase, error)
	ListEtapasFunc func(ctx context.Context) ([]*domain.Etapa, error)
	SeedFunc       func(ctx context.Context, fases []*domain.Fase, etapas []*domain.Etapa) error
}

func (m *MockCatalogRepository) ListFases(ctx context.Context) ([]*domain.Fase, error) {
	if m.ListFasesFunc != nil {
		return m.ListFasesFunc(ctx)
	}
	return nil, nil
}

func (m *MockCatalogRepository) ListEtapas(ctx context.Context) ([]*domain.Etapa, error) {
	if m.ListEtapasFunc != nil {
		return m.ListEtapasFunc(ctx)
	}
	return nil, nil
}

func (m *MockCatalogRepository) Seed(ctx context.Context, fases []*domain.Fase, etapas []*domain.Etapa) error {
	if m.SeedFunc != nil {
		return m.SeedFunc(ctx, fases, etapas)
	}
	return nil
}

// MockArquivoRepository is a mock implementation of ArquivoRepository
type MockArquivoRepository struct {
	CreateFunc              func(ctx context.Context, arquivo *domain.Arquivo) error
	GetByIDFunc             func(ctx context.Context, id string) (*domain.Arquivo, error)
	ListByTimelineEntryFunc func(ctx context.Context, entryID string) ([]*domain.Arquivo, error)
	DeleteFunc              func(ctx context.Context, id string) error
}

func (m *MockArquivoRepository) Create(ctx context.Context, arquivo *domain.Arquivo) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, arquivo)
	}
	return nil
}

func (m *MockArquivoRepository) GetByID(ctx context.Context, id string) (*domain.Arquivo, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockArquivoRepository) ListByTimelineEntry(ctx context.Context, entryID string) ([]*domain.Arquivo, error) {
	if m.ListByTimelineEntryFunc != nil {
		return m.ListByTimelineEntryFunc(ctx, entryID)
	}
	return nil, nil
}

func (m *MockArquivoRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockSistemaConfigRepository is a mock implementation of SistemaConfigRepository
type MockSistemaConfigRepository struct {
	GetFunc    func(ctx context.Context) (*domain.SistemaConfig, error)
	UpsertFunc func(ctx context.Context, config *domain.SistemaConfig) error
}

func (m *MockSistemaConfigRepository) Get(ctx context.Context) (*domain.SistemaConfig, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return nil, nil
}

func (m *MockSistemaConfigRepository) Upsert(ctx context.Context, config *domain.SistemaConfig) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, config)
	}
	return nil
}
