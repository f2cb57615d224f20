package ports

import (
	"context"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
)

// UserRepository gerencia persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

// ClienteRepository gerencia persistência de clientes
type ClienteRepository interface {
	Create(ctx context.Context, cliente *domain.Cliente) error
	GetByID(ctx context.Context, id string) (*domain.Cliente, error)
	List(ctx context.Context, apenasAtivos bool) ([]*domain.Cliente, error)
	Update(ctx context.Context, cliente *domain.Cliente) error
	Deactivate(ctx context.Context, id string) error
	CountAtivos(ctx context.Context) (int64, error)
}

// ProjetoRepository gerencia persistência de projetos
type ProjetoRepository interface {
	// CreateWithTimeline grava o projeto e todas as entradas de timeline
	// na mesma transação. Ou tudo persiste ou nada persiste.
	CreateWithTimeline(ctx context.Context, projeto *domain.Projeto, entries []*domain.TimelineEntry) error
	GetByID(ctx context.Context, id string) (*domain.Projeto, error)
	List(ctx context.Context) ([]*domain.Projeto, error)
	ListByCliente(ctx context.Context, clienteID string) ([]*domain.Projeto, error)
	Update(ctx context.Context, projeto *domain.Projeto) error
	Deactivate(ctx context.Context, id string) error
	CountAtivos(ctx context.Context) (int64, error)
}

// TimelineRepository gerencia as entradas projeto x etapa
type TimelineRepository interface {
	GetByID(ctx context.Context, id string) (*domain.TimelineEntry, error)
	ListByProjeto(ctx context.Context, projetoID string) ([]*domain.TimelineEntry, error)
	Update(ctx context.Context, entry *domain.TimelineEntry) error
	CountByStatus(ctx context.Context, status domain.StatusEtapa) (int64, error)
}

// CatalogRepository gerencia o catálogo fixo de fases e etapas
type CatalogRepository interface {
	ListFases(ctx context.Context) ([]*domain.Fase, error)
	ListEtapas(ctx context.Context) ([]*domain.Etapa, error)
	Seed(ctx context.Context, fases []*domain.Fase, etapas []*domain.Etapa) error
}

// ArquivoRepository gerencia metadados de anexos
type ArquivoRepository interface {
	Create(ctx context.Context, arquivo *domain.Arquivo) error
	GetByID(ctx context.Context, id string) (*domain.Arquivo, error)
	ListByTimelineEntry(ctx context.Context, entryID string) ([]*domain.Arquivo, error)
	Delete(ctx context.Context, id string) error
}

// SistemaConfigRepository gerencia a configuração global de branding
type SistemaConfigRepository interface {
	Get(ctx context.Context) (*domain.SistemaConfig, error)
	Upsert(ctx context.Context, config *domain.SistemaConfig) error
}
