package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
	"github.com/Kleberfca/timeline-project-system/internal/ports"
)

type ProjetoRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewProjetoRepository(db *gorm.DB, log *zap.Logger) ports.ProjetoRepository {
	return &ProjetoRepository{
		db:  db,
		log: log,
	}
}

// CreateWithTimeline persists the projeto and its full set of timeline
// entries in a single transaction, so a half-seeded timeline can never
// be observed.
func (r *ProjetoRepository) CreateWithTimeline(ctx context.Context, projeto *domain.Projeto, entries []*domain.TimelineEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(projeto).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(entries).Error
	})
}

func (r *ProjetoRepository) GetByID(ctx context.Context, id string) (*domain.Projeto, error) {
	var projeto domain.Projeto
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		First(&projeto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &projeto, nil
}

func (r *ProjetoRepository) List(ctx context.Context) ([]*domain.Projeto, error) {
	var projetos []*domain.Projeto
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Order("created_at DESC").
		Find(&projetos).Error
	if err != nil {
		return nil, err
	}
	return projetos, nil
}

func (r *ProjetoRepository) ListByCliente(ctx context.Context, clienteID string) ([]*domain.Projeto, error) {
	var projetos []*domain.Projeto
	err := r.db.WithContext(ctx).
		Where("cliente_id = ? AND ativo = ?", clienteID, true).
		Order("created_at DESC").
		Find(&projetos).Error
	if err != nil {
		return nil, err
	}
	return projetos, nil
}

func (r *ProjetoRepository) Update(ctx context.Context, projeto *domain.Projeto) error {
	return r.db.WithContext(ctx).Save(projeto).Error
}

func (r *ProjetoRepository) Deactivate(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Projeto{}).
		Where("id = ?", id).
		Update("ativo", false).Error
}

func (r *ProjetoRepository) CountAtivos(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Projeto{}).
		Where("ativo = ?", true).
		Count(&count).Error
	return count, err
}
