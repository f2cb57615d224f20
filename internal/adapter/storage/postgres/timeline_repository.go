package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
	"github.com/Kleberfca/timeline-project-system/internal/ports"
)

type TimelineRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewTimelineRepository(db *gorm.DB, log *zap.Logger) ports.TimelineRepository {
	return &TimelineRepository{
		db:  db,
		log: log,
	}
}

func (r *TimelineRepository) GetByID(ctx context.Context, id string) (*domain.TimelineEntry, error) {
	var entry domain.TimelineEntry
	err := r.db.WithContext(ctx).
		Preload("Etapa").
		Preload("Etapa.Fase").
		First(&entry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// ListByProjeto returns all entries for the projeto ordered by fase and
// etapa order, with catalog data and attachments preloaded.
func (r *TimelineRepository) ListByProjeto(ctx context.Context, projetoID string) ([]*domain.TimelineEntry, error) {
	var entries []*domain.TimelineEntry
	err := r.db.WithContext(ctx).
		Preload("Etapa").
		Preload("Etapa.Fase").
		Preload("Arquivos").
		Joins("JOIN etapas ON etapas.id = projeto_timeline.etapa_id").
		Joins("JOIN fases ON fases.id = etapas.fase_id").
		Where("projeto_timeline.projeto_id = ?", projetoID).
		Order("fases.ordem ASC, etapas.ordem ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *TimelineRepository) Update(ctx context.Context, entry *domain.TimelineEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *TimelineRepository) CountByStatus(ctx context.Context, status domain.StatusEtapa) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.TimelineEntry{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
