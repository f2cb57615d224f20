package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
	"github.com/Kleberfca/timeline-project-system/internal/ports"
)

type ArquivoRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewArquivoRepository(db *gorm.DB, log *zap.Logger) ports.ArquivoRepository {
	return &ArquivoRepository{
		db:  db,
		log: log,
	}
}

func (r *ArquivoRepository) Create(ctx context.Context, arquivo *domain.Arquivo) error {
	return r.db.WithContext(ctx).Create(arquivo).Error
}

func (r *ArquivoRepository) GetByID(ctx context.Context, id string) (*domain.Arquivo, error) {
	var arquivo domain.Arquivo
	err := r.db.WithContext(ctx).First(&arquivo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &arquivo, nil
}

func (r *ArquivoRepository) ListByTimelineEntry(ctx context.Context, entryID string) ([]*domain.Arquivo, error) {
	var arquivos []*domain.Arquivo
	err := r.db.WithContext(ctx).
		Where("projeto_timeline_id = ?", entryID).
		Order("created_at DESC").
		Find(&arquivos).Error
	if err != nil {
		return nil, err
	}
	return arquivos, nil
}

func (r *ArquivoRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Arquivo{}, "id = ?", id).Error
}
