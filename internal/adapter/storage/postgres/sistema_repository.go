package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
	"github.com/Kleberfca/timeline-project-system/internal/ports"
)

type SistemaConfigRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSistemaConfigRepository(db *gorm.DB, log *zap.Logger) ports.SistemaConfigRepository {
	return &SistemaConfigRepository{
		db:  db,
		log: log,
	}
}

// Get returns the singleton branding row, or nil when it was never set.
func (r *SistemaConfigRepository) Get(ctx context.Context) (*domain.SistemaConfig, error) {
	var cfg domain.SistemaConfig
	err := r.db.WithContext(ctx).First(&cfg, "id = ?", domain.SistemaConfigID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *SistemaConfigRepository) Upsert(ctx context.Context, cfg *domain.SistemaConfig) error {
	cfg.ID = domain.SistemaConfigID
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(cfg).Error
}
