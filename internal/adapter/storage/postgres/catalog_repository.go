package postgres

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
	"github.com/Kleberfca/timeline-project-system/internal/ports"
)

type CatalogRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCatalogRepository(db *gorm.DB, log *zap.Logger) ports.CatalogRepository {
	return &CatalogRepository{
		db:  db,
		log: log,
	}
}

func (r *CatalogRepository) ListFases(ctx context.Context) ([]*domain.Fase, error) {
	var fases []*domain.Fase
	err := r.db.WithContext(ctx).Order("ordem ASC").Find(&fases).Error
	if err != nil {
		return nil, err
	}
	return fases, nil
}

func (r *CatalogRepository) ListEtapas(ctx context.Context) ([]*domain.Etapa, error) {
	var etapas []*domain.Etapa
	err := r.db.WithContext(ctx).
		Preload("Fase").
		Joins("JOIN fases ON fases.id = etapas.fase_id").
		Order("fases.ordem ASC, etapas.ordem ASC").
		Find(&etapas).Error
	if err != nil {
		return nil, err
	}
	return etapas, nil
}

// Seed inserts the fixed catalog, skipping rows that already exist.
// Safe to run on every startup.
func (r *CatalogRepository) Seed(ctx context.Context, fases []*domain.Fase, etapas []*domain.Etapa) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(fases) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "nome"}},
				DoNothing: true,
			}).Create(fases).Error
			if err != nil {
				return err
			}
		}
		if len(etapas) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "fase_id"}, {Name: "nome"}},
				DoNothing: true,
			}).Create(etapas).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
