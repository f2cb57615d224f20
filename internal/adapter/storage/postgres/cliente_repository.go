package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
	"github.com/Kleberfca/timeline-project-system/internal/ports"
)

type ClienteRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewClienteRepository(db *gorm.DB, log *zap.Logger) ports.ClienteRepository {
	return &ClienteRepository{
		db:  db,
		log: log,
	}
}

func (r *ClienteRepository) Create(ctx context.Context, cliente *domain.Cliente) error {
	return r.db.WithContext(ctx).Create(cliente).Error
}

func (r *ClienteRepository) GetByID(ctx context.Context, id string) (*domain.Cliente, error) {
	var cliente domain.Cliente
	err := r.db.WithContext(ctx).First(&cliente, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cliente, nil
}

func (r *ClienteRepository) List(ctx context.Context, apenasAtivos bool) ([]*domain.Cliente, error) {
	var clientes []*domain.Cliente
	q := r.db.WithContext(ctx).Order("nome ASC")
	if apenasAtivos {
		q = q.Where("ativo = ?", true)
	}
	if err := q.Find(&clientes).Error; err != nil {
		return nil, err
	}
	return clientes, nil
}

func (r *ClienteRepository) Update(ctx context.Context, cliente *domain.Cliente) error {
	return r.db.WithContext(ctx).Save(cliente).Error
}

// Deactivate soft-deletes by flipping ativo; rows are never removed so
// historical projetos keep their cliente.
func (r *ClienteRepository) Deactivate(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Cliente{}).
		Where("id = ?", id).
		Update("ativo", false).Error
}

func (r *ClienteRepository) CountAtivos(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Cliente{}).
		Where("ativo = ?", true).
		Count(&count).Error
	return count, err
}
