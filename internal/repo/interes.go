package repo

import (
	"ClientAdmin/internal/model"
	"context"

	"gorm.io/gorm"
)

// InteresRepository serves the read-only interest catalogue.
type InteresRepository interface {
	List(ctx context.Context) ([]model.Interes, error)
}

type interesRepo struct {
	db *gorm.DB
}

func NewInteresRepository(db *gorm.DB) InteresRepository {
	return &interesRepo{db: db}
}

func (r *interesRepo) List(ctx context.Context) ([]model.Interes, error) {
	var res []model.Interes
	if err := r.db.WithContext(ctx).Order("descripcion").Find(&res).Error; err != nil {
		return nil, err
	}
	return res, nil
}
