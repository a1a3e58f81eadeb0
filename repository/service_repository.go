package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/randexapp/randex/models"
	"gorm.io/gorm"
)

type GormServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

func (r *GormServiceRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.Service, error) {
	var services []models.Service
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("price ASC").
		Find(&services).Error
	return services, err
}

func (r *GormServiceRepository) GetOwned(ctx context.Context, id, ownerID uuid.UUID) (*models.Service, error) {
	var service models.Service
	err := r.db.WithContext(ctx).
		Joins("JOIN businesses ON businesses.id = services.business_id").
		Where("services.id = ? AND businesses.owner_id = ?", id, ownerID).
		First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *GormServiceRepository) Create(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *GormServiceRepository) Update(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *GormServiceRepository) Delete(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Delete(service).Error
}
