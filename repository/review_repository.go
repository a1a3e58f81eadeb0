package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/randexapp/randex/models"
	"gorm.io/gorm"
)

type GormReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.ReviewWithCustomer, error) {
	var reviews []models.ReviewWithCustomer
	err := r.db.WithContext(ctx).
		Table("reviews").
		Select("reviews.id, reviews.business_id, reviews.customer_id, reviews.rating, reviews.comment, reviews.created_at, users.name AS customer_name").
		Joins("JOIN users ON users.id = reviews.customer_id").
		Where("reviews.business_id = ?", businessID).
		Order("reviews.created_at DESC").
		Scan(&reviews).Error
	return reviews, err
}

func (r *GormReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *GormReviewRepository) GetOwned(ctx context.Context, id, customerID uuid.UUID) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *GormReviewRepository) Update(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *GormReviewRepository) Delete(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Delete(review).Error
}
