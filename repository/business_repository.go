package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/randexapp/randex/models"
	"gorm.io/gorm"
)

type GormBusinessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) *GormBusinessRepository {
	return &GormBusinessRepository{db: db}
}

const businessSummarySelect = `businesses.id, businesses.owner_id, businesses.name, businesses.type,
	businesses.description, businesses.address, businesses.phone, businesses.image_url,
	businesses.opening_time, businesses.closing_time, businesses.created_at,
	COALESCE(AVG(reviews.rating), 0) AS average_rating,
	COUNT(DISTINCT reviews.id) AS review_count`

func (r *GormBusinessRepository) summaryQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("businesses").
		Select(businessSummarySelect).
		Joins("LEFT JOIN reviews ON reviews.business_id = businesses.id").
		Group("businesses.id")
}

func (r *GormBusinessRepository) List(ctx context.Context, filter BusinessFilter) ([]models.BusinessSummary, error) {
	query := r.summaryQuery(ctx)
	if filter.Type != "" {
		query = query.Where("businesses.type = ?", filter.Type)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("(businesses.name ILIKE ? OR businesses.description ILIKE ?)", pattern, pattern)
	}

	var summaries []models.BusinessSummary
	err := query.Order("businesses.created_at DESC").Scan(&summaries).Error
	return summaries, err
}

func (r *GormBusinessRepository) GetDetail(ctx context.Context, id uuid.UUID) (*models.BusinessDetail, error) {
	var summary models.BusinessSummary
	err := r.summaryQuery(ctx).Where("businesses.id = ?", id).Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	if summary.ID == uuid.Nil {
		return nil, ErrNotFound
	}

	detail := models.BusinessDetail{BusinessSummary: summary}

	err = r.db.WithContext(ctx).
		Where("business_id = ?", id).
		Order("price ASC").
		Find(&detail.Services).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Table("reviews").
		Select("reviews.id, reviews.business_id, reviews.customer_id, reviews.rating, reviews.comment, reviews.created_at, users.name AS customer_name").
		Joins("JOIN users ON users.id = reviews.customer_id").
		Where("reviews.business_id = ?", id).
		Order("reviews.created_at DESC").
		Scan(&detail.Reviews).Error
	if err != nil {
		return nil, err
	}

	return &detail, nil
}

func (r *GormBusinessRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.BusinessSummary, error) {
	var summaries []models.BusinessSummary
	err := r.summaryQuery(ctx).
		Where("businesses.owner_id = ?", ownerID).
		Order("businesses.created_at DESC").
		Scan(&summaries).Error
	return summaries, err
}

func (r *GormBusinessRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	var business models.Business
	err := r.db.WithContext(ctx).First(&business, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &business, nil
}

func (r *GormBusinessRepository) GetOwned(ctx context.Context, id, ownerID uuid.UUID) (*models.Business, error) {
	var business models.Business
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&business).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &business, nil
}

func (r *GormBusinessRepository) Create(ctx context.Context, business *models.Business) error {
	return r.db.WithContext(ctx).Create(business).Error
}

func (r *GormBusinessRepository) Update(ctx context.Context, business *models.Business) error {
	return r.db.WithContext(ctx).Save(business).Error
}

func (r *GormBusinessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Services", "Reviews", "Appointments").
		Delete(&models.Business{ID: id}).Error
}
