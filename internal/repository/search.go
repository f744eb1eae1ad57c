package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/raghhhava7/Devclimate-BE/internal/models"
	"gorm.io/gorm"
)

// SearchRepository defines the interface for weather search persistence.
// Every read and delete is scoped to the owning user id.
type SearchRepository interface {
	Create(ctx context.Context, search *models.WeatherSearch) error
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.WeatherSearch, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (int64, error)
}

type searchRepository struct {
	db *gorm.DB
}

// NewSearchRepository creates a new SearchRepository instance.
func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

func (r *searchRepository) Create(ctx context.Context, search *models.WeatherSearch) error {
	if err := r.db.WithContext(ctx).Create(search).Error; err != nil {
		return fmt.Errorf("failed to create weather search: %w", err)
	}
	return nil
}

func (r *searchRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.WeatherSearch, error) {
	var searches []models.WeatherSearch
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("searched_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&searches).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list searches for user %s: %w", userID, err)
	}
	return searches, nil
}

func (r *searchRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WeatherSearch{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count searches for user %s: %w", userID, err)
	}
	return count, nil
}

// DeleteByIDAndOwner deletes a search only when both the id and the owning
// user id match, and reports the number of rows removed. A zero count means
// the record does not exist or belongs to someone else; callers must not
// distinguish the two.
func (r *searchRepository) DeleteByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.WeatherSearch{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete search %s: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}
