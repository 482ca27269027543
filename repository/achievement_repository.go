package repository

import (
	"context"

	"github.com/camden-git/sitebackend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAchievementRepository handles database operations for achievements
type GormAchievementRepository struct {
	db *gorm.DB
}

// NewGormAchievementRepository creates a new instance of GormAchievementRepository
func NewGormAchievementRepository(db *gorm.DB) AchievementRepository {
	return &GormAchievementRepository{db: db}
}

// Create inserts a new achievement
func (r *GormAchievementRepository) Create(ctx context.Context, achievement *models.Achievement) error {
	return wrapErr(createRecord(ctx, r.db, achievement), "failed to create achievement %q", achievement.Title)
}

// GetByID retrieves an achievement by its ID
func (r *GormAchievementRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Achievement, error) {
	achievement, err := getRecord[models.Achievement](ctx, r.db, id)
	if err != nil {
		return nil, wrapErr(err, "failed to get achievement %s", id)
	}
	return achievement, nil
}

// ListAll retrieves all achievements, newest year first. Undated entries sort last.
func (r *GormAchievementRepository) ListAll(ctx context.Context) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := r.db.WithContext(ctx).
		Order("year IS NULL, year DESC").
		Order("title ASC").
		Find(&achievements).Error
	if err != nil {
		return nil, wrapErr(err, "failed to list achievements")
	}
	return achievements, nil
}

// Update applies a patch to an achievement and refreshes its updated_at
func (r *GormAchievementRepository) Update(ctx context.Context, id uuid.UUID, patch models.AchievementPatch) (*models.Achievement, error) {
	achievement, err := updateRecord(ctx, r.db, id, func(a *models.Achievement) (map[string]any, error) {
		return a.Apply(patch)
	})
	if err != nil {
		return nil, wrapErr(err, "failed to update achievement %s", id)
	}
	return achievement, nil
}

// Delete removes an achievement by its ID
func (r *GormAchievementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return wrapErr(deleteRecord[models.Achievement](ctx, r.db, id), "failed to delete achievement %s", id)
}
