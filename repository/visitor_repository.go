package repository

import (
	"context"

	"github.com/camden-git/sitebackend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormVisitorRepository handles database operations for visitors
type GormVisitorRepository struct {
	db *gorm.DB
}

// NewGormVisitorRepository creates a new instance of GormVisitorRepository
func NewGormVisitorRepository(db *gorm.DB) VisitorRepository {
	return &GormVisitorRepository{db: db}
}

// Create inserts a visitor. A second visitor with the same email is a constraint violation.
func (r *GormVisitorRepository) Create(ctx context.Context, visitor *models.Visitor) error {
	return wrapErr(createRecord(ctx, r.db, visitor), "failed to create visitor %s", visitor.Email)
}

// GetByID retrieves a visitor by their ID
func (r *GormVisitorRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Visitor, error) {
	visitor, err := getRecord[models.Visitor](ctx, r.db, id)
	if err != nil {
		return nil, wrapErr(err, "failed to get visitor %s", id)
	}
	return visitor, nil
}

// GetByEmail retrieves a visitor by their email address
func (r *GormVisitorRepository) GetByEmail(ctx context.Context, email string) (*models.Visitor, error) {
	var visitor models.Visitor
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&visitor).Error
	if err != nil {
		return nil, wrapErr(err, "failed to get visitor by email %s", email)
	}
	return &visitor, nil
}

// ListAll retrieves all visitors, ordered by email
func (r *GormVisitorRepository) ListAll(ctx context.Context) ([]models.Visitor, error) {
	var visitors []models.Visitor
	if err := r.db.WithContext(ctx).Order("email ASC").Find(&visitors).Error; err != nil {
		return nil, wrapErr(err, "failed to list visitors")
	}
	return visitors, nil
}

// Update applies a patch to a visitor and refreshes its updated_at
func (r *GormVisitorRepository) Update(ctx context.Context, id uuid.UUID, patch models.VisitorPatch) (*models.Visitor, error) {
	visitor, err := updateRecord(ctx, r.db, id, func(v *models.Visitor) (map[string]any, error) {
		return v.Apply(patch)
	})
	if err != nil {
		return nil, wrapErr(err, "failed to update visitor %s", id)
	}
	return visitor, nil
}

// Delete removes a visitor. Its messages go with it through the
// ON DELETE CASCADE foreign key, inside the same transaction.
func (r *GormVisitorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return wrapErr(deleteRecord[models.Visitor](ctx, r.db, id), "failed to delete visitor %s", id)
}
