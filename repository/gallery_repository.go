package repository

import (
	"context"

	"github.com/camden-git/sitebackend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormGalleryRepository handles database operations for gallery items
type GormGalleryRepository struct {
	db *gorm.DB
}

// NewGormGalleryRepository creates a new instance of GormGalleryRepository
func NewGormGalleryRepository(db *gorm.DB) GalleryRepository {
	return &GormGalleryRepository{db: db}
}

// Create inserts a new gallery item
func (r *GormGalleryRepository) Create(ctx context.Context, item *models.GalleryItem) error {
	return wrapErr(createRecord(ctx, r.db, item), "failed to create gallery item %s", item.ImageURL)
}

// GetByID retrieves a gallery item by its ID
func (r *GormGalleryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.GalleryItem, error) {
	item, err := getRecord[models.GalleryItem](ctx, r.db, id)
	if err != nil {
		return nil, wrapErr(err, "failed to get gallery item %s", id)
	}
	return item, nil
}

// ListAll retrieves the gallery, newest year first, then in upload order
func (r *GormGalleryRepository) ListAll(ctx context.Context) ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	err := r.db.WithContext(ctx).
		Order("year IS NULL, year DESC").
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, wrapErr(err, "failed to list gallery items")
	}
	return items, nil
}

// Update applies a patch to a gallery item and refreshes its updated_at
func (r *GormGalleryRepository) Update(ctx context.Context, id uuid.UUID, patch models.GalleryItemPatch) (*models.GalleryItem, error) {
	item, err := updateRecord(ctx, r.db, id, func(g *models.GalleryItem) (map[string]any, error) {
		return g.Apply(patch)
	})
	if err != nil {
		return nil, wrapErr(err, "failed to update gallery item %s", id)
	}
	return item, nil
}

// Delete removes a gallery item by its ID
func (r *GormGalleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return wrapErr(deleteRecord[models.GalleryItem](ctx, r.db, id), "failed to delete gallery item %s", id)
}
