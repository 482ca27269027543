package repository

import (
	"context"

	"github.com/camden-git/sitebackend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Store groups the repositories over a single database handle.
type Store struct {
	Visitors     VisitorRepository
	Achievements AchievementRepository
	Gallery      GalleryRepository
	Messages     MessageRepository

	db *gorm.DB
}

// NewStore creates the repositories over db
func NewStore(db *gorm.DB) *Store {
	return &Store{
		Visitors:     NewGormVisitorRepository(db),
		Achievements: NewGormAchievementRepository(db),
		Gallery:      NewGormGalleryRepository(db),
		Messages:     NewGormMessageRepository(db),
		db:           db,
	}
}

// Counts returns the number of rows in each table, keyed by table name.
func (s *Store) Counts(ctx context.Context) (map[string]int64, error) {
	tables := []schema.Tabler{&models.Visitor{}, &models.Achievement{}, &models.GalleryItem{}, &models.Message{}}
	counts := make(map[string]int64, len(tables))
	for _, model := range tables {
		var n int64
		if err := s.db.WithContext(ctx).Model(model).Count(&n).Error; err != nil {
			return nil, wrapErr(err, "failed to count %s", model.TableName())
		}
		counts[model.TableName()] = n
	}
	return counts, nil
}
