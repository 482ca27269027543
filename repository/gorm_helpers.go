package repository

import (
	"context"
	"time"

	"github.com/camden-git/sitebackend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// entity is satisfied by a pointer to any model embedding models.Base.
type entity[T any] interface {
	*T
	Touch(now time.Time) time.Time
}

func createRecord[T any](ctx context.Context, db *gorm.DB, rec *T) error {
	if err := models.Validate(rec); err != nil {
		return err
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// associations are never written through the parent; Visitor.Messages
		// exists only for the foreign key
		return tx.Omit(clause.Associations).Create(rec).Error
	})
}

func getRecord[T any](ctx context.Context, db *gorm.DB, id uuid.UUID) (*T, error) {
	var rec T
	if err := db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// updateRecord loads the record, lets apply change it in memory, validates the
// result and writes the changed columns with a fresh updated_at, all in one transaction.
func updateRecord[T any, P entity[T]](ctx context.Context, db *gorm.DB, id uuid.UUID, apply func(P) (map[string]any, error)) (P, error) {
	var updated P
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec := P(new(T))
		if err := tx.First(rec, "id = ?", id).Error; err != nil {
			return err
		}

		changes, err := apply(rec)
		if err != nil {
			return err
		}
		if err := models.Validate(rec); err != nil {
			return err
		}
		changes["updated_at"] = rec.Touch(tx.NowFunc())

		// UpdateColumns skips hooks and GORM's own timestamp handling
		if err := tx.Model(rec).Omit(clause.Associations).UpdateColumns(changes).Error; err != nil {
			return err
		}
		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func deleteRecord[T any](ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(new(T))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
