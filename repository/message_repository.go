package repository

import (
	"context"
	"fmt"

	"github.com/camden-git/sitebackend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMessageRepository handles database operations for messages
type GormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository creates a new instance of GormMessageRepository
func NewGormMessageRepository(db *gorm.DB) MessageRepository {
	return &GormMessageRepository{db: db}
}

// Create inserts a message for an existing visitor. An unknown visitor_id
// is a constraint violation; the foreign key rejects it as well.
func (r *GormMessageRepository) Create(ctx context.Context, message *models.Message) error {
	if err := models.Validate(message); err != nil {
		return wrapErr(err, "failed to create message")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Visitor{}).Where("id = ?", message.VisitorID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("%w: visitor %s does not exist", ErrConstraintViolation, message.VisitorID)
		}
		return tx.Omit(clause.Associations).Create(message).Error
	})
	return wrapErr(err, "failed to create message for visitor %s", message.VisitorID)
}

// GetByID retrieves a message by its ID
func (r *GormMessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	message, err := getRecord[models.Message](ctx, r.db, id)
	if err != nil {
		return nil, wrapErr(err, "failed to get message %s", id)
	}
	return message, nil
}

// ListAll retrieves all messages, oldest first
func (r *GormMessageRepository) ListAll(ctx context.Context) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&messages).Error; err != nil {
		return nil, wrapErr(err, "failed to list messages")
	}
	return messages, nil
}

// ListByVisitor retrieves a visitor's messages, oldest first. An unknown
// visitor simply has no messages.
func (r *GormMessageRepository) ListByVisitor(ctx context.Context, visitorID uuid.UUID) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("visitor_id = ?", visitorID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, wrapErr(err, "failed to list messages for visitor %s", visitorID)
	}
	return messages, nil
}

// Update changes a message's subject or content and refreshes its updated_at
func (r *GormMessageRepository) Update(ctx context.Context, id uuid.UUID, patch models.MessagePatch) (*models.Message, error) {
	message, err := updateRecord(ctx, r.db, id, func(m *models.Message) (map[string]any, error) {
		return m.Apply(patch)
	})
	if err != nil {
		return nil, wrapErr(err, "failed to update message %s", id)
	}
	return message, nil
}

// Delete removes a single message by its ID
func (r *GormMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return wrapErr(deleteRecord[models.Message](ctx, r.db, id), "failed to delete message %s", id)
}
