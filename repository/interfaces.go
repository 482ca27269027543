package repository

import (
	"context"

	"github.com/camden-git/sitebackend/models"
	"github.com/google/uuid"
)

// VisitorRepository defines the methods for visitor data operations
type VisitorRepository interface {
	Create(ctx context.Context, visitor *models.Visitor) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Visitor, error)
	GetByEmail(ctx context.Context, email string) (*models.Visitor, error)
	ListAll(ctx context.Context) ([]models.Visitor, error)
	Update(ctx context.Context, id uuid.UUID, patch models.VisitorPatch) (*models.Visitor, error)
	Delete(ctx context.Context, id uuid.UUID) error // also removes the visitor's messages
}

// AchievementRepository defines the methods for achievement data operations
type AchievementRepository interface {
	Create(ctx context.Context, achievement *models.Achievement) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Achievement, error)
	ListAll(ctx context.Context) ([]models.Achievement, error)
	Update(ctx context.Context, id uuid.UUID, patch models.AchievementPatch) (*models.Achievement, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// GalleryRepository defines the methods for gallery item data operations
type GalleryRepository interface {
	Create(ctx context.Context, item *models.GalleryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.GalleryItem, error)
	ListAll(ctx context.Context) ([]models.GalleryItem, error)
	Update(ctx context.Context, id uuid.UUID, patch models.GalleryItemPatch) (*models.GalleryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MessageRepository defines the methods for message data operations
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Message, error)
	ListAll(ctx context.Context) ([]models.Message, error)
	ListByVisitor(ctx context.Context, visitorID uuid.UUID) ([]models.Message, error)
	Update(ctx context.Context, id uuid.UUID, patch models.MessagePatch) (*models.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
