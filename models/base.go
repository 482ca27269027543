package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base holds the identifier and timestamps shared by every entity.
// Embed it by value; its hooks are promoted to the embedding type.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate assigns a random identifier and the creation timestamps
// when the caller did not supply them.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = tx.NowFunc()
	}
	if b.UpdatedAt.IsZero() || b.UpdatedAt.Before(b.CreatedAt) {
		b.UpdatedAt = b.CreatedAt
	}
	return nil
}

// Touch moves UpdatedAt forward to now and returns the new value.
// UpdatedAt never goes backwards, even if the clock does.
func (b *Base) Touch(now time.Time) time.Time {
	if now.After(b.UpdatedAt) {
		b.UpdatedAt = now
	}
	return b.UpdatedAt
}
