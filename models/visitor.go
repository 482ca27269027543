package models

import "time"

// Visitor is a person who signed up on the site, identified by email.
// It corresponds to the 'visitors' table.
type Visitor struct {
	Base
	Email        string     `gorm:"size:255;not null;uniqueIndex" json:"email" validate:"required,email,max=255"`
	Name         *string    `gorm:"size:255" json:"name,omitempty" validate:"omitempty,max=255"`
	SubscribedAt *time.Time `gorm:"" json:"subscribed_at,omitempty"` // Nullable

	// Declared so the schema carries the cascading foreign key. Never preloaded;
	// use MessageRepository.ListByVisitor to walk a visitor's messages.
	Messages []Message `gorm:"foreignKey:VisitorID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
}

// TableName explicitly sets the table name for GORM.
func (Visitor) TableName() string {
	return "visitors"
}

// VisitorPatch lists the visitor fields an update may change. Nil leaves a field alone.
type VisitorPatch struct {
	Email        *string    `json:"email,omitempty"`
	Name         *string    `json:"name,omitempty"`
	SubscribedAt *time.Time `json:"subscribed_at,omitempty"`

	// Clear names optional columns to set to NULL, applied after the fields above.
	Clear []string `json:"clear,omitempty"`
}

// Apply copies the patch onto v and returns the changed columns.
// Clearing a required or unknown column fails with ErrNotClearable.
func (v *Visitor) Apply(p VisitorPatch) (map[string]any, error) {
	changes := map[string]any{}
	if p.Email != nil {
		v.Email = *p.Email
		changes["email"] = v.Email
	}
	if p.Name != nil {
		v.Name = p.Name
		changes["name"] = *p.Name
	}
	if p.SubscribedAt != nil {
		v.SubscribedAt = p.SubscribedAt
		changes["subscribed_at"] = *p.SubscribedAt
	}
	if err := clearColumns(changes, p.Clear, map[string]func(){
		"name":          func() { v.Name = nil },
		"subscribed_at": func() { v.SubscribedAt = nil },
	}); err != nil {
		return nil, err
	}
	return changes, nil
}

// ToMap returns the visitor's columns without its messages.
func (v *Visitor) ToMap() (map[string]any, error) {
	return ToMap(v)
}
