package models

import "github.com/google/uuid"

// Message is a note a visitor left through the contact form.
// It corresponds to the 'messages' table and is removed together with its visitor.
type Message struct {
	Base
	VisitorID uuid.UUID `gorm:"type:uuid;not null;index" json:"visitor_id" validate:"required"`
	Subject   *string   `gorm:"size:255" json:"subject,omitempty" validate:"omitempty,max=255"`
	Content   string    `gorm:"type:text;not null" json:"content" validate:"required"`
}

// TableName explicitly sets the table name for GORM.
func (Message) TableName() string {
	return "messages"
}

// MessagePatch changes a message's text. The owning visitor is fixed at creation.
type MessagePatch struct {
	Subject *string `json:"subject,omitempty"`
	Content *string `json:"content,omitempty"`

	// Clear names optional columns to set to NULL, applied after the fields above.
	Clear []string `json:"clear,omitempty"`
}

// Apply copies the patch onto m and returns the changed columns.
// Clearing a required or unknown column fails with ErrNotClearable.
func (m *Message) Apply(p MessagePatch) (map[string]any, error) {
	changes := map[string]any{}
	if p.Subject != nil {
		m.Subject = p.Subject
		changes["subject"] = *p.Subject
	}
	if p.Content != nil {
		m.Content = *p.Content
		changes["content"] = m.Content
	}
	if err := clearColumns(changes, p.Clear, map[string]func(){
		"subject": func() { m.Subject = nil },
	}); err != nil {
		return nil, err
	}
	return changes, nil
}

// ToMap returns the message's columns. The visitor is referenced by id only.
func (m *Message) ToMap() (map[string]any, error) {
	return ToMap(m)
}
