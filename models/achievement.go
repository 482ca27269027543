package models

// Achievement is an entry on the site's list of accomplishments.
// It corresponds to the 'achievements' table.
type Achievement struct {
	Base
	Title       string  `gorm:"size:255;not null" json:"title" validate:"required,max=255"`
	Year        *int    `gorm:"" json:"year,omitempty"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	Category    *string `gorm:"size:255" json:"category,omitempty" validate:"omitempty,max=255"`
}

// TableName explicitly sets the table name for GORM.
func (Achievement) TableName() string {
	return "achievements"
}

// AchievementPatch lists the achievement fields an update may change. Nil leaves a field alone.
type AchievementPatch struct {
	Title       *string `json:"title,omitempty"`
	Year        *int    `json:"year,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`

	// Clear names optional columns to set to NULL, applied after the fields above.
	Clear []string `json:"clear,omitempty"`
}

// Apply copies the patch onto a and returns the changed columns.
// Clearing a required or unknown column fails with ErrNotClearable.
func (a *Achievement) Apply(p AchievementPatch) (map[string]any, error) {
	changes := map[string]any{}
	if p.Title != nil {
		a.Title = *p.Title
		changes["title"] = a.Title
	}
	if p.Year != nil {
		a.Year = p.Year
		changes["year"] = *p.Year
	}
	if p.Description != nil {
		a.Description = p.Description
		changes["description"] = *p.Description
	}
	if p.Category != nil {
		a.Category = p.Category
		changes["category"] = *p.Category
	}
	if err := clearColumns(changes, p.Clear, map[string]func(){
		"year":        func() { a.Year = nil },
		"description": func() { a.Description = nil },
		"category":    func() { a.Category = nil },
	}); err != nil {
		return nil, err
	}
	return changes, nil
}

// ToMap returns the achievement's columns
func (a *Achievement) ToMap() (map[string]any, error) {
	return ToMap(a)
}
