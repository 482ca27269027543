package models

// GalleryItem is a captioned image shown in the site gallery.
// It corresponds to the 'gallery' table.
type GalleryItem struct {
	Base
	ImageURL string  `gorm:"column:image_url;size:2048;not null" json:"image_url" validate:"required,max=2048"`
	Caption  *string `gorm:"size:500" json:"caption,omitempty" validate:"omitempty,max=500"`
	Year     *int    `gorm:"" json:"year,omitempty"` // Nullable
}

// TableName explicitly sets the table name for GORM.
func (GalleryItem) TableName() string {
	return "gallery"
}

// GalleryItemPatch lists the gallery item fields an update may change. Nil leaves a field alone.
type GalleryItemPatch struct {
	ImageURL *string `json:"image_url,omitempty"`
	Caption  *string `json:"caption,omitempty"`
	Year     *int    `json:"year,omitempty"`

	// Clear names optional columns to set to NULL, applied after the fields above.
	Clear []string `json:"clear,omitempty"`
}

// Apply copies the patch onto g and returns the changed columns.
// Clearing a required or unknown column fails with ErrNotClearable.
func (g *GalleryItem) Apply(p GalleryItemPatch) (map[string]any, error) {
	changes := map[string]any{}
	if p.ImageURL != nil {
		g.ImageURL = *p.ImageURL
		changes["image_url"] = g.ImageURL
	}
	if p.Caption != nil {
		g.Caption = p.Caption
		changes["caption"] = *p.Caption
	}
	if p.Year != nil {
		g.Year = p.Year
		changes["year"] = *p.Year
	}
	if err := clearColumns(changes, p.Clear, map[string]func(){
		"caption": func() { g.Caption = nil },
		"year":    func() { g.Year = nil },
	}); err != nil {
		return nil, err
	}
	return changes, nil
}

// ToMap returns the gallery item's columns
func (g *GalleryItem) ToMap() (map[string]any, error) {
	return ToMap(g)
}
