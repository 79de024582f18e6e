package models

// PropertyModel mirrors the listing service's table; this service only reads it.
type PropertyModel struct {
	ID      string `gorm:"primaryKey;size:64"`
	OwnerID string `gorm:"size:64;not null;index"`
	Title   string `gorm:"size:255;not null"`
}

func (PropertyModel) TableName() string {
	return "properties"
}
