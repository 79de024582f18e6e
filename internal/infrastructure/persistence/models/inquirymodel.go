package models

import "gorm.io/datatypes"

// InquiryModel stores timestamps as epoch milliseconds in UTC.
type InquiryModel struct {
	ID                string            `gorm:"primaryKey;size:32"`
	Name              string            `gorm:"size:100;not null"`
	Phone             string            `gorm:"size:32;not null"`
	Email             string            `gorm:"size:255"`
	Message           string            `gorm:"type:text"`
	InquiryType       string            `gorm:"size:50;not null;index"`
	SourcePage        string            `gorm:"size:255"`
	ListingID         *string           `gorm:"size:64;index"`
	WhatsappOptIn     bool              `gorm:"not null;default:false"`
	PreferredVisitAt  *int64
	Metadata          datatypes.JSONMap `gorm:"type:json"`
	Status            string            `gorm:"size:32;not null;index"`
	AssignedAgentID   *string           `gorm:"size:32;index"`
	AssignedAgentName string            `gorm:"size:100"`
	Version           int               `gorm:"not null;default:1"`
	CreatedAt         int64             `gorm:"not null;index"`
	UpdatedAt         int64             `gorm:"not null"`
	ClosedAt          *int64
	NextFollowupAt    *int64            `gorm:"index"`

	// No foreign keys: agents and listings are referenced by id only.
}

func (InquiryModel) TableName() string {
	return "inquiries"
}

// InquiryLogModel is append-only; the repository never updates or deletes rows.
type InquiryLogModel struct {
	ID              uint    `gorm:"primaryKey;autoIncrement"`
	InquiryID       string  `gorm:"size:32;not null;index:idx_inquiry_logs_inquiry_created,priority:1"`
	Kind            string  `gorm:"size:20;not null"`
	Message         string  `gorm:"type:text;not null"`
	Author          string  `gorm:"size:100;not null"`
	AuthorID        string  `gorm:"size:64"`
	AgentID         *string `gorm:"size:32;index"`
	ResultingStatus *string `gorm:"size:32"`
	CreatedAt       int64   `gorm:"not null;index:idx_inquiry_logs_inquiry_created,priority:2"`
}

func (InquiryLogModel) TableName() string {
	return "inquiry_logs"
}
