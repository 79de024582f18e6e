package models

type AgentModel struct {
	ID          string `gorm:"primaryKey;size:32"`
	Name        string `gorm:"size:100;not null"`
	Email       string `gorm:"size:255;not null;uniqueIndex"`
	Phone       string `gorm:"size:32"`
	Designation string `gorm:"size:100"`
	Status      string `gorm:"size:20;not null;index"`
	Notes       string `gorm:"type:text"`
	CreatedAt   int64  `gorm:"not null"`
	UpdatedAt   int64  `gorm:"not null"`
}

func (AgentModel) TableName() string {
	return "agents"
}
