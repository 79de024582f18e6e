package migration

import (
	"github.com/instamakaan/instamakaan/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AgentModel{},
		&models.InquiryModel{},
		&models.InquiryLogModel{},
		&models.PropertyModel{},
	}
}
