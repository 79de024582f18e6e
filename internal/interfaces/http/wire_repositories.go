package http

import (
	"gorm.io/gorm"

	"github.com/instamakaan/instamakaan/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	inquiryRepo       *repository.InquiryRepository
	agentRepo         *repository.AgentRepository
	propertyDirectory *repository.PropertyDirectory
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		inquiryRepo:       repository.NewInquiryRepository(db),
		agentRepo:         repository.NewAgentRepository(db),
		propertyDirectory: repository.NewPropertyDirectory(db),
	}
}
