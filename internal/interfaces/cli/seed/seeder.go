package seed

import (
	"context"

	"github.com/instamakaan/instamakaan/internal/application/agent/usecases"
	"github.com/instamakaan/instamakaan/internal/domain/property"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
)

// seedActor is the admin identity recorded for seeded agents.
var seedActor = authorization.NewActor("system_seed", authorization.RoleAdmin, "Seed")

type ListingWriter interface {
	Upsert(ctx context.Context, listing *property.Listing) error
}

// Result counts what a seed run did.
type Result struct {
	AgentsCreated  int
	AgentsSkipped  int
	ListingsStored int
}

// Seeder loads agents through the create use case, so seeded rows get the
// same validation and normalization as API-created ones.
type Seeder struct {
	createAgent usecases.CreateAgentExecutor
	listings    ListingWriter
	logger      logger.Interface
}

func NewSeeder(createAgent usecases.CreateAgentExecutor, listings ListingWriter, logger logger.Interface) *Seeder {
	return &Seeder{createAgent: createAgent, listings: listings, logger: logger}
}

// Run seeds listings first, then agents. Agents whose email already exists
// are skipped; any other failure stops the run.
func (s *Seeder) Run(ctx context.Context, f *File) (Result, error) {
	var res Result

	for _, l := range f.Listings {
		if err := s.listings.Upsert(ctx, &property.Listing{ID: l.ID, OwnerID: l.OwnerID, Title: l.Title}); err != nil {
			return res, err
		}
		res.ListingsStored++
	}

	for _, a := range f.Agents {
		created, err := s.createAgent.Execute(ctx, usecases.CreateAgentCommand{
			Actor:       seedActor,
			Name:        a.Name,
			Email:       a.Email,
			Phone:       a.Phone,
			Designation: a.Designation,
			Status:      a.Status,
			Notes:       a.Notes,
		})
		if err != nil {
			if errors.IsConflictError(err) {
				s.logger.Infow("agent already exists, skipping", "email", a.Email)
				res.AgentsSkipped++
				continue
			}
			return res, err
		}
		s.logger.Infow("agent seeded", "agent_id", created.ID, "email", created.Email)
		res.AgentsCreated++
	}

	return res, nil
}
