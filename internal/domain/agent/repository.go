package agent

import "context"

type Filter struct {
	Status   *Status
	Search   string
	Page     int
	PageSize int
}

type Repository interface {
	Create(ctx context.Context, agent *Agent) error
	GetByID(ctx context.Context, id string) (*Agent, error)
	// GetByIDForUpdate locks the agent row until the surrounding
	// transaction ends, so deletes and deactivations wait for it.
	GetByIDForUpdate(ctx context.Context, id string) (*Agent, error)
	Update(ctx context.Context, agent *Agent) error
	Delete(ctx context.Context, id string) error
	// List orders agents by name.
	List(ctx context.Context, filter Filter) ([]*Agent, int64, error)
	Count(ctx context.Context, status *Status) (int64, error)
}
