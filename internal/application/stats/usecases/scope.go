package usecases

import (
	"context"

	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	"github.com/instamakaan/instamakaan/internal/domain/property"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
)

// CountsQuery asks for counts over one scope. AgentID and OwnerID are only
// honoured for admins; agents and owners always get their own scope.
type CountsQuery struct {
	Actor   authorization.Actor
	AgentID string
	OwnerID string
}

type scopeResolver struct {
	directory property.Directory
}

func (r scopeResolver) resolve(ctx context.Context, q CountsQuery) (inquiry.Scope, error) {
	switch {
	case q.Actor.IsAgent():
		return inquiry.AgentScope(q.Actor.ID), nil
	case q.Actor.IsOwner():
		return r.ownerScope(ctx, q.Actor.ID)
	case q.Actor.IsAdmin():
		if q.AgentID != "" && q.OwnerID != "" {
			return inquiry.Scope{}, errors.NewValidationError("agent_id and owner_id cannot be combined")
		}
		if q.AgentID != "" {
			return inquiry.AgentScope(q.AgentID), nil
		}
		if q.OwnerID != "" {
			return r.ownerScope(ctx, q.OwnerID)
		}
		return inquiry.GlobalScope(), nil
	default:
		return inquiry.Scope{}, errors.NewForbiddenError("role may not read statistics")
	}
}

func (r scopeResolver) ownerScope(ctx context.Context, ownerID string) (inquiry.Scope, error) {
	listings, err := r.directory.ListingsOfOwner(ctx, ownerID)
	if err != nil {
		return inquiry.Scope{}, errors.FromStorage(err, "failed to load owner listings")
	}
	return inquiry.ListingScope(listingIDs(listings)), nil
}

func listingIDs(listings []*property.Listing) []string {
	ids := make([]string, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID)
	}
	return ids
}
