package usecases

import (
	"time"

	"github.com/instamakaan/instamakaan/internal/domain/inquiry"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
)

// ensureHolder lets admins through and agents only on inquiries they hold
// right now. Role capabilities are checked separately.
func ensureHolder(actor authorization.Actor, inq *inquiry.Inquiry) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.IsAgent() && inq.IsAssignedTo(actor.ID) {
		return nil
	}
	return errors.NewForbiddenError("inquiry is not assigned to you")
}

func authorOf(actor authorization.Actor) inquiry.Author {
	return inquiry.Author{ID: actor.ID, Name: actor.AuthorName()}
}

func followupOption(at *time.Time) []inquiry.TransitionOption {
	if at == nil {
		return nil
	}
	return []inquiry.TransitionOption{inquiry.WithFollowup(*at)}
}
