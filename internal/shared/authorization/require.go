package authorization

import (
	"fmt"

	"github.com/instamakaan/instamakaan/internal/shared/errors"
)

// Require returns nil when the actor's role holds resource:action, otherwise
// an unauthorized or forbidden AppError.
func Require(authz Authorizer, actor Actor, resource, action string) error {
	if !actor.IsAuthenticated() {
		return errors.NewUnauthorizedError("authentication required")
	}

	allowed, err := authz.Authorize(actor.Role, resource, action)
	if err != nil {
		return errors.NewInternalError("failed to evaluate permissions", err.Error())
	}
	if !allowed {
		return errors.NewForbiddenError(fmt.Sprintf("role %s may not %s %s", actor.Role, action, resource))
	}
	return nil
}

// AuthorizerFunc adapts a plain function to Authorizer.
type AuthorizerFunc func(role UserRole, resource, action string) (bool, error)

func (f AuthorizerFunc) Authorize(role UserRole, resource, action string) (bool, error) {
	return f(role, resource, action)
}
