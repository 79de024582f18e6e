package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/instamakaan/instamakaan/internal/shared/constants"
)

// RequireRole aborts with 403 unless the authenticated role is one of roles.
func RequireRole(roles ...UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := UserRole(c.GetString(constants.ContextKeyUserRole))
		for _, r := range roles {
			if current == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   gin.H{"type": "forbidden", "message": "insufficient role for this operation"},
		})
	}
}

func RequireAdmin() gin.HandlerFunc {
	return RequireRole(RoleAdmin)
}

// SetActor stores the authenticated caller on the gin context.
func SetActor(c *gin.Context, actor Actor) {
	c.Set(constants.ContextKeyUserID, actor.ID)
	c.Set(constants.ContextKeyUserRole, actor.Role.String())
	c.Set(constants.ContextKeyUserName, actor.Name)
}

// ActorFromContext builds the Actor placed on the gin context by the auth middleware.
// The zero Actor is returned for anonymous requests.
func ActorFromContext(c *gin.Context) Actor {
	return Actor{
		ID:   c.GetString(constants.ContextKeyUserID),
		Role: UserRole(c.GetString(constants.ContextKeyUserRole)),
		Name: c.GetString(constants.ContextKeyUserName),
	}
}
