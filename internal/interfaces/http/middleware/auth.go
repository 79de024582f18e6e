package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/constants"
	"github.com/instamakaan/instamakaan/internal/shared/errors"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
	"github.com/instamakaan/instamakaan/internal/shared/utils"
)

// Authenticator turns a bearer token into the caller it names.
type Authenticator interface {
	Authenticate(token string) (authorization.Actor, error)
}

type AuthMiddleware struct {
	authn  Authenticator
	logger logger.Interface
}

func NewAuthMiddleware(authn Authenticator, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		authn:  authn,
		logger: logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing or malformed authorization header"))
			c.Abort()
			return
		}

		actor, err := m.authn.Authenticate(token)
		if err != nil {
			m.logger.Warnw("failed to verify token",
				"path", c.Request.URL.Path,
				"error", err,
			)
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid or expired token"))
			c.Abort()
			return
		}

		authorization.SetActor(c, actor)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader(constants.HeaderAuthorization)
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}
