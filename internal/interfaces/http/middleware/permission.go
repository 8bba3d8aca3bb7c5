package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arbor-inc/arbor/internal/infrastructure/permission"
	"github.com/arbor-inc/arbor/internal/shared/authorization"
	"github.com/arbor-inc/arbor/internal/shared/constants"
	"github.com/arbor-inc/arbor/internal/shared/logger"
	"github.com/arbor-inc/arbor/internal/shared/utils"
)

type PermissionMiddleware struct {
	enforcer *permission.Enforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer *permission.Enforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// RequirePermission rejects requests whose role is not granted the action on
// the resource. This is a fast pre-filter on the HTTP surface; the row
// filters in the database remain the enforcement boundary, so a request that
// slips past still touches nothing outside its reach.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue := c.GetString(constants.ContextKeyUserRole)
		role, ok := authorization.ParseRole(roleValue)
		if !ok {
			// Unknown roles match no policy anywhere.
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(role, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "role", roleValue, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "role", roleValue, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireRole allows only the named roles through.
func (m *PermissionMiddleware) RequireRole(roles ...authorization.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue := c.GetString(constants.ContextKeyUserRole)
		role, ok := authorization.ParseRole(roleValue)
		if !ok {
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		for _, required := range roles {
			if role == required {
				c.Next()
				return
			}
		}

		m.logger.Warnw("role check failed", "role", roleValue)
		utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
		c.Abort()
	}
}
