package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/arbor-inc/arbor/internal/shared/constants"
)

// callerID returns the authenticated user id stored by the auth middleware.
func callerID(c *gin.Context) string {
	return c.GetString(constants.ContextKeyUserID)
}
