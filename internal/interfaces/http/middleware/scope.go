package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arbor-inc/arbor/internal/infrastructure/rls"
	"github.com/arbor-inc/arbor/internal/shared/constants"
	"github.com/arbor-inc/arbor/internal/shared/db"
	"github.com/arbor-inc/arbor/internal/shared/logger"
	"github.com/arbor-inc/arbor/internal/shared/utils"
)

type ScopeMiddleware struct {
	gateway *rls.Gateway
	logger  logger.Interface
}

func NewScopeMiddleware(gateway *rls.Gateway, logger logger.Interface) *ScopeMiddleware {
	return &ScopeMiddleware{
		gateway: gateway,
		logger:  logger,
	}
}

// BindContext opens a request-scoped database handle with the caller's
// identity bound onto it and threads the handle through the request context.
// Every repository call downstream runs on that handle, so the row filters
// see the same identity for the whole request.
//
// The scope commits only when the handler completed without a server error;
// anything else rolls back. Binding is fail-closed: if the identity cannot
// be bound the request never reaches a handler.
func (m *ScopeMiddleware) BindContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		rc := rls.NewContext(c.GetString(constants.ContextKeyUserID), c.GetString(constants.ContextKeyUserRole))

		scope, err := m.gateway.Begin(c.Request.Context(), rc)
		if err != nil {
			m.logger.Errorw("failed to bind request scope", "error", err, "path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusServiceUnavailable, "service temporarily unavailable")
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(db.WithTx(c.Request.Context(), scope.DB()))

		defer func() {
			if r := recover(); r != nil {
				if rbErr := scope.Rollback(); rbErr != nil {
					m.logger.Errorw("failed to roll back request scope after panic", "error", rbErr)
				}
				panic(r)
			}

			if c.Writer.Status() >= http.StatusInternalServerError || c.Request.Context().Err() != nil {
				if rbErr := scope.Rollback(); rbErr != nil {
					m.logger.Errorw("failed to roll back request scope", "error", rbErr)
				}
				return
			}

			if err := scope.Commit(); err != nil {
				m.logger.Errorw("failed to commit request scope", "error", err, "path", c.Request.URL.Path)
			}
		}()

		c.Next()
	}
}
