package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"household-calendar/internal/model"
	"household-calendar/pkg/response"
)

const (
	HeaderWorkspaceID = "X-Workspace-ID"
	HeaderUserID      = "X-User-ID"
)

type scopeCtxKey struct{}

// Scope reads the caller identity placed by the upstream gateway. Requests
// without a workspace are rejected.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.Scope{
			WorkspaceID: strings.TrimSpace(c.GetHeader(HeaderWorkspaceID)),
			UserID:      strings.TrimSpace(c.GetHeader(HeaderUserID)),
		}
		if sc.WorkspaceID == "" {
			m.l.Warnf(c.Request.Context(), "middleware.Scope: missing %s", HeaderWorkspaceID)
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(SetScopeToContext(c.Request.Context(), sc))
		c.Next()
	}
}

// SetScopeToContext stores sc on ctx.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the scope stored by Scope.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(model.Scope)
	return sc, ok
}
