package v1

import (
	"context"

	"go-mentorship-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// contextWithIdentity copies the authenticated identity from gin's keys into
// the request context under the typed domain keys the usecases read.
func contextWithIdentity(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	ctx = context.WithValue(ctx, domain.KeyUserID, c.GetString(string(domain.KeyUserID)))
	ctx = context.WithValue(ctx, domain.KeyUserEmail, c.GetString(string(domain.KeyUserEmail)))
	ctx = context.WithValue(ctx, domain.KeyUserRole, c.GetString(string(domain.KeyUserRole)))
	return ctx
}
