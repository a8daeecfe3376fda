package middleware

import (
	"fmt"
	"strings"

	"railway-booking/internal/module/booking/repositories"
	"railway-booking/internal/pkg/errors"
	"railway-booking/internal/pkg/helpers"
	"railway-booking/internal/pkg/log"

	"github.com/gofiber/fiber/v2"
)

type Middleware struct {
	Log  log.Logger
	Repo repositories.Repositories
}

// ValidateToken resolves the bearer token against the user service and
// stores the caller's identity in the request locals.
func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	auth := ctx.Get("Authorization")
	if auth == "" {
		m.Log.Error(ctx.Context(), "error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("missing authorization header"))
	}

	token := strings.TrimPrefix(auth, "Bearer ")
	if token == auth || token == "" {
		m.Log.Error(ctx.Context(), "error malformed authorization header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("malformed authorization header"))
	}

	resp, err := m.Repo.ValidateToken(ctx.Context(), token)
	if err != nil {
		m.Log.Error(ctx.Context(), fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	if !resp.IsValid {
		m.Log.Error(ctx.Context(), "error validate token")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	ctx.Locals("user_id", resp.UserID)
	ctx.Locals("role", resp.Role)
	ctx.Locals("email_user", resp.Email)

	return ctx.Next()
}

// ValidateAdmin must run after ValidateToken.
func (m *Middleware) ValidateAdmin(ctx *fiber.Ctx) error {
	role, ok := ctx.Locals("role").(string)
	if !ok || role != "admin" {
		m.Log.Error(ctx.Context(), "error validate admin role")
		return helpers.RespError(ctx, m.Log, errors.ForbiddenError("admin role required"))
	}

	return ctx.Next()
}
