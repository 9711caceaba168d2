package handler

import (
	"task-allocation/internal/delivery/http/middleware"
	"task-allocation/internal/domain/user"
	"task-allocation/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// guardRole resolves the signed-in user and checks the persisted role
// against the dashboard's expected one. On a mismatch the user is sent to
// role selection. This is a navigation convenience, not an authorization
// boundary; the backend scopes data by user id regardless.
func guardRole(c fiber.Ctx, want user.Role) (user.User, error, bool) {
	u, ok := middleware.SessionUser(c)
	if !ok {
		return user.User{}, c.Redirect().Status(fiber.StatusSeeOther).To("/sign-in"), false
	}
	if !u.HasRole(want) {
		return user.User{}, c.Redirect().Status(fiber.StatusSeeOther).To(usecase.PathRoleSelection), false
	}
	return u, nil, true
}
