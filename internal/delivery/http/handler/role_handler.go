package handler

import (
	"log"

	"task-allocation/internal/delivery/http/middleware"
	"task-allocation/internal/usecase"
	"task-allocation/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

// RoleHandler covers the public landing page, the role router and role
// selection.
type RoleHandler struct {
	uc     auth.AuthUsecase
	logger *log.Logger
}

func NewRoleHandler(uc auth.AuthUsecase, logger *log.Logger) *RoleHandler {
	return &RoleHandler{uc: uc, logger: logger}
}

func (h *RoleHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.Home)
	app.Get(usecase.PathRoleSelection, h.RoleSelectionPage)
	app.Post(usecase.PathRoleSelection, h.SelectRole)
}

type landingPage struct {
	Title string
	Error string
}

type roleSelectionPage struct {
	Title string
	Error string
}

// Home renders the public landing page for visitors and routes signed-in
// users to their dashboard (or role selection) by role.
func (h *RoleHandler) Home(c fiber.Ctx) error {
	u, ok := middleware.SessionUser(c)
	if !ok {
		return c.Render("landing", landingPage{Title: "Welcome"})
	}

	dest := usecase.DecideDestination(c.Path(), c.Query("role"), u.Role)
	if dest == usecase.DestinationStay {
		return c.Render("landing", landingPage{Title: "Welcome"})
	}
	return c.Redirect().Status(fiber.StatusSeeOther).To(string(dest))
}

func (h *RoleHandler) RoleSelectionPage(c fiber.Ctx) error {
	if _, ok := middleware.SessionUser(c); !ok {
		return c.Redirect().Status(fiber.StatusSeeOther).To("/sign-in")
	}
	return c.Render("role_selection", roleSelectionPage{Title: "Select your role"})
}

// SelectRole persists the chosen role and sends the user to the matching
// dashboard. A failed persist keeps the user on the selection screen with
// the failure surfaced.
func (h *RoleHandler) SelectRole(c fiber.Ctx) error {
	u, ok := middleware.SessionUser(c)
	if !ok {
		return c.Redirect().Status(fiber.StatusSeeOther).To("/sign-in")
	}

	updated, err := h.uc.SelectRole(c.Context(), u.ID, c.FormValue("role"))
	if err != nil || updated.Role == nil {
		if h.logger != nil {
			h.logger.Printf("role selection failed for %s: %v", u.ID, err)
		}
		return c.Render("role_selection", roleSelectionPage{
			Title: "Select your role",
			Error: "Could not save your role. Please try again.",
		})
	}

	return c.Redirect().Status(fiber.StatusSeeOther).To(string(usecase.DestinationForRole(*updated.Role)))
}
