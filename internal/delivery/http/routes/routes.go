package routes

import (
	"task-allocation/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health     *handler.HealthHandler
	Auth       *handler.AuthHandler
	Role       *handler.RoleHandler
	Supervisor *handler.SupervisorHandler
	Employee   *handler.EmployeeHandler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)
	r.Auth.RegisterRoutes(app)
	r.Role.RegisterRoutes(app)
	r.Supervisor.RegisterRoutes(app)
	r.Employee.RegisterRoutes(app)
}
