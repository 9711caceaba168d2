package handler

import (
	"log"

	"task-allocation/internal/domain/task"
	"task-allocation/internal/domain/user"
	"task-allocation/internal/forms"
	"task-allocation/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SupervisorHandler struct {
	uc     usecase.SupervisorDashboardUsecase
	logger *log.Logger
}

func NewSupervisorHandler(uc usecase.SupervisorDashboardUsecase, logger *log.Logger) *SupervisorHandler {
	return &SupervisorHandler{uc: uc, logger: logger}
}

func (h *SupervisorHandler) RegisterRoutes(app *fiber.App) {
	app.Get(usecase.PathSupervisor, h.Dashboard)
	app.Post("/supervisor/tasks", h.CreateTask)
	app.Post("/supervisor/tasks/:id", h.SaveTask)
	app.Post("/supervisor/tasks/:id/edit", h.EditTask)
	app.Post("/supervisor/tasks/:id/cancel", h.CancelEdit)
	app.Post("/supervisor/tasks/:id/archive", h.ArchiveTask)
}

type taskView struct {
	ID             string
	Description    string
	RequiredSkills []string
	StartDate      string
	DueDate        string
	AssignedTo     string
	Editing        bool
}

type taskDraftView struct {
	Description string
	Skills      string
	StartDate   string
	DueDate     string
}

type supervisorPage struct {
	Title string
	Error string
	Name  string
	Draft taskDraftView
	Tasks []taskView
}

func (h *SupervisorHandler) Dashboard(c fiber.Ctx) error {
	u, redir, ok := guardRole(c, user.RoleSupervisor)
	if !ok {
		return redir
	}
	return h.render(c, u, taskDraftView{}, "")
}

func (h *SupervisorHandler) CreateTask(c fiber.Ctx) error {
	u, redir, ok := guardRole(c, user.RoleSupervisor)
	if !ok {
		return redir
	}

	draft := taskDraftView{
		Description: c.FormValue("description"),
		Skills:      c.FormValue("skills"),
		StartDate:   c.FormValue("start_date"),
		DueDate:     c.FormValue("due_date"),
	}

	parsed, err := forms.ParseTaskForm(draft.Description, draft.Skills, draft.StartDate, draft.DueDate)
	if err != nil {
		return h.render(c, u, draft, "Description is required.")
	}

	if _, err := h.uc.CreateTask(c.Context(), u.ID, usecase.CreateTaskInput{
		Description:    parsed.Description,
		RequiredSkills: parsed.RequiredSkills,
		StartDate:      parsed.StartDate,
		DueDate:        parsed.DueDate,
	}); err != nil {
		h.logf("create task failed for %s: %v", u.ID, err)
		return h.render(c, u, draft, "Could not add the task: "+err.Error())
	}

	return c.Redirect().Status(fiber.StatusSeeOther).To(usecase.PathSupervisor)
}

func (h *SupervisorHandler) EditTask(c fiber.Ctx) error {
	u, redir, ok := guardRole(c, user.RoleSupervisor)
	if !ok {
		return redir
	}
	if err := h.uc.StartEditing(c.Context(), u.ID, c.Params("id")); err != nil {
		h.logf("start editing failed for %s: %v", u.ID, err)
	}
	return c.Redirect().Status(fiber.StatusSeeOther).To(usecase.PathSupervisor)
}

func (h *SupervisorHandler) CancelEdit(c fiber.Ctx) error {
	u, redir, ok := guardRole(c, user.RoleSupervisor)
	if !ok {
		return redir
	}
	if err := h.uc.CancelEditing(c.Context(), u.ID); err != nil {
		h.logf("cancel editing failed for %s: %v", u.ID, err)
	}
	return c.Redirect().Status(fiber.StatusSeeOther).To(usecase.PathSupervisor)
}

func (h *SupervisorHandler) SaveTask(c fiber.Ctx) error {
	u, redir, ok := guardRole(c, user.RoleSupervisor)
	if !ok {
		return redir
	}

	if _, err := h.uc.SaveDescription(c.Context(), u.ID, c.Params("id"), c.FormValue("description")); err != nil {
		h.logf("save task failed for %s: %v", u.ID, err)
		return h.render(c, u, taskDraftView{}, "Could not update the task: "+err.Error())
	}

	return c.Redirect().Status(fiber.StatusSeeOther).To(usecase.PathSupervisor)
}

func (h *SupervisorHandler) ArchiveTask(c fiber.Ctx) error {
	u, redir, ok := guardRole(c, user.RoleSupervisor)
	if !ok {
		return redir
	}
	if err := h.uc.ArchiveTask(c.Context(), u.ID, c.Params("id")); err != nil {
		h.logf("archive task failed for %s: %v", u.ID, err)
	}
	return c.Redirect().Status(fiber.StatusSeeOther).To(usecase.PathSupervisor)
}

func (h *SupervisorHandler) render(c fiber.Ctx, u user.User, draft taskDraftView, banner string) error {
	view, err := h.uc.Load(c.Context(), u.ID)
	if err != nil {
		h.logf("dashboard load failed for %s: %v", u.ID, err)
		if banner == "" {
			banner = "Could not load tasks: " + err.Error()
		}
	}

	page := supervisorPage{
		Title: "Supervisor Dashboard",
		Error: banner,
		Name:  u.DisplayName("Supervisor"),
		Draft: draft,
		Tasks: taskViews(view.Tasks, view.EditingTaskID),
	}
	return c.Render("supervisor", page)
}

func taskViews(tasks []task.Task, editingID string) []taskView {
	views := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, taskView{
			ID:             t.ID,
			Description:    t.Description,
			RequiredSkills: t.RequiredSkills,
			StartDate:      t.StartDate,
			DueDate:        t.DueDate,
			AssignedTo:     t.AssignedTo,
			Editing:        editingID != "" && t.ID == editingID,
		})
	}
	return views
}

func (h *SupervisorHandler) logf(format string, args ...any) {
	if h.logger != nil {
		h.logger.Printf("[Supervisor] "+format, args...)
	}
}
