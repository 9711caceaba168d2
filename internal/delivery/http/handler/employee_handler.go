package handler

import (
	"errors"
	"log"
	"strconv"

	"task-allocation/internal/domain/task"
	"task-allocation/internal/domain/user"
	"task-allocation/internal/forms"
	"task-allocation/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type EmployeeHandler struct {
	uc     usecase.EmployeeDashboardUsecase
	logger *log.Logger
}

func NewEmployeeHandler(uc usecase.EmployeeDashboardUsecase, logger *log.Logger) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, logger: logger}
}

func (h *EmployeeHandler) RegisterRoutes(app *fiber.App) {
	app.Get(usecase.PathEmployee, h.Dashboard)
	app.Post("/employee/skills", h.AddSkill)
}

type skillView struct {
	SkillName        string
	ProficiencyLevel int
}

type employeePage struct {
	Title  string
	Error  string
	Name   string
	Draft  forms.SkillDraft
	Skills []skillView
	Tasks  []taskView
}

func (h *EmployeeHandler) Dashboard(c fiber.Ctx) error {
	u, redir, ok := guardRole(c, user.RoleEmployee)
	if !ok {
		return redir
	}
	return h.render(c, u, forms.DefaultSkillDraft(), "")
}

func (h *EmployeeHandler) AddSkill(c fiber.Ctx) error {
	u, redir, ok := guardRole(c, user.RoleEmployee)
	if !ok {
		return redir
	}

	name := c.FormValue("skill_name")
	level := c.FormValue("proficiency_level")

	skill, err := forms.ParseSkillForm(name, level)
	if err != nil {
		draft := forms.SkillDraft{SkillName: name, ProficiencyLevel: draftLevel(level)}
		msg := "Skill name is required."
		if errors.Is(err, forms.ErrInvalidProficiency) {
			msg = "Proficiency level must be between 1 and 5."
		}
		return h.render(c, u, draft, msg)
	}

	if _, err := h.uc.AddSkill(c.Context(), u.ID, usecase.AddSkillInput{
		SkillName:        skill.SkillName,
		ProficiencyLevel: skill.ProficiencyLevel,
	}); err != nil {
		h.logf("add skill failed for %s: %v", u.ID, err)
		draft := forms.SkillDraft{SkillName: name, ProficiencyLevel: draftLevel(level)}
		return h.render(c, u, draft, "Could not add the skill. Please try again.")
	}

	// Successful submit resets the form to its defaults.
	return c.Redirect().Status(fiber.StatusSeeOther).To(usecase.PathEmployee)
}

func (h *EmployeeHandler) render(c fiber.Ctx, u user.User, draft forms.SkillDraft, banner string) error {
	view, err := h.uc.Load(c.Context(), u.ID)
	if err != nil {
		h.logf("dashboard load failed for %s: %v", u.ID, err)
		if banner == "" {
			banner = "Could not load your dashboard: " + err.Error()
		}
	}

	page := employeePage{
		Title:  "Employee Dashboard",
		Error:  banner,
		Name:   u.DisplayName("Employee"),
		Draft:  draft,
		Skills: skillViews(view.Skills),
		Tasks:  taskViews(view.Tasks, ""),
	}
	return c.Render("employee", page)
}

func skillViews(skills []task.Skill) []skillView {
	views := make([]skillView, 0, len(skills))
	for _, s := range skills {
		views = append(views, skillView{SkillName: s.SkillName, ProficiencyLevel: s.ProficiencyLevel})
	}
	return views
}

// draftLevel keeps whatever level the user typed when re-rendering after a
// validation failure, falling back to the minimum.
func draftLevel(raw string) int {
	if n, err := strconv.Atoi(raw); err == nil && task.ValidProficiency(n) {
		return n
	}
	return task.MinProficiency
}

func (h *EmployeeHandler) logf(format string, args ...any) {
	if h.logger != nil {
		h.logger.Printf("[Employee] "+format, args...)
	}
}
