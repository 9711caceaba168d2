package usecase

import (
	"context"
	"log"
	"strings"

	"task-allocation/internal/domain/task"
	"task-allocation/internal/domain/user"
	"task-allocation/internal/taskapi"

	"github.com/google/uuid"
)

type EmployeeView struct {
	Tasks  []task.Task
	Skills []task.Skill
}

type AddSkillInput struct {
	SkillName        string
	ProficiencyLevel int
}

type EmployeeDashboardUsecase interface {
	Load(ctx context.Context, employeeID uuid.UUID) (EmployeeView, error)
	AddSkill(ctx context.Context, employeeID uuid.UUID, in AddSkillInput) (task.Skill, error)
}

type EmployeeDashboard struct {
	api    taskapi.Client
	state  *SessionViewState
	logger *log.Logger
}

func NewEmployeeDashboardUsecase(api taskapi.Client, state *SessionViewState, logger *log.Logger) *EmployeeDashboard {
	return &EmployeeDashboard{api: api, state: state, logger: logger}
}

// Load fetches the employee's assigned tasks and registered skills.
// Skills added in this session without a backend write are appended after
// the fetched ones, keeping insertion order.
func (e *EmployeeDashboard) Load(ctx context.Context, employeeID uuid.UUID) (EmployeeView, error) {
	tasks, err := e.api.ListTasks(ctx, employeeID.String(), user.RoleEmployee)
	if err != nil {
		return EmployeeView{}, err
	}

	skills, err := e.api.ListSkills(ctx, employeeID.String())
	if err != nil {
		return EmployeeView{}, err
	}

	local, err := e.state.LocalSkills(ctx, employeeID)
	if err != nil {
		e.logf("view state read failed for %s: %v", employeeID, err)
		local = nil
	}

	return EmployeeView{
		Tasks:  tasks,
		Skills: append(skills, local...),
	}, nil
}

// AddSkill appends a skill to the session-local skill set. No backend
// write is issued; the skill lives only as long as the session state.
func (e *EmployeeDashboard) AddSkill(ctx context.Context, employeeID uuid.UUID, in AddSkillInput) (task.Skill, error) {
	name := strings.TrimSpace(in.SkillName)
	if name == "" {
		return task.Skill{}, ErrInvalidInput
	}
	if !task.ValidProficiency(in.ProficiencyLevel) {
		return task.Skill{}, ErrInvalidProficiencyLevel
	}

	skill := task.Skill{SkillName: name, ProficiencyLevel: in.ProficiencyLevel}
	if err := e.state.AppendLocalSkill(ctx, employeeID, skill); err != nil {
		return task.Skill{}, ErrInternal
	}
	return skill, nil
}

func (e *EmployeeDashboard) logf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Printf("[EmployeeDashboard] "+format, args...)
	}
}
