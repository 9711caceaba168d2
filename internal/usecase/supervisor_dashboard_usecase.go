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

type SupervisorView struct {
	Tasks         []task.Task
	EditingTaskID string
}

type CreateTaskInput struct {
	Description    string
	RequiredSkills []string
	StartDate      string
	DueDate        string
}

type SupervisorDashboardUsecase interface {
	Load(ctx context.Context, supervisorID uuid.UUID) (SupervisorView, error)
	CreateTask(ctx context.Context, supervisorID uuid.UUID, in CreateTaskInput) (task.Task, error)
	StartEditing(ctx context.Context, supervisorID uuid.UUID, taskID string) error
	CancelEditing(ctx context.Context, supervisorID uuid.UUID) error
	SaveDescription(ctx context.Context, supervisorID uuid.UUID, taskID, description string) (task.Task, error)
	ArchiveTask(ctx context.Context, supervisorID uuid.UUID, taskID string) error
}

type SupervisorDashboard struct {
	api    taskapi.Client
	state  *SessionViewState
	logger *log.Logger
}

func NewSupervisorDashboardUsecase(api taskapi.Client, state *SessionViewState, logger *log.Logger) *SupervisorDashboard {
	return &SupervisorDashboard{api: api, state: state, logger: logger}
}

// Load fetches the supervisor's tasks and overlays the session view state:
// locally archived tasks are hidden and the edit-mode marker is carried
// over. Upstream errors are returned with their backend detail intact so
// the page can surface them.
func (s *SupervisorDashboard) Load(ctx context.Context, supervisorID uuid.UUID) (SupervisorView, error) {
	tasks, err := s.api.ListTasks(ctx, supervisorID.String(), user.RoleSupervisor)
	if err != nil {
		return SupervisorView{}, err
	}

	archived, err := s.state.ArchivedIDs(ctx, supervisorID)
	if err != nil {
		s.logf("view state read failed for %s: %v", supervisorID, err)
		archived = nil
	}
	editing, err := s.state.EditingTask(ctx, supervisorID)
	if err != nil {
		s.logf("view state read failed for %s: %v", supervisorID, err)
		editing = ""
	}

	return SupervisorView{
		Tasks:         filterArchived(tasks, archived),
		EditingTaskID: editing,
	}, nil
}

func (s *SupervisorDashboard) CreateTask(ctx context.Context, supervisorID uuid.UUID, in CreateTaskInput) (task.Task, error) {
	if strings.TrimSpace(in.Description) == "" {
		return task.Task{}, ErrInvalidInput
	}

	created, err := s.api.CreateTask(ctx, taskapi.CreateTaskInput{
		SupervisorID:   supervisorID.String(),
		Description:    in.Description,
		RequiredSkills: in.RequiredSkills,
		StartDate:      in.StartDate,
		DueDate:        in.DueDate,
	})
	if err != nil {
		return task.Task{}, err
	}
	return created, nil
}

func (s *SupervisorDashboard) StartEditing(ctx context.Context, supervisorID uuid.UUID, taskID string) error {
	return s.state.StartEditing(ctx, supervisorID, taskID)
}

func (s *SupervisorDashboard) CancelEditing(ctx context.Context, supervisorID uuid.UUID) error {
	return s.state.StopEditing(ctx, supervisorID)
}

// SaveDescription sends the edited description to the backend. Edit mode
// ends whether or not the update lands, matching the list's state machine:
// save always transitions back to idle.
func (s *SupervisorDashboard) SaveDescription(ctx context.Context, supervisorID uuid.UUID, taskID, description string) (task.Task, error) {
	if taskID == "" {
		return task.Task{}, ErrInvalidInput
	}

	if err := s.state.StopEditing(ctx, supervisorID); err != nil {
		s.logf("view state write failed for %s: %v", supervisorID, err)
	}

	patched, err := s.api.UpdateTaskDescription(ctx, taskID, description)
	if err != nil {
		return task.Task{}, err
	}
	return patched, nil
}

// ArchiveTask hides the task locally. There is no delete endpoint on the
// backend; removal is a view-only operation.
func (s *SupervisorDashboard) ArchiveTask(ctx context.Context, supervisorID uuid.UUID, taskID string) error {
	return s.state.ArchiveTask(ctx, supervisorID, taskID)
}

func (s *SupervisorDashboard) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf("[SupervisorDashboard] "+format, args...)
	}
}
