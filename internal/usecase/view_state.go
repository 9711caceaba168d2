package usecase

import (
	"context"
	"time"

	"task-allocation/internal/domain/task"
	"task-allocation/internal/infrastructure/cache"

	"github.com/google/uuid"
)

// SessionViewState holds the per-user dashboard state that the original
// single-page client kept in component memory: which task is in edit mode,
// which tasks were removed from the local view, and skills added locally
// without a backend write. Backed by the session state store so it survives
// page loads but not sign-out.
type SessionViewState struct {
	store cache.Store
	ttl   time.Duration
}

type taskListState struct {
	EditingTaskID string   `json:"editing_task_id,omitempty"`
	ArchivedIDs   []string `json:"archived_ids,omitempty"`
}

func NewSessionViewState(store cache.Store, ttl time.Duration) *SessionViewState {
	return &SessionViewState{store: store, ttl: ttl}
}

func taskListKey(userID uuid.UUID) string {
	return "view:tasks:" + userID.String()
}

func localSkillsKey(userID uuid.UUID) string {
	return "view:skills:" + userID.String()
}

func (s *SessionViewState) taskList(ctx context.Context, userID uuid.UUID) (taskListState, error) {
	var st taskListState
	if _, err := s.store.GetJSON(ctx, taskListKey(userID), &st); err != nil {
		return taskListState{}, err
	}
	return st, nil
}

func (s *SessionViewState) saveTaskList(ctx context.Context, userID uuid.UUID, st taskListState) error {
	return s.store.SetJSON(ctx, taskListKey(userID), st, s.ttl)
}

// EditingTask returns the id of the task currently in edit mode, or "".
func (s *SessionViewState) EditingTask(ctx context.Context, userID uuid.UUID) (string, error) {
	st, err := s.taskList(ctx, userID)
	if err != nil {
		return "", err
	}
	return st.EditingTaskID, nil
}

// StartEditing puts taskID in edit mode. A task already being edited is
// replaced; the list holds at most one editing task.
func (s *SessionViewState) StartEditing(ctx context.Context, userID uuid.UUID, taskID string) error {
	if taskID == "" {
		return ErrInvalidInput
	}
	st, err := s.taskList(ctx, userID)
	if err != nil {
		return err
	}
	st.EditingTaskID = taskID
	return s.saveTaskList(ctx, userID, st)
}

// StopEditing returns the list to idle.
func (s *SessionViewState) StopEditing(ctx context.Context, userID uuid.UUID) error {
	st, err := s.taskList(ctx, userID)
	if err != nil {
		return err
	}
	if st.EditingTaskID == "" {
		return nil
	}
	st.EditingTaskID = ""
	return s.saveTaskList(ctx, userID, st)
}

// ArchiveTask hides taskID from the user's task list. The backend is never
// told; an archived id stays hidden for the lifetime of the session state.
func (s *SessionViewState) ArchiveTask(ctx context.Context, userID uuid.UUID, taskID string) error {
	if taskID == "" {
		return ErrInvalidInput
	}
	st, err := s.taskList(ctx, userID)
	if err != nil {
		return err
	}
	for _, id := range st.ArchivedIDs {
		if id == taskID {
			return nil
		}
	}
	st.ArchivedIDs = append(st.ArchivedIDs, taskID)
	if st.EditingTaskID == taskID {
		st.EditingTaskID = ""
	}
	return s.saveTaskList(ctx, userID, st)
}

func (s *SessionViewState) ArchivedIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	st, err := s.taskList(ctx, userID)
	if err != nil {
		return nil, err
	}
	return st.ArchivedIDs, nil
}

// LocalSkills returns skills added in this session that were never written
// to the backend.
func (s *SessionViewState) LocalSkills(ctx context.Context, userID uuid.UUID) ([]task.Skill, error) {
	var skills []task.Skill
	if _, err := s.store.GetJSON(ctx, localSkillsKey(userID), &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

func (s *SessionViewState) AppendLocalSkill(ctx context.Context, userID uuid.UUID, skill task.Skill) error {
	skills, err := s.LocalSkills(ctx, userID)
	if err != nil {
		return err
	}
	skills = append(skills, skill)
	return s.store.SetJSON(ctx, localSkillsKey(userID), skills, s.ttl)
}

// filterArchived removes archived ids from a fetched task list, preserving
// order.
func filterArchived(tasks []task.Task, archived []string) []task.Task {
	if len(archived) == 0 {
		return tasks
	}
	hidden := make(map[string]struct{}, len(archived))
	for _, id := range archived {
		hidden[id] = struct{}{}
	}
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if _, ok := hidden[t.ID]; ok {
			continue
		}
		out = append(out, t)
	}
	return out
}
