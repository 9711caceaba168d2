package taskapi

import "task-allocation/internal/domain/task"

// Wire representations for the external task-allocation service. The wire
// uses snake_case; the in-memory model is camelCase. The client owns this
// translation in both directions.

type taskPayload struct {
	ID             string   `json:"id"`
	SupervisorID   string   `json:"supervisor_id,omitempty"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	DueDate        string   `json:"due_date"`
	StartDate      string   `json:"start_date"`
	AssignedTo     *string  `json:"assigned_to"`
	Status         string   `json:"status,omitempty"`
}

type createTaskPayload struct {
	SupervisorID   string   `json:"supervisor_id"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	DueDate        string   `json:"due_date"`
	StartDate      string   `json:"start_date"`
	AssignedTo     *string  `json:"assigned_to"`
	Status         string   `json:"status"`
}

type updateTaskPayload struct {
	Description string `json:"description"`
}

type skillPayload struct {
	UserID           string `json:"user_id,omitempty"`
	SkillName        string `json:"skill_name"`
	ProficiencyLevel int    `json:"proficiency_level"`
}

func taskFromPayload(p taskPayload) task.Task {
	t := task.Task{
		ID:             p.ID,
		Description:    p.Description,
		RequiredSkills: p.RequiredSkills,
		DueDate:        p.DueDate,
		StartDate:      p.StartDate,
		Status:         p.Status,
	}
	if p.AssignedTo != nil {
		t.AssignedTo = *p.AssignedTo
	}
	return t
}

func skillFromPayload(p skillPayload) task.Skill {
	return task.Skill{
		SkillName:        p.SkillName,
		ProficiencyLevel: p.ProficiencyLevel,
	}
}
