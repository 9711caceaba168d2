package task

// Task is a unit of work owned by the external task-allocation service.
// IDs, assignment and status transitions all belong to that service; this
// application only ever submits tasks with StatusPending.
type Task struct {
	ID             string
	Description    string
	RequiredSkills []string
	StartDate      string
	DueDate        string
	AssignedTo     string
	Status         string
}

const StatusPending = "pending"

// Assigned reports whether the backend has assigned the task to an employee.
func (t Task) Assigned() bool {
	return t.AssignedTo != ""
}

// WithDescription returns a copy with only the description replaced.
func (t Task) WithDescription(description string) Task {
	t.Description = description
	return t
}

// Skill is a named competency with a 1-5 proficiency rating.
type Skill struct {
	SkillName        string
	ProficiencyLevel int
}

const (
	MinProficiency = 1
	MaxProficiency = 5
)

func ValidProficiency(level int) bool {
	return level >= MinProficiency && level <= MaxProficiency
}
