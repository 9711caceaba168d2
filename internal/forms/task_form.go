package forms

import (
	"errors"
	"strings"
)

var ErrEmptyDescription = errors.New("description must not be empty")

// TaskDraft is the normalized payload a valid task form produces.
type TaskDraft struct {
	Description    string
	RequiredSkills []string
	StartDate      string
	DueDate        string
}

// ParseTaskForm validates the structural constraints of the task form.
// Dates are taken as-is; the backend owns any start/due ordering rules.
func ParseTaskForm(description, skills, startDate, dueDate string) (TaskDraft, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return TaskDraft{}, ErrEmptyDescription
	}

	return TaskDraft{
		Description:    description,
		RequiredSkills: SplitSkills(skills),
		StartDate:      strings.TrimSpace(startDate),
		DueDate:        strings.TrimSpace(dueDate),
	}, nil
}

// SplitSkills turns a comma-separated skills string into an ordered list of
// trimmed skill names. Segments that trim to nothing are dropped, so
// "a,,b, " yields ["a" "b"].
func SplitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		skills = append(skills, p)
	}
	return skills
}
