package forms

import (
	"errors"
	"strconv"
	"strings"

	"task-allocation/internal/domain/task"
)

var (
	ErrEmptySkillName     = errors.New("skill name must not be empty")
	ErrInvalidProficiency = errors.New("proficiency level must be between 1 and 5")
)

// SkillDraft is what the skill form renders with; after a successful submit
// the draft resets to DefaultSkillDraft.
type SkillDraft struct {
	SkillName        string
	ProficiencyLevel int
}

func DefaultSkillDraft() SkillDraft {
	return SkillDraft{SkillName: "", ProficiencyLevel: task.MinProficiency}
}

// ParseSkillForm validates a submitted skill. The proficiency bounds are
// re-checked here: the form input's min/max attributes are advisory only.
func ParseSkillForm(name, level string) (task.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return task.Skill{}, ErrEmptySkillName
	}

	n, err := strconv.Atoi(strings.TrimSpace(level))
	if err != nil || !task.ValidProficiency(n) {
		return task.Skill{}, ErrInvalidProficiency
	}

	return task.Skill{SkillName: name, ProficiencyLevel: n}, nil
}
