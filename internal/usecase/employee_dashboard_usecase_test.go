package usecase

import (
	"context"
	"errors"
	"testing"

	"task-allocation/internal/domain/task"
	"task-allocation/internal/domain/user"

	"github.com/google/uuid"
)

func TestEmployeeDashboard_Load(t *testing.T) {
	api := &mockTaskAPI{
		tasks: []task.Task{
			{ID: "t1", Description: "assigned work", AssignedTo: "emp-1", Status: "in_progress"},
		},
		skills: []task.Skill{
			{SkillName: "go", ProficiencyLevel: 3},
		},
	}
	uc := NewEmployeeDashboardUsecase(api, newTestViewState(), nil)
	employeeID := uuid.New()
	ctx := context.Background()

	if _, err := uc.AddSkill(ctx, employeeID, AddSkillInput{SkillName: "sql", ProficiencyLevel: 2}); err != nil {
		t.Fatalf("add skill: %v", err)
	}

	view, err := uc.Load(ctx, employeeID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if api.listRole != user.RoleEmployee {
		t.Fatalf("expected employee role, got %q", api.listRole)
	}
	if len(view.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(view.Tasks))
	}

	// Session-local skills come after the fetched ones.
	if len(view.Skills) != 2 {
		t.Fatalf("expected 2 skills, got %d", len(view.Skills))
	}
	if view.Skills[0].SkillName != "go" || view.Skills[1].SkillName != "sql" {
		t.Fatalf("unexpected skill order: %+v", view.Skills)
	}
}

func TestEmployeeDashboard_AddSkillValidation(t *testing.T) {
	uc := NewEmployeeDashboardUsecase(&mockTaskAPI{}, newTestViewState(), nil)
	employeeID := uuid.New()
	ctx := context.Background()

	if _, err := uc.AddSkill(ctx, employeeID, AddSkillInput{SkillName: "  ", ProficiencyLevel: 3}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
	if _, err := uc.AddSkill(ctx, employeeID, AddSkillInput{SkillName: "go", ProficiencyLevel: 0}); !errors.Is(err, ErrInvalidProficiencyLevel) {
		t.Fatalf("expected ErrInvalidProficiencyLevel for 0, got %v", err)
	}
	if _, err := uc.AddSkill(ctx, employeeID, AddSkillInput{SkillName: "go", ProficiencyLevel: 6}); !errors.Is(err, ErrInvalidProficiencyLevel) {
		t.Fatalf("expected ErrInvalidProficiencyLevel for 6, got %v", err)
	}

	added, err := uc.AddSkill(ctx, employeeID, AddSkillInput{SkillName: "  kubernetes  ", ProficiencyLevel: 5})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if added.SkillName != "kubernetes" {
		t.Fatalf("expected trimmed name, got %q", added.SkillName)
	}
}
