package forms

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseTaskForm(t *testing.T) {
	draft, err := ParseTaskForm("Audit logs", "security, compliance", "2024-01-01", "2024-01-15")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := TaskDraft{
		Description:    "Audit logs",
		RequiredSkills: []string{"security", "compliance"},
		StartDate:      "2024-01-01",
		DueDate:        "2024-01-15",
	}
	if !reflect.DeepEqual(draft, want) {
		t.Fatalf("unexpected draft: %+v", draft)
	}
}

func TestParseTaskFormEmptyDescription(t *testing.T) {
	for _, desc := range []string{"", "   ", "\t\n"} {
		if _, err := ParseTaskForm(desc, "go", "", ""); !errors.Is(err, ErrEmptyDescription) {
			t.Fatalf("description %q: expected ErrEmptyDescription, got %v", desc, err)
		}
	}
}

func TestSplitSkills(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"security, compliance", []string{"security", "compliance"}},
		{"a,,b, ", []string{"a", "b"}},
		{"  go  ", []string{"go"}},
		{"", []string{}},
		{", ,", []string{}},
	}
	for _, tc := range cases {
		got := SplitSkills(tc.raw)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("SplitSkills(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestParseSkillForm(t *testing.T) {
	skill, err := ParseSkillForm("  terraform ", " 4 ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if skill.SkillName != "terraform" || skill.ProficiencyLevel != 4 {
		t.Fatalf("unexpected skill: %+v", skill)
	}
}

func TestParseSkillFormRejects(t *testing.T) {
	if _, err := ParseSkillForm("   ", "3"); !errors.Is(err, ErrEmptySkillName) {
		t.Fatalf("expected ErrEmptySkillName, got %v", err)
	}
	for _, level := range []string{"0", "6", "-1", "abc", ""} {
		if _, err := ParseSkillForm("go", level); !errors.Is(err, ErrInvalidProficiency) {
			t.Fatalf("level %q: expected ErrInvalidProficiency, got %v", level, err)
		}
	}
}

func TestDefaultSkillDraft(t *testing.T) {
	d := DefaultSkillDraft()
	if d.SkillName != "" || d.ProficiencyLevel != 1 {
		t.Fatalf("unexpected default draft: %+v", d)
	}
}
